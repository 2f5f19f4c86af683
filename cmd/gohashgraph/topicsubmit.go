// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gohashgraph/keys"
	"github.com/blinklabs-io/gohashgraph/ledger"
	"github.com/blinklabs-io/gohashgraph/transaction"
)

type topicSubmitFlags struct {
	flagset     *flag.FlagSet
	payer       string
	key         string
	topic       string
	message     string
	messageFile string
}

func newTopicSubmitFlags() *topicSubmitFlags {
	f := &topicSubmitFlags{
		flagset: flag.NewFlagSet("topic-submit", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.payer,
		"payer",
		"",
		"account ID paying for the submission",
	)
	f.flagset.StringVar(
		&f.key,
		"key",
		"",
		"hex-encoded private key seed for the payer",
	)
	f.flagset.StringVar(
		&f.topic,
		"topic",
		"",
		"topic ID to submit the message to",
	)
	f.flagset.StringVar(
		&f.message,
		"message",
		"",
		"message to submit",
	)
	f.flagset.StringVar(
		&f.messageFile,
		"message-file",
		"",
		"path to a file containing the message to submit",
	)
	return f
}

func runTopicSubmit(f *globalFlags) {
	topicSubmitFlags := newTopicSubmitFlags()
	err := topicSubmitFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if topicSubmitFlags.payer == "" || topicSubmitFlags.key == "" ||
		topicSubmitFlags.topic == "" {
		fmt.Printf("you must specify -payer, -key, and -topic\n")
		os.Exit(1)
	}
	if topicSubmitFlags.message == "" && topicSubmitFlags.messageFile == "" {
		fmt.Printf("you must specify -message or -message-file\n")
		os.Exit(1)
	}

	payer, err := ledger.NewAccountIdFromString(topicSubmitFlags.payer)
	if err != nil {
		fmt.Printf("Invalid payer account ID: %s\n", err)
		os.Exit(1)
	}
	topic, err := ledger.NewTopicIdFromString(topicSubmitFlags.topic)
	if err != nil {
		fmt.Printf("Invalid topic ID: %s\n", err)
		os.Exit(1)
	}
	key, err := keys.NewPrivateKeyFromString(topicSubmitFlags.key)
	if err != nil {
		fmt.Printf("Invalid private key: %s\n", err)
		os.Exit(1)
	}

	var message []byte
	if topicSubmitFlags.message != "" {
		message = []byte(topicSubmitFlags.message)
	} else {
		message, err = os.ReadFile(topicSubmitFlags.messageFile)
		if err != nil {
			fmt.Printf("Failed to load message file: %s\n", err)
			os.Exit(1)
		}
	}

	client := createClient(f)

	tx := transaction.NewTransaction(
		transaction.NewTopicMessageSubmit(topic, message),
	)
	if err := tx.SetPayer(payer); err != nil {
		fmt.Printf("Failed to set payer: %s\n", err)
		os.Exit(1)
	}
	receipt := executeTransaction(f, client, tx, key)
	fmt.Printf(
		"Submitted %d-byte message to topic %s\n",
		len(message),
		topic.String(),
	)
	printReceipt(receipt)
}
