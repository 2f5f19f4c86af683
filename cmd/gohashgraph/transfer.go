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
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	hashgraph "github.com/blinklabs-io/gohashgraph"
	"github.com/blinklabs-io/gohashgraph/keys"
	"github.com/blinklabs-io/gohashgraph/ledger"
	"github.com/blinklabs-io/gohashgraph/transaction"
)

type transferFlags struct {
	flagset *flag.FlagSet
	payer   string
	key     string
	to      string
	amount  int64
	memo    string
}

func newTransferFlags() *transferFlags {
	f := &transferFlags{
		flagset: flag.NewFlagSet("transfer", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.payer,
		"payer",
		"",
		"account ID paying for the transfer (debited account)",
	)
	f.flagset.StringVar(
		&f.key,
		"key",
		"",
		"hex-encoded private key seed for the payer",
	)
	f.flagset.StringVar(
		&f.to,
		"to",
		"",
		"account ID to credit",
	)
	f.flagset.Int64Var(
		&f.amount,
		"amount",
		0,
		"amount to transfer in tinybar",
	)
	f.flagset.StringVar(
		&f.memo,
		"memo",
		"",
		"transaction memo",
	)
	return f
}

func runTransfer(f *globalFlags) {
	transferFlags := newTransferFlags()
	err := transferFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if transferFlags.payer == "" || transferFlags.key == "" ||
		transferFlags.to == "" {
		fmt.Printf("you must specify -payer, -key, and -to\n")
		os.Exit(1)
	}
	if transferFlags.amount <= 0 {
		fmt.Printf("you must specify a positive -amount\n")
		os.Exit(1)
	}

	payer, err := ledger.NewAccountIdFromString(transferFlags.payer)
	if err != nil {
		fmt.Printf("Invalid payer account ID: %s\n", err)
		os.Exit(1)
	}
	to, err := ledger.NewAccountIdFromString(transferFlags.to)
	if err != nil {
		fmt.Printf("Invalid destination account ID: %s\n", err)
		os.Exit(1)
	}
	key, err := keys.NewPrivateKeyFromString(transferFlags.key)
	if err != nil {
		fmt.Printf("Invalid private key: %s\n", err)
		os.Exit(1)
	}

	client := createClient(f)

	amount := transaction.HbarFromTinybar(transferFlags.amount)
	tx := transaction.NewTransaction(
		transaction.NewCryptoTransfer().
			AddHbarTransfer(payer, amount.Negated()).
			AddHbarTransfer(to, amount),
	)
	if err := tx.SetPayer(payer); err != nil {
		fmt.Printf("Failed to set payer: %s\n", err)
		os.Exit(1)
	}
	if transferFlags.memo != "" {
		if err := tx.SetMemo(transferFlags.memo); err != nil {
			fmt.Printf("Failed to set memo: %s\n", err)
			os.Exit(1)
		}
	}
	receipt := executeTransaction(f, client, tx, key)
	fmt.Printf(
		"Transferred %s from %s to %s\n",
		amount,
		payer.String(),
		to.String(),
	)
	printReceipt(receipt)
}

// executeTransaction freezes the transaction against the client's node list,
// signs it with the provided key, and submits it
func executeTransaction(
	f *globalFlags,
	client *hashgraph.Client,
	tx *transaction.Transaction,
	key keys.PrivateKey,
) *transaction.Receipt {
	nodeIds := make([]ledger.AccountId, 0, len(client.Nodes()))
	for _, node := range client.Nodes() {
		nodeIds = append(nodeIds, node.NodeId)
	}
	frozen, err := tx.Freeze(nodeIds)
	if err != nil {
		fmt.Printf("Failed to freeze transaction: %s\n", err)
		os.Exit(1)
	}
	if err := frozen.Sign(key); err != nil {
		fmt.Printf("Failed to sign transaction: %s\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(f.timeout)*time.Second,
	)
	defer cancel()
	receipt, err := frozen.Execute(ctx, client)
	if err != nil {
		fmt.Printf("Failed to submit transaction: %s\n", err)
		os.Exit(1)
	}
	return receipt
}

func printReceipt(receipt *transaction.Receipt) {
	fmt.Printf("Transaction ID: %s\n", receipt.TransactionId.String())
	fmt.Printf("Status: %s\n", receipt.Status.String())
	fmt.Printf("Node: %s\n", receipt.NodeId.String())
	fmt.Printf("Hash: %s\n", receipt.TransactionHash.String())
}
