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
	"log/slog"
	"os"

	hashgraph "github.com/blinklabs-io/gohashgraph"
)

type globalFlags struct {
	flagset     *flag.FlagSet
	network     string
	addressBook string
	timeout     int
	debug       bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.network,
		"network",
		"testnet",
		"specifies network to submit transactions to",
	)
	f.flagset.StringVar(
		&f.addressBook,
		"address-book",
		"",
		"path to a JSON address book file. this overrides the -network option",
	)
	f.flagset.IntVar(
		&f.timeout,
		"timeout",
		30,
		"timeout in seconds for transaction submission",
	)
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	if f.debug {
		slog.SetDefault(
			slog.New(
				slog.NewTextHandler(
					os.Stderr,
					&slog.HandlerOptions{Level: slog.LevelDebug},
				),
			),
		)
	}

	if len(f.flagset.Args()) > 0 {
		switch f.flagset.Arg(0) {
		case "transfer":
			runTransfer(f)
		case "topic-submit":
			runTopicSubmit(f)
		case "checksum":
			runChecksum(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf("You must specify a subcommand (transfer, topic-submit, or checksum)\n")
		os.Exit(1)
	}
}

// selectNetwork resolves the network from the global flags, preferring an
// address book file when one was given
func selectNetwork(f *globalFlags) hashgraph.Network {
	if f.addressBook != "" {
		addressBook, err := hashgraph.NewAddressBookFromFile(f.addressBook)
		if err != nil {
			fmt.Printf("Failed to load address book: %s\n", err)
			os.Exit(1)
		}
		network, err := addressBook.Network()
		if err != nil {
			fmt.Printf("Invalid address book: %s\n", err)
			os.Exit(1)
		}
		return network
	}
	network := hashgraph.NetworkByName(f.network)
	if network.Name == hashgraph.NetworkInvalid.Name {
		fmt.Printf("Invalid network specified: %s\n", f.network)
		os.Exit(1)
	}
	return network
}

func createClient(f *globalFlags) *hashgraph.Client {
	client, err := hashgraph.NewClient(
		hashgraph.WithNetwork(selectNetwork(f)),
	)
	if err != nil {
		fmt.Printf("Failed to create client: %s\n", err)
		os.Exit(1)
	}
	return client
}
