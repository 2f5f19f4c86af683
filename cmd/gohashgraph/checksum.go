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
	"fmt"
	"os"

	"github.com/blinklabs-io/gohashgraph/ledger"
)

// runChecksum parses an entity ID, validates any checksum it carries against
// the selected network, and prints the ID's checksummed form. This runs
// entirely offline
func runChecksum(f *globalFlags) {
	args := f.flagset.Args()[1:]
	if len(args) != 1 {
		fmt.Printf("you must specify an entity ID (e.g. 0.0.123)\n")
		os.Exit(1)
	}
	network := selectNetwork(f)
	entityId, err := ledger.NewEntityIdFromString(args[0])
	if err != nil {
		fmt.Printf("Invalid entity ID: %s\n", err)
		os.Exit(1)
	}
	if entityId.Checksum() != "" {
		if err := entityId.ValidateChecksum(network.LedgerId); err != nil {
			fmt.Printf("Checksum validation failed: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Checksum is valid for %s\n", network.Name)
		return
	}
	withChecksum, err := entityId.StringWithChecksum(network.LedgerId)
	if err != nil {
		fmt.Printf("Failed to compute checksum: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", withChecksum)
}
