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

package hashgraph_test

import (
	"reflect"
	"strings"
	"testing"

	hashgraph "github.com/blinklabs-io/gohashgraph"
	"github.com/blinklabs-io/gohashgraph/ledger"
)

type addressBookTestDefinition struct {
	jsonData       string
	expectedObject *hashgraph.AddressBook
}

var addressBookTests = []addressBookTestDefinition{
	{
		jsonData: `
{
  "name": "local",
  "ledgerId": "03",
  "nodes": [
    {
      "account": "0.0.3",
      "address": "127.0.0.1:50211"
    },
    {
      "account": "0.0.4",
      "address": "127.0.0.1:50212"
    }
  ]
}
`,
		expectedObject: &hashgraph.AddressBook{
			Name:     "local",
			LedgerId: "03",
			Nodes: []hashgraph.AddressBookEntry{
				{
					Account: "0.0.3",
					Address: "127.0.0.1:50211",
				},
				{
					Account: "0.0.4",
					Address: "127.0.0.1:50212",
				},
			},
		},
	},
	{
		jsonData: `
{
  "name": "testnet-mirror",
  "ledgerId": "testnet",
  "nodes": [
    {
      "account": "0.0.3",
      "address": "0.testnet.hashgraph.network:50211"
    }
  ]
}
`,
		expectedObject: &hashgraph.AddressBook{
			Name:     "testnet-mirror",
			LedgerId: "testnet",
			Nodes: []hashgraph.AddressBookEntry{
				{
					Account: "0.0.3",
					Address: "0.testnet.hashgraph.network:50211",
				},
			},
		},
	},
}

func TestParseAddressBook(t *testing.T) {
	for _, test := range addressBookTests {
		addressBook, err := hashgraph.NewAddressBookFromReader(
			strings.NewReader(test.jsonData),
		)
		if err != nil {
			t.Fatalf("failed to load AddressBook from JSON data: %s", err)
		}
		if !reflect.DeepEqual(addressBook, test.expectedObject) {
			t.Fatalf(
				"did not get expected object\n  got:\n    %#v\n  wanted:\n    %#v",
				addressBook,
				test.expectedObject,
			)
		}
	}
}

func TestAddressBookNetwork(t *testing.T) {
	addressBook, err := hashgraph.NewAddressBookFromReader(
		strings.NewReader(addressBookTests[0].jsonData),
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	network, err := addressBook.Network()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if network.Name != "local" {
		t.Fatalf("did not get expected name: got %s", network.Name)
	}
	if !network.LedgerId.Equal(ledger.LedgerId{0x03}) {
		t.Fatalf("did not get expected ledger ID: got %s", network.LedgerId)
	}
	if len(network.Nodes) != 2 {
		t.Fatalf(
			"did not get expected node count: got %d, wanted 2",
			len(network.Nodes),
		)
	}
	if !network.Nodes[0].NodeId.Equal(ledger.NewAccountId(0, 0, 3)) {
		t.Fatalf(
			"did not get expected node account: got %s",
			network.Nodes[0].NodeId.String(),
		)
	}
	if network.Nodes[1].Address != "127.0.0.1:50212" {
		t.Fatalf(
			"did not get expected node address: got %s",
			network.Nodes[1].Address,
		)
	}
}

func TestAddressBookNetworkInvalidAccount(t *testing.T) {
	addressBook := &hashgraph.AddressBook{
		Name:     "broken",
		LedgerId: "00",
		Nodes: []hashgraph.AddressBookEntry{
			{Account: "not-an-account", Address: "127.0.0.1:50211"},
		},
	}
	if _, err := addressBook.Network(); err == nil {
		t.Fatalf("expected error, got none")
	}
}

func TestAddressBookNetworkInvalidLedgerId(t *testing.T) {
	addressBook := &hashgraph.AddressBook{
		Name:     "broken",
		LedgerId: "not-a-ledger",
		Nodes: []hashgraph.AddressBookEntry{
			{Account: "0.0.3", Address: "127.0.0.1:50211"},
		},
	}
	if _, err := addressBook.Network(); err == nil {
		t.Fatalf("expected error, got none")
	}
}
