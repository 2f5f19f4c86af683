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

package hashgraph

import "github.com/blinklabs-io/gohashgraph/ledger"

// Network definitions
var (
	NetworkMainnet = Network{
		Name:     "mainnet",
		LedgerId: ledger.LedgerIdMainnet,
		Nodes: []NetworkNode{
			{NodeId: ledger.NewAccountId(0, 0, 3), Address: "0.mainnet.hashgraph.network:50211"},
			{NodeId: ledger.NewAccountId(0, 0, 4), Address: "1.mainnet.hashgraph.network:50211"},
			{NodeId: ledger.NewAccountId(0, 0, 5), Address: "2.mainnet.hashgraph.network:50211"},
			{NodeId: ledger.NewAccountId(0, 0, 6), Address: "3.mainnet.hashgraph.network:50211"},
			{NodeId: ledger.NewAccountId(0, 0, 7), Address: "4.mainnet.hashgraph.network:50211"},
		},
	}
	NetworkTestnet = Network{
		Name:     "testnet",
		LedgerId: ledger.LedgerIdTestnet,
		Nodes: []NetworkNode{
			{NodeId: ledger.NewAccountId(0, 0, 3), Address: "0.testnet.hashgraph.network:50211"},
			{NodeId: ledger.NewAccountId(0, 0, 4), Address: "1.testnet.hashgraph.network:50211"},
			{NodeId: ledger.NewAccountId(0, 0, 5), Address: "2.testnet.hashgraph.network:50211"},
			{NodeId: ledger.NewAccountId(0, 0, 6), Address: "3.testnet.hashgraph.network:50211"},
		},
	}
	NetworkPreviewnet = Network{
		Name:     "previewnet",
		LedgerId: ledger.LedgerIdPreviewnet,
		Nodes: []NetworkNode{
			{NodeId: ledger.NewAccountId(0, 0, 3), Address: "0.previewnet.hashgraph.network:50211"},
			{NodeId: ledger.NewAccountId(0, 0, 4), Address: "1.previewnet.hashgraph.network:50211"},
			{NodeId: ledger.NewAccountId(0, 0, 5), Address: "2.previewnet.hashgraph.network:50211"},
			{NodeId: ledger.NewAccountId(0, 0, 6), Address: "3.previewnet.hashgraph.network:50211"},
		},
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
	NetworkPreviewnet,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByLedgerId returns a predefined network by ledger ID
func NetworkByLedgerId(ledgerId ledger.LedgerId) Network {
	for _, network := range networks {
		if network.LedgerId.Equal(ledgerId) {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a hashgraph ledger network
type Network struct {
	Name     string
	LedgerId ledger.LedgerId
	Nodes    []NetworkNode
}

func (n Network) String() string {
	return n.Name
}

// NetworkNode pairs a node's account ID with its network address
type NetworkNode struct {
	NodeId  ledger.AccountId
	Address string
}
