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

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/blinklabs-io/gohashgraph/ledger"
)

// AddressBook represents a node address book config for a self-hosted or
// otherwise custom network
type AddressBook struct {
	Name     string             `json:"name"`
	LedgerId string             `json:"ledgerId"`
	Nodes    []AddressBookEntry `json:"nodes"`
}

type AddressBookEntry struct {
	Account string `json:"account"`
	Address string `json:"address"`
}

func NewAddressBookFromFile(path string) (*AddressBook, error) {
	dataFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dataFile.Close()
	return NewAddressBookFromReader(dataFile)
}

func NewAddressBookFromReader(r io.Reader) (*AddressBook, error) {
	a := &AddressBook{}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Network converts the address book into a Network, parsing the ledger ID
// and node account IDs
func (a *AddressBook) Network() (Network, error) {
	ledgerId, err := ledger.NewLedgerIdFromString(a.LedgerId)
	if err != nil {
		return NetworkInvalid, fmt.Errorf("address book: %w", err)
	}
	network := Network{
		Name:     a.Name,
		LedgerId: ledgerId,
	}
	for _, entry := range a.Nodes {
		nodeId, err := ledger.NewAccountIdFromString(entry.Account)
		if err != nil {
			return NetworkInvalid, fmt.Errorf(
				"address book: node %s: %w",
				entry.Account,
				err,
			)
		}
		network.Nodes = append(network.Nodes, NetworkNode{
			NodeId:  nodeId,
			Address: entry.Address,
		})
	}
	return network, nil
}
