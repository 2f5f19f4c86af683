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

package transaction

import (
	"github.com/blinklabs-io/gohashgraph/cbor"
	"github.com/blinklabs-io/gohashgraph/ledger"
)

// AccountCreateData creates a new account controlled by the given key. The
// key's holder must co-sign the transaction, so the key is a required signer
type AccountCreateData struct {
	key            ledger.PublicKey
	keySet         bool
	initialBalance Hbar
}

// NewAccountCreate creates an AccountCreateData with the given controlling
// key
func NewAccountCreate(key ledger.PublicKey) *AccountCreateData {
	return &AccountCreateData{
		key:    key,
		keySet: true,
	}
}

// SetInitialBalance sets the amount transferred from the payer into the new
// account at creation
func (d *AccountCreateData) SetInitialBalance(amount Hbar) *AccountCreateData {
	d.initialBalance = amount
	return d
}

// Key returns the new account's controlling key
func (d *AccountCreateData) Key() ledger.PublicKey {
	return d.key
}

// InitialBalance returns the new account's starting balance
func (d *AccountCreateData) InitialBalance() Hbar {
	return d.initialBalance
}

func (d *AccountCreateData) TransactionType() TransactionType {
	return TransactionTypeAccountCreate
}

func (d *AccountCreateData) RequiredSigners() []ledger.PublicKey {
	if !d.keySet {
		return nil
	}
	return []ledger.PublicKey{d.key}
}

func (d *AccountCreateData) validate() error {
	if !d.keySet {
		return ErrMissingKey
	}
	return nil
}

func (d *AccountCreateData) validateChecksums(ledger.LedgerId) error {
	// No entity IDs on this body
	return nil
}

type accountCreateContent struct {
	cbor.StructAsArray
	Key            []byte
	InitialBalance int64
}

func (d *AccountCreateData) bodyContent() ([]byte, error) {
	return cbor.Encode(accountCreateContent{
		Key:            d.key.Bytes(),
		InitialBalance: d.initialBalance.Tinybar(),
	})
}

func (*AccountCreateData) isTransactionData() {}
