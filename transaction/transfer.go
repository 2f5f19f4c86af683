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
	"fmt"
	"slices"

	"github.com/blinklabs-io/gohashgraph/cbor"
	"github.com/blinklabs-io/gohashgraph/ledger"
)

// HbarTransfer moves an amount of hbar into (positive) or out of (negative)
// an account
type HbarTransfer struct {
	AccountId ledger.AccountId
	Amount    Hbar
}

// TokenTransfer moves an amount of a token's units into (positive) or out of
// (negative) an account
type TokenTransfer struct {
	TokenId   ledger.TokenId
	AccountId ledger.AccountId
	Amount    int64
}

// CryptoTransferData moves hbar and token units between accounts. Transfer
// lists are ordered, and each currency's amounts must sum to zero
type CryptoTransferData struct {
	hbarTransfers  []HbarTransfer
	tokenTransfers []TokenTransfer
}

// NewCryptoTransfer creates an empty CryptoTransferData
func NewCryptoTransfer() *CryptoTransferData {
	return &CryptoTransferData{}
}

// AddHbarTransfer appends an hbar transfer entry
func (d *CryptoTransferData) AddHbarTransfer(
	accountId ledger.AccountId,
	amount Hbar,
) *CryptoTransferData {
	d.hbarTransfers = append(
		d.hbarTransfers,
		HbarTransfer{AccountId: accountId, Amount: amount},
	)
	return d
}

// AddTokenTransfer appends a token transfer entry
func (d *CryptoTransferData) AddTokenTransfer(
	tokenId ledger.TokenId,
	accountId ledger.AccountId,
	amount int64,
) *CryptoTransferData {
	d.tokenTransfers = append(
		d.tokenTransfers,
		TokenTransfer{TokenId: tokenId, AccountId: accountId, Amount: amount},
	)
	return d
}

// HbarTransfers returns the hbar transfer entries in insertion order
func (d *CryptoTransferData) HbarTransfers() []HbarTransfer {
	return slices.Clone(d.hbarTransfers)
}

// TokenTransfers returns the token transfer entries in insertion order
func (d *CryptoTransferData) TokenTransfers() []TokenTransfer {
	return slices.Clone(d.tokenTransfers)
}

func (d *CryptoTransferData) TransactionType() TransactionType {
	return TransactionTypeCryptoTransfer
}

func (d *CryptoTransferData) RequiredSigners() []ledger.PublicKey {
	return nil
}

func (d *CryptoTransferData) validate() error {
	if len(d.hbarTransfers) == 0 && len(d.tokenTransfers) == 0 {
		return ErrEmptyTransferList
	}
	var hbarSum int64
	for _, transfer := range d.hbarTransfers {
		hbarSum += transfer.Amount.Tinybar()
	}
	if hbarSum != 0 {
		return fmt.Errorf("%w: hbar", ErrUnbalancedTransfer)
	}
	tokenSums := map[string]int64{}
	var tokenOrder []string
	for _, transfer := range d.tokenTransfers {
		key := transfer.TokenId.String()
		if _, ok := tokenSums[key]; !ok {
			tokenOrder = append(tokenOrder, key)
		}
		tokenSums[key] += transfer.Amount
	}
	for _, key := range tokenOrder {
		if tokenSums[key] != 0 {
			return fmt.Errorf("%w: token %s", ErrUnbalancedTransfer, key)
		}
	}
	return nil
}

func (d *CryptoTransferData) validateChecksums(
	ledgerId ledger.LedgerId,
) error {
	for _, transfer := range d.hbarTransfers {
		if err := transfer.AccountId.ValidateChecksum(ledgerId); err != nil {
			return err
		}
	}
	for _, transfer := range d.tokenTransfers {
		if err := transfer.TokenId.ValidateChecksum(ledgerId); err != nil {
			return err
		}
		if err := transfer.AccountId.ValidateChecksum(ledgerId); err != nil {
			return err
		}
	}
	return nil
}

type hbarTransferWire struct {
	cbor.StructAsArray
	Account ledger.AccountId
	Amount  int64
}

type tokenTransferWire struct {
	cbor.StructAsArray
	Token   ledger.TokenId
	Account ledger.AccountId
	Amount  int64
}

type cryptoTransferContent struct {
	cbor.StructAsArray
	HbarTransfers  []hbarTransferWire
	TokenTransfers []tokenTransferWire
}

func (d *CryptoTransferData) bodyContent() ([]byte, error) {
	content := cryptoTransferContent{
		HbarTransfers:  make([]hbarTransferWire, 0, len(d.hbarTransfers)),
		TokenTransfers: make([]tokenTransferWire, 0, len(d.tokenTransfers)),
	}
	for _, transfer := range d.hbarTransfers {
		content.HbarTransfers = append(
			content.HbarTransfers,
			hbarTransferWire{
				Account: transfer.AccountId,
				Amount:  transfer.Amount.Tinybar(),
			},
		)
	}
	for _, transfer := range d.tokenTransfers {
		content.TokenTransfers = append(
			content.TokenTransfers,
			tokenTransferWire{
				Token:   transfer.TokenId,
				Account: transfer.AccountId,
				Amount:  transfer.Amount,
			},
		)
	}
	return cbor.Encode(content)
}

func (*CryptoTransferData) isTransactionData() {}
