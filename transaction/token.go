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
	"slices"

	"github.com/blinklabs-io/gohashgraph/cbor"
	"github.com/blinklabs-io/gohashgraph/ledger"
)

type tokenListContent struct {
	cbor.StructAsArray
	Account ledger.AccountId
	Tokens  []ledger.TokenId
}

// TokenAssociateData associates an account with the given tokens. The token
// list order is preserved on the wire
type TokenAssociateData struct {
	accountId ledger.AccountId
	tokenIds  []ledger.TokenId
}

// NewTokenAssociate creates a TokenAssociateData for the given account and
// tokens
func NewTokenAssociate(
	accountId ledger.AccountId,
	tokenIds ...ledger.TokenId,
) *TokenAssociateData {
	return &TokenAssociateData{
		accountId: accountId,
		tokenIds:  tokenIds,
	}
}

// AddTokenId appends a token to the association list
func (d *TokenAssociateData) AddTokenId(
	tokenId ledger.TokenId,
) *TokenAssociateData {
	d.tokenIds = append(d.tokenIds, tokenId)
	return d
}

// AccountId returns the account being associated
func (d *TokenAssociateData) AccountId() ledger.AccountId {
	return d.accountId
}

// TokenIds returns the tokens in insertion order
func (d *TokenAssociateData) TokenIds() []ledger.TokenId {
	return slices.Clone(d.tokenIds)
}

func (d *TokenAssociateData) TransactionType() TransactionType {
	return TransactionTypeTokenAssociate
}

func (d *TokenAssociateData) RequiredSigners() []ledger.PublicKey {
	return nil
}

func (d *TokenAssociateData) validate() error {
	if len(d.tokenIds) == 0 {
		return ErrEmptyTokenList
	}
	return nil
}

func (d *TokenAssociateData) validateChecksums(
	ledgerId ledger.LedgerId,
) error {
	if err := d.accountId.ValidateChecksum(ledgerId); err != nil {
		return err
	}
	for _, tokenId := range d.tokenIds {
		if err := tokenId.ValidateChecksum(ledgerId); err != nil {
			return err
		}
	}
	return nil
}

func (d *TokenAssociateData) bodyContent() ([]byte, error) {
	return cbor.Encode(tokenListContent{
		Account: d.accountId,
		Tokens:  d.tokenIds,
	})
}

func (*TokenAssociateData) isTransactionData() {}

// TokenDissociateData removes an account's association with the given
// tokens. The token list order is preserved on the wire
type TokenDissociateData struct {
	accountId ledger.AccountId
	tokenIds  []ledger.TokenId
}

// NewTokenDissociate creates a TokenDissociateData for the given account and
// tokens
func NewTokenDissociate(
	accountId ledger.AccountId,
	tokenIds ...ledger.TokenId,
) *TokenDissociateData {
	return &TokenDissociateData{
		accountId: accountId,
		tokenIds:  tokenIds,
	}
}

// AddTokenId appends a token to the dissociation list
func (d *TokenDissociateData) AddTokenId(
	tokenId ledger.TokenId,
) *TokenDissociateData {
	d.tokenIds = append(d.tokenIds, tokenId)
	return d
}

// AccountId returns the account being dissociated
func (d *TokenDissociateData) AccountId() ledger.AccountId {
	return d.accountId
}

// TokenIds returns the tokens in insertion order
func (d *TokenDissociateData) TokenIds() []ledger.TokenId {
	return slices.Clone(d.tokenIds)
}

func (d *TokenDissociateData) TransactionType() TransactionType {
	return TransactionTypeTokenDissociate
}

func (d *TokenDissociateData) RequiredSigners() []ledger.PublicKey {
	return nil
}

func (d *TokenDissociateData) validate() error {
	if len(d.tokenIds) == 0 {
		return ErrEmptyTokenList
	}
	return nil
}

func (d *TokenDissociateData) validateChecksums(
	ledgerId ledger.LedgerId,
) error {
	if err := d.accountId.ValidateChecksum(ledgerId); err != nil {
		return err
	}
	for _, tokenId := range d.tokenIds {
		if err := tokenId.ValidateChecksum(ledgerId); err != nil {
			return err
		}
	}
	return nil
}

func (d *TokenDissociateData) bodyContent() ([]byte, error) {
	return cbor.Encode(tokenListContent{
		Account: d.accountId,
		Tokens:  d.tokenIds,
	})
}

func (*TokenDissociateData) isTransactionData() {}

// TokenPauseData pauses all operations on a token
type TokenPauseData struct {
	tokenId ledger.TokenId
}

// NewTokenPause creates a TokenPauseData for the given token
func NewTokenPause(tokenId ledger.TokenId) *TokenPauseData {
	return &TokenPauseData{
		tokenId: tokenId,
	}
}

// TokenId returns the token being paused
func (d *TokenPauseData) TokenId() ledger.TokenId {
	return d.tokenId
}

func (d *TokenPauseData) TransactionType() TransactionType {
	return TransactionTypeTokenPause
}

func (d *TokenPauseData) RequiredSigners() []ledger.PublicKey {
	return nil
}

func (d *TokenPauseData) validate() error {
	return nil
}

func (d *TokenPauseData) validateChecksums(ledgerId ledger.LedgerId) error {
	return d.tokenId.ValidateChecksum(ledgerId)
}

type tokenPauseContent struct {
	cbor.StructAsArray
	Token ledger.TokenId
}

func (d *TokenPauseData) bodyContent() ([]byte, error) {
	return cbor.Encode(tokenPauseContent{
		Token: d.tokenId,
	})
}

func (*TokenPauseData) isTransactionData() {}
