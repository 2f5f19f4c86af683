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
	"errors"
	"fmt"

	"github.com/blinklabs-io/gohashgraph/ledger"
)

var (
	// ErrAlreadyFrozen is returned when mutating or re-freezing a builder
	// that has already been frozen
	ErrAlreadyFrozen = errors.New("transaction is already frozen")
	// ErrAlreadyExecuted is returned when operating on a transaction that
	// has already been executed
	ErrAlreadyExecuted = errors.New("transaction has already been executed")
	// ErrNoPayer is returned when freezing a transaction without a payer
	// account
	ErrNoPayer = errors.New("transaction has no payer account")
	// ErrEmptyNodeList is returned when freezing a transaction without any
	// candidate nodes
	ErrEmptyNodeList = errors.New("transaction has no candidate nodes")
	// ErrMemoTooLong is returned when the transaction memo exceeds
	// MaxMemoLength bytes
	ErrMemoTooLong = errors.New("transaction memo is too long")
	// ErrBodyTooLarge is returned when a non-chunkable transaction body
	// exceeds the chunk size
	ErrBodyTooLarge = errors.New("transaction body is too large")
	// ErrMultiChunkSchedule is returned when requesting the schedulable form
	// of a transaction that froze into multiple chunks
	ErrMultiChunkSchedule = errors.New(
		"multi-chunk transactions cannot be scheduled",
	)
	// ErrSignatureMissing is returned when executing a transaction that is
	// missing a required signature
	ErrSignatureMissing = errors.New("transaction is missing a signature")
	// ErrUnbalancedTransfer is returned when a transfer list does not sum to
	// zero for a currency
	ErrUnbalancedTransfer = errors.New("transfer amounts do not sum to zero")
	// ErrEmptyTransferList is returned when a transfer has no entries
	ErrEmptyTransferList = errors.New("transfer has no entries")
	// ErrEmptyTokenList is returned when an association has no tokens
	ErrEmptyTokenList = errors.New("no token IDs provided")
	// ErrMissingKey is returned when an account create has no key
	ErrMissingKey = errors.New("account create requires a key")
	// ErrInvalidTransactionId is returned when parsing a malformed
	// transaction ID string
	ErrInvalidTransactionId = errors.New("invalid transaction ID")
)

// StateError indicates an operation that is not allowed in the transaction's
// current lifecycle state
type StateError struct {
	Operation string
	State     State
}

func (e StateError) Error() string {
	return fmt.Sprintf(
		"operation %s not allowed in state %s",
		e.Operation,
		e.State,
	)
}

// SignatureMissingError indicates a required signer that has not signed yet
type SignatureMissingError struct {
	Key ledger.PublicKey
}

func (e SignatureMissingError) Error() string {
	return fmt.Sprintf("missing signature for key %s", e.Key.String())
}

func (SignatureMissingError) Is(target error) bool {
	return target == ErrSignatureMissing
}

// TransactionIdFormatError indicates a transaction ID string that could not
// be parsed
type TransactionIdFormatError struct {
	Text   string
	Reason string
}

func (e TransactionIdFormatError) Error() string {
	return fmt.Sprintf("invalid transaction ID %q: %s", e.Text, e.Reason)
}

func (TransactionIdFormatError) Is(target error) bool {
	return target == ErrInvalidTransactionId
}
