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
	"github.com/blinklabs-io/gohashgraph/ledger"
)

// TransactionType is the kind tag for a transaction body
type TransactionType uint8

const (
	TransactionTypeCryptoTransfer TransactionType = iota
	TransactionTypeAccountCreate
	TransactionTypeTokenAssociate
	TransactionTypeTokenDissociate
	TransactionTypeTokenPause
	TransactionTypeTopicMessageSubmit
	TransactionTypeFileAppend
)

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeCryptoTransfer:
		return "CryptoTransfer"
	case TransactionTypeAccountCreate:
		return "AccountCreate"
	case TransactionTypeTokenAssociate:
		return "TokenAssociate"
	case TransactionTypeTokenDissociate:
		return "TokenDissociate"
	case TransactionTypeTokenPause:
		return "TokenPause"
	case TransactionTypeTopicMessageSubmit:
		return "TopicMessageSubmit"
	case TransactionTypeFileAppend:
		return "FileAppend"
	default:
		return "Unknown"
	}
}

// TransactionData is a kind-specific transaction body. The set of kinds is
// closed: implementations live in this package and are dispatched by type
// tag, never by open-ended extension
type TransactionData interface {
	// TransactionType returns the kind tag for this body
	TransactionType() TransactionType
	// RequiredSigners returns the public keys this body itself names as
	// signers. Keys held by the network for existing entities are not
	// knowable client-side and are not included
	RequiredSigners() []ledger.PublicKey
	// validate checks kind-specific constraints before freezing
	validate() error
	// validateChecksums verifies the checksum of every entity ID on the body
	// against the given ledger
	validateChecksums(ledgerId ledger.LedgerId) error
	// bodyContent returns the CBOR encoding of the kind-specific content
	bodyContent() ([]byte, error)
	// isTransactionData closes the kind set to this package
	isTransactionData()
}

// chunkableData is implemented by kinds whose content may be split across
// multiple transactions
type chunkableData interface {
	TransactionData
	// chunkContent returns the raw content bytes subject to splitting
	chunkContent() []byte
	// withChunkContent returns a copy of the body carrying only the given
	// slice of the content
	withChunkContent(content []byte) TransactionData
}
