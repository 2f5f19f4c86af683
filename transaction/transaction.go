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

// Package transaction implements the transaction lifecycle: a mutable
// builder describing what to submit, frozen into immutable signable
// payloads, signed, and executed against candidate nodes
package transaction

import (
	"fmt"
	"time"

	"github.com/blinklabs-io/gohashgraph/cbor"
	"github.com/blinklabs-io/gohashgraph/ledger"
)

const (
	// MaxMemoLength is the maximum transaction memo size in bytes
	MaxMemoLength = 100
	// DefaultChunkSize is the default maximum content size per chunk
	DefaultChunkSize = 4096
	// DefaultValidDuration is the default window after the valid-start
	// during which a transaction may be accepted
	DefaultValidDuration = 120 * time.Second
)

// DefaultMaxFee is the default maximum fee charged to the payer
var DefaultMaxFee = NewHbar(2)

// Transaction is the mutable description of a transaction before freezing.
// Setters fail with ErrAlreadyFrozen once Freeze has run; the frozen form
// lives in a separate immutable type
type Transaction struct {
	data          TransactionData
	payer         *ledger.AccountId
	memo          string
	maxFee        Hbar
	validDuration time.Duration
	transactionId *TransactionId
	chunkSize     int
	frozen        bool
}

// NewTransaction creates a Transaction builder around the given body kind
func NewTransaction(data TransactionData) *Transaction {
	return &Transaction{
		data:          data,
		maxFee:        DefaultMaxFee,
		validDuration: DefaultValidDuration,
		chunkSize:     DefaultChunkSize,
	}
}

// SetPayer sets the account paying for the transaction
func (t *Transaction) SetPayer(payer ledger.AccountId) error {
	if t.frozen {
		return ErrAlreadyFrozen
	}
	t.payer = &payer
	return nil
}

// SetMemo sets the transaction memo. Length is validated at freeze
func (t *Transaction) SetMemo(memo string) error {
	if t.frozen {
		return ErrAlreadyFrozen
	}
	t.memo = memo
	return nil
}

// SetMaxFee sets the maximum fee the payer is willing to be charged
func (t *Transaction) SetMaxFee(maxFee Hbar) error {
	if t.frozen {
		return ErrAlreadyFrozen
	}
	t.maxFee = maxFee
	return nil
}

// SetValidDuration sets the window after the valid-start during which the
// transaction may be accepted
func (t *Transaction) SetValidDuration(validDuration time.Duration) error {
	if t.frozen {
		return ErrAlreadyFrozen
	}
	t.validDuration = validDuration
	return nil
}

// SetTransactionId sets an explicit transaction ID, fixing both the payer
// and the valid-start
func (t *Transaction) SetTransactionId(transactionId TransactionId) error {
	if t.frozen {
		return ErrAlreadyFrozen
	}
	t.transactionId = &transactionId
	return nil
}

// SetChunkSize overrides the maximum content size per chunk
func (t *Transaction) SetChunkSize(chunkSize int) error {
	if t.frozen {
		return ErrAlreadyFrozen
	}
	if chunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	t.chunkSize = chunkSize
	return nil
}

// Data returns the transaction's body kind
func (t *Transaction) Data() TransactionData {
	return t.data
}

// Payer returns the configured payer account, if any
func (t *Transaction) Payer() *ledger.AccountId {
	if t.payer == nil {
		return nil
	}
	ret := *t.payer
	return &ret
}

// Memo returns the transaction memo
func (t *Transaction) Memo() string {
	return t.memo
}

// MaxFee returns the maximum fee
func (t *Transaction) MaxFee() Hbar {
	return t.maxFee
}

// ValidDuration returns the acceptance window
func (t *Transaction) ValidDuration() time.Duration {
	return t.validDuration
}

// ChunkSize returns the maximum content size per chunk
func (t *Transaction) ChunkSize() int {
	return t.chunkSize
}

// Frozen returns whether Freeze has run
func (t *Transaction) Frozen() bool {
	return t.frozen
}

// Freeze validates the transaction and builds its immutable signable form:
// one chunk per chunk-size slice of chunkable content (always at least one),
// and within each chunk one signable body per candidate node, in the given
// node order. After a successful freeze the builder latches and rejects
// further mutation
func (t *Transaction) Freeze(
	nodeIds []ledger.AccountId,
) (*FrozenTransaction, error) {
	if t.frozen {
		return nil, ErrAlreadyFrozen
	}
	var transactionId TransactionId
	switch {
	case t.transactionId != nil:
		transactionId = *t.transactionId
	case t.payer != nil:
		transactionId = NewTransactionIdGenerate(*t.payer)
	default:
		return nil, ErrNoPayer
	}
	if len(nodeIds) == 0 {
		return nil, ErrEmptyNodeList
	}
	if len(t.memo) > MaxMemoLength {
		return nil, fmt.Errorf(
			"%w: %d bytes (max %d)",
			ErrMemoTooLong,
			len(t.memo),
			MaxMemoLength,
		)
	}
	if err := t.data.validate(); err != nil {
		return nil, err
	}
	chunkDatas, err := t.splitChunks()
	if err != nil {
		return nil, err
	}
	frozen := &FrozenTransaction{
		state:           StateFrozen,
		data:            t.data,
		payer:           transactionId.Payer(),
		memo:            t.memo,
		maxFee:          t.maxFee,
		validDuration:   t.validDuration,
		transactionId:   transactionId,
		nodeIds:         append([]ledger.AccountId{}, nodeIds...),
		requiredSigners: t.data.RequiredSigners(),
	}
	multiChunk := len(chunkDatas) > 1
	for i, chunkData := range chunkDatas {
		content, err := chunkData.bodyContent()
		if err != nil {
			return nil, err
		}
		var info *chunkInfo
		if multiChunk {
			info = &chunkInfo{
				InitialId: transactionId,
				Index:     i,
				Total:     len(chunkDatas),
			}
		}
		chunk := &frozenChunk{
			transactionId: transactionId.withValidStartOffset(int64(i)),
			index:         i,
		}
		for _, nodeId := range nodeIds {
			body := transactionBody{
				TransactionId: chunk.transactionId,
				NodeAccountId: nodeId,
				MaxFee:        t.maxFee.Tinybar(),
				ValidDuration: int64(t.validDuration / time.Second),
				Memo:          t.memo,
				Kind:          uint8(chunkData.TransactionType()),
				Content:       content,
				ChunkInfo:     info,
			}
			bodyBytes, err := cbor.Encode(body)
			if err != nil {
				return nil, err
			}
			chunk.bodies = append(chunk.bodies, &signableBody{
				nodeId:     nodeId,
				bodyBytes:  bodyBytes,
				signatures: map[ledger.PublicKey][]byte{},
			})
		}
		frozen.chunks = append(frozen.chunks, chunk)
	}
	t.frozen = true
	return frozen, nil
}

// splitChunks returns the per-chunk body kinds: chunkable content is split
// into chunk-size slices, everything else must fit in a single chunk
func (t *Transaction) splitChunks() ([]TransactionData, error) {
	chunkable, ok := t.data.(chunkableData)
	if !ok {
		content, err := t.data.bodyContent()
		if err != nil {
			return nil, err
		}
		if len(content) > t.chunkSize {
			return nil, fmt.Errorf(
				"%w: %s content is %d bytes (max %d)",
				ErrBodyTooLarge,
				t.data.TransactionType(),
				len(content),
				t.chunkSize,
			)
		}
		return []TransactionData{t.data}, nil
	}
	content := chunkable.chunkContent()
	total := (len(content) + t.chunkSize - 1) / t.chunkSize
	if total == 0 {
		// Empty content still produces a single chunk
		total = 1
	}
	chunkDatas := make([]TransactionData, 0, total)
	for i := range total {
		start := i * t.chunkSize
		end := min(start+t.chunkSize, len(content))
		chunkDatas = append(
			chunkDatas,
			chunkable.withChunkContent(content[start:end]),
		)
	}
	return chunkDatas, nil
}
