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
	"bytes"
	"slices"
	"time"

	"github.com/blinklabs-io/gohashgraph/cbor"
	"github.com/blinklabs-io/gohashgraph/ledger"
	"github.com/blinklabs-io/gohashgraph/protocol"
)

// signableBody is one chunk's wire body addressed to one candidate node,
// plus the signatures collected over it keyed by public key
type signableBody struct {
	nodeId     ledger.AccountId
	bodyBytes  []byte
	signatures map[ledger.PublicKey][]byte
}

// signedTransaction returns the wire form of the body with its signatures
// ordered by public key
func (b *signableBody) signedTransaction() protocol.SignedTransaction {
	sigPairs := make([]protocol.SigPair, 0, len(b.signatures))
	for key, sig := range b.signatures {
		sigPairs = append(sigPairs, protocol.SigPair{
			PubKey:    key.Bytes(),
			Signature: sig,
		})
	}
	slices.SortFunc(sigPairs, func(a, b protocol.SigPair) int {
		return bytes.Compare(a.PubKey, b.PubKey)
	})
	return protocol.SignedTransaction{
		BodyBytes: b.bodyBytes,
		SigPairs:  sigPairs,
	}
}

// frozenChunk is one ordered chunk of a frozen transaction with its signable
// bodies in candidate-node order
type frozenChunk struct {
	transactionId TransactionId
	index         int
	bodies        []*signableBody
}

// FrozenTransaction is the immutable signable form of a transaction. It is
// produced by Transaction.Freeze and moves through the signed and executed
// lifecycle states. A FrozenTransaction is not safe for concurrent use
type FrozenTransaction struct {
	state           State
	data            TransactionData
	payer           ledger.AccountId
	memo            string
	maxFee          Hbar
	validDuration   time.Duration
	transactionId   TransactionId
	nodeIds         []ledger.AccountId
	requiredSigners []ledger.PublicKey
	chunks          []*frozenChunk
}

// State returns the current lifecycle state
func (f *FrozenTransaction) State() State {
	return f.state
}

// Data returns the transaction's body kind
func (f *FrozenTransaction) Data() TransactionData {
	return f.data
}

// Payer returns the paying account
func (f *FrozenTransaction) Payer() ledger.AccountId {
	return f.payer
}

// TransactionId returns the transaction's ID. For multi-chunk transactions
// this is the group ID shared by every chunk
func (f *FrozenTransaction) TransactionId() TransactionId {
	return f.transactionId
}

// NodeIds returns the candidate nodes in submission order
func (f *FrozenTransaction) NodeIds() []ledger.AccountId {
	return slices.Clone(f.nodeIds)
}

// ChunkCount returns the number of chunks the transaction froze into
func (f *FrozenTransaction) ChunkCount() int {
	return len(f.chunks)
}

// ChunkTransactionIds returns the per-chunk transaction IDs in chunk order
func (f *FrozenTransaction) ChunkTransactionIds() []TransactionId {
	ret := make([]TransactionId, 0, len(f.chunks))
	for _, chunk := range f.chunks {
		ret = append(ret, chunk.transactionId)
	}
	return ret
}

// Sign collects a signature from the signer over every chunk/node body.
// Signing is idempotent per public key: signing again with the same key
// replaces its signatures
func (f *FrozenTransaction) Sign(signer Signer) error {
	newState, err := transitionTarget(f.state, operationSign)
	if err != nil {
		return err
	}
	pubKey := signer.PublicKey()
	for _, chunk := range f.chunks {
		for _, body := range chunk.bodies {
			body.signatures[pubKey] = signer.Sign(body.bodyBytes)
		}
	}
	f.state = newState
	return nil
}

// ValidateChecksums verifies the checksum of every entity ID on the
// transaction against the given ledger. IDs without a checksum always pass.
// The check is pure: calling it repeatedly gives the same result
func (f *FrozenTransaction) ValidateChecksums(
	ledgerId ledger.LedgerId,
) error {
	if err := f.payer.ValidateChecksum(ledgerId); err != nil {
		return err
	}
	for _, nodeId := range f.nodeIds {
		if err := nodeId.ValidateChecksum(ledgerId); err != nil {
			return err
		}
	}
	return f.data.validateChecksums(ledgerId)
}

// SchedulableBody returns the wire form of the transaction for later
// execution by a third party. Only single-chunk transactions can be
// scheduled
func (f *FrozenTransaction) SchedulableBody() ([]byte, error) {
	if _, err := transitionTarget(f.state, operationSchedule); err != nil {
		return nil, err
	}
	if len(f.chunks) > 1 {
		return nil, ErrMultiChunkSchedule
	}
	content, err := f.data.bodyContent()
	if err != nil {
		return nil, err
	}
	return cbor.Encode(schedulableBody{
		Payer:   f.payer,
		MaxFee:  f.maxFee.Tinybar(),
		Memo:    f.memo,
		Kind:    uint8(f.data.TransactionType()),
		Content: content,
	})
}
