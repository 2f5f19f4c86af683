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
	"context"
	"fmt"

	"github.com/blinklabs-io/gohashgraph/cbor"
	"github.com/blinklabs-io/gohashgraph/ledger"
	"github.com/blinklabs-io/gohashgraph/protocol"
)

// NodePayload pairs a candidate node with the wire payload built for it
type NodePayload struct {
	NodeId  ledger.AccountId
	Payload protocol.SignedTransaction
}

// SubmitResult reports the terminal outcome of dispatching one payload set:
// the accepting node and its status. Cost carries the node's fee estimate
// when the status reports an insufficient fee
type SubmitResult struct {
	Status protocol.Status
	NodeId ledger.AccountId
	Cost   uint64
}

// Submitter dispatches a wire payload to candidate nodes until a terminal
// outcome. It also identifies the ledger being submitted to, so checksummed
// entity IDs can be validated before anything goes on the wire. The root
// package's Client is the standard implementation
type Submitter interface {
	LedgerId() ledger.LedgerId
	Submit(ctx context.Context, payloads []NodePayload) (*SubmitResult, error)
}

// Receipt reports a completed execution
type Receipt struct {
	Status          protocol.Status
	TransactionId   TransactionId
	NodeId          ledger.AccountId
	TransactionHash ledger.Blake2b256
}

// Execute dispatches the transaction's chunks in order via the submitter.
// Entity ID checksums and required signatures are verified before any
// network activity. Chunks are submitted strictly sequentially: a chunk
// failure aborts the remainder (already-submitted chunks stay submitted),
// and cancellation is honored between chunks. On success the transaction
// reaches its terminal executed state and cannot be executed again
func (f *FrozenTransaction) Execute(
	ctx context.Context,
	submitter Submitter,
) (*Receipt, error) {
	newState, err := transitionTarget(f.state, operationExecute)
	if err != nil {
		return nil, err
	}
	if err := f.ValidateChecksums(submitter.LedgerId()); err != nil {
		return nil, err
	}
	if err := f.checkSignatures(); err != nil {
		return nil, err
	}
	var lastResult *SubmitResult
	for _, chunk := range f.chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		payloads := make([]NodePayload, 0, len(chunk.bodies))
		for _, body := range chunk.bodies {
			payloads = append(payloads, NodePayload{
				NodeId:  body.nodeId,
				Payload: body.signedTransaction(),
			})
		}
		result, err := submitter.Submit(ctx, payloads)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", chunk.index, err)
		}
		lastResult = result
	}
	f.state = newState
	txHash, err := f.acceptedPayloadHash(lastResult.NodeId)
	if err != nil {
		return nil, err
	}
	return &Receipt{
		Status:          lastResult.Status,
		TransactionId:   f.transactionId,
		NodeId:          lastResult.NodeId,
		TransactionHash: txHash,
	}, nil
}

// checkSignatures asserts that every body carries at least one signature
// (the payer's, at minimum) and a signature for every required signer the
// body kind names
func (f *FrozenTransaction) checkSignatures() error {
	for _, chunk := range f.chunks {
		for _, body := range chunk.bodies {
			if len(body.signatures) == 0 {
				return fmt.Errorf(
					"%w: payer signature required",
					ErrSignatureMissing,
				)
			}
			for _, key := range f.requiredSigners {
				if _, ok := body.signatures[key]; !ok {
					return SignatureMissingError{Key: key}
				}
			}
		}
	}
	return nil
}

// acceptedPayloadHash hashes the wire payload of the final chunk as accepted
// by the given node
func (f *FrozenTransaction) acceptedPayloadHash(
	nodeId ledger.AccountId,
) (ledger.Blake2b256, error) {
	finalChunk := f.chunks[len(f.chunks)-1]
	for _, body := range finalChunk.bodies {
		if body.nodeId.Equal(nodeId) {
			data, err := cbor.Encode(body.signedTransaction())
			if err != nil {
				return ledger.Blake2b256{}, err
			}
			return ledger.Blake2b256Hash(data), nil
		}
	}
	return ledger.Blake2b256{}, fmt.Errorf(
		"no payload for accepting node %s",
		nodeId.String(),
	)
}
