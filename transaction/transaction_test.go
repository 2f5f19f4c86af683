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
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/blinklabs-io/gohashgraph/ledger"
)

func testNodeIds(t *testing.T) []ledger.AccountId {
	t.Helper()
	return []ledger.AccountId{
		ledger.NewAccountId(0, 0, 3),
		ledger.NewAccountId(0, 0, 4),
	}
}

func testTransferData(t *testing.T) *CryptoTransferData {
	t.Helper()
	return NewCryptoTransfer().
		AddHbarTransfer(testAccountId(t, 100), NewHbar(-1)).
		AddHbarTransfer(testAccountId(t, 200), NewHbar(1))
}

func TestTransactionDefaults(t *testing.T) {
	tx := NewTransaction(testTransferData(t))
	if tx.MaxFee() != DefaultMaxFee {
		t.Fatalf(
			"did not get expected default max fee: got %s, wanted %s",
			tx.MaxFee(),
			DefaultMaxFee,
		)
	}
	if tx.ValidDuration() != DefaultValidDuration {
		t.Fatalf(
			"did not get expected default valid duration: got %s, wanted %s",
			tx.ValidDuration(),
			DefaultValidDuration,
		)
	}
	if tx.ChunkSize() != DefaultChunkSize {
		t.Fatalf(
			"did not get expected default chunk size: got %d, wanted %d",
			tx.ChunkSize(),
			DefaultChunkSize,
		)
	}
	if tx.Payer() != nil {
		t.Fatalf("unexpected default payer: %s", tx.Payer().String())
	}
	if tx.Frozen() {
		t.Fatalf("new transaction reports frozen")
	}
}

func TestTransactionSettersLatchAfterFreeze(t *testing.T) {
	tx := NewTransaction(testTransferData(t))
	if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := tx.Freeze(testNodeIds(t)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !tx.Frozen() {
		t.Fatalf("transaction does not report frozen after freeze")
	}
	setters := map[string]func() error{
		"SetPayer":         func() error { return tx.SetPayer(testAccountId(t, 1002)) },
		"SetMemo":          func() error { return tx.SetMemo("too late") },
		"SetMaxFee":        func() error { return tx.SetMaxFee(NewHbar(5)) },
		"SetValidDuration": func() error { return tx.SetValidDuration(time.Minute) },
		"SetTransactionId": func() error {
			return tx.SetTransactionId(
				NewTransactionId(testAccountId(t, 1001), time.Now()),
			)
		},
		"SetChunkSize": func() error { return tx.SetChunkSize(1024) },
	}
	for name, setter := range setters {
		if err := setter(); !errors.Is(err, ErrAlreadyFrozen) {
			t.Fatalf(
				"%s after freeze did not fail with ErrAlreadyFrozen: %s",
				name,
				err,
			)
		}
	}
}

func TestTransactionRefreeze(t *testing.T) {
	tx := NewTransaction(testTransferData(t))
	if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := tx.Freeze(testNodeIds(t)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := tx.Freeze(testNodeIds(t)); !errors.Is(err, ErrAlreadyFrozen) {
		t.Fatalf("second freeze did not fail with ErrAlreadyFrozen: %v", err)
	}
}

func TestTransactionFreezeNoPayer(t *testing.T) {
	tx := NewTransaction(testTransferData(t))
	if _, err := tx.Freeze(testNodeIds(t)); !errors.Is(err, ErrNoPayer) {
		t.Fatalf("freeze without payer did not fail with ErrNoPayer: %v", err)
	}
}

func TestTransactionFreezeEmptyNodeList(t *testing.T) {
	tx := NewTransaction(testTransferData(t))
	if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := tx.Freeze(nil); !errors.Is(err, ErrEmptyNodeList) {
		t.Fatalf(
			"freeze without nodes did not fail with ErrEmptyNodeList: %v",
			err,
		)
	}
}

func TestTransactionFreezeMemoTooLong(t *testing.T) {
	tx := NewTransaction(testTransferData(t))
	if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := tx.SetMemo(strings.Repeat("x", MaxMemoLength+1)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := tx.Freeze(testNodeIds(t)); !errors.Is(err, ErrMemoTooLong) {
		t.Fatalf(
			"freeze with oversized memo did not fail with ErrMemoTooLong: %v",
			err,
		)
	}
}

func TestTransactionFreezeInvalidBody(t *testing.T) {
	tx := NewTransaction(NewCryptoTransfer())
	if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := tx.Freeze(testNodeIds(t)); !errors.Is(err, ErrEmptyTransferList) {
		t.Fatalf(
			"freeze with empty transfer list did not fail with ErrEmptyTransferList: %v",
			err,
		)
	}
}

func TestTransactionFreezeSingleChunk(t *testing.T) {
	nodeIds := testNodeIds(t)
	tx := NewTransaction(testTransferData(t))
	if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	frozen, err := tx.Freeze(nodeIds)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if frozen.State() != StateFrozen {
		t.Fatalf(
			"did not get expected state: got %s, wanted %s",
			frozen.State(),
			StateFrozen,
		)
	}
	if frozen.ChunkCount() != 1 {
		t.Fatalf(
			"did not get expected chunk count: got %d, wanted 1",
			frozen.ChunkCount(),
		)
	}
	if !frozen.Payer().Equal(testAccountId(t, 1001)) {
		t.Fatalf("did not get expected payer: got %s", frozen.Payer().String())
	}
	chunk := frozen.chunks[0]
	if !chunk.transactionId.Equal(frozen.TransactionId()) {
		t.Fatalf(
			"single-chunk transaction ID differs from group ID: %s != %s",
			chunk.transactionId,
			frozen.TransactionId(),
		)
	}
	if len(chunk.bodies) != len(nodeIds) {
		t.Fatalf(
			"did not get expected body count: got %d, wanted %d",
			len(chunk.bodies),
			len(nodeIds),
		)
	}
	for i, body := range chunk.bodies {
		if !body.nodeId.Equal(nodeIds[i]) {
			t.Fatalf(
				"body %d does not preserve node order: got %s, wanted %s",
				i,
				body.nodeId.String(),
				nodeIds[i].String(),
			)
		}
		if len(body.bodyBytes) == 0 {
			t.Fatalf("body %d has empty body bytes", i)
		}
		if len(body.signatures) != 0 {
			t.Fatalf("body %d carries signatures before signing", i)
		}
	}
}

func TestTransactionFreezeMultiChunk(t *testing.T) {
	nodeIds := testNodeIds(t)
	message := append(
		bytes.Repeat([]byte{'a'}, DefaultChunkSize),
		bytes.Repeat([]byte{'b'}, 6000-DefaultChunkSize)...,
	)
	tx := NewTransaction(
		NewTopicMessageSubmit(ledger.NewTopicId(0, 0, 777), message),
	)
	if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	frozen, err := tx.Freeze(nodeIds)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if frozen.ChunkCount() != 2 {
		t.Fatalf(
			"did not get expected chunk count: got %d, wanted 2",
			frozen.ChunkCount(),
		)
	}
	chunkIds := frozen.ChunkTransactionIds()
	if !chunkIds[0].Equal(frozen.TransactionId()) {
		t.Fatalf(
			"first chunk ID differs from group ID: %s != %s",
			chunkIds[0],
			frozen.TransactionId(),
		)
	}
	wantedSecond := frozen.TransactionId().ValidStart().Add(time.Nanosecond)
	if !chunkIds[1].ValidStart().Equal(wantedSecond) {
		t.Fatalf(
			"second chunk valid-start is not offset by one nanosecond: got %s, wanted %s",
			chunkIds[1].ValidStart(),
			wantedSecond,
		)
	}
	if !chunkIds[1].Payer().Equal(chunkIds[0].Payer()) {
		t.Fatalf("chunk IDs do not share a payer")
	}
	for i, chunk := range frozen.chunks {
		if chunk.index != i {
			t.Fatalf(
				"did not get expected chunk index: got %d, wanted %d",
				chunk.index,
				i,
			)
		}
		if len(chunk.bodies) != len(nodeIds) {
			t.Fatalf(
				"chunk %d did not get expected body count: got %d, wanted %d",
				i,
				len(chunk.bodies),
				len(nodeIds),
			)
		}
	}
	// The encoded bodies embed the chunk's content slice as a raw byte
	// string, so the split shows up directly in the body bytes
	firstBody := frozen.chunks[0].bodies[0].bodyBytes
	secondBody := frozen.chunks[1].bodies[0].bodyBytes
	if !bytes.Contains(firstBody, bytes.Repeat([]byte{'a'}, DefaultChunkSize)) {
		t.Fatalf("first chunk body does not contain the first content slice")
	}
	if bytes.Contains(secondBody, bytes.Repeat([]byte{'a'}, DefaultChunkSize)) {
		t.Fatalf("second chunk body contains the first content slice")
	}
	if !bytes.Contains(
		secondBody,
		bytes.Repeat([]byte{'b'}, 6000-DefaultChunkSize),
	) {
		t.Fatalf("second chunk body does not contain the second content slice")
	}
}

func TestTransactionFreezeEmptyChunkableContent(t *testing.T) {
	tx := NewTransaction(
		NewTopicMessageSubmit(ledger.NewTopicId(0, 0, 777), nil),
	)
	if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	frozen, err := tx.Freeze(testNodeIds(t))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if frozen.ChunkCount() != 1 {
		t.Fatalf(
			"did not get expected chunk count: got %d, wanted 1",
			frozen.ChunkCount(),
		)
	}
}

func TestTransactionFreezeChunkSizeBoundary(t *testing.T) {
	// Content of exactly one chunk size must not spill into a second chunk
	tx := NewTransaction(
		NewTopicMessageSubmit(
			ledger.NewTopicId(0, 0, 777),
			bytes.Repeat([]byte{'x'}, DefaultChunkSize),
		),
	)
	if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	frozen, err := tx.Freeze(testNodeIds(t))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if frozen.ChunkCount() != 1 {
		t.Fatalf(
			"did not get expected chunk count: got %d, wanted 1",
			frozen.ChunkCount(),
		)
	}
}

func TestTransactionFreezeBodyTooLarge(t *testing.T) {
	tx := NewTransaction(testTransferData(t))
	if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// Transfer bodies can't be chunked, so an implausibly small chunk size
	// forces the size check to trip
	if err := tx.SetChunkSize(4); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := tx.Freeze(testNodeIds(t)); !errors.Is(err, ErrBodyTooLarge) {
		t.Fatalf(
			"freeze with oversized body did not fail with ErrBodyTooLarge: %v",
			err,
		)
	}
}

func TestTransactionFreezeExplicitTransactionId(t *testing.T) {
	payer := testAccountId(t, 1001)
	transactionId := NewTransactionId(payer, time.Unix(1700000000, 42))
	tx := NewTransaction(testTransferData(t))
	if err := tx.SetTransactionId(transactionId); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	frozen, err := tx.Freeze(testNodeIds(t))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !frozen.TransactionId().Equal(transactionId) {
		t.Fatalf(
			"did not get expected transaction ID: got %s, wanted %s",
			frozen.TransactionId(),
			transactionId,
		)
	}
	if !frozen.Payer().Equal(payer) {
		t.Fatalf(
			"did not get expected payer from transaction ID: got %s",
			frozen.Payer().String(),
		)
	}
}

func TestTransactionSetChunkSizeInvalid(t *testing.T) {
	tx := NewTransaction(testTransferData(t))
	if err := tx.SetChunkSize(0); err == nil {
		t.Fatalf("expected error for zero chunk size, got none")
	}
	if err := tx.SetChunkSize(-1); err == nil {
		t.Fatalf("expected error for negative chunk size, got none")
	}
}
