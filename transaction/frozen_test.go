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
	"crypto/ed25519"
	"errors"
	"testing"
	"time"

	"github.com/blinklabs-io/gohashgraph/keys"
	"github.com/blinklabs-io/gohashgraph/ledger"
)

func testValidStart(t *testing.T) time.Time {
	t.Helper()
	return time.Unix(1700000000, 42)
}

func testSignerKey(t *testing.T, seed byte) keys.PrivateKey {
	t.Helper()
	key, err := keys.NewPrivateKeyFromSeed(bytes.Repeat([]byte{seed}, 32))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return key
}

func testFrozenTransfer(t *testing.T) *FrozenTransaction {
	t.Helper()
	tx := NewTransaction(testTransferData(t))
	if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	frozen, err := tx.Freeze(testNodeIds(t))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return frozen
}

func TestFrozenSign(t *testing.T) {
	frozen := testFrozenTransfer(t)
	key := testSignerKey(t, 0x01)
	if err := frozen.Sign(key); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if frozen.State() != StateSigned {
		t.Fatalf(
			"did not get expected state after signing: got %s, wanted %s",
			frozen.State(),
			StateSigned,
		)
	}
	for _, chunk := range frozen.chunks {
		for _, body := range chunk.bodies {
			if len(body.signatures) != 1 {
				t.Fatalf(
					"did not get expected signature count: got %d, wanted 1",
					len(body.signatures),
				)
			}
		}
	}
}

func TestFrozenSignIdempotent(t *testing.T) {
	frozen := testFrozenTransfer(t)
	key := testSignerKey(t, 0x01)
	if err := frozen.Sign(key); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	firstSig := bytes.Clone(
		frozen.chunks[0].bodies[0].signatures[key.PublicKey()],
	)
	if err := frozen.Sign(key); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	body := frozen.chunks[0].bodies[0]
	if len(body.signatures) != 1 {
		t.Fatalf(
			"signing twice with one key did not stay idempotent: got %d signatures",
			len(body.signatures),
		)
	}
	if !bytes.Equal(body.signatures[key.PublicKey()], firstSig) {
		t.Fatalf("signing twice with one key changed the signature")
	}
	if frozen.State() != StateSigned {
		t.Fatalf(
			"did not get expected state: got %s, wanted %s",
			frozen.State(),
			StateSigned,
		)
	}
}

func TestFrozenSignMultipleKeys(t *testing.T) {
	frozen := testFrozenTransfer(t)
	// Seeds chosen so neither key's byte order is guaranteed, the wire
	// ordering below must come from sorting
	keyA := testSignerKey(t, 0x07)
	keyB := testSignerKey(t, 0x3a)
	if err := frozen.Sign(keyA); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := frozen.Sign(keyB); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	body := frozen.chunks[0].bodies[0]
	signed := body.signedTransaction()
	if len(signed.SigPairs) != 2 {
		t.Fatalf(
			"did not get expected signature pair count: got %d, wanted 2",
			len(signed.SigPairs),
		)
	}
	if bytes.Compare(signed.SigPairs[0].PubKey, signed.SigPairs[1].PubKey) >= 0 {
		t.Fatalf("signature pairs are not ordered by public key")
	}
	if !bytes.Equal(signed.BodyBytes, body.bodyBytes) {
		t.Fatalf("signed transaction body bytes differ from signable body")
	}
	for _, sigPair := range signed.SigPairs {
		if !ed25519.Verify(
			ed25519.PublicKey(sigPair.PubKey),
			body.bodyBytes,
			sigPair.Signature,
		) {
			t.Fatalf("signature does not verify against body bytes")
		}
	}
}

func TestFrozenValidateChecksums(t *testing.T) {
	payer, err := ledger.NewAccountIdFromString("0.0.123-vfmkw")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	tx := NewTransaction(testTransferData(t))
	if err := tx.SetPayer(payer); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	frozen, err := tx.Freeze(testNodeIds(t))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// Repeated validation against the same ledger must keep passing
	for range 2 {
		if err := frozen.ValidateChecksums(ledger.LedgerIdMainnet); err != nil {
			t.Fatalf("unexpected checksum error on mainnet: %s", err)
		}
	}
	err = frozen.ValidateChecksums(ledger.LedgerIdTestnet)
	if !errors.Is(err, ledger.ErrChecksumMismatch) {
		t.Fatalf("error does not match ErrChecksumMismatch: %v", err)
	}
}

func TestFrozenValidateChecksumsPlainIds(t *testing.T) {
	frozen := testFrozenTransfer(t)
	for _, ledgerId := range []ledger.LedgerId{
		ledger.LedgerIdMainnet,
		ledger.LedgerIdTestnet,
	} {
		if err := frozen.ValidateChecksums(ledgerId); err != nil {
			t.Fatalf(
				"IDs without checksums did not pass on %s: %s",
				ledgerId,
				err,
			)
		}
	}
}

func TestFrozenSchedulableBody(t *testing.T) {
	frozen := testFrozenTransfer(t)
	body, err := frozen.SchedulableBody()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(body) == 0 {
		t.Fatalf("schedulable body is empty")
	}
	if frozen.State() != StateFrozen {
		t.Fatalf(
			"building the schedulable body changed the state: got %s",
			frozen.State(),
		)
	}
	body2, err := frozen.SchedulableBody()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(body, body2) {
		t.Fatalf("schedulable body is not deterministic")
	}
}

func TestFrozenSchedulableBodyNodeIndependent(t *testing.T) {
	freezeWithNodes := func(nodeIds []ledger.AccountId) []byte {
		tx := NewTransaction(testTransferData(t))
		if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if err := tx.SetTransactionId(
			NewTransactionId(testAccountId(t, 1001), testValidStart(t)),
		); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		frozen, err := tx.Freeze(nodeIds)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		body, err := frozen.SchedulableBody()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		return body
	}
	bodyA := freezeWithNodes([]ledger.AccountId{ledger.NewAccountId(0, 0, 3)})
	bodyB := freezeWithNodes([]ledger.AccountId{
		ledger.NewAccountId(0, 0, 8),
		ledger.NewAccountId(0, 0, 9),
	})
	if !bytes.Equal(bodyA, bodyB) {
		t.Fatalf("schedulable body depends on the candidate node list")
	}
}

func TestFrozenSchedulableBodyAfterSign(t *testing.T) {
	frozen := testFrozenTransfer(t)
	if err := frozen.Sign(testSignerKey(t, 0x01)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := frozen.SchedulableBody(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if frozen.State() != StateSigned {
		t.Fatalf(
			"building the schedulable body changed the state: got %s",
			frozen.State(),
		)
	}
}

func TestFrozenSchedulableBodyMultiChunk(t *testing.T) {
	tx := NewTransaction(
		NewTopicMessageSubmit(
			ledger.NewTopicId(0, 0, 777),
			bytes.Repeat([]byte{'x'}, DefaultChunkSize+1),
		),
	)
	if err := tx.SetPayer(testAccountId(t, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	frozen, err := tx.Freeze(testNodeIds(t))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if frozen.ChunkCount() != 2 {
		t.Fatalf(
			"did not get expected chunk count: got %d, wanted 2",
			frozen.ChunkCount(),
		)
	}
	_, err = frozen.SchedulableBody()
	if !errors.Is(err, ErrMultiChunkSchedule) {
		t.Fatalf("error does not match ErrMultiChunkSchedule: %v", err)
	}
}
