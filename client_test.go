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

package hashgraph

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/blinklabs-io/gohashgraph/keys"
	"github.com/blinklabs-io/gohashgraph/ledger"
	"github.com/blinklabs-io/gohashgraph/protocol"
	"github.com/blinklabs-io/gohashgraph/transaction"
)

func TestNewClientNoLedgerId(t *testing.T) {
	_, err := NewClient(WithNodes(testClientNodes(t)))
	if !errors.Is(err, ErrNoLedgerId) {
		t.Fatalf("error does not match ErrNoLedgerId: %v", err)
	}
}

func TestNewClientNoNodes(t *testing.T) {
	_, err := NewClient(WithLedgerId(ledger.LedgerIdMainnet))
	if !errors.Is(err, ErrNoNodes) {
		t.Fatalf("error does not match ErrNoNodes: %v", err)
	}
}

func TestNewClientWithNetwork(t *testing.T) {
	client, err := NewClient(
		WithNetwork(NetworkTestnet),
		WithTransport(&fakeTransport{}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !client.LedgerId().Equal(ledger.LedgerIdTestnet) {
		t.Fatalf(
			"did not get expected ledger ID: got %s",
			client.LedgerId(),
		)
	}
	if len(client.Nodes()) != len(NetworkTestnet.Nodes) {
		t.Fatalf(
			"did not get expected node count: got %d, wanted %d",
			len(client.Nodes()),
			len(NetworkTestnet.Nodes),
		)
	}
	if client.maxAttempts != defaultMaxAttempts {
		t.Fatalf(
			"did not get expected default max attempts: got %d, wanted %d",
			client.maxAttempts,
			defaultMaxAttempts,
		)
	}
	if client.retryInitialDelay != defaultRetryInitialDelay {
		t.Fatalf(
			"did not get expected default initial delay: got %s",
			client.retryInitialDelay,
		)
	}
	if client.retryMaxDelay != defaultRetryMaxDelay {
		t.Fatalf(
			"did not get expected default max delay: got %s",
			client.retryMaxDelay,
		)
	}
}

func TestClientNodesClone(t *testing.T) {
	client, err := NewClient(
		WithNetwork(NetworkTestnet),
		WithTransport(&fakeTransport{}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	nodes := client.Nodes()
	nodes[0].Address = "mutated.example.com:50211"
	if client.Nodes()[0].Address == "mutated.example.com:50211" {
		t.Fatalf("mutating the returned node list changed the client")
	}
}

func TestClientClose(t *testing.T) {
	fake := &fakeTransport{}
	client, err := NewClient(
		WithNetwork(NetworkTestnet),
		WithTransport(fake),
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !fake.closed {
		t.Fatalf("closing the client did not close the transport")
	}
}

func TestClientExecuteTransaction(t *testing.T) {
	// Full path: build, freeze against the client's nodes, sign, execute
	fake := &fakeTransport{
		handler: func(_ int, _ string) (*protocol.MsgTransactionResponse, error) {
			return respondStatus(protocol.StatusOk), nil
		},
	}
	client := testClient(t, fake)
	key, err := keys.NewPrivateKeyFromSeed(bytes.Repeat([]byte{0x01}, 32))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	tx := transaction.NewTransaction(
		transaction.NewCryptoTransfer().
			AddHbarTransfer(
				ledger.NewAccountId(0, 0, 1001),
				transaction.NewHbar(-1),
			).
			AddHbarTransfer(
				ledger.NewAccountId(0, 0, 2002),
				transaction.NewHbar(1),
			),
	)
	if err := tx.SetPayer(ledger.NewAccountId(0, 0, 1001)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	nodeIds := make([]ledger.AccountId, 0, len(client.Nodes()))
	for _, node := range client.Nodes() {
		nodeIds = append(nodeIds, node.NodeId)
	}
	frozen, err := tx.Freeze(nodeIds)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := frozen.Sign(key); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	receipt, err := frozen.Execute(context.Background(), client)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if receipt.Status != protocol.StatusOk {
		t.Fatalf(
			"did not get expected receipt status: got %s",
			receipt.Status,
		)
	}
	if !receipt.NodeId.Equal(nodeIds[0]) {
		t.Fatalf(
			"did not get expected receipt node: got %s",
			receipt.NodeId.String(),
		)
	}
	if frozen.State() != transaction.StateExecuted {
		t.Fatalf(
			"did not get expected state: got %s",
			frozen.State(),
		)
	}
	if len(fake.callAddresses()) != 1 {
		t.Fatalf(
			"did not get expected call count: got %d, wanted 1",
			len(fake.callAddresses()),
		)
	}
}

func TestClientExecuteChecksumMismatch(t *testing.T) {
	// A payer carrying a mainnet checksum must be rejected by a testnet
	// client before anything reaches the transport
	fake := &fakeTransport{
		handler: func(_ int, _ string) (*protocol.MsgTransactionResponse, error) {
			return respondStatus(protocol.StatusOk), nil
		},
	}
	client := testClient(t, fake, WithLedgerId(ledger.LedgerIdTestnet))
	payer, err := ledger.NewAccountIdFromString("0.0.123-vfmkw")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	key, err := keys.NewPrivateKeyFromSeed(bytes.Repeat([]byte{0x01}, 32))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	tx := transaction.NewTransaction(
		transaction.NewCryptoTransfer().
			AddHbarTransfer(payer, transaction.NewHbar(-1)).
			AddHbarTransfer(
				ledger.NewAccountId(0, 0, 2002),
				transaction.NewHbar(1),
			),
	)
	if err := tx.SetPayer(payer); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	frozen, err := tx.Freeze([]ledger.AccountId{ledger.NewAccountId(0, 0, 3)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := frozen.Sign(key); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	_, err = frozen.Execute(context.Background(), client)
	if !errors.Is(err, ledger.ErrChecksumMismatch) {
		t.Fatalf("error does not match ErrChecksumMismatch: %v", err)
	}
	if len(fake.callAddresses()) != 0 {
		t.Fatalf(
			"checksum mismatch reached the transport: %d calls",
			len(fake.callAddresses()),
		)
	}
}
