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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blinklabs-io/gohashgraph/protocol"
	"github.com/blinklabs-io/gohashgraph/transaction"
)

// Submit dispatches one payload set to the candidate nodes until a terminal
// outcome, implementing transaction.Submitter. Nodes are tried in payload
// order and never reshuffled mid-call: an accepted payload returns
// immediately, a busy node is retried after an exponential backoff, a
// wrong-node rejection or transport failure advances to the next node
// without delay (wrapping around), and any other rejection is terminal.
// The attempt budget is shared across all nodes; spending it returns
// ErrRetriesExhausted
func (c *Client) Submit(
	ctx context.Context,
	payloads []transaction.NodePayload,
) (*transaction.SubmitResult, error) {
	if len(payloads) == 0 {
		return nil, errors.New("no payloads to submit")
	}
	addresses := make([]string, len(payloads))
	for i, payload := range payloads {
		address, ok := c.addresses[payload.NodeId.String()]
		if !ok {
			return nil, fmt.Errorf(
				"%w: %s",
				ErrUnknownNode,
				payload.NodeId.String(),
			)
		}
		addresses[i] = address
	}
	nodeIndex := 0
	delay := c.retryInitialDelay
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		payload := payloads[nodeIndex]
		address := addresses[nodeIndex]
		c.logger.Debug(
			"submitting transaction",
			"component", "client",
			"node", payload.NodeId.String(),
			"address", address,
			"attempt", attempt,
		)
		resp, err := c.transport.Submit(ctx, address, payload.Payload)
		if err != nil {
			// Don't mistake our own cancellation for a node failure
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Debug(
				"node unreachable, trying next node",
				"component", "client",
				"node", payload.NodeId.String(),
				"attempt", attempt,
				"error", err,
			)
			nodeIndex = (nodeIndex + 1) % len(payloads)
			delay = c.retryInitialDelay
			continue
		}
		switch resp.Status.Disposition() {
		case protocol.DispositionAccepted:
			return &transaction.SubmitResult{
				Status: resp.Status,
				NodeId: payload.NodeId,
				Cost:   resp.Cost,
			}, nil
		case protocol.DispositionRetrySameNode:
			c.logger.Debug(
				"node busy, backing off",
				"component", "client",
				"node", payload.NodeId.String(),
				"attempt", attempt,
				"status", resp.Status.String(),
				"delay", delay.String(),
			)
			if err := sleepContext(ctx, delay); err != nil {
				return nil, err
			}
			delay = min(delay*2, c.retryMaxDelay)
		case protocol.DispositionRetryNextNode:
			c.logger.Debug(
				"node rejected payload, trying next node",
				"component", "client",
				"node", payload.NodeId.String(),
				"attempt", attempt,
				"status", resp.Status.String(),
			)
			nodeIndex = (nodeIndex + 1) % len(payloads)
			delay = c.retryInitialDelay
		default:
			return nil, protocol.PrecheckError{
				Status: resp.Status,
				NodeId: payload.NodeId,
			}
		}
	}
	return nil, fmt.Errorf(
		"%w after %d attempts",
		ErrRetriesExhausted,
		c.maxAttempts,
	)
}

// sleepContext waits out the delay unless the context is cancelled first
func sleepContext(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
