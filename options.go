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
	"log/slog"
	"time"

	"github.com/blinklabs-io/gohashgraph/ledger"
	"github.com/blinklabs-io/gohashgraph/transport"
)

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*Client)

// WithNetwork specifies a predefined network to submit to, setting both the
// ledger ID and the node list
func WithNetwork(network Network) ClientOptionFunc {
	return func(c *Client) {
		c.ledgerId = network.LedgerId
		c.nodes = network.Nodes
	}
}

// WithLedgerId specifies the ledger ID used to validate entity ID checksums.
// Mostly useful together with WithNodes for self-hosted networks
func WithLedgerId(ledgerId ledger.LedgerId) ClientOptionFunc {
	return func(c *Client) {
		c.ledgerId = ledgerId
	}
}

// WithNodes specifies the candidate node list
func WithNodes(nodes []NetworkNode) ClientOptionFunc {
	return func(c *Client) {
		c.nodes = nodes
	}
}

// WithTransport specifies the transport used to reach nodes. If none is
// provided, a TCP transport is used
func WithTransport(transport transport.Transport) ClientOptionFunc {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithLogger specifies the logger to use. This defaults to slog.Default()
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMaxAttempts specifies the total submission attempt budget across all
// candidate nodes for a single payload set
func WithMaxAttempts(maxAttempts int) ClientOptionFunc {
	return func(c *Client) {
		c.maxAttempts = maxAttempts
	}
}

// WithRetryInitialDelay specifies the initial backoff delay before retrying
// a busy node
func WithRetryInitialDelay(delay time.Duration) ClientOptionFunc {
	return func(c *Client) {
		c.retryInitialDelay = delay
	}
}

// WithRetryMaxDelay specifies the upper bound for the exponential backoff
// delay between retries against a busy node
func WithRetryMaxDelay(delay time.Duration) ClientOptionFunc {
	return func(c *Client) {
		c.retryMaxDelay = delay
	}
}
