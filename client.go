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

// Package hashgraph implements a client for submitting transactions to
// hashgraph-style distributed ledgers.
//
// A Client carries the ledger context: which ledger it submits to (used to
// validate entity ID checksums) and the addresses of the candidate nodes.
// There is no ambient/global context; everything that needs one takes it
// explicitly.
//
// This package is the main entry point into this library. The other packages
// can be used outside of this one, but it's not a primary design goal.
package hashgraph

import (
	"log/slog"
	"slices"
	"time"

	"github.com/blinklabs-io/gohashgraph/ledger"
	"github.com/blinklabs-io/gohashgraph/transport"
)

const (
	defaultMaxAttempts       = 10
	defaultRetryInitialDelay = 250 * time.Millisecond
	defaultRetryMaxDelay     = 8 * time.Second
)

// Client is the ledger context used to submit transactions: a ledger ID,
// the candidate nodes with their addresses, and a transport to reach them.
// It implements transaction.Submitter. A Client is safe for concurrent use:
// each submission owns its own iteration and backoff state
type Client struct {
	ledgerId          ledger.LedgerId
	nodes             []NetworkNode
	addresses         map[string]string
	transport         transport.Transport
	logger            *slog.Logger
	maxAttempts       int
	retryInitialDelay time.Duration
	retryMaxDelay     time.Duration
}

// NewClient returns a new Client object with the specified options. An error
// is returned unless a ledger ID and at least one node are configured, via
// WithNetwork or via WithLedgerId/WithNodes
func NewClient(options ...ClientOptionFunc) (*Client, error) {
	c := &Client{}
	// Apply provided options functions
	for _, option := range options {
		option(c)
	}
	if len(c.ledgerId) == 0 {
		return nil, ErrNoLedgerId
	}
	if len(c.nodes) == 0 {
		return nil, ErrNoNodes
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.transport == nil {
		c.transport = transport.NewTcpTransport(
			transport.WithLogger(c.logger),
		)
	}
	if c.maxAttempts <= 0 {
		c.maxAttempts = defaultMaxAttempts
	}
	if c.retryInitialDelay <= 0 {
		c.retryInitialDelay = defaultRetryInitialDelay
	}
	if c.retryMaxDelay <= 0 {
		c.retryMaxDelay = defaultRetryMaxDelay
	}
	// The address map is read-only after construction
	c.addresses = make(map[string]string, len(c.nodes))
	for _, node := range c.nodes {
		c.addresses[node.NodeId.String()] = node.Address
	}
	return c, nil
}

// LedgerId returns the ledger the client submits to
func (c *Client) LedgerId() ledger.LedgerId {
	return c.ledgerId
}

// Nodes returns the candidate nodes in submission order
func (c *Client) Nodes() []NetworkNode {
	return slices.Clone(c.nodes)
}

// Close shuts down the client's transport
func (c *Client) Close() error {
	return c.transport.Close()
}
