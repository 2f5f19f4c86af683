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

// Package transport implements the framed wire transport used to submit
// transactions to consensus nodes and read back their precheck responses
package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/blinklabs-io/gohashgraph/protocol"
)

const defaultDialTimeout = 10 * time.Second

// ErrTransportClosed is returned when submitting via a transport that has
// been closed
var ErrTransportClosed = errors.New("transport is closed")

// DialFunc opens a network connection to a node address
type DialFunc func(ctx context.Context, address string) (net.Conn, error)

// Transport submits signed transactions to a node and returns the node's
// synchronous precheck response
type Transport interface {
	Submit(
		ctx context.Context,
		address string,
		tx protocol.SignedTransaction,
	) (*protocol.MsgTransactionResponse, error)
	Close() error
}

// TcpTransport is a Transport that speaks the framed submission protocol over
// TCP. Connections are cached per node address and dropped on any transport
// error so the next submission redials
type TcpTransport struct {
	dialFunc    DialFunc
	dialTimeout time.Duration
	logger      *slog.Logger
	mutex       sync.Mutex
	conns       map[string]*Conn
	closed      bool
}

// NewTcpTransport creates a TcpTransport with the provided options
func NewTcpTransport(opts ...TcpTransportOptionFunc) *TcpTransport {
	t := &TcpTransport{
		dialTimeout: defaultDialTimeout,
		conns:       make(map[string]*Conn),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	if t.dialFunc == nil {
		t.dialFunc = func(ctx context.Context, address string) (net.Conn, error) {
			dialer := net.Dialer{Timeout: t.dialTimeout}
			return dialer.DialContext(ctx, "tcp", address)
		}
	}
	return t
}

// Submit sends a signed transaction to the node at the given address and
// waits for its precheck response
func (t *TcpTransport) Submit(
	ctx context.Context,
	address string,
	tx protocol.SignedTransaction,
) (*protocol.MsgTransactionResponse, error) {
	conn, err := t.getConn(ctx, address)
	if err != nil {
		return nil, err
	}
	msg := protocol.NewMsgSubmitTransaction(tx)
	respMsg, err := conn.Request(ctx, msg)
	if err != nil {
		t.dropConn(address)
		return nil, err
	}
	resp, ok := respMsg.(*protocol.MsgTransactionResponse)
	if !ok {
		t.dropConn(address)
		return nil, fmt.Errorf(
			"%s: unexpected message type %d from node %s",
			protocol.ProtocolName,
			respMsg.Type(),
			address,
		)
	}
	t.logger.Debug(
		"received precheck response",
		"component", "network",
		"protocol", protocol.ProtocolName,
		"address", address,
		"status", resp.Status.String(),
	)
	return resp, nil
}

// Close closes all cached connections. The transport cannot be used again
// afterward
func (t *TcpTransport) Close() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	var firstErr error
	for address, conn := range t.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(t.conns, address)
	}
	return firstErr
}

func (t *TcpTransport) getConn(
	ctx context.Context,
	address string,
) (*Conn, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.closed {
		return nil, ErrTransportClosed
	}
	if conn, ok := t.conns[address]; ok {
		return conn, nil
	}
	t.logger.Debug(
		"dialing node",
		"component", "network",
		"protocol", protocol.ProtocolName,
		"address", address,
	)
	netConn, err := t.dialFunc(ctx, address)
	if err != nil {
		return nil, err
	}
	conn := NewConn(netConn)
	t.conns[address] = conn
	return conn, nil
}

func (t *TcpTransport) dropConn(address string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if conn, ok := t.conns[address]; ok {
		conn.Close()
		delete(t.conns, address)
	}
}
