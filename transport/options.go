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

package transport

import (
	"log/slog"
	"time"
)

// TcpTransportOptionFunc is a type that represents functions that modify the
// TcpTransport config
type TcpTransportOptionFunc func(*TcpTransport)

// WithDialFunc specifies a custom dial function. This is mostly useful for
// testing against in-memory connections
func WithDialFunc(dialFunc DialFunc) TcpTransportOptionFunc {
	return func(t *TcpTransport) {
		t.dialFunc = dialFunc
	}
}

// WithDialTimeout specifies the timeout for dialing a node when using the
// default dial function
func WithDialTimeout(timeout time.Duration) TcpTransportOptionFunc {
	return func(t *TcpTransport) {
		t.dialTimeout = timeout
	}
}

// WithLogger specifies the logger to use. If none is provided, slog.Default()
// is used
func WithLogger(logger *slog.Logger) TcpTransportOptionFunc {
	return func(t *TcpTransport) {
		t.logger = logger
	}
}
