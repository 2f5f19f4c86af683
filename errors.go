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

import "errors"

var (
	// ErrNoLedgerId is returned when creating a client without a ledger ID
	ErrNoLedgerId = errors.New("no ledger ID specified")
	// ErrNoNodes is returned when creating a client without any nodes
	ErrNoNodes = errors.New("no nodes specified")
	// ErrUnknownNode is returned when a payload names a node the client has
	// no address for
	ErrUnknownNode = errors.New("no address for node")
	// ErrRetriesExhausted is returned when the submission attempt budget is
	// spent without reaching a terminal outcome
	ErrRetriesExhausted = errors.New("transaction submission retries exhausted")
)
