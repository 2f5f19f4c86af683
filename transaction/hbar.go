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
	"fmt"

	"github.com/blinklabs-io/gohashgraph/cbor"
)

// TinybarPerHbar is the number of tinybar in one hbar
const TinybarPerHbar = 100_000_000

// Hbar is an amount of the network's native currency, stored as tinybar
type Hbar struct {
	tinybar int64
}

// NewHbar creates an Hbar from a whole number of hbar
func NewHbar(hbar int64) Hbar {
	return Hbar{
		tinybar: hbar * TinybarPerHbar,
	}
}

// HbarFromTinybar creates an Hbar from an amount of tinybar
func HbarFromTinybar(tinybar int64) Hbar {
	return Hbar{
		tinybar: tinybar,
	}
}

// Tinybar returns the amount as tinybar
func (h Hbar) Tinybar() int64 {
	return h.tinybar
}

// Negated returns the amount with its sign flipped
func (h Hbar) Negated() Hbar {
	return Hbar{
		tinybar: -h.tinybar,
	}
}

func (h Hbar) String() string {
	if h.tinybar%TinybarPerHbar == 0 {
		return fmt.Sprintf("%d hbar", h.tinybar/TinybarPerHbar)
	}
	return fmt.Sprintf("%d tinybar", h.tinybar)
}

func (h Hbar) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(h.tinybar)
}
