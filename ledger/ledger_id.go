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

package ledger

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// LedgerId identifies a particular ledger. The public networks use a single
// byte; custom networks may use longer values
type LedgerId []byte

// Well-known ledger IDs for the public networks
var (
	LedgerIdMainnet    = LedgerId{0x00}
	LedgerIdTestnet    = LedgerId{0x01}
	LedgerIdPreviewnet = LedgerId{0x02}
)

// NewLedgerIdFromString returns a LedgerId based on the provided string. It
// accepts the well-known network names as well as hex-encoded bytes
func NewLedgerIdFromString(s string) (LedgerId, error) {
	switch s {
	case "mainnet":
		return LedgerIdMainnet, nil
	case "testnet":
		return LedgerIdTestnet, nil
	case "previewnet":
		return LedgerIdPreviewnet, nil
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLedgerId, err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidLedgerId)
	}
	return LedgerId(decoded), nil
}

func (l LedgerId) Bytes() []byte {
	return []byte(l)
}

func (l LedgerId) Equal(other LedgerId) bool {
	return bytes.Equal(l, other)
}

// String returns the well-known network name for the public ledgers and the
// hex-encoded bytes otherwise
func (l LedgerId) String() string {
	switch {
	case l.Equal(LedgerIdMainnet):
		return "mainnet"
	case l.Equal(LedgerIdTestnet):
		return "testnet"
	case l.Equal(LedgerIdPreviewnet):
		return "previewnet"
	}
	return hex.EncodeToString(l)
}
