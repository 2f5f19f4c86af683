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
	"fmt"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const PublicKeySize = 32

// PublicKey is an Ed25519 public key. It doubles as the alias form of an
// entity ID for accounts identified by key rather than by number
type PublicKey [PublicKeySize]byte

// NewPublicKeyFromBytes returns a PublicKey based on the raw bytes provided.
// The bytes must be a canonical encoding of a point on the Ed25519 curve
func NewPublicKeyFromBytes(data []byte) (PublicKey, error) {
	if len(data) != PublicKeySize {
		return PublicKey{}, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidPublicKey,
			PublicKeySize,
			len(data),
		)
	}
	if _, err := new(edwards25519.Point).SetBytes(data); err != nil {
		return PublicKey{}, fmt.Errorf("%w: %s", ErrInvalidPublicKey, err)
	}
	k := PublicKey{}
	copy(k[:], data)
	return k, nil
}

// NewPublicKeyFromString returns a PublicKey based on the provided
// base58-encoded string
func NewPublicKeyFromString(s string) (PublicKey, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 {
		return PublicKey{}, fmt.Errorf(
			"%w: not a base58 string",
			ErrInvalidPublicKey,
		)
	}
	return NewPublicKeyFromBytes(decoded)
}

func (k PublicKey) Bytes() []byte {
	return k[:]
}

// String returns the base58-encoded form of the public key
func (k PublicKey) String() string {
	return base58.Encode(k[:])
}
