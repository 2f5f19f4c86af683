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

// Package keys provides Ed25519 signing keys for transactions
package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/blinklabs-io/gohashgraph/ledger"
)

var ErrInvalidPrivateKey = errors.New("invalid private key")

// PrivateKey is an Ed25519 private key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// GeneratePrivateKey returns a new random private key
func GeneratePrivateKey() (PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKey{key: key}, nil
}

// NewPrivateKeyFromSeed returns a private key derived from the provided
// 32-byte seed
func NewPrivateKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return PrivateKey{}, fmt.Errorf(
			"%w: expected %d-byte seed, got %d",
			ErrInvalidPrivateKey,
			ed25519.SeedSize,
			len(seed),
		)
	}
	return PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// NewPrivateKeyFromString returns a private key based on the provided
// hex-encoded seed
func NewPrivateKeyFromString(s string) (PrivateKey, error) {
	seed, err := hex.DecodeString(s)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("%w: %s", ErrInvalidPrivateKey, err)
	}
	return NewPrivateKeyFromSeed(seed)
}

// Sign signs the provided message and returns the 64-byte signature
func (k PrivateKey) Sign(message []byte) []byte {
	return ed25519.Sign(k.key, message)
}

// PublicKey returns the public key corresponding to the private key
func (k PrivateKey) PublicKey() ledger.PublicKey {
	pub := k.key.Public().(ed25519.PublicKey)
	return ledger.PublicKey(pub)
}

// Seed returns the 32-byte seed the private key was derived from
func (k PrivateKey) Seed() []byte {
	return k.key.Seed()
}

// String returns the hex-encoded seed
func (k PrivateKey) String() string {
	return hex.EncodeToString(k.key.Seed())
}
