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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/blinklabs-io/gohashgraph/cbor"
)

// EntityId addresses a single entity (account, token, topic, file, contract)
// on a ledger. An entity is identified either by number within its shard and
// realm, or by an alias public key. A checksum parsed from the textual form is
// retained for later validation against a particular ledger but is otherwise
// ignored: it does not participate in equality and is never included in the
// binary form
type EntityId struct {
	shard    uint64
	realm    uint64
	num      uint64
	alias    *PublicKey
	checksum string
}

// NewEntityId returns a numeric EntityId based on the provided parts
func NewEntityId(shard uint64, realm uint64, num uint64) EntityId {
	return EntityId{
		shard: shard,
		realm: realm,
		num:   num,
	}
}

// NewEntityIdFromAlias returns an alias-form EntityId based on the provided
// shard, realm, and alias public key
func NewEntityIdFromAlias(shard uint64, realm uint64, alias PublicKey) EntityId {
	return EntityId{
		shard: shard,
		realm: realm,
		alias: &alias,
	}
}

// NewEntityIdFromString returns an EntityId based on the provided string.
// Accepted forms are "<num>" (shard and realm default to zero),
// "<shard>.<realm>.<num>", "<shard>.<realm>.<num>-<checksum>", and
// "<shard>.<realm>.<alias>" with a base58-encoded alias public key. A checksum
// suffix is retained without being verified; use ValidateChecksum once the
// target ledger is known
func NewEntityIdFromString(s string) (EntityId, error) {
	main, checksum, hasChecksum := strings.Cut(s, "-")
	if hasChecksum && !validChecksumFormat(checksum) {
		return EntityId{}, EntityIdFormatError{
			Text:   s,
			Reason: fmt.Sprintf("checksum must be %d lowercase letters", ChecksumLength),
		}
	}
	parts := strings.Split(main, ".")
	switch len(parts) {
	case 1:
		// Bare entity number
		if hasChecksum {
			return EntityId{}, EntityIdFormatError{
				Text:   s,
				Reason: "checksum requires the shard.realm.num form",
			}
		}
		num, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return EntityId{}, EntityIdFormatError{
				Text:   s,
				Reason: "entity number is not a valid unsigned integer",
			}
		}
		return NewEntityId(0, 0, num), nil
	case 3:
		shard, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return EntityId{}, EntityIdFormatError{
				Text:   s,
				Reason: "shard is not a valid unsigned integer",
			}
		}
		realm, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return EntityId{}, EntityIdFormatError{
				Text:   s,
				Reason: "realm is not a valid unsigned integer",
			}
		}
		last := parts[2]
		if last == "" {
			return EntityId{}, EntityIdFormatError{
				Text:   s,
				Reason: "missing entity number",
			}
		}
		if isDigits(last) {
			num, err := strconv.ParseUint(last, 10, 64)
			if err != nil {
				return EntityId{}, EntityIdFormatError{
					Text:   s,
					Reason: "entity number is not a valid unsigned integer",
				}
			}
			ret := NewEntityId(shard, realm, num)
			ret.checksum = checksum
			return ret, nil
		}
		// Alias form
		if hasChecksum {
			return EntityId{}, EntityIdFormatError{
				Text:   s,
				Reason: "checksums do not apply to alias entity IDs",
			}
		}
		alias, err := NewPublicKeyFromString(last)
		if err != nil {
			return EntityId{}, EntityIdFormatError{
				Text:   s,
				Reason: fmt.Sprintf("invalid alias: %s", err),
			}
		}
		return NewEntityIdFromAlias(shard, realm, alias), nil
	default:
		return EntityId{}, EntityIdFormatError{
			Text:   s,
			Reason: "expected shard.realm.num",
		}
	}
}

// NewEntityIdFromBytes returns an EntityId based on the binary form produced
// by Bytes()
func NewEntityIdFromBytes(data []byte) (EntityId, error) {
	var ret EntityId
	if err := ret.populateFromBytes(data); err != nil {
		return EntityId{}, err
	}
	return ret, nil
}

func (e EntityId) Shard() uint64 {
	return e.shard
}

func (e EntityId) Realm() uint64 {
	return e.realm
}

// Num returns the entity number. It returns zero for alias-form IDs
func (e EntityId) Num() uint64 {
	return e.num
}

// Alias returns the alias public key, or nil for numeric IDs
func (e EntityId) Alias() *PublicKey {
	if e.alias == nil {
		return nil
	}
	alias := *e.alias
	return &alias
}

// Checksum returns the checksum parsed from the textual form, or an empty
// string if none was attached
func (e EntityId) Checksum() string {
	return e.checksum
}

// Equal reports whether two entity IDs address the same entity. Any attached
// checksum is ignored
func (e EntityId) Equal(other EntityId) bool {
	if e.shard != other.shard || e.realm != other.realm {
		return false
	}
	if (e.alias == nil) != (other.alias == nil) {
		return false
	}
	if e.alias != nil {
		return *e.alias == *other.alias
	}
	return e.num == other.num
}

// String returns the canonical "shard.realm.num" form, or "shard.realm.alias"
// for alias IDs. No checksum suffix is included; use StringWithChecksum to
// render one
func (e EntityId) String() string {
	if e.alias != nil {
		return fmt.Sprintf("%d.%d.%s", e.shard, e.realm, e.alias.String())
	}
	return fmt.Sprintf("%d.%d.%d", e.shard, e.realm, e.num)
}

// StringWithChecksum returns the textual form with a checksum suffix computed
// against the provided ledger. Alias IDs have no checksum form
func (e EntityId) StringWithChecksum(ledgerId LedgerId) (string, error) {
	if e.alias != nil {
		return "", ErrAliasChecksum
	}
	return fmt.Sprintf(
		"%d.%d.%d-%s",
		e.shard,
		e.realm,
		e.num,
		Checksum(ledgerId, e.shard, e.realm, e.num),
	), nil
}

// ValidateChecksum verifies any checksum attached to the entity ID against the
// provided ledger. IDs without an attached checksum always validate. The check
// is pure and can be repeated freely
func (e EntityId) ValidateChecksum(ledgerId LedgerId) error {
	if e.checksum == "" || e.alias != nil {
		return nil
	}
	expected := Checksum(ledgerId, e.shard, e.realm, e.num)
	if e.checksum != expected {
		return ChecksumMismatchError{
			EntityId: e.String(),
			Expected: expected,
			Actual:   e.checksum,
		}
	}
	return nil
}

// Bytes returns a compact binary form of the entity ID. The attached checksum,
// if any, is not included
func (e EntityId) Bytes() ([]byte, error) {
	return e.MarshalCBOR()
}

func (e EntityId) MarshalCBOR() ([]byte, error) {
	if e.alias != nil {
		return cbor.Encode([]any{e.shard, e.realm, e.alias.Bytes()})
	}
	return cbor.Encode([]any{e.shard, e.realm, e.num})
}

func (e *EntityId) UnmarshalCBOR(data []byte) error {
	return e.populateFromBytes(data)
}

func (e *EntityId) populateFromBytes(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty input", ErrDecodeTruncated)
	}
	var raw []cbor.RawMessage
	n, err := cbor.Decode(data, &raw)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s", ErrDecodeTruncated, err)
		}
		return fmt.Errorf("%w: %s", ErrDecodeInvalid, err)
	}
	if n != len(data) {
		return fmt.Errorf(
			"%w: %d trailing bytes",
			ErrDecodeInvalid,
			len(data)-n,
		)
	}
	if len(raw) != 3 {
		return fmt.Errorf(
			"%w: expected 3 elements, got %d",
			ErrDecodeInvalid,
			len(raw),
		)
	}
	var shard, realm uint64
	if _, err := cbor.Decode(raw[0], &shard); err != nil {
		return fmt.Errorf("%w: shard: %s", ErrDecodeInvalid, err)
	}
	if _, err := cbor.Decode(raw[1], &realm); err != nil {
		return fmt.Errorf("%w: realm: %s", ErrDecodeInvalid, err)
	}
	if raw[2][0]&cbor.CborTypeMask == cbor.CborTypeByteString {
		var aliasBytes []byte
		if _, err := cbor.Decode(raw[2], &aliasBytes); err != nil {
			return fmt.Errorf("%w: alias: %s", ErrDecodeInvalid, err)
		}
		alias, err := NewPublicKeyFromBytes(aliasBytes)
		if err != nil {
			return fmt.Errorf("%w: alias: %s", ErrDecodeInvalid, err)
		}
		*e = NewEntityIdFromAlias(shard, realm, alias)
		return nil
	}
	var num uint64
	if _, err := cbor.Decode(raw[2], &num); err != nil {
		return fmt.Errorf("%w: entity number: %s", ErrDecodeInvalid, err)
	}
	*e = NewEntityId(shard, realm, num)
	return nil
}

func validChecksumFormat(s string) bool {
	if len(s) != ChecksumLength {
		return false
	}
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
