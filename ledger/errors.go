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
)

// Sentinel errors so callers can use errors.Is
var (
	ErrInvalidEntityId  = errors.New("invalid entity ID")
	ErrChecksumMismatch = errors.New("entity ID checksum mismatch")
	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrInvalidLedgerId  = errors.New("invalid ledger ID")
	ErrAliasChecksum    = errors.New("checksums do not apply to alias entity IDs")
	ErrDecodeTruncated  = errors.New("entity ID decode: truncated input")
	ErrDecodeInvalid    = errors.New("entity ID decode: invalid input")
)

// EntityIdFormatError indicates text that does not match the entity ID grammar
type EntityIdFormatError struct {
	Text   string
	Reason string
}

func (e EntityIdFormatError) Error() string {
	return fmt.Sprintf("invalid entity ID %q: %s", e.Text, e.Reason)
}

func (EntityIdFormatError) Is(target error) bool {
	return target == ErrInvalidEntityId
}

// ChecksumMismatchError indicates a checksum that does not match the one computed
// for the entity ID against a particular ledger
type ChecksumMismatchError struct {
	EntityId string
	Expected string
	Actual   string
}

func (e ChecksumMismatchError) Error() string {
	return fmt.Sprintf(
		"checksum mismatch for entity ID %s: expected %s, got %s",
		e.EntityId,
		e.Expected,
		e.Actual,
	)
}

func (ChecksumMismatchError) Is(target error) bool {
	return target == ErrChecksumMismatch
}
