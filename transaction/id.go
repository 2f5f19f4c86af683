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
	"strconv"
	"strings"
	"time"

	"github.com/blinklabs-io/gohashgraph/cbor"
	"github.com/blinklabs-io/gohashgraph/ledger"
)

// TransactionId uniquely identifies a transaction on the network: the payer
// account plus the transaction's valid-start timestamp. When a chunkable
// transaction freezes into multiple chunks, chunk k's ID offsets the
// valid-start by k nanoseconds and the initial ID identifies the group
type TransactionId struct {
	payer      ledger.AccountId
	validStart time.Time
	scheduled  bool
}

// NewTransactionId creates a TransactionId from an explicit payer and
// valid-start timestamp
func NewTransactionId(
	payer ledger.AccountId,
	validStart time.Time,
) TransactionId {
	return TransactionId{
		payer:      payer,
		validStart: validStart,
	}
}

// NewTransactionIdGenerate creates a TransactionId for the given payer with
// the current time as the valid-start
func NewTransactionIdGenerate(payer ledger.AccountId) TransactionId {
	return TransactionId{
		payer:      payer,
		validStart: time.Now(),
	}
}

// NewTransactionIdFromString parses a TransactionId from its string form
// <payer>@<seconds>.<nanos> with an optional ?scheduled suffix
func NewTransactionIdFromString(data string) (TransactionId, error) {
	ret := TransactionId{}
	payerPart, timePart, ok := strings.Cut(data, "@")
	if !ok {
		return ret, TransactionIdFormatError{
			Text:   data,
			Reason: "missing '@' separator",
		}
	}
	payer, err := ledger.NewAccountIdFromString(payerPart)
	if err != nil {
		return ret, TransactionIdFormatError{
			Text:   data,
			Reason: fmt.Sprintf("invalid payer account: %s", err),
		}
	}
	if scheduledPart, found := strings.CutSuffix(timePart, "?scheduled"); found {
		ret.scheduled = true
		timePart = scheduledPart
	}
	secondsPart, nanosPart, ok := strings.Cut(timePart, ".")
	if !ok {
		return ret, TransactionIdFormatError{
			Text:   data,
			Reason: "missing '.' in timestamp",
		}
	}
	seconds, err := strconv.ParseInt(secondsPart, 10, 64)
	if err != nil {
		return ret, TransactionIdFormatError{
			Text:   data,
			Reason: "invalid timestamp seconds",
		}
	}
	nanos, err := strconv.ParseInt(nanosPart, 10, 64)
	if err != nil || nanos < 0 || nanos > 999_999_999 {
		return ret, TransactionIdFormatError{
			Text:   data,
			Reason: "invalid timestamp nanos",
		}
	}
	ret.payer = payer
	ret.validStart = time.Unix(seconds, nanos)
	return ret, nil
}

// Payer returns the paying account
func (t TransactionId) Payer() ledger.AccountId {
	return t.payer
}

// ValidStart returns the valid-start timestamp
func (t TransactionId) ValidStart() time.Time {
	return t.validStart
}

// Scheduled returns whether the ID refers to the scheduled execution of the
// transaction
func (t TransactionId) Scheduled() bool {
	return t.scheduled
}

// Equal returns true if the IDs refer to the same transaction
func (t TransactionId) Equal(other TransactionId) bool {
	return t.payer.Equal(other.payer) &&
		t.validStart.Equal(other.validStart) &&
		t.scheduled == other.scheduled
}

func (t TransactionId) String() string {
	ret := fmt.Sprintf(
		"%s@%d.%d",
		t.payer.String(),
		t.validStart.Unix(),
		t.validStart.Nanosecond(),
	)
	if t.scheduled {
		ret += "?scheduled"
	}
	return ret
}

func (t TransactionId) MarshalCBOR() ([]byte, error) {
	return cbor.Encode([]any{
		t.payer,
		t.validStart.Unix(),
		t.validStart.Nanosecond(),
		t.scheduled,
	})
}

// withValidStartOffset returns a copy with the valid-start advanced by the
// given number of nanoseconds
func (t TransactionId) withValidStartOffset(nanos int64) TransactionId {
	return TransactionId{
		payer:      t.payer,
		validStart: t.validStart.Add(time.Duration(nanos)),
		scheduled:  t.scheduled,
	}
}
