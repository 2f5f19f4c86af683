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
	"testing"
)

func TestLedgerIdFromString(t *testing.T) {
	testDefs := []struct {
		ledgerIdStr      string
		expectedLedgerId LedgerId
	}{
		{"mainnet", LedgerIdMainnet},
		{"testnet", LedgerIdTestnet},
		{"previewnet", LedgerIdPreviewnet},
		{"00", LedgerIdMainnet},
		{"deadbeef", LedgerId{0xde, 0xad, 0xbe, 0xef}},
	}
	for _, testDef := range testDefs {
		l, err := NewLedgerIdFromString(testDef.ledgerIdStr)
		if err != nil {
			t.Fatalf("failed to parse ledger ID %q: %s", testDef.ledgerIdStr, err)
		}
		if !l.Equal(testDef.expectedLedgerId) {
			t.Fatalf(
				"did not get expected ledger ID for %q: got %s, wanted %s",
				testDef.ledgerIdStr,
				l.String(),
				testDef.expectedLedgerId.String(),
			)
		}
	}
}

func TestLedgerIdFromStringInvalid(t *testing.T) {
	testDefs := []string{
		"",
		"not-hex",
		"0",
	}
	for _, testDef := range testDefs {
		if _, err := NewLedgerIdFromString(testDef); !errors.Is(err, ErrInvalidLedgerId) {
			t.Fatalf(
				"did not get expected error for %q, got: %s",
				testDef,
				err,
			)
		}
	}
}

func TestLedgerIdString(t *testing.T) {
	testDefs := []struct {
		ledgerId    LedgerId
		expectedStr string
	}{
		{LedgerIdMainnet, "mainnet"},
		{LedgerIdTestnet, "testnet"},
		{LedgerIdPreviewnet, "previewnet"},
		{LedgerId{0xde, 0xad, 0xbe, 0xef}, "deadbeef"},
	}
	for _, testDef := range testDefs {
		if testDef.ledgerId.String() != testDef.expectedStr {
			t.Fatalf(
				"did not get expected string: got %q, wanted %q",
				testDef.ledgerId.String(),
				testDef.expectedStr,
			)
		}
	}
}
