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

import "testing"

type checksumTestDefinition struct {
	ledgerId         LedgerId
	shard            uint64
	realm            uint64
	num              uint64
	expectedChecksum string
}

var checksumTests = []checksumTestDefinition{
	{
		ledgerId:         LedgerIdMainnet,
		num:              123,
		expectedChecksum: "vfmkw",
	},
	{
		ledgerId:         LedgerIdTestnet,
		num:              123,
		expectedChecksum: "esxsf",
	},
	{
		ledgerId:         LedgerIdMainnet,
		num:              1,
		expectedChecksum: "dfkxr",
	},
}

func TestChecksum(t *testing.T) {
	for _, test := range checksumTests {
		checksum := Checksum(test.ledgerId, test.shard, test.realm, test.num)
		if checksum != test.expectedChecksum {
			t.Fatalf(
				"did not get expected checksum for %d.%d.%d on %s\n  got: %s\n  wanted: %s",
				test.shard,
				test.realm,
				test.num,
				test.ledgerId.String(),
				checksum,
				test.expectedChecksum,
			)
		}
		if !VerifyChecksum(checksum, test.ledgerId, test.shard, test.realm, test.num) {
			t.Fatalf("computed checksum did not verify: %s", checksum)
		}
	}
}

func TestChecksumDeterministic(t *testing.T) {
	first := Checksum(LedgerIdMainnet, 0, 0, 123)
	for range 10 {
		if Checksum(LedgerIdMainnet, 0, 0, 123) != first {
			t.Fatalf("checksum is not deterministic")
		}
	}
}

func TestChecksumLedgerDependence(t *testing.T) {
	mainnet := Checksum(LedgerIdMainnet, 0, 0, 123)
	testnet := Checksum(LedgerIdTestnet, 0, 0, 123)
	if mainnet == testnet {
		t.Fatalf(
			"checksum did not vary with ledger ID: %s",
			mainnet,
		)
	}
}

func TestVerifyChecksumMismatch(t *testing.T) {
	checksum := Checksum(LedgerIdMainnet, 0, 0, 123)
	// Any single-digit change to the entity ID must invalidate the checksum
	if VerifyChecksum(checksum, LedgerIdMainnet, 0, 0, 124) {
		t.Fatalf("checksum verified against a different entity number")
	}
	if VerifyChecksum(checksum, LedgerIdMainnet, 1, 0, 123) {
		t.Fatalf("checksum verified against a different shard")
	}
	if VerifyChecksum(checksum, LedgerIdMainnet, 0, 1, 123) {
		t.Fatalf("checksum verified against a different realm")
	}
	if VerifyChecksum(checksum, LedgerIdTestnet, 0, 0, 123) {
		t.Fatalf("checksum verified against a different ledger")
	}
}
