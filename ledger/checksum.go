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

import "fmt"

const (
	ChecksumLength = 5

	// Per-digit weight used by the rolling sums
	checksumWeight = 31
	// Final permutation multiplier, coprime to 26^5
	checksumPermutation = 1000003
)

// Checksum computes the 5-letter checksum that binds a numeric entity ID to a
// particular ledger. The same shard/realm/num produces different checksums on
// different ledgers. This implements the address checksum scheme published for
// the public networks: the digits of the "shard.realm.num" form (with the
// separator mapped to 10) are combined via positional sums mod 11 and a
// weighted rolling sum mod 26^3, the ledger ID bytes extended with six zero
// bytes via a weighted rolling sum mod 26^5, and the combined value is
// permuted and rendered as five base-26 lowercase letters
func Checksum(ledgerId LedgerId, shard uint64, realm uint64, num uint64) string {
	const p3 = 26 * 26 * 26
	const p5 = 26 * 26 * 26 * 26 * 26
	addr := fmt.Sprintf("%d.%d.%d", shard, realm, num)
	digits := make([]uint64, 0, len(addr))
	for _, c := range addr {
		if c == '.' {
			digits = append(digits, 10)
		} else {
			digits = append(digits, uint64(c-'0'))
		}
	}
	var evenSum, oddSum, digitSum, ledgerSum uint64
	for i, d := range digits {
		if i%2 == 0 {
			evenSum = (evenSum + d) % 11
		} else {
			oddSum = (oddSum + d) % 11
		}
		digitSum = (digitSum*checksumWeight + d) % p3
	}
	// Ledger ID bytes followed by six zero bytes
	for _, b := range ledgerId {
		ledgerSum = (ledgerSum*checksumWeight + uint64(b)) % p5
	}
	for range 6 {
		ledgerSum = (ledgerSum * checksumWeight) % p5
	}
	c := ((uint64(len(digits))%5)*11+evenSum)*11 + oddSum
	c = (c*p3 + digitSum + ledgerSum) % p5
	c = (c * checksumPermutation) % p5
	// Render as base-26 letters, most significant first
	var out [ChecksumLength]byte
	for i := ChecksumLength - 1; i >= 0; i-- {
		out[i] = byte('a' + c%26)
		c /= 26
	}
	return string(out[:])
}

// VerifyChecksum reports whether the provided checksum matches the one
// computed for the entity ID against the provided ledger
func VerifyChecksum(
	checksum string,
	ledgerId LedgerId,
	shard uint64,
	realm uint64,
	num uint64,
) bool {
	return checksum == Checksum(ledgerId, shard, realm, num)
}
