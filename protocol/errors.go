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

package protocol

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gohashgraph/ledger"
)

// Sentinel error for precheck rejections so callers can use errors.Is
var ErrPrecheckRejected = errors.New("transaction rejected at precheck")

// PrecheckError indicates a node terminally rejected a transaction at precheck
type PrecheckError struct {
	Status        Status
	NodeId        ledger.AccountId
	TransactionId string
}

func (e PrecheckError) Error() string {
	if e.TransactionId == "" {
		return fmt.Sprintf(
			"transaction rejected by node %s: %s",
			e.NodeId.String(),
			e.Status.String(),
		)
	}
	return fmt.Sprintf(
		"transaction %s rejected by node %s: %s",
		e.TransactionId,
		e.NodeId.String(),
		e.Status.String(),
	)
}

func (PrecheckError) Is(target error) bool {
	return target == ErrPrecheckRejected
}
