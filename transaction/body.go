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
	"github.com/blinklabs-io/gohashgraph/cbor"
	"github.com/blinklabs-io/gohashgraph/ledger"
)

// chunkInfo ties a chunk to its group: the initial transaction ID shared by
// all chunks plus this chunk's position
type chunkInfo struct {
	cbor.StructAsArray
	InitialId TransactionId
	Index     int
	Total     int
}

// transactionBody is the signable wire form of a single chunk addressed to a
// single node. ChunkInfo is nil whenever the transaction froze into a single
// chunk
type transactionBody struct {
	cbor.StructAsArray
	TransactionId TransactionId
	NodeAccountId ledger.AccountId
	MaxFee        int64
	ValidDuration int64
	Memo          string
	Kind          uint8
	Content       cbor.RawMessage
	ChunkInfo     *chunkInfo
}

// schedulableBody is the wire form of a transaction intended for later
// execution by a third party. It carries no node assignment and no
// valid-start: both are fixed when the schedule fires
type schedulableBody struct {
	cbor.StructAsArray
	Payer   ledger.AccountId
	MaxFee  int64
	Memo    string
	Kind    uint8
	Content cbor.RawMessage
}
