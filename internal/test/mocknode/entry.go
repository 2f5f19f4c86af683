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

package mocknode

import (
	"github.com/blinklabs-io/gohashgraph/protocol"
)

type EntryType int

const (
	EntryTypeNone   EntryType = 0
	EntryTypeInput  EntryType = 1
	EntryTypeOutput EntryType = 2
	EntryTypeClose  EntryType = 3
)

// ConversationEntry is a single scripted exchange with the mock node. Input
// entries describe a message the node expects to receive from the client, and
// output entries describe the response messages the node sends back
type ConversationEntry struct {
	Type             EntryType
	OutputMessages   []protocol.Message
	InputMessage     protocol.Message
	InputMessageType uint
}

// ConversationEntrySubmitRequestGeneric is a pre-defined conversation entry that matches
// any transaction submission from a client
var ConversationEntrySubmitRequestGeneric = ConversationEntry{
	Type:             EntryTypeInput,
	InputMessageType: protocol.MessageTypeSubmitTransaction,
}

// ConversationEntryResponseOk is a pre-defined conversation entry for a node response
// accepting the submitted transaction
var ConversationEntryResponseOk = ConversationEntry{
	Type: EntryTypeOutput,
	OutputMessages: []protocol.Message{
		protocol.NewMsgTransactionResponse(protocol.StatusOk, 0),
	},
}

// ConversationEntryClose is a pre-defined conversation entry that closes the
// connection from the node side
var ConversationEntryClose = ConversationEntry{
	Type: EntryTypeClose,
}
