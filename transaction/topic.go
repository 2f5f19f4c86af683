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
	"slices"

	"github.com/blinklabs-io/gohashgraph/cbor"
	"github.com/blinklabs-io/gohashgraph/ledger"
)

// TopicMessageSubmitData publishes a message to a consensus topic. Messages
// larger than the chunk size are split across multiple transactions at
// freeze time
type TopicMessageSubmitData struct {
	topicId ledger.TopicId
	message []byte
}

// NewTopicMessageSubmit creates a TopicMessageSubmitData for the given topic
// and message
func NewTopicMessageSubmit(
	topicId ledger.TopicId,
	message []byte,
) *TopicMessageSubmitData {
	return &TopicMessageSubmitData{
		topicId: topicId,
		message: message,
	}
}

// TopicId returns the target topic
func (d *TopicMessageSubmitData) TopicId() ledger.TopicId {
	return d.topicId
}

// Message returns the full message content
func (d *TopicMessageSubmitData) Message() []byte {
	return slices.Clone(d.message)
}

func (d *TopicMessageSubmitData) TransactionType() TransactionType {
	return TransactionTypeTopicMessageSubmit
}

func (d *TopicMessageSubmitData) RequiredSigners() []ledger.PublicKey {
	return nil
}

func (d *TopicMessageSubmitData) validate() error {
	return nil
}

func (d *TopicMessageSubmitData) validateChecksums(
	ledgerId ledger.LedgerId,
) error {
	return d.topicId.ValidateChecksum(ledgerId)
}

type topicMessageContent struct {
	cbor.StructAsArray
	Topic   ledger.TopicId
	Message []byte
}

func (d *TopicMessageSubmitData) bodyContent() ([]byte, error) {
	return cbor.Encode(topicMessageContent{
		Topic:   d.topicId,
		Message: d.message,
	})
}

func (d *TopicMessageSubmitData) chunkContent() []byte {
	return d.message
}

func (d *TopicMessageSubmitData) withChunkContent(
	content []byte,
) TransactionData {
	return &TopicMessageSubmitData{
		topicId: d.topicId,
		message: content,
	}
}

func (*TopicMessageSubmitData) isTransactionData() {}
