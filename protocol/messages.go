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
	"fmt"

	"github.com/blinklabs-io/gohashgraph/cbor"
)

const (
	MessageTypeSubmitTransaction   = 0
	MessageTypeTransactionResponse = 1
)

// SigPair is a public key and the signature that key produced over the
// transaction body bytes
type SigPair struct {
	cbor.StructAsArray
	PubKey    []byte
	Signature []byte
}

// SignedTransaction is the wire form of a single transaction: the encoded
// body bytes and the signatures collected over them. Signature pairs are
// ordered by public key so the encoding is deterministic
type SignedTransaction struct {
	cbor.StructAsArray
	BodyBytes []byte
	SigPairs  []SigPair
}

// MsgSubmitTransaction submits a signed transaction to a node
type MsgSubmitTransaction struct {
	MessageBase
	Transaction SignedTransaction
}

// NewMsgSubmitTransaction creates a new MsgSubmitTransaction
func NewMsgSubmitTransaction(tx SignedTransaction) *MsgSubmitTransaction {
	return &MsgSubmitTransaction{
		MessageBase: MessageBase{
			MessageType: MessageTypeSubmitTransaction,
		},
		Transaction: tx,
	}
}

// MsgTransactionResponse is the node's synchronous precheck response to a
// submitted transaction. Cost carries the node's fee estimate when the status
// reports an insufficient fee
type MsgTransactionResponse struct {
	MessageBase
	Status Status
	Cost   uint64
}

// NewMsgTransactionResponse creates a new MsgTransactionResponse
func NewMsgTransactionResponse(
	status Status,
	cost uint64,
) *MsgTransactionResponse {
	return &MsgTransactionResponse{
		MessageBase: MessageBase{
			MessageType: MessageTypeTransactionResponse,
		},
		Status: status,
		Cost:   cost,
	}
}

// NewMsgFromCbor parses a transaction submission message from CBOR
func NewMsgFromCbor(msgType uint, data []byte) (Message, error) {
	var ret Message
	switch msgType {
	case MessageTypeSubmitTransaction:
		ret = &MsgSubmitTransaction{}
	case MessageTypeTransactionResponse:
		ret = &MsgTransactionResponse{}
	default:
		return nil, fmt.Errorf(
			"%s: unknown message type: %d",
			ProtocolName,
			msgType,
		)
	}
	if _, err := cbor.Decode(data, ret); err != nil {
		return nil, fmt.Errorf("%s: decode error: %w", ProtocolName, err)
	}
	// Store the raw message CBOR
	ret.SetCbor(data)
	return ret, nil
}

// Type returns the message type
func (m *MsgSubmitTransaction) Type() uint8 {
	return MessageTypeSubmitTransaction
}

// Type returns the message type
func (m *MsgTransactionResponse) Type() uint8 {
	return MessageTypeTransactionResponse
}
