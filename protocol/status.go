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

import "fmt"

// Status is the precheck status code a node returns synchronously for a
// submitted transaction
type Status uint16

const (
	StatusOk                       Status = 0
	StatusBusy                     Status = 1
	StatusPlatformNotActive        Status = 2
	StatusInvalidTransaction       Status = 3
	StatusInvalidTransactionId     Status = 4
	StatusTransactionExpired       Status = 5
	StatusDuplicateTransaction     Status = 6
	StatusInvalidNodeAccount       Status = 7
	StatusInvalidSignature         Status = 8
	StatusMemoTooLong              Status = 9
	StatusTransactionOversize      Status = 10
	StatusInsufficientTxFee        Status = 11
	StatusInsufficientPayerBalance Status = 12
	StatusPayerAccountNotFound     Status = 13
	StatusInvalidAccountId         Status = 14
	StatusInvalidTokenId           Status = 15
	StatusInvalidTopicId           Status = 16
	StatusInvalidFileId            Status = 17
	StatusInvalidContractId        Status = 18
	StatusTokenNotAssociated       Status = 19
	StatusAccountDeleted           Status = 20
	StatusTokenWasDeleted          Status = 21
	StatusTokenAlreadyPaused       Status = 22
	StatusNotSupported             Status = 23
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusBusy:
		return "Busy"
	case StatusPlatformNotActive:
		return "PlatformNotActive"
	case StatusInvalidTransaction:
		return "InvalidTransaction"
	case StatusInvalidTransactionId:
		return "InvalidTransactionId"
	case StatusTransactionExpired:
		return "TransactionExpired"
	case StatusDuplicateTransaction:
		return "DuplicateTransaction"
	case StatusInvalidNodeAccount:
		return "InvalidNodeAccount"
	case StatusInvalidSignature:
		return "InvalidSignature"
	case StatusMemoTooLong:
		return "MemoTooLong"
	case StatusTransactionOversize:
		return "TransactionOversize"
	case StatusInsufficientTxFee:
		return "InsufficientTxFee"
	case StatusInsufficientPayerBalance:
		return "InsufficientPayerBalance"
	case StatusPayerAccountNotFound:
		return "PayerAccountNotFound"
	case StatusInvalidAccountId:
		return "InvalidAccountId"
	case StatusInvalidTokenId:
		return "InvalidTokenId"
	case StatusInvalidTopicId:
		return "InvalidTopicId"
	case StatusInvalidFileId:
		return "InvalidFileId"
	case StatusInvalidContractId:
		return "InvalidContractId"
	case StatusTokenNotAssociated:
		return "TokenNotAssociated"
	case StatusAccountDeleted:
		return "AccountDeleted"
	case StatusTokenWasDeleted:
		return "TokenWasDeleted"
	case StatusTokenAlreadyPaused:
		return "TokenAlreadyPaused"
	case StatusNotSupported:
		return "NotSupported"
	default:
		return fmt.Sprintf("Unknown (%d)", uint16(s))
	}
}

// Disposition describes how a submitter should react to a precheck status
type Disposition int

const (
	// The node accepted the transaction
	DispositionAccepted Disposition = iota
	// The node is temporarily unable to accept; retry the same node after a delay
	DispositionRetrySameNode
	// The node cannot serve this transaction; try the next candidate node
	// without delay
	DispositionRetryNextNode
	// The transaction was rejected and no retry can change the outcome
	DispositionTerminal
)

func (d Disposition) String() string {
	switch d {
	case DispositionAccepted:
		return "Accepted"
	case DispositionRetrySameNode:
		return "RetrySameNode"
	case DispositionRetryNextNode:
		return "RetryNextNode"
	case DispositionTerminal:
		return "Terminal"
	default:
		return fmt.Sprintf("Unknown (%d)", int(d))
	}
}

// Disposition maps each status code to exactly one submitter reaction
func (s Status) Disposition() Disposition {
	switch s {
	case StatusOk:
		return DispositionAccepted
	case StatusBusy, StatusPlatformNotActive:
		return DispositionRetrySameNode
	case StatusInvalidNodeAccount:
		return DispositionRetryNextNode
	default:
		return DispositionTerminal
	}
}
