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

// Typed wrappers around EntityId so IDs for different entity kinds don't
// interchange silently. Only accounts support the alias form.

// AccountId addresses an account
type AccountId struct {
	EntityId
}

func NewAccountId(shard uint64, realm uint64, num uint64) AccountId {
	return AccountId{NewEntityId(shard, realm, num)}
}

func NewAccountIdFromAlias(
	shard uint64,
	realm uint64,
	alias PublicKey,
) AccountId {
	return AccountId{NewEntityIdFromAlias(shard, realm, alias)}
}

func NewAccountIdFromString(s string) (AccountId, error) {
	e, err := NewEntityIdFromString(s)
	if err != nil {
		return AccountId{}, err
	}
	return AccountId{e}, nil
}

func NewAccountIdFromBytes(data []byte) (AccountId, error) {
	e, err := NewEntityIdFromBytes(data)
	if err != nil {
		return AccountId{}, err
	}
	return AccountId{e}, nil
}

func (a AccountId) Equal(other AccountId) bool {
	return a.EntityId.Equal(other.EntityId)
}

// TokenId addresses a token
type TokenId struct {
	EntityId
}

func NewTokenId(shard uint64, realm uint64, num uint64) TokenId {
	return TokenId{NewEntityId(shard, realm, num)}
}

func NewTokenIdFromString(s string) (TokenId, error) {
	e, err := newNumericEntityIdFromString(s, "token")
	if err != nil {
		return TokenId{}, err
	}
	return TokenId{e}, nil
}

func NewTokenIdFromBytes(data []byte) (TokenId, error) {
	e, err := NewEntityIdFromBytes(data)
	if err != nil {
		return TokenId{}, err
	}
	return TokenId{e}, nil
}

func (t TokenId) Equal(other TokenId) bool {
	return t.EntityId.Equal(other.EntityId)
}

// TopicId addresses a consensus topic
type TopicId struct {
	EntityId
}

func NewTopicId(shard uint64, realm uint64, num uint64) TopicId {
	return TopicId{NewEntityId(shard, realm, num)}
}

func NewTopicIdFromString(s string) (TopicId, error) {
	e, err := newNumericEntityIdFromString(s, "topic")
	if err != nil {
		return TopicId{}, err
	}
	return TopicId{e}, nil
}

func NewTopicIdFromBytes(data []byte) (TopicId, error) {
	e, err := NewEntityIdFromBytes(data)
	if err != nil {
		return TopicId{}, err
	}
	return TopicId{e}, nil
}

func (t TopicId) Equal(other TopicId) bool {
	return t.EntityId.Equal(other.EntityId)
}

// FileId addresses a file
type FileId struct {
	EntityId
}

func NewFileId(shard uint64, realm uint64, num uint64) FileId {
	return FileId{NewEntityId(shard, realm, num)}
}

func NewFileIdFromString(s string) (FileId, error) {
	e, err := newNumericEntityIdFromString(s, "file")
	if err != nil {
		return FileId{}, err
	}
	return FileId{e}, nil
}

func NewFileIdFromBytes(data []byte) (FileId, error) {
	e, err := NewEntityIdFromBytes(data)
	if err != nil {
		return FileId{}, err
	}
	return FileId{e}, nil
}

func (f FileId) Equal(other FileId) bool {
	return f.EntityId.Equal(other.EntityId)
}

// ContractId addresses a smart contract
type ContractId struct {
	EntityId
}

func NewContractId(shard uint64, realm uint64, num uint64) ContractId {
	return ContractId{NewEntityId(shard, realm, num)}
}

func NewContractIdFromString(s string) (ContractId, error) {
	e, err := newNumericEntityIdFromString(s, "contract")
	if err != nil {
		return ContractId{}, err
	}
	return ContractId{e}, nil
}

func NewContractIdFromBytes(data []byte) (ContractId, error) {
	e, err := NewEntityIdFromBytes(data)
	if err != nil {
		return ContractId{}, err
	}
	return ContractId{e}, nil
}

func (c ContractId) Equal(other ContractId) bool {
	return c.EntityId.Equal(other.EntityId)
}

func newNumericEntityIdFromString(s string, kind string) (EntityId, error) {
	e, err := NewEntityIdFromString(s)
	if err != nil {
		return EntityId{}, err
	}
	if e.alias != nil {
		return EntityId{}, EntityIdFormatError{
			Text:   s,
			Reason: kind + " IDs do not support the alias form",
		}
	}
	return e, nil
}
