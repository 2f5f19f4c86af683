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

// FileAppendData appends contents to a file. Contents larger than the chunk
// size are split across multiple transactions at freeze time
type FileAppendData struct {
	fileId   ledger.FileId
	contents []byte
}

// NewFileAppend creates a FileAppendData for the given file and contents
func NewFileAppend(fileId ledger.FileId, contents []byte) *FileAppendData {
	return &FileAppendData{
		fileId:   fileId,
		contents: contents,
	}
}

// FileId returns the target file
func (d *FileAppendData) FileId() ledger.FileId {
	return d.fileId
}

// Contents returns the full contents to append
func (d *FileAppendData) Contents() []byte {
	return slices.Clone(d.contents)
}

func (d *FileAppendData) TransactionType() TransactionType {
	return TransactionTypeFileAppend
}

func (d *FileAppendData) RequiredSigners() []ledger.PublicKey {
	return nil
}

func (d *FileAppendData) validate() error {
	return nil
}

func (d *FileAppendData) validateChecksums(ledgerId ledger.LedgerId) error {
	return d.fileId.ValidateChecksum(ledgerId)
}

type fileAppendContent struct {
	cbor.StructAsArray
	File     ledger.FileId
	Contents []byte
}

func (d *FileAppendData) bodyContent() ([]byte, error) {
	return cbor.Encode(fileAppendContent{
		File:     d.fileId,
		Contents: d.contents,
	})
}

func (d *FileAppendData) chunkContent() []byte {
	return d.contents
}

func (d *FileAppendData) withChunkContent(content []byte) TransactionData {
	return &FileAppendData{
		fileId:   d.fileId,
		contents: content,
	}
}

func (*FileAppendData) isTransactionData() {}
