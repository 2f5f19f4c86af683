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

package transport

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/blinklabs-io/gohashgraph/cbor"
	"github.com/blinklabs-io/gohashgraph/protocol"
)

// Maximum bytes we'll buffer for a single message before giving up on
// reassembly
const maxMessageSize = 131072

// Conn wraps a network connection and speaks the framed transaction
// submission protocol over it. Requests on a single Conn are serialized, since
// the protocol is strictly request/response
type Conn struct {
	conn       net.Conn
	mutex      sync.Mutex
	recvBuffer *bytes.Buffer
}

// NewConn creates a Conn wrapping the provided network connection
func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn:       conn,
		recvBuffer: bytes.NewBuffer(nil),
	}
}

// Request sends a message to the peer and waits synchronously for its
// response. The context deadline (if any) is applied to both the send and the
// receive, and cancellation is observed between segments
func (c *Conn) Request(
	ctx context.Context,
	msg protocol.Message,
) (protocol.Message, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if err := c.writeMessage(ctx, msg); err != nil {
		return nil, err
	}
	return c.readMessage(ctx)
}

// Close closes the underlying network connection
func (c *Conn) Close() error {
	return c.conn.Close()
}

func (c *Conn) writeMessage(ctx context.Context, msg protocol.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// Get raw CBOR from message
	data := msg.Cbor()
	// If message has no raw CBOR, encode the message
	if data == nil {
		var err error
		data, err = cbor.Encode(msg)
		if err != nil {
			return fmt.Errorf("%s: encode error: %w", protocol.ProtocolName, err)
		}
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	// Split the message into segments and write them out
	for offset := 0; offset < len(data); {
		end := offset + SegmentMaxPayloadLength
		if end > len(data) {
			end = len(data)
		}
		segment := NewSegment(protocol.ProtocolId, data[offset:end], false)
		buf := &bytes.Buffer{}
		if err := binary.Write(buf, binary.BigEndian, segment.SegmentHeader); err != nil {
			return err
		}
		buf.Write(segment.Payload)
		if _, err := c.conn.Write(buf.Bytes()); err != nil {
			return err
		}
		offset = end
	}
	return nil
}

func (c *Conn) readMessage(ctx context.Context) (protocol.Message, error) {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	// Start with any data left over from a previous read
	leftoverData := c.recvBuffer.Len() > 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !leftoverData {
			segment, err := c.readSegment()
			if err != nil {
				return nil, err
			}
			c.recvBuffer.Write(segment.Payload)
		}
		leftoverData = false
		// Decode message into generic list until we can determine what type
		// of message it is. This also lets us determine how many bytes the
		// message is. We use RawMessage for the list value types to prevent
		// parsing of nested CBOR structures
		var tmpMsg []cbor.RawMessage
		numBytesRead, err := cbor.Decode(c.recvBuffer.Bytes(), &tmpMsg)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
				// This is probably a multi-segment message, so we wait until
				// we get more of the message before trying to process it
				if c.recvBuffer.Len() >= maxMessageSize {
					return nil, fmt.Errorf(
						"%s: message exceeds maximum size of %d bytes",
						protocol.ProtocolName,
						maxMessageSize,
					)
				}
				continue
			}
			return nil, fmt.Errorf(
				"%s: decode error: %w",
				protocol.ProtocolName,
				err,
			)
		}
		if len(tmpMsg) == 0 {
			return nil, fmt.Errorf(
				"%s: decode error: empty message",
				protocol.ProtocolName,
			)
		}
		// Decode first list item to determine message type
		var msgType uint8
		if _, err := cbor.Decode(tmpMsg[0], &msgType); err != nil {
			return nil, fmt.Errorf(
				"%s: decode error: %w",
				protocol.ProtocolName,
				err,
			)
		}
		msg, err := protocol.NewMsgFromCbor(
			uint(msgType),
			c.recvBuffer.Bytes()[:numBytesRead],
		)
		if err != nil {
			return nil, err
		}
		if numBytesRead < c.recvBuffer.Len() {
			// There's another message in the buffer, so we reset the buffer
			// with just the remaining data
			c.recvBuffer = bytes.NewBuffer(
				c.recvBuffer.Bytes()[numBytesRead:],
			)
		} else {
			// Empty out our buffer since we successfully processed the message
			c.recvBuffer.Reset()
		}
		return msg, nil
	}
}

func (c *Conn) readSegment() (*Segment, error) {
	header := SegmentHeader{}
	if err := binary.Read(c.conn, binary.BigEndian, &header); err != nil {
		return nil, err
	}
	if header.GetProtocolId() != protocol.ProtocolId {
		return nil, fmt.Errorf(
			"%s: received segment for unexpected protocol id %d",
			protocol.ProtocolName,
			header.GetProtocolId(),
		)
	}
	segment := &Segment{
		SegmentHeader: header,
		Payload:       make([]byte, header.PayloadLength),
	}
	// We use ReadFull because it guarantees to read the expected number of
	// bytes or return an error
	if _, err := io.ReadFull(c.conn, segment.Payload); err != nil {
		return nil, err
	}
	return segment, nil
}
