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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"reflect"
	"time"

	"github.com/blinklabs-io/gohashgraph/cbor"
	"github.com/blinklabs-io/gohashgraph/protocol"
	"github.com/blinklabs-io/gohashgraph/transport"
)

// Connection mocks the node side of a framed transaction submission
// connection. It plays through the provided conversation entries and panics
// on any mismatch, which is enough to fail the test driving it
type Connection struct {
	mockConn     net.Conn
	conn         net.Conn
	conversation []ConversationEntry
	recvBuffer   *bytes.Buffer
}

// NewConnection returns a new Connection with the provided conversation entries
func NewConnection(conversation []ConversationEntry) net.Conn {
	c := &Connection{
		conversation: conversation,
		recvBuffer:   bytes.NewBuffer(nil),
	}
	c.conn, c.mockConn = net.Pipe()
	// Start async conversation handler
	go c.asyncLoop()
	return c
}

// Read provides a proxy to the client-side connection's Read function. This is needed to satisfy the net.Conn interface
func (c *Connection) Read(b []byte) (n int, err error) {
	return c.conn.Read(b)
}

// Write provides a proxy to the client-side connection's Write function. This is needed to satisfy the net.Conn interface
func (c *Connection) Write(b []byte) (n int, err error) {
	return c.conn.Write(b)
}

// Close closes both sides of the connection. This is needed to satisfy the net.Conn interface
func (c *Connection) Close() error {
	if err := c.conn.Close(); err != nil {
		return err
	}
	if err := c.mockConn.Close(); err != nil {
		return err
	}
	return nil
}

// LocalAddr provides a proxy to the client-side connection's LocalAddr function. This is needed to satisfy the net.Conn interface
func (c *Connection) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// RemoteAddr provides a proxy to the client-side connection's RemoteAddr function. This is needed to satisfy the net.Conn interface
func (c *Connection) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// SetDeadline provides a proxy to the client-side connection's SetDeadline function. This is needed to satisfy the net.Conn interface
func (c *Connection) SetDeadline(t time.Time) error {
	return c.conn.SetDeadline(t)
}

// SetReadDeadline provides a proxy to the client-side connection's SetReadDeadline function. This is needed to satisfy the net.Conn interface
func (c *Connection) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

// SetWriteDeadline provides a proxy to the client-side connection's SetWriteDeadline function. This is needed to satisfy the net.Conn interface
func (c *Connection) SetWriteDeadline(t time.Time) error {
	return c.conn.SetWriteDeadline(t)
}

func (c *Connection) asyncLoop() {
	for _, entry := range c.conversation {
		switch entry.Type {
		case EntryTypeInput:
			if err := c.processInputEntry(entry); err != nil {
				if closedPipe(err) {
					// Client went away, nothing left to verify
					return
				}
				panic(err.Error())
			}
		case EntryTypeOutput:
			if err := c.processOutputEntry(entry); err != nil {
				if closedPipe(err) {
					return
				}
				panic(fmt.Sprintf("output error: %s", err))
			}
		case EntryTypeClose:
			c.Close()
		default:
			panic(
				fmt.Sprintf(
					"unknown conversation entry type: %d: %#v",
					entry.Type,
					entry,
				),
			)
		}
	}
}

// closedPipe returns true for errors that indicate the connection was torn
// down out from under the conversation
func closedPipe(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, net.ErrClosed)
}

// readMessage reads segments from the client and reassembles them until a
// complete message has been received
func (c *Connection) readMessage() ([]byte, error) {
	for {
		header := transport.SegmentHeader{}
		if err := binary.Read(c.mockConn, binary.BigEndian, &header); err != nil {
			return nil, err
		}
		if header.GetProtocolId() != protocol.ProtocolId {
			return nil, fmt.Errorf(
				"received segment for unexpected protocol id %d",
				header.GetProtocolId(),
			)
		}
		if !header.IsRequest() {
			return nil, errors.New("received unexpected response segment")
		}
		payload := make([]byte, header.PayloadLength)
		if _, err := io.ReadFull(c.mockConn, payload); err != nil {
			return nil, err
		}
		c.recvBuffer.Write(payload)
		var tmpMsg []cbor.RawMessage
		if _, err := cbor.Decode(c.recvBuffer.Bytes(), &tmpMsg); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
				// Partial message, wait for more segments
				continue
			}
			return nil, err
		}
		msgData := make([]byte, c.recvBuffer.Len())
		copy(msgData, c.recvBuffer.Bytes())
		c.recvBuffer.Reset()
		return msgData, nil
	}
}

func (c *Connection) processInputEntry(entry ConversationEntry) error {
	msgData, err := c.readMessage()
	if err != nil {
		return err
	}
	// Determine message type
	msgType, err := cbor.DecodeIdFromList(msgData)
	if err != nil {
		return fmt.Errorf("decode error: %s", err)
	}
	if entry.InputMessage != nil {
		// Create Message object from CBOR
		msg, err := protocol.NewMsgFromCbor(uint(msgType), msgData)
		if err != nil {
			return fmt.Errorf("message from CBOR error: %s", err)
		}
		// Set the raw CBOR on the expected message so the comparison can succeed
		entry.InputMessage.SetCbor(msgData)
		if !reflect.DeepEqual(msg, entry.InputMessage) {
			return fmt.Errorf(
				"parsed message does not match expected value: got %#v, expected %#v",
				msg,
				entry.InputMessage,
			)
		}
	} else {
		if entry.InputMessageType != uint(msgType) {
			return fmt.Errorf(
				"input message is not of expected type: expected %d, got %d",
				entry.InputMessageType,
				msgType,
			)
		}
	}
	return nil
}

func (c *Connection) processOutputEntry(entry ConversationEntry) error {
	payloadBuf := bytes.NewBuffer(nil)
	for _, msg := range entry.OutputMessages {
		// Get raw CBOR from message
		data := msg.Cbor()
		// If message has no raw CBOR, encode the message
		if data == nil {
			var err error
			data, err = cbor.Encode(msg)
			if err != nil {
				return err
			}
		}
		payloadBuf.Write(data)
	}
	// Split the payload into response segments and write them out
	data := payloadBuf.Bytes()
	for offset := 0; offset < len(data); {
		end := offset + transport.SegmentMaxPayloadLength
		if end > len(data) {
			end = len(data)
		}
		segment := transport.NewSegment(protocol.ProtocolId, data[offset:end], true)
		buf := &bytes.Buffer{}
		if err := binary.Write(buf, binary.BigEndian, segment.SegmentHeader); err != nil {
			return err
		}
		buf.Write(segment.Payload)
		if _, err := c.mockConn.Write(buf.Bytes()); err != nil {
			return err
		}
		offset = end
	}
	return nil
}
