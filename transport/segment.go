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
	"time"
)

const (
	// SegmentHeaderSize is the size of the wire header preceding each
	// segment payload
	SegmentHeaderSize = 8

	// SegmentMaxPayloadLength is the maximum payload that fits in a single
	// segment. Larger messages are split across segments and reassembled by
	// the receiver
	SegmentMaxPayloadLength = 65535

	segmentProtocolIdResponseFlag = 0x8000
)

// SegmentHeader is the wire header for a segment. It's encoded big-endian
type SegmentHeader struct {
	Timestamp     uint32
	ProtocolId    uint16
	PayloadLength uint16
}

// Segment is a single framed unit on the wire
type Segment struct {
	SegmentHeader
	Payload []byte
}

// NewSegment creates a new Segment for the given protocol and payload. The
// payload must not exceed SegmentMaxPayloadLength
func NewSegment(protocolId uint16, payload []byte, isResponse bool) *Segment {
	header := SegmentHeader{
		Timestamp:  uint32(time.Now().UnixNano() & 0xffffffff),
		ProtocolId: protocolId,
	}
	if isResponse {
		header.ProtocolId += segmentProtocolIdResponseFlag
	}
	// #nosec G115 -- payload size bounded by SegmentMaxPayloadLength at call sites
	header.PayloadLength = uint16(len(payload))
	segment := &Segment{
		SegmentHeader: header,
		Payload:       payload,
	}
	return segment
}

// IsRequest returns true if the segment is part of a request
func (s *SegmentHeader) IsRequest() bool {
	return (s.ProtocolId & segmentProtocolIdResponseFlag) == 0
}

// IsResponse returns true if the segment is part of a response
func (s *SegmentHeader) IsResponse() bool {
	return (s.ProtocolId & segmentProtocolIdResponseFlag) > 0
}

// GetProtocolId returns the protocol ID with the response flag masked off
func (s *SegmentHeader) GetProtocolId() uint16 {
	if s.ProtocolId >= segmentProtocolIdResponseFlag {
		return s.ProtocolId - segmentProtocolIdResponseFlag
	}
	return s.ProtocolId
}
