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

/*
Package cbor provides thin wrappers around the fxamacker/cbor library tuned for
wire use: deterministic encoding (sorted map keys), decoding that reports the
number of bytes consumed, decoding that requires the input be fully consumed,
dispatch of tagged lists by their leading numeric ID, and helpers for
encoding/decoding objects while bypassing their custom CBOR methods so the
original wire bytes can be captured alongside the decoded value.
*/
package cbor
