/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

// maxBitBufferLength is the largest number of bits a bitBuffer may hold,
// matching the 2^31-1 ceiling on the ISO bit-stream length field.
const maxBitBufferLength = 1<<31 - 1

// bitBuffer is an appendable, ordered sequence of bits, each stored as one
// byte (0 or 1) for simplicity of indexing. It backs segment payloads and
// the final codeword bit stream.
type bitBuffer []byte

// length returns the number of bits currently held.
func (bb bitBuffer) length() int {
	return len(bb)
}

// getBit returns the bit at index i. Panics if i is outside [0, length).
func (bb bitBuffer) getBit(i int) int {
	if i < 0 || i >= len(bb) {
		panic("bitBuffer: index out of range")
	}

	return int(bb[i])
}

// appendBits appends the low-order length bits of value, MSB first. Panics
// if length is outside [0, 31], if value does not fit in length bits, or if
// the resulting length would exceed maxBitBufferLength.
func (bb *bitBuffer) appendBits(value int, length int8) {
	if length < 0 || length > 31 || value>>length != 0 {
		panic("bitBuffer: value out of range")
	}

	if len(*bb)+int(length) > maxBitBufferLength {
		panic("bitBuffer: capacity exceeded")
	}

	for i := length - 1; i >= 0; i-- { // Append data bit by bit.
		*bb = append(*bb, byte(value>>i&1))
	}
}

// appendAll appends a defensive copy of another buffer's bits, in order.
func (bb *bitBuffer) appendAll(other bitBuffer) {
	if len(*bb)+len(other) > maxBitBufferLength {
		panic("bitBuffer: capacity exceeded")
	}

	*bb = append(*bb, other.clone()...)
}

// clone returns an independent deep copy of this buffer.
func (bb bitBuffer) clone() bitBuffer {
	out := make(bitBuffer, len(bb))
	copy(out, bb)
	return out
}
