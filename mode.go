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

// Mode represents the mode (numeric, alphanumeric, byte, kanji/GB2312, or
// ECI) of a segment: its 4-bit indicator plus the three character-count
// field widths used for version ranges 1-9, 10-26, and 27-40.
type Mode struct {
	modeBits int8
	numBits  [3]int8
}

// Mode values for a segment. kanji is unexported: no public factory builds a
// kanji/GB2312 segment in this package, but the mode indicator and
// character-count widths are kept here so getTotalBits and the bit
// assembler remain correct if a caller constructs one directly via the
// low-level Segment literal.
var (
	Numeric      = Mode{0x1, [3]int8{10, 12, 14}}
	Alphanumeric = Mode{0x2, [3]int8{9, 11, 13}}
	Byte         = Mode{0x4, [3]int8{8, 16, 16}}
	kanji        = Mode{0xD, [3]int8{8, 10, 12}}
	ECI          = Mode{0x7, [3]int8{0, 0, 0}}
)

// numCharCountBits returns the width, in bits, of the character-count field
// for this mode at the given version.
func (m *Mode) numCharCountBits(version Version) int8 {
	return m.numBits[(version+7)/17]
}
