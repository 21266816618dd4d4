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

// ECC is the error correction level of a QR code symbol.
type ECC int8

// ECC values, ordered from least to most redundant.
const (
	Low      ECC = iota // Recovers ~7% of codewords.
	Medium              // Recovers ~15% of codewords.
	Quartile            // Recovers ~25% of codewords.
	High                // Recovers ~30% of codewords.
)

// formatBits returns the 2-bit code stamped into the format information
// strips for this level. Note this is not the same as the level's ordinal.
func (e ECC) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown ECC level")
	}
}
