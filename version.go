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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 */

package qrcodegen

// Version is a QR code version number, in the range [1, 40]. It determines
// the symbol's side length (4*version + 17) and its data capacity.
type Version int

// The legal range of QR code versions.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// size returns the side length, in modules, of a symbol at this version.
func (v Version) size() int {
	return int(v)*4 + 17
}

// Mask identifies one of the 8 standard XOR mask patterns, or -1 to request
// automatic selection by penalty score.
type Mask int8

// Module is the color of a single QR code cell: 0 for light, 1 for dark.
type Module uint8
