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
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

package qrcodegen

import (
	"fmt"
	"math"
	"strings"
)

// Symbol is an encoded QR code: an immutable square grid of dark and light
// modules, along with the version, error correction level, and mask that
// produced it. Construct one with EncodeText, EncodeBinary, or
// EncodeSegments; there is no exported way to mutate a Symbol afterward.
type Symbol struct {
	version    Version
	size       int
	ecc        ECC
	mask       Mask
	modules    [][]Module // modules[y][x]; 1 = dark, 0 = light.
	isFunction [][]bool   // Reserved cells, excluded from data placement and masking. Discarded after construction.
}

// Penalty weights used by getPenaltyScore to judge how likely a mask is to
// make a symbol harder for a scanner to decode.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// EncodeText builds a Symbol from Unicode text at the given error
// correction level, choosing a mode automatically (see MakeSegments).
func EncodeText(text string, ecc ECC) (*Symbol, error) {
	segs := MakeSegments(text)
	return EncodeSegments(segs, ecc)
}

// EncodeBinary builds a Symbol from raw bytes, always in Byte mode, at the
// given error correction level.
func EncodeBinary(data []byte, ecc ECC) (*Symbol, error) {
	seg := MakeBytes(data)
	return EncodeSegments([]*Segment{seg}, ecc)
}

// EncodeSegments builds a Symbol from a caller-assembled segment list.
//
// By default the smallest version in [1, 40] that fits the data is chosen,
// the error correction level is boosted when the chosen version has spare
// capacity, and the mask is selected automatically by penalty score. Use
// WithMinVersion, WithMaxVersion, WithMask, and WithBoostECL to override any
// of these.
//
// Returns an error wrapping ErrInvalidArgument for an out-of-range mask or
// version window, or ErrDataTooLong if no version in range can hold segs at
// ecc.
func EncodeSegments(segs []*Segment, ecc ECC, options ...func(*segmentEncoder)) (*Symbol, error) {
	s := segmentEncoder{
		boostECL:   true,
		mask:       -1,
		maxVersion: MaxVersion,
		minVersion: MinVersion,
	}
	for _, o := range options {
		o(&s)
	}

	if s.minVersion < MinVersion || MaxVersion < s.maxVersion || s.maxVersion < s.minVersion {
		return nil, fmt.Errorf("%w: version range [%d, %d] is invalid", ErrInvalidArgument, s.minVersion, s.maxVersion)
	}

	if s.mask < -1 || s.mask > 7 {
		return nil, fmt.Errorf("%w: mask value %d out of range", ErrInvalidArgument, s.mask)
	}

	// Find the minimal version number that fits the data.
	version := s.minVersion
	var dataUsedBits int
	for {
		dataCapacityBits := numDataCodewords[ecc][version] * 8
		dataUsedBits = getTotalBits(segs, version)
		if dataUsedBits != -1 && dataUsedBits <= dataCapacityBits {
			break
		}
		if version >= s.maxVersion { // No version in range can hold the data.
			return nil, fmt.Errorf("%w: segments require more than %d bits at version %d", ErrDataTooLong, dataCapacityBits, version)
		}
		version++
	}

	if dataUsedBits == -1 {
		panic("qrcodegen: incorrect data size calculation")
	}

	// Boost the error correction level while the data still fits at this version.
	for newECC := Medium; newECC <= High; newECC++ {
		if s.boostECL && dataUsedBits <= numDataCodewords[newECC][version]*8 {
			ecc = newECC
		}
	}

	// Concatenate all segments into one bit stream: mode indicator, count field, payload.
	bb := make(bitBuffer, 0)
	for _, seg := range segs {
		bb.appendBits(int(seg.modeBits), 4)
		bb.appendBits(seg.NumChars, seg.Mode.numCharCountBits(version))
		bb = append(bb, seg.Data...)
	}
	if len(bb) != dataUsedBits {
		panic("qrcodegen: incorrect data size calculation")
	}

	// Terminator, bit padding to a byte boundary, then byte padding to capacity.
	dataCapacityBits := numDataCodewords[ecc][version] * 8
	if len(bb) > dataCapacityBits {
		panic("qrcodegen: incorrect data size calculation")
	}
	bb.appendBits(0, int8(min(4, dataCapacityBits-len(bb))))
	bb.appendBits(0, int8((8-len(bb)%8)%8))
	if len(bb)%8 != 0 {
		panic("qrcodegen: incorrect data size calculation")
	}

	for padByte := int16(0xec); len(bb) < dataCapacityBits; padByte ^= 0xec ^ 0x11 {
		bb.appendBits(int(padByte), 8)
	}

	// Pack bits into bytes, MSB first.
	dataCodewords := make([]byte, len(bb)/8)
	for i := 0; i < len(bb); i++ {
		dataCodewords[i>>3] |= bb[i] << (7 - i&7)
	}

	size := version.size()
	sym := Symbol{
		version:    version,
		size:       size,
		ecc:        ecc,
		modules:    make([][]Module, size),
		isFunction: make([][]bool, size),
	}
	for i := 0; i < size; i++ {
		sym.modules[i] = make([]Module, size)
		sym.isFunction[i] = make([]bool, size)
	}

	sym.drawFunctionPatterns()
	allCodewords := sym.addECCAndInterleave(dataCodewords)
	sym.drawCodewords(allCodewords)
	sym.mask = sym.handleConstructorMasking(s.mask)

	sym.isFunction = nil

	return &sym, nil
}

// Version returns this symbol's version number, in [1, 40].
func (s *Symbol) Version() Version { return s.version }

// Size returns the side length of this symbol, in modules.
func (s *Symbol) Size() int { return s.size }

// ECC returns the error correction level used by this symbol. Note this may
// be higher than what was requested if EncodeSegments boosted it.
func (s *Symbol) ECC() ECC { return s.ecc }

// Mask returns the mask pattern (0-7) stamped into this symbol.
func (s *Symbol) Mask() Mask { return s.mask }

// GetModule reports whether the module at (x, y) is dark. Returns false for
// any coordinate outside [0, Size), so callers can read the matrix
// (including its quiet-zone border) without separate bounds checks.
func (s *Symbol) GetModule(x, y int) bool {
	if x < 0 || x >= s.size || y < 0 || y >= s.size {
		return false
	}
	return s.modules[y][x] != 0
}

// String renders this symbol as a block-character grid, useful for quick
// terminal inspection and debugging.
func (s *Symbol) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Symbol v%d ecc=%d mask=%d size=%d\n", s.version, s.ecc, s.mask, s.size)
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if s.GetModule(x, y) {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// addECCAndInterleave splits data into the per-version block layout,
// appends Reed-Solomon parity to each block, and interleaves the blocks
// into the final codeword stream (data columns first, skipping the absent
// column of short blocks, then parity columns).
func (s *Symbol) addECCAndInterleave(data []byte) []byte {
	if len(data) != numDataCodewords[s.ecc][s.version] {
		panic("qrcodegen: data is not correct length")
	}

	numBlocks := numErrorCorrectionBlocks[s.ecc][s.version]
	blockECCLen := eccCodeWordsPerBlock[s.ecc][s.version]
	rawCodewords := numRawDataModules[s.version] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	blocks := make([][]byte, numBlocks)
	rsDiv := reedSolomonDivisors[blockECCLen]
	for i, k := 0, 0; i < numBlocks; i++ {
		dat := data[k : k+shortBlockLen-blockECCLen+bToI(i >= numShortBlocks)]
		k += len(dat)
		block := make([]byte, shortBlockLen+1)
		copy(block, dat)
		ecc := reedSolomonComputeRemainder(dat, rsDiv)
		copy(block[(len(block)-len(ecc)):], ecc)
		blocks[i] = block
	}

	result := make([]byte, rawCodewords)
	for i, k := 0, 0; i < len(blocks[0]); i++ {
		for j := 0; j < len(blocks); j++ {
			// Skip the absent padding byte in short blocks.
			if i != shortBlockLen-blockECCLen || j >= numShortBlocks {
				result[k] = blocks[j][i]
				k++
			}
		}
	}

	return result
}

// applyMask XORs every non-function module with the given mask's predicate.
// Applying the same mask twice cancels out.
func (s *Symbol) applyMask(mask Mask) {
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			var invert bool
			switch mask {
			case 0:
				invert = (x+y)%2 == 0
			case 1:
				invert = y%2 == 0
			case 2:
				invert = x%3 == 0
			case 3:
				invert = (x+y)%3 == 0
			case 4:
				invert = (x/3+y/2)%2 == 0
			case 5:
				invert = x*y%2+x*y%3 == 0
			case 6:
				invert = (x*y%2+x*y%3)%2 == 0
			case 7:
				invert = ((x+y)%2+x*y%3)%2 == 0
			default:
				panic("qrcodegen: illegal mask value")
			}
			s.modules[y][x] ^= bToModule(invert && !s.isFunction[y][x])
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y).
func (s *Symbol) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			s.setFunctionModule(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawCodewords draws the interleaved codeword stream onto every
// non-function module, MSB first, in the standard zig-zag scan: two-column
// bands from the right edge leftward (skipping the timing column),
// alternating scan direction per band, right column of the pair before the
// left.
func (s *Symbol) drawCodewords(data []byte) {
	if len(data) != numRawDataModules[s.version]/8 {
		panic("qrcodegen: incorrect data length")
	}

	i := 0 // Bit index into data.
	for right := s.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < s.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = s.size - 1 - vert
				} else {
					y = vert
				}

				if !s.isFunction[y][x] && i < len(data)*8 {
					s.modules[y][x] = Module(getBit(int(data[i>>3]), 7-(i&7)))
					i++
				}
				// Any remainder bits (0-7) stay light, as assigned at construction.
			}
		}
	}

	if i != len(data)*8 {
		panic("qrcodegen: incorrect length")
	}
}

// drawFinderPattern draws a 9x9 finder pattern (including its separator)
// centered at (x, y), clipped to the symbol's bounds.
func (s *Symbol) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := max(abs(dx), abs(dy))
			xx := x + dx
			yy := y + dy
			if 0 <= xx && xx < s.size && 0 <= yy && yy < s.size {
				s.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawFormatBits stamps both copies of the 15-bit format information (error
// correction level and mask, BCH(15,5)-protected) for the given mask.
func (s *Symbol) drawFormatBits(mask Mask) {
	data := s.ecc.formatBits()<<3 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	bits := data<<10 | rem ^ 0x5412
	if bits>>15 != 0 {
		panic("qrcodegen: incorrect format bits calculation")
	}

	// First copy.
	for i := 0; i <= 5; i++ {
		s.setFunctionModule(8, i, getBitAsBool(bits, i))
	}
	s.setFunctionModule(8, 7, getBitAsBool(bits, 6))
	s.setFunctionModule(8, 8, getBitAsBool(bits, 7))
	s.setFunctionModule(7, 8, getBitAsBool(bits, 8))
	for i := 9; i < 15; i++ {
		s.setFunctionModule(14-i, 8, getBitAsBool(bits, i))
	}

	// Second copy.
	for i := 0; i < 8; i++ {
		s.setFunctionModule(s.size-1-i, 8, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		s.setFunctionModule(8, s.size-15+i, getBitAsBool(bits, i))
	}
	s.setFunctionModule(8, s.size-8, true) // The single dark module is always dark.
}

// drawFunctionPatterns draws every reserved structural pattern: timing,
// finder, alignment, placeholder format info (drawn again, precisely, once
// the mask is known — see handleConstructorMasking), and version info.
func (s *Symbol) drawFunctionPatterns() {
	for i := 0; i < s.size; i++ {
		s.setFunctionModule(6, i, i%2 == 0)
		s.setFunctionModule(i, 6, i%2 == 0)
	}

	s.drawFinderPattern(3, 3)
	s.drawFinderPattern(s.size-4, 3)
	s.drawFinderPattern(3, s.size-4)

	alignPatPos := alignmentPatternPositions[s.version]
	numAlign := len(alignPatPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if !(i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0) {
				s.drawAlignmentPattern(int(alignPatPos[i]), int(alignPatPos[j]))
			}
		}
	}

	s.drawFormatBits(0)
	s.drawVersion()
}

// drawVersion stamps both copies of the 18-bit version information
// (BCH(18,6)-protected), a no-op below version 7.
func (s *Symbol) drawVersion() {
	if s.version < 7 {
		return
	}

	rem := int(s.version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*0x1F25
	}
	bits := int(s.version)<<12 | rem
	if bits>>18 != 0 {
		panic("qrcodegen: incorrect version calculation")
	}

	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := s.size - 11 + i%3
		b := i / 3
		s.setFunctionModule(a, b, bit)
		s.setFunctionModule(b, a, bit)
	}
}

// finderPenaltyAddHistory pushes currentRunLength to the front of
// runHistory, dropping the oldest entry.
func (s *Symbol) finderPenaltyAddHistory(currentRunLength int, runHistory *[7]int) {
	if runHistory[0] == 0 {
		currentRunLength += s.size // Add the light border to the initial run.
	}

	copy(runHistory[1:], runHistory[0:])
	runHistory[0] = currentRunLength
}

// finderPenaltyCountPatterns counts how many finder-like patterns
// (1:1:3:1:1 run ratio, bordered by a run of at least 4 light modules) are
// present in the given run history.
func (s *Symbol) finderPenaltyCountPatterns(runHistory *[7]int) int {
	n := runHistory[1]
	if n > s.size*3 {
		panic("qrcodegen: bad run history")
	}
	core := n > 0 && runHistory[2] == n && runHistory[3] == n*3 && runHistory[4] == n && runHistory[5] == n
	return bToI(core && runHistory[0] >= n*4 && runHistory[6] >= n) + bToI(core && runHistory[6] >= n*4 && runHistory[0] >= n)
}

// finderPenaltyTerminateAndCount finalizes a row or column's run history at
// its light border and returns the finder-pattern penalty count.
func (s *Symbol) finderPenaltyTerminateAndCount(runColor Module, runLength int, runHistory *[7]int) int {
	if runColor == 1 { // Terminate a dark run.
		s.finderPenaltyAddHistory(runLength, runHistory)
		runLength = 0
	}
	runLength += s.size // Add the light border to the final run.
	s.finderPenaltyAddHistory(runLength, runHistory)
	return s.finderPenaltyCountPatterns(runHistory)
}

// getPenaltyScore sums the four penalty rules over this symbol's current
// modules: same-color runs of 5+ (with finder-like-pattern bonus), 2x2
// uniform blocks, finder-like patterns, and dark/light balance.
func (s *Symbol) getPenaltyScore() int {
	result := 0

	// Rule 1 + finder-like patterns, by row.
	for y := 0; y < s.size; y++ {
		runColor := Module(0)
		runX := 0
		var runHistory [7]int
		for x := 0; x < s.size; x++ {
			if s.modules[y][x] == runColor {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				s.finderPenaltyAddHistory(runX, &runHistory)
				if runColor == 0 {
					result += s.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = s.modules[y][x]
				runX = 1
			}
		}
		result += s.finderPenaltyTerminateAndCount(runColor, runX, &runHistory) * penaltyN3
	}

	// Rule 1 + finder-like patterns, by column.
	for x := 0; x < s.size; x++ {
		runColor := Module(0)
		runY := 0
		var runHistory [7]int
		for y := 0; y < s.size; y++ {
			if s.modules[y][x] == runColor {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				s.finderPenaltyAddHistory(runY, &runHistory)
				if runColor == 0 {
					result += s.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = s.modules[y][x]
				runY = 1
			}
		}
		result += s.finderPenaltyTerminateAndCount(runColor, runY, &runHistory) * penaltyN3
	}

	// Rule 2: 2x2 blocks of uniform color.
	for y := 0; y < s.size-1; y++ {
		for x := 0; x < s.size-1; x++ {
			color := s.modules[y][x]
			if color == s.modules[y][x+1] &&
				color == s.modules[y+1][x] &&
				color == s.modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	// Rule 4: dark/light balance.
	dark := 0
	for _, row := range s.modules {
		for _, color := range row {
			if color == 1 {
				dark++
			}
		}
	}
	total := s.size * s.size // size is always odd, so dark/total is never exactly 1/2.
	k := (abs(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// handleConstructorMasking applies the given mask (or selects the one with
// the lowest penalty score when mask == -1) and stamps the final format
// bits for the chosen mask.
func (s *Symbol) handleConstructorMasking(mask Mask) Mask {
	if mask == -1 {
		minPenalty := math.MaxInt32
		for i := Mask(0); i < 8; i++ {
			s.applyMask(i)
			s.drawFormatBits(i)
			penalty := s.getPenaltyScore()
			if penalty < minPenalty {
				mask = i
				minPenalty = penalty
			}
			s.applyMask(i) // Undo, since applyMask XORs.
		}
	}

	if mask < 0 || 7 < mask {
		panic("qrcodegen: illegal mask value")
	}

	s.applyMask(mask)
	s.drawFormatBits(mask) // Overwrite the scratch format bits from the search above.
	return mask
}

// setFunctionModule sets a reserved module's color and marks it as function,
// excluding it from later data placement and masking.
func (s *Symbol) setFunctionModule(x, y int, isDark bool) {
	s.modules[y][x] = bToModule(isDark)
	s.isFunction[y][x] = true
}
