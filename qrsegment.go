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

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Segment is a single contiguous run of payload bits tagged by mode. A QR
// code may be assembled from more than one segment (numeric, alphanumeric,
// byte, kanji/GB2312, or ECI).
//
// Segment is immutable once constructed: Data is a private copy owned by
// the segment, never aliased back to a caller's buffer.
type Segment struct {
	Mode          // The mode of this segment.
	NumChars int  // The length of this segment's unencoded data (0 for ECI).
	Data  []byte  // The encoded payload bits, one bit per byte (0 or 1).
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// IsNumeric reports whether text can be encoded as a numeric segment.
func IsNumeric(text string) bool {
	return numericRegexp.MatchString(text)
}

// IsAlphanumeric reports whether text can be encoded as an alphanumeric
// segment.
func IsAlphanumeric(text string) bool {
	return alphanumericRegexp.MatchString(text)
}

// getTotalBits sums 4 + charCountBits(mode, version) + len(payload) across
// segs. Returns -1 if any segment's NumChars overflows its count field, or
// if the running sum would exceed math.MaxInt32.
func getTotalBits(segs []*Segment, version Version) int {
	result := int64(0)
	for _, seg := range segs {
		ccBits := seg.Mode.numCharCountBits(version)
		if seg.NumChars >= 1<<ccBits {
			return -1 // The segment's length does not fit the field's bit width.
		}

		result += int64(4 + int(ccBits) + len(seg.Data))
		if result > math.MaxInt32 {
			return -1 // The sum will overflow an integer type.
		}
	}

	return int(result)
}

// MakeAlphanumeric creates an alphanumeric segment from text, which must
// match [A-Z0-9 $%*+./:-]*. Panics if text contains any other character.
func MakeAlphanumeric(text string) *Segment {
	if !alphanumericRegexp.MatchString(text) {
		panic("qrcodegen: string contains non-alphanumeric characters")
	}

	bb := make(bitBuffer, 0, len(text)*5+(len(text)+1)/2)
	var i int
	for i = 0; i <= len(text)-2; i += 2 { // Process groups of 2 characters.
		temp := strings.Index(alphanumericCharset, text[i:i+1]) * 45
		temp += strings.Index(alphanumericCharset, text[i+1:i+2])
		bb.appendBits(temp, 11)
	}

	if i < len(text) { // 1 character remaining.
		bb.appendBits(strings.Index(alphanumericCharset, text[i:i+1]), 6)
	}

	return &Segment{
		Mode:     Alphanumeric,
		NumChars: len(text),
		Data:     bb,
	}
}

// MakeBytes encodes a byte slice into a Byte-mode segment, one 8-bit group
// per input byte.
func MakeBytes(data []byte) *Segment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}

	return &Segment{
		Mode:     Byte,
		NumChars: len(data),
		Data:     bb,
	}
}

// MakeECI creates a segment carrying an Extended Channel Interpretation
// assignment number. assignValue must be in [0, 1_000_000).
func MakeECI(assignValue int) (*Segment, error) {
	bb := make(bitBuffer, 0, 24)
	switch {
	case assignValue < 0:
		return nil, fmt.Errorf("%w: ECI assignment value is negative", ErrInvalidArgument)
	case assignValue < 1<<7:
		bb.appendBits(assignValue, 8) // 0 prefix (1 bit) + 7 bits.
	case assignValue < 1<<14:
		bb.appendBits(2, 2) // "10" prefix + 14 bits.
		bb.appendBits(assignValue, 14)
	case assignValue < 1_000_000:
		bb.appendBits(6, 3) // "110" prefix + 21 bits.
		bb.appendBits(assignValue, 21)
	default:
		return nil, fmt.Errorf("%w: ECI assignment value %d out of range", ErrInvalidArgument, assignValue)
	}

	return &Segment{
		Mode:     ECI,
		NumChars: 0,
		Data:     bb,
	}, nil
}

// MakeNumeric creates a numeric segment from digits, which must match
// [0-9]*. Panics if digits contains any other character.
func MakeNumeric(digits string) *Segment {
	if !numericRegexp.MatchString(digits) {
		panic("qrcodegen: string contains non-numeric characters")
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		d, _ := strconv.Atoi(digits[i : i+n]) // Safe: numericRegexp already confirmed digits-only.
		bb.appendBits(d, int8(n*3+1))
		i += n
	}

	return &Segment{
		Mode:     Numeric,
		NumChars: len(digits),
		Data:     bb,
	}
}

// MakeSegments encodes text into a single segment, choosing the most
// compact mode that fits: numeric, then alphanumeric, then byte (UTF-8).
// Returns an empty slice for empty text. There is no mid-string mode
// switching at this level; callers that want a mixed-mode segment list must
// assemble one by hand and call EncodeSegments directly.
func MakeSegments(text string) []*Segment {
	if len(text) == 0 {
		return []*Segment{}
	}

	if numericRegexp.MatchString(text) {
		return []*Segment{MakeNumeric(text)}
	}

	if alphanumericRegexp.MatchString(text) {
		return []*Segment{MakeAlphanumeric(text)}
	}

	return []*Segment{MakeBytes([]byte(text))}
}
