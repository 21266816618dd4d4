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

package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// checkerboard is a minimal stand-in for *qrcodegen.Symbol, used to exercise
// render without importing the core package.
type checkerboard struct {
	size int
}

func (c checkerboard) Size() int { return c.size }

func (c checkerboard) GetModule(x, y int) bool {
	return (x+y)%2 == 0
}

func TestWritePNGProducesDecodableImage(t *testing.T) {
	sym := checkerboard{size: 5}
	var buf bytes.Buffer

	err := WritePNG(&buf, sym, WithScale(2), WithBorder(1))
	assert.Nil(t, err)

	img, err := png.Decode(&buf)
	assert.Nil(t, err)

	bounds := img.Bounds()
	wantDim := (5 + 2*1) * 2
	assert.Equal(t, wantDim, bounds.Dx())
	assert.Equal(t, wantDim, bounds.Dy())
}

func TestWritePNGRejectsBadOptions(t *testing.T) {
	sym := checkerboard{size: 5}
	var buf bytes.Buffer

	assert.NotNil(t, WritePNG(&buf, sym, WithBorder(-1)))
	assert.NotNil(t, WritePNG(&buf, sym, WithScale(0)))
}

func TestSVGContainsOnePathCommandPerDarkModule(t *testing.T) {
	sym := checkerboard{size: 3}
	doc, err := SVG(sym, WithSVGBorder(0))
	assert.Nil(t, err)

	dark := 0
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if sym.GetModule(x, y) {
				dark++
			}
		}
	}

	assert.Equal(t, dark, strings.Count(doc, "h1v1h-1z"))
	assert.True(t, strings.Contains(doc, "viewBox=\"0 0 3 3\""))
}

func TestSVGDocTypeOption(t *testing.T) {
	sym := checkerboard{size: 1}

	withDocType, err := SVG(sym, WithDocType(true))
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(withDocType, "<?xml"))

	withoutDocType, err := SVG(sym, WithDocType(false))
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(withoutDocType, "<svg"))
}

func TestSVGRejectsNegativeBorder(t *testing.T) {
	sym := checkerboard{size: 1}
	_, err := SVG(sym, WithSVGBorder(-1))
	assert.NotNil(t, err)
}
