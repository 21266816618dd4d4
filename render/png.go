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

// Package render turns an encoded symbol into a displayable image: PNG
// raster (with a configurable module scale) or SVG vector, both with a
// configurable quiet-zone border.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// symbol is the subset of qrcodegen.Symbol this package depends on. Kept
// as an unexported interface so render has no import-time dependency on
// the qrcodegen package itself; callers pass a *qrcodegen.Symbol, which
// satisfies this interface.
type symbol interface {
	Size() int
	GetModule(x, y int) bool
}

// PNGOption configures WritePNG.
type PNGOption func(*pngOptions)

type pngOptions struct {
	border int
	scale  int
	dark   color.Color
	light  color.Color
}

// WithBorder sets the quiet-zone width, in modules, drawn around the
// symbol. The default is 4, the minimum ISO/IEC 18004 recommends.
func WithBorder(border int) PNGOption {
	return func(o *pngOptions) { o.border = border }
}

// WithScale sets the number of pixels per module. The default is 8.
func WithScale(scale int) PNGOption {
	return func(o *pngOptions) { o.scale = scale }
}

// WithColors sets the dark and light module colors. The defaults are
// black and white.
func WithColors(dark, light color.Color) PNGOption {
	return func(o *pngOptions) { o.dark = dark; o.light = light }
}

// WritePNG writes sym to w as a PNG raster image, one filled square per
// module, scaled and bordered per the given options.
func WritePNG(w io.Writer, sym symbol, options ...PNGOption) error {
	o := pngOptions{border: 4, scale: 8, dark: color.Black, light: color.White}
	for _, opt := range options {
		opt(&o)
	}

	if o.border < 0 {
		return fmt.Errorf("render: border must be non-negative")
	}
	if o.scale < 1 {
		return fmt.Errorf("render: scale must be at least 1")
	}

	size := sym.Size()
	dim := (size + 2*o.border) * o.scale

	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{o.light, o.dark})
	for i := range img.Pix {
		img.Pix[i] = 0 // Index 0 is light.
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !sym.GetModule(x, y) {
				continue
			}
			startX := (x + o.border) * o.scale
			startY := (y + o.border) * o.scale
			for dy := 0; dy < o.scale; dy++ {
				for dx := 0; dx < o.scale; dx++ {
					img.SetColorIndex(startX+dx, startY+dy, 1)
				}
			}
		}
	}

	return png.Encode(w, img)
}
