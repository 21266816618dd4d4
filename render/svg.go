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
	"fmt"
	"strings"
)

// SVGOption configures SVG.
type SVGOption func(*svgOptions)

type svgOptions struct {
	border     int
	docType    bool
	dark       string
	light      string
}

// WithSVGBorder sets the quiet-zone width, in modules. The default is 4.
func WithSVGBorder(border int) SVGOption {
	return func(o *svgOptions) { o.border = border }
}

// WithDocType prepends an XML declaration and SVG 1.1 doctype, needed when
// the output is written standalone rather than embedded in HTML.
func WithDocType(include bool) SVGOption {
	return func(o *svgOptions) { o.docType = include }
}

// WithSVGColors sets the dark and light fill colors, as CSS color strings.
// The defaults are "#000000" and "#FFFFFF".
func WithSVGColors(dark, light string) SVGOption {
	return func(o *svgOptions) { o.dark = dark; o.light = light }
}

// SVG renders sym as a scalable vector graphics document: one combined
// path of unit squares, one per dark module, over a light background
// rect.
func SVG(sym symbol, options ...SVGOption) (string, error) {
	o := svgOptions{border: 4, dark: "#000000", light: "#FFFFFF"}
	for _, opt := range options {
		opt(&o)
	}

	if o.border < 0 {
		return "", fmt.Errorf("render: border must be non-negative")
	}

	size := sym.Size()
	dim := size + o.border*2

	var sb strings.Builder
	if o.docType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", dim)
	fmt.Fprintf(&sb, "\t<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", o.light)
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !sym.GetModule(x, y) {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+o.border, y+o.border)
		}
	}
	fmt.Fprintf(&sb, "\" fill=\"%s\"/>\n", o.dark)
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
