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

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qr-symbol/qrcodegen"
	"github.com/qr-symbol/qrcodegen/render"
)

var (
	flagECC    string
	flagFormat string
	flagOutput string
	flagScale  int
	flagBorder int
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text into a QR code and write it as PNG, SVG, or a terminal grid",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&flagECC, "ecc", "e", "low", "error correction level: low, medium, quartile, high")
	encodeCmd.Flags().StringVarP(&flagFormat, "format", "f", "terminal", "output format: png, svg, terminal")
	encodeCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file path (required for png; svg goes to stdout when empty)")
	encodeCmd.Flags().IntVar(&flagScale, "scale", 8, "pixels per module (png only)")
	encodeCmd.Flags().IntVar(&flagBorder, "border", 4, "quiet-zone width, in modules")
}

func parseECC(s string) (qrcodegen.ECC, error) {
	switch strings.ToLower(s) {
	case "low", "l":
		return qrcodegen.Low, nil
	case "medium", "m":
		return qrcodegen.Medium, nil
	case "quartile", "q":
		return qrcodegen.Quartile, nil
	case "high", "h":
		return qrcodegen.High, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q", s)
	}
}

func runEncode(cmd *cobra.Command, args []string) error {
	ecc, err := parseECC(flagECC)
	if err != nil {
		return err
	}

	sym, err := qrcodegen.EncodeText(args[0], ecc)
	if err != nil {
		return fmt.Errorf("encoding text: %w", err)
	}
	slog.Info("encoded symbol", "version", sym.Version(), "size", sym.Size(), "mask", sym.Mask())

	switch strings.ToLower(flagFormat) {
	case "terminal":
		fmt.Print(sym.String())
		return nil
	case "svg":
		doc, err := render.SVG(sym, render.WithSVGBorder(flagBorder), render.WithDocType(true))
		if err != nil {
			return fmt.Errorf("rendering svg: %w", err)
		}
		return writeOutput(flagOutput, []byte(doc))
	case "png":
		if flagOutput == "" {
			return fmt.Errorf("--output is required for png format")
		}
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		return render.WritePNG(f, sym, render.WithScale(flagScale), render.WithBorder(flagBorder))
	default:
		return fmt.Errorf("unknown format %q", flagFormat)
	}
}

// writeOutput writes data to path, or to stdout if path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
