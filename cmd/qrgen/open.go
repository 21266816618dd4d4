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

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/qr-symbol/qrcodegen"
	"github.com/qr-symbol/qrcodegen/render"
)

var openECC string

var openCmd = &cobra.Command{
	Use:   "open [text]",
	Short: "Encode text into a QR code and open the rendered SVG in a browser",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpen,
}

func init() {
	openCmd.Flags().StringVarP(&openECC, "ecc", "e", "low", "error correction level: low, medium, quartile, high")
}

func runOpen(cmd *cobra.Command, args []string) error {
	ecc, err := parseECC(openECC)
	if err != nil {
		return err
	}

	sym, err := qrcodegen.EncodeText(args[0], ecc)
	if err != nil {
		return fmt.Errorf("encoding text: %w", err)
	}

	doc, err := render.SVG(sym, render.WithDocType(true))
	if err != nil {
		return fmt.Errorf("rendering svg: %w", err)
	}

	f, err := os.CreateTemp("", "qrgen-*.svg")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(doc); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	slog.Info("opening symbol in browser", "version", sym.Version(), "path", f.Name())
	return browser.OpenFile(f.Name())
}
