// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"

	"github.com/gogpu/ocrset/text"
)

// RenderFile loads the font at fontPath and renders s with it.
//
// The anchor name is resolved with ParseAnchor, so unknown names draw at
// the top-left. rtl selects right-to-left shaping. Font loading failures
// are returned to the caller; no fallback font is substituted.
func RenderFile(s string, width, height int, fontPath string, size float64, anchor string, rtl bool) (*image.RGBA, error) {
	source, err := text.NewFontSourceFromFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	defer func() {
		_ = source.Close()
	}()

	faceOpts := []text.FaceOption{}
	if rtl {
		faceOpts = append(faceOpts, text.WithDirection(text.DirectionRTL), text.WithLanguage("ar"))
	}

	return NewRenderer().Render(Request{
		Text:   s,
		Width:  width,
		Height: height,
		Face:   source.Face(size, faceOpts...),
		Anchor: ParseAnchor(anchor),
	})
}
