package main

import (
	"github.com/gogpu/ocrset"
	"github.com/gogpu/ocrset/render"
	"github.com/gogpu/ocrset/text"
)

// explainLayout logs where RenderFile placed the text.
func explainLayout(s string, width, height int, fontPath string, size float64, anchor string, rtl bool) {
	source, err := text.NewFontSourceFromFile(fontPath)
	if err != nil {
		return
	}
	defer func() {
		_ = source.Close()
	}()

	opts := []text.FaceOption{}
	if rtl {
		opts = append(opts, text.WithDirection(text.DirectionRTL), text.WithLanguage("ar"))
	}
	p, err := render.NewRenderer().Layout(render.Request{
		Text:   s,
		Width:  width,
		Height: height,
		Face:   source.Face(size, opts...),
		Anchor: render.ParseAnchor(anchor),
	})
	if err != nil {
		return
	}
	ocrset.Component("render").Info("layout",
		"anchor", render.ParseAnchor(anchor),
		"glyphs", len(p.Run.Glyphs),
		"box", p.Box,
		"origin", p.Origin,
		"baseline", p.Dot,
		"descent", p.Descent)
}
