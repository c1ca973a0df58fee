// Package text provides the font and shaping pipeline used to rasterize
// OCR samples.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: lightweight font instance at a specific size and direction
//   - Shaper: converts a string into a ShapedRun of positioned glyphs
//   - Measure: tight ink bounding box of a ShapedRun
//   - OutlineExtractor: glyph outlines fed to a rasterizer
//
// # Example usage
//
//	// Load font (do once, share across application)
//	source, err := text.NewFontSourceFromFile("NotoNaskhArabic-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	// Create a right-to-left face (lightweight)
//	face := source.Face(24, text.WithDirection(text.DirectionRTL), text.WithLanguage("ar"))
//
//	run := text.Shape("مرحبا", face)
//	box := text.Measure(run)
//
// # Right-to-left text
//
// Faces created with DirectionRTL are segmented with the Unicode
// Bidirectional Algorithm (golang.org/x/text/unicode/bidi) and every run is
// shaped by HarfBuzz (github.com/go-text/typesetting). Arabic letters take
// their contextual joining forms and the glyphs come out in visual order,
// ready to be drawn left to right.
//
// # Coordinates
//
// All geometry is in pixels with the Y axis pointing down. Glyph positions
// and bounding boxes are relative to the run origin on the baseline, so the
// ascender part of a box has negative Y.
package text
