// Package sink encodes gallery artifacts into output formats.
//
// # Overview
//
// A "sink" turns an in-memory artifact into bytes a collaborator can save
// or serve. The generator itself never touches these; it only produces
// rasters and text.
//
//   - PNG: the full-size artwork, lossless ([RenderPNG])
//   - Preview: a downscaled JPEG for listings ([RenderPreview])
//   - Text: the plain-text label download ([RenderText])
//   - JSON: the label plus room and ratio ([RenderJSON])
//
// # Usage
//
//	a, _ := gallery.Generate(1)
//	png, err := sink.RenderPNG(a.Artwork, sink.WithCompression(png.BestSpeed))
//	preview, err := sink.RenderPreview(a.Artwork, sink.WithPreviewWidth(320))
//	txt := sink.RenderText(a.Summary())
//
// Encoding failures are reported as RENDER_SURFACE errors: the caller shows
// "no image" for that display and does not retry.
package sink
