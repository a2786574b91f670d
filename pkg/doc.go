// Package pkg provides the core libraries for babelgallery.
//
// # Overview
//
// Babelgallery hangs one deterministic artwork on every positive display
// number. The artwork for display N is the same on every machine and every
// run, so the gallery needs no storage. The pkg directory is organized as:
//
//  1. [seed] and [stream] - seed keys and the ChaCha20 integer stream
//  2. [artwork] and [label] - pixel and text synthesis
//  3. [gallery] - displays, rooms and the artifact value type
//  4. [pipeline] - orchestration (synthesize → render → write)
//  5. [render/sink], [io] - output formats and files
//  6. [server], [config], [observability] - the HTTP gallery and its plumbing
//
// # Architecture
//
//	display number
//	      ↓
//	 [seed] package (key units)
//	      ↓
//	 [stream] package (independent stream per projection)
//	      ↓
//	 [artwork] + [label] packages
//	      ↓
//	 PNG / JPEG preview / text / JSON
//
// # Quick Start
//
//	a, err := gallery.Generate(7)
//	if err != nil {
//	    return err
//	}
//	png, err := sink.RenderPNG(a.Artwork)
//	fmt.Println(a.Export())
//
// [seed]: https://pkg.go.dev/github.com/matzehuels/babelgallery/pkg/seed
// [stream]: https://pkg.go.dev/github.com/matzehuels/babelgallery/pkg/stream
// [artwork]: https://pkg.go.dev/github.com/matzehuels/babelgallery/pkg/artwork
// [label]: https://pkg.go.dev/github.com/matzehuels/babelgallery/pkg/label
// [gallery]: https://pkg.go.dev/github.com/matzehuels/babelgallery/pkg/gallery
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/babelgallery/pkg/pipeline
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/babelgallery/pkg/render/sink
// [io]: https://pkg.go.dev/github.com/matzehuels/babelgallery/pkg/io
// [server]: https://pkg.go.dev/github.com/matzehuels/babelgallery/pkg/server
// [config]: https://pkg.go.dev/github.com/matzehuels/babelgallery/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/babelgallery/pkg/observability
package pkg
