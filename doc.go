// Package gif implements a decoder for the GIF image format, both the
// 87a and 89a variants.
//
// It turns an in-memory byte buffer into a fully decoded GIF: a logical
// screen description, an optional global palette, and an ordered sequence
// of frames with pixel indices already de-interlaced and associated with
// their graphic control metadata (delay, disposal, transparency).
//
// The package supports:
//   - Static and animated GIFs (multiple image blocks)
//   - Global and local color tables
//   - Interlaced images
//   - Graphic Control Extensions (delay, disposal, transparency)
//   - Comment, Plain Text, and Application extensions (skipped, not parsed)
//
// It does not encode GIF, apply disposal methods between frames, or
// render frames to a surface; those are callers' responsibility. This
// package also registers itself with the standard library's image
// package so that image.Decode can transparently read GIF files.
//
// Basic usage:
//
//	g, err := gif.Parse(data)
//	if err != nil {
//		// err is a *gif.Error; err.Kind reports the failure category.
//	}
//	for _, im := range g.Images {
//		palette := im.Palette(g)
//		_ = palette
//	}
package gif
