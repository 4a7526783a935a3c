package gif

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/deepteams/gif/internal/container"
)

func init() {
	image.RegisterFormat("gif", "GIF8", Decode, DecodeConfig)
}

// DisposalMethod says what a viewer should do to the canvas before
// rendering the next frame of an animation.
type DisposalMethod int

const (
	DisposalNone DisposalMethod = iota
	DisposalDoNotDispose
	DisposalRestoreBackground
	DisposalRestorePrevious
)

func (d DisposalMethod) String() string {
	switch d {
	case DisposalNone:
		return "none"
	case DisposalDoNotDispose:
		return "do not dispose"
	case DisposalRestoreBackground:
		return "restore background"
	case DisposalRestorePrevious:
		return "restore previous"
	default:
		return "unknown"
	}
}

func disposalFromContainer(d container.DisposalMethod) DisposalMethod {
	switch d {
	case container.DisposalDoNotDispose:
		return DisposalDoNotDispose
	case container.DisposalRestoreBackground:
		return DisposalRestoreBackground
	case container.DisposalRestorePrevious:
		return DisposalRestorePrevious
	default:
		return DisposalNone
	}
}

// ColorTable is a palette of up to 256 colors, in the order GIF palette
// indices reference them.
type ColorTable struct {
	Palette color.Palette
}

// NumColors returns the number of entries in the table.
func (c *ColorTable) NumColors() int { return len(c.Palette) }

func colorTableFromContainer(ct *container.ColorTable) *ColorTable {
	if ct == nil {
		return nil
	}
	pal := make(color.Palette, len(ct.Entries))
	for i, e := range ct.Entries {
		pal[i] = color.RGBA{R: e.R, G: e.G, B: e.B, A: 0xFF}
	}
	return &ColorTable{Palette: pal}
}

// FrameControl is the Graphic Control Extension metadata attached to an
// image: its animation timing, transparency, and disposal instruction.
type FrameControl struct {
	Disposal         DisposalMethod
	UserInput        bool
	HasTransparency  bool
	TransparentIndex byte
	DelayCentisecs   uint16
}

func frameControlFromContainer(fc *container.FrameControl) *FrameControl {
	if fc == nil {
		return nil
	}
	return &FrameControl{
		Disposal:         disposalFromContainer(fc.Disposal),
		UserInput:        fc.UserInput,
		HasTransparency:  fc.HasTransparency,
		TransparentIndex: fc.TransparentIndex,
		DelayCentisecs:   fc.DelayCentisecs,
	}
}

// Image is one decoded GIF frame: its position and size within the
// logical screen, its optional local color table, the Graphic Control
// Extension that preceded it (nil if none did), and its fully decoded,
// de-interlaced pixel indices in raster order.
type Image struct {
	Left, Top       int
	Width, Height   int
	Interlaced      bool
	LocalColorTable *ColorTable
	Control         *FrameControl
	Indices         []byte
}

// Palette resolves the color table in effect for im: its own local table
// if it has one, else g's global table. A post-Parse GIF always has a
// non-nil answer here (invariant 4); g is passed explicitly rather than
// held as a back-reference, since an Image's lifetime is not modeled as
// outliving its parent GIF.
func (im *Image) Palette(g *GIF) *ColorTable {
	if im.LocalColorTable != nil {
		return im.LocalColorTable
	}
	return g.GlobalColorTable
}

// ColorModel returns a color.Palette suitable for building an
// *image.Paletted from im.Indices.
func (im *Image) ColorModel(g *GIF) color.Palette {
	return im.Palette(g).Palette
}

// GIF is the fully decoded result of [Parse]: the logical screen
// description, the optional global palette, and the ordered sequence of
// frames encountered in the stream. Non-image extensions (Comment,
// Plain Text, Application) are skipped during parsing per §4.5 and are
// not surfaced here.
type GIF struct {
	Version          string // "87a" or "89a"
	Width, Height    int
	GlobalColorTable *ColorTable
	BackgroundIndex  byte
	PixelAspectRatio byte

	Images []Image
}

// Parse decodes a complete GIF byte stream into a [GIF]. On any error the
// returned *GIF is nil; no partial result is ever returned.
func Parse(data []byte) (*GIF, error) {
	dec := acquireLZWDecoder()
	defer releaseLZWDecoder(dec)

	doc, err := container.Parse(data, dec)
	if err != nil {
		return nil, classify(err)
	}
	return fromContainer(doc), nil
}

func fromContainer(doc *container.Document) *GIF {
	g := &GIF{
		Version:          doc.Version,
		Width:            doc.Width,
		Height:           doc.Height,
		GlobalColorTable: colorTableFromContainer(doc.GlobalColorTable),
		BackgroundIndex:  doc.BackgroundIndex,
		PixelAspectRatio: doc.PixelAspectRatio,
	}

	g.Images = make([]Image, len(doc.Images))
	for i, im := range doc.Images {
		g.Images[i] = Image{
			Left:            im.Left,
			Top:             im.Top,
			Width:           im.Width,
			Height:          im.Height,
			Interlaced:      im.Interlaced,
			LocalColorTable: colorTableFromContainer(im.LocalColorTable),
			Control:         frameControlFromContainer(im.Control),
			Indices:         im.Pixels,
		}
	}

	return g
}

// Free releases g's backing storage back to nil. It corresponds to the
// explicit release operation a manually-memory-managed decoder would
// expose; Go's garbage collector reclaims the memory regardless, but
// calling Free promptly drops the large slices (pixel indices, palettes)
// a long-lived holder of g might otherwise pin. Idempotent: calling Free
// on an already-freed or nil *GIF is a no-op.
func (g *GIF) Free() {
	if g == nil {
		return
	}
	g.GlobalColorTable = nil
	g.Images = nil
}

// readAll reads all data from r. If r implements Len() int (e.g.
// *bytes.Reader), a single exact-sized allocation is used instead of the
// repeated doublings io.ReadAll performs.
func readAll(r io.Reader) ([]byte, error) {
	if lr, ok := r.(interface{ Len() int }); ok {
		if n := lr.Len(); n > 0 {
			data := make([]byte, n)
			_, err := io.ReadFull(r, data)
			return data, err
		}
	}
	return io.ReadAll(r)
}

// Decode reads a GIF image from r and returns its first frame as an
// *image.Paletted. Use [Parse] directly to access every frame of an
// animation and their graphic control metadata.
func Decode(r io.Reader) (image.Image, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("gif: reading data: %w", err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if len(g.Images) == 0 {
		return nil, &Error{Kind: KindBadData, Err: fmt.Errorf("gif: no image frames found")}
	}
	return toPaletted(g, &g.Images[0]), nil
}

// DecodeConfig returns the color model and logical screen dimensions of a
// GIF image.
//
// It runs a full [Parse], so every frame's pixel data is LZW-decoded even
// though only the header fields and a palette are returned.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := readAll(r)
	if err != nil {
		return image.Config{}, fmt.Errorf("gif: reading data: %w", err)
	}
	g, err := Parse(data)
	if err != nil {
		return image.Config{}, err
	}
	cm := color.Palette(nil)
	if g.GlobalColorTable != nil {
		cm = g.GlobalColorTable.Palette
	} else if len(g.Images) > 0 {
		cm = g.Images[0].ColorModel(g)
	}
	return image.Config{
		ColorModel: cm,
		Width:      g.Width,
		Height:     g.Height,
	}, nil
}

func toPaletted(g *GIF, im *Image) *image.Paletted {
	pal := im.ColorModel(g)
	p := image.NewPaletted(image.Rect(im.Left, im.Top, im.Left+im.Width, im.Top+im.Height), pal)
	copy(p.Pix, im.Indices)
	return p
}
