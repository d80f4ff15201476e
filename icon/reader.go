package icon

import (
	"errors"
	"image"
	"image/color"
	"io"
	"io/ioutil"
)

var errNotEnough = errors.New("icon: not enough data for a save block")

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func upperNibble(b byte) byte {
	return b & 0xf0
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

// Frame is one decoded 16 by 16 icon frame.
type Frame struct {
	// Pix holds the frame as packed RGB, 3 bytes per pixel, row-major.
	Pix []byte

	palette color.Palette
	index   []byte
}

// Image returns the frame as a paletted image suitable for the stdlib
// image encoders.
func (f Frame) Image() *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, pixelX, pixelY), f.palette)
	copy(m.Pix, f.index)
	return m
}

type decoder struct {
	r io.Reader

	class   Class
	palette color.Palette
	frames  []Frame

	// Enough to hold one bitmap's worth of packed pixels.
	tmp [bitmapBytes]byte
}

func (d *decoder) skip(n int64) error {
	_, err := io.CopyN(ioutil.Discard, d.r, n)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func (d *decoder) readClass() error {
	if err := d.skip(typeOffset); err != nil {
		return err
	}
	var b [1]byte
	if err := readFull(d.r, b[:]); err != nil {
		return err
	}
	d.class = Classify(b[0])
	return nil
}

func (d *decoder) readPalette() error {
	if err := d.skip(paletteOffset - typeOffset - 1); err != nil {
		return err
	}

	var tmp [paletteBytes]byte
	if err := readFull(d.r, tmp[:]); err != nil {
		return err
	}

	d.palette = make(color.Palette, colorsPerPalette)
	for i := range d.palette {
		lo, hi := tmp[i<<1], tmp[i<<1|1]

		// Color is packed little-endian as MBBBBBGGGGGRRRRR; the top bit
		// is ignored.
		d.palette[i] = color.RGBA{
			lo & 0x1f << 3,
			hi&0x03<<6 | lo&0xe0>>2,
			hi & 0x7c << 1,
			0xff,
		}
	}
	return nil
}

func (d *decoder) readBitmap() (Frame, error) {
	if err := readFull(d.r, d.tmp[:]); err != nil {
		return Frame{}, err
	}

	f := Frame{
		Pix:     make([]byte, numPixels*3),
		index:   make([]byte, numPixels),
		palette: d.palette,
	}

	for i, b := range d.tmp {
		f.index[i<<1] = lowerNibble(b)
		f.index[i<<1|1] = upperNibble(b) >> 4
	}

	for i, p := range f.index {
		r, g, b, _ := d.palette[p].RGBA()
		f.Pix[i*3+0] = byte(r >> 8)
		f.Pix[i*3+1] = byte(g >> 8)
		f.Pix[i*3+2] = byte(b >> 8)
	}

	return f, nil
}

func (d *decoder) decode(r io.Reader, classOnly bool) error {
	d.r = r

	if err := d.readClass(); err != nil {
		return err
	}
	if classOnly {
		return nil
	}

	if err := d.readPalette(); err != nil {
		return err
	}

	if err := d.skip(bitmapOffset - paletteOffset - paletteBytes); err != nil {
		return err
	}

	for i := 0; i < d.class.Frames(); i++ {
		f, err := d.readBitmap()
		if err != nil {
			return err
		}
		d.frames = append(d.frames, f)
	}

	return nil
}

// Decode reads a save's data block from r and returns its icon frames in
// animation order. A correctly sized block always decodes; garbage content
// yields garbage colors, not an error.
func Decode(r io.Reader) ([]Frame, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, errNotEnough
		}
		return nil, err
	}
	return d.frames, nil
}

// DecodeClass reads only far enough into a data block to classify its icon
// without decoding the palette or any pixels.
func DecodeClass(r io.Reader) (Class, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		if err == io.ErrUnexpectedEOF {
			return 0, errNotEnough
		}
		return 0, err
	}
	return d.class, nil
}
