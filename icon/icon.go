/*
Package icon implements a decoder for the save icons stored on PlayStation
memory cards.

Each save's data block starts with a small header: an icon type byte at
offset 0x02 selecting one to three animation frames, and a 16 color palette
of packed 16-bit little-endian values. The frames follow at offset 0x80 as
128-byte bitmaps, one 4-bit palette index per pixel with two pixels packed
per byte, low nibble first.
*/
package icon

const (
	pixelX           = 16
	pixelY           = 16
	numPixels        = pixelX * pixelY
	bitmapBytes      = numPixels >> 1
	colorsPerPalette = 16
	paletteBytes     = colorsPerPalette * 2
	maxFrames        = 3

	typeOffset    = 0x02
	paletteOffset = 0x20
	bitmapOffset  = 0x80
)

// Class classifies an icon by its animation frame count.
type Class int

const (
	// Static icons have a single frame.
	Static Class = iota + 1
	// TwoFrame icons alternate between two frames.
	TwoFrame
	// ThreeFrame icons cycle through three frames.
	ThreeFrame
)

// Classify derives the icon class from the raw icon type byte. Values
// above the three-frame code are clamped to ThreeFrame rather than
// rejected, so saves with out-of-range type bytes still display.
func Classify(b byte) Class {
	switch {
	case b < 0x12:
		return Static
	case b == 0x12:
		return TwoFrame
	default:
		return ThreeFrame
	}
}

// Frames returns the number of animation frames for the class.
func (c Class) Frames() int {
	switch c {
	case TwoFrame:
		return 2
	case ThreeFrame:
		return maxFrames
	}
	return 1
}

// Delay returns how long each frame is held, in hundredths of a second.
// The pacing matches the console's own card browser: a 25 tick per second
// clock, holding two-frame icons for 16 ticks and three-frame icons for 11.
// Static icons have no animation and report zero.
func (c Class) Delay() int {
	switch c {
	case TwoFrame:
		return 16 * 100 / 25
	case ThreeFrame:
		return 11 * 100 / 25
	}
	return 0
}

func (c Class) String() string {
	switch c {
	case Static:
		return "static"
	case TwoFrame:
		return "two frame"
	case ThreeFrame:
		return "three frame"
	}
	return "unknown"
}
