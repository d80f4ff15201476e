/*
Package psxcard reads raw PlayStation memory card images and exposes the
save-slot metadata and icon graphics they contain.

A card image is a fixed 128 KiB blob of 16 blocks of 8 KiB each. Block 0
holds the card header and the directory table; blocks 1 through 15 each
hold one save slot's data, in one-to-one correspondence with directory
entries 1 through 15.
*/
package psxcard

import (
	"bytes"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/ravener/psx-card-reader/directory"
	"github.com/ravener/psx-card-reader/icon"
	"github.com/ravener/psx-card-reader/sjis"
)

const (
	// CardSize is the exact size in bytes of a raw memory card image.
	CardSize = 128 * 1024

	// BlockSize is the size of each of the 16 blocks on a card.
	BlockSize = 8 * 1024

	// NumBlocks is the number of blocks on a card, including the header
	// block.
	NumBlocks = CardSize / BlockSize

	titleOffset = 0x04
	titleBytes  = 64
)

var magic = []byte{'M', 'C'}

// Validate reports whether data is a well-formed card image: exactly
// 128 KiB long and starting with the "MC" magic.
func Validate(data []byte) bool {
	return len(data) == CardSize && bytes.Equal(data[0:2], magic)
}

// Card is a validated card image. The underlying buffer belongs to the
// caller and is never written to; every decoded value is a freshly
// allocated copy with no aliasing back into the buffer.
type Card struct {
	data []byte
}

// New wraps data as a Card after validating it.
func New(data []byte) (*Card, error) {
	if !Validate(data) {
		return nil, errors.New("psxcard: not a valid memory card image")
	}
	return &Card{data: data}, nil
}

// OpenFile reads and validates the card image at path.
func OpenFile(path string) (*Card, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading card image")
	}
	return New(data)
}

// Block returns the i'th 8 KiB block of the card. i must be in
// [0, NumBlocks). Block 0 is the header block; block n is the data block
// for slot n.
func (c *Card) Block(i int) []byte {
	return c.data[i*BlockSize : (i+1)*BlockSize]
}

// Directory decodes the 15-entry directory table from the header block.
// Entry index 0 describes slot 1 and so on.
func (c *Card) Directory() []directory.Entry {
	return directory.Parse(c.Block(0))
}

func checkSlot(slot int) error {
	if slot < 1 || slot > directory.NumEntries {
		return errors.Errorf("psxcard: slot %d out of range", slot)
	}
	return nil
}

// Title decodes the display title of the save in slot n (1-15). Garbage
// in the title field decodes lossily, it never fails.
func (c *Card) Title(slot int) (string, error) {
	if err := checkSlot(slot); err != nil {
		return "", err
	}
	block := c.Block(slot)
	return sjis.Decode(block[titleOffset : titleOffset+titleBytes]), nil
}

// Icon decodes the icon frames of the save in slot n (1-15).
func (c *Card) Icon(slot int) ([]icon.Frame, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	return icon.Decode(bytes.NewReader(c.Block(slot)))
}
