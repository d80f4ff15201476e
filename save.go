package psxcard

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/ravener/psx-card-reader/icon"
)

// Save joins a directory entry with the decoded contents of its data
// block.
type Save struct {
	// Slot is the 1-based slot number, which is also the data block index.
	Slot int

	// Name is the save's file name, e.g. "BASLUS-00067DRAX00".
	Name string

	// Size of the save in bytes, as recorded in the directory.
	Size uint32

	// Blocks is the whole number of 8 KiB blocks covered by Size.
	Blocks int

	// Region derived from the file name prefix.
	Region Region

	// Title is the save's display title.
	Title string

	// Class describes the icon's animation frame count.
	Class icon.Class

	// Frames are the decoded icon frames, in animation order.
	Frames []icon.Frame
}

// Saves decodes every live save on the card: directory entries in the
// first-link state joined with the title and icon frames from their data
// blocks, in slot order. Free, deleted and continuation slots are skipped.
func (c *Card) Saves() ([]Save, error) {
	var saves []Save

	for i, entry := range c.Directory() {
		if !entry.Allocated() {
			continue
		}
		slot := i + 1

		title, err := c.Title(slot)
		if err != nil {
			return nil, err
		}

		class, err := icon.DecodeClass(bytes.NewReader(c.Block(slot)))
		if err != nil {
			return nil, errors.Wrapf(err, "classifying icon for slot %d", slot)
		}

		frames, err := c.Icon(slot)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding icon for slot %d", slot)
		}

		saves = append(saves, Save{
			Slot:   slot,
			Name:   entry.File.Name,
			Size:   entry.File.Size,
			Blocks: int(entry.File.Size) / BlockSize,
			Region: RegionOf(entry.File.Name),
			Title:  title,
			Class:  class,
			Frames: frames,
		})
	}

	return saves, nil
}
