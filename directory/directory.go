/*
Package directory decodes the directory table stored in the header block of
a PlayStation memory card image.

The header block holds 64 frames of 128 bytes each. Frame 0 is the card
header; frames 1 through 15 are directory entries, one per save-data block.
Each entry records the block allocation state and, for the first or only
block of a file, the file size, a chain pointer and a null-padded Shift-JIS
file name.
*/
package directory

import (
	"encoding/binary"

	"github.com/ravener/psx-card-reader/sjis"
)

const (
	// FrameSize is the size in bytes of a single directory frame.
	FrameSize = 128

	// NumEntries is the number of entries in the directory table, which is
	// also the number of save-data blocks on a card.
	NumEntries = 15
)

// State is the 32-bit block allocation state stored at the start of each
// directory frame. Anything outside the listed values is carried through
// as an opaque, unrecognized state.
type State uint32

const (
	StateFirst         State = 0x51 // in use, first or only block of a file
	StateMiddle        State = 0x52 // in use, middle block
	StateLast          State = 0x53 // in use, last block
	StateFree          State = 0xa0 // free, freshly formatted
	StateDeletedFirst  State = 0xa1 // free, deleted first or only block
	StateDeletedMiddle State = 0xa2 // free, deleted middle block
	StateDeletedLast   State = 0xa3 // free, deleted last block
)

func (s State) String() string {
	switch s {
	case StateFirst:
		return "first"
	case StateMiddle:
		return "middle"
	case StateLast:
		return "last"
	case StateFree:
		return "free"
	case StateDeletedFirst:
		return "deleted first"
	case StateDeletedMiddle:
		return "deleted middle"
	case StateDeletedLast:
		return "deleted last"
	}
	return "unrecognized"
}

// File is the metadata present only in the first frame of a file.
type File struct {
	// Size of the file in bytes, stored on card as a 24-bit value.
	Size uint32

	// Pointer is the raw chain pointer byte. It is carried through as
	// informational metadata only and is never used to walk block chains.
	Pointer byte

	// Name is the decoded file name, at most 21 bytes on card.
	Name string
}

// Entry is one slot of the directory table. File is non-nil only when
// State is StateFirst; for any other state no file metadata exists on the
// card and none is synthesized.
type Entry struct {
	State State
	File  *File
}

// Allocated reports whether the entry is the first block of a live file
// and therefore carries file metadata.
func (e Entry) Allocated() bool {
	return e.State == StateFirst
}

// Parse decodes the 15 directory entries from the header block, in frame
// order. Entry index 0 corresponds to data block 1 and so on. The block
// must hold at least the 16 directory frames (2048 bytes).
//
// Parse never fails: free slots, deleted slots and outright garbage all
// produce entries, distinguished only by their state.
func Parse(block []byte) []Entry {
	entries := make([]Entry, 0, NumEntries)

	// Frame 0 is the card header, not a directory entry.
	for off := FrameSize; off < (NumEntries+1)*FrameSize; off += FrameSize {
		frame := block[off : off+FrameSize]

		entry := Entry{State: State(binary.LittleEndian.Uint32(frame[0:4]))}
		if entry.State == StateFirst {
			entry.File = &File{
				Size:    uint32(frame[4]) | uint32(frame[5])<<8 | uint32(frame[6])<<16,
				Pointer: frame[8],
				Name:    sjis.Decode(frame[10:31]),
			}
		}

		entries = append(entries, entry)
	}

	return entries
}
