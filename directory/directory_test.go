package directory

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blockSize = 8 * 1024

func setFrame(block []byte, n int, state State, size uint32, pointer byte, name string) {
	off := n * FrameSize
	binary.LittleEndian.PutUint32(block[off:], uint32(state))
	block[off+4] = byte(size)
	block[off+5] = byte(size >> 8)
	block[off+6] = byte(size >> 16)
	block[off+8] = pointer
	copy(block[off+10:off+31], name)
}

func TestParseZeroBlock(t *testing.T) {
	entries := Parse(make([]byte, blockSize))

	require.Len(t, entries, NumEntries)
	for _, e := range entries {
		assert.Equal(t, State(0), e.State)
		assert.Nil(t, e.File)
		assert.False(t, e.Allocated())
	}
}

func TestParseAllocated(t *testing.T) {
	block := make([]byte, blockSize)
	setFrame(block, 1, StateFirst, 8192, 0xff, "BASLUS-00067DRAX00")

	entries := Parse(block)

	require.Len(t, entries, NumEntries)
	e := entries[0]
	assert.Equal(t, StateFirst, e.State)
	assert.True(t, e.Allocated())
	require.NotNil(t, e.File)
	assert.Equal(t, uint32(8192), e.File.Size)
	assert.Equal(t, byte(0xff), e.File.Pointer)
	assert.Equal(t, "BASLUS-00067DRAX00", e.File.Name)
}

func TestParseSizeIs24Bit(t *testing.T) {
	block := make([]byte, blockSize)
	setFrame(block, 1, StateFirst, 0xabcdef, 0, "X")
	// A stray byte after the 24-bit size must not leak into it.
	block[FrameSize+7] = 0xff

	entries := Parse(block)
	require.NotNil(t, entries[0].File)
	assert.Equal(t, uint32(0xabcdef), entries[0].File.Size)
}

func TestParseNameIsNullTrimmed(t *testing.T) {
	block := make([]byte, blockSize)
	setFrame(block, 1, StateFirst, 512, 0, "SHORT")

	entries := Parse(block)
	require.NotNil(t, entries[0].File)
	assert.Equal(t, "SHORT", entries[0].File.Name)
}

func TestParseOtherStates(t *testing.T) {
	states := []State{
		StateMiddle, StateLast,
		StateFree, StateDeletedFirst, StateDeletedMiddle, StateDeletedLast,
	}

	block := make([]byte, blockSize)
	for i, s := range states {
		// Fill in file fields too; they must not be decoded.
		setFrame(block, i+1, s, 8192, 0xff, "IGNORED")
	}

	entries := Parse(block)
	for i, s := range states {
		assert.Equal(t, s, entries[i].State)
		assert.Nil(t, entries[i].File)
		assert.False(t, entries[i].Allocated())
	}
}

func TestParseFrameOrder(t *testing.T) {
	block := make([]byte, blockSize)
	for n := 1; n <= NumEntries; n++ {
		setFrame(block, n, StateFirst, 8192, 0, fmt.Sprintf("SAVE%02d", n))
	}

	entries := Parse(block)
	require.Len(t, entries, NumEntries)
	for i, e := range entries {
		require.NotNil(t, e.File)
		assert.Equal(t, fmt.Sprintf("SAVE%02d", i+1), e.File.Name)
	}
}

func TestParseSkipsHeaderFrame(t *testing.T) {
	block := make([]byte, blockSize)
	// Frame 0 is the card header; an allocation state planted there must
	// not surface as an entry.
	setFrame(block, 0, StateFirst, 8192, 0, "HEADER")

	entries := Parse(block)
	assert.Equal(t, State(0), entries[0].State)
	assert.Nil(t, entries[0].File)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "first", StateFirst.String())
	assert.Equal(t, "free", StateFree.String())
	assert.Equal(t, "unrecognized", State(0xdead).String())
}
