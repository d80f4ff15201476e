package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		b    byte
		want Class
	}{
		{0x00, Static},
		{0x11, Static},
		{0x12, TwoFrame},
		{0x13, ThreeFrame},
		// Out-of-range values clamp to three frames.
		{0x14, ThreeFrame},
		{0xff, ThreeFrame},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.b), "icon type 0x%02x", tt.b)
	}
}

func TestClassFrames(t *testing.T) {
	assert.Equal(t, 1, Static.Frames())
	assert.Equal(t, 2, TwoFrame.Frames())
	assert.Equal(t, 3, ThreeFrame.Frames())
}

func TestClassDelay(t *testing.T) {
	assert.Equal(t, 0, Static.Delay())
	assert.Equal(t, 64, TwoFrame.Delay())
	assert.Equal(t, 44, ThreeFrame.Delay())
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "static", Static.String())
	assert.Equal(t, "three frame", ThreeFrame.String())
	assert.Equal(t, "unknown", Class(0).String())
}
