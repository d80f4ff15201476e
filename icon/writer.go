package icon

import (
	"errors"
	"image/gif"
	"io"
)

// EncodeGIF writes frames to w as a looping animated GIF, holding each
// frame for delay hundredths of a second. Single-frame icons encode as a
// plain one-image GIF regardless of delay.
func EncodeGIF(w io.Writer, frames []Frame, delay int) error {
	if len(frames) == 0 {
		return errors.New("icon: no frames to encode")
	}

	g := &gif.GIF{}
	for _, f := range frames {
		g.Image = append(g.Image, f.Image())
		g.Delay = append(g.Delay, delay)
	}

	return gif.EncodeAll(w, g)
}
