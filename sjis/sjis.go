/*
Package sjis decodes the Shift-JIS text fields found on PlayStation memory
cards into UTF-8.

Save titles and file names are stored as fixed-size, null-padded fields and
are not guaranteed to hold valid Shift-JIS; foreign-region or corrupted
cards routinely contain stray bytes. Decoding is therefore lossy: invalid
sequences become U+FFFD rather than errors.
*/
package sjis

import (
	"bytes"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Decode converts b from Shift-JIS to UTF-8 after dropping any trailing
// null padding. It never fails; undecodable bytes come out as U+FFFD.
func Decode(b []byte) string {
	b = bytes.TrimRight(b, "\x00")

	out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), b)
	if err != nil {
		// The decoder substitutes rather than failing, so this is only
		// reachable through a transform-level error.
		return string(bytes.ToValidUTF8(out, []byte("�")))
	}
	return string(out)
}
