package runeio

import (
	"io"
	"strconv"
)

// WriteRune writes a rune to the given writer in utf8 form, using any
// byte/rune/string writing method that w provides.
func WriteRune(w io.Writer, r rune) (n int, err error) {
	type runeWriter interface {
		WriteRune(r rune) (n int, err error)
	}
	if r < 0x80 {
		if bw, ok := w.(io.ByteWriter); ok {
			return 1, bw.WriteByte(byte(r))
		}
		return w.Write([]byte{byte(r)})
	}
	if rw, ok := w.(runeWriter); ok {
		return rw.WriteRune(r)
	}
	if sw, ok := w.(io.StringWriter); ok {
		return sw.WriteString(string(r))
	}
	return w.Write([]byte(string(r)))
}

// WriteInt writes the base 10 form of n, with no padding or separator.
func WriteInt(w io.Writer, n int) (int, error) {
	var buf [20]byte
	return w.Write(strconv.AppendInt(buf[:0], int64(n), 10))
}
