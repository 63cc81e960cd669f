package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that drops all writes.
var Discard WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher creates a new flushable writer: in memory buffers are
// wrapped with a noop Flush; writers that are already a WriteFlusher are
// returned as is; anything else, like an *os.File, gets a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == nil || w == io.Discard {
		return Discard
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// WriteFlushers combines any number of WriteFlusher-s into a single one that
// will write into and flush all of them; nils are skipped.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	switch all := appendWriteFlusher(nil, wfs...); len(all) {
	case 0:
		return Discard
	case 1:
		return all[0]
	default:
		return all
	}
}

type writeFlushers []WriteFlusher

func (wfs writeFlushers) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (wfs writeFlushers) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

func appendWriteFlusher(all writeFlushers, some ...WriteFlusher) writeFlushers {
	for _, one := range some {
		if many, ok := one.(writeFlushers); ok {
			all = append(all, many...)
		} else if one != nil && one != Discard {
			all = append(all, one)
		}
	}
	return all
}
