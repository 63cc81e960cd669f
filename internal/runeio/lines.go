package runeio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineReader provides blocking, line at a time, input.
type LineReader interface {
	// ReadLine returns the next line without its line terminator, or an
	// error; io.EOF is only returned when no further line text remains.
	ReadLine() (string, error)
}

// Location names a line within a named input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Lines implements LineReader around any io.Reader, tracking the Location of
// the last line read.
type Lines struct {
	Location
	br *bufio.Reader
}

// NewLines returns a Lines reader around r; if r is already a *bufio.Reader,
// it is used directly rather than being double buffered.
// If r implements Name() string, it is used as the location name.
func NewLines(r io.Reader) *Lines {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Lines{
		Location: Location{Name: nameOf(r)},
		br:       br,
	}
}

// ReadLine reads through the next line feed, stripping it along with any
// carriage return before it. A final line lacking a line feed is still
// returned; io.EOF only follows once input is fully consumed.
func (lines *Lines) ReadLine() (string, error) {
	line, err := lines.br.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	lines.Line++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
