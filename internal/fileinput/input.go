package fileinput

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jcorbin/magistack/internal/runeio"
)

// PathPrompt is used to ask for a source path when none was given.
const PathPrompt = "Please enter a path:\n> "

// ErrInvalidText indicates that source content was not valid utf8 text.
var ErrInvalidText = errors.New("invalid utf8 text")

// Source is program text along with the name that it was loaded from.
type Source struct {
	Name string
	Text string
}

func (src Source) String() string { return fmt.Sprintf("%v (%v bytes)", src.Name, len(src.Text)) }

// Provider resolves program Source.
type Provider interface {
	Source() (Source, error)
}

// File provides Source by reading the named file in its entirety.
type File string

// Source reads the file, returning an error if it cannot be read or does not
// contain utf8 text.
func (name File) Source() (Source, error) {
	b, err := os.ReadFile(string(name))
	if err != nil {
		return Source{}, err
	}
	if !utf8.Valid(b) {
		return Source{}, fmt.Errorf("%v: %w", name, ErrInvalidText)
	}
	return Source{Name: string(name), Text: string(b)}, nil
}

// Asker asks a question, returning the answer line.
type Asker func(prompt string) (string, error)

// Prompt provides Source by asking for a file path, and then reading it.
type Prompt struct {
	Ask Asker
}

// Source asks for a path with PathPrompt, then reads that File.
func (p Prompt) Source() (Source, error) {
	path, err := p.Ask(PathPrompt)
	if err == io.EOF {
		return Source{}, fmt.Errorf("no path given: %w", io.ErrUnexpectedEOF)
	} else if err != nil {
		return Source{}, err
	}
	return File(path).Source()
}

// LineAsker returns an Asker that writes prompts to w, and then reads one
// answer line from lr; lr may be shared with any later line reading.
func LineAsker(w io.Writer, lr runeio.LineReader) Asker {
	return func(prompt string) (string, error) {
		if _, err := io.WriteString(w, prompt); err != nil {
			return "", err
		}
		return lr.ReadLine()
	}
}

// splitPrompt separates any leading full lines from the final prompt line,
// since line editing can only redraw the final line.
func splitPrompt(prompt string) (head, tail string) {
	if i := strings.LastIndexByte(prompt, '\n'); i >= 0 {
		return prompt[:i+1], prompt[i+1:]
	}
	return "", prompt
}
