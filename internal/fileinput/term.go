package fileinput

import (
	"io"
	"os"

	"github.com/danswartzendruber/liner"
	"golang.org/x/term"
)

// IsTerminal returns true if f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TermAsker returns an Asker that provides line editing on the controlling
// terminal; any leading lines of the prompt are written to w first.
//
// Each answer uses a fresh liner state, so that the terminal is restored to
// its prior mode before the answer is returned.
func TermAsker(w io.Writer) Asker {
	return func(prompt string) (string, error) {
		head, tail := splitPrompt(prompt)
		if head != "" {
			if _, err := io.WriteString(w, head); err != nil {
				return "", err
			}
		}
		state := liner.NewLiner()
		defer state.Close()
		state.SetMultiLineMode(true) // lets Ctrl-C abort the prompt
		return state.Prompt(tail)
	}
}
