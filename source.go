package main

import "unicode"

// bootstrap is prefixed to every program: it computes 9+1 and echoes it, so
// that every run begins by writing a newline.
const bootstrap = "91+,"

// Program is a loaded sequence of command runes, indexed from 0.
// It is never modified once loaded.
type Program []rune

// Load returns the Program for the given source text: all white space is
// removed, and the result is prefixed with the bootstrap sequence.
// Nothing else is stripped; comment regions are only ever skipped at runtime.
func Load(text string) Program {
	prog := make(Program, 0, len(bootstrap)+len(text))
	for _, r := range bootstrap + text {
		if !isSpace(r) {
			prog = append(prog, r)
		}
	}
	return prog
}

func (prog Program) String() string { return string(prog) }

// isSpace also counts the ASCII information separators (FS GS RS US) as white
// space, as unicode.IsSpace does not.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (0x1c <= r && r <= 0x1f)
}
