package main

// Skip regions are purely lexical: a scan stops at the first stop rune in its
// direction, never counting nesting depth. A region like "#a#b#" therefore
// ends at its second '#', not its third; nested regions are not supported.

// scanForward returns the index of the first of '#', '|', or ']' at or after
// from, or len(prog) if there is none.
func scanForward(prog Program, from int) int {
	for i := from; i < len(prog); i++ {
		switch prog[i] {
		case '#', '|', ']':
			return i
		}
	}
	return len(prog)
}

// scanBackward returns the index of the last of '@', '|', or '[' at or before
// from, or -1 if there is none.
func scanBackward(prog Program, from int) int {
	for i := from; i >= 0; i-- {
		switch prog[i] {
		case '@', '|', '[':
			return i
		}
	}
	return -1
}
