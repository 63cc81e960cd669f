package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	width     int
	addrWidth int
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  pc: %v\n", dump.vm.pc)
	fmt.Fprintf(dump.out, "  stack: %v\n", []int(dump.vm.stack))
	dump.dumpProg()
}

// dumpProg writes the program in rows of width runes, each prefixed by the
// address of its first rune, with a caret marking the program counter.
func (dump *vmDumper) dumpProg() {
	const defaultWidth = 32

	prog := dump.vm.prog
	if dump.width == 0 {
		dump.width = defaultWidth
	}
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(len(prog)))
	}

	var buf strings.Builder
	for addr := 0; addr < len(prog); addr += dump.width {
		end := min(addr+dump.width, len(prog))
		fmt.Fprintf(&buf, "  @%*v ", dump.addrWidth, addr)
		for _, r := range prog[addr:end] {
			if unicode.IsGraphic(r) {
				buf.WriteRune(r)
			} else {
				buf.WriteRune('·')
			}
		}
		buf.WriteByte('\n')
		if pc := dump.vm.pc; addr <= pc && pc < end {
			fmt.Fprintf(&buf, "  %*v^\n", dump.addrWidth+2+pc-addr, "")
		}
		io.WriteString(dump.out, buf.String())
		buf.Reset()
	}
}
