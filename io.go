package main

import (
	"github.com/jcorbin/magistack/internal/flushio"
	"github.com/jcorbin/magistack/internal/runeio"
)

type ioCore struct {
	in  runeio.LineReader
	out flushio.WriteFlusher

	logfn func(mess string, args ...interface{})
}

// Close flushes any buffered output.
func (ioc *ioCore) Close() error {
	if ioc.out != nil {
		return ioc.out.Flush()
	}
	return nil
}

func (ioc ioCore) logf(mess string, args ...interface{}) {
	if ioc.logfn != nil {
		ioc.logfn(mess, args...)
	}
}

func (vm *VM) writeRune(r rune) {
	_, err := runeio.WriteRune(vm.out, r)
	vm.haltif(err)
}

func (vm *VM) writeInt(n int) {
	_, err := runeio.WriteInt(vm.out, n)
	vm.haltif(err)
}

func (vm *VM) writeString(s string) {
	_, err := vm.out.Write([]byte(s))
	vm.haltif(err)
}

// readLine blocks for the next line of input, after flushing any output so
// that a prompt written by the program is visible first.
func (vm *VM) readLine() string {
	vm.haltif(vm.out.Flush())
	line, err := vm.in.ReadLine()
	vm.haltif(inputError(err))
	if loc, ok := vm.in.(interface{ String() string }); ok {
		vm.logf("read %q from %v", line, loc)
	} else {
		vm.logf("read %q", line)
	}
	return line
}
