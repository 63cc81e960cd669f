package main

import (
	"io"
	"strings"

	"github.com/jcorbin/magistack/internal/flushio"
	"github.com/jcorbin/magistack/internal/runeio"
)

// VMOption configures a VM, see New.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, skipping nils.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

func defaultOptions() VMOption {
	return VMOptions(
		withLineReader(runeio.NewLines(strings.NewReader(""))),
		withOutput(io.Discard),
	)
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type programOption Program
type lineReaderOption struct{ runeio.LineReader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stackOption []int

func withProgram(prog Program) programOption               { return programOption(prog) }
func withLineReader(lr runeio.LineReader) lineReaderOption { return lineReaderOption{lr} }
func withOutput(w io.Writer) outputOption                  { return outputOption{w} }
func withTee(w io.Writer) teeOption                        { return teeOption{w} }
func withStack(values ...int) stackOption                  { return stackOption(values) }

func (prog programOption) apply(vm *VM) {
	vm.prog = Program(prog)
}

func (lr lineReaderOption) apply(vm *VM) {
	vm.in = lr.LineReader
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		if err := vm.out.Flush(); err != nil {
			vm.logf("flush of replaced output failed: %v", err)
		}
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (values stackOption) apply(vm *VM) {
	vm.stack.push(values...)
}
