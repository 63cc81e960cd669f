package main

import (
	"context"
	"io"

	"github.com/jcorbin/magistack/internal/panicerr"
	"github.com/jcorbin/magistack/internal/runeio"
)

// New creates a VM with the given options applied over defaults that provide
// an empty program, no input, and discarded output.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions().apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run executes the VM's program from its start until it runs past its last
// command, or halts. A halt by the exit command is not an error; any other
// halt returns its cause, such as a StackError.
//
// The context is checked between each command; it cannot interrupt a
// blocked input read.
func (vm *VM) Run(ctx context.Context) error {
	return haltCause(panicerr.Recover("VM", func() error {
		return vm.run(ctx)
	}))
}

// Snapshot is a copy of VM state, suitable for dumping.
type Snapshot struct {
	Program string
	PC      int
	Stack   []int
}

// Snapshot returns a copy of the VM's current state.
func (vm *VM) Snapshot() Snapshot {
	return Snapshot{
		Program: vm.prog.String(),
		PC:      vm.pc,
		Stack:   append([]int(nil), vm.stack...),
	}
}

// WithSource loads the VM's program from source text, see Load.
func WithSource(text string) VMOption { return withProgram(Load(text)) }

// WithProgram sets an already loaded program.
func WithProgram(prog Program) VMOption { return withProgram(prog) }

// WithInput reads input lines from r.
func WithInput(r io.Reader) VMOption { return withLineReader(runeio.NewLines(r)) }

// WithLineReader reads input lines from lr, which may be shared with other
// line reading, like a path prompt.
func WithLineReader(lr runeio.LineReader) VMOption { return withLineReader(lr) }

// WithOutput writes output to w, which is buffered unless it is in memory.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithTee copies output to w, in addition to any other output.
func WithTee(w io.Writer) VMOption { return withTee(w) }

// WithStack pushes initial values onto the stack.
func WithStack(values ...int) VMOption { return withStack(values...) }

// WithLogf enables trace logging of every command executed.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
