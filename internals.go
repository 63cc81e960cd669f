package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/magistack/internal/runeio"
)

func (vm *VM) halt(err error) {
	if ferr := vm.out.Flush(); err == nil {
		err = ferr
	}
	if err == nil {
		vm.logf("halt @%v", vm.pc)
	} else {
		vm.logf("halt @%v error: %v", vm.pc, err)
	}
	if vm.logfn != nil {
		vm.logDump()
	}
	panic(haltError{err})
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}

func (vm *VM) step() {
	vm.pc++
	r := vm.prog[vm.pc]
	op, name := code(r)
	if vm.logfn != nil {
		vm.logf("exec @%v %v %v -- s:%v", vm.pc, runeio.Name(r), name, vm.stack)
	}
	op(vm)
}

func (vm *VM) exec(ctx context.Context) {
	for vm.pc < len(vm.prog)-1 {
		vm.haltif(ctx.Err())
		vm.step()
	}
}

// run executes the program from its start; the stack is reset only when
// execution runs past the last command.
func (vm *VM) run(ctx context.Context) error {
	vm.pc = -1
	vm.exec(ctx)
	vm.logf("done @%v -- s:%v", vm.pc, vm.stack)
	vm.stack.reset()
	return vm.out.Flush()
}

func (vm *VM) logDump() {
	var sb strings.Builder
	vmDumper{vm: vm, out: &sb}.dump()
	for _, line := range strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n") {
		vm.logf("%s", line)
	}
}

var errNoInput = errors.New("input exhausted")

// StackError indicates that a command needed more values than the stack
// held. Pos is the 1-indexed program position of the command.
type StackError struct {
	Pos      int
	Expected int
	Got      int
}

// DivideError indicates division or modulo by zero at 1-indexed Pos.
type DivideError struct {
	Pos int
}

// RuneError indicates an attempt to write a Value which is not a valid
// unicode code point at 1-indexed Pos.
type RuneError struct {
	Pos   int
	Value int
}

func (err StackError) Error() string {
	return fmt.Sprintf("[P:%v] StackError: Expected at least %v values in stack, got %v",
		err.Pos, err.Expected, err.Got)
}

func (err DivideError) Error() string {
	return fmt.Sprintf("[P:%v] division by zero", err.Pos)
}

func (err RuneError) Error() string {
	return fmt.Sprintf("[P:%v] invalid rune %v", err.Pos, err.Value)
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

// haltCause returns the cause of any halt within err, which is nil for a
// normal halt.
func haltCause(err error) error {
	var halted haltError
	if errors.As(err, &halted) {
		return halted.error
	}
	return err
}

func inputError(err error) error {
	if err == io.EOF {
		return errNoInput
	}
	return err
}
