package main

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jcorbin/magistack/internal/logio"
	"github.com/jcorbin/magistack/internal/panicerr"
	"github.com/stretchr/testify/assert"
)

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	for _, vmt := range vmts {
		if !t.Run(vmt.name, vmt.run) {
			return
		}
	}
}

func vmTest(name string) (vmt vmTestCase) {
	vmt.name = name
	return vmt
}

type optFunc func(vm *VM)

func (f optFunc) apply(vm *VM) { f(vm) }

type vmTestCase struct {
	name    string
	opts    []interface{}
	ops     []func(vm *VM)
	expect  []func(t *testing.T, vm *VM)
	timeout time.Duration
	wantErr error
}

func (vmt vmTestCase) apply(wraps ...func(vmTestCase) vmTestCase) vmTestCase {
	for _, wrap := range wraps {
		vmt = wrap(vmt)
	}
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	for _, opt := range opts {
		vmt.opts = append(vmt.opts, opt)
	}
	return vmt
}

func (vmt vmTestCase) withSource(source string) vmTestCase {
	vmt.opts = append(vmt.opts, WithSource(source))
	return vmt
}

// withCode sets a program as is, without any bootstrap prefix.
func (vmt vmTestCase) withCode(code string) vmTestCase {
	vmt.opts = append(vmt.opts, WithProgram(Program(code)))
	return vmt
}

func (vmt vmTestCase) withPC(pc int) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.pc = pc
	}))
	return vmt
}

func (vmt vmTestCase) withStack(values ...int) vmTestCase {
	vmt.opts = append(vmt.opts, WithStack(values...))
	return vmt
}

func (vmt vmTestCase) withInput(input string) vmTestCase {
	vmt.opts = append(vmt.opts, func(vmt *vmTestCase, t *testing.T) VMOption {
		return WithInput(namedReader{strings.NewReader(input), t.Name() + "/input"})
	})
	return vmt
}

func (vmt vmTestCase) do(ops ...func(vm *VM)) vmTestCase {
	vmt.ops = append(vmt.ops, ops...)
	return vmt
}

func (vmt vmTestCase) withTimeout(timeout time.Duration) vmTestCase {
	vmt.timeout = timeout
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.wantErr = err
	return vmt
}

func (vmt vmTestCase) expectPC(pc int) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, pc, vm.pc, "expected program counter")
	})
	return vmt
}

func (vmt vmTestCase) expectStack(values ...int) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		if values == nil {
			values = []int{}
		}
		stack := []int(vm.stack)
		if stack == nil {
			stack = []int{}
		}
		assert.Equal(t, values, stack, "expected stack values")
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(output string) vmTestCase {
	var out strings.Builder
	vmt.opts = append(vmt.opts, WithOutput(&out))
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return vmt
}

func (vmt vmTestCase) expectDump(dump string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		var out strings.Builder
		vmDumper{
			vm:  vm,
			out: &out,
		}.dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Since(then))
	}(time.Now())

	var logs []string
	vm := vmt.buildVM(t)
	WithLogf(func(mess string, args ...interface{}) {
		logs = append(logs, fmt.Sprintf(mess, args...))
	}).apply(vm)
	defer func() {
		if t.Failed() {
			for _, log := range logs {
				t.Log(log)
			}
		}
	}()
	vmt.runVMTest(context.Background(), t, vm)
}

func (vmt vmTestCase) runVMTest(ctx context.Context, t *testing.T, vm *VM) {
	const defaultTimeout = time.Second
	timeout := vmt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if t.Failed() {
			vmt.dumpToTest(t, vm)
		}
	}()

	if err := vmt.runVM(ctx, vm); vmt.wantErr != nil {
		assert.True(t, errors.Is(err, vmt.wantErr), "expected error: %v\ngot: %+v", vmt.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected VM run error")
	}

	if !t.Failed() {
		for _, expect := range vmt.expect {
			expect(t, vm)
		}
	}
}

func (vmt vmTestCase) runVM(ctx context.Context, vm *VM) (rerr error) {
	defer func() {
		if err := vm.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("vm.Close failed: %w", err)
		}
	}()

	if len(vmt.ops) == 0 {
		return vm.Run(ctx)
	}

	names := make([]string, len(vmt.ops))
	for i, op := range vmt.ops {
		names[i] = runtime.FuncForPC(reflect.ValueOf(op).Pointer()).Name()
	}
	return haltCause(panicerr.Recover("vmTestCase.ops", func() error {
		for i, op := range vmt.ops {
			vm.logf("do[%v] %v", i, names[i])
			op(vm)
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return nil
	}))
}

func (vmt vmTestCase) buildVM(t *testing.T) *VM {
	var opt VMOption
	for _, o := range vmt.opts {
		switch impl := o.(type) {
		case func(vmt *vmTestCase, t *testing.T) VMOption:
			opt = VMOptions(opt, impl(&vmt, t))
		case VMOption:
			opt = VMOptions(opt, impl)
		default:
			t.Logf("unsupported vmTestCase opt type %T", o)
			t.FailNow()
		}
	}
	return New(opt)
}

func (vmt vmTestCase) dumpToTest(t *testing.T, vm *VM) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	vmDumper{vm: vm, out: &lw}.dump()
}

//// utilities

type namedReader struct {
	*strings.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
