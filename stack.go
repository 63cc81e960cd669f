package main

// operandStack is the LIFO sequence of ints used implicitly by most commands.
// Each VM owns exactly one.
type operandStack []int

func (st *operandStack) push(vals ...int) { *st = append(*st, vals...) }

func (st *operandStack) pop() (val int) {
	s := *st
	i := len(s) - 1
	val, *st = s[i], s[:i]
	return val
}

func (st *operandStack) reset() { *st = (*st)[:0] }

// need halts the VM with a StackError, reporting it to output, unless the
// stack holds at least n values.
func (vm *VM) need(n int) {
	if have := len(vm.stack); have < n {
		err := StackError{Pos: vm.pc + 1, Expected: n, Got: have}
		vm.writeString("\n" + err.Error())
		vm.halt(err)
	}
}

func (vm *VM) push(vals ...int) { vm.stack.push(vals...) }

func (vm *VM) pop() int { return vm.stack.pop() }

// pop2 pops a then b, the latter having been pushed first.
func (vm *VM) pop2() (a, b int) {
	a = vm.stack.pop()
	b = vm.stack.pop()
	return a, b
}
