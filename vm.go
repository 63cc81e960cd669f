package main

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

//// Environment

// VM implements a MagiStack machine. The machine has a program, a program
// counter into it, and a single stack of ints: there is no other memory.
type VM struct {
	ioCore

	// The program is a flat sequence of single rune commands, loaded once
	// and then only ever read.
	prog Program

	// The program counter indexes the command currently being executed. It
	// starts each run at -1, so that the first command executed is at 0.
	pc int

	// The stack is used implicitly by almost every command. When a command
	// takes values from the stack, the first popped is called a, the second
	// b.
	stack operandStack
}

//// Literals

// Symbol   Name    Function
//   0-9    digit   push the digit's value
func (vm *VM) digit() { vm.push(int(vm.prog[vm.pc] - '0')) }

//// Arithmetic Operations

// Symbol   Name    Function
//    +     add     pop a and b, push a+b
func (vm *VM) add() { vm.need(2); a, b := vm.pop2(); vm.push(a + b) }

// Symbol   Name    Function
//    -     sub     pop a and b, push b-a
func (vm *VM) sub() { vm.need(2); a, b := vm.pop2(); vm.push(b - a) }

// Symbol   Name    Function
//    *     mul     pop a and b, push a*b
func (vm *VM) mul() { vm.need(2); a, b := vm.pop2(); vm.push(a * b) }

// Symbol   Name    Function
//    /     div     pop a and b, push b/a rounded toward negative infinity
func (vm *VM) div() {
	vm.need(2)
	a, b := vm.pop2()
	if a == 0 {
		vm.halt(DivideError{Pos: vm.pc + 1})
	}
	vm.push(floorDiv(b, a))
}

// Symbol   Name    Function
//    %     mod     pop a and b, push b modulo a; any non-zero result takes
//                  the sign of a, consistent with div
func (vm *VM) mod() {
	vm.need(2)
	a, b := vm.pop2()
	if a == 0 {
		vm.halt(DivideError{Pos: vm.pc + 1})
	}
	vm.push(floorMod(b, a))
}

//// Logic Operations

// Symbol   Name    Function
//    !     not     pop a, push 0 if a is exactly 1, otherwise push 1
//
// Only the value 1 counts as true here: 0, 2, and -5 all become 1.
func (vm *VM) not() { vm.need(1); vm.push(boolInt(vm.pop() != 1)) }

// Symbol   Name    Function
//    `     more    pop a and b, push 1 if b > a else 0
func (vm *VM) more() { vm.need(2); a, b := vm.pop2(); vm.push(boolInt(b > a)) }

//// Stack Operations

// Symbol   Name    Function
//    :     dup     pop a, push a twice
func (vm *VM) dup() { vm.need(1); a := vm.pop(); vm.push(a, a) }

// Symbol   Name    Function
//    \     swap    pop a and b, push a then b
func (vm *VM) swap() { vm.need(2); a, b := vm.pop2(); vm.push(a, b) }

// Symbol   Name    Function
//    $     drop    pop a and discard it
func (vm *VM) drop() { vm.need(1); vm.pop() }

// Symbol   Name    Function
//    ?     size    push the number of values on the stack
func (vm *VM) size() { vm.push(len(vm.stack)) }

//// Input/Output Operations

// Symbol   Name    Function
//    .     dot     pop a, write it in decimal
func (vm *VM) dot() { vm.need(1); vm.writeInt(vm.pop()) }

// Symbol   Name    Function
//    ,     emit    pop a, write the rune whose code point is a
func (vm *VM) emit() {
	vm.need(1)
	a := vm.pop()
	if a < 0 || a > unicode.MaxRune || !utf8.ValidRune(rune(a)) {
		vm.halt(RuneError{Pos: vm.pc + 1, Value: a})
	}
	vm.writeRune(rune(a))
}

// Symbol   Name    Function
//    ^     num     read a line, push it as an integer if it is one, optionally
//                  signed; otherwise push 0
func (vm *VM) num() {
	line := vm.readLine()
	n, err := strconv.ParseInt(line, 10, strconv.IntSize)
	if err != nil {
		vm.logf("num %q is not an integer, pushing 0", line)
		n = 0
	}
	vm.push(int(n))
}

// Symbol   Name    Function
//    &     chars   read a line, push the code point of each of its runes, in
//                  order; an empty line pushes nothing
func (vm *VM) chars() {
	for _, r := range vm.readLine() {
		vm.push(int(r))
	}
}

//// Control Operations

// Symbol   Name    Function
//    =     same    pop a and b, skip the next command if a != b
func (vm *VM) same() {
	vm.need(2)
	if a, b := vm.pop2(); a != b {
		vm.pc++
	}
}

// Symbol   Name    Function
//    #     skip    continue after the next '#', '|', or ']'; or end the run if
//                  there is none
func (vm *VM) skip() {
	vm.pc = scanForward(vm.prog, vm.pc+1)
	vm.logf("skip to @%v", vm.pc+1)
}

// Symbol   Name    Function
//    @     back    continue after the previous '@', '|', or '['; or from the
//                  start of the program if there is none
func (vm *VM) back() {
	vm.pc = scanBackward(vm.prog, vm.pc-1)
	vm.logf("back to @%v", vm.pc+1)
}

// Symbol   Name    Function
//    _     exit    halt the program
func (vm *VM) exit() { vm.halt(nil) }

// Symbols ] [ and | only ever act as scan stops; any other rune, including
// letters and white space that survived loading, is a comment. Both execute
// as nop.
func (vm *VM) nop() {}

const maxCode = 0x80

var (
	vmCodeTable [maxCode]func(vm *VM)
	vmCodeNames [maxCode]string
)

func init() {
	def := func(r rune, name string, op func(vm *VM)) {
		vmCodeTable[r] = op
		vmCodeNames[r] = name
	}
	for r := '0'; r <= '9'; r++ {
		def(r, "digit", (*VM).digit)
	}
	def('+', "add", (*VM).add)
	def('-', "sub", (*VM).sub)
	def('*', "mul", (*VM).mul)
	def('/', "div", (*VM).div)
	def('%', "mod", (*VM).mod)
	def('!', "not", (*VM).not)
	def('`', "more", (*VM).more)
	def(':', "dup", (*VM).dup)
	def('\\', "swap", (*VM).swap)
	def('$', "drop", (*VM).drop)
	def('.', "dot", (*VM).dot)
	def(',', "emit", (*VM).emit)
	def('=', "same", (*VM).same)
	def('#', "skip", (*VM).skip)
	def('@', "back", (*VM).back)
	def('?', "size", (*VM).size)
	def('^', "num", (*VM).num)
	def('&', "chars", (*VM).chars)
	def('_', "exit", (*VM).exit)
	def(']', "stop", (*VM).nop)
	def('[', "stop", (*VM).nop)
	def('|', "stop", (*VM).nop)
}

// code returns the operation for a command rune, and its name for logging.
func code(r rune) (func(vm *VM), string) {
	if r >= 0 && r < maxCode {
		if op := vmCodeTable[r]; op != nil {
			return op, vmCodeNames[r]
		}
	}
	return (*VM).nop, "nop"
}

func floorDiv(b, a int) int {
	q := b / a
	if b%a != 0 && (b < 0) != (a < 0) {
		q--
	}
	return q
}

func floorMod(b, a int) int {
	m := b % a
	if m != 0 && (m < 0) != (a < 0) {
		m += a
	}
	return m
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
