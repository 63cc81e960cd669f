/* Package main: MagiStack -- a tiny stack language

MagiStack programs are strings of single rune commands operating on one stack
of integers. There are no variables, no memory beyond the stack, and no
definitions: everything a program does, it does by pushing, popping, and
skipping around its own text.

Before anything runs, all white space is removed from the program text, and
the whole is prefixed by the bootstrap sequence "91+,". That computes 9+1 and
writes it as a rune, so every program starts out by writing a newline. Program
positions count the bootstrap too; the first command of the source text proper
is at position 5 in error reports, which are 1-indexed.

Execution starts just before the first command, and steps forward one command
at a time until running past the last command, or until halted. Running off
the end clears the stack; halting by the exit command does not.

Commands

Every command takes its operands from the stack. The first value popped is
called a, the second b; so for "52-", a is 2 and b is 5, and the result is 3.

	Symbol  Name    Function
	 0-9    digit   push the digit's value
	  +     add     push b+a
	  -     sub     push b-a
	  *     mul     push b*a
	  /     div     push b/a rounded toward negative infinity
	  %     mod     push b modulo a, with the sign of a
	  !     not     push 0 if a is exactly 1, otherwise 1
	  `     more    push 1 if b > a, otherwise 0
	  :     dup     push a twice
	  \     swap    push a, then b
	  $     drop    discard a
	  ?     size    push the number of values on the stack
	  .     dot     write a in decimal
	  ,     emit    write the rune whose code point is a
	  ^     num     read a line, push it as an integer, or 0 if it is not one
	  &     chars   read a line, push the code point of each of its runes
	  =     same    skip the next command unless a == b
	  #     skip    continue after the next '#', '|', or ']'
	  @     back    continue after the previous '@', '|', or '['
	  _     exit    halt

Values are Go ints, 64 bits wide on 64-bit platforms, and arithmetic wraps
around on overflow just as Go's does; there is no error for it. So squaring 2
six times, as in "2:*:*:*:*:*:*.", writes 0, and dividing by such a wrapped
product is a division by zero.

Any other rune, including ']', '[', and '|', does nothing when executed. That
makes prose a fine comment, so long as it avoids command runes; "#...#" regions
are skipped wholesale, so they may contain anything but the stop runes.

Not is not a boolean negation in the usual sense: only the value 1 counts as
true, so "2!" pushes 1, just like "0!".

Skipping and Looping

The skip and back scans are purely lexical: a scan stops at the first stop
rune found in its direction, with no notion of nesting. A skip that finds no
stop ends the run, just as if execution had run off the end; a back scan that
finds no stop starts over from the beginning of the program, bootstrap and
all. Since the back stop includes '@' itself, a loop is written like:

	5 [ : . 1 - : 0 = _ @

Which counts down from 5, writing "54321", then halts when the counter reaches
0. The '[' marks where each back scan resumes; the "=" skips over the "_" exit
until the counter matches.

Input

Input is read a line at a time, with the line terminator removed. The num
command accepts an optional sign followed by decimal digits; anything else,
including an out of range value, is read as 0. The chars command pushes every
rune of the line in order, so the last rune ends up on top. Once input is
exhausted, either command halts with an error.

Errors

A command that needs more values than the stack holds halts the program, after
writing a report like:

	[P:5] StackError: Expected at least 2 values in stack, got 0

To program output, on a new line. Such a halt is considered part of normal
program behavior. Division by zero and writing an invalid code point also
halt, but those are reported as errors.

Usage

	magistack [-trace] [-dump] [-timeout DURATION] [FILE]

Without a FILE argument, a path is prompted for on standard input; any further
standard input is then read by the program.

*/
package main
