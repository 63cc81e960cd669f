package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover calls f, converting any panic into a non-nil error return.
// Unlike running f in a separate goroutine, f shares its caller's goroutine,
// so any runtime.Goexit within it will still unwind the caller.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = panicError{
				name:  name,
				e:     e,
				stack: debug.Stack(),
			}
		}
	}()
	return f()
}

type panicError struct {
	name  string
	e     interface{}
	stack []byte
}

func (pe panicError) Error() string {
	return fmt.Sprint(pe)
}

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.e)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.e)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}

// IsPanic returns true if err indicates a recovered panic.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// PanicStack returns a non-empty stacktrace string if err is a recovered
// panic.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}
