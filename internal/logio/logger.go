package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Logger implements a leveled logging facility around an output stream,
// retaining an exit code that reflects whether any error was logged.
type Logger struct {
	mu       sync.Mutex
	output   io.Writer
	buf      bytes.Buffer
	exitCode int
}

// SetOutput sets the logger's output stream.
func (log *Logger) SetOutput(out io.Writer) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.output = out
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics: 1 after Errorf, 2 if logging itself failed.
func (log *Logger) ExitCode() int {
	log.mu.Lock()
	defer log.mu.Unlock()
	return log.exitCode
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%+v", err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but additionally retains state so
// that ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.mu.Lock()
	defer log.mu.Unlock()
	if log.exitCode == 0 {
		log.exitCode = 1
	}
	if err := log.printf("ERROR", mess, args...); err != nil {
		log.exitCode = 2
	}
}

// Printf prints a line to the output stream like "level: message...\n".
// Any io error is retained as a non-zero ExitCode().
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.mu.Lock()
	defer log.mu.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.exitCode = 2
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	defer log.buf.Reset()
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	if log.output == nil {
		return nil
	}
	_, err := log.buf.WriteTo(log.output)
	return err
}
