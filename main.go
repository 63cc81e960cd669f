package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/goforj/godump"

	"github.com/jcorbin/magistack/internal/fileinput"
	"github.com/jcorbin/magistack/internal/logio"
	"github.com/jcorbin/magistack/internal/runeio"
)

func main() {
	ctx := context.Background()

	var timeout time.Duration
	var trace bool
	var dump bool
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "dump final machine state")
	flag.Parse()

	var log logio.Logger
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	in := runeio.NewLines(os.Stdin)
	src, err := sourceProvider(flag.Args(), in).Source()
	if err != nil {
		log.ErrorIf(err)
		return
	}

	var opts = []VMOption{
		WithSource(src.Text),
		WithLineReader(in),
		WithOutput(os.Stdout),
	}
	if trace {
		logf := log.Leveledf("TRACE")
		logf("loaded %v", src)
		opts = append(opts, WithLogf(logf))
	}
	vm := New(opts...)
	defer vm.Close()

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	err = vm.Run(ctx)
	if dump {
		dumpState(&log, vm)
	}
	report(&log, err)
}

// report logs any run error, and so sets a non-zero exit code; stack errors
// have already been reported within program output, and exit just like a
// normal halt.
func report(log *logio.Logger, err error) {
	var stackErr StackError
	if !errors.As(err, &stackErr) {
		log.ErrorIf(err)
	}
}

func dumpState(log *logio.Logger, vm *VM) {
	log.Printf("DUMP", "%s", godump.DumpStr(vm.Snapshot()))
}

// sourceProvider reads the file named by the first argument, or asks for a
// path, using line editing when standard input is a terminal. Prompted input
// is read through in, so that any further piped input remains for the
// program.
func sourceProvider(args []string, in runeio.LineReader) fileinput.Provider {
	if len(args) > 0 {
		return fileinput.File(args[0])
	}
	if fileinput.IsTerminal(os.Stdin) {
		return fileinput.Prompt{Ask: fileinput.TermAsker(os.Stdout)}
	}
	return fileinput.Prompt{Ask: fileinput.LineAsker(os.Stdout, in)}
}
