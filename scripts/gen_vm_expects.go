package main

// gen_vm_expects writes curried wrappers around vmTestCase builder methods,
// e.g. withSource(source) => withVMSource(source), so that builder steps can
// be composed ahead of time with vmTestCase.apply.
//
// Usage: go run scripts/gen_vm_expects.go -- SOURCE DEST

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"text/template"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

// builderMethod matches single line builder method signatures that take
// arguments; methods without arguments are not wrapped.
var builderMethod = regexp.MustCompile(`^func \(vmt vmTestCase\) (expect|with)(\w+)\((.+)\) vmTestCase \{$`)

type wrapper struct {
	Prefix string
	Name   string
	Params string
	Args   string
}

func parseWrapper(prefix, name, params string) wrapper {
	var args []string
	for _, param := range strings.Split(params, ",") {
		fields := strings.Fields(param)
		if len(fields) == 0 {
			continue
		}
		arg := fields[0]
		if len(fields) > 1 && strings.HasPrefix(fields[1], "...") {
			arg += "..."
		}
		args = append(args, arg)
	}
	return wrapper{
		Prefix: prefix,
		Name:   name,
		Params: params,
		Args:   strings.Join(args, ", "),
	}
}

var expectsTemplate = template.Must(template.New("expects").Parse(`package main

// @generated from {{.Source}}

//go:generate go run scripts/gen_vm_expects.go -- {{.Source}} {{.Dest}}
{{range .Wrappers}}
func {{.Prefix}}VM{{.Name}}({{.Params}}) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.{{.Prefix}}{{.Name}}({{.Args}})
	}
}
{{end}}`))

func main() {
	log.SetFlags(0)
	log.SetPrefix("gen_vm_expects: ")
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalln("usage: gen_vm_expects SOURCE DEST")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := generate(ctx, flag.Arg(0), flag.Arg(1)); err != nil {
		log.Fatalln(err)
	}
}

func scanWrappers(source string) (wrappers []wrapper, _ error) {
	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if match := builderMethod.FindStringSubmatch(sc.Text()); match != nil {
			wrappers = append(wrappers, parseWrapper(match[1], match[2], match[3]))
		}
	}
	return wrappers, sc.Err()
}

// generate renders wrappers for every builder method in source, piping them
// through goimports into dest.
func generate(ctx context.Context, source, dest string) error {
	wrappers, err := scanWrappers(source)
	if err != nil {
		return err
	}
	if len(wrappers) == 0 {
		return fmt.Errorf("no builder methods found in %v", source)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}

	goimports := exec.CommandContext(ctx, "goimports")
	goimports.Stdout = f
	goimports.Stderr = os.Stderr
	pipe, err := goimports.StdinPipe()
	if err != nil {
		f.Close()
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := goimports.Run(); err != nil {
			return fmt.Errorf("goimports failed: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		err := render(ctx, pipe, source, dest, wrappers)
		if cerr := pipe.Close(); err == nil {
			err = cerr
		}
		return err
	})

	err = eg.Wait()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func render(ctx context.Context, w io.Writer, source, dest string, wrappers []wrapper) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := expectsTemplate.Execute(bw, struct {
		Source, Dest string
		Wrappers     []wrapper
	}{source, dest, wrappers}); err != nil {
		return err
	}
	return bw.Flush()
}
