// mathsh is a minimal read-eval-print driver over the cas façade, used
// only for manual smoke-testing during development (SPEC_FULL.md §2):
// it is explicitly not the kernel's public interface.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Marcos30004347/math/cas"
)

var (
	execute = flag.Bool("e", false, "evaluate arguments as a single expression")
	base    = flag.Int("base", cas.DefaultOutputBase, "output base for integer/fraction literals")
	prompt  = flag.String("prompt", "mathsh> ", "interactive prompt")
)

func main() {
	flag.Parse()

	cfg := &cas.Config{}
	cfg.SetOutputBase(*base)

	if *execute {
		runLine(cfg, os.Stdout, strings.Join(flag.Args(), " "))
		return
	}

	if flag.NArg() > 0 {
		for _, name := range flag.Args() {
			if err := runFile(cfg, os.Stdout, name); err != nil {
				fmt.Fprintf(os.Stderr, "mathsh: %s\n", err)
				os.Exit(1)
			}
		}
		return
	}

	repl(cfg, os.Stdin, os.Stdout)
}

// repl reads one expression per line until EOF. It always prints the
// prompt, whether or not stdin is a terminal; this minimal shell makes
// no attempt to detect interactivity.
func repl(cfg *cas.Config, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, *prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		runLine(cfg, out, scanner.Text())
	}
}

func runFile(cfg *cas.Config, out io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		runLine(cfg, out, scanner.Text())
	}
	return scanner.Err()
}

// runLine parses, reduces, and prints a single line. Parse or reduce
// failures are reported to stderr without aborting the session, mirroring
// ivy's per-line error recovery in interactive mode.
func runLine(cfg *cas.Config, out io.Writer, line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	parsed, err := cas.Parse(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mathsh: parse error: %s\n", err)
		return
	}
	reduced, err := cas.Reduce(parsed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mathsh: %s\n", err)
		return
	}
	s, err := cas.ToString(cfg, reduced)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mathsh: %s\n", err)
		return
	}
	fmt.Fprintln(out, s)
}
