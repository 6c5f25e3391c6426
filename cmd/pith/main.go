package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	pith "github.com/pith-lang/pith"
)

const (
	appName     = "pith"
	historyFile = ".pith_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var (
	banner   = fmt.Sprintf("Pith %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", pith.Version)
	helpText = `
REPL commands:
  :help    Show this help
  :quit    Exit the REPL
`
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(pith.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Pith %s (built %s)

Usage:
  %s run <file.pith>    Evaluate a file, printing each result.
  %s repl               Start the REPL.
  %s version            Print the compiled version

`, pith.Version, pith.BuildDate, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.pith>\n", appName)
		return 2
	}

	file := args[0]
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	forms, err := pith.ReadAll(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, pith.WrapErrorWithName(err, file, string(src)).Error())
		return 1
	}

	// Each top-level form is evaluated in the environment the previous
	// one returned, and its value printed on its own line.
	env := pith.EmptyEnv()
	for _, form := range forms {
		v, env2, err := pith.Eval(form, env)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}
		env = env2
		fmt.Println(pith.FormatValue(v))
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) (ret int) {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	// The session environment. Evaluation returns the environment for
	// the next form; a failed form leaves it as it was.
	env := pith.EmptyEnv()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			switch strings.TrimSpace(strings.ToLower(code)) {
			case ":quit":
				return 0
			case ":help":
				fmt.Print(helpText)
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		if strings.TrimSpace(code) == "" {
			continue
		}

		forms, err := pith.ReadAll(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(pith.WrapErrorWithName(err, "<repl>", code).Error()))
			continue
		}

		for _, form := range forms {
			v, env2, err := pith.Eval(form, env)
			if err != nil {
				fmt.Fprintln(os.Stderr, red(err.Error()))
				break
			}
			env = env2
			fmt.Println(blue(pith.FormatValue(v)))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readByParseProbe accumulates lines until the buffer reads as a
// complete program (or fails with a hard error, which the caller will
// surface when it parses for real).
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, perr := pith.ReadAllInteractive(src)
		if perr == nil {
			return src, true
		}
		if pith.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
