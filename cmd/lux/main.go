/*
File    : lux/cmd/lux/main.go

The Lux CLI entry point, grounded on the teacher's main/main.go
(github.com/akashmaji946/go-mix): REPL mode with no arguments, file-
execution mode given a path, a line-oriented REPL server mode ("lux
server <port>", one goroutine per net.Conn), --help/--version flags,
and panic-recovery around file execution reporting a single formatted
error and a non-zero exit code. Output is split into error/result/info
color streams via fatih/color exactly as the teacher does, since the
core packages stay allocation-light and return errors as values —
fatih/color is the teacher's entire "logging" story at the host layer
(SPEC_FULL.md §2).
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/luxlang/lux/config"
	lexpkg "github.com/luxlang/lux/lexer"
	"github.com/luxlang/lux/parser"
	"github.com/luxlang/lux/repl"
	"github.com/luxlang/lux/stdlib"

	"github.com/luxlang/lux/eval"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	cfg, err := config.Load(os.Getenv("LUX_CONFIG"))
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) <= 1 {
		repl.New(cfg).Start(os.Stdout)
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp(cfg)
	case "--version", "-v":
		showVersion(cfg)
	case "server":
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port. Usage: lux server <port>\n")
			os.Exit(1)
		}
		startServer(cfg, os.Args[2])
	default:
		runFile(arg)
	}
}

func showHelp(cfg *config.Config) {
	cyanColor.Println("Lux - an embeddable scripting interpreter")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lux                     Start interactive REPL mode")
	yellowColor.Println("  lux <path-to-file>       Execute a Lux source file")
	yellowColor.Println("  lux server <port>        Start a REPL server on the given port")
	yellowColor.Println("  lux --help               Display this help message")
	yellowColor.Println("  lux --version             Display version information")
	cyanColor.Println()
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  /exit                     Exit the REPL")
	yellowColor.Println("  /scope                    Show current top-level bindings")
}

func showVersion(cfg *config.Config) {
	cyanColor.Printf("Lux %s\n", cfg.Version)
	cyanColor.Printf("License: %s\n", cfg.License)
	cyanColor.Printf("Author : %s\n", cfg.Author)
}

// runFile reads and executes a Lux source file, matching the
// teacher's executeFileWithRecovery: parse errors and evaluation
// errors are reported and exit non-zero; panics are recovered into a
// single formatted runtime error (spec.md §7: "the interpreter never
// returns a partial result on failure").
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(source))
}

func executeFileWithRecovery(source string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", rec)
			os.Exit(1)
		}
	}()

	prog, err := parser.New(source).Parse()
	if err != nil {
		if lexErr, ok := err.(*lexpkg.LexError); ok {
			redColor.Fprintf(os.Stderr, "[LEXICAL ERROR] %s\n", lexErr.Error())
		} else {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err.Error())
		}
		os.Exit(1)
	}

	ev := eval.NewEvaluator(stdlib.NewSandbox(os.Stdout))
	result, err := ev.Eval(prog)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %s\n", err.Error())
		os.Exit(1)
	}
	if result != nil && result.Type() != "nil" {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.String())
	}
}

// startServer listens on port, handing each connection its own REPL
// instance on its own goroutine (grounded on the teacher's
// startServer/handleClient).
func startServer(cfg *config.Config, port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on :%s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Lux REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleClient(cfg, conn)
	}
}

func handleClient(cfg *config.Config, conn net.Conn) {
	defer conn.Close()
	fmt.Fprintf(conn, "connected\n")
	repl.New(cfg).Start(conn)
}
