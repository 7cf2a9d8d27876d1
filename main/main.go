/*
File    : go-lite/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the go-lite interpreter. It provides
two modes of operation:
 1. REPL Mode (default): interactive read-eval-print loop
 2. File Mode: execute a go-lite source file given on the command line

Both are thin shells over the core {lexer, parser, evaluator} pipeline.
*/
package main

import (
	"os"

	"github.com/akashmaji946/go-lite/eval"
	"github.com/akashmaji946/go-lite/objects"
	"github.com/akashmaji946/go-lite/parser"
	"github.com/akashmaji946/go-lite/repl"
	"github.com/akashmaji946/go-lite/scope"
	"github.com/fatih/color"
)

var VERSION = "v1.0.0"
var AUTHOR = "akashmaji(@iisc.ac.in)"
var LICENSE = "MIT"
var PROMPT = ">> "

var BANNER = `
   ____  ___        __    _ __
  / __ \/ _ \______ / /   (_) /____
 / /_/ / // / __/ -_) /__/ / __/ -_)
 \__, /____/_/  \__/____/_/\__/\__/
/____/
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Usage:
//
//	go-lite              - start REPL (interactive) mode
//	go-lite <filename>   - execute the given source file
//	go-lite --help       - display help information
//	go-lite --version    - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("go-lite - a small expression-oriented scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  go-lite                    Start interactive REPL mode")
	yellowColor.Println("  go-lite <path-to-file>     Execute a go-lite file")
	yellowColor.Println("  go-lite --help             Display this help message")
	yellowColor.Println("  go-lite --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL:")
	yellowColor.Println("  .exit                      Exit the REPL")
}

func showVersion() {
	cyanColor.Println("go-lite - a small expression-oriented scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads fileName, evaluates it once against a fresh scope, and
// reports the result or any error. Exits non-zero on a read failure, a
// parse failure, or an evaluator error.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(fileContent))
}

// executeFileWithRecovery parses and evaluates source, recovering from a
// host-level panic (e.g. integer division by zero) the same way a
// production interpreter would guard one bad script from taking the
// whole process down.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p := parser.NewParser(source)
	program := p.ParseProgram()

	if p.HasErrors() {
		for _, msg := range p.Errors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	env := scope.NewScope()
	result := eval.Eval(program, env)

	if result == nil {
		return
	}

	if errObj, ok := result.(*objects.Error); ok {
		redColor.Fprintf(os.Stderr, "%s\n", errObj.String())
		os.Exit(1)
	}

	if result.Type() != objects.NULL_OBJ {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.String())
	}
}
