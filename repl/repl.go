/*
File    : go-lite/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter. It
is an external collaborator over the core {lexer, parser, evaluator}
triple: no algorithmic content of its own, just line reading, banner
display, and colored result/error printing. The environment persists for
the lifetime of the session, so bindings made on one line are visible on
the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-lite/eval"
	"github.com/akashmaji946/go-lite/objects"
	"github.com/akashmaji946/go-lite/parser"
	"github.com/akashmaji946/go-lite/scope"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner, version, author,
// separator line, license, and prompt strings.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the decorative startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to go-lite!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-eval-print loop until the user types `.exit`, hits
// EOF, or readline fails. A single scope.Scope is created once and reused
// across every line, so `let` bindings accumulate for the session.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := scope.NewScope()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, env)
	}
}

// executeWithRecovery parses and evaluates one line, printing parser
// errors (preceded by a decorative banner) or the evaluator's result.
// Evaluator errors are prefixed `Error:`. A host-level panic (integer
// division by zero, per the evaluator's design notes) is caught here so
// one bad line cannot kill the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, env *scope.Scope) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "Error: %v\n", recovered)
		}
	}()

	p := parser.NewParser(line)
	program := p.ParseProgram()

	if p.HasErrors() {
		redColor.Fprintf(writer, "%s\n", r.Line)
		redColor.Fprintf(writer, "%s\n", "Woops! We ran into some parser errors:")
		for _, msg := range p.Errors() {
			redColor.Fprintf(writer, "\t%s\n", msg)
		}
		return
	}

	result := eval.Eval(program, env)
	if result == nil {
		return
	}

	if errObj, ok := result.(*objects.Error); ok {
		redColor.Fprintf(writer, "Error: %s\n", errObj.Message)
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.String())
}
