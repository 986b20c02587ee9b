/*
File   : stolac/repl/repl.go
Package: repl

Package repl implements an interactive lex -> parse -> analyze loop for
exploring Stola syntax and catching semantic errors before committing a
file to `stolac`. Unlike a tree-walking interpreter's REPL, there is
nothing here to execute: stola is an ahead-of-time compiler, so each line
is parsed and analyzed in isolation and its diagnostics (or a one-line
summary of what it would declare) are printed back — the closest
interactive equivalent to compiling a one-line program.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/parser"
	"github.com/stola-lang/stolac/sema"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/version text shown at startup and the mode
// (hosted/freestanding) every line is analyzed under.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
	Mode    sema.Mode
}

// New constructs a Repl; prompt typically ends in a trailing space, e.g.
// "stola> ".
func New(banner, version, line, prompt string, mode sema.Mode) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt, Mode: mode}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintf(w, "stolac %s\n", r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Type a line of Stola and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Each line is parsed and semantically checked in isolation.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the interactive loop until the user exits or EOF is reached.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Good bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(w, "Good bye!")
			return
		}
		rl.SaveHistory(line)

		r.evalLine(w, line)
	}
}

func (r *Repl) evalLine(w io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "[PANIC] %v\n", rec)
		}
	}()

	p := parser.New(line)
	prog := p.Parse()

	if len(p.Errors) > 0 {
		for _, e := range p.Errors {
			redColor.Fprintf(w, "%s\n", e)
		}
		return
	}

	analyzer := sema.New(r.Mode)
	analyzer.Analyze(prog)

	for _, e := range analyzer.Errors {
		redColor.Fprintf(w, "%s\n", e)
	}
	for _, warn := range analyzer.Warnings {
		yellowColor.Fprintf(w, "%s\n", warn)
	}
	if len(analyzer.Errors) == 0 && len(analyzer.Warnings) == 0 {
		yellowColor.Fprintf(w, "ok: %s\n", summarize(prog))
	}
}

// summarize renders a one-line description of what the parsed line would
// declare, so a clean line still produces visible feedback.
func summarize(prog *ast.Program) string {
	if len(prog.Statements) == 0 {
		return "(empty)"
	}
	kinds := make([]string, len(prog.Statements))
	for i, stmt := range prog.Statements {
		kinds[i] = fmt.Sprintf("%T", stmt)
	}
	return strings.Join(kinds, ", ")
}
