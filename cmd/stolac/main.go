/*
File   : stolac/cmd/stolac/main.go
Package: main

Package main is the entry point for stolac, the Stola ahead-of-time
compiler. It drives the whole pipeline (lex -> parse -> resolve imports
-> analyze -> generate) for file mode, or hands off to the repl package
for interactive mode, following the same shape go-mix/main/main.go uses
to dispatch between file execution and REPL startup — minus the network
server mode, which has no compiler analogue.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/stola-lang/stolac/codegen"
	"github.com/stola-lang/stolac/codegen/abi"
	"github.com/stola-lang/stolac/importresolver"
	"github.com/stola-lang/stolac/parser"
	"github.com/stola-lang/stolac/repl"
	"github.com/stola-lang/stolac/sema"
)

const (
	version = "0.1.0"
	license = "MIT"
	prompt  = "stola> "
	line    = "----------------------------------------------------------------"
	banner  = `
  ███████╗████████╗ ██████╗ ██╗      █████╗
  ██╔════╝╚══██╔══╝██╔═══██╗██║     ██╔══██╗
  ███████╗   ██║   ██║   ██║██║     ███████║
  ╚════██║   ██║   ██║   ██║██║     ██╔══██║
  ███████║   ██║   ╚██████╔╝███████╗██║  ██║
  ╚══════╝   ╚═╝    ╚═════╝ ╚══════╝╚═╝  ╚═╝
`
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// projectConfig mirrors an optional stolac.yaml sitting next to the
// input file, letting a project pin its target/mode/stdlib directory
// without repeating flags on every invocation.
type projectConfig struct {
	Target       string `yaml:"target"`
	Freestanding bool   `yaml:"freestanding"`
	StdlibDir    string `yaml:"stdlib_dir"`
}

func loadProjectConfig(dir string) projectConfig {
	stdlibDir := "stdlib"
	if exe, err := os.Executable(); err == nil {
		stdlibDir = filepath.Join(filepath.Dir(exe), "stdlib")
	}
	cfg := projectConfig{Target: "linux", StdlibDir: stdlibDir}
	data, err := os.ReadFile(filepath.Join(dir, "stolac.yaml"))
	if err != nil {
		return cfg
	}
	var fromFile projectConfig
	if yaml.Unmarshal(data, &fromFile) == nil {
		if fromFile.Target != "" {
			cfg.Target = fromFile.Target
		}
		cfg.Freestanding = fromFile.Freestanding
		if fromFile.StdlibDir != "" {
			cfg.StdlibDir = fromFile.StdlibDir
		}
	}
	return cfg
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		showHelp()
		os.Exit(1)
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		os.Exit(0)
	case "--version", "-v":
		showVersion()
		os.Exit(0)
	case "repl":
		mode := sema.Hosted
		if containsFlag(args[1:], "--freestanding") {
			mode = sema.Freestanding
		}
		r := repl.New(banner, version, line, prompt, mode)
		r.Start(os.Stdout)
		return
	}

	opts, inputPath, outputPath, err := parseCompileArgs(args)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] %v\n", err)
		os.Exit(1)
	}

	os.Exit(compile(opts, inputPath, outputPath))
}

type compileOptions struct {
	mode      sema.Mode
	target    abi.Target
	stdlibDir string
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// parseCompileArgs parses `stolac [--freestanding] [--target=windows|linux]
// <input> <output.s>`.
func parseCompileArgs(args []string) (compileOptions, string, string, error) {
	configDir := "."
	for _, a := range args {
		if len(a) < 2 || a[:2] != "--" {
			configDir = filepath.Dir(a)
			break
		}
	}
	cfg := loadProjectConfig(configDir)
	opts := compileOptions{mode: sema.Hosted, target: abi.Target(cfg.Target), stdlibDir: cfg.StdlibDir}
	if cfg.Freestanding {
		opts.mode = sema.Freestanding
	}

	var positional []string
	for _, a := range args {
		switch {
		case a == "--freestanding":
			opts.mode = sema.Freestanding
		case len(a) > len("--target=") && a[:len("--target=")] == "--target=":
			opts.target = abi.Target(a[len("--target="):])
		default:
			positional = append(positional, a)
		}
	}

	if len(positional) != 2 {
		return opts, "", "", fmt.Errorf("expected <input> <output.s>, got %d positional argument(s)", len(positional))
	}
	return opts, positional[0], positional[1], nil
}

// compile runs the full pipeline and returns the process exit code:
// 0 on success, 1 on any failure along the way (spec.md §6/§7).
func compile(opts compileOptions, inputPath, outputPath string) int {
	cyanColor.Fprintf(os.Stdout, "Compiling %s\n", inputPath)
	source, err := os.ReadFile(inputPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", inputPath, err)
		return 1
	}

	p := parser.New(string(source))
	prog := p.Parse()
	if len(p.Errors) > 0 {
		for _, e := range p.Errors {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", e)
		}
		return 1
	}

	if opts.mode == sema.Hosted {
		result := importresolver.Resolve(prog, importresolver.OSReader{}, opts.stdlibDir, "stola")
		prog = result.Program
		for _, w := range result.Warnings {
			yellowColor.Fprintf(os.Stderr, "%s\n", w)
		}
	}

	analyzer := sema.New(opts.mode)
	if ok := analyzer.Analyze(prog); !ok {
		for _, e := range analyzer.Errors {
			redColor.Fprintf(os.Stderr, "[SEMANTIC ERROR] %s\n", e)
		}
		return 1
	}
	for _, w := range analyzer.Warnings {
		yellowColor.Fprintf(os.Stderr, "[WARNING] %s\n", w)
	}

	cyanColor.Fprintf(os.Stdout, "Generating assembly to %s\n", outputPath)
	gen := codegen.New(codegenMode(opts.mode), opts.target)
	asmText := gen.Generate(prog)
	if len(gen.Errors) > 0 {
		for _, e := range gen.Errors {
			redColor.Fprintf(os.Stderr, "[CODEGEN ERROR] %s\n", e)
		}
		return 1
	}

	if err := os.WriteFile(outputPath, []byte(asmText), 0o644); err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not write %q: %v\n", outputPath, err)
		return 1
	}

	cyanColor.Fprintln(os.Stdout, "Compilation successful!")
	return 0
}

func codegenMode(m sema.Mode) codegen.Mode {
	if m == sema.Freestanding {
		return codegen.Freestanding
	}
	return codegen.Hosted
}

func showHelp() {
	cyanColor.Println("stolac - Stola ahead-of-time compiler")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  stolac [--freestanding] [--target=windows|linux] <input.stola> <output.s>")
	yellowColor.Println("  stolac repl [--freestanding]")
	yellowColor.Println("  stolac --help")
	yellowColor.Println("  stolac --version")
	cyanColor.Println("")
	cyanColor.Println("CONFIG:")
	yellowColor.Println("  a stolac.yaml next to the input file may set target/freestanding/stdlib_dir")
}

func showVersion() {
	cyanColor.Printf("stolac %s\n", version)
	cyanColor.Printf("License: %s\n", license)
}
