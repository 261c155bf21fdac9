/*
File    : tlox/cmd/tlox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the tlox interpreter's CLI driver.
It provides four subcommands over a single source file:

	tlox tokenize <path>   prints one line per token
	tlox parse <path>      prints a single expression's S-expression form
	tlox evaluate <path>   prints a single expression's runtime value
	tlox run <path>        executes statements for their side effects

The interpreter uses the same lexer-parser-interpreter pipeline for every
subcommand, stopping earlier for tokenize/parse than evaluate/run.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/tlox/tlox/ast"
	"github.com/tlox/tlox/environment"
	"github.com/tlox/tlox/interpreter"
	"github.com/tlox/tlox/lexer"
	"github.com/tlox/tlox/parser"
	"github.com/tlox/tlox/value"
)

// Exit codes. These follow spec.md §6 exactly, not the teacher's single
// os.Exit(1) convention: 65 is a lex/parse failure, 70 a runtime failure.
const (
	exitOK         = 0
	exitDataErr    = 65
	exitRuntimeErr = 70
)

var redColor = color.New(color.FgRed)

func main() {
	if len(os.Args) != 3 {
		redColor.Fprintf(os.Stderr, "Usage: tlox <tokenize|parse|evaluate|run> <path>\n")
		os.Exit(exitDataErr)
	}

	command := os.Args[1]
	path := os.Args[2]

	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		os.Exit(exitDataErr)
	}

	switch command {
	case "tokenize":
		os.Exit(runTokenize(string(source)))
	case "parse":
		os.Exit(runParse(string(source)))
	case "evaluate":
		os.Exit(runEvaluate(string(source)))
	case "run":
		os.Exit(runRun(string(source)))
	default:
		redColor.Fprintf(os.Stderr, "Unknown command '%s'.\n", command)
		os.Exit(exitDataErr)
	}
}

// runTokenize scans src and prints one line per token, as spec.md §6's
// table describes. Lex errors collected by the scanner are written to
// stderr first, and decide the final exit code.
func runTokenize(src string) int {
	scanner := lexer.NewScanner(src)
	tokens := scanner.ScanTokens()

	for _, err := range scanner.Errors {
		redColor.Fprintln(os.Stderr, err)
	}

	for _, tok := range tokens {
		fmt.Println(tok.String())
	}

	if scanner.HadError {
		return exitDataErr
	}
	return exitOK
}

// scanAndParseExpression runs the shared tokenize+parse-a-single-expression
// path used by the parse and evaluate subcommands.
func scanAndParseExpression(src string) (ast.Expr, int) {
	scanner := lexer.NewScanner(src)
	tokens := scanner.ScanTokens()
	if scanner.HadError {
		for _, err := range scanner.Errors {
			redColor.Fprintln(os.Stderr, err)
		}
		return nil, exitDataErr
	}

	expr, err := parser.NewParser(tokens).Expression()
	if err != nil {
		redColor.Fprintln(os.Stderr, err.Error())
		return nil, exitDataErr
	}
	return expr, exitOK
}

func runParse(src string) int {
	expr, code := scanAndParseExpression(src)
	if code != exitOK {
		return code
	}
	fmt.Println(ast.Print(expr))
	return exitOK
}

func runEvaluate(src string) int {
	expr, code := scanAndParseExpression(src)
	if code != exitOK {
		return code
	}

	result, err := interpreter.New().Evaluate(expr)
	if err != nil {
		reportRuntimeError(err)
		return exitRuntimeErr
	}

	fmt.Println(value.FormatForEvaluate(result))
	return exitOK
}

func runRun(src string) int {
	scanner := lexer.NewScanner(src)
	tokens := scanner.ScanTokens()
	if scanner.HadError {
		for _, err := range scanner.Errors {
			redColor.Fprintln(os.Stderr, err)
		}
		return exitDataErr
	}

	statements, err := parser.NewParser(tokens).Parse()
	if err != nil {
		redColor.Fprintln(os.Stderr, err.Error())
		return exitDataErr
	}

	if err := interpreter.New().Interpret(statements); err != nil {
		reportRuntimeError(err)
		return exitRuntimeErr
	}
	return exitOK
}

// reportRuntimeError writes a runtime error to stderr in spec.md §6's
// `<message>\n[line L]` format, omitting the line when the error carries
// no token.
func reportRuntimeError(err error) {
	redColor.Fprintln(os.Stderr, err.Error())
	if rerr, ok := err.(*environment.RuntimeError); ok && rerr.Token != nil {
		fmt.Fprintf(os.Stderr, "[line %d]\n", rerr.Token.Line)
	}
}
