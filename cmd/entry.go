package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"tlang/ast"
	"tlang/internals"
	"tlang/lexer"
	"tlang/parser"
	"tlang/repl"

	"github.com/ComedicChimera/olive"
)

// Version is the front-end version string.
const Version = "0.1.0"

// Execute runs the main `t` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("t", "t is the compiler front-end for the T language", true)

	runCmd := cli.AddSubcommand("run", "tokenize and parse a source file and print its AST", true)
	runCmd.AddPrimaryArg("path", "the source file or project directory", true)
	runCmd.AddFlag("quiet", "q", "do not echo the source before the AST")

	tokensCmd := cli.AddSubcommand("tokens", "tokenize a source file and list the tokens", true)
	tokensCmd.AddPrimaryArg("path", "the source file or project directory", true)

	cli.AddSubcommand("repl", "start an interactive parse loop", false)
	cli.AddSubcommand("version", "print the T front-end version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		internals.PrintErrorMessage("CLI Usage Error", err)
		os.Exit(1)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "run":
		execRunCommand(subResult)
	case "tokens":
		execTokensCommand(subResult)
	case "repl":
		repl.Start(os.Stdin, os.Stdout)
	case "version":
		internals.PrintInfoMessage("T Version", Version)
	}
}

// execRunCommand executes the run subcommand and handles all errors
func execRunCommand(result *olive.ArgParseResult) {
	source, path, ok := readSourceArg(result)
	if !ok {
		os.Exit(1)
	}

	if !result.HasFlag("quiet") {
		fmt.Println(source)
	}

	tokens, err := lexer.NewLexer(source).Tokenize()
	if err != nil {
		internals.PrintErrorMessage("Lex Error", err)
		os.Exit(1)
	}

	program, err := parser.NewParser(tokens).Parse()
	if err != nil {
		internals.PrintErrorMessage("Parse Error", err)
		os.Exit(1)
	}

	internals.PrintInfoMessage("Program AST", filepath.Base(path))
	ast.Dump(os.Stdout, program)
}

// execTokensCommand executes the tokens subcommand and handles all errors
func execTokensCommand(result *olive.ArgParseResult) {
	source, _, ok := readSourceArg(result)
	if !ok {
		os.Exit(1)
	}

	tokens, err := lexer.NewLexer(source).Tokenize()
	if err != nil {
		internals.PrintErrorMessage("Lex Error", err)
		os.Exit(1)
	}

	for _, tok := range tokens {
		fmt.Printf("%-26s %q\n", tok.Kind, tok.Text)
	}
}

// readSourceArg resolves the primary path argument to source text
func readSourceArg(result *olive.ArgParseResult) (source, path string, ok bool) {
	relPath, _ := result.PrimaryArg()

	path, err := filepath.Abs(relPath)
	if err != nil {
		internals.PrintErrorMessage("Path Error", err)
		return "", "", false
	}

	path, err = resolveSourcePath(path)
	if err != nil {
		internals.PrintErrorMessage("Project Load Error", err)
		return "", "", false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		internals.PrintErrorMessage("File Error", err)
		return "", "", false
	}

	return string(content), path, true
}
