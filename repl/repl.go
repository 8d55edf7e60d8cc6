package repl

import (
	"bufio"
	"io"

	"tlang/ast"
	"tlang/internals"
	"tlang/lexer"
	"tlang/parser"

	"github.com/pterm/pterm"
)

const PROMPT = `>>>`

// Start reads lines from in and parses each one as a standalone program,
// dumping the resulting AST to out. A fresh lexer per line keeps class-name
// state from leaking between inputs.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		pterm.FgCyan.Print(PROMPT)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		tokens, err := lexer.NewLexer(line).Tokenize()
		if err != nil {
			internals.PrintErrorMessage("Lex Error", err)
			continue
		}

		program, err := parser.NewParser(tokens).Parse()
		if err != nil {
			internals.PrintErrorMessage("Parse Error", err)
			continue
		}

		ast.Dump(out, program)
	}
}
