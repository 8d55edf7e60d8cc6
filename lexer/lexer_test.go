package lexer_test

import (
	"testing"

	"tlang/internals"
	"tlang/lexer"
)

func tokenize(t *testing.T, input string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.NewLexer(input).Tokenize()
	if err != nil {
		t.Fatalf("tokenize(%q) returned error: %v", input, err)
	}
	return tokens
}

func TestEOFTermination(t *testing.T) {
	inputs := []string{
		"",
		"   \t\n\r  ",
		"int32 x = 1;",
		"// just a comment",
		"class Foo { }",
	}

	for _, input := range inputs {
		tokens := tokenize(t, input)
		if len(tokens) == 0 {
			t.Fatalf("input %q produced no tokens", input)
		}
		if tokens[len(tokens)-1].Kind != lexer.TokenEOF {
			t.Errorf("input %q: last token is %v, want EOF", input, tokens[len(tokens)-1].Kind)
		}
		for _, tok := range tokens[:len(tokens)-1] {
			if tok.Kind == lexer.TokenEOF {
				t.Errorf("input %q: EOF token before the end", input)
			}
		}
	}
}

func TestOperatorDisambiguation(t *testing.T) {
	tests := []struct {
		input    string
		expected []lexer.TokenKind
	}{
		{"a = b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenEquals, lexer.TokenIdentifier}},
		{"a == b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenEqualsEquals, lexer.TokenIdentifier}},
		{"a != b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenNotEquals, lexer.TokenIdentifier}},
		{"!a", []lexer.TokenKind{lexer.TokenNot, lexer.TokenIdentifier}},
		{"a > b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenGreaterThan, lexer.TokenIdentifier}},
		{"a < b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenLessThan, lexer.TokenIdentifier}},
		{"a << b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenShiftLeft, lexer.TokenIdentifier}},
		{"a >> b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenShiftRight, lexer.TokenIdentifier}},
		{"a + b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenPlus, lexer.TokenIdentifier}},
		{"a++", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenPlusPlus}},
		{"a - b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenMinus, lexer.TokenIdentifier}},
		{"a--", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenMinusMinus}},
		{"a->b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenPointer, lexer.TokenIdentifier}},
		{"a / b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenDivide, lexer.TokenIdentifier}},
		{"a * b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenMultiply, lexer.TokenIdentifier}},
		{"a ** b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenExponent, lexer.TokenIdentifier}},
		{"a % b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenModulus, lexer.TokenIdentifier}},
		{"a & b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenAnd, lexer.TokenIdentifier}},
		{"a && b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenAndAnd, lexer.TokenIdentifier}},
		{"a | b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenOr, lexer.TokenIdentifier}},
		{"a || b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenOrOr, lexer.TokenIdentifier}},
		{"a.b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenDot, lexer.TokenIdentifier}},
		{"a::b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenColonColon, lexer.TokenIdentifier}},
		{"a: b", []lexer.TokenKind{lexer.TokenIdentifier, lexer.TokenColon, lexer.TokenIdentifier}},
		{"~a", []lexer.TokenKind{lexer.TokenReference, lexer.TokenIdentifier}},
		{"(a, b);", []lexer.TokenKind{lexer.TokenOParen, lexer.TokenIdentifier, lexer.TokenComma, lexer.TokenIdentifier, lexer.TokenCParen, lexer.TokenSemicolon}},
		{"{ }", []lexer.TokenKind{lexer.TokenOCurlyBrace, lexer.TokenCCurlyBrace}},
	}

	for _, tt := range tests {
		tokens := tokenize(t, tt.input)
		if len(tokens) != len(tt.expected)+1 {
			t.Errorf("input %q: got %d tokens, want %d", tt.input, len(tokens)-1, len(tt.expected))
			continue
		}
		for i, kind := range tt.expected {
			if tokens[i].Kind != kind {
				t.Errorf("input %q: token %d is %v, want %v", tt.input, i, tokens[i].Kind, kind)
			}
		}
	}
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected []lexer.Token
	}{
		{"42", []lexer.Token{{Kind: lexer.TokenIntegerLiteral, Text: "42"}}},
		{"3.14", []lexer.Token{{Kind: lexer.TokenFloatLiteral, Text: "3.14"}}},
		{".5", []lexer.Token{{Kind: lexer.TokenFloatLiteral, Text: ".5"}}},
		// a sign prefix is only valid after '=', '(', ',' or a binary operator
		{
			"x = -3;",
			[]lexer.Token{
				{Kind: lexer.TokenIdentifier, Text: "x"},
				{Kind: lexer.TokenEquals, Text: "="},
				{Kind: lexer.TokenNegativeIntegerLiteral, Text: "-3"},
				{Kind: lexer.TokenSemicolon, Text: ";"},
			},
		},
		{
			"(-3)",
			[]lexer.Token{
				{Kind: lexer.TokenOParen, Text: "("},
				{Kind: lexer.TokenNegativeIntegerLiteral, Text: "-3"},
				{Kind: lexer.TokenCParen, Text: ")"},
			},
		},
		{
			"f(1, -2)",
			[]lexer.Token{
				{Kind: lexer.TokenIdentifier, Text: "f"},
				{Kind: lexer.TokenOParen, Text: "("},
				{Kind: lexer.TokenIntegerLiteral, Text: "1"},
				{Kind: lexer.TokenComma, Text: ","},
				{Kind: lexer.TokenNegativeIntegerLiteral, Text: "-2"},
				{Kind: lexer.TokenCParen, Text: ")"},
			},
		},
		{
			"1 + -2",
			[]lexer.Token{
				{Kind: lexer.TokenIntegerLiteral, Text: "1"},
				{Kind: lexer.TokenPlus, Text: "+"},
				{Kind: lexer.TokenNegativeIntegerLiteral, Text: "-2"},
			},
		},
		{
			"x - 3",
			[]lexer.Token{
				{Kind: lexer.TokenIdentifier, Text: "x"},
				{Kind: lexer.TokenMinus, Text: "-"},
				{Kind: lexer.TokenIntegerLiteral, Text: "3"},
			},
		},
		{
			"x = -1.5;",
			[]lexer.Token{
				{Kind: lexer.TokenIdentifier, Text: "x"},
				{Kind: lexer.TokenEquals, Text: "="},
				{Kind: lexer.TokenFloatLiteral, Text: "-1.5"},
				{Kind: lexer.TokenSemicolon, Text: ";"},
			},
		},
	}

	for _, tt := range tests {
		tokens := tokenize(t, tt.input)
		if len(tokens) != len(tt.expected)+1 {
			t.Errorf("input %q: got %d tokens, want %d", tt.input, len(tokens)-1, len(tt.expected))
			continue
		}
		for i, want := range tt.expected {
			if tokens[i] != want {
				t.Errorf("input %q: token %d is %v %q, want %v %q",
					tt.input, i, tokens[i].Kind, tokens[i].Text, want.Kind, want.Text)
			}
		}
	}
}

func TestComments(t *testing.T) {
	tokens := tokenize(t, "a // the rest is skipped + - * /\nb")
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}
	if tokens[0].Text != "a" || tokens[1].Text != "b" {
		t.Errorf("unexpected tokens %v", tokens)
	}

	tokens = tokenize(t, "// only a comment")
	if len(tokens) != 1 || tokens[0].Kind != lexer.TokenEOF {
		t.Errorf("comment-only input should lex to just EOF, got %v", tokens)
	}
}

func TestStringLiterals(t *testing.T) {
	tokens := tokenize(t, `"hi"`)
	if tokens[0].Kind != lexer.TokenStringLiteral || tokens[0].Text != "hi" {
		t.Errorf("got %v %q", tokens[0].Kind, tokens[0].Text)
	}

	tokens = tokenize(t, `""`)
	if tokens[0].Kind != lexer.TokenStringLiteral || tokens[0].Text != "" {
		t.Errorf("empty string literal: got %v %q", tokens[0].Kind, tokens[0].Text)
	}

	for _, input := range []string{"\"broken\nstring\"", `"unterminated`} {
		_, err := lexer.NewLexer(input).Tokenize()
		if err == nil {
			t.Errorf("input %q should fail to lex", input)
			continue
		}
		if _, ok := err.(*internals.LexError); !ok {
			t.Errorf("input %q: error is %T, want *internals.LexError", input, err)
		}
	}
}

func TestCharLiterals(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"'a'", "a"},
		{`'\n'`, `\n`},
	}

	for _, tt := range tests {
		tokens := tokenize(t, tt.input)
		if tokens[0].Kind != lexer.TokenCharLiteral || tokens[0].Text != tt.text {
			t.Errorf("input %q: got %v %q, want char_literal %q",
				tt.input, tokens[0].Kind, tokens[0].Text, tt.text)
		}
	}
}

func TestIdentifierClassification(t *testing.T) {
	tests := []struct {
		input    string
		expected lexer.TokenKind
	}{
		{"true", lexer.TokenBoolLiteral},
		{"false", lexer.TokenBoolLiteral},
		{"class", lexer.TokenClass},
		{"public", lexer.TokenPublic},
		{"private", lexer.TokenPrivate},
		{"protected", lexer.TokenProtected},
		{"mutable", lexer.TokenMutable},
		{"cast", lexer.TokenCast},
		{"constexpr", lexer.TokenConstexpr},
		{"return", lexer.TokenReturn},
		{"for", lexer.TokenFor},
		{"while", lexer.TokenWhile},
		{"in", lexer.TokenIn},
		{"if", lexer.TokenIf},
		{"null", lexer.TokenNull},
		{"namespace", lexer.TokenNamespace},
		{"auto", lexer.TokenPrimitiveType},
		{"int8", lexer.TokenPrimitiveType},
		{"int64", lexer.TokenPrimitiveType},
		{"uint32", lexer.TokenPrimitiveType},
		{"double", lexer.TokenPrimitiveType},
		{"void", lexer.TokenPrimitiveType},
		{"String", lexer.TokenClassType},
		{"whatever", lexer.TokenIdentifier},
		{"_leading", lexer.TokenIdentifier},
		{"x2", lexer.TokenIdentifier},
	}

	for _, tt := range tests {
		tokens := tokenize(t, tt.input)
		if tokens[0].Kind != tt.expected {
			t.Errorf("input %q: got %v, want %v", tt.input, tokens[0].Kind, tt.expected)
		}
		if tokens[0].Text != tt.input {
			t.Errorf("input %q: text is %q", tt.input, tokens[0].Text)
		}
	}
}

func TestClassNamePromotion(t *testing.T) {
	tokens := tokenize(t, "class Foo { } Foo x = 2;")

	expected := []lexer.TokenKind{
		lexer.TokenClass, lexer.TokenClassType, lexer.TokenOCurlyBrace, lexer.TokenCCurlyBrace,
		lexer.TokenClassType, lexer.TokenIdentifier, lexer.TokenEquals,
		lexer.TokenIntegerLiteral, lexer.TokenSemicolon, lexer.TokenEOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(expected))
	}
	for i, kind := range expected {
		if tokens[i].Kind != kind {
			t.Errorf("token %d is %v, want %v", i, tokens[i].Kind, kind)
		}
	}
}

func TestClassNamesDoNotLeakBetweenLexers(t *testing.T) {
	if _, err := lexer.NewLexer("class Foo { }").Tokenize(); err != nil {
		t.Fatal(err)
	}

	tokens := tokenize(t, "Foo")
	if tokens[0].Kind != lexer.TokenIdentifier {
		t.Errorf("fresh lexer classifies Foo as %v, want Identifier", tokens[0].Kind)
	}
}

func TestUnrecognizedCharacter(t *testing.T) {
	for _, input := range []string{"@", "a # b", "$x"} {
		_, err := lexer.NewLexer(input).Tokenize()
		if err == nil {
			t.Errorf("input %q should fail to lex", input)
			continue
		}
		if _, ok := err.(*internals.LexError); !ok {
			t.Errorf("input %q: error is %T, want *internals.LexError", input, err)
		}
	}
}
