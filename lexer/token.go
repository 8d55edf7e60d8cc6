package lexer

type TokenKind uint8

// The declaration order is load-bearing: every kind from TokenEquals through
// TokenColonColon is a binary operator and the unary operators sit directly
// after them, so the operator predicates below are plain range checks.
const (
	// Binary operators
	TokenEquals       TokenKind = iota // =
	TokenEqualsEquals                  // ==
	TokenNotEquals                     // !=
	TokenGreaterThan                   // >
	TokenLessThan                      // <
	TokenShiftLeft                     // <<
	TokenShiftRight                    // >>
	TokenPlus                          // +
	TokenMinus                         // -
	TokenDivide                        // /
	TokenMultiply                      // *
	TokenExponent                      // **
	TokenModulus                       // %
	TokenAnd                           // &
	TokenAndAnd                        // &&
	TokenOr                            // |
	TokenOrOr                          // ||
	TokenDot                           // .
	TokenColonColon                    // ::

	// Unary operators
	TokenMinusMinus // --
	TokenNot        // !
	TokenPlusPlus   // ++

	// Sigils
	TokenPointer   // ->
	TokenReference // ~

	// Literals
	TokenStringLiteral
	TokenCharLiteral
	TokenBoolLiteral

	TokenSemicolon
	TokenColon
	TokenComma

	TokenIntegerLiteral
	TokenNegativeIntegerLiteral
	TokenFloatLiteral

	TokenIdentifier

	// Keywords
	TokenFor
	TokenWhile
	TokenPublic
	TokenPrivate
	TokenProtected
	TokenCast
	TokenReturn
	TokenNull
	TokenIn
	TokenIf
	TokenConstexpr
	TokenNamespace

	TokenOParen      // (
	TokenCParen      // )
	TokenOCurlyBrace // {
	TokenCCurlyBrace // }

	TokenMutable
	TokenClass

	TokenClassType
	TokenPrimitiveType

	TokenEOF
)

var tokenKindNames = map[TokenKind]string{
	TokenEquals:                 "Equals",
	TokenEqualsEquals:           "EqualsEquals",
	TokenNotEquals:              "NotEquals",
	TokenGreaterThan:            "GreaterThan",
	TokenLessThan:               "LessThan",
	TokenShiftLeft:              "ShiftLeft",
	TokenShiftRight:             "ShiftRight",
	TokenPlus:                   "Plus",
	TokenMinus:                  "Minus",
	TokenDivide:                 "Divide",
	TokenMultiply:               "Multiply",
	TokenExponent:               "Exponent",
	TokenModulus:                "Modulus",
	TokenAnd:                    "AND",
	TokenAndAnd:                 "ANDAND",
	TokenOr:                     "OR",
	TokenOrOr:                   "OROR",
	TokenDot:                    "Dot",
	TokenColonColon:             "ColonColon",
	TokenMinusMinus:             "MinusMinus",
	TokenNot:                    "Not",
	TokenPlusPlus:               "PlusPlus",
	TokenPointer:                "Pointer",
	TokenReference:              "Reference",
	TokenStringLiteral:          "string_literal",
	TokenCharLiteral:            "char_literal",
	TokenBoolLiteral:            "bool_literal",
	TokenSemicolon:              "Semicolon",
	TokenColon:                  "Colon",
	TokenComma:                  "Comma",
	TokenIntegerLiteral:         "integer_literal",
	TokenNegativeIntegerLiteral: "negative_integer_literal",
	TokenFloatLiteral:           "float_literal",
	TokenIdentifier:             "Identifier",
	TokenFor:                    "for",
	TokenWhile:                  "while",
	TokenPublic:                 "public",
	TokenPrivate:                "private",
	TokenProtected:              "protected",
	TokenCast:                   "cast",
	TokenReturn:                 "return",
	TokenNull:                   "null",
	TokenIn:                     "in",
	TokenIf:                     "if",
	TokenConstexpr:              "constexpr",
	TokenNamespace:              "namespace",
	TokenOParen:                 "OParen",
	TokenCParen:                 "CParen",
	TokenOCurlyBrace:            "OCurlyBrace",
	TokenCCurlyBrace:            "CCurlyBrace",
	TokenMutable:                "mutable",
	TokenClass:                  "class",
	TokenClassType:              "ClassType",
	TokenPrimitiveType:          "PrimitiveType",
	TokenEOF:                    "EOF",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k TokenKind) IsBinaryOperator() bool {
	return k >= TokenEquals && k <= TokenColonColon
}

func (k TokenKind) IsUnaryOperator() bool {
	return k >= TokenMinusMinus && k <= TokenPlusPlus
}

func (k TokenKind) IsAccessSpecifier() bool {
	return k == TokenPublic || k == TokenPrivate || k == TokenProtected
}

// Token is a lexical unit: its kind and the literal (or canonical) spelling
// from the source.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) IsMultParseLevel() bool {
	return t.Kind == TokenMultiply || t.Kind == TokenDivide || t.Kind == TokenModulus
}

func (t Token) IsRefOrPtr() bool {
	return t.Kind == TokenReference || t.Kind == TokenPointer
}

func (t Token) IsBooleanOperator() bool {
	return t.Kind == TokenEqualsEquals || t.Kind == TokenNotEquals
}

func (t Token) IsDefaultType() bool {
	return DefaultTypes[t.Text]
}
