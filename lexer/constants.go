package lexer

var (
	Keywords = map[string]TokenKind{
		// Class words
		"class":     TokenClass,
		"private":   TokenPrivate,
		"public":    TokenPublic,
		"protected": TokenProtected,
		// Generic
		"mutable":   TokenMutable,
		"cast":      TokenCast,
		"constexpr": TokenConstexpr,
		"return":    TokenReturn,
		"for":       TokenFor,
		"while":     TokenWhile,
		"in":        TokenIn,
		"if":        TokenIf,
		"null":      TokenNull,
		"namespace": TokenNamespace,
	}

	// DefaultTypes are the built-in type names. All of them lex as
	// PrimitiveType except String, which is a class type.
	DefaultTypes = map[string]bool{
		"auto":   true,
		"char":   true,
		"int8":   true,
		"int16":  true,
		"int32":  true,
		"int64":  true,
		"uint8":  true,
		"uint16": true,
		"uint32": true,
		"uint64": true,
		"float":  true,
		"double": true,
		"bool":   true,
		"String": true,
		"void":   true,
	}
)
