package parser

import (
	"strconv"

	"tlang/ast"
	"tlang/internals"
	"tlang/lexer"
)

// Parser consumes a token list and produces a Program by recursive descent.
// It stops at the first malformed construct; there is no recovery.
type Parser struct {
	tokens []lexer.Token
	i      int
}

func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseSource is the convenience composition of tokenize and parse.
func ParseSource(source string) (*ast.Program, error) {
	tokens, err := lexer.NewLexer(source).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// Parse consumes the whole token list and returns the program.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}
	for p.notEOF() {
		stmt, err := p.parseStatement(true)
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, stmt)
	}
	return program, nil
}

func (p *Parser) peek() lexer.Token { return p.tokens[p.i] }

func (p *Parser) peekNext() lexer.Token { return p.peekTo(p.i + 1) }

func (p *Parser) peekTo(idx int) lexer.Token {
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) eat() lexer.Token {
	tk := p.tokens[p.i]
	p.i++
	return tk
}

func (p *Parser) notEOF() bool { return p.tokens[p.i].Kind != lexer.TokenEOF }

func (p *Parser) expect(kind lexer.TokenKind, err string) (lexer.Token, error) {
	tk := p.eat()
	if tk.Kind != kind {
		return tk, internals.NewParseError("unexpected token %q: %s", tk.Text, err)
	}
	return tk, nil
}

func (p *Parser) expect2(kind1, kind2 lexer.TokenKind, err string) (lexer.Token, error) {
	tk := p.eat()
	if tk.Kind != kind1 && tk.Kind != kind2 {
		return tk, internals.NewParseError("unexpected token %q: %s", tk.Text, err)
	}
	return tk, nil
}

// eatIfRefOrPtr consumes an optional '~' or '->' sigil and reports which one
// was present.
func (p *Parser) eatIfRefOrPtr() (isRef, isPtr bool) {
	switch p.peek().Kind {
	case lexer.TokenReference:
		p.eat()
		return true, false
	case lexer.TokenPointer:
		p.eat()
		return false, true
	}
	return false, false
}

func (p *Parser) eatIfMutable() bool {
	isMutable := p.peek().Kind == lexer.TokenMutable
	if isMutable {
		p.eat()
	}
	return isMutable
}

// parseStatement dispatches on the current token. Nested declarations
// (namespace, class) are rejected when allowDeclarations is unset, which is
// the case inside a braceless if body.
func (p *Parser) parseStatement(allowDeclarations bool) (ast.Statement, error) {
	switch p.peek().Kind {
	case lexer.TokenIf:
		return p.parseIfStatement()
	case lexer.TokenNamespace:
		if !allowDeclarations {
			return ast.Statement{}, internals.NewParseError("cannot create namespace inside of if statement")
		}
		return p.parseNameSpaceDeclaration()
	case lexer.TokenIdentifier:
		return p.handleIdentifier()
	case lexer.TokenPrimitiveType, lexer.TokenClassType:
		return p.handleType()
	case lexer.TokenMutable:
		return p.handleMutable()
	case lexer.TokenClass:
		if !allowDeclarations {
			return ast.Statement{}, internals.NewParseError("cannot create class inside of if statement")
		}
		return p.parseClassDefinition()
	default:
		expr, err := p.parseExpression(true)
		if err != nil {
			return ast.Statement{}, err
		}
		return ast.NewExpressionStatement(expr), nil
	}
}

func validIfCondition(e ast.Expression) bool {
	switch e.(type) {
	case *ast.BinaryExpression, *ast.BoolLiteral,
		*ast.IntegerLiteral, *ast.NegativeIntegerLiteral, *ast.FloatLiteral:
		return true
	}
	return false
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	p.eat()

	if _, err := p.expect(lexer.TokenOParen, "expected opening paren to start if statement"); err != nil {
		return ast.Statement{}, err
	}

	condition, err := p.parseExpression(false)
	if err != nil {
		return ast.Statement{}, err
	}
	if !validIfCondition(condition) {
		return ast.Statement{}, internals.NewParseError("invalid if condition")
	}

	if _, err := p.expect(lexer.TokenCParen, "expected closing paren after condition"); err != nil {
		return ast.Statement{}, err
	}

	var stmts []ast.Statement

	if p.peek().Kind == lexer.TokenOCurlyBrace {
		p.eat()
		for p.peek().Kind != lexer.TokenCCurlyBrace {
			stmt, err := p.parseStatement(true)
			if err != nil {
				return ast.Statement{}, err
			}
			stmts = append(stmts, stmt)
		}
		if _, err := p.expect(lexer.TokenCCurlyBrace, "expected closing brace of if statement body"); err != nil {
			return ast.Statement{}, err
		}
	} else {
		stmt, err := p.parseStatement(false)
		if err != nil {
			return ast.Statement{}, err
		}
		stmts = append(stmts, stmt)
	}

	return ast.NewExpressionStatement(&ast.IfStatement{Condition: condition, Body: stmts}), nil
}

func (p *Parser) parseNameSpaceDeclaration() (ast.Statement, error) {
	p.eat()

	name, err := p.expect(lexer.TokenIdentifier, "namespace must have a name")
	if err != nil {
		return ast.Statement{}, err
	}

	if _, err := p.expect(lexer.TokenOCurlyBrace, "expected opening bracket to namespace declaration"); err != nil {
		return ast.Statement{}, err
	}

	var body []ast.Statement
	for p.peek().Kind != lexer.TokenCCurlyBrace {
		stmt, err := p.parseStatement(true)
		if err != nil {
			return ast.Statement{}, err
		}
		body = append(body, stmt)
	}

	if _, err := p.expect(lexer.TokenCCurlyBrace, "expected closing bracket to end namespace declaration"); err != nil {
		return ast.Statement{}, err
	}

	return ast.NewExpressionStatement(&ast.NameSpaceDeclaration{
		Name: ast.Identifier{Symbol: name.Text},
		Body: body,
	}), nil
}

func (p *Parser) parseClassDefinition() (ast.Statement, error) {
	p.eat()

	typeTok, err := p.expect(lexer.TokenClassType, "Class type must follow class keyword")
	if err != nil {
		return ast.Statement{}, err
	}

	if _, err := p.expect(lexer.TokenOCurlyBrace, "expected opening bracket to start class definition"); err != nil {
		return ast.Statement{}, err
	}

	var fields []ast.FieldDeclaration
	var methods []ast.MethodDeclaration
	currentSpec := ast.Public

	for p.peek().Kind != lexer.TokenCCurlyBrace {
		tk := p.peek()
		idx := 0

		if tk.Kind == lexer.TokenMutable {
			idx++
			tk = p.peekNext()
		} else if tk.Kind.IsAccessSpecifier() {
			p.eat()
			switch tk.Kind {
			case lexer.TokenPublic:
				currentSpec = ast.Public
			case lexer.TokenProtected:
				currentSpec = ast.Protected
			case lexer.TokenPrivate:
				currentSpec = ast.Private
			}
			if _, err := p.expect(lexer.TokenColon, "expected colon after access specifier"); err != nil {
				return ast.Statement{}, err
			}
			continue
		}

		if tk.Kind != lexer.TokenClassType && tk.Kind != lexer.TokenPrimitiveType {
			return ast.Statement{}, internals.NewParseError("Inner class definition requires type name")
		}

		tk2 := p.peekTo(p.i + 1 + idx)
		if tk2.IsRefOrPtr() {
			idx++
			tk2 = p.peekTo(p.i + 1 + idx)
		}
		tk3 := p.peekTo(p.i + 2 + idx)
		if tk3.Kind == lexer.TokenOParen {
			fn, err := p.parseFunctionDeclaration()
			if err != nil {
				return ast.Statement{}, err
			}
			methods = append(methods, ast.MethodDeclaration{Decl: *fn, Access: currentSpec})
		} else {
			variable, err := p.parseVariableDeclaration()
			if err != nil {
				return ast.Statement{}, err
			}
			fields = append(fields, ast.FieldDeclaration{Decl: *variable, Access: currentSpec})
		}
	}

	if _, err := p.expect(lexer.TokenCCurlyBrace, "expected closing bracket to class definition"); err != nil {
		return ast.Statement{}, err
	}

	return ast.NewExpressionStatement(&ast.ClassDeclaration{
		Type:    ast.TypeName{Name: typeTok.Text},
		Fields:  fields,
		Methods: methods,
	}), nil
}

// handleType disambiguates a statement starting with a type token: an
// initialized variable declaration when the token after the identifier is
// '=', a function declaration otherwise.
func (p *Parser) handleType() (ast.Statement, error) {
	tk := p.peekNext()
	idx := 0

	if tk.IsRefOrPtr() {
		tk = p.peekTo(p.i + 2)
		idx++
	}
	if tk.Kind != lexer.TokenIdentifier {
		return ast.Statement{}, internals.NewParseError("Identifier expected after type")
	}

	tk2 := p.peekTo(p.i + 2 + idx)
	if tk2.Kind == lexer.TokenEquals {
		variable, err := p.parseVariableDeclaration()
		if err != nil {
			return ast.Statement{}, err
		}
		return ast.NewExpressionStatement(variable), nil
	}
	fn, err := p.parseFunctionDeclaration()
	if err != nil {
		return ast.Statement{}, err
	}
	return ast.NewExpressionStatement(fn), nil
}

// handleMutable disambiguates a statement starting with the mutable keyword,
// which must be followed by a type.
func (p *Parser) handleMutable() (ast.Statement, error) {
	tk := p.peekNext()
	if tk.Kind != lexer.TokenClassType && tk.Kind != lexer.TokenPrimitiveType {
		return ast.Statement{}, internals.NewParseError("expected type after 'mutable' keyword")
	}

	tk2 := p.peekTo(p.i + 2)
	idx := 0
	if tk2.IsRefOrPtr() {
		tk2 = p.peekTo(p.i + 3)
		idx++
	}
	if tk2.Kind == lexer.TokenEquals {
		expr, err := p.parseAssignmentExpression(true)
		if err != nil {
			return ast.Statement{}, err
		}
		return ast.NewExpressionStatement(expr), nil
	}
	if tk2.Kind == lexer.TokenIdentifier {
		tk3 := p.peekTo(p.i + 3 + idx).Kind
		if tk3 == lexer.TokenEquals || tk3 == lexer.TokenSemicolon {
			variable, err := p.parseVariableDeclaration()
			if err != nil {
				return ast.Statement{}, err
			}
			return ast.NewExpressionStatement(variable), nil
		}
		fn, err := p.parseFunctionDeclaration()
		if err != nil {
			return ast.Statement{}, err
		}
		return ast.NewExpressionStatement(fn), nil
	}
	return ast.Statement{}, internals.NewParseError("unknown token found")
}

func (p *Parser) handleIdentifier() (ast.Statement, error) {
	expr, err := p.parseAssignmentExpression(true)
	if err != nil {
		return ast.Statement{}, err
	}
	return ast.NewExpressionStatement(expr), nil
}

func (p *Parser) parseFunctionDeclaration() (*ast.FunctionDeclaration, error) {
	isMutable := p.eatIfMutable()

	typeTok, err := p.expect2(lexer.TokenClassType, lexer.TokenPrimitiveType, "function must have return type")
	if err != nil {
		return nil, err
	}

	isRef, isPtr := p.eatIfRefOrPtr()
	returnType, err := ast.NewTypeName(typeTok.Text, isMutable, isRef, isPtr)
	if err != nil {
		return nil, err
	}

	nameTok, err := p.expect(lexer.TokenIdentifier, "function must have name")
	if err != nil {
		return nil, err
	}
	name := ast.Identifier{Symbol: nameTok.Text}

	if _, err := p.expect(lexer.TokenOParen, "missing open paren to start parameter list"); err != nil {
		return nil, err
	}

	var params []ast.Parameter
	for p.peek().Kind == lexer.TokenClassType || p.peek().Kind == lexer.TokenPrimitiveType || p.peek().Kind == lexer.TokenMutable {
		paramMutable := p.eatIfMutable()
		paramType := p.eat()
		paramRef, paramPtr := p.eatIfRefOrPtr()

		paramName, err := p.expect(lexer.TokenIdentifier, "parameters must have a type and name")
		if err != nil {
			return nil, err
		}

		maybeComma := p.peek()
		if maybeComma.Kind == lexer.TokenComma {
			p.eat()
		} else if maybeComma.Kind != lexer.TokenCParen {
			return nil, internals.NewParseError("invalid parameter list for function %s", name.Symbol)
		}

		typeName, err := ast.NewTypeName(paramType.Text, paramMutable, paramRef, paramPtr)
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Parameter{Type: typeName, Name: ast.Identifier{Symbol: paramName.Text}})
	}

	if _, err := p.expect(lexer.TokenCParen, "missing closing paren of parameter list"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenOCurlyBrace, "missing opening bracket of function body"); err != nil {
		return nil, err
	}

	var body []ast.Statement
	for p.peek().Kind != lexer.TokenCCurlyBrace {
		if p.peek().Kind == lexer.TokenReturn {
			ret, err := p.parseReturnStatement()
			if err != nil {
				return nil, err
			}
			body = append(body, ret)
			break
		}
		stmt, err := p.parseStatement(true)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}

	if _, err := p.expect(lexer.TokenCCurlyBrace, "No matching closing bracket on function "+name.Symbol); err != nil {
		return nil, err
	}

	return &ast.FunctionDeclaration{
		ReturnType: returnType,
		Name:       name,
		Parameters: params,
		Body:       body,
	}, nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	if _, err := p.expect(lexer.TokenReturn, "expected return keyword"); err != nil {
		return ast.Statement{}, err
	}
	value, err := p.parseStatement(true)
	if err != nil {
		return ast.Statement{}, err
	}
	return ast.NewExpressionStatement(&ast.ReturnStatement{Value: value}), nil
}

func (p *Parser) parseVariableDeclaration() (*ast.VariableDeclaration, error) {
	isMutable := p.eatIfMutable()

	typeTok, err := p.expect2(lexer.TokenClassType, lexer.TokenPrimitiveType, "expected type in variable declaration")
	if err != nil {
		return nil, err
	}

	isRef, isPtr := p.eatIfRefOrPtr()
	typeName, err := ast.NewTypeName(typeTok.Text, isMutable, isRef, isPtr)
	if err != nil {
		return nil, err
	}

	nameTok, err := p.expect(lexer.TokenIdentifier, "Expected an identifier for a variable")
	if err != nil {
		return nil, err
	}

	if p.peek().Kind == lexer.TokenSemicolon {
		p.eat()
		// This branch sets the node's IsMutable to false whatever the prefix
		// was; only the TypeName keeps the mutable flag.
		return &ast.VariableDeclaration{
			IsMutable: false,
			Type:      typeName,
			Name:      ast.Identifier{Symbol: nameTok.Text},
		}, nil
	}

	if _, err := p.expect(lexer.TokenEquals, "Expected an '=' after identifier."); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(true)
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{
		IsMutable: isMutable,
		Type:      typeName,
		Name:      ast.Identifier{Symbol: nameTok.Text},
		Value:     value,
	}, nil
}

func (p *Parser) parseExpression(topCall bool) (ast.Expression, error) {
	return p.parseAssignmentExpression(topCall)
}

// parseAssignmentExpression is the lowest rung of the precedence ladder. At
// the top of a statement it also routes to a variable declaration when the
// token after the current one is a type or a ref/ptr sigil, and it consumes
// the statement's terminating semicolon.
func (p *Parser) parseAssignmentExpression(topCall bool) (ast.Expression, error) {
	if topCall {
		next := p.peekNext().Kind
		if next == lexer.TokenClassType || next == lexer.TokenPrimitiveType ||
			next == lexer.TokenReference || next == lexer.TokenPointer {
			return p.parseVariableDeclaration()
		}
	}

	left, err := p.parseBooleanExpression()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind == lexer.TokenEquals {
		p.eat()
		right, err := p.parseAssignmentExpression(false)
		if err != nil {
			return nil, err
		}
		left = &ast.AssignmentExpression{Lhs: left, Rhs: right}
	}

	if topCall {
		if _, err := p.expect(lexer.TokenSemicolon, "must end statement with semicolon"); err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parseFunctionCall(loneCall bool) (ast.Expression, error) {
	nameTok, err := p.expect(lexer.TokenIdentifier, "Expected function name")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.TokenOParen, "Function call must have open paren"); err != nil {
		return nil, err
	}

	var args []ast.Statement
	for p.peek().Kind != lexer.TokenCParen {
		arg, err := p.parseAdditiveExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, ast.NewExpressionStatement(arg))
		if p.peek().Kind == lexer.TokenComma {
			p.eat()
		}
	}

	if _, err := p.expect(lexer.TokenCParen, "Expected closing paren to end function call"); err != nil {
		return nil, err
	}

	if loneCall {
		if _, err := p.expect(lexer.TokenSemicolon, "Expected semicolon to end statement"); err != nil {
			return nil, err
		}
	}

	return &ast.FunctionCall{Name: ast.Identifier{Symbol: nameTok.Text}, Arguments: args}, nil
}

func (p *Parser) parseBooleanExpression() (ast.Expression, error) {
	left, err := p.parseAdditiveExpression()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.TokenEqualsEquals || p.peek().Kind == lexer.TokenNotEquals {
		op := p.eat().Text
		right, err := p.parseAdditiveExpression()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Lhs: left, Op: op, Rhs: right}
	}
	return left, nil
}

func (p *Parser) parseAdditiveExpression() (ast.Expression, error) {
	left, err := p.parseMultiplicativeExpression()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.TokenPlus || p.peek().Kind == lexer.TokenMinus {
		op := p.eat().Text
		right, err := p.parseMultiplicativeExpression()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Lhs: left, Op: op, Rhs: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicativeExpression() (ast.Expression, error) {
	left, err := p.parseExponentialExpression()
	if err != nil {
		return nil, err
	}

	for p.peek().IsMultParseLevel() {
		op := p.eat().Text
		right, err := p.parseExponentialExpression()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Lhs: left, Op: op, Rhs: right}
	}
	return left, nil
}

func (p *Parser) parseExponentialExpression() (ast.Expression, error) {
	left, err := p.parseDotExpression()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.TokenExponent {
		op := p.eat().Text
		right, err := p.parseDotExpression()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Lhs: left, Op: op, Rhs: right}
	}
	return left, nil
}

func (p *Parser) parseDotExpression() (ast.Expression, error) {
	left, err := p.parsePrimaryExpression()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.TokenDot {
		op := p.eat().Text
		right, err := p.parsePrimaryExpression()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Lhs: left, Op: op, Rhs: right}
	}
	return left, nil
}

func (p *Parser) parsePrimaryExpression() (ast.Expression, error) {
	switch p.peek().Kind {
	case lexer.TokenIdentifier:
		if p.peekNext().Kind == lexer.TokenOParen {
			return p.parseFunctionCall(false)
		}
		return &ast.Identifier{Symbol: p.eat().Text}, nil

	case lexer.TokenNegativeIntegerLiteral:
		// conversion mirrors atoll: malformed text yields zero
		value, _ := strconv.ParseInt(p.eat().Text, 10, 64)
		return &ast.NegativeIntegerLiteral{Value: value}, nil

	case lexer.TokenIntegerLiteral:
		value, _ := strconv.ParseUint(p.eat().Text, 10, 64)
		return &ast.IntegerLiteral{Value: value}, nil

	case lexer.TokenFloatLiteral:
		value, _ := strconv.ParseFloat(p.eat().Text, 64)
		return &ast.FloatLiteral{Value: value}, nil

	case lexer.TokenStringLiteral:
		return &ast.StringLiteral{Value: p.eat().Text}, nil

	case lexer.TokenCharLiteral:
		return &ast.CharacterLiteral{Value: p.eat().Text}, nil

	case lexer.TokenBoolLiteral:
		return &ast.BoolLiteral{Value: p.eat().Text == "true"}, nil

	case lexer.TokenOParen:
		p.eat()
		value, err := p.parseExpression(false)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenCParen, "No closing paren!"); err != nil {
			return nil, err
		}
		return value, nil

	default:
		return nil, internals.NewParseError("unexpected token %q found during parsing", p.peek().Text)
	}
}
