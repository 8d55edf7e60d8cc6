package ast

// Diagnostic tree dump, used by the CLI and REPL to show the parsed program.
// The format is informative only; the stable textual form is String().

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented tree rendering of the program to w.
func Dump(w io.Writer, p *Program) {
	d := dumper{w: w}
	for _, s := range p.Body {
		d.statement(s)
	}
}

// DumpString renders the program tree to a string.
func DumpString(p *Program) string {
	var out strings.Builder
	Dump(&out, p)
	return out.String()
}

type dumper struct {
	w     io.Writer
	depth int
}

func (d *dumper) line(format string, args ...any) {
	fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("   ", d.depth), fmt.Sprintf(format, args...))
}

func (d *dumper) nested(fn func()) {
	d.depth++
	fn()
	d.depth--
}

func (d *dumper) statement(s Statement) {
	switch s.Kind {
	case KindExpression:
		if s.Expr != nil {
			d.expression(s.Expr)
		}
	case KindProgram:
		if s.Prog != nil {
			for _, inner := range s.Prog.Body {
				d.statement(inner)
			}
		}
	case KindScope:
		for _, inner := range s.Scope {
			d.statement(inner)
		}
	}
}

func (d *dumper) statements(body []Statement) {
	if len(body) == 0 {
		d.nested(func() { d.line("null") })
		return
	}
	for _, s := range body {
		d.nested(func() { d.statement(s) })
	}
}

func (d *dumper) expression(e Expression) {
	switch expr := e.(type) {
	case *Identifier:
		d.line("%s", expr.Symbol)

	case *IntegerLiteral:
		d.line("Integer Numeric Literal:")
		d.nested(func() { d.line("Value: %d", expr.Value) })

	case *NegativeIntegerLiteral:
		d.line("Integer Numeric Literal:")
		d.nested(func() { d.line("Value: %d", expr.Value) })

	case *FloatLiteral:
		d.line("Floating Point Numeric Literal:")
		d.nested(func() { d.line("Value: %g", expr.Value) })

	case *StringLiteral:
		d.line("String Literal:")
		d.nested(func() { d.line("Value: %s", expr.Value) })

	case *CharacterLiteral:
		d.line("Character Literal:")
		d.nested(func() { d.line("Value: %s", expr.Value) })

	case *BoolLiteral:
		d.line("Bool Literal:")
		d.nested(func() { d.line("%t", expr.Value) })

	case *TypeName:
		d.line("%s", expr.String())

	case *BinaryExpression:
		d.line("Binary expression:")
		d.nested(func() {
			d.line("lhs:")
			d.nested(func() { d.expression(expr.Lhs) })
			d.line("operator: %s", expr.Op)
			d.line("rhs:")
			d.nested(func() { d.expression(expr.Rhs) })
		})

	case *UnaryExpression:
		d.line("Unary expression:")
		d.nested(func() {
			d.line("Expression:")
			d.nested(func() { d.expression(expr.Operand) })
			if expr.IsPrefix {
				d.line("operator: %s (pre)", expr.Op)
			} else {
				d.line("operator: %s (post)", expr.Op)
			}
		})

	case *AssignmentExpression:
		d.line("Assignment expression:")
		d.nested(func() {
			d.line("lhs:")
			d.nested(func() { d.expression(expr.Lhs) })
			d.line("rhs:")
			d.nested(func() { d.expression(expr.Rhs) })
		})

	case *VariableDeclaration:
		d.line("Variable Declaration:")
		d.nested(func() {
			d.line("Type:")
			d.nested(func() { d.line("%s", expr.Type.String()) })
			d.line("Identifier:")
			d.nested(func() { d.line("%s", expr.Name.Symbol) })
			d.line("Value:")
			if expr.Value != nil {
				d.nested(func() { d.expression(expr.Value) })
			} else {
				d.nested(func() { d.line("null") })
			}
		})

	case *Parameter:
		d.line("Parameter:")
		d.nested(func() {
			d.line("%s", expr.Type.String())
			d.line("%s", expr.Name.Symbol)
		})

	case *FunctionDeclaration:
		d.line("Function Declaration:")
		d.nested(func() { d.function(expr) })

	case *FunctionCall:
		d.line("Function Call:")
		d.nested(func() {
			d.line("Name:")
			d.nested(func() { d.line("%s", expr.Name.Symbol) })
			d.line("Parameters:")
			d.statements(expr.Arguments)
		})

	case *ReturnStatement:
		d.line("Return Statement:")
		d.nested(func() { d.statement(expr.Value) })

	case *ClassDeclaration:
		d.line("Class Definition:")
		d.nested(func() { d.line("%s", expr.Type.String()) })
		for i := range expr.Fields {
			f := &expr.Fields[i]
			d.nested(func() {
				d.line("Field Declaration: (%s)", f.Access)
				d.nested(func() {
					d.line("%s", f.Decl.Type.String())
					d.line("%s", f.Decl.Name.Symbol)
					if f.Decl.Value != nil {
						d.expression(f.Decl.Value)
					}
				})
			})
		}
		for i := range expr.Methods {
			m := &expr.Methods[i]
			d.nested(func() {
				d.line("Method Declaration: (%s)", m.Access)
				d.nested(func() { d.function(&m.Decl) })
			})
		}

	case *FieldDeclaration:
		d.line("Field Declaration: (%s)", expr.Access)
		d.nested(func() { d.expression(&expr.Decl) })

	case *MethodDeclaration:
		d.line("Method Declaration: (%s)", expr.Access)
		d.nested(func() { d.function(&expr.Decl) })

	case *NameSpaceDeclaration:
		d.line("Namespace Declaration:")
		d.nested(func() {
			d.line("Name:")
			d.nested(func() { d.line("%s", expr.Name.Symbol) })
			d.line("Body:")
			d.statements(expr.Body)
		})

	case *IfStatement:
		d.line("If Statement:")
		d.nested(func() {
			d.line("Condition:")
			d.nested(func() { d.expression(expr.Condition) })
			d.line("Body:")
			d.statements(expr.Body)
		})
	}
}

func (d *dumper) function(f *FunctionDeclaration) {
	d.line("Name:")
	d.nested(func() { d.line("%s", f.Name.Symbol) })
	d.line("Returns:")
	d.nested(func() { d.line("%s", f.ReturnType.String()) })
	d.line("Parameters:")
	if len(f.Parameters) == 0 {
		d.nested(func() { d.line("null") })
	} else {
		for i := range f.Parameters {
			d.nested(func() { d.expression(&f.Parameters[i]) })
		}
	}
	d.line("Body:")
	d.statements(f.Body)
}
