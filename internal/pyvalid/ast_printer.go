package pyvalid

import (
	"fmt"
	"strings"
)

// AstPrinter renders a syntax tree in a parenthesized prefix form, e.g.
// "a + b * c" becomes "(+ a (* b c))". Top-level statements of a program are
// printed one per line.
type AstPrinter struct{}

func (printer *AstPrinter) Print(node Node) string {
	s, _ := node.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitProgramNode(node *ProgramNode) (interface{}, error) {
	lines := make([]string, 0, len(node.Body))
	for _, stmt := range node.Body {
		lines = append(lines, printer.Print(stmt))
	}
	return strings.Join(lines, "\n"), nil
}

func (printer *AstPrinter) VisitIfNode(node *IfNode) (interface{}, error) {
	return printer.branch("if", node.Test, node.Body, node.Else), nil
}

func (printer *AstPrinter) VisitElifNode(node *ElifNode) (interface{}, error) {
	return printer.branch("elif", node.Test, node.Body, node.Else), nil
}

func (printer *AstPrinter) VisitElseNode(node *ElseNode) (interface{}, error) {
	return fmt.Sprintf("(else %s)", printer.body(node.Body)), nil
}

func (printer *AstPrinter) VisitWhileNode(node *WhileNode) (interface{}, error) {
	return fmt.Sprintf(
		"(while %s %s)",
		printer.Print(node.Test),
		printer.body(node.Body),
	), nil
}

func (printer *AstPrinter) VisitForNode(node *ForNode) (interface{}, error) {
	return fmt.Sprintf(
		"(for %s %s %s)",
		node.Target.Lexeme,
		printer.Print(node.Iter),
		printer.body(node.Body),
	), nil
}

func (printer *AstPrinter) VisitFunctionDefNode(node *FunctionDefNode) (interface{}, error) {
	return fmt.Sprintf(
		"(def %s %s %s)",
		node.Name.Lexeme,
		names(node.Params),
		printer.body(node.Body),
	), nil
}

func (printer *AstPrinter) VisitClassDefNode(node *ClassDefNode) (interface{}, error) {
	if node.Bases == nil {
		return fmt.Sprintf("(class %s %s)", node.Name.Lexeme, printer.body(node.Body)), nil
	}
	return fmt.Sprintf(
		"(class %s %s %s)",
		node.Name.Lexeme,
		names(node.Bases),
		printer.body(node.Body),
	), nil
}

func (printer *AstPrinter) VisitAssignNode(node *AssignNode) (interface{}, error) {
	return fmt.Sprintf("(= %s %s)", node.Target.Lexeme, printer.Print(node.Value)), nil
}

func (printer *AstPrinter) VisitReturnNode(node *ReturnNode) (interface{}, error) {
	if node.Value == nil {
		return "(return)", nil
	}
	return fmt.Sprintf("(return %s)", printer.Print(node.Value)), nil
}

func (printer *AstPrinter) VisitPassNode(node *PassNode) (interface{}, error) {
	return "pass", nil
}

func (printer *AstPrinter) VisitBinaryOpNode(node *BinaryOpNode) (interface{}, error) {
	return fmt.Sprintf(
		"(%s %s %s)",
		node.Op.Lexeme,
		printer.Print(node.Left),
		printer.Print(node.Right),
	), nil
}

func (printer *AstPrinter) VisitUnaryOpNode(node *UnaryOpNode) (interface{}, error) {
	return fmt.Sprintf("(%s %s)", node.Op.Lexeme, printer.Print(node.Operand)), nil
}

func (printer *AstPrinter) VisitAtomNode(node *AtomNode) (interface{}, error) {
	return node.Value.Lexeme, nil
}

func (printer *AstPrinter) VisitAttributeNode(node *AttributeNode) (interface{}, error) {
	return fmt.Sprintf("(. %s %s)", printer.Print(node.Object), node.Attr.Lexeme), nil
}

func (printer *AstPrinter) branch(keyword string, test Node, body []Node, elseBlock Node) string {
	if elseBlock == nil {
		return fmt.Sprintf("(%s %s %s)", keyword, printer.Print(test), printer.body(body))
	}
	return fmt.Sprintf(
		"(%s %s %s %s)",
		keyword,
		printer.Print(test),
		printer.body(body),
		printer.Print(elseBlock),
	)
}

func (printer *AstPrinter) body(stmts []Node) string {
	parts := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		parts = append(parts, printer.Print(stmt))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func names(tokens []*Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.Lexeme)
	}
	return "(" + strings.Join(parts, " ") + ")"
}
