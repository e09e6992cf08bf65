package pyvalid

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"gopkg.in/yaml.v3"
)

// Output formats understood by Encode.
const (
	FormatSexp = "sexp"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// IsFormat reports whether Encode can write the named format.
func IsFormat(format string) bool {
	switch format {
	case FormatSexp, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Encode writes the tree rooted at node to w in the given format.
func Encode(w io.Writer, node Node, format string) error {
	switch format {
	case FormatSexp:
		printer := AstPrinter{}
		_, err := fmt.Fprintln(w, printer.Print(node))
		return err
	case FormatJSON:
		tree, err := Dump(node)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	case FormatYAML:
		tree, err := Dump(node)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}

// Dump converts the tree rooted at node into nested maps and slices. Every
// node becomes a map with a "type" key naming its kind.
func Dump(node Node) (map[string]interface{}, error) {
	v, err := node.Accept(&treeDumper{})
	if err != nil {
		return nil, err
	}
	return v.(map[string]interface{}), nil
}

// treeDumper implements NodeVisitor
type treeDumper struct{}

func (d *treeDumper) VisitProgramNode(node *ProgramNode) (interface{}, error) {
	body, err := d.body(node.Body)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"type": "program", "body": body}, nil
}

func (d *treeDumper) VisitIfNode(node *IfNode) (interface{}, error) {
	return d.branch("if", node.Test, node.Body, node.Else)
}

func (d *treeDumper) VisitElifNode(node *ElifNode) (interface{}, error) {
	return d.branch("elif", node.Test, node.Body, node.Else)
}

func (d *treeDumper) VisitElseNode(node *ElseNode) (interface{}, error) {
	body, err := d.body(node.Body)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"type": "else", "body": body}, nil
}

func (d *treeDumper) VisitWhileNode(node *WhileNode) (interface{}, error) {
	test, err := node.Test.Accept(d)
	if err != nil {
		return nil, err
	}
	body, err := d.body(node.Body)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"type": "while", "test": test, "body": body}, nil
}

func (d *treeDumper) VisitForNode(node *ForNode) (interface{}, error) {
	iter, err := node.Iter.Accept(d)
	if err != nil {
		return nil, err
	}
	body, err := d.body(node.Body)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"type":   "for",
		"target": node.Target.Lexeme,
		"iter":   iter,
		"body":   body,
	}, nil
}

func (d *treeDumper) VisitFunctionDefNode(node *FunctionDefNode) (interface{}, error) {
	body, err := d.body(node.Body)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"type":   "function",
		"name":   node.Name.Lexeme,
		"params": lexemes(node.Params),
		"body":   body,
	}, nil
}

func (d *treeDumper) VisitClassDefNode(node *ClassDefNode) (interface{}, error) {
	body, err := d.body(node.Body)
	if err != nil {
		return nil, err
	}
	m := map[string]interface{}{
		"type": "class",
		"name": node.Name.Lexeme,
		"body": body,
	}
	if node.Bases != nil {
		m["bases"] = lexemes(node.Bases)
	}
	return m, nil
}

func (d *treeDumper) VisitAssignNode(node *AssignNode) (interface{}, error) {
	value, err := node.Value.Accept(d)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"type":   "assign",
		"target": node.Target.Lexeme,
		"value":  value,
	}, nil
}

func (d *treeDumper) VisitReturnNode(node *ReturnNode) (interface{}, error) {
	var value interface{}
	if node.Value != nil {
		var err error
		if value, err = node.Value.Accept(d); err != nil {
			return nil, err
		}
	}
	return map[string]interface{}{"type": "return", "value": value}, nil
}

func (d *treeDumper) VisitPassNode(node *PassNode) (interface{}, error) {
	return map[string]interface{}{"type": "pass"}, nil
}

func (d *treeDumper) VisitBinaryOpNode(node *BinaryOpNode) (interface{}, error) {
	left, err := node.Left.Accept(d)
	if err != nil {
		return nil, err
	}
	right, err := node.Right.Accept(d)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"type":  "operation",
		"op":    node.Op.Lexeme,
		"left":  left,
		"right": right,
	}, nil
}

func (d *treeDumper) VisitUnaryOpNode(node *UnaryOpNode) (interface{}, error) {
	operand, err := node.Operand.Accept(d)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"type":    "unary",
		"op":      node.Op.Lexeme,
		"operand": operand,
	}, nil
}

func (d *treeDumper) VisitAtomNode(node *AtomNode) (interface{}, error) {
	var value interface{}
	switch lit := node.Value.Literal.(type) {
	case nil:
		if node.Value.Typ == IDENTIFIER {
			value = node.Value.Lexeme
		}
	case *big.Int:
		value = lit.String()
	default:
		value = lit
	}
	return map[string]interface{}{"type": "atom", "value": value}, nil
}

func (d *treeDumper) VisitAttributeNode(node *AttributeNode) (interface{}, error) {
	object, err := node.Object.Accept(d)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"type":   "attribute",
		"object": object,
		"attr":   node.Attr.Lexeme,
	}, nil
}

func (d *treeDumper) branch(typ string, test Node, body []Node, elseBlock Node) (interface{}, error) {
	testVal, err := test.Accept(d)
	if err != nil {
		return nil, err
	}
	bodyVal, err := d.body(body)
	if err != nil {
		return nil, err
	}
	m := map[string]interface{}{"type": typ, "test": testVal, "body": bodyVal}
	if elseBlock != nil {
		if m["else"], err = elseBlock.Accept(d); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (d *treeDumper) body(stmts []Node) ([]interface{}, error) {
	out := make([]interface{}, 0, len(stmts))
	for _, stmt := range stmts {
		v, err := stmt.Accept(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func lexemes(tokens []*Token) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Lexeme)
	}
	return out
}
