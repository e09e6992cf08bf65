package pyvalid

import "fmt"

// Parser composes the syntax tree from a sequence of tokens that follow the
// grammar described in the package documentation. Parsing stops at the first
// token that does not fit, there is no error recovery.
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parser over the given tokens. The tokens are
// expected to end with an EOF token, one is added when they do not.
func NewParser(tokens []*Token) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Typ != EOF {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], NewToken(EOF, "", nil, line))
	}
	return &Parser{0, tokens}
}

// Parse builds the syntax tree for the given tokens.
func Parse(tokens []*Token) (*ProgramNode, error) {
	return NewParser(tokens).Parse()
}

// ParseSource scans and parses the given source. Lexical warnings go to the
// reporter, which may be nil.
func ParseSource(source string, reporter Reporter) (*ProgramNode, error) {
	return Parse(Tokenize(source, reporter))
}

// program --> statement* EOF ;
func (parser *Parser) Parse() (*ProgramNode, error) {
	parser.current = 0
	body := make([]Node, 0)
	for !parser.isEOF() {
		stmt, err := parser.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return NewProgramNode(body), nil
}

// statement    --> compoundStmt | simpleStmt ;
// compoundStmt --> ifStmt | whileStmt | forStmt | functionDef | classDef ;
func (parser *Parser) statement() (Node, error) {
	if parser.match(IF) {
		return parser.ifStmt()
	}
	if parser.match(WHILE) {
		return parser.whileStmt()
	}
	if parser.match(FOR) {
		return parser.forStmt()
	}
	if parser.match(DEF) {
		return parser.functionDef()
	}
	if parser.match(CLASS) {
		return parser.classDef()
	}
	return parser.simpleStmt()
}

// simpleStmt --> assignment | returnStmt | passStmt | expr ;
func (parser *Parser) simpleStmt() (Node, error) {
	if parser.match(RETURN) {
		return parser.returnStmt()
	}
	if parser.match(PASS) {
		return NewPassNode(parser.prev()), nil
	}
	if parser.check(IDENTIFIER) && parser.checkNext(ASSIGN) {
		return parser.assignment()
	}
	return parser.expr()
}

// suite --> "{" statement+ "}" | simpleStmt ;
func (parser *Parser) suite() ([]Node, error) {
	if !parser.match(LEFT_BRACE) {
		stmt, err := parser.simpleStmt()
		if err != nil {
			return nil, err
		}
		return []Node{stmt}, nil
	}

	if parser.check(RIGHT_BRACE) {
		return nil, newSyntaxError(parser.peek(), "Expect statement in block.")
	}
	stmts := make([]Node, 0)
	for !parser.check(RIGHT_BRACE) && !parser.isEOF() {
		stmt, err := parser.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := parser.consume(RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

// ifStmt --> "if" test ":" suite elseBlock? ;
func (parser *Parser) ifStmt() (Node, error) {
	test, body, err := parser.conditional("if")
	if err != nil {
		return nil, err
	}
	elseBlock, err := parser.elseBlock()
	if err != nil {
		return nil, err
	}
	return NewIfNode(test, body, elseBlock), nil
}

// Every "elif" and "else" binds to the closest "if" since the chain is
// consumed right after the suite it follows.
//
// elseBlock --> "else" ":" suite
//             | "elif" test ":" suite elseBlock? ;
func (parser *Parser) elseBlock() (Node, error) {
	if parser.match(ELSE) {
		if _, err := parser.consume(COLON, "Expect ':' after 'else'."); err != nil {
			return nil, err
		}
		body, err := parser.suite()
		if err != nil {
			return nil, err
		}
		return NewElseNode(body), nil
	}
	if parser.match(ELIF) {
		test, body, err := parser.conditional("elif")
		if err != nil {
			return nil, err
		}
		elseBlock, err := parser.elseBlock()
		if err != nil {
			return nil, err
		}
		return NewElifNode(test, body, elseBlock), nil
	}
	return nil, nil
}

// whileStmt --> "while" test ":" suite ;
func (parser *Parser) whileStmt() (Node, error) {
	test, body, err := parser.conditional("while")
	if err != nil {
		return nil, err
	}
	return NewWhileNode(test, body), nil
}

// conditional parses the `test ":" suite` tail shared by "if", "elif" and
// "while".
func (parser *Parser) conditional(keyword string) (Node, []Node, error) {
	test, err := parser.test()
	if err != nil {
		return nil, nil, err
	}
	if _, err := parser.consume(
		COLON,
		fmt.Sprintf("Expect ':' after %s condition.", keyword),
	); err != nil {
		return nil, nil, err
	}
	body, err := parser.suite()
	if err != nil {
		return nil, nil, err
	}
	return test, body, nil
}

// forStmt --> "for" IDENT "in" expr ":" suite ;
func (parser *Parser) forStmt() (Node, error) {
	target, err := parser.consume(IDENTIFIER, "Expect loop variable after 'for'.")
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(IN, "Expect 'in' after loop variable."); err != nil {
		return nil, err
	}
	iter, err := parser.expr()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(COLON, "Expect ':' after loop iterable."); err != nil {
		return nil, err
	}
	body, err := parser.suite()
	if err != nil {
		return nil, err
	}
	return NewForNode(target, iter, body), nil
}

// functionDef --> "def" IDENT "(" params? ")" ":" suite ;
func (parser *Parser) functionDef() (Node, error) {
	name, err := parser.consume(IDENTIFIER, "Expect function name.")
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after function name."); err != nil {
		return nil, err
	}
	params, err := parser.params()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := parser.consume(COLON, "Expect ':' after function signature."); err != nil {
		return nil, err
	}
	body, err := parser.suite()
	if err != nil {
		return nil, err
	}
	return NewFunctionDefNode(name, params, body), nil
}

// classDef --> "class" IDENT ( "(" params? ")" )? ":" suite ;
func (parser *Parser) classDef() (Node, error) {
	name, err := parser.consume(IDENTIFIER, "Expect class name.")
	if err != nil {
		return nil, err
	}
	var bases []*Token
	if parser.match(LEFT_PAREN) {
		if bases, err = parser.params(); err != nil {
			return nil, err
		}
		if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after base classes."); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(COLON, "Expect ':' after class name."); err != nil {
		return nil, err
	}
	body, err := parser.suite()
	if err != nil {
		return nil, err
	}
	return NewClassDefNode(name, bases, body), nil
}

// params --> IDENT ( "," IDENT )* ;
//
// The list may be empty, the caller decides what closes it.
func (parser *Parser) params() ([]*Token, error) {
	params := make([]*Token, 0)
	if parser.check(RIGHT_PAREN) {
		return params, nil
	}
	for {
		param, err := parser.consume(IDENTIFIER, "Expect parameter name.")
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !parser.match(COMMA) {
			return params, nil
		}
	}
}

// assignment --> IDENT "=" expr ;
func (parser *Parser) assignment() (Node, error) {
	target := parser.advance()
	parser.advance()
	value, err := parser.expr()
	if err != nil {
		return nil, err
	}
	return NewAssignNode(target, value), nil
}

// returnStmt --> "return" expr? ;
func (parser *Parser) returnStmt() (Node, error) {
	keyword := parser.prev()
	if !startsExpr(parser.peek().Typ) {
		return NewReturnNode(keyword, nil), nil
	}
	value, err := parser.expr()
	if err != nil {
		return nil, err
	}
	return NewReturnNode(keyword, value), nil
}

// A test applies a single comparison or logical operator, chains are
// rejected by the caller expecting ':' next.
//
// test --> expr ( ( COMPARISON | LOGICAL ) expr )? ;
func (parser *Parser) test() (Node, error) {
	expr, err := parser.expr()
	if err != nil {
		return nil, err
	}
	if parser.match(COMPARISON, LOGICAL) {
		op := parser.prev()
		right, err := parser.expr()
		if err != nil {
			return nil, err
		}
		return NewBinaryOpNode(op, expr, right), nil
	}
	return expr, nil
}

// Creates a left-associative nested tree of binary operator nodes. Match a
// higher precedence rule `term` if does not hits "-" or "+".
//
// expr --> term ( ( "-" | "+" ) term )* ;
func (parser *Parser) expr() (Node, error) {
	expr, err := parser.term()
	if err != nil {
		return nil, err
	}
	for parser.match(MINUS, PLUS) {
		op := parser.prev()
		right, err := parser.term()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryOpNode(op, expr, right)
	}
	return expr, nil
}

// term --> factor ( ( "*" | "/" | "%" ) factor )* ;
func (parser *Parser) term() (Node, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}
	for parser.match(TIMES, DIVIDE, MODULO) {
		op := parser.prev()
		right, err := parser.factor()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryOpNode(op, expr, right)
	}
	return expr, nil
}

// factor --> ( "-" | "+" ) factor
//          | power ;
func (parser *Parser) factor() (Node, error) {
	if parser.match(MINUS, PLUS) {
		op := parser.prev()
		operand, err := parser.factor()
		if err != nil {
			return nil, err
		}
		return NewUnaryOpNode(op, operand), nil
	}
	return parser.power()
}

// The right operand goes back up to `factor`, which makes "**" right
// associative and allows "a ** -b".
//
// power --> atom ( "**" factor )? ;
func (parser *Parser) power() (Node, error) {
	expr, err := parser.atom()
	if err != nil {
		return nil, err
	}
	if parser.match(POWER) {
		op := parser.prev()
		right, err := parser.factor()
		if err != nil {
			return nil, err
		}
		return NewBinaryOpNode(op, expr, right), nil
	}
	return expr, nil
}

// atom --> primary ( "." IDENT )* ;
func (parser *Parser) atom() (Node, error) {
	expr, err := parser.primary()
	if err != nil {
		return nil, err
	}
	for parser.match(DOT) {
		name, err := parser.consume(IDENTIFIER, "Expect attribute name after '.'.")
		if err != nil {
			return nil, err
		}
		expr = NewAttributeNode(expr, name)
	}
	return expr, nil
}

// primary --> IDENT | NUMBER | STRING | "True" | "False" | "None"
//           | "(" expr ")" ;
func (parser *Parser) primary() (Node, error) {
	if parser.match(IDENTIFIER, NUMBER, STRING, BOOLEAN, NONE) {
		return NewAtomNode(parser.prev()), nil
	}
	if parser.match(LEFT_PAREN) {
		expr, err := parser.expr()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, newSyntaxError(parser.peek(), "Expect expression.")
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) (*Token, error) {
	if parser.check(typ) {
		return parser.advance(), nil
	}
	return nil, newSyntaxError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) checkNext(tt TokenType) bool {
	if parser.isEOF() || parser.current+1 >= len(parser.tokens) {
		return false
	}
	return parser.tokens[parser.current+1].Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}

func startsExpr(tt TokenType) bool {
	switch tt {
	case IDENTIFIER, NUMBER, STRING, BOOLEAN, NONE, LEFT_PAREN, MINUS, PLUS:
		return true
	}
	return false
}
