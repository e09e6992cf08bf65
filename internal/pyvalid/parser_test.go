package pyvalid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func op(typ TokenType, lexeme string) *Token {
	return NewToken(typ, lexeme, nil, 1)
}

func parseOne(t *testing.T, src string) Node {
	t.Helper()
	program, err := ParseSource(src, nil)
	require.NoError(t, err, src)
	require.Len(t, program.Body, 1, src)
	return program.Body[0]
}

func TestParsePrimary(t *testing.T) {
	testCases := []struct {
		toks []*Token
		node Node
	}{
		{[]*Token{
			NewToken(NUMBER, "3.14", 3.14, 1),
			tokEOF(1),
		},
			NewAtomNode(NewToken(NUMBER, "3.14", 3.14, 1))},

		{[]*Token{
			NewToken(STRING, "\"a string\"", "a string", 1),
			tokEOF(1),
		},
			NewAtomNode(NewToken(STRING, "\"a string\"", "a string", 1))},

		{[]*Token{
			NewToken(BOOLEAN, "True", true, 1),
			tokEOF(1),
		},
			NewAtomNode(NewToken(BOOLEAN, "True", true, 1))},

		{[]*Token{
			NewToken(NONE, "None", nil, 1),
			tokEOF(1),
		},
			NewAtomNode(NewToken(NONE, "None", nil, 1))},

		// parentheses only group, they leave no node behind
		{[]*Token{
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(NUMBER, "3", int64(3), 1),
			NewToken(RIGHT_PAREN, ")", nil, 1),
			tokEOF(1),
		},
			NewAtomNode(NewToken(NUMBER, "3", int64(3), 1))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		program, err := NewParser(tc.toks).Parse()

		assert.NoError(err)
		assert.Equal(NewProgramNode([]Node{tc.node}), program)
	}
}

func TestParseWithoutTrailingEOF(t *testing.T) {
	toks := []*Token{tokIdent("a", 3)}

	program, err := Parse(toks)
	require.NoError(t, err)
	assert.Equal(t, NewProgramNode([]Node{NewAtomNode(tokIdent("a", 3))}), program)
	// the caller's slice is left alone
	assert.Len(t, toks, 1)

	program, err = Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, program.Body)
}

func TestParsePrecedence(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(
		NewBinaryOpNode(
			op(PLUS, "+"),
			atom("a"),
			NewBinaryOpNode(op(TIMES, "*"), atom("b"), atom("c")),
		),
		parseOne(t, "a + b * c"),
	)
	assert.Equal(
		NewBinaryOpNode(
			op(POWER, "**"),
			atom("a"),
			NewBinaryOpNode(op(POWER, "**"), atom("b"), atom("c")),
		),
		parseOne(t, "a ** b ** c"),
	)
	assert.Equal(
		NewUnaryOpNode(
			op(MINUS, "-"),
			NewBinaryOpNode(op(POWER, "**"), atom("a"), atom("b")),
		),
		parseOne(t, "-a ** b"),
	)
	assert.Equal(
		NewAttributeNode(
			NewAttributeNode(atom("a"), tokIdent("b", 1)),
			tokIdent("c", 1),
		),
		parseOne(t, "a.b.c"),
	)
}

func TestParseExpressions(t *testing.T) {
	testCases := []struct {
		src  string
		want string
	}{
		{"a - b - c", "(- (- a b) c)"},
		{"a / b * c % d", "(% (* (/ a b) c) d)"},
		{"a - b * c + d", "(+ (- a (* b c)) d)"},
		{"(a - b) * c", "(* (- a b) c)"},
		{"a ** -b", "(** a (- b))"},
		{"a ** -b ** c", "(** a (- (** b c)))"},
		{"-a * b", "(* (- a) b)"},
		{"- - a", "(- (- a))"},
		{"+a - -b", "(- (+ a) (- b))"},
		{"2 ** 3 ** 2", "(** 2 (** 3 2))"},
		{"a.b ** c.d", "(** (. a b) (. c d))"},
		{"(a + b).c", "(. (+ a b) c)"},
		{"x.y.z * 2.5", "(* (. (. x y) z) 2.5)"},
		{"'s' + \"t\"", "(+ 's' \"t\")"},
		{"True % None", "(% True None)"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, sexp(parseOne(t, tc.src)), tc.src)
	}
}

func TestParseStatements(t *testing.T) {
	testCases := []struct {
		src  string
		want string
	}{
		{"x = 1", "(= x 1)"},
		{"x = y = 1", ""},
		{"return", "(return)"},
		{"return a + 1", "(return (+ a 1))"},
		{"pass", "pass"},
		{"while x < 10: x = x + 1", "(while (< x 10) ((= x (+ x 1))))"},
		{"while a and b: { pass pass }", "(while (and a b) (pass pass))"},
		{"for i in items: total = total + i", "(for i items ((= total (+ total i))))"},
		{"for i in a.b: { pass }", "(for i (. a b) (pass))"},
		{"def f(): { pass }", "(def f () (pass))"},
		{"def add(a, b): return a + b", "(def add (a b) ((return (+ a b))))"},
		{"class A: pass", "(class A (pass))"},
		{"class A(): pass", "(class A () (pass))"},
		{"class A(B, C): { x = 1 def m(self): return self.x }", "(class A (B C) ((= x 1) (def m (self) ((return (. self x))))))"},
		{"if a: pass", "(if a (pass))"},
		{"if a != b: pass else: return", "(if (!= a b) (pass) (else ((return))))"},
		{"if a: pass elif b: pass elif c: pass", "(if a (pass) (elif b (pass) (elif c (pass))))"},
		{"if not x: pass", ""},
		{"if x: { if y: { pass } else: { pass } }", "(if x ((if y (pass) (else (pass)))))"},
	}

	for _, tc := range testCases {
		program, err := ParseSource(tc.src, nil)
		if tc.want == "" {
			assert.Error(t, err, tc.src)
			continue
		}
		require.NoError(t, err, tc.src)
		assert.Equal(t, tc.want, sexp(program), tc.src)
	}
}

func TestParseElifElseChain(t *testing.T) {
	node := parseOne(t, "if a: { pass } elif b: { pass } else: { pass }")

	ifNode, ok := node.(*IfNode)
	require.True(t, ok)
	assert.Equal(t, atom("a"), ifNode.Test)
	require.Len(t, ifNode.Body, 1)
	assert.IsType(t, &PassNode{}, ifNode.Body[0])

	elifNode, ok := ifNode.Else.(*ElifNode)
	require.True(t, ok)
	assert.Equal(t, atom("b"), elifNode.Test)

	elseNode, ok := elifNode.Else.(*ElseNode)
	require.True(t, ok)
	assert.Equal(t, []Node{NewPassNode(op(PASS, "pass"))}, elseNode.Body)
}

func TestParseDanglingElse(t *testing.T) {
	// the inner "if" is closed by its braces, so the "else" belongs to the
	// outer one
	node := parseOne(t, "if a: { if b: pass } else: pass")
	assert.Equal(t, "(if a ((if b (pass))) (else (pass)))", sexp(node))

	// without braces the "else" follows the nearest "if"
	node = parseOne(t, "if a: { if b: pass else: pass }")
	assert.Equal(t, "(if a ((if b (pass) (else (pass)))))", sexp(node))
}

func TestParseDefinitions(t *testing.T) {
	assert := assert.New(t)

	fn, ok := parseOne(t, "def f(): { pass }").(*FunctionDefNode)
	require.True(t, ok)
	assert.Equal(tokIdent("f", 1), fn.Name)
	assert.NotNil(fn.Params)
	assert.Empty(fn.Params)

	fn, ok = parseOne(t, "def f(a, b, c): pass").(*FunctionDefNode)
	require.True(t, ok)
	assert.Equal([]*Token{tokIdent("a", 1), tokIdent("b", 1), tokIdent("c", 1)}, fn.Params)

	class, ok := parseOne(t, "class A: pass").(*ClassDefNode)
	require.True(t, ok)
	assert.Nil(class.Bases)

	class, ok = parseOne(t, "class A(): pass").(*ClassDefNode)
	require.True(t, ok)
	assert.NotNil(class.Bases)
	assert.Empty(class.Bases)
}

func TestParseAssignment(t *testing.T) {
	assert.Equal(
		t,
		NewAssignNode(
			tokIdent("x", 1),
			NewBinaryOpNode(
				op(MINUS, "-"),
				NewAtomNode(NewToken(NUMBER, "1", int64(1), 1)),
				NewAtomNode(NewToken(NUMBER, "2", int64(2), 1)),
			),
		),
		parseOne(t, "x = 1 - 2"),
	)
}

func TestParseProgramStatementCount(t *testing.T) {
	testCases := []struct {
		src   string
		count int
	}{
		{"", 0},
		{"# nothing here\n\n", 0},
		{"a", 1},
		{"a b c", 3},
		{"x = 1\ny = 2\nprint(x)", 4},
		{"x = 1 - 2 y = -3", 2},
		{"def f(a): { if a: return a else: return } f(1)", 3},
		{"class A: { pass }\nclass B(A): { pass }\nwhile x: { x = x - 1 }", 3},
		{"return return", 2},
	}

	for _, tc := range testCases {
		program, err := ParseSource(tc.src, nil)
		require.NoError(t, err, tc.src)
		assert.Len(t, program.Body, tc.count, tc.src)
	}
}

func TestParseOrderIsPreserved(t *testing.T) {
	program, err := ParseSource("a = 1 b = 2 c = 3", nil)
	require.NoError(t, err)
	require.Len(t, program.Body, 3)

	for i, name := range []string{"a", "b", "c"} {
		assign, ok := program.Body[i].(*AssignNode)
		require.True(t, ok)
		assert.Equal(t, name, assign.Target.Lexeme)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		src string
		err *SyntaxError
	}{
		{"if a pass", &SyntaxError{"Expect ':' after if condition.", 1, "pass"}},
		{"if a:", &SyntaxError{"Expect expression.", 1, ""}},
		{"if a: {}", &SyntaxError{"Expect statement in block.", 1, "}"}},
		{"if a: { pass", &SyntaxError{"Expect '}' after block.", 1, ""}},
		{"if a: if b: pass", &SyntaxError{"Expect expression.", 1, "if"}},
		{"if a == b == c: pass", &SyntaxError{"Expect ':' after if condition.", 1, "=="}},
		{"if a and b or c: pass", &SyntaxError{"Expect ':' after if condition.", 1, "or"}},
		{"while x\n{ pass }", &SyntaxError{"Expect ':' after while condition.", 2, "{"}},
		{"if a: pass elif b pass", &SyntaxError{"Expect ':' after elif condition.", 1, "pass"}},
		{"if a: pass else pass", &SyntaxError{"Expect ':' after 'else'.", 1, "pass"}},
		{"else: pass", &SyntaxError{"Expect expression.", 1, "else"}},
		{"for 1 in x: pass", &SyntaxError{"Expect loop variable after 'for'.", 1, "1"}},
		{"for a.b in x: pass", &SyntaxError{"Expect 'in' after loop variable.", 1, "."}},
		{"for i in x pass", &SyntaxError{"Expect ':' after loop iterable.", 1, "pass"}},
		{"def if(): pass", &SyntaxError{"Expect function name.", 1, "if"}},
		{"def f: pass", &SyntaxError{"Expect '(' after function name.", 1, ":"}},
		{"def f(a,): pass", &SyntaxError{"Expect parameter name.", 1, ")"}},
		{"def f(a b): pass", &SyntaxError{"Expect ')' after parameters.", 1, "b"}},
		{"def f(a = 1): pass", &SyntaxError{"Expect ')' after parameters.", 1, "="}},
		{"def f() pass", &SyntaxError{"Expect ':' after function signature.", 1, "pass"}},
		{"class None: pass", &SyntaxError{"Expect class name.", 1, "None"}},
		{"class A(B.C): pass", &SyntaxError{"Expect ')' after base classes.", 1, "."}},
		{"class A pass", &SyntaxError{"Expect ':' after class name.", 1, "pass"}},
		{"a.1", &SyntaxError{"Expect attribute name after '.'.", 1, "1"}},
		{"(a + b", &SyntaxError{"Expect ')' after expression.", 1, ""}},
		{"a +\n\n* b", &SyntaxError{"Expect expression.", 3, "*"}},
		{"x = a == b", &SyntaxError{"Expect expression.", 1, "=="}},
		{"a.b = 1", &SyntaxError{"Expect expression.", 1, "="}},
		{"a ** ", &SyntaxError{"Expect expression.", 1, ""}},
		{"'str' = 1", &SyntaxError{"Expect expression.", 1, "="}},
	}

	for _, tc := range testCases {
		program, err := ParseSource(tc.src, nil)
		assert.Nil(t, program, tc.src)

		var syntaxErr *SyntaxError
		if assert.True(t, errors.As(err, &syntaxErr), tc.src) {
			assert.Equal(t, tc.err, syntaxErr, tc.src)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseSource("if a pass", nil)
	require.Error(t, err)
	assert.Equal(t, "[line 1] Error at 'pass': Expect ':' after if condition.", err.Error())

	_, err = ParseSource("x =\n", nil)
	require.Error(t, err)
	assert.Equal(t, "[line 2] Error at end: Expect expression.", err.Error())
	assert.True(t, err.(*SyntaxError).AtEnd())
}

func TestParseSourceReportsWarnings(t *testing.T) {
	report := newMockReporter()
	program, err := ParseSource("a $ b", report)

	require.NoError(t, err)
	assert.True(t, report.HadError())
	assert.Equal(t, []error{&LexicalWarning{1, '$'}}, report.errors)
	assert.Equal(t, NewProgramNode([]Node{atom("a"), atom("b")}), program)
}

func TestParserIsReusable(t *testing.T) {
	parser := NewParser(Tokenize("a = 1 b", nil))

	first, err := parser.Parse()
	require.NoError(t, err)
	second, err := parser.Parse()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
