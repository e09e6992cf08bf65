package pyvalid

import "fmt"

// Token represents group a characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
	Line    int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal interface{}, line int) *Token {
	return &Token{typ, lexeme, literal, line}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Typ, t.Lexeme, t.Literal)
}

// TokenType is a just a wrapped string used to represent token's type
type TokenType string

const (
	// Single-character tokens
	LEFT_PAREN  TokenType = "("
	RIGHT_PAREN TokenType = ")"
	LEFT_BRACE  TokenType = "{"
	RIGHT_BRACE TokenType = "}"
	COLON       TokenType = ":"
	COMMA       TokenType = ","
	DOT         TokenType = "."
	ASSIGN      TokenType = "="
	PLUS        TokenType = "+"
	MINUS       TokenType = "-"
	TIMES       TokenType = "*"
	DIVIDE      TokenType = "/"
	MODULO      TokenType = "%"

	// Two-character tokens
	POWER TokenType = "**"

	// "==", "!=", "<=", ">=", "<", ">"
	COMPARISON TokenType = "COMPARISON"
	// "and", "or", "not"
	LOGICAL TokenType = "LOGICAL"

	// Literals
	IDENTIFIER TokenType = "IDENTIFIER"
	STRING     TokenType = "STRING"
	NUMBER     TokenType = "NUMBER"
	BOOLEAN    TokenType = "BOOLEAN"
	NONE       TokenType = "NONE"

	// Keywords
	WHILE  TokenType = "WHILE"
	DEF    TokenType = "DEF"
	CLASS  TokenType = "CLASS"
	IF     TokenType = "IF"
	ELIF   TokenType = "ELIF"
	ELSE   TokenType = "ELSE"
	FOR    TokenType = "FOR"
	IN     TokenType = "IN"
	RETURN TokenType = "RETURN"
	PASS   TokenType = "PASS"

	EOF TokenType = "EOF"
)

// keywordTokens maps reserved words to the type an identifier with the same
// lexeme is reclassified to.
var keywordTokens = map[string]TokenType{
	"while":  WHILE,
	"def":    DEF,
	"class":  CLASS,
	"if":     IF,
	"elif":   ELIF,
	"else":   ELSE,
	"for":    FOR,
	"in":     IN,
	"return": RETURN,
	"pass":   PASS,
	"True":   BOOLEAN,
	"False":  BOOLEAN,
	"None":   NONE,
	"and":    LOGICAL,
	"or":     LOGICAL,
	"not":    LOGICAL,
}

// IsKeyword reports whether the lexeme is a reserved word
func IsKeyword(lexeme string) bool {
	_, ok := keywordTokens[lexeme]
	return ok
}
