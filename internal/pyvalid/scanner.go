package pyvalid

import (
	"math/big"
	"strconv"
)

// Scanner reads the input source and collects all the tokens that can be
// found. Characters that do not start a token are reported and skipped, so
// scanning always runs to the end of the source.
type Scanner struct {
	line     int
	start    int
	current  int
	source   []rune
	tokens   []*Token
	reporter Reporter
}

// NewScanner creates a new token scanner. A nil reporter drops every warning.
func NewScanner(source []rune, reporter Reporter) *Scanner {
	if reporter == nil {
		reporter = nopReporter{}
	}
	scanner := new(Scanner)
	scanner.line = 1
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	scanner.reporter = reporter
	return scanner
}

// Tokenize scans the given source and returns its tokens, terminated by a
// single EOF token.
func Tokenize(source string, reporter Reporter) []*Token {
	return NewScanner([]rune(source), reporter).Scan()
}

// Scan reads the source and collect all the tokens that were found from the
// source
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.line++
		case '#':
			// keep the '\n' so line counting stays in one place
			for scanner.peek() != '\n' && scanner.hasNext() {
				scanner.advance()
			}
		// Single character tokens
		case '(':
			scanner.addToken(LEFT_PAREN, nil)
		case ')':
			scanner.addToken(RIGHT_PAREN, nil)
		case '{':
			scanner.addToken(LEFT_BRACE, nil)
		case '}':
			scanner.addToken(RIGHT_BRACE, nil)
		case ':':
			scanner.addToken(COLON, nil)
		case ',':
			scanner.addToken(COMMA, nil)
		case '.':
			scanner.addToken(DOT, nil)
		case '+':
			scanner.addToken(PLUS, nil)
		case '-':
			scanner.addToken(MINUS, nil)
		case '/':
			scanner.addToken(DIVIDE, nil)
		case '%':
			scanner.addToken(MODULO, nil)
		// Double character tokens
		case '*':
			if scanner.match('*') {
				scanner.addToken(POWER, nil)
			} else {
				scanner.addToken(TIMES, nil)
			}
		case '=':
			if scanner.match('=') {
				scanner.addToken(COMPARISON, nil)
			} else {
				scanner.addToken(ASSIGN, nil)
			}
		case '!':
			if scanner.match('=') {
				scanner.addToken(COMPARISON, nil)
			} else {
				scanner.reporter.Report(newLexicalWarning(scanner.line, r))
			}
		case '<', '>':
			scanner.match('=')
			scanner.addToken(COMPARISON, nil)
		// Literals
		case '"', '\'':
			scanner.scanString(r)
		default:
			if isDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.reporter.Report(newLexicalWarning(scanner.line, r))
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", nil, scanner.line),
	)
	return scanner.tokens
}

// scanString reads a literal closed by the given quote on the same line.
// Escape sequences are kept as written. When the literal is not terminated,
// only the opening quote is rejected and scanning restarts right after it.
func (scanner *Scanner) scanString(quote rune) {
	for scanner.hasNext() && scanner.peek() != quote && scanner.peek() != '\n' {
		if scanner.advance() == '\\' {
			if !scanner.hasNext() || scanner.peek() == '\n' {
				break
			}
			scanner.advance()
		}
	}

	if scanner.peek() != quote {
		scanner.current = scanner.start + 1
		scanner.reporter.Report(newLexicalWarning(scanner.line, quote))
		return
	}

	// consume the closing quote
	scanner.advance()
	literal := string(scanner.source[scanner.start+1 : scanner.current-1])
	scanner.addToken(STRING, literal)
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
		lexeme := string(scanner.source[scanner.start:scanner.current])
		// NOTE: the error is ignored since the lexeme has already been
		// verified to be a valid floating point number.
		literal, _ := strconv.ParseFloat(lexeme, 64)
		scanner.addToken(NUMBER, literal)
		return
	}

	lexeme := string(scanner.source[scanner.start:scanner.current])
	if literal, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
		scanner.addToken(NUMBER, literal)
		return
	}
	// only a range error is possible here
	literal, _ := new(big.Int).SetString(lexeme, 10)
	scanner.addToken(NUMBER, literal)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tokenType, isKeyword := keywordTokens[lexeme]
	if !isKeyword {
		scanner.addToken(IDENTIFIER, nil)
		return
	}
	switch tokenType {
	case BOOLEAN:
		scanner.addToken(tokenType, lexeme == "True")
	default:
		scanner.addToken(tokenType, nil)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type and carries the given literal
func (scanner *Scanner) addToken(typ TokenType, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, literal, scanner.line)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possible
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

// Identifiers and numbers are restricted to ASCII.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBeginIdent(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isAlphanumeric(r rune) bool {
	return isBeginIdent(r) || isDigit(r)
}
