package pyvalid

import "fmt"

// LexicalWarning is reported when the scanner meets a character that does not
// start any token. The character is dropped and scanning continues.
type LexicalWarning struct {
	Line int
	Char rune
}

func newLexicalWarning(line int, char rune) error {
	return &LexicalWarning{line, char}
}

func (err *LexicalWarning) Error() string {
	return fmt.Sprintf(
		"[line %d] Warning: Unexpected character '%c'.",
		err.Line,
		err.Char,
	)
}

// SyntaxError wraps the message returned by the parser with information on
// where the error occured. Near holds the lexeme of the offending token and is
// empty when the input ended before the production was complete.
type SyntaxError struct {
	Message string
	Line    int
	Near    string
}

func newSyntaxError(token *Token, message string) error {
	if token.Typ == EOF {
		return &SyntaxError{message, token.Line, ""}
	}
	return &SyntaxError{message, token.Line, token.Lexeme}
}

// AtEnd reports whether the input was exhausted when the error occured.
func (err *SyntaxError) AtEnd() bool {
	return err.Near == ""
}

func (err *SyntaxError) Error() string {
	if err.AtEnd() {
		return fmt.Sprintf(
			"[line %d] Error at end: %s",
			err.Line,
			err.Message,
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.Line,
		err.Near,
		err.Message,
	)
}
