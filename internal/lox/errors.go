package lox

import "fmt"

// ScanError is a lexical error found while scanning. These are recoverable,
// the scanner reports them and keeps going.
type ScanError struct {
	line    int
	message string
}

// NewScanError creates a new lexical error for the given line
func NewScanError(line int, message string) error {
	return &ScanError{line, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf(
		"[line %d] Error: %s",
		err.line,
		err.message,
	)
}

// ParseError is a syntax error raised by the parser. The first one is fatal
// to the parse call.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new syntax error at the given token
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf(
			"[line %d] Error at end: %s",
			err.token.Line,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.token.Line,
		err.token.Lexeme,
		err.message,
	)
}

// RuntimeError wraps the error message returned by the interpreter with the
// token that triggered the error.
type RuntimeError struct {
	token   *Token
	message string
}

// NewRuntimeError creates a new runtime error at the given token
func NewRuntimeError(token *Token, message string) error {
	return &RuntimeError{token, message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf(
		"[line %d] Error: %s",
		err.token.Line,
		err.message,
	)
}
