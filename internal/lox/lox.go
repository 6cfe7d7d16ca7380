package lox

import (
	"fmt"
	"io"
	"strconv"
	"unicode"
)

// Run feeds the source through the whole pipeline. Tokens are scanned even
// when lexical errors occur, but parsing results are discarded once the
// reporter saw any scan or parse error. The evaluation result is written to
// output, every diagnostic goes through the reporter.
func Run(source string, output io.Writer, reporter Reporter) {
	scanner := NewScanner([]rune(source), reporter)
	tokens := scanner.Scan()
	parser := NewParser(tokens, reporter)
	expr := parser.Parse()
	if reporter.HadError() {
		return
	}
	interpreter := NewInterpreter(expr, reporter)
	interpreter.Interpret(output)
}

// stringify renders a runtime value the way the REPL displays it. Numbers
// drop the trailing zeros kept by the default float formatting.
func stringify(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// isTruthy coerces a runtime value to a boolean. Only nil and false are
// falsy, everything else, including 0 and "", is truthy.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if v, ok := value.(bool); ok {
		return v
	}
	return true
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
