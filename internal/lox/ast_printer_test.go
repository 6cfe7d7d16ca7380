package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinterPrint(t *testing.T) {
	testCases := []struct {
		expr Expr
		str  string
	}{
		{NewLiteralExpr(3.14), "3.14"},
		{NewLiteralExpr("a string"), "a string"},
		{NewLiteralExpr(nil), "nil"},

		// -123 * (45.67)
		{
			NewBinaryExpr(
				NewToken(STAR, "*", nil, 1),
				NewUnaryExpr(
					NewToken(MINUS, "-", nil, 1),
					NewLiteralExpr(123.0)),
				NewGroupingExpr(NewLiteralExpr(45.67))),
			"(* (- 123) (group 45.67))",
		},

		{
			NewTernaryExpr(
				NewLiteralExpr(true),
				NewLiteralExpr(1.0),
				NewLiteralExpr(2.0)),
			"(ternary true 1 2)",
		},

		{
			NewBinaryExpr(
				NewToken(COMMA, ",", nil, 1),
				NewLiteralExpr(1.0),
				NewLiteralExpr(2.0)),
			"(, 1 2)",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		printer := &AstPrinter{}
		assert.Equal(tc.str, printer.Print(tc.expr))
	}
}
