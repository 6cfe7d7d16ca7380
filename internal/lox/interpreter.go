package lox

import (
	"fmt"
	"io"
)

// Interpreter evaluates the given Lox syntax tree by walking it in
// post-order. This struct implements ExprVisitor. Evaluation stops at the
// first runtime error, which is reported with the line of the operator that
// triggered it.
type Interpreter struct {
	expr     Expr
	reporter Reporter
}

// NewInterpreter creates a new interpreter for the given syntax tree
func NewInterpreter(expr Expr, reporter Reporter) *Interpreter {
	return &Interpreter{expr, reporter}
}

// Interpret evaluates the held expression and writes the stringified result
// to the given output. Errors go to the reporter instead, nothing is written
// on failure.
func (in *Interpreter) Interpret(output io.Writer) {
	val, err := in.eval(in.expr)
	if err != nil {
		in.reporter.Report(err)
		return
	}
	fmt.Fprintln(output, stringify(val))
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case COMMA:
		// the left operand was evaluated for effect only
		return rhs, nil

	case BANG_EQUAL:
		return lhs != rhs, nil

	case EQUAL_EQUAL:
		// interface equality requires matching dynamic types, so values of
		// different kinds are never equal and no coercion happens
		return lhs == rhs, nil

	case GREATER:
		leftNum, okLeftNum := lhs.(float64)
		rightNum, okRightNum := rhs.(float64)
		if okLeftNum && okRightNum {
			return leftNum > rightNum, nil
		}
		return nil, NewRuntimeError(expr.Op, "Operand must be numbers.")

	case GREATER_EQUAL:
		leftNum, okLeftNum := lhs.(float64)
		rightNum, okRightNum := rhs.(float64)
		if okLeftNum && okRightNum {
			return leftNum >= rightNum, nil
		}
		return nil, NewRuntimeError(expr.Op, "Operand must be numbers.")

	case LESS:
		leftNum, okLeftNum := lhs.(float64)
		rightNum, okRightNum := rhs.(float64)
		if okLeftNum && okRightNum {
			return leftNum < rightNum, nil
		}
		return nil, NewRuntimeError(expr.Op, "Operand must be numbers.")

	case LESS_EQUAL:
		leftNum, okLeftNum := lhs.(float64)
		rightNum, okRightNum := rhs.(float64)
		if okLeftNum && okRightNum {
			return leftNum <= rightNum, nil
		}
		return nil, NewRuntimeError(expr.Op, "Operand must be numbers.")

	case MINUS:
		leftNum, okLeftNum := lhs.(float64)
		rightNum, okRightNum := rhs.(float64)
		if okLeftNum && okRightNum {
			return leftNum - rightNum, nil
		}
		return nil, NewRuntimeError(expr.Op, "Operand must be numbers.")

	case PLUS:
		leftStr, okLeftStr := lhs.(string)
		rightStr, okRightStr := rhs.(string)
		if okLeftStr && okRightStr {
			return leftStr + rightStr, nil
		}
		leftNum, okLeftNum := lhs.(float64)
		rightNum, okRightNum := rhs.(float64)
		if okLeftNum && okRightNum {
			return leftNum + rightNum, nil
		}
		return nil, NewRuntimeError(expr.Op, "Operands must be two numbers or two strings.")

	case SLASH:
		leftNum, okLeftNum := lhs.(float64)
		rightNum, okRightNum := rhs.(float64)
		if okLeftNum && okRightNum {
			if rightNum == 0 {
				return nil, NewRuntimeError(expr.Op, "Division by zero.")
			}
			return leftNum / rightNum, nil
		}
		return nil, NewRuntimeError(expr.Op, "Operand must be numbers.")

	case STAR:
		leftNum, okLeftNum := lhs.(float64)
		rightNum, okRightNum := rhs.(float64)
		if okLeftNum && okRightNum {
			return leftNum * rightNum, nil
		}
		return nil, NewRuntimeError(expr.Op, "Operand must be numbers.")
	}
	panic("Unreachable")
}

func (in *Interpreter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return in.eval(expr.Expression)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Value, nil
}

func (in *Interpreter) VisitTernaryExpr(expr *TernaryExpr) (interface{}, error) {
	cond, err := in.eval(expr.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return in.eval(expr.Then)
	}
	return in.eval(expr.Else)
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	exprVal, err := in.eval(expr.Expression)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		return !isTruthy(exprVal), nil
	case MINUS:
		if exprNum, ok := exprVal.(float64); ok {
			return -exprNum, nil
		}
		return nil, NewRuntimeError(expr.Op, "Operand must be a number.")
	}
	panic("Unreachable")
}

func (in *Interpreter) eval(expr Expr) (interface{}, error) {
	return expr.Accept(in)
}
