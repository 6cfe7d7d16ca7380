package lox

// Expr is a node in the expression syntax tree. A node is built once by the
// parser and never mutated afterwards.
type Expr interface {
	Accept(visitor ExprVisitor) (interface{}, error)
}

// ExprVisitor is implemented by every structure that walks the syntax tree.
type ExprVisitor interface {
	VisitBinaryExpr(expr *BinaryExpr) (interface{}, error)
	VisitGroupingExpr(expr *GroupingExpr) (interface{}, error)
	VisitLiteralExpr(expr *LiteralExpr) (interface{}, error)
	VisitTernaryExpr(expr *TernaryExpr) (interface{}, error)
	VisitUnaryExpr(expr *UnaryExpr) (interface{}, error)
}

type BinaryExpr struct {
	Op    *Token
	Left  Expr
	Right Expr
}

func NewBinaryExpr(op *Token, left Expr, right Expr) *BinaryExpr {
	return &BinaryExpr{op, left, right}
}

func (expr *BinaryExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitBinaryExpr(expr)
}

type GroupingExpr struct {
	Expression Expr
}

func NewGroupingExpr(expression Expr) *GroupingExpr {
	return &GroupingExpr{expression}
}

func (expr *GroupingExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitGroupingExpr(expr)
}

type LiteralExpr struct {
	Value interface{}
}

func NewLiteralExpr(value interface{}) *LiteralExpr {
	return &LiteralExpr{value}
}

func (expr *LiteralExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitLiteralExpr(expr)
}

type TernaryExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

func NewTernaryExpr(cond Expr, then Expr, els Expr) *TernaryExpr {
	return &TernaryExpr{cond, then, els}
}

func (expr *TernaryExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitTernaryExpr(expr)
}

type UnaryExpr struct {
	Op         *Token
	Expression Expr
}

func NewUnaryExpr(op *Token, expression Expr) *UnaryExpr {
	return &UnaryExpr{op, expression}
}

func (expr *UnaryExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitUnaryExpr(expr)
}
