package expression

// Expr is a parsed expression node. The union is closed: the only
// implementations are *LiteralExpr and *BinaryExpr, so an evaluator can
// switch over both and treat anything else as unreachable.
type Expr interface {
	// Token returns the token used to locate this node in error reports.
	Token() Token

	expr()
}

// LiteralExpr holds a signed integer literal.
type LiteralExpr struct {
	Value int64
	Tok   Token
}

func (e *LiteralExpr) Token() Token { return e.Tok }
func (e *LiteralExpr) expr()        {}

// BinaryExpr applies an infix operator to two sub-expressions. Op.Kind is
// always one of Plus, Minus, Less, Greater, Equal, NotEqual.
type BinaryExpr struct {
	Op    Token
	Left  Expr
	Right Expr
}

func (e *BinaryExpr) Token() Token { return e.Op }
func (e *BinaryExpr) expr()        {}
