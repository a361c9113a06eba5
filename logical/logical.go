// Package logical defines the filter expression tree handed down by the
// query planner. The tree is read-only; the pushdown translator walks it and
// either produces a native predicate or reports the filter as not pushable.
package logical

// Expr is a node of the planner's filter tree. The set of implementations is
// closed; translation switches over all of them.
type Expr interface {
	isExpr()
}

type IsNull struct {
	Column string
}

type IsNotNull struct {
	Column string
}

type EqualTo struct {
	Column string
	Value  interface{}
}

// EqualNullSafe is the planner's null-safe equality. By the time a filter
// reaches the storage layer the planner has already rewritten null
// comparisons into IsNull, so it is handled the same as EqualTo.
type EqualNullSafe struct {
	Column string
	Value  interface{}
}

type LessThan struct {
	Column string
	Value  interface{}
}

type LessThanOrEqual struct {
	Column string
	Value  interface{}
}

type GreaterThan struct {
	Column string
	Value  interface{}
}

type GreaterThanOrEqual struct {
	Column string
	Value  interface{}
}

type In struct {
	Column string
	Values []interface{}
}

type And struct {
	Left  Expr
	Right Expr
}

type Or struct {
	Left  Expr
	Right Expr
}

type Not struct {
	Child Expr
}

func (IsNull) isExpr()             {}
func (IsNotNull) isExpr()          {}
func (EqualTo) isExpr()            {}
func (EqualNullSafe) isExpr()      {}
func (LessThan) isExpr()           {}
func (LessThanOrEqual) isExpr()    {}
func (GreaterThan) isExpr()        {}
func (GreaterThanOrEqual) isExpr() {}
func (In) isExpr()                 {}
func (And) isExpr()                {}
func (Or) isExpr()                 {}
func (Not) isExpr()                {}
