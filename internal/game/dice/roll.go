// Package dice provides the randomness abstraction used by the arena and the
// stat rolls built on it, such as the base enemy's speed.
package dice

import (
	"fmt"
	"strings"
)

// Source is the randomness provider for every draw the game makes: enemy
// coin flips, enemy spell elements and rolled stats.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Coin reports heads with probability one half.
func Coin(src Source) bool {
	return src.Intn(2) == 0
}

// Pick returns a uniformly drawn element of items.
//
// Precondition: len(items) > 0.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// RollResult is one evaluation of an Expression.
//
// Invariant: len(Dice) == Expr.Count and each die is in [1, Expr.Sides].
type RollResult struct {
	Expr Expression
	Dice []int
}

// Modifier returns the flat modifier of the rolled expression.
func (r RollResult) Modifier() int { return r.Expr.Modifier }

// Total returns the dice sum plus the modifier.
func (r RollResult) Total() int {
	total := r.Expr.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String renders the roll as "1d10+4: 7+4 = 11".
func (r RollResult) String() string {
	parts := make([]string, len(r.Dice))
	for i, d := range r.Dice {
		parts[i] = fmt.Sprint(d)
	}
	s := r.Expr.Raw + ": " + strings.Join(parts, "+")
	if m := r.Expr.Modifier; m != 0 {
		s += fmt.Sprintf("%+d", m)
	}
	return fmt.Sprintf("%s = %d", s, r.Total())
}

// Roll evaluates expr with src.
//
// Precondition: expr must come from Parse; src must be non-nil.
func Roll(expr Expression, src Source) RollResult {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}
	return RollResult{Expr: expr, Dice: rolled}
}

// RollExpr parses and rolls expr.
func RollExpr(expr string, src Source) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(e, src), nil
}
