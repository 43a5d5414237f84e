// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "math/big"

// This file generalizes the teacher's Satcount (hoperations.go), which
// answers one question - how many satisfying assignments does a node have -
// into a single recursive traversal parameterized by an Algebra: fold
// bottom-up over the diagram, letting the algebra decide what a sink is
// worth, how a skipped variable's free choices scale a branch, and how the
// lo and hi branches combine. NumberSolutions, GeneratingFunction,
// TruncatedGeneratingFunction, and Histogram are four instances of the same
// Eval traversal; a caller who needs a different accumulation only has to
// write a fifth Algebra, not a fifth recursion.
//
// A BDD that skips from level p to level c leaves 2^(c-p-1) free choices in
// between, each doubling the count (or, equivalently, contributing a factor
// (1+x) per skipped variable to the generating function). A ZDD skip means
// the variable is implicitly absent, not free: it contributes no choice at
// all, so the shift factor is the identity. shiftPower/shiftBinomial below
// compute those two shift flavors; every Algebra's Shift field picks
// whichever one matches its value type.

// shiftPower returns the BDD scalar shift 2^skip, or 1 under ZDDRule.
func (f *Factory[T]) shiftPower(parent, child int32) *big.Int {
	skip := child - parent - 1
	if f.rule == ZDDRule || skip <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(skip))
}

// shiftBinomial returns the coefficients of (1+x)^skip under BDDRule (a row
// of Pascal's triangle), or [1] under ZDDRule.
func (f *Factory[T]) shiftBinomial(parent, child int32) []*big.Int {
	skip := child - parent - 1
	if f.rule == ZDDRule || skip <= 0 {
		return []*big.Int{big.NewInt(1)}
	}
	row := []*big.Int{big.NewInt(1)}
	for i := int32(0); i < skip; i++ {
		next := make([]*big.Int, len(row)+1)
		next[0] = big.NewInt(1)
		next[len(row)] = big.NewInt(1)
		for j := 1; j < len(row); j++ {
			next[j] = new(big.Int).Add(row[j-1], row[j])
		}
		row = next
	}
	return row
}

// Algebra is the capability a generating-function-style evaluator needs:
// what a True sink is worth (scaled by the multiplicity carried to it), how
// a branch's value is rescaled by the free choices a skipped variable
// introduces, and how the lo/hi branches of a node combine into one value.
// Eval folds a diagram bottom-up using these four operations; NumberSolutions,
// GeneratingFunction, TruncatedGeneratingFunction, and Histogram are each a
// distinct Algebra run through the same Eval. Callers needing a different
// accumulation (a different ring of coefficients, a different notion of
// "branch selects this variable") can supply their own Algebra rather than
// writing a new traversal.
type Algebra[T comparable, V any] struct {
	// Zero is the value of the dead-end (False) sink.
	Zero func() V
	// One is the value of the True sink reached with accumulated
	// multiplicity mult.
	One func(mult T) V
	// Shift rescales a branch's value v to account for the variables the
	// reduction rule let the diagram skip between parent and child levels.
	Shift func(f *Factory[T], parent, child int32, v V) V
	// Combine merges a node's already-shifted lo and hi branch values.
	// Algebras that track which variables were selected (e.g. a
	// generating function's degree) apply that adjustment to hi here.
	Combine func(lo, hi V) V
}

// Eval runs alg over the diagram reachable through e, memoizing by edge, and
// applies the one remaining shift between e's own level and the first real
// variable.
func Eval[T comparable, V any](f *Factory[T], e Edge[T], alg Algebra[T, V]) V {
	memo := make(map[Edge[T]]V)
	res := evalRec(f, e, alg, memo)
	return alg.Shift(f, -1, f.level(e), res)
}

func evalRec[T comparable, V any](f *Factory[T], e Edge[T], alg Algebra[T, V], memo map[Edge[T]]V) V {
	if f.isZero(e) {
		return alg.Zero()
	}
	if e.node == oneIndex {
		return alg.One(e.mult)
	}
	if v, ok := memo[e]; ok {
		return v
	}
	n := f.nodes[e.node]
	lo := f.scale(n.lo, e.mult)
	hi := f.scale(n.hi, e.mult)
	loV := alg.Shift(f, n.level, f.level(lo), evalRec(f, lo, alg, memo))
	hiV := alg.Shift(f, n.level, f.level(hi), evalRec(f, hi, alg, memo))
	res := alg.Combine(loV, hiV)
	memo[e] = res
	return res
}

// CountAlgebra counts satisfying assignments (BDD) or member subsets (ZDD),
// ignoring what multiplicity, if any, reaches the True sink.
func CountAlgebra[T comparable]() Algebra[T, *big.Int] {
	return Algebra[T, *big.Int]{
		Zero: func() *big.Int { return big.NewInt(0) },
		One:  func(T) *big.Int { return big.NewInt(1) },
		Shift: func(f *Factory[T], parent, child int32, v *big.Int) *big.Int {
			return new(big.Int).Mul(v, f.shiftPower(parent, child))
		},
		Combine: func(lo, hi *big.Int) *big.Int {
			return new(big.Int).Add(lo, hi)
		},
	}
}

// NumberSolutions counts the number of satisfying assignments (BDD) or
// member subsets (ZDD) reachable through e, over all Varnum variables, using
// arbitrary-precision arithmetic to avoid overflow regardless of T.
func NumberSolutions[T comparable](f *Factory[T], e Edge[T]) *big.Int {
	return Eval(f, e, CountAlgebra[T]())
}

// polyAdd returns a+b, where polynomials are represented as coefficient
// slices indexed by degree (missing high-order terms are treated as zero).
func polyAdd(a, b []*big.Int) []*big.Int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	res := make([]*big.Int, n)
	for i := range res {
		res[i] = big.NewInt(0)
		if i < len(a) {
			res[i].Add(res[i], a[i])
		}
		if i < len(b) {
			res[i].Add(res[i], b[i])
		}
	}
	return res
}

// polyMul returns a*b.
func polyMul(a, b []*big.Int) []*big.Int {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	res := make([]*big.Int, len(a)+len(b)-1)
	for i := range res {
		res[i] = big.NewInt(0)
	}
	for i, ai := range a {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b {
			res[i+j].Add(res[i+j], new(big.Int).Mul(ai, bj))
		}
	}
	return res
}

// polyShiftUp multiplies a polynomial by x^k, i.e. selecting one more
// variable on every term.
func polyShiftUp(a []*big.Int, k int) []*big.Int {
	res := make([]*big.Int, len(a)+k)
	for i := range res {
		res[i] = big.NewInt(0)
	}
	copy(res[k:], a)
	return res
}

// truncate drops every coefficient of degree above maxDegree, or returns p
// unchanged if it is already short enough.
func truncate(p []*big.Int, maxDegree int) []*big.Int {
	if len(p) > maxDegree+1 {
		return p[:maxDegree+1]
	}
	return p
}

// PolynomialAlgebra computes the single-variable generating function: the
// coefficient of x^k is the number of solutions reachable through e that
// select exactly k variables.
func PolynomialAlgebra[T comparable]() Algebra[T, []*big.Int] {
	return Algebra[T, []*big.Int]{
		Zero: func() []*big.Int { return nil },
		One:  func(T) []*big.Int { return []*big.Int{big.NewInt(1)} },
		Shift: func(f *Factory[T], parent, child int32, v []*big.Int) []*big.Int {
			return polyMul(v, f.shiftBinomial(parent, child))
		},
		Combine: func(lo, hi []*big.Int) []*big.Int {
			return polyAdd(lo, polyShiftUp(hi, 1))
		},
	}
}

// GeneratingFunction returns, for every k, the number of solutions reachable
// through e that select exactly k variables (i.e. the coefficient of x^k in
// the single-variable generating function of the diagram).
func GeneratingFunction[T comparable](f *Factory[T], e Edge[T]) []*big.Int {
	return Eval(f, e, PolynomialAlgebra[T]())
}

// TruncatedPolynomialAlgebra is PolynomialAlgebra with every coefficient of
// degree above maxDegree dropped as it is produced, rather than after the
// fact, so intermediate polynomials never grow past maxDegree+1 terms.
func TruncatedPolynomialAlgebra[T comparable](maxDegree int) Algebra[T, []*big.Int] {
	return Algebra[T, []*big.Int]{
		Zero: func() []*big.Int { return nil },
		One:  func(T) []*big.Int { return []*big.Int{big.NewInt(1)} },
		Shift: func(f *Factory[T], parent, child int32, v []*big.Int) []*big.Int {
			return truncate(polyMul(v, f.shiftBinomial(parent, child)), maxDegree)
		},
		Combine: func(lo, hi []*big.Int) []*big.Int {
			return truncate(polyAdd(lo, polyShiftUp(hi, 1)), maxDegree)
		},
	}
}

// TruncatedGeneratingFunction is GeneratingFunction with every term of
// degree above maxDegree dropped as it is produced, for callers that only
// care about solutions selecting a bounded number of variables.
func TruncatedGeneratingFunction[T comparable](f *Factory[T], e Edge[T], maxDegree int) []*big.Int {
	return Eval(f, e, TruncatedPolynomialAlgebra[T](maxDegree))
}

// shiftHist scales every count in h by factor, short-circuiting the common
// case where factor is 1 so Histogram doesn't allocate a fresh map on every
// BDD node it doesn't actually need to rescale.
func shiftHist[T comparable](h map[T]*big.Int, factor *big.Int) map[T]*big.Int {
	if factor.Cmp(big.NewInt(1)) == 0 {
		return h
	}
	res := make(map[T]*big.Int, len(h))
	for k, v := range h {
		res[k] = new(big.Int).Mul(v, factor)
	}
	return res
}

// HistogramAlgebra partitions solutions by the multiplicity value they
// carry at the True sink, counting how many solutions fall into each
// distinct multiplicity.
func HistogramAlgebra[T comparable]() Algebra[T, map[T]*big.Int] {
	return Algebra[T, map[T]*big.Int]{
		Zero: func() map[T]*big.Int { return map[T]*big.Int{} },
		One: func(mult T) map[T]*big.Int {
			return map[T]*big.Int{mult: big.NewInt(1)}
		},
		Shift: func(f *Factory[T], parent, child int32, v map[T]*big.Int) map[T]*big.Int {
			return shiftHist(v, f.shiftPower(parent, child))
		},
		Combine: func(lo, hi map[T]*big.Int) map[T]*big.Int {
			res := make(map[T]*big.Int, len(lo)+len(hi))
			for k, v := range lo {
				res[k] = new(big.Int).Set(v)
			}
			for k, v := range hi {
				if cur, ok := res[k]; ok {
					res[k] = new(big.Int).Add(cur, v)
				} else {
					res[k] = new(big.Int).Set(v)
				}
			}
			return res
		},
	}
}

// Histogram partitions the solutions reachable through e by the
// multiplicity value they carry at the True sink, returning how many
// solutions fall into each distinct multiplicity.
func Histogram[T comparable](f *Factory[T], e Edge[T]) map[T]*big.Int {
	return Eval(f, e, HistogramAlgebra[T]())
}
