// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "fmt"

// Internal tags for the multiplicity-aware combinators, sharing the
// Operator/applyCache machinery used by the plain Boolean Apply below but
// living well outside the range of opres (0..9) so the two families never
// collide in the cache.
const (
	tagUnion Operator = 100 + iota
	tagIntersection
	tagDifference
)

// minLevel returns the variable at which apply should branch next: the
// smaller of the two operands' levels.
func (f *Factory[T]) minLevel(a, b Edge[T]) int32 {
	la, lb := f.level(a), f.level(b)
	if la < lb {
		return la
	}
	return lb
}

// Apply performs one of the plain Boolean operations (see Operator) on two
// edges. It reduces to opres at the sink base case, which answers a
// membership question (is the combination "in" the result) rather than
// carrying multiplicities through; for multiset-valued diagrams use Union,
// Intersection, or Difference instead, which combine multiplicities via the
// Factory's Ring.
func (f *Factory[T]) Apply(op Operator, left, right Edge[T]) Edge[T] {
	if op == opnot {
		return f.seterror(fmt.Errorf("%w: opnot is unary, use Not", ErrUnsupportedOperation))
	}
	return f.apply(op, left, right)
}

func (f *Factory[T]) apply(op Operator, left, right Edge[T]) Edge[T] {
	if isSink(left) && isSink(right) {
		lb, rb := 0, 0
		if left.node == oneIndex {
			lb = 1
		}
		if right.node == oneIndex {
			rb = 1
		}
		return f.From(opres[op][lb][rb] == 1)
	}
	if cached, ok := f.applyC.get(op, left, right); ok {
		return cached
	}
	v := f.minLevel(left, right)
	lLo, lHi := f.cofactor(left, v)
	rLo, rHi := f.cofactor(right, v)
	lo := f.apply(op, lLo, rLo)
	hi := f.apply(op, lHi, rHi)
	res, err := f.makenode(v, lo, hi)
	if err != nil {
		return f.seterror(err)
	}
	f.applyC.set(op, left, right, res)
	return res
}

// And returns the conjunction of a sequence of edges (True if empty).
func (f *Factory[T]) And(n ...Edge[T]) Edge[T] {
	if len(n) == 0 {
		return f.True()
	}
	res := n[0]
	for _, x := range n[1:] {
		res = f.Apply(OPand, res, x)
	}
	return res
}

// Or returns the disjunction of a sequence of edges (False if empty).
func (f *Factory[T]) Or(n ...Edge[T]) Edge[T] {
	if len(n) == 0 {
		return f.False()
	}
	res := n[0]
	for _, x := range n[1:] {
		res = f.Apply(OPor, res, x)
	}
	return res
}

// Imp returns the logical implication a -> b.
func (f *Factory[T]) Imp(a, b Edge[T]) Edge[T] {
	return f.Apply(OPimp, a, b)
}

// Equiv returns the logical bi-implication between a and b.
func (f *Factory[T]) Equiv(a, b Edge[T]) Edge[T] {
	return f.Apply(OPbiimp, a, b)
}

// Equal tests structural equality of two edges; canonicalization means this
// is simply an equality test on the edge value itself.
func (f *Factory[T]) Equal(a, b Edge[T]) bool {
	return a == b
}

// Not returns the negation of a under BDDRule. ZDDs require an explicit
// universe (see Complement), since "not" is only meaningful with respect to
// a fixed set of variables to complement over.
func (f *Factory[T]) Not(e Edge[T]) Edge[T] {
	if f.rule != BDDRule {
		return f.seterror(fmt.Errorf("%w: Not requires BDDRule, use Complement", ErrUnsupportedOperation))
	}
	return f.not(e)
}

func (f *Factory[T]) not(e Edge[T]) Edge[T] {
	if e.node == zeroIndex {
		return f.True()
	}
	if e.node == oneIndex {
		return f.False()
	}
	if cached, ok := f.applyC.get(opnot, e, e); ok {
		return cached
	}
	n := f.nodes[e.node]
	lo := f.not(f.scale(n.lo, e.mult))
	hi := f.not(f.scale(n.hi, e.mult))
	res, err := f.makenode(n.level, lo, hi)
	if err != nil {
		return f.seterror(err)
	}
	f.applyC.set(opnot, e, e, res)
	return res
}

// Complement returns the set of assignments over [0, universe) not present
// in e, under ZDDRule. universe must be at least Varnum; a ZDD never
// mentions a variable beyond its own Varnum, so complementing over fewer
// variables than were declared is rejected as ErrVariableOutOfRange.
func (f *Factory[T]) Complement(e Edge[T], universe int) Edge[T] {
	if f.rule != ZDDRule {
		return f.seterror(fmt.Errorf("%w: Complement requires ZDDRule, use Not", ErrUnsupportedOperation))
	}
	if universe < int(f.varnum) {
		return f.seterror(fmt.Errorf("%w: universe %d smaller than varnum %d", ErrVariableOutOfRange, universe, f.varnum))
	}
	return f.complementAt(e, 0, int32(universe))
}

func (f *Factory[T]) complementAt(e Edge[T], v, universe int32) Edge[T] {
	if v == universe {
		if f.isZero(e) {
			return f.True()
		}
		return f.False()
	}
	lo, hi := f.cofactor(e, v)
	newLo := f.complementAt(lo, v+1, universe)
	newHi := f.complementAt(hi, v+1, universe)
	res, err := f.makenode(v, newLo, newHi)
	if err != nil {
		return f.seterror(err)
	}
	return res
}

// combine implements the shared recursive skeleton behind Union,
// Intersection, and Difference: walk both operands in lockstep over the
// shared variable order, combining multiplicities at matching sinks via
// combineSinks.
func (f *Factory[T]) combine(tag Operator, a, b Edge[T]) Edge[T] {
	if isSink(a) && isSink(b) {
		return f.combineSinks(tag, a, b)
	}
	if cached, ok := f.applyC.get(tag, a, b); ok {
		return cached
	}
	v := f.minLevel(a, b)
	aLo, aHi := f.cofactor(a, v)
	bLo, bHi := f.cofactor(b, v)
	lo := f.combine(tag, aLo, bLo)
	hi := f.combine(tag, aHi, bHi)
	res, err := f.makenode(v, lo, hi)
	if err != nil {
		return f.seterror(err)
	}
	f.applyC.set(tag, a, b, res)
	return res
}

func (f *Factory[T]) combineSinks(tag Operator, a, b Edge[T]) Edge[T] {
	switch tag {
	case tagUnion:
		if f.isZero(a) {
			return b
		}
		if f.isZero(b) {
			return a
		}
		return Edge[T]{node: oneIndex, mult: f.ring.Add(a.mult, b.mult)}
	case tagIntersection:
		if f.isZero(a) || f.isZero(b) {
			return f.False()
		}
		return Edge[T]{node: oneIndex, mult: f.ring.Mul(a.mult, b.mult)}
	case tagDifference:
		if f.ring.Sub == nil {
			return f.seterror(ErrUnsupportedOperation)
		}
		if f.isZero(b) {
			return a
		}
		if f.isZero(a) {
			return f.False()
		}
		d := f.ring.Sub(a.mult, b.mult)
		if d == f.ring.Zero {
			return f.False()
		}
		return Edge[T]{node: oneIndex, mult: d}
	default:
		return f.seterror(ErrUnsupportedOperation)
	}
}

// Union is the multiplicity-aware set/multiset union: matching branches
// have their multiplicities added.
func (f *Factory[T]) Union(a, b Edge[T]) Edge[T] {
	return f.combine(tagUnion, a, b)
}

// Intersection is the multiplicity-aware intersection: matching branches
// have their multiplicities multiplied.
func (f *Factory[T]) Intersection(a, b Edge[T]) Edge[T] {
	return f.combine(tagIntersection, a, b)
}

// Difference subtracts b's multiplicities from a's. It returns
// ErrUnsupportedOperation (via the sticky error) when the Ring has no Sub,
// e.g. an unsigned IntegerRing.
func (f *Factory[T]) Difference(a, b Edge[T]) Edge[T] {
	return f.combine(tagDifference, a, b)
}

// SymmetricDifference is (a \ b) ∪ (b \ a).
func (f *Factory[T]) SymmetricDifference(a, b Edge[T]) Edge[T] {
	return f.Union(f.Difference(a, b), f.Difference(b, a))
}

// min3 returns the smallest of three levels, used by Ite to pick the next
// branching variable across three operands at once.
func min3(p, q, r int32) int32 {
	if p < q {
		if p < r {
			return p
		}
		return r
	}
	if q < r {
		return q
	}
	return r
}

// Ite computes if-then-else(a, b, c), i.e. (a & b) | (!a & c), in one
// recursive pass instead of three separate Apply calls.
func (f *Factory[T]) Ite(a, b, c Edge[T]) Edge[T] {
	return f.ite(a, b, c)
}

func (f *Factory[T]) ite(a, b, c Edge[T]) Edge[T] {
	switch {
	case a.node == oneIndex:
		return b
	case a.node == zeroIndex:
		return c
	case b == c:
		return b
	case b.node == oneIndex && c.node == zeroIndex:
		return a
	}
	if cached, ok := f.iteC.get(a, b, c); ok {
		return cached
	}
	v := min3(f.level(a), f.level(b), f.level(c))
	aLo, aHi := f.cofactor(a, v)
	bLo, bHi := f.cofactor(b, v)
	cLo, cHi := f.cofactor(c, v)
	lo := f.ite(aLo, bLo, cLo)
	hi := f.ite(aHi, bHi, cHi)
	res, err := f.makenode(v, lo, hi)
	if err != nil {
		return f.seterror(err)
	}
	f.iteC.set(a, b, c, res)
	return res
}

// lowOf/highOf are internal variants of Low/High that skip the sink check,
// used where the caller has already established e is not a sink.
func (f *Factory[T]) lowOf(e Edge[T]) Edge[T] {
	return f.scale(f.nodes[e.node].lo, e.mult)
}

func (f *Factory[T]) highOf(e Edge[T]) Edge[T] {
	return f.scale(f.nodes[e.node].hi, e.mult)
}

// Exist returns the existential quantification of n over the variables in
// varset, a cube built with Makeset.
func (f *Factory[T]) Exist(n, varset Edge[T]) Edge[T] {
	return f.exist(n, varset)
}

func (f *Factory[T]) exist(n, varset Edge[T]) Edge[T] {
	if isSink(n) || isSink(varset) {
		return n
	}
	if cached, ok := f.quantC.get(n, varset); ok {
		return cached
	}
	nLevel, vLevel := f.level(n), f.level(varset)
	var res Edge[T]
	switch {
	case vLevel < nLevel:
		_, vHi := f.cofactor(varset, vLevel)
		res = f.exist(n, vHi)
	case vLevel > nLevel:
		lo := f.exist(f.lowOf(n), varset)
		hi := f.exist(f.highOf(n), varset)
		var err error
		res, err = f.makenode(nLevel, lo, hi)
		if err != nil {
			res = f.seterror(err)
		}
	default:
		_, vHi := f.cofactor(varset, vLevel)
		lo := f.exist(f.lowOf(n), vHi)
		hi := f.exist(f.highOf(n), vHi)
		res = f.Union(lo, hi)
	}
	f.quantC.set(n, varset, res)
	return res
}

// AppEx applies the Boolean operator op to left and right, then existentially
// quantifies the variables in varset out of the result. It is equivalent to,
// but caches more coarsely than, Exist(Apply(op, left, right), varset).
func (f *Factory[T]) AppEx(left, right Edge[T], op Operator, varset Edge[T]) Edge[T] {
	if cached, ok := f.appexC.get(op, left, right, varset); ok {
		return cached
	}
	res := f.exist(f.Apply(op, left, right), varset)
	f.appexC.set(op, left, right, varset, res)
	return res
}

// AndExist returns the relational composition of a and b with respect to
// varset: Exist(varset, a & b).
func (f *Factory[T]) AndExist(varset, a, b Edge[T]) Edge[T] {
	return f.AppEx(a, b, OPand, varset)
}
