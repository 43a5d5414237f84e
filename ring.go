// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "golang.org/x/exp/constraints"

// Ring is the multiplicity algebra a Factory is parameterized with. Zero and
// One must behave as the additive and multiplicative identities of T. Add and
// Mul combine the multiplicities carried by two edges that target the same
// node during Union and Intersection, respectively: union adds multiplicities
// pointwise, intersection multiplies them. Sub is used by Difference; a nil
// Sub means the carrier has no subtraction and Difference reports
// ErrUnsupportedOperation.
type Ring[T comparable] struct {
	Zero T
	One  T
	Add  func(a, b T) T
	Mul  func(a, b T) T
	Sub  func(a, b T) T
}

// Unit is the trivial multiplicity carrier used by plain (non-weighted) BDDs
// and ZDDs. It carries no information; every field of the generic machinery
// that deals with multiplicities specializes to a zero-cost empty struct.
type Unit struct{}

// UnitRing returns the "no multiplicity" algebra. Add and Mul both just
// return their (identical) argument, since with a single inhabitant there is
// nothing else they could return.
func UnitRing() Ring[Unit] {
	return Ring[Unit]{
		Add: func(a, b Unit) Unit { return a },
		Mul: func(a, b Unit) Unit { return a },
	}
}

// IntegerRing returns the multiset multiplicity algebra for any integer
// type, including unsigned ones. Difference is unsupported under this ring
// (there is no general Sub for unsigned carriers); use SignedIntegerRing
// when the carrier supports subtraction.
func IntegerRing[T constraints.Integer]() Ring[T] {
	var zero, one T
	one = 1
	return Ring[T]{
		Zero: zero,
		One:  one,
		Add:  func(a, b T) T { return a + b },
		Mul:  func(a, b T) T { return a * b },
	}
}

// SignedIntegerRing is IntegerRing with Sub wired in, for signed carriers.
func SignedIntegerRing[T constraints.Signed]() Ring[T] {
	r := IntegerRing[T]()
	r.Sub = func(a, b T) T { return a - b }
	return r
}
