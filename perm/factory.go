// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package perm

import (
	"fmt"
	"math/big"

	"github.com/dalzilio/xdd"
)

// Factory builds (multi)sets of permutations of {0, ..., n-1}, represented
// as edges of an underlying xdd.Factory[int] over one variable per atom.
// The element count n and the atom kind are fixed at construction, exactly
// as the node count and reduction rule are fixed for a plain xdd.Factory.
type Factory struct {
	dd   *xdd.Factory[int]
	n    int
	kind AtomKind

	atomIndex map[Atom]int32
	levelAtom []Atom
}

// Perm is an opaque handle to a (multi)set of permutations held by a
// Factory, mirroring xdd.Edge's role in the root package.
type Perm struct {
	edge xdd.Edge[int]
}

// Edge returns the underlying diagram edge, for callers that want to use
// the root package's generic operations (Print, NumberSolutions, ...)
// directly.
func (p Perm) Edge() xdd.Edge[int] {
	return p.edge
}

// DD returns the Factory's underlying node factory, so that generic
// xdd operations (PrintDot, CheckInvariants, ...) can be applied to a
// Perm's edge.
func (f *Factory) DD() *xdd.Factory[int] {
	return f.dd
}

// New creates a Factory over the permutations of n elements, using the
// given atom kind. It derives the underlying variable count C(n, 2), one
// variable per distinct atom.
func New(n int, kind AtomKind, opts ...xdd.Option) (*Factory, error) {
	if n < 0 {
		return nil, fmt.Errorf("perm: negative element count %d", n)
	}
	varnum := n * (n - 1) / 2
	dd, err := xdd.New[int](varnum, xdd.ZDDRule, xdd.SignedIntegerRing[int](), opts...)
	if err != nil {
		return nil, err
	}
	atoms := enumerateAtoms(n, kind)
	idx := make(map[Atom]int32, len(atoms))
	for i, a := range atoms {
		idx[a] = int32(i)
	}
	return &Factory{dd: dd, n: n, kind: kind, atomIndex: idx, levelAtom: atoms}, nil
}

// Errored/Error report an error recorded by the underlying xdd.Factory, the
// same sticky-error idiom the root package uses.
func (f *Factory) Errored() bool { return f.dd.Errored() }
func (f *Factory) Error() string { return f.dd.Error() }

func (f *Factory) atomsToCube(atoms []Atom) (xdd.Edge[int], error) {
	levels := make([]int, len(atoms))
	for i, a := range atoms {
		idx, ok := f.atomIndex[a]
		if !ok {
			return xdd.Edge[int]{}, fmt.Errorf("perm: atom %s does not belong to this factory", a)
		}
		levels[i] = int(idx)
	}
	return f.dd.Makeset(levels)
}

func (f *Factory) profileToAtoms(profile []int) []Atom {
	atoms := make([]Atom, 0, len(profile))
	for lvl, v := range profile {
		if v == 1 {
			atoms = append(atoms, f.levelAtom[lvl])
		}
	}
	return atoms
}

// Identity returns the diagram representing the single identity
// permutation: the empty atom sequence.
func (f *Factory) Identity() Perm {
	return Perm{edge: f.dd.True()}
}

// Single returns the permutation generated by one atom.
func (f *Factory) Single(a Atom) (Perm, error) {
	if err := validateAtom(f.n, a); err != nil {
		return Perm{}, err
	}
	cube, err := f.atomsToCube([]Atom{a})
	if err != nil {
		return Perm{}, err
	}
	return Perm{edge: cube}, nil
}

// AllPermutations returns the full symmetric group on the Factory's n
// elements, built by enumerating every permutation image directly: simple
// and obviously correct, at the cost of O(n!) work, which is adequate for
// the small n this layer is exercised with (see DESIGN.md).
func (f *Factory) AllPermutations() (Perm, error) {
	result := f.dd.False()
	for _, img := range generatePermutations(f.n) {
		cube, err := f.atomsToCube(f.imageToAtoms(img))
		if err != nil {
			return Perm{}, err
		}
		result = f.dd.Union(result, cube)
	}
	return Perm{edge: result}, nil
}

// generatePermutations returns every permutation image of {0, ..., n-1},
// via textbook recursive backtracking (in-place swaps, undone after each
// recursive call).
func generatePermutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	arr := identity(n)
	var res [][]int
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			res = append(res, append([]int(nil), arr...))
			return
		}
		for i := k; i < n; i++ {
			arr[k], arr[i] = arr[i], arr[k]
			rec(k + 1)
			arr[k], arr[i] = arr[i], arr[k]
		}
	}
	rec(0)
	return res
}

// Compose returns { a·b : a in A, b in B }, with multiplicities multiplied,
// by enumerating every pair of member permutations (via Allsat on both
// operands), recomposing their raw images, and re-decomposing the result
// into canonical form, rather than a structural cofactor recursion over
// the two diagrams. A conjugation-based rewrite exists in closed form for
// a single pair of Swap atoms, but it doesn't extend to a one-pass
// reduction of an arbitrary atom sequence, so both atom kinds go through
// this same enumeration (see DESIGN.md for why).
func (f *Factory) Compose(a, b Perm) (Perm, error) {
	result := f.dd.False()
	var inner error
	outer := f.dd.Allsat(a.edge, func(profA []int, multA int) error {
		imgA := f.atomsToImage(f.profileToAtoms(profA))
		return f.dd.Allsat(b.edge, func(profB []int, multB int) error {
			imgB := f.atomsToImage(f.profileToAtoms(profB))
			composed := composeImages(imgA, imgB)
			cube, err := f.atomsToCube(f.imageToAtoms(composed))
			if err != nil {
				inner = err
				return err
			}
			scaled := f.dd.Scale(cube, multA*multB)
			result = f.dd.Union(result, scaled)
			return nil
		})
	})
	if outer != nil {
		return Perm{}, outer
	}
	if inner != nil {
		return Perm{}, inner
	}
	return Perm{edge: result}, nil
}

// Inverse returns { a^-1 : a in A }, preserving multiplicities.
func (f *Factory) Inverse(a Perm) (Perm, error) {
	result := f.dd.False()
	var inner error
	outer := f.dd.Allsat(a.edge, func(prof []int, mult int) error {
		img := f.atomsToImage(f.profileToAtoms(prof))
		cube, err := f.atomsToCube(f.imageToAtoms(invertImage(img)))
		if err != nil {
			inner = err
			return err
		}
		result = f.dd.Union(result, f.dd.Scale(cube, mult))
		return nil
	})
	if outer != nil {
		return Perm{}, outer
	}
	if inner != nil {
		return Perm{}, inner
	}
	return Perm{edge: result}, nil
}

// Contains reports whether the permutation generated by atoms (applied in
// canonical order) is a member of a, the permutation layer's membership
// test.
func (f *Factory) Contains(a Perm, atoms []Atom) (bool, error) {
	cube, err := f.atomsToCube(atoms)
	if err != nil {
		return false, err
	}
	return !f.dd.Equal(f.dd.Intersection(a.edge, cube), f.dd.False()), nil
}

// Equal tests structural equality of two permutation sets.
func (f *Factory) Equal(a, b Perm) bool {
	return f.dd.Equal(a.edge, b.edge)
}

// Union, Intersection and Difference lift the root package's multiplicity-
// aware set operations to Perm values.
func (f *Factory) Union(a, b Perm) Perm {
	return Perm{edge: f.dd.Union(a.edge, b.edge)}
}

func (f *Factory) Intersection(a, b Perm) Perm {
	return Perm{edge: f.dd.Intersection(a.edge, b.edge)}
}

func (f *Factory) Difference(a, b Perm) Perm {
	return Perm{edge: f.dd.Difference(a.edge, b.edge)}
}

// Count returns the number of distinct permutations held by a; their
// multiplicities are not summed.
func (f *Factory) Count(a Perm) *big.Int {
	return xdd.NumberSolutions(f.dd, a.edge)
}
