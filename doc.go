// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package xdd implements a family of reduced, ordered decision diagrams used in
combinatorial enumeration: Binary Decision Diagrams (BDD), Zero-suppressed
Decision Diagrams (ZDD), and their multiset generalizations (MBDD, MZDD). A
single generic engine, Factory, is parameterized by a reduction Rule (BDD or
ZDD) and a multiplicity Ring; the "no multiplicity" case is the Unit ring and
costs nothing at runtime beyond an empty struct field.

Basics

A Factory has a fixed number of variables, Varnum, declared when it is
created with New, with each variable represented by an index (a level) in
the interval [0, Varnum). Multiple independent factories, possibly with
different Varnum or a different Rule or Ring, may coexist; edges from one
factory must never be passed to another.

Most operations return an Edge, a small, cheaply copyable and hashable value
referencing either a sink (the constants False/True) or a node in the
factory's table, scaled by a multiplicity. Structural equality of diagrams is
always an integer (edge) comparison; the node table never creates two nodes
with the same (level, lo, hi) triple.

Reduction rules

With BDDRule, a node whose low and high edges are identical (same target and
multiplicity) collapses to that edge. With ZDDRule, a node whose high edge is
the zero edge collapses to its low edge instead; this reduction is what makes
ZDDs a good fit for sparse set families.

Multiplicities

A Ring[T] supplies the zero and one elements of a carrier type T together
with addition and multiplication; Union combines matching branches with Add,
Intersection with Mul. UnitRing gives the plain set-valued carrier used by
ordinary BDD/ZDD; IntegerRing and SignedIntegerRing give multiset carriers
for MBDD/MZDD.

The permutation layer

Package xdd/perm builds (multi)sets of permutations on top of a Factory,
representing a permutation as a canonical ascending sequence of atomic
operations (transpositions or left rotations) encoded as ZDD/MZDD variables.

Memory management

Per the reduction discipline above, the node table and operation caches are
local to one Factory and grow monotonically: nodes are never reclaimed during
a factory's lifetime, so there is no garbage collector to reason about.
Releasing a factory (letting it become unreachable) releases all its storage
at once.
*/
package xdd
