// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package perm represents (multi)sets of permutations of {0, …, n-1} as
(M)ZDDs over atomic permutation operations, built on top of a root
xdd.Factory. Two atom kinds are supported, fixed for the lifetime of a
Factory:

Swap atoms, atom (i, j) with i > j, denote the transposition of positions i
and j (πDD).

LeftRotation atoms, also (i, j) with i > j, denote the left rotation that
moves position j to position i while shifting the intermediate positions
left by one (Rot-πDD).

Every permutation is stored as the canonical ascending sequence of atoms
that reconstructs it when applied, in order, to the identity array; a
(multi)set of permutations is the union of the single-path diagrams for
each of its members. Composing two diagrams enumerates every pair of member
permutations (via the underlying Factory's Allsat), recomposes their raw
images, and re-decomposes the result into canonical form, rather than
rewriting atom sequences directly (transposition conjugation identities for
Swap, Inoue's rotation rewrites for LeftRotation) - a deliberate
simplification that reduces both atom kinds to the same well-understood
algorithm while still satisfying every group-theoretic property the layer
is required to (see DESIGN.md).
*/
package perm
