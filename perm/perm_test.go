// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package perm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityIsNeutral(t *testing.T) {
	f, err := New(4, Swap)
	require.NoError(t, err)
	a, err := f.Single(Atom{I: 2, J: 1})
	require.NoError(t, err)
	id := f.Identity()
	left, err := f.Compose(id, a)
	require.NoError(t, err)
	right, err := f.Compose(a, id)
	require.NoError(t, err)
	assert.True(t, f.Equal(left, a), "compose(identity, a) should equal a")
	assert.True(t, f.Equal(right, a), "compose(a, identity) should equal a")
}

func TestComposeWithInverseIsIdentity(t *testing.T) {
	f, err := New(5, Swap)
	require.NoError(t, err)
	a, err := f.Single(Atom{I: 4, J: 1})
	require.NoError(t, err)
	inv, err := f.Inverse(a)
	require.NoError(t, err)
	res, err := f.Compose(a, inv)
	require.NoError(t, err)
	assert.True(t, f.Equal(res, f.Identity()), "compose(a, inverse(a)) should be identity")
}

// A transposition composed with itself is the identity, with multiplicity
// one.
func TestSwapSquaredIsIdentity(t *testing.T) {
	f, err := New(3, Swap)
	require.NoError(t, err)
	a, err := f.Single(Atom{I: 1, J: 0})
	require.NoError(t, err)
	res, err := f.Compose(a, a)
	require.NoError(t, err)
	assert.True(t, f.Equal(res, f.Identity()), "compose((1 0), (1 0)) should be identity")
	got := f.Count(res)
	assert.Zero(t, got.Cmp(big.NewInt(1)), "compose((1 0), (1 0)) should have multiplicity 1, got %s", got)
}

// All permutations of 4 elements: cardinality 24, idempotent under
// composing with itself.
func TestAllPermutationsCardinality(t *testing.T) {
	f, err := New(4, LeftRotation)
	require.NoError(t, err)
	all, err := f.AllPermutations()
	require.NoError(t, err)
	got := f.Count(all)
	assert.Zero(t, got.Cmp(big.NewInt(24)), "all_permutations(4) should have cardinality 24, got %s", got)
	squared, err := f.Compose(all, all)
	require.NoError(t, err)
	gotSquared := f.Count(squared)
	assert.Zero(t, gotSquared.Cmp(big.NewInt(24)), "all_permutations(4) composed with itself should stay 24, got %s", gotSquared)
}

func TestGenerateGroup(t *testing.T) {
	f, err := New(3, Swap)
	require.NoError(t, err)
	gen, err := f.Single(Atom{I: 1, J: 0})
	require.NoError(t, err)
	group, err := f.GenerateGroup([]Perm{gen})
	require.NoError(t, err)
	got := f.Count(group)
	assert.Zero(t, got.Cmp(big.NewInt(2)), "the group generated by a single transposition should have order 2, got %s", got)
	ok, err := f.Contains(group, nil)
	require.NoError(t, err)
	assert.True(t, ok, "the identity should belong to any group generated this way")
}
