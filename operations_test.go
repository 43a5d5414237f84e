// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//********************************************************************************************

func TestMin3(t *testing.T) {
	var minusTests = []struct {
		p, q, r  int32
		expected int32
	}{
		{3, 2, 3, 2},
		{4, 4, 4, 4},
		{2, 3, 3, 2},
		{3, 2, 2, 2},
		{3, 3, 2, 2},
		{1, 2, 3, 1},
	}
	for _, tt := range minusTests {
		actual := min3(tt.p, tt.q, tt.r)
		assert.Equalf(t, tt.expected, actual, "min3(%d, %d, %d)", tt.p, tt.q, tt.r)
	}
}

//********************************************************************************************

func TestIte(t *testing.T) {
	bdd, err := New[Unit](4, BDDRule, UnitRing())
	require.NoError(t, err)
	n1, err := bdd.Makeset([]int{0, 2, 3})
	require.NoError(t, err)
	n2, err := bdd.Makeset([]int{0, 3})
	require.NoError(t, err)
	actual := bdd.Equiv(bdd.Ite(n1, n2, bdd.Not(n2)), bdd.Or(bdd.And(n1, n2), bdd.And(bdd.Not(n1), bdd.Not(n2))))
	assert.Equal(t, bdd.True(), actual, "ite(f,g,h) <=> (f and g) or (-f and h)")
}

//********************************************************************************************

// TestOperations implements the same tests as the bddtest program in the
// Buddy distribution. It uses Allsat to check that all assignments are
// detected.
func TestOperations(t *testing.T) {
	bdd, err := New[Unit](4, BDDRule, UnitRing())
	require.NoError(t, err)
	varnum := 4

	check := func(x Edge[Unit]) {
		allsatBDD := x
		allsatSumBDD := bdd.False()
		// Sum up every assignment Allsat reports, and remove each one from
		// the original set; at the end the sum should equal x and the
		// remainder should be empty.
		bdd.Allsat(x, func(varset []int, _ Unit) error {
			term := bdd.True()
			for k, v := range varset {
				switch v {
				case 0:
					nv, _ := bdd.NIthvar(k)
					term = bdd.And(term, nv)
				case 1:
					vv, _ := bdd.Ithvar(k)
					term = bdd.And(term, vv)
				}
			}
			allsatSumBDD = bdd.Or(allsatSumBDD, term)
			allsatBDD = bdd.Apply(OPdiff, allsatBDD, term)
			return nil
		})

		assert.True(t, bdd.Equal(allsatSumBDD, x), "AllSat sum is not the initial BDD")
		assert.True(t, bdd.Equal(allsatBDD, bdd.False()), "AllSat remainder is not False")
	}

	a, _ := bdd.Ithvar(0)
	b, _ := bdd.Ithvar(1)
	c, _ := bdd.Ithvar(2)
	d, _ := bdd.Ithvar(3)
	na, _ := bdd.NIthvar(0)
	nb, _ := bdd.NIthvar(1)
	nc, _ := bdd.NIthvar(2)
	nd, _ := bdd.NIthvar(3)

	cases := []Edge[Unit]{
		bdd.True(),
		bdd.False(),
		bdd.Or(bdd.And(a, b), bdd.And(na, nb)),
		bdd.Or(bdd.And(a, b), bdd.And(c, d)),
		bdd.Or(bdd.And(a, nb), bdd.And(a, nd), bdd.And(a, b, nc)),
	}
	for i := 0; i < varnum; i++ {
		vi, _ := bdd.Ithvar(i)
		nvi, _ := bdd.NIthvar(i)
		cases = append(cases, vi, nvi)
	}
	for _, x := range cases {
		check(x)
	}

	set := bdd.True()
	for i := 0; i < 50; i++ {
		v := rand.Intn(varnum)
		s := rand.Intn(2)

		if s == 0 {
			vv, _ := bdd.Ithvar(v)
			set = bdd.And(set, vv)
		} else {
			nv, _ := bdd.NIthvar(v)
			set = bdd.And(set, nv)
		}
		check(set)
	}
}
