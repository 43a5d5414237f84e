// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"sort"
	"testing"
)

func TestMakesetScansetRoundtrip(t *testing.T) {
	bdd, _ := New[Unit](5, BDDRule, UnitRing())
	varset := []int{1, 3, 4}
	cube, err := bdd.Makeset(varset)
	if err != nil {
		t.Fatal(err)
	}
	if got := bdd.Scanset(cube); !equalInts(got, varset) {
		t.Errorf("Scanset(Makeset(a)) should equal a, got %v want %v", got, varset)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSupportReportsReachableVariables(t *testing.T) {
	bdd, _ := New[Unit](4, BDDRule, UnitRing())
	v0, _ := bdd.Ithvar(0)
	v2, _ := bdd.Ithvar(2)
	n := bdd.And(v0, v2)
	got := bdd.Support(n)
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("Support(v0 & v2): expected [0 2], got %v", got)
	}
}

func TestAllsatPartitionsSolutionSpace(t *testing.T) {
	bdd, _ := New[Unit](3, BDDRule, UnitRing())
	v0, _ := bdd.Ithvar(0)
	v1, _ := bdd.Ithvar(1)
	n := bdd.Or(v0, v1)
	acc := bdd.False()
	bdd.Allsat(n, func(profile []int, _ Unit) error {
		term := bdd.True()
		for k, v := range profile {
			switch v {
			case 0:
				nv, _ := bdd.NIthvar(k)
				term = bdd.And(term, nv)
			case 1:
				vv, _ := bdd.Ithvar(k)
				term = bdd.And(term, vv)
			}
		}
		acc = bdd.Or(acc, term)
		return nil
	})
	if !bdd.Equal(acc, n) {
		t.Errorf("the union of every Allsat term should reconstruct the original edge")
	}
}

func TestAllnodesCountsReachableNodes(t *testing.T) {
	bdd, _ := New[Unit](3, BDDRule, UnitRing())
	v0, _ := bdd.Ithvar(0)
	v1, _ := bdd.Ithvar(1)
	n := bdd.And(v0, v1)
	count := 0
	bdd.Allnodes(func(id, level, low, high int) error {
		count++
		return nil
	}, n)
	if count != 4 {
		t.Errorf("And(v0,v1) should reach 4 nodes (2 sinks + 2 internal), got %d", count)
	}
}

func TestCheckInvariantsOnWellFormedEdge(t *testing.T) {
	bdd, _ := New[Unit](4, BDDRule, UnitRing())
	v0, _ := bdd.Ithvar(0)
	v2, _ := bdd.Ithvar(2)
	n := bdd.Or(v0, bdd.Not(v2))
	if err := bdd.CheckInvariants(n); err != nil {
		t.Errorf("a diagram built entirely through makenode should satisfy CheckInvariants: %v", err)
	}
}

func TestSupportIsSorted(t *testing.T) {
	bdd, _ := New[Unit](5, BDDRule, UnitRing())
	v4, _ := bdd.Ithvar(4)
	v1, _ := bdd.Ithvar(1)
	n := bdd.And(v4, v1)
	got := bdd.Support(n)
	sorted := append([]int32(nil), got...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i := range got {
		if got[i] != sorted[i] {
			t.Errorf("Support should return variables in ascending order, got %v", got)
			break
		}
	}
}
