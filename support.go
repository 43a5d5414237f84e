// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "fmt"

// Makeset returns the cube of the variables in varset: the conjunction of
// their positive forms under BDDRule, or the family holding the single set
// varset under ZDDRule. It is such that Scanset(Makeset(f, a)) == a.
// Variables must already be sorted in ascending order; Makeset does not sort
// them.
func (f *Factory[T]) Makeset(varset []int) (Edge[T], error) {
	res := f.True()
	for k := len(varset) - 1; k >= 0; k-- {
		level := varset[k]
		if level < 0 || level >= int(f.varnum) {
			return f.False(), fmt.Errorf("%w: variable %d", ErrVariableOutOfRange, level)
		}
		var err error
		res, err = f.makenode(int32(level), f.False(), res)
		if err != nil {
			return f.False(), err
		}
	}
	return res, nil
}

// Scanset returns the variables found when following the high branch of e,
// the dual of Makeset: e must be a cube (every node has a False low branch).
func (f *Factory[T]) Scanset(e Edge[T]) []int {
	if isSink(e) {
		return nil
	}
	res := []int{}
	cur := e
	for !isSink(cur) {
		n := f.nodes[cur.node]
		res = append(res, int(n.level))
		cur = f.scale(n.hi, cur.mult)
	}
	return res
}

// Support returns the sorted list of variables that appear in the diagram
// reachable through e.
func (f *Factory[T]) Support(e Edge[T]) []int32 {
	seen := make(map[int32]bool)
	levels := make(map[int32]bool)
	var walk func(Edge[T])
	walk = func(x Edge[T]) {
		if isSink(x) || seen[x.node] {
			return
		}
		seen[x.node] = true
		n := f.nodes[x.node]
		levels[n.level] = true
		walk(n.lo)
		walk(n.hi)
	}
	walk(e)
	res := make([]int32, 0, len(levels))
	for lvl := range levels {
		res = append(res, lvl)
	}
	for i := 1; i < len(res); i++ {
		for j := i; j > 0 && res[j-1] > res[j]; j-- {
			res[j-1], res[j] = res[j], res[j-1]
		}
	}
	return res
}

// Allsat iterates through every legal variable assignment reachable through
// e and calls f on each, passing a slice of length Varnum where entry v is 0
// if the variable is false, 1 if true, and -1 if it is a don't care
// (unconstrained), plus the multiplicity accumulated along that path. Under
// ZDDRule a variable that the path skips is also reported as -1, although
// the ZDD treats it as false.
// Iteration stops, returning the error, as soon as f returns a non-nil
// error.
func (f *Factory[T]) Allsat(e Edge[T], fn func(profile []int, mult T) error) error {
	profile := make([]int, f.varnum)
	for k := range profile {
		profile[k] = -1
	}
	return f.allsat(e, profile, fn)
}

func (f *Factory[T]) allsat(e Edge[T], profile []int, fn func([]int, T) error) error {
	if e.node == oneIndex {
		return fn(profile, e.mult)
	}
	if e.node == zeroIndex {
		return nil
	}
	n := f.nodes[e.node]
	lo := f.scale(n.lo, e.mult)
	if !f.isZero(lo) {
		profile[n.level] = 0
		for v := f.level(lo) - 1; v > n.level; v-- {
			profile[v] = -1
		}
		if err := f.allsat(lo, profile, fn); err != nil {
			return err
		}
	}
	hi := f.scale(n.hi, e.mult)
	if !f.isZero(hi) {
		profile[n.level] = 1
		for v := f.level(hi) - 1; v > n.level; v-- {
			profile[v] = -1
		}
		if err := f.allsat(hi, profile, fn); err != nil {
			return err
		}
	}
	return nil
}

// Allnodes applies fn to every node reachable from the edges in roots, or to
// every node ever produced if roots is empty. fn receives the node's id,
// level, and the ids of its low/high successors; the two sinks are always
// reported with id 0 and 1. Allnodes stops and returns fn's error as soon as
// it returns one.
func (f *Factory[T]) Allnodes(fn func(id, level, low, high int) error, roots ...Edge[T]) error {
	if len(roots) == 0 {
		return f.allnodesTable(fn)
	}
	seen := make(map[int32]bool)
	var walk func(Edge[T]) error
	walk = func(e Edge[T]) error {
		if isSink(e) || seen[e.node] {
			return nil
		}
		seen[e.node] = true
		n := f.nodes[e.node]
		if err := walk(n.lo); err != nil {
			return err
		}
		if err := walk(n.hi); err != nil {
			return err
		}
		return fn(int(e.node), int(n.level), int(n.lo.node), int(n.hi.node))
	}
	if err := fn(0, int(f.varnum), 0, 0); err != nil {
		return err
	}
	if err := fn(1, int(f.varnum), 1, 1); err != nil {
		return err
	}
	for _, e := range roots {
		if err := walk(e); err != nil {
			return err
		}
	}
	return nil
}

func (f *Factory[T]) allnodesTable(fn func(id, level, low, high int) error) error {
	if err := fn(0, int(f.varnum), 0, 0); err != nil {
		return err
	}
	if err := fn(1, int(f.varnum), 1, 1); err != nil {
		return err
	}
	for k := 2; k < len(f.nodes); k++ {
		n := f.nodes[k]
		if err := fn(k, int(n.level), int(n.lo.node), int(n.hi.node)); err != nil {
			return err
		}
	}
	return nil
}

// CheckInvariants walks every node reachable from e and verifies the
// reduction contract makenode is supposed to enforce: a node's level is
// strictly less than the level of both its children, it does not violate
// its rule's collapsing condition (lo==hi under BDDRule, or a zero hi under
// ZDDRule), and its canonical-table entry still maps back to itself. It
// exists to catch a broken Factory during testing; a correctly functioning
// Factory never produces a node failing this check.
func (f *Factory[T]) CheckInvariants(e Edge[T]) error {
	seen := make(map[int32]bool)
	var walk func(Edge[T]) error
	walk = func(x Edge[T]) error {
		if isSink(x) || seen[x.node] {
			return nil
		}
		seen[x.node] = true
		n := f.nodes[x.node]
		if n.level < 0 || n.level >= f.varnum {
			return fmt.Errorf("xdd: node %d has out-of-range level %d", x.node, n.level)
		}
		if f.level(n.lo) <= n.level {
			return fmt.Errorf("xdd: node %d level %d does not precede its low branch (level %d)", x.node, n.level, f.level(n.lo))
		}
		if f.level(n.hi) <= n.level {
			return fmt.Errorf("xdd: node %d level %d does not precede its high branch (level %d)", x.node, n.level, f.level(n.hi))
		}
		switch f.rule {
		case BDDRule:
			if n.lo == n.hi {
				return fmt.Errorf("xdd: node %d violates BDDRule: low == high", x.node)
			}
		case ZDDRule:
			if f.isZero(n.hi) {
				return fmt.Errorf("xdd: node %d violates ZDDRule: high is the zero edge", x.node)
			}
		}
		if idx, ok := f.unique[n]; !ok || idx != x.node {
			return fmt.Errorf("xdd: node %d is not canonical in the unique table", x.node)
		}
		if err := walk(n.lo); err != nil {
			return err
		}
		return walk(n.hi)
	}
	return walk(e)
}
