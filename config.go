// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

// configs stores the tunable parameters of a Factory.
type configs struct {
	varnum      int // number of variables
	nodesize    int // initial number of nodes in the table
	cachesize   int // initial size of each operation cache
	maxnodesize int // maximum total number of nodes (0 if no limit)
}

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	// enough room for the two sinks and the cube over every declared variable
	c.nodesize = 2*varnum + 2
	c.cachesize = 10000
	return c
}

// Option configures a Factory at construction time.
type Option func(*configs)

// Nodesize sets a preferred initial size for the node table. The table can
// grow past this size during computation; it never shrinks. By default the
// table starts large enough to hold the two sinks and the variables used by
// Ithvar/NIthvar.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize caps the number of nodes a Factory may ever hold. An operation
// that would exceed the cap fails with ErrCapacityExceeded and leaves the
// Factory's sticky error set. The default (0) means no cap beyond the
// addressing width of a node index.
func Maxnodesize(size int) Option {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Cachesize sets the initial number of entries in each operation cache
// (apply, ite, quantify, replace). The default is 10000.
func Cachesize(size int) Option {
	return func(c *configs) {
		c.cachesize = size
	}
}
