// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "math"

// MaxVariables is the largest number of variables a single Factory may
// declare.
const MaxVariables int = 65535

// zeroIndex and oneIndex are the reserved node indices for the two sinks.
// They never appear as keys in the unique table; every other index refers
// to an entry in Factory.nodes.
const (
	zeroIndex int32 = 0
	oneIndex  int32 = 1
)

// maxNodeIndex is the largest node index an int32-addressed table can ever
// hold; make_node reports ErrCapacityExceeded rather than overflow past it.
const maxNodeIndex = int32(math.MaxInt32)
