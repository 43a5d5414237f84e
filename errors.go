// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"errors"
	"fmt"
	"log"
)

// Categorical errors, surfaced as distinct sentinel values rather than plain
// strings so callers can test kind with errors.Is.
var (
	// ErrCapacityExceeded is returned when a node index cannot be
	// allocated because the table has reached Maxnodesize or the index
	// width has been exhausted.
	ErrCapacityExceeded = errors.New("xdd: node table capacity exceeded")
	// ErrVariableOutOfRange is returned when a variable index falls
	// outside [0, Varnum), or when a ZDD complement universe is smaller
	// than Varnum.
	ErrVariableOutOfRange = errors.New("xdd: variable out of range")
	// ErrCrossFactoryEdge is the error kind for an edge produced by one
	// Factory being passed to another. Edges carry no reference to their
	// Factory, so no operation of this package detects that case or
	// returns this error.
	ErrCrossFactoryEdge = errors.New("xdd: edge does not belong to this factory")
	// ErrUnsupportedOperation is returned when a combinator is called on
	// a reduction rule or multiplicity carrier that does not support it,
	// e.g. Not on a ZDD without a universe, or Difference on a carrier
	// whose Ring has no Sub.
	ErrUnsupportedOperation = errors.New("xdd: operation not supported")
)

// Error returns the text of the last error encountered by the Factory, or
// the empty string if there has been none.
func (f *Factory[T]) Error() string {
	if f.err == nil {
		return ""
	}
	return f.err.Error()
}

// Errored reports whether the Factory has recorded an error.
func (f *Factory[T]) Errored() bool {
	return f.err != nil
}

// seterror records err as the Factory's sticky error, so that combinators
// whose signature has no room for an error return (mirroring the teacher's
// Apply/Ite/Exist, which just return a Node) still surface failures to a
// caller willing to check Errored/Error. It always returns the false edge.
func (f *Factory[T]) seterror(err error) Edge[T] {
	if f.err == nil {
		f.err = err
	} else {
		f.err = fmt.Errorf("%w; %s", err, f.err.Error())
	}
	if debugging {
		log.Println(f.err)
	}
	return f.False()
}
