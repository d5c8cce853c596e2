// Package biguint implements an arbitrary-precision unsigned integer as a
// little-endian sequence of fixed-width machine words.
//
// A BigUint is a value type: assignment copies the header and shares the
// backing digit slice (use Clone for an independent copy), and every
// arithmetic operation returns a freshly canonicalized result rather than
// mutating either operand in place. A single BigUint must not be
// mutated concurrently with any other access to it, but distinct instances
// may be used freely across goroutines.
package biguint
