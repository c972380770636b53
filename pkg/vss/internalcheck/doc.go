// Package internalcheck holds source-policy tests for the library packages.
//
// The tests load every package under pkg/vss with golang.org/x/tools/go/packages
// and fail on constructs that tend to leak secret material: variable-time
// comparison of byte slices, %x formatting, scalars passed to a logger, and
// exported APIs that return the dealer polynomial.
// The package has no exported API.
package internalcheck
