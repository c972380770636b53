// Package group defines the capability the sharing engine needs from a
// prime-order group: a scalar field modulo the group order q and the group
// itself with a fixed generator.
//
// The engine never touches curve arithmetic directly. Concrete backends live in
// the subpackages:
//
//   - secp256k1: the Bitcoin curve, via btcec/v2
//   - ristretto255: the Ristretto prime-order group over Curve25519
//   - nist: P-256, P-384 and P-521, via circl
//
// # Mutation Style
//
// Scalar and Element methods follow the math/big convention: the receiver is
// set to the result and returned, so z.Add(a, b) computes z = a + b. Operands
// may alias the receiver. Operands must come from the same group: mixing
// values from two different groups panics. GroupName identifies the producing
// group, and CheckScalar and CheckElement let callers reject foreign values
// before doing arithmetic on them.
//
// # Encodings
//
// Scalar.Bytes is big-endian and exactly ScalarLength bytes long for every
// backend. Element encodings are backend specific (compressed SEC1 for the
// Weierstrass curves, canonical Ristretto encoding otherwise).
package group
