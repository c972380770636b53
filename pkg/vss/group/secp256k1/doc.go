// Package secp256k1 implements the group capability over the secp256k1
// curve using github.com/btcsuite/btcd/btcec/v2.
//
// Scalars are btcec.ModNScalar values and elements are Jacobian points.
// Arithmetic uses the NonConst variants of btcec, which is fine for share
// verification but means Split leaks timing on the polynomial coefficients to
// an observer of the dealer process.
//
// Elements encode as 33-byte compressed SEC1 points; the identity encodes as a
// single zero byte.
package secp256k1
