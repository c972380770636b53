// Package ristretto255 implements the group capability over the Ristretto
// prime-order group using github.com/bwesterb/go-ristretto.
//
// Ristretto removes the cofactor of Curve25519, so every encoded element is in
// the prime-order group and equality is equality of group elements. Elements
// encode to 32 bytes. Scalars are little-endian in go-ristretto but are
// exposed big-endian here so every backend shares one scalar encoding.
package ristretto255
