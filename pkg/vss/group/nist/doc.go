// Package nist implements the group capability over the NIST prime curves
// P-256, P-384 and P-521 using github.com/cloudflare/circl/group.
//
// circl samples random scalars with a panic on reader failure, so this
// package draws randomness itself and reduces it modulo the curve order,
// returning reader errors to the caller instead.
//
// Elements encode as compressed SEC1 points; the identity encodes as a single
// zero byte.
package nist
