// Package feldman implements Feldman verifiable secret sharing.
//
// Split works like Shamir sharing but also publishes a commitment vector
// C[i] = G·a_i, one group element per polynomial coefficient, constant term
// first. A holder of share (i, y) checks it by comparing G·y with the
// commitment polynomial evaluated in the exponent,
//
//	C[0] + i·C[1] + i²·C[2] + ... = ((C[t-1]·i + C[t-2])·i + ...)·i + C[0]
//
// which Verify computes with Horner's method from the highest degree down.
//
// # Protocol Flow
//
//	shares, commitments, err := scheme.Split(nil, secret)
//	// publish commitments, send shares[i] privately to holder i
//	ok, err := scheme.Verify(share, commitments)     // each holder
//	secret, err := scheme.Recover(anyThresholdShares) // any quorum
//
// A commitment vector only means something under the group and threshold that
// produced it. Verify rejects vectors of the wrong length, and indices outside
// 1..ShareAmount, with errors. A share that simply does not match is reported
// as false with a nil error.
//
// # Parallel Verification
//
// VerifyAll checks shares on up to WithParallelism workers and stops as soon
// as any worker sees a failing share. Small batches run inline.
package feldman
