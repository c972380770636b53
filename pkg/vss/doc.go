// Package vss is the root of a Feldman verifiable secret sharing library.
//
// A dealer splits a secret scalar into n shares so that any t of them
// reconstruct it, while fewer than t reveal nothing. The Feldman variant also
// publishes one group commitment per polynomial coefficient, which lets every
// share holder check their share without trusting the dealer.
//
// # Packages
//
//   - vss: Config, Share and the error taxonomy shared by every subpackage
//   - vss/group: the Group capability (scalar field + prime-order group)
//   - vss/group/secp256k1, vss/group/ristretto255, vss/group/nist: backends
//   - vss/groups: lookup of backends by name
//   - vss/polynomial: sampling, Horner evaluation, Lagrange interpolation
//   - vss/shamir: plain Shamir sharing
//   - vss/feldman: Feldman VSS with commitments and verification
//   - vss/wire: JSON and YAML documents for shares and commitment vectors
//   - vss/logging: slog-backed logging facade with redaction
//
// # Usage Example
//
//	g := secp256k1.New()
//	scheme, err := feldman.New(g, vss.Config{Threshold: 3, ShareAmount: 5})
//	if err != nil {
//	    return err
//	}
//	shares, commitments, err := scheme.Split(nil, g.ScalarFromUint64(7))
//	if err != nil {
//	    return err
//	}
//	ok, err := scheme.Verify(shares[0], commitments)
//	secret, err := scheme.Recover(shares[1:4])
//
// # Errors
//
// Misuse is reported through wrapped sentinels (ErrInvalidConfig,
// ErrShareCount, ErrDuplicateIndex, ...) that can be matched with errors.Is.
// A share that does not match its commitments is not an error: Verify simply
// returns false.
package vss
