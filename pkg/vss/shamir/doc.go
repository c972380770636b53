// Package shamir implements plain (t, n) Shamir secret sharing over a group's
// scalar field.
//
// The dealer samples a random polynomial of degree t-1 whose constant term is
// the secret and hands out its values at x = 1..n. Any t shares determine the
// polynomial and therefore the secret; fewer reveal nothing. Shamir shares
// cannot be checked by their holders; use package feldman when the dealer is
// not trusted.
//
// # Usage Example
//
//	g := ristretto255.New()
//	scheme, err := shamir.New(g, vss.Config{Threshold: 2, ShareAmount: 3})
//	if err != nil {
//	    return err
//	}
//	shares, err := scheme.Split(nil, secret) // nil reader: crypto/rand
//	...
//	secret, err := scheme.Recover([]vss.Share{shares[0], shares[2]})
//
// # Share Re-derivation
//
// Derive recomputes the share for any index from t other shares. The rebuilt
// share is identical to the lost one, so commitments and the remaining shares
// stay valid.
package shamir
