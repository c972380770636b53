// Package deal samples the dealer polynomial for the sharing schemes. The
// polynomial is internal to this module: schemes evaluate or commit to it and
// zeroize it before returning.
package deal

import (
	"crypto/rand"
	"io"

	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
	"github.com/hsiuhsiu/vss-go/pkg/vss/polynomial"
)

// Deal samples a polynomial of degree Threshold-1 with constant term secret
// and evaluates it at 1..ShareAmount. cfg must already be validated. The
// caller owns the polynomial and must zeroize it. A nil rnd uses
// crypto/rand.Reader.
func Deal(op string, g group.Group, cfg vss.Config, rnd io.Reader, secret group.Scalar) (polynomial.Polynomial, []vss.Share, error) {
	if secret == nil {
		return nil, nil, vss.Errorf(op, "%w: nil secret", vss.ErrInvalidShare)
	}
	if !group.CheckScalar(g, secret) {
		return nil, nil, vss.Errorf(op, "%w: secret belongs to %s, scheme to %s",
			vss.ErrGroupMismatch, secret.GroupName(), g.Name())
	}
	if rnd == nil {
		rnd = rand.Reader
	}
	p, err := polynomial.Sample(g, rnd, secret, cfg.Threshold)
	if err != nil {
		return nil, nil, err
	}
	shares := make([]vss.Share, cfg.ShareAmount)
	for i := range shares {
		index := i + 1
		shares[i] = vss.Share{Index: index, Value: p.Evaluate(vss.IndexScalar(g, index))}
	}
	return p, shares, nil
}
