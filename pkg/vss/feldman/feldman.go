package feldman

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/hsiuhsiu/vss-go/internal/deal"
	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
	"github.com/hsiuhsiu/vss-go/pkg/vss/logging"
	"github.com/hsiuhsiu/vss-go/pkg/vss/shamir"
)

// parallelThreshold is the batch size below which VerifyAll stays on the
// calling goroutine.
const parallelThreshold = 32

// errShareMismatch stops the parallel workers of VerifyAll at the first share
// that fails. It never leaves the package.
var errShareMismatch = errors.New("share does not match commitments")

// Commitments holds G·a_i for every coefficient a_i of the dealer polynomial,
// constant term first.
type Commitments []group.Element

// PublicKey returns C[0] = G·secret, or nil for an empty vector.
func (c Commitments) PublicKey() group.Element {
	if len(c) == 0 {
		return nil
	}
	return c[0]
}

// Scheme is an immutable Feldman VSS configuration bound to one group. Recover
// and Derive are inherited from the underlying Shamir scheme. It is safe for
// concurrent use.
type Scheme struct {
	*shamir.Scheme

	logger      logging.Logger
	parallelism int
}

// New validates cfg and returns a scheme over g.
func New(g group.Group, cfg vss.Config, opts ...Option) (*Scheme, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	base, err := shamir.New(g, cfg, o.shamirOptions()...)
	if err != nil {
		return nil, err
	}
	return &Scheme{
		Scheme:      base,
		logger:      base.Logger().With("scheme", "feldman"),
		parallelism: o.parallelism,
	}, nil
}

func (s *Scheme) check(op string) error {
	if s == nil || s.Scheme == nil || s.Group() == nil {
		return vss.Errorf(op, "%w", vss.ErrNilGroup)
	}
	return s.Config().Validate()
}

// Split splits secret into ShareAmount shares and returns the commitment
// vector for the dealer polynomial. A nil rand uses crypto/rand.Reader.
func (s *Scheme) Split(rnd io.Reader, secret group.Scalar) ([]vss.Share, Commitments, error) {
	if err := s.check("Split"); err != nil {
		return nil, nil, err
	}
	p, shares, err := deal.Deal("Split", s.Group(), s.Config(), rnd, secret)
	if err != nil {
		return nil, nil, err
	}
	defer p.Zeroize(s.Group())

	commitments := Commitments(p.Commit(s.Group()))
	s.logger.Debug(context.Background(), "split complete",
		logging.Redacted("secret"), "shares", len(shares), "commitments", len(commitments))
	return shares, commitments, nil
}

// checkCommitments validates the commitment vector shape.
func (s *Scheme) checkCommitments(op string, commitments Commitments) error {
	t := s.Config().Threshold
	if len(commitments) != t {
		return vss.Errorf(op, "%w: want %d commitments, got %d", vss.ErrCommitmentLength, t, len(commitments))
	}
	for i, c := range commitments {
		if c == nil {
			return vss.Errorf(op, "%w: commitment %d is nil", vss.ErrInvalidShare, i)
		}
		if !group.CheckElement(s.Group(), c) {
			return vss.Errorf(op, "%w: commitment %d belongs to %s, scheme to %s",
				vss.ErrGroupMismatch, i, c.GroupName(), s.Group().Name())
		}
	}
	return nil
}

func (s *Scheme) checkShare(op string, share vss.Share) error {
	if share.Value == nil {
		return vss.Errorf(op, "%w: share %d has no value", vss.ErrInvalidShare, share.Index)
	}
	cfg := s.Config()
	if !cfg.ValidIndex(share.Index) {
		return vss.Errorf(op, "%w: index %d not in 1..%d", vss.ErrIndexOutOfRange, share.Index, cfg.ShareAmount)
	}
	if !group.CheckScalar(s.Group(), share.Value) {
		return vss.Errorf(op, "%w: share %d belongs to %s, scheme to %s",
			vss.ErrGroupMismatch, share.Index, share.Value.GroupName(), s.Group().Name())
	}
	return nil
}

// expected evaluates the commitment polynomial at index in the exponent:
// acc = acc·x + C[i] from the highest degree down to C[0]. The order matters;
// folding from C[0] upward evaluates the reversed polynomial.
func (s *Scheme) expected(index int, commitments Commitments) group.Element {
	x := vss.IndexScalar(s.Group(), index)
	acc := commitments[len(commitments)-1].Copy()
	for i := len(commitments) - 2; i >= 0; i-- {
		acc.ScalarMult(acc, x)
		acc.Add(acc, commitments[i])
	}
	return acc
}

func (s *Scheme) verify(share vss.Share, commitments Commitments) bool {
	lhs := s.Group().NewElement().ScalarBaseMult(share.Value)
	return lhs.Equal(s.expected(share.Index, commitments))
}

// Verify reports whether share is consistent with commitments. Malformed input
// is an error; a share that does not match is false with a nil error.
func (s *Scheme) Verify(share vss.Share, commitments Commitments) (bool, error) {
	if err := s.check("Verify"); err != nil {
		return false, err
	}
	if err := s.checkCommitments("Verify", commitments); err != nil {
		return false, err
	}
	if err := s.checkShare("Verify", share); err != nil {
		return false, err
	}
	ok := s.verify(share, commitments)
	if !ok {
		s.logger.Debug(context.Background(), "share rejected", "index", share.Index)
	}
	return ok, nil
}

// VerifyAll reports whether every share is consistent with commitments. All
// shares are validated before any is checked, so malformed input is reported
// even when an earlier share would fail. Callers that need to know which share
// failed should call Verify on each.
func (s *Scheme) VerifyAll(shares []vss.Share, commitments Commitments) (bool, error) {
	if err := s.check("VerifyAll"); err != nil {
		return false, err
	}
	if err := s.checkCommitments("VerifyAll", commitments); err != nil {
		return false, err
	}
	for _, sh := range shares {
		if err := s.checkShare("VerifyAll", sh); err != nil {
			return false, err
		}
	}

	workers := s.parallelism
	if len(shares) < parallelThreshold || workers <= 1 {
		for _, sh := range shares {
			if !s.verify(sh, commitments) {
				s.logger.Debug(context.Background(), "batch rejected", "index", sh.Index)
				return false, nil
			}
		}
		return true, nil
	}

	if workers > len(shares) {
		workers = len(shares)
	}
	chunk := (len(shares) + workers - 1) / workers

	// The first mismatching share cancels ctx and the remaining workers stop
	// at their next share.
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for start := 0; start < len(shares); start += chunk {
		part := shares[start:min(start+chunk, len(shares))]
		g.Go(func() error {
			for _, sh := range part {
				if err := ctx.Err(); err != nil {
					return err
				}
				if !s.verify(sh, commitments) {
					return errShareMismatch
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Debug(context.Background(), "batch rejected", "shares", len(shares), "workers", workers)
		return false, nil
	}
	return true, nil
}

// VerifySecret reports whether secret is the value committed to by C[0].
func (s *Scheme) VerifySecret(secret group.Scalar, commitments Commitments) (bool, error) {
	if err := s.check("VerifySecret"); err != nil {
		return false, err
	}
	if err := s.checkCommitments("VerifySecret", commitments); err != nil {
		return false, err
	}
	if secret == nil {
		return false, vss.Errorf("VerifySecret", "%w: nil secret", vss.ErrInvalidShare)
	}
	if !group.CheckScalar(s.Group(), secret) {
		return false, vss.Errorf("VerifySecret", "%w: secret belongs to %s, scheme to %s",
			vss.ErrGroupMismatch, secret.GroupName(), s.Group().Name())
	}
	lhs := s.Group().NewElement().ScalarBaseMult(secret)
	return lhs.Equal(commitments.PublicKey()), nil
}
