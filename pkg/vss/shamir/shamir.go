package shamir

import (
	"context"
	"io"

	"github.com/hsiuhsiu/vss-go/internal/deal"
	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
	"github.com/hsiuhsiu/vss-go/pkg/vss/logging"
	"github.com/hsiuhsiu/vss-go/pkg/vss/polynomial"
)

// Scheme is an immutable (t, n) Shamir configuration bound to one group. It is
// safe for concurrent use.
type Scheme struct {
	g      group.Group
	cfg    vss.Config
	logger logging.Logger
}

// New validates cfg and returns a scheme over g.
func New(g group.Group, cfg vss.Config, opts ...Option) (*Scheme, error) {
	if g == nil {
		return nil, vss.Errorf("New", "%w", vss.ErrNilGroup)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scheme{
		g:      g,
		cfg:    cfg,
		logger: o.logger.With("group", g.Name(), "threshold", cfg.Threshold, "share_amount", cfg.ShareAmount),
	}, nil
}

// Group returns the group the scheme operates in.
func (s *Scheme) Group() group.Group { return s.g }

// Config returns the scheme parameters.
func (s *Scheme) Config() vss.Config { return s.cfg }

// Logger returns the scheme logger, for schemes layered on top of this one.
func (s *Scheme) Logger() logging.Logger { return s.logger }

func (s *Scheme) check(op string) error {
	if s == nil || s.g == nil {
		return vss.Errorf(op, "%w", vss.ErrNilGroup)
	}
	return s.cfg.Validate()
}

// Split splits secret into ShareAmount shares, any Threshold of which recover
// it. A nil rand uses crypto/rand.Reader.
func (s *Scheme) Split(rnd io.Reader, secret group.Scalar) ([]vss.Share, error) {
	if err := s.check("Split"); err != nil {
		return nil, err
	}
	p, shares, err := deal.Deal("Split", s.g, s.cfg, rnd, secret)
	if err != nil {
		return nil, err
	}
	p.Zeroize(s.g)
	s.logger.Debug(context.Background(), "split complete", logging.Redacted("secret"), "shares", len(shares))
	return shares, nil
}

// Recover reconstructs the secret from exactly Threshold shares with distinct
// indices.
func (s *Scheme) Recover(shares []vss.Share) (group.Scalar, error) {
	if err := s.check("Recover"); err != nil {
		return nil, err
	}
	secret, err := s.interpolate("Recover", shares, s.g.NewScalar())
	if err != nil {
		s.logger.Debug(context.Background(), "recover rejected", "error", err)
		return nil, err
	}
	s.logger.Debug(context.Background(), "recover complete", logging.Redacted("secret"))
	return secret, nil
}

// Derive recomputes the share at index from exactly Threshold other shares.
// The target index may or may not be among the inputs.
func (s *Scheme) Derive(shares []vss.Share, index int) (vss.Share, error) {
	if err := s.check("Derive"); err != nil {
		return vss.Share{}, err
	}
	if !s.cfg.ValidIndex(index) {
		return vss.Share{}, vss.Errorf("Derive", "%w: index %d not in 1..%d",
			vss.ErrIndexOutOfRange, index, s.cfg.ShareAmount)
	}
	value, err := s.interpolate("Derive", shares, vss.IndexScalar(s.g, index))
	if err != nil {
		return vss.Share{}, err
	}
	s.logger.Debug(context.Background(), "share derived", "index", index)
	return vss.Share{Index: index, Value: value}, nil
}

func (s *Scheme) interpolate(op string, shares []vss.Share, x group.Scalar) (group.Scalar, error) {
	if err := s.check(op); err != nil {
		return nil, err
	}
	if len(shares) != s.cfg.Threshold {
		return nil, vss.Errorf(op, "%w: need %d shares, got %d", vss.ErrShareCount, s.cfg.Threshold, len(shares))
	}
	if err := vss.CheckShares(op, s.cfg, shares); err != nil {
		return nil, err
	}
	for _, sh := range shares {
		if !group.CheckScalar(s.g, sh.Value) {
			return nil, vss.Errorf(op, "%w: share %d belongs to %s, scheme to %s",
				vss.ErrGroupMismatch, sh.Index, sh.Value.GroupName(), s.g.Name())
		}
	}
	xs := make([]group.Scalar, len(shares))
	ys := make([]group.Scalar, len(shares))
	for i, sh := range shares {
		xs[i] = vss.IndexScalar(s.g, sh.Index)
		ys[i] = sh.Value
	}
	return polynomial.Interpolate(s.g, x, xs, ys)
}
