package vss

import "github.com/hsiuhsiu/vss-go/pkg/vss/group"

// Share is one participant's evaluation of the dealer polynomial. Index is
// never 0, which is reserved for the secret.
type Share struct {
	Index int
	Value group.Scalar
}

// CheckShares validates a share set against cfg before interpolation: every
// value must be non-nil, every index in range and no index repeated. The op
// name is used for error context.
func CheckShares(op string, cfg Config, shares []Share) error {
	seen := make(map[int]struct{}, len(shares))
	for i, s := range shares {
		if s.Value == nil {
			return Errorf(op, "%w: share %d has no value", ErrInvalidShare, i)
		}
		if !cfg.ValidIndex(s.Index) {
			return Errorf(op, "%w: index %d not in 1..%d", ErrIndexOutOfRange, s.Index, cfg.ShareAmount)
		}
		if _, dup := seen[s.Index]; dup {
			return Errorf(op, "%w: %d", ErrDuplicateIndex, s.Index)
		}
		seen[s.Index] = struct{}{}
	}
	return nil
}

// IndexScalar maps a share index into the scalar field. Every evaluation and
// verification goes through this one reduction.
func IndexScalar(g group.Group, index int) group.Scalar {
	return g.ScalarFromUint64(uint64(index))
}
