package polynomial

import (
	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
)

// checkPoints rejects empty input, mismatched lengths and repeated xs.
func checkPoints(op string, xs []group.Scalar, ys int) error {
	if len(xs) == 0 {
		return vss.Errorf(op, "%w: no evaluation points", vss.ErrInvalidShare)
	}
	if len(xs) != ys {
		return vss.Errorf(op, "%w: %d points but %d values", vss.ErrInvalidShare, len(xs), ys)
	}
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Equal(xs[j]) {
				return vss.Errorf(op, "%w: points %d and %d coincide", vss.ErrDuplicateIndex, i, j)
			}
		}
	}
	return nil
}

// LagrangeCoefficient returns the basis value
// Π_{i≠j} (x − xs[i]) / (xs[j] − xs[i]).
func LagrangeCoefficient(g group.Group, x group.Scalar, xs []group.Scalar, j int) (group.Scalar, error) {
	if j < 0 || j >= len(xs) {
		return nil, vss.Errorf("LagrangeCoefficient", "%w: basis index %d out of %d", vss.ErrInvalidShare, j, len(xs))
	}
	if err := checkPoints("LagrangeCoefficient", xs, len(xs)); err != nil {
		return nil, err
	}
	return basis(g, x, xs, j), nil
}

// basis assumes checkPoints passed, so every denominator factor is nonzero.
func basis(g group.Group, x group.Scalar, xs []group.Scalar, j int) group.Scalar {
	num := g.ScalarFromUint64(1)
	den := g.ScalarFromUint64(1)
	tmp := g.NewScalar()
	for i := range xs {
		if i == j {
			continue
		}
		num.Mul(num, tmp.Sub(x, xs[i]))
		den.Mul(den, tmp.Sub(xs[j], xs[i]))
	}
	return num.Mul(num, tmp.Inv(den))
}

// Interpolate returns the value at x of the unique polynomial of degree
// len(xs)-1 through the points (xs[j], ys[j]).
func Interpolate(g group.Group, x group.Scalar, xs, ys []group.Scalar) (group.Scalar, error) {
	if err := checkPoints("Interpolate", xs, len(ys)); err != nil {
		return nil, err
	}
	result := g.NewScalar()
	term := g.NewScalar()
	for j := range xs {
		result.Add(result, term.Mul(ys[j], basis(g, x, xs, j)))
	}
	return result, nil
}
