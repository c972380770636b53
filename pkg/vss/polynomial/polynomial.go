package polynomial

import (
	"io"

	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
)

// Polynomial holds coefficients in ascending degree order: p[0] is the
// constant term.
type Polynomial []group.Scalar

// Sample returns a polynomial of length t (degree t-1) whose constant term is
// a copy of secret and whose other coefficients are drawn from rand.
func Sample(g group.Group, rand io.Reader, secret group.Scalar, t int) (Polynomial, error) {
	if t < 1 {
		return nil, vss.Errorf("Sample", "%w: threshold must be positive, got %d", vss.ErrInvalidConfig, t)
	}
	p := make(Polynomial, t)
	p[0] = secret.Copy()
	for i := 1; i < t; i++ {
		c, err := g.RandomScalar(rand)
		if err != nil {
			p[:i].Zeroize(g)
			return nil, err
		}
		p[i] = c
	}
	return p, nil
}

// Degree returns len(p)-1.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Evaluate returns p(x) using Horner's method. An empty polynomial evaluates
// to nil.
func (p Polynomial) Evaluate(x group.Scalar) group.Scalar {
	if len(p) == 0 {
		return nil
	}
	// a0 + a1 x + a2 x^2 = (a2 x + a1) x + a0
	result := p[len(p)-1].Copy()
	for i := len(p) - 2; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p[i])
	}
	return result
}

// Commit returns G·p[i] for every coefficient, constant term first.
func (p Polynomial) Commit(g group.Group) []group.Element {
	out := make([]group.Element, len(p))
	for i, c := range p {
		out[i] = g.NewElement().ScalarBaseMult(c)
	}
	return out
}

// Zeroize overwrites every coefficient with zero.
func (p Polynomial) Zeroize(g group.Group) {
	zero := g.NewScalar()
	for _, c := range p {
		if c != nil {
			c.Set(zero)
		}
	}
}
