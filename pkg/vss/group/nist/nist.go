package nist

import (
	"crypto/elliptic"
	"io"
	"math/big"

	circl "github.com/cloudflare/circl/group"

	"github.com/hsiuhsiu/vss-go/internal/modn"
	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
)

// Registry names of the groups.
const (
	NameP256 = "p256"
	NameP384 = "p384"
	NameP521 = "p521"
)

// Curve is a NIST prime-order group backed by circl.
type Curve struct {
	name  string
	g     circl.Group
	order *big.Int
	size  int
}

var _ group.Group = (*Curve)(nil)

func newCurve(name string, g circl.Group, c elliptic.Curve) *Curve {
	n := c.Params().N
	return &Curve{name: name, g: g, order: n, size: modn.OrderLength(n)}
}

var (
	p256 = newCurve(NameP256, circl.P256, elliptic.P256())
	p384 = newCurve(NameP384, circl.P384, elliptic.P384())
	p521 = newCurve(NameP521, circl.P521, elliptic.P521())
)

// P256 returns the P-256 group.
func P256() *Curve { return p256 }

// P384 returns the P-384 group.
func P384() *Curve { return p384 }

// P521 returns the P-521 group.
func P521() *Curve { return p521 }

// Name implements group.Group.
func (c *Curve) Name() string { return c.name }

// Order implements group.Group.
func (c *Curve) Order() *big.Int { return new(big.Int).Set(c.order) }

// ScalarLength implements group.Group.
func (c *Curve) ScalarLength() int { return c.size }

// NewScalar implements group.Group.
func (c *Curve) NewScalar() group.Scalar {
	return &Scalar{c: c, s: c.g.NewScalar()}
}

// NewElement implements group.Group.
func (c *Curve) NewElement() group.Element {
	return &Element{c: c, e: c.g.Identity()}
}

// Generator implements group.Group.
func (c *Curve) Generator() group.Element {
	return &Element{c: c, e: c.g.Generator()}
}

// ScalarFromUint64 implements group.Group.
func (c *Curve) ScalarFromUint64(x uint64) group.Scalar {
	return c.scalarFromInt(new(big.Int).SetUint64(x))
}

// ScalarFromBytes implements group.Group.
func (c *Curve) ScalarFromBytes(b []byte) group.Scalar {
	return c.scalarFromInt(modn.ReduceInt(b, c.order))
}

func (c *Curve) scalarFromInt(v *big.Int) *Scalar {
	s := c.g.NewScalar()
	s.SetBigInt(v.Mod(v, c.order))
	return &Scalar{c: c, s: s}
}

// RandomScalar implements group.Group.
func (c *Curve) RandomScalar(rand io.Reader) (group.Scalar, error) {
	b, err := modn.Random(rand, c.order, c.size)
	if err != nil {
		return nil, vss.Errorf("RandomScalar", "%w: %v", vss.ErrRandomSource, err)
	}
	defer vss.ZeroizeBytes(b)
	return c.scalarFromInt(new(big.Int).SetBytes(b)), nil
}

// DecodeScalar implements group.Group.
func (c *Curve) DecodeScalar(b []byte) (group.Scalar, error) {
	if !modn.Canonical(b, c.order, c.size) {
		return nil, vss.Errorf("DecodeScalar", "%w: not a canonical %d-byte scalar", vss.ErrEncoding, c.size)
	}
	return c.scalarFromInt(new(big.Int).SetBytes(b)), nil
}

// DecodeElement implements group.Group.
func (c *Curve) DecodeElement(b []byte) (group.Element, error) {
	if len(b) != 1+c.fieldLength() && !(len(b) == 1 && b[0] == 0) {
		return nil, vss.Errorf("DecodeElement", "%w: want compressed point, got %d bytes", vss.ErrEncoding, len(b))
	}
	e := c.g.NewElement()
	if err := e.UnmarshalBinary(b); err != nil {
		return nil, vss.Errorf("DecodeElement", "%w: %v", vss.ErrEncoding, err)
	}
	return &Element{c: c, e: e}, nil
}

func (c *Curve) fieldLength() int {
	return int(c.g.Params().CompressedElementLength) - 1
}

// Scalar is an integer modulo the curve order.
type Scalar struct {
	c *Curve
	s circl.Scalar
}

var _ group.Scalar = (*Scalar)(nil)

func mustScalar(a group.Scalar) circl.Scalar {
	return a.(*Scalar).s
}

// Set implements group.Scalar.
func (z *Scalar) Set(a group.Scalar) group.Scalar {
	z.s.Set(mustScalar(a))
	return z
}

// Add implements group.Scalar.
func (z *Scalar) Add(a, b group.Scalar) group.Scalar {
	z.s.Add(mustScalar(a), mustScalar(b))
	return z
}

// Sub implements group.Scalar.
func (z *Scalar) Sub(a, b group.Scalar) group.Scalar {
	z.s.Sub(mustScalar(a), mustScalar(b))
	return z
}

// Mul implements group.Scalar.
func (z *Scalar) Mul(a, b group.Scalar) group.Scalar {
	z.s.Mul(mustScalar(a), mustScalar(b))
	return z
}

// Inv implements group.Scalar.
func (z *Scalar) Inv(a group.Scalar) group.Scalar {
	z.s.Inv(mustScalar(a))
	return z
}

// IsZero implements group.Scalar.
func (z *Scalar) IsZero() bool {
	return z.s.IsEqual(z.c.g.NewScalar())
}

// Equal implements group.Scalar.
func (z *Scalar) Equal(b group.Scalar) bool {
	return z.s.IsEqual(mustScalar(b))
}

// Copy implements group.Scalar.
func (z *Scalar) Copy() group.Scalar {
	return &Scalar{c: z.c, s: z.s.Copy()}
}

// Bytes implements group.Scalar.
func (z *Scalar) Bytes() []byte {
	raw, _ := z.s.MarshalBinary() // never fails for prime-field scalars
	out := make([]byte, z.c.size)
	new(big.Int).SetBytes(raw).FillBytes(out)
	vss.ZeroizeBytes(raw)
	return out
}

// GroupName implements group.Scalar.
func (z *Scalar) GroupName() string { return z.c.name }

// Element is a point on a NIST curve.
type Element struct {
	c *Curve
	e circl.Element
}

var _ group.Element = (*Element)(nil)

func mustElement(a group.Element) circl.Element {
	return a.(*Element).e
}

// Set implements group.Element.
func (e *Element) Set(a group.Element) group.Element {
	e.e.Set(mustElement(a))
	return e
}

// Add implements group.Element.
func (e *Element) Add(a, b group.Element) group.Element {
	e.e.Add(mustElement(a), mustElement(b))
	return e
}

// ScalarMult implements group.Element.
func (e *Element) ScalarMult(a group.Element, s group.Scalar) group.Element {
	e.e.Mul(mustElement(a), mustScalar(s))
	return e
}

// ScalarBaseMult implements group.Element.
func (e *Element) ScalarBaseMult(s group.Scalar) group.Element {
	e.e.MulGen(mustScalar(s))
	return e
}

// IsIdentity implements group.Element.
func (e *Element) IsIdentity() bool { return e.e.IsIdentity() }

// GroupName implements group.Element.
func (e *Element) GroupName() string { return e.c.name }

// Equal implements group.Element.
func (e *Element) Equal(b group.Element) bool {
	return e.e.IsEqual(mustElement(b))
}

// Copy implements group.Element.
func (e *Element) Copy() group.Element {
	return &Element{c: e.c, e: e.e.Copy()}
}

// Bytes implements group.Element.
func (e *Element) Bytes() ([]byte, error) {
	b, err := e.e.MarshalBinaryCompress()
	if err != nil {
		return nil, vss.Errorf("Element.Bytes", "%w: %v", vss.ErrEncoding, err)
	}
	return b, nil
}
