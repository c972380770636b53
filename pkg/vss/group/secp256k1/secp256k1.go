package secp256k1

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/hsiuhsiu/vss-go/internal/modn"
	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
)

// Name is the registry name of the group.
const Name = "secp256k1"

const (
	scalarLength  = 32
	elementLength = 33
)

// identityEncoding is the SEC1 encoding of the point at infinity.
var identityEncoding = []byte{0x00}

var order = btcec.S256().Params().N

// Group is the secp256k1 group. The zero value is ready to use.
type Group struct{}

var _ group.Group = Group{}

// New returns the secp256k1 group.
func New() Group {
	return Group{}
}

// Name implements group.Group.
func (Group) Name() string { return Name }

// Order implements group.Group.
func (Group) Order() *big.Int { return new(big.Int).Set(order) }

// ScalarLength implements group.Group.
func (Group) ScalarLength() int { return scalarLength }

// NewScalar implements group.Group.
func (Group) NewScalar() group.Scalar { return new(Scalar) }

// NewElement implements group.Group.
func (Group) NewElement() group.Element { return new(Element) }

// Generator implements group.Group.
func (Group) Generator() group.Element {
	var one btcec.ModNScalar
	one.SetInt(1)
	e := new(Element)
	btcec.ScalarBaseMultNonConst(&one, &e.p)
	return e
}

// ScalarFromUint64 implements group.Group.
func (Group) ScalarFromUint64(x uint64) group.Scalar {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], x)
	s := new(Scalar)
	s.s.SetByteSlice(buf[:])
	return s
}

// ScalarFromBytes implements group.Group.
func (Group) ScalarFromBytes(b []byte) group.Scalar {
	reduced := modn.Reduce(b, order, scalarLength)
	defer vss.ZeroizeBytes(reduced)
	s := new(Scalar)
	s.s.SetByteSlice(reduced)
	return s
}

// RandomScalar implements group.Group.
func (Group) RandomScalar(rand io.Reader) (group.Scalar, error) {
	b, err := modn.Random(rand, order, scalarLength)
	if err != nil {
		return nil, vss.Errorf("RandomScalar", "%w: %v", vss.ErrRandomSource, err)
	}
	defer vss.ZeroizeBytes(b)
	s := new(Scalar)
	s.s.SetByteSlice(b)
	return s, nil
}

// DecodeScalar implements group.Group.
func (Group) DecodeScalar(b []byte) (group.Scalar, error) {
	if len(b) != scalarLength {
		return nil, vss.Errorf("DecodeScalar", "%w: want %d bytes, got %d", vss.ErrEncoding, scalarLength, len(b))
	}
	s := new(Scalar)
	if overflow := s.s.SetByteSlice(b); overflow {
		return nil, vss.Errorf("DecodeScalar", "%w: scalar not below group order", vss.ErrEncoding)
	}
	return s, nil
}

// DecodeElement implements group.Group.
func (Group) DecodeElement(b []byte) (group.Element, error) {
	if len(b) == len(identityEncoding) && b[0] == identityEncoding[0] {
		return new(Element), nil
	}
	if len(b) != elementLength {
		return nil, vss.Errorf("DecodeElement", "%w: want %d bytes, got %d", vss.ErrEncoding, elementLength, len(b))
	}
	pk, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, vss.Errorf("DecodeElement", "%w: %v", vss.ErrEncoding, err)
	}
	e := new(Element)
	pk.AsJacobian(&e.p)
	return e, nil
}

// Scalar is an integer modulo the secp256k1 group order.
type Scalar struct {
	s btcec.ModNScalar
}

var _ group.Scalar = (*Scalar)(nil)

func mustScalar(a group.Scalar) *btcec.ModNScalar {
	return &a.(*Scalar).s
}

// Set implements group.Scalar.
func (z *Scalar) Set(a group.Scalar) group.Scalar {
	z.s.Set(mustScalar(a))
	return z
}

// Add implements group.Scalar.
func (z *Scalar) Add(a, b group.Scalar) group.Scalar {
	z.s.Add2(mustScalar(a), mustScalar(b))
	return z
}

// Sub implements group.Scalar.
func (z *Scalar) Sub(a, b group.Scalar) group.Scalar {
	var nb btcec.ModNScalar
	nb.NegateVal(mustScalar(b))
	z.s.Add2(mustScalar(a), &nb)
	return z
}

// Mul implements group.Scalar.
func (z *Scalar) Mul(a, b group.Scalar) group.Scalar {
	z.s.Mul2(mustScalar(a), mustScalar(b))
	return z
}

// Inv implements group.Scalar.
func (z *Scalar) Inv(a group.Scalar) group.Scalar {
	z.s.InverseValNonConst(mustScalar(a))
	return z
}

// IsZero implements group.Scalar.
func (z *Scalar) IsZero() bool { return z.s.IsZero() }

// Equal implements group.Scalar.
func (z *Scalar) Equal(b group.Scalar) bool {
	return z.s.Equals(mustScalar(b))
}

// Copy implements group.Scalar.
func (z *Scalar) Copy() group.Scalar {
	c := new(Scalar)
	c.s.Set(&z.s)
	return c
}

// Bytes implements group.Scalar.
func (z *Scalar) Bytes() []byte {
	b := z.s.Bytes()
	return b[:]
}

// GroupName implements group.Scalar.
func (*Scalar) GroupName() string { return Name }

// Element is a secp256k1 point in Jacobian coordinates. The zero value is
// the point at infinity.
type Element struct {
	p btcec.JacobianPoint
}

var _ group.Element = (*Element)(nil)

func mustElement(a group.Element) *btcec.JacobianPoint {
	return &a.(*Element).p
}

func isInfinity(p *btcec.JacobianPoint) bool {
	var x, y, z btcec.FieldVal
	x.Set(&p.X).Normalize()
	y.Set(&p.Y).Normalize()
	z.Set(&p.Z).Normalize()
	return (x.IsZero() && y.IsZero()) || z.IsZero()
}

// Set implements group.Element.
func (e *Element) Set(a group.Element) group.Element {
	e.p.Set(mustElement(a))
	return e
}

// Add implements group.Element.
func (e *Element) Add(a, b group.Element) group.Element {
	var r btcec.JacobianPoint
	btcec.AddNonConst(mustElement(a), mustElement(b), &r)
	e.p.Set(&r)
	return e
}

// ScalarMult implements group.Element.
func (e *Element) ScalarMult(a group.Element, s group.Scalar) group.Element {
	p, k := mustElement(a), mustScalar(s)
	if isInfinity(p) || k.IsZero() {
		e.p = btcec.JacobianPoint{}
		return e
	}
	var r btcec.JacobianPoint
	btcec.ScalarMultNonConst(k, p, &r)
	e.p.Set(&r)
	return e
}

// ScalarBaseMult implements group.Element.
func (e *Element) ScalarBaseMult(s group.Scalar) group.Element {
	k := mustScalar(s)
	if k.IsZero() {
		e.p = btcec.JacobianPoint{}
		return e
	}
	btcec.ScalarBaseMultNonConst(k, &e.p)
	return e
}

// IsIdentity implements group.Element.
func (e *Element) IsIdentity() bool { return isInfinity(&e.p) }

// GroupName implements group.Element.
func (*Element) GroupName() string { return Name }

// Equal implements group.Element.
func (e *Element) Equal(b group.Element) bool {
	o := mustElement(b)
	ei, oi := isInfinity(&e.p), isInfinity(o)
	if ei || oi {
		return ei && oi
	}
	var p, q btcec.JacobianPoint
	p.Set(&e.p)
	q.Set(o)
	p.ToAffine()
	q.ToAffine()
	return p.X.Equals(&q.X) && p.Y.Equals(&q.Y)
}

// Copy implements group.Element.
func (e *Element) Copy() group.Element {
	c := new(Element)
	c.p.Set(&e.p)
	return c
}

// Bytes implements group.Element.
func (e *Element) Bytes() ([]byte, error) {
	if isInfinity(&e.p) {
		return append([]byte(nil), identityEncoding...), nil
	}
	var p btcec.JacobianPoint
	p.Set(&e.p)
	p.ToAffine()
	return btcec.NewPublicKey(&p.X, &p.Y).SerializeCompressed(), nil
}
