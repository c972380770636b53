package ristretto255

import (
	"io"
	"math/big"

	"github.com/bwesterb/go-ristretto"

	"github.com/hsiuhsiu/vss-go/internal/modn"
	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
)

// Name is the registry name of the group.
const Name = "ristretto255"

const (
	scalarLength  = 32
	elementLength = 32
)

// order is l = 2^252 + 27742317777372353535851937790883648493.
var order, _ = new(big.Int).SetString(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

// Group is the Ristretto group. The zero value is ready to use.
type Group struct{}

var _ group.Group = Group{}

// New returns the Ristretto group.
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
func (Group) NewScalar() group.Scalar {
	s := new(Scalar)
	s.s.SetZero()
	return s
}

// NewElement implements group.Group.
func (Group) NewElement() group.Element {
	e := new(Element)
	e.p.SetZero()
	return e
}

// Generator implements group.Group.
func (Group) Generator() group.Element {
	e := new(Element)
	e.p.SetBase()
	return e
}

// ScalarFromUint64 implements group.Group.
func (Group) ScalarFromUint64(x uint64) group.Scalar {
	s := new(Scalar)
	s.s.SetBigInt(new(big.Int).SetUint64(x))
	return s
}

// ScalarFromBytes implements group.Group.
func (Group) ScalarFromBytes(b []byte) group.Scalar {
	s := new(Scalar)
	s.s.SetBigInt(modn.ReduceInt(b, order))
	return s
}

// RandomScalar implements group.Group.
func (g Group) RandomScalar(rand io.Reader) (group.Scalar, error) {
	b, err := modn.Random(rand, order, scalarLength)
	if err != nil {
		return nil, vss.Errorf("RandomScalar", "%w: %v", vss.ErrRandomSource, err)
	}
	defer vss.ZeroizeBytes(b)
	return g.ScalarFromBytes(b), nil
}

// DecodeScalar implements group.Group.
func (Group) DecodeScalar(b []byte) (group.Scalar, error) {
	if !modn.Canonical(b, order, scalarLength) {
		return nil, vss.Errorf("DecodeScalar", "%w: not a canonical %d-byte scalar", vss.ErrEncoding, scalarLength)
	}
	s := new(Scalar)
	s.s.SetBigInt(new(big.Int).SetBytes(b))
	return s, nil
}

// DecodeElement implements group.Group.
func (Group) DecodeElement(b []byte) (group.Element, error) {
	if len(b) != elementLength {
		return nil, vss.Errorf("DecodeElement", "%w: want %d bytes, got %d", vss.ErrEncoding, elementLength, len(b))
	}
	var buf [elementLength]byte
	copy(buf[:], b)
	e := new(Element)
	if !e.p.SetBytes(&buf) {
		return nil, vss.Errorf("DecodeElement", "%w: not a valid ristretto encoding", vss.ErrEncoding)
	}
	return e, nil
}

// Scalar is an integer modulo l.
type Scalar struct {
	s ristretto.Scalar
}

var _ group.Scalar = (*Scalar)(nil)

func mustScalar(a group.Scalar) *ristretto.Scalar {
	return &a.(*Scalar).s
}

// Set implements group.Scalar.
func (z *Scalar) Set(a group.Scalar) group.Scalar {
	z.s = *mustScalar(a)
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
	t := *mustScalar(a)
	z.s.Inverse(&t)
	return z
}

// IsZero implements group.Scalar.
func (z *Scalar) IsZero() bool {
	var zero ristretto.Scalar
	zero.SetZero()
	return z.s.Equals(&zero)
}

// Equal implements group.Scalar.
func (z *Scalar) Equal(b group.Scalar) bool {
	return z.s.Equals(mustScalar(b))
}

// Copy implements group.Scalar.
func (z *Scalar) Copy() group.Scalar {
	return &Scalar{s: z.s}
}

// Bytes implements group.Scalar.
func (z *Scalar) Bytes() []byte {
	out := make([]byte, scalarLength)
	z.s.BigInt().FillBytes(out)
	return out
}

// GroupName implements group.Scalar.
func (*Scalar) GroupName() string { return Name }

// Element is a Ristretto group element.
type Element struct {
	p ristretto.Point
}

var _ group.Element = (*Element)(nil)

func mustElement(a group.Element) *ristretto.Point {
	return &a.(*Element).p
}

// Set implements group.Element.
func (e *Element) Set(a group.Element) group.Element {
	e.p = *mustElement(a)
	return e
}

// Add implements group.Element.
func (e *Element) Add(a, b group.Element) group.Element {
	e.p.Add(mustElement(a), mustElement(b))
	return e
}

// ScalarMult implements group.Element.
func (e *Element) ScalarMult(a group.Element, s group.Scalar) group.Element {
	p := *mustElement(a)
	e.p.ScalarMult(&p, mustScalar(s))
	return e
}

// ScalarBaseMult implements group.Element.
func (e *Element) ScalarBaseMult(s group.Scalar) group.Element {
	e.p.ScalarMultBase(mustScalar(s))
	return e
}

// IsIdentity implements group.Element.
func (e *Element) IsIdentity() bool {
	var zero ristretto.Point
	zero.SetZero()
	return e.p.Equals(&zero)
}

// GroupName implements group.Element.
func (*Element) GroupName() string { return Name }

// Equal implements group.Element.
func (e *Element) Equal(b group.Element) bool {
	return e.p.Equals(mustElement(b))
}

// Copy implements group.Element.
func (e *Element) Copy() group.Element {
	return &Element{p: e.p}
}

// Bytes implements group.Element.
func (e *Element) Bytes() ([]byte, error) {
	return e.p.Bytes(), nil
}
