package group

import (
	"io"
	"math/big"
)

// Group is a prime-order group together with its scalar field.
type Group interface {
	// Name returns the registry name of the group, e.g. "secp256k1".
	Name() string

	// Order returns a copy of the group order q.
	Order() *big.Int

	// NewScalar returns the zero scalar.
	NewScalar() Scalar

	// NewElement returns the identity element.
	NewElement() Element

	// Generator returns a fresh copy of the fixed public generator G.
	Generator() Element

	// ScalarFromUint64 returns x mod q.
	ScalarFromUint64(x uint64) Scalar

	// ScalarFromBytes interprets b as a big-endian unsigned integer of any
	// length and returns it reduced mod q.
	ScalarFromBytes(b []byte) Scalar

	// RandomScalar returns a uniformly random scalar read from rand. Reader
	// failures are returned, not retried.
	RandomScalar(rand io.Reader) (Scalar, error)

	// ScalarLength returns the length of Scalar.Bytes.
	ScalarLength() int

	// DecodeScalar parses a canonical big-endian scalar encoding.
	DecodeScalar(b []byte) (Scalar, error)

	// DecodeElement parses an element encoding produced by Element.Bytes.
	DecodeElement(b []byte) (Element, error)
}

// Scalar is an element of the scalar field modulo the group order.
type Scalar interface {
	// Set sets the receiver to a.
	Set(a Scalar) Scalar
	// Add sets the receiver to a + b.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a - b.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a * b.
	Mul(a, b Scalar) Scalar
	// Inv sets the receiver to 1/a. The result for a = 0 is backend defined;
	// callers must rule it out.
	Inv(a Scalar) Scalar
	// IsZero reports whether the scalar is 0.
	IsZero() bool
	// Equal reports whether both scalars hold the same value.
	Equal(b Scalar) bool
	// Copy returns an independent copy.
	Copy() Scalar
	// Bytes returns the big-endian encoding, ScalarLength bytes long.
	Bytes() []byte
	// GroupName returns the Name of the group that produced the scalar.
	GroupName() string
}

// Element is a point of the prime-order group.
type Element interface {
	// Set sets the receiver to a.
	Set(a Element) Element
	// Add sets the receiver to a + b.
	Add(a, b Element) Element
	// ScalarMult sets the receiver to s * a.
	ScalarMult(a Element, s Scalar) Element
	// ScalarBaseMult sets the receiver to s * G.
	ScalarBaseMult(s Scalar) Element
	// IsIdentity reports whether the element is the identity.
	IsIdentity() bool
	// Equal reports whether both elements are the same point.
	Equal(b Element) bool
	// Copy returns an independent copy.
	Copy() Element
	// Bytes returns the element encoding. The identity has an encoding in
	// every backend.
	Bytes() ([]byte, error)
	// GroupName returns the Name of the group that produced the element.
	GroupName() string
}

// CheckScalar reports whether s is a non-nil scalar of g. Arithmetic on values
// from different groups panics, so callers check untrusted inputs first.
func CheckScalar(g Group, s Scalar) bool {
	return s != nil && s.GroupName() == g.Name()
}

// CheckElement reports whether e is a non-nil element of g.
func CheckElement(g Group, e Element) bool {
	return e != nil && e.GroupName() == g.Name()
}
