// Package modn reduces big-endian byte strings modulo a group order. It is
// shared by the group backends so they agree on how integers map into the
// scalar field.
package modn

import (
	"io"
	"math/big"

	"github.com/hsiuhsiu/vss-go/pkg/vss"
)

// securityMargin is the number of bytes drawn beyond the order length when
// sampling, so the modular bias stays below 2^-128.
const securityMargin = 16

// Reduce interprets b as a big-endian unsigned integer, reduces it modulo n
// and returns the result left-padded to size bytes.
func Reduce(b []byte, n *big.Int, size int) []byte {
	out := make([]byte, size)
	ReduceInt(b, n).FillBytes(out)
	return out
}

// ReduceInt is Reduce returning a big.Int.
func ReduceInt(b []byte, n *big.Int) *big.Int {
	v := new(big.Int).SetBytes(b)
	return v.Mod(v, n)
}

// Canonical reports whether b is the big-endian encoding of an integer
// strictly below n, exactly size bytes long.
func Canonical(b []byte, n *big.Int, size int) bool {
	if len(b) != size {
		return false
	}
	return new(big.Int).SetBytes(b).Cmp(n) < 0
}

// OrderLength returns the byte length of n.
func OrderLength(n *big.Int) int {
	return (n.BitLen() + 7) / 8
}

// UniformLength returns how many random bytes Random draws for order n.
func UniformLength(n *big.Int) int {
	return OrderLength(n) + securityMargin
}

// Random reads UniformLength(n) bytes from r and returns them reduced modulo
// n, padded to size bytes. The raw buffer is zeroized before returning.
func Random(r io.Reader, n *big.Int, size int) ([]byte, error) {
	buf := make([]byte, UniformLength(n))
	defer vss.ZeroizeBytes(buf)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return Reduce(buf, n, size), nil
}
