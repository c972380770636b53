package groups_test

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
	"github.com/hsiuhsiu/vss-go/pkg/vss/groups"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func randomScalar(t *testing.T, g group.Group) group.Scalar {
	t.Helper()
	s, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return s
}

func TestLookup(t *testing.T) {
	require.Equal(t, []string{"p256", "p384", "p521", "ristretto255", "secp256k1"}, groups.Names())

	for _, name := range groups.Names() {
		g, err := groups.Lookup(name)
		require.NoError(t, err)
		require.Equal(t, name, g.Name())
	}

	_, err := groups.Lookup("ed448")
	require.ErrorIs(t, err, vss.ErrUnknownGroup)

	g, err := groups.Lookup(groups.Default)
	require.NoError(t, err)
	require.Equal(t, "secp256k1", g.Name())
}

func TestGeneratorEncoding(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"secp256k1", "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"},
		{"ristretto255", "e2f2ae0a6abc4e71a884a961c500515f58e30b6aa582dd8db6a65945e08d2d76"},
		{"p256", "036b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := groups.Lookup(tc.name)
			require.NoError(t, err)
			b, err := g.Generator().Bytes()
			require.NoError(t, err)
			require.Equal(t, tc.want, hex.EncodeToString(b))
		})
	}
}

func TestScalarField(t *testing.T) {
	for _, g := range groups.All() {
		t.Run(g.Name(), func(t *testing.T) {
			a, b := randomScalar(t, g), randomScalar(t, g)

			sum := g.NewScalar().Add(a, b)
			back := g.NewScalar().Sub(sum, b)
			assert.True(t, back.Equal(a), "a + b - b != a")

			inv := g.NewScalar().Inv(a)
			one := g.NewScalar().Mul(a, inv)
			assert.True(t, one.Equal(g.ScalarFromUint64(1)), "a * a^-1 != 1")

			// Aliasing the receiver with an operand.
			c := a.Copy()
			c.Sub(c, a)
			assert.True(t, c.IsZero())
			assert.False(t, a.IsZero())

			assert.True(t, g.NewScalar().IsZero())
			assert.True(t, g.ScalarFromUint64(0).IsZero())

			seven := g.ScalarFromUint64(7)
			assert.True(t, g.ScalarFromBytes([]byte{7}).Equal(seven))
			assert.True(t, g.ScalarFromBytes([]byte{0, 0, 0, 0, 7}).Equal(seven))
		})
	}
}

func TestScalarReduction(t *testing.T) {
	for _, g := range groups.All() {
		t.Run(g.Name(), func(t *testing.T) {
			q := g.Order().Bytes()
			assert.True(t, g.ScalarFromBytes(q).IsZero(), "q mod q != 0")

			qPlus := g.Order()
			qPlus.Add(qPlus, qPlus).Add(qPlus, g.Order())
			// 3q + 0 reduces to 0 as well.
			assert.True(t, g.ScalarFromBytes(qPlus.Bytes()).IsZero())

			_, err := g.DecodeScalar(padTo(q, g.ScalarLength()))
			assert.ErrorIs(t, err, vss.ErrEncoding)
		})
	}
}

func TestScalarEncoding(t *testing.T) {
	for _, g := range groups.All() {
		t.Run(g.Name(), func(t *testing.T) {
			s := randomScalar(t, g)
			b := s.Bytes()
			require.Len(t, b, g.ScalarLength())

			d, err := g.DecodeScalar(b)
			require.NoError(t, err)
			assert.True(t, d.Equal(s))

			// Big-endian: 258 = 0x0102.
			enc := g.ScalarFromUint64(258).Bytes()
			assert.Equal(t, byte(0x01), enc[len(enc)-2])
			assert.Equal(t, byte(0x02), enc[len(enc)-1])

			_, err = g.DecodeScalar(b[1:])
			assert.ErrorIs(t, err, vss.ErrEncoding)
		})
	}
}

func TestElementLaws(t *testing.T) {
	for _, g := range groups.All() {
		t.Run(g.Name(), func(t *testing.T) {
			a, b := randomScalar(t, g), randomScalar(t, g)

			aG := g.NewElement().ScalarBaseMult(a)
			bG := g.NewElement().ScalarBaseMult(b)
			sum := g.NewElement().Add(aG, bG)
			want := g.NewElement().ScalarBaseMult(g.NewScalar().Add(a, b))
			assert.True(t, sum.Equal(want), "aG + bG != (a+b)G")

			viaMult := g.NewElement().ScalarMult(g.Generator(), a)
			assert.True(t, viaMult.Equal(aG), "a*G via ScalarMult differs from ScalarBaseMult")

			ab := g.NewElement().ScalarMult(aG, b)
			want = g.NewElement().ScalarBaseMult(g.NewScalar().Mul(a, b))
			assert.True(t, ab.Equal(want), "b(aG) != (ab)G")

			id := g.NewElement()
			assert.True(t, id.IsIdentity())
			assert.False(t, aG.IsIdentity())
			assert.True(t, g.NewElement().Add(aG, id).Equal(aG))
			assert.True(t, g.NewElement().ScalarBaseMult(g.NewScalar()).IsIdentity())
			assert.True(t, g.NewElement().ScalarMult(id, a).IsIdentity())
			assert.False(t, aG.Equal(id))

			// Aliasing.
			acc := aG.Copy()
			acc.Add(acc, bG)
			assert.True(t, acc.Equal(sum))
			acc.ScalarMult(acc, g.ScalarFromUint64(1))
			assert.True(t, acc.Equal(sum))
		})
	}
}

func TestElementEncoding(t *testing.T) {
	for _, g := range groups.All() {
		t.Run(g.Name(), func(t *testing.T) {
			e := g.NewElement().ScalarBaseMult(randomScalar(t, g))
			b, err := e.Bytes()
			require.NoError(t, err)

			d, err := g.DecodeElement(b)
			require.NoError(t, err)
			assert.True(t, d.Equal(e))

			_, err = g.DecodeElement(b[:len(b)-1])
			assert.ErrorIs(t, err, vss.ErrEncoding)

			_, err = g.DecodeElement(bytes.Repeat([]byte{0xff}, len(b)))
			assert.ErrorIs(t, err, vss.ErrEncoding)
		})
	}
}

func TestIdentityEncoding(t *testing.T) {
	for _, g := range groups.All() {
		t.Run(g.Name(), func(t *testing.T) {
			id := g.NewElement().ScalarBaseMult(g.ScalarFromUint64(0))
			b, err := id.Bytes()
			require.NoError(t, err)

			d, err := g.DecodeElement(b)
			require.NoError(t, err)
			assert.True(t, d.IsIdentity())
			assert.True(t, d.Equal(g.NewElement()))

			// Adding the decoded identity leaves a point unchanged.
			aG := g.NewElement().ScalarBaseMult(randomScalar(t, g))
			assert.True(t, g.NewElement().Add(aG, d).Equal(aG))
		})
	}

	// SEC1 curves share the single zero byte form.
	for _, name := range []string{"secp256k1", "p256", "p384", "p521"} {
		g, err := groups.Lookup(name)
		require.NoError(t, err)
		b, err := g.NewElement().Bytes()
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00}, b, name)
	}
}

func TestGroupMembership(t *testing.T) {
	all := groups.All()
	for i, g := range all {
		t.Run(g.Name(), func(t *testing.T) {
			s := randomScalar(t, g)
			e := g.NewElement().ScalarBaseMult(s)
			assert.Equal(t, g.Name(), s.GroupName())
			assert.Equal(t, g.Name(), e.GroupName())
			assert.Equal(t, g.Name(), s.Copy().GroupName())
			assert.Equal(t, g.Name(), g.Generator().GroupName())

			assert.True(t, group.CheckScalar(g, s))
			assert.True(t, group.CheckElement(g, e))
			assert.False(t, group.CheckScalar(g, nil))
			assert.False(t, group.CheckElement(g, nil))

			other := all[(i+1)%len(all)]
			assert.False(t, group.CheckScalar(other, s))
			assert.False(t, group.CheckElement(other, e))
		})
	}
}

func TestRandomScalar(t *testing.T) {
	for _, g := range groups.All() {
		t.Run(g.Name(), func(t *testing.T) {
			a, b := randomScalar(t, g), randomScalar(t, g)
			assert.False(t, a.Equal(b))

			_, err := g.RandomScalar(failingReader{})
			require.ErrorIs(t, err, vss.ErrRandomSource)

			_, err = g.RandomScalar(bytes.NewReader([]byte{1, 2, 3}))
			require.ErrorIs(t, err, vss.ErrRandomSource)

			// Same bytes, same scalar.
			seed := bytes.Repeat([]byte{0x5a}, 128)
			x, err := g.RandomScalar(bytes.NewReader(seed))
			require.NoError(t, err)
			y, err := g.RandomScalar(bytes.NewReader(seed))
			require.NoError(t, err)
			assert.True(t, x.Equal(y))
		})
	}
}

func padTo(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}
