package modn_test

import (
	"bytes"
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/vss-go/internal/modn"
)

func TestReduce(t *testing.T) {
	n := big.NewInt(251)

	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"empty", nil, []byte{0, 0}},
		{"small", []byte{7}, []byte{0, 7}},
		{"order", []byte{251}, []byte{0, 0}},
		{"wraps", []byte{0x01, 0x00}, []byte{0, 5}},
		{"leading zeros", []byte{0, 0, 0, 9}, []byte{0, 9}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, modn.Reduce(tc.in, n, 2))
		})
	}
}

func TestCanonical(t *testing.T) {
	n := big.NewInt(251)
	require.True(t, modn.Canonical([]byte{0, 250}, n, 2))
	require.False(t, modn.Canonical([]byte{0, 251}, n, 2))
	require.False(t, modn.Canonical([]byte{250}, n, 2))
}

func TestUniformLength(t *testing.T) {
	n := new(big.Int).Lsh(big.NewInt(1), 255)
	require.Equal(t, 32, modn.OrderLength(n))
	require.Equal(t, 48, modn.UniformLength(n))
}

func TestRandom(t *testing.T) {
	n := big.NewInt(251)
	src := bytes.NewReader(bytes.Repeat([]byte{0xff}, 64))

	out, err := modn.Random(src, n, 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Less(t, int(out[0]), 251)

	// 17 bytes consumed per draw for a one-byte order.
	require.Equal(t, 64-17, src.Len())
}

func TestRandomShortRead(t *testing.T) {
	n := big.NewInt(251)
	_, err := modn.Random(bytes.NewReader([]byte{1, 2, 3}), n, 1)
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}
