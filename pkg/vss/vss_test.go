package vss_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/groups"
)

func TestConfigValidate(t *testing.T) {
	valid := []vss.Config{
		{Threshold: 1, ShareAmount: 1},
		{Threshold: 1, ShareAmount: 5},
		{Threshold: 3, ShareAmount: 5},
		{Threshold: 5, ShareAmount: 5},
	}
	for _, cfg := range valid {
		require.NoError(t, cfg.Validate(), "%+v", cfg)
	}

	invalid := []vss.Config{
		{Threshold: 0, ShareAmount: 0},
		{Threshold: 0, ShareAmount: 3},
		{Threshold: -1, ShareAmount: 3},
		{Threshold: 4, ShareAmount: 3},
		{Threshold: 1, ShareAmount: 0},
	}
	for _, cfg := range invalid {
		err := cfg.Validate()
		require.ErrorIs(t, err, vss.ErrInvalidConfig, "%+v", cfg)
	}
}

func TestValidIndex(t *testing.T) {
	cfg := vss.Config{Threshold: 2, ShareAmount: 3}
	for index, want := range map[int]bool{-1: false, 0: false, 1: true, 3: true, 4: false} {
		assert.Equal(t, want, cfg.ValidIndex(index), "index %d", index)
	}
}

func TestCheckShares(t *testing.T) {
	g, err := groups.Lookup(groups.Default)
	require.NoError(t, err)
	cfg := vss.Config{Threshold: 2, ShareAmount: 3}
	one := g.ScalarFromUint64(1)

	require.NoError(t, vss.CheckShares("Recover", cfg, []vss.Share{{Index: 1, Value: one}, {Index: 3, Value: one}}))
	require.NoError(t, vss.CheckShares("Recover", cfg, nil))

	err = vss.CheckShares("Recover", cfg, []vss.Share{{Index: 1, Value: one}, {Index: 1, Value: one}})
	require.ErrorIs(t, err, vss.ErrDuplicateIndex)
	assert.Equal(t, "vss.Recover: vss: duplicate share index: 1", err.Error())

	err = vss.CheckShares("Recover", cfg, []vss.Share{{Index: 0, Value: one}})
	require.ErrorIs(t, err, vss.ErrIndexOutOfRange)

	err = vss.CheckShares("Derive", cfg, []vss.Share{{Index: 2, Value: nil}})
	require.ErrorIs(t, err, vss.ErrInvalidShare)
	var e *vss.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "Derive", e.Op)
}

func TestIndexScalar(t *testing.T) {
	for _, g := range groups.All() {
		assert.True(t, vss.IndexScalar(g, 5).Equal(g.ScalarFromUint64(5)), g.Name())
	}
}

func TestErrorWrapping(t *testing.T) {
	inner := errors.New("boom")
	err := vss.Errorf("Split", "%w: %w", vss.ErrRandomSource, inner)
	require.ErrorIs(t, err, vss.ErrRandomSource)
	require.ErrorIs(t, err, inner)
	assert.Equal(t, "vss.Split: vss: random source failure: boom", err.Error())
}

func TestZeroizeBytes(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	vss.ZeroizeBytes(buf)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf)
	vss.ZeroizeBytes(nil)
}

func TestLibraryVersion(t *testing.T) {
	assert.Equal(t, vss.Version, vss.LibraryVersion())
	assert.NotEmpty(t, vss.LibraryVersion())
}
