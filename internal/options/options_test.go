package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value int
	name  string
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.value = 42 }),
		NoError(func(c *testConfig) { c.name = "huffman" }),
	)

	require.NoError(t, err)
	require.Equal(t, 42, cfg.value)
	require.Equal(t, "huffman", cfg.name)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}
	boom := errors.New("boom")

	err := Apply(cfg,
		New(func(c *testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.value = 1 }),
	)

	require.ErrorIs(t, err, boom)
	require.Zero(t, cfg.value, "options after a failure must not apply")
}

func TestApply_NoOptions(t *testing.T) {
	require.NoError(t, Apply(&testConfig{}))
}
