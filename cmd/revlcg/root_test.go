package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFeedsFlags(t *testing.T) {
	t.Setenv("SEED", "1234")
	t.Setenv("MODULUS", "65536")

	initConfig()

	assert.Equal(t, uint64(1234), seed)
	assert.Equal(t, uint64(65536), modulus)

	// Flags untouched by config or environment keep their defaults.
	assert.Equal(t, uint64(1442695040888963407), incr)
	assert.Equal(t, 32, discard)
}
