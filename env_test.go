package bake

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("BAKE_TEST_CC", "clang")
	require.Equal(t, "clang", EnvOr("BAKE_TEST_CC", "cc"))

	t.Setenv("BAKE_TEST_CC", "")
	require.Equal(t, "cc", EnvOr("BAKE_TEST_CC", "cc"))

	require.Equal(t, "cc", EnvOr("BAKE_TEST_UNSET_VARIABLE", "cc"))
}
