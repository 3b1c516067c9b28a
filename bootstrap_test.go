package bake

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunner_Rebuild_FreshExecutableIsANoOp(t *testing.T) {
	// A source file older than the (freshly built) test binary must not
	// trigger a rebuild, and therefore no command may be echoed.
	src := filepath.Join(t.TempDir(), "build.go")
	require.NoError(t, os.WriteFile(src, []byte("package main\n"), 0o644))
	old := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, old, old))

	var echo bytes.Buffer
	r, err := NewRunner(WithEcho(&echo))
	require.NoError(t, err)

	require.NoError(t, r.Rebuild(context.Background(), src))
	require.Empty(t, echo.String(), "a fresh executable must not be rebuilt")
}

func TestRunner_Rebuild_MissingSource(t *testing.T) {
	var r Runner
	err := r.Rebuild(context.Background(), filepath.Join(t.TempDir(), "gone.go"))
	require.Error(t, err)
}
