package bake

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubPkgConfig installs a fake pkg-config via the PKG_CONFIG environment
// variable, so the tests do not depend on the host toolchain.
func stubPkgConfig(t *testing.T, script string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pkg-config-stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	t.Setenv("PKG_CONFIG", path)
}

func TestRunner_PkgConfig_AppendsSplitFlags(t *testing.T) {
	stubPkgConfig(t, `printf '%s\n' "-I/usr/include/foo  -DFOO -lfoo"`)

	c := NewCommand("cc", "-c", "main.c")
	var r Runner
	require.NoError(t, r.PkgConfig(context.Background(), c, PkgConfigCflags, "foo"))
	require.Equal(t, []string{"cc", "-c", "main.c", "-I/usr/include/foo", "-DFOO", "-lfoo"}, c.Argv())
}

func TestRunner_PkgConfig_FlagComposition(t *testing.T) {
	// The stub echoes its own arguments, exposing exactly what was asked.
	stubPkgConfig(t, `printf '%s\n' "$@"`)

	tests := []struct {
		name  string
		flags PkgConfigFlags
		want  []string
	}{
		{name: "libs only", flags: PkgConfigLibs, want: []string{"--libs", "zlib"}},
		{name: "cflags only", flags: PkgConfigCflags, want: []string{"--cflags", "zlib"}},
		{name: "both", flags: PkgConfigLibs | PkgConfigCflags, want: []string{"--libs", "--cflags", "zlib"}},
	}

	var r Runner
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Command
			require.NoError(t, r.PkgConfig(context.Background(), &c, tt.flags, "zlib"))
			require.Equal(t, tt.want, c.Argv())
		})
	}
}

func TestRunner_PkgConfig_UnknownLibrary(t *testing.T) {
	stubPkgConfig(t, `echo "Package nope was not found" >&2; exit 1`)

	c := NewCommand("cc")
	r, err := NewRunner(WithStderr(io.Discard))
	require.NoError(t, err)
	err = r.PkgConfig(context.Background(), c, PkgConfigLibs, "nope")
	require.ErrorIs(t, err, ErrCommandFailed)
	require.Equal(t, []string{"cc"}, c.Argv(), "a failed query must not modify the command")
}
