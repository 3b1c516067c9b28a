package bake

import (
	"context"
	"strconv"
	"strings"

	"github.com/ygrebnov/errorc"
)

// PkgConfigFlags selects which flag classes a PkgConfig query asks for.
type PkgConfigFlags int

const (
	// PkgConfigLibs requests linker flags (--libs).
	PkgConfigLibs PkgConfigFlags = 1 << iota
	// PkgConfigCflags requests compiler flags (--cflags).
	PkgConfigCflags
)

// PkgConfig queries the pkg-config tool for the given libraries and appends
// the whitespace-split flags to c. The tool name honors the PKG_CONFIG
// environment variable. A non-zero pkg-config exit (typically an unknown
// library) is reported as ErrCommandFailed.
func (r *Runner) PkgConfig(ctx context.Context, c *Command, flags PkgConfigFlags, libs ...string) error {
	q := NewCommand(EnvOr("PKG_CONFIG", "pkg-config"))
	if flags&PkgConfigLibs != 0 {
		q.Append("--libs")
	}
	if flags&PkgConfigCflags != 0 {
		q.Append("--cflags")
	}
	q.Append(libs...)

	out, status, err := r.Output(ctx, q)
	if err != nil {
		return err
	}
	if status != 0 {
		return errorc.With(ErrCommandFailed,
			errorc.String("command", q.String()),
			errorc.String("status", strconv.Itoa(status)),
		)
	}

	c.Append(strings.Fields(string(out))...)
	return nil
}
