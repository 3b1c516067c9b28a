package bake

import (
	"context"
	"os"
	"strconv"
	"syscall"

	"github.com/ygrebnov/errorc"
)

// Rebuild recompiles and re-executes the running build program when its
// executable is outdated relative to the given source files. Call it at the
// top of main so edits to the build script take effect on the next run.
//
// When the executable is fresh, Rebuild returns nil and the program proceeds.
// When it is stale, Rebuild compiles it in place with "go build" (the tool
// honors the GO environment variable), then replaces the current process
// image with the fresh binary, preserving the original arguments and
// environment. On success of that path, Rebuild never returns.
func (r *Runner) Rebuild(ctx context.Context, sources ...string) error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	stale, err := Outdated(exe, sources...)
	if err != nil {
		return err
	}
	if !stale {
		return nil
	}

	build := NewCommand(EnvOr("GO", "go"), "build", "-o", exe)
	build.Append(sources...)
	status, err := r.Run(ctx, build)
	if err != nil {
		return err
	}
	if status != 0 {
		return errorc.With(ErrCommandFailed,
			errorc.String("command", build.String()),
			errorc.String("status", strconv.Itoa(status)),
		)
	}

	r.log().Debug("re-executing rebuilt program", "exe", exe)
	if err = syscall.Exec(exe, os.Args, os.Environ()); err != nil {
		return errorc.With(ErrSpawn,
			errorc.String("command", exe),
			errorc.String("cause", err.Error()),
		)
	}
	return nil // unreachable: Exec does not return on success
}
