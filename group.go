package bake

import (
	"context"
	"strconv"

	"github.com/ygrebnov/errorc"
	"golang.org/x/sync/errgroup"
)

// RunAll runs the given commands concurrently, at most limit at a time
// (limit <= 0 means unbounded). A spawn failure or a non-zero exit cancels
// the remaining commands and is returned; nil means every command ran and
// exited zero.
//
// RunAll is a convenience for the common compile-everything case. Use a Pool
// when jobs need reuse across batches, cleanup callbacks, or an explicit
// teardown boundary.
func (r *Runner) RunAll(ctx context.Context, limit int, cmds ...*Command) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, c := range cmds {
		c := c
		g.Go(func() error {
			status, err := r.Run(ctx, c)
			if err != nil {
				return err
			}
			if status != 0 {
				return errorc.With(ErrCommandFailed,
					errorc.String("command", c.String()),
					errorc.String("status", strconv.Itoa(status)),
				)
			}
			return nil
		})
	}
	return g.Wait()
}
