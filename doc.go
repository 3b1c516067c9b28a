// Package bake provides a small build-orchestration toolkit meant to be
// embedded in a program: build scripts written in Go that construct and run
// external commands, capture their output, compare file timestamps to decide
// what needs rebuilding, and spread independent build steps across a
// fixed-size worker pool.
//
// Components
//   - Command: a growable, reusable argument buffer representing one external
//     command.
//   - Runner: spawns a Command synchronously (Run), asynchronously (Start),
//     or with stdout captured into memory (Output).
//   - Pool: a fixed number of workers executing enqueued Jobs in FIFO
//     dequeue order, with a Wait barrier and drain-on-Close semantics.
//
// Status reporting
// A child that exits normally reports its numeric exit code (0–255). A child
// terminated by a signal reports StatusSignaled (256), which cannot collide
// with any valid exit code. A spawn failure (the command never ran) is
// reported as a non-nil error and is distinct from a non-zero exit, which is
// a normal outcome callers branch on.
//
// Error handling
// Every primitive returns errors to the caller. Build scripts that prefer the
// classic die-on-failure behavior can wrap call sites in Must or MustStatus.
//
// Concurrency
// A Command is not safe for concurrent use; the intended pattern is one
// Command per Job, built inside the Job's closure. Pool methods are safe for
// concurrent use by multiple producers.
package bake
