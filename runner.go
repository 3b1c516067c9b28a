package bake

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/ygrebnov/errorc"
)

// StatusSignaled is the termination status reported when a child process was
// killed by a signal. It cannot collide with any valid 0–255 exit code, so a
// single integer channel carries both termination kinds.
const StatusSignaled = 256

// captureBlockSize is the read granularity for captured runs. It stands in
// for the pipe's preferred I/O block size, which Go does not expose.
const captureBlockSize = 32 * 1024

// Runner spawns Commands as child processes. The zero value is usable and
// inherits the parent's stdout and stderr; use NewRunner with options to
// inject a logger, echo writer, working directory, or environment.
//
// A Runner is safe for concurrent use: its fields are set once at
// construction and never mutated, so jobs on a Pool may share one Runner.
type Runner struct {
	logger *slog.Logger
	echo   io.Writer
	dir    string
	env    []string
	stdout io.Writer
	stderr io.Writer
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner) error

// NewRunner constructs a Runner with the given options.
func NewRunner(opts ...RunnerOption) (*Runner, error) {
	r := &Runner{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// WithRunnerLogger sets the logger for spawn events (default slog.Default()).
func WithRunnerLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) error {
		if logger == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithRunnerLogger requires a non-nil logger"))
		}
		r.logger = logger
		return nil
	}
}

// WithEcho makes the Runner write each command, shell-quoted, to w before
// executing it, mimicking the echoing behavior of make.
func WithEcho(w io.Writer) RunnerOption {
	return func(r *Runner) error {
		r.echo = w
		return nil
	}
}

// WithDir sets the working directory for spawned commands (default: the
// parent's).
func WithDir(dir string) RunnerOption {
	return func(r *Runner) error {
		r.dir = dir
		return nil
	}
}

// WithEnv sets the environment for spawned commands (default: the parent's).
func WithEnv(env []string) RunnerOption {
	return func(r *Runner) error {
		r.env = env
		return nil
	}
}

// WithStdout redirects the stdout of synchronously and asynchronously run
// commands (default os.Stdout). Captured runs ignore this; their stdout goes
// to the returned buffer.
func WithStdout(w io.Writer) RunnerOption {
	return func(r *Runner) error {
		r.stdout = w
		return nil
	}
}

// WithStderr redirects the stderr of spawned commands (default os.Stderr).
func WithStderr(w io.Writer) RunnerOption {
	return func(r *Runner) error {
		r.stderr = w
		return nil
	}
}

// Run spawns the command and blocks until it terminates, returning its
// termination status: the exit code for a normal exit, StatusSignaled when
// killed by a signal. A non-nil error means the command never ran (spawn
// failure) or could not be reaped; a non-zero status is a normal outcome and
// comes with a nil error.
func (r *Runner) Run(ctx context.Context, c *Command) (int, error) {
	p, err := r.Start(ctx, c)
	if err != nil {
		return 0, err
	}
	return p.Wait()
}

// Start spawns the command and returns immediately with a handle. The caller
// must call Proc.Wait exactly once to reap the child; an unreaped child is an
// OS-level resource leak.
func (r *Runner) Start(ctx context.Context, c *Command) (*Proc, error) {
	cmd, err := r.prepare(ctx, c)
	if err != nil {
		return nil, err
	}
	cmd.Stdout = r.out()
	cmd.Stderr = r.errOut()

	if err = cmd.Start(); err != nil {
		return nil, errorc.With(ErrSpawn,
			errorc.String("command", c.String()),
			errorc.String("cause", err.Error()),
		)
	}
	r.log().Debug("spawned command", "pid", cmd.Process.Pid, "argv", c.String())
	return &Proc{cmd: cmd}, nil
}

// Output spawns the command with its stdout redirected into a pipe, reads the
// pipe to end-of-stream accumulating into a growing byte buffer, and returns
// the buffer together with the termination status.
//
// Contract: the returned bytes are exactly what the child wrote, including
// any trailing newline; capture is binary safe and no terminator is appended.
// Ownership of the buffer passes to the caller.
func (r *Runner) Output(ctx context.Context, c *Command) ([]byte, int, error) {
	cmd, err := r.prepare(ctx, c)
	if err != nil {
		return nil, 0, err
	}
	cmd.Stderr = r.errOut()

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, 0, errorc.With(ErrSpawn,
			errorc.String("command", c.String()),
			errorc.String("cause", err.Error()),
		)
	}
	if err = cmd.Start(); err != nil {
		return nil, 0, errorc.With(ErrSpawn,
			errorc.String("command", c.String()),
			errorc.String("cause", err.Error()),
		)
	}

	var out []byte
	block := make([]byte, captureBlockSize)
	for {
		n, rerr := stdout.Read(block)
		out = append(out, block[:n]...)
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			_ = cmd.Wait()
			return nil, 0, errorc.With(ErrWait,
				errorc.String("command", c.String()),
				errorc.String("cause", rerr.Error()),
			)
		}
	}

	status, err := reap(cmd)
	if err != nil {
		return nil, 0, err
	}
	return out, status, nil
}

// prepare validates the command, echoes it when configured, and builds the
// underlying exec.Cmd. The first argument is resolved through the platform's
// standard executable search; no shell is involved.
func (r *Runner) prepare(ctx context.Context, c *Command) (*exec.Cmd, error) {
	argv := c.Argv()
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	if r.echo != nil {
		_, _ = c.WriteTo(r.echo)
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.dir
	cmd.Env = r.env
	return cmd, nil
}

func (r *Runner) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

func (r *Runner) out() io.Writer {
	if r.stdout != nil {
		return r.stdout
	}
	return os.Stdout
}

func (r *Runner) errOut() io.Writer {
	if r.stderr != nil {
		return r.stderr
	}
	return os.Stderr
}
