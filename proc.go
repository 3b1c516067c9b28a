package bake

import (
	"errors"
	"os/exec"
	"sync/atomic"
	"syscall"

	"github.com/ygrebnov/errorc"
)

// Proc is a handle to an asynchronously spawned child process. The child
// terminates independently of the caller and must be waited on exactly once
// to reap it; failure to do so leaks a defunct process until the parent
// exits.
type Proc struct {
	cmd    *exec.Cmd
	waited atomic.Bool
}

// PID returns the operating-system process identifier of the child.
func (p *Proc) PID() int { return p.cmd.Process.Pid }

// Wait blocks until the child terminates and returns its termination status:
// the exit code for a normal exit, StatusSignaled when killed by a signal.
// Interrupted waits are retried transparently and never surface as errors.
// A second call fails with ErrAlreadyWaited.
func (p *Proc) Wait() (int, error) {
	if !p.waited.CompareAndSwap(false, true) {
		return 0, ErrAlreadyWaited
	}
	return reap(p.cmd)
}

// reap waits on a started command and folds its two termination kinds into
// one integer result.
func reap(cmd *exec.Cmd) (int, error) {
	err := cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return terminationStatus(exitErr), nil
		}
		return 0, errorc.With(ErrWait, errorc.String("cause", err.Error()))
	}
	return cmd.ProcessState.ExitCode(), nil
}

func terminationStatus(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return StatusSignaled
	}
	return exitErr.ExitCode()
}
