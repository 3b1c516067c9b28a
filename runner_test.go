package bake

import (
	"bytes"
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunner_Run_ExitStatuses(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "success", args: []string{"true"}, want: 0},
		{name: "failure is a status, not an error", args: []string{"false"}, want: 1},
		{name: "specific exit code", args: []string{"sh", "-c", "exit 7"}, want: 7},
		{name: "killed by signal", args: []string{"sh", "-c", "kill -9 $$"}, want: StatusSignaled},
	}

	var r Runner // zero value is usable
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := r.Run(context.Background(), NewCommand(tt.args...))
			require.NoError(t, err)
			require.Equal(t, tt.want, status)
		})
	}
}

func TestRunner_Run_SpawnFailure(t *testing.T) {
	var r Runner
	status, err := r.Run(context.Background(), NewCommand("definitely-not-a-real-command-4c1b"))
	require.ErrorIs(t, err, ErrSpawn)
	require.Equal(t, 0, status)
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	var r Runner
	_, err := r.Run(context.Background(), &Command{})
	require.ErrorIs(t, err, ErrEmptyCommand)
}

func TestRunner_Start_WaitExactlyOnce(t *testing.T) {
	var r Runner
	p, err := r.Start(context.Background(), NewCommand("sh", "-c", "exit 3"))
	require.NoError(t, err)
	require.Greater(t, p.PID(), 0)

	status, err := p.Wait()
	require.NoError(t, err)
	require.Equal(t, 3, status)

	_, err = p.Wait()
	require.ErrorIs(t, err, ErrAlreadyWaited)
}

func TestRunner_Output_CapturesExactBytes(t *testing.T) {
	var r Runner
	out, status, err := r.Output(context.Background(), NewCommand("sh", "-c", `printf 'hello\n'`))
	require.NoError(t, err)
	require.Equal(t, 0, status)
	require.Equal(t, []byte("hello\n"), out)
	require.Len(t, out, 6)
}

func TestRunner_Output_BinarySafe(t *testing.T) {
	var r Runner
	out, status, err := r.Output(context.Background(), NewCommand("sh", "-c", `printf 'a\0b'`))
	require.NoError(t, err)
	require.Equal(t, 0, status)
	require.Equal(t, []byte{'a', 0, 'b'}, out)
}

func TestRunner_Output_LargerThanBlockSize(t *testing.T) {
	var r Runner
	const size = captureBlockSize*3 + 17
	out, status, err := r.Output(context.Background(),
		NewCommand("sh", "-c", "head -c "+strconv.Itoa(size)+" /dev/zero"))
	require.NoError(t, err)
	require.Equal(t, 0, status)
	require.Len(t, out, size)
}

func TestRunner_Output_NonZeroExitStillCaptures(t *testing.T) {
	var r Runner
	out, status, err := r.Output(context.Background(), NewCommand("sh", "-c", "echo partial; exit 5"))
	require.NoError(t, err)
	require.Equal(t, 5, status)
	require.Equal(t, []byte("partial\n"), out)
}

func TestRunner_Echo(t *testing.T) {
	var echo bytes.Buffer
	r, err := NewRunner(WithEcho(&echo), WithStdout(io.Discard))
	require.NoError(t, err)

	_, err = r.Run(context.Background(), NewCommand("sh", "-c", "exit 0"))
	require.NoError(t, err)
	require.Equal(t, "sh -c 'exit 0'\n", echo.String())
}

func TestRunner_StdoutRedirect(t *testing.T) {
	var out bytes.Buffer
	r, err := NewRunner(WithStdout(&out))
	require.NoError(t, err)

	status, err := r.Run(context.Background(), NewCommand("sh", "-c", "echo redirected"))
	require.NoError(t, err)
	require.Equal(t, 0, status)
	require.Equal(t, "redirected\n", out.String())
}

func TestRunner_DirAndEnv(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRunner(
		WithDir(dir),
		WithEnv(append(os.Environ(), "BAKE_TEST_VALUE=marker")),
	)
	require.NoError(t, err)

	out, status, err := r.Output(context.Background(), NewCommand("sh", "-c", "pwd; printf '%s' \"$BAKE_TEST_VALUE\""))
	require.NoError(t, err)
	require.Equal(t, 0, status)

	lines := strings.SplitN(string(out), "\n", 2)
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], dir[strings.LastIndex(dir, "/")+1:], "child must run in the configured directory")
	require.Equal(t, "marker", lines[1])
}

func TestNewRunner_RejectsNilLogger(t *testing.T) {
	_, err := NewRunner(WithRunnerLogger(nil))
	require.ErrorIs(t, err, ErrInvalidConfig)
}
