package bake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommand_String(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "safe arguments stay bare",
			args: []string{"cc", "-O2", "-o", "build/out", "main.c"},
			want: "cc -O2 -o build/out main.c",
		},
		{
			name: "space forces quoting",
			args: []string{"cc", "-o", "my program", "main.c"},
			want: "cc -o 'my program' main.c",
		},
		{
			name: "embedded single quote",
			args: []string{"echo", "it's"},
			want: `echo 'it'"'"'s'`,
		},
		{
			name: "empty argument is quoted",
			args: []string{"prog", ""},
			want: "prog ''",
		},
		{
			name: "shell metacharacters",
			args: []string{"sh", "-c", "exit 1"},
			want: "sh -c 'exit 1'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewCommand(tt.args...).String())
		})
	}
}

func TestCommand_WriteTo_AppendsNewline(t *testing.T) {
	var b strings.Builder
	n, err := NewCommand("cc", "main.c").WriteTo(&b)
	require.NoError(t, err)
	require.Equal(t, "cc main.c\n", b.String())
	require.Equal(t, int64(len("cc main.c\n")), n)
}
