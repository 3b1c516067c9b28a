package bake

import (
	"io"
	"strings"
)

// shellSafe is the set of bytes that never need quoting in a POSIX shell.
// Matches what Python's shlex considers safe.
const shellSafe = "%+,-./0123456789:=@ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

// String renders the command the way a shell user would type it, quoting any
// argument containing unsafe characters. The rendering is for human-readable
// echoing only (mimicking make); execution never passes through a shell.
func (c *Command) String() string {
	var b strings.Builder
	for i, arg := range c.argv {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeQuoted(&b, arg)
	}
	return b.String()
}

// WriteTo writes the rendered command followed by a newline to w, mirroring
// the echoing behavior of make.
func (c *Command) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String()+"\n")
	return int64(n), err
}

func writeQuoted(b *strings.Builder, arg string) {
	safe := arg != ""
	for i := 0; i < len(arg); i++ {
		if !strings.Contains(shellSafe, string(arg[i])) {
			safe = false
			break
		}
	}
	if safe {
		b.WriteString(arg)
		return
	}

	b.WriteByte('\'')
	for i := 0; i < len(arg); i++ {
		if arg[i] == '\'' {
			b.WriteString(`'"'"'`)
		} else {
			b.WriteByte(arg[i])
		}
	}
	b.WriteByte('\'')
}
