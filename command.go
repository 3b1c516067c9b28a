package bake

// capSlack is added on top of the power-of-two growth target so that a
// freshly grown buffer always has headroom for a couple more arguments.
const capSlack = 2

// Command is a growable, reusable buffer of argument strings representing one
// external command. The first argument is the executable name, resolved via
// the platform's normal executable search rules; the remaining arguments
// become the child's argument vector exactly as given, in order, with no
// shell interpretation.
//
// The zero value is ready to use. A Command is not safe for concurrent use.
type Command struct {
	argv []string
}

// NewCommand returns a Command pre-populated with the given arguments.
func NewCommand(args ...string) *Command {
	c := &Command{}
	c.Append(args...)
	return c
}

// Append adds the given arguments to the command in order. Appending zero
// arguments is a no-op. When the arguments do not fit, the backing storage is
// reallocated to the next power of two above the required length plus a small
// constant slack, preserving existing contents; existing argument strings are
// never copied, only referenced.
func (c *Command) Append(args ...string) {
	if len(args) == 0 {
		return
	}
	need := len(c.argv) + len(args)
	if need > cap(c.argv) {
		grown := make([]string, len(c.argv), nextPow2(need)+capSlack)
		copy(grown, c.argv)
		c.argv = grown
	}
	c.argv = append(c.argv, args...)
}

// Clear resets the command to zero length while retaining allocated storage,
// so the same Command can be rebuilt without reallocating. Argument slots
// beyond the new length are zeroed so the buffer holds no stale references.
func (c *Command) Clear() {
	for i := range c.argv {
		c.argv[i] = ""
	}
	c.argv = c.argv[:0]
}

// Release drops the backing storage entirely. The Command behaves as the zero
// value afterwards and may be reused.
func (c *Command) Release() {
	c.argv = nil
}

// Len returns the number of arguments currently in the command.
func (c *Command) Len() int { return len(c.argv) }

// Cap returns the capacity of the backing storage.
func (c *Command) Cap() int { return cap(c.argv) }

// Argv returns the arguments in insertion order. The returned slice is capped
// at its length: appending to it cannot clobber the Command's storage, and
// consumers never observe slots beyond Len. The strings themselves are shared
// with the Command, not copied.
func (c *Command) Argv() []string {
	return c.argv[:len(c.argv):len(c.argv)]
}

// nextPow2 returns the smallest power of two greater than or equal to n. n is assumed positive and far below overflow territory; a build
// script with 2^62 arguments has other problems.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
