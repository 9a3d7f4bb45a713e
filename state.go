package libcmd

import (
	"fmt"
	"path/filepath"
)

// State is the live view a command gets while it is being parsed. It is rebuilt on every call to
// [Command.Digest] or [Command.ParseFlags]; a child only gets one when its parent dispatches to it.
type State struct {
	// Args are the tokens this command sees. Args[0] is the command's own name (or the program name
	// at the root) and is never matched against options.
	Args []string

	path    string
	header  string
	config  *Config
	command *Command
	parent  *State
}

func newRootState(c *Command, args []string) *State {
	path := c.Name
	if path == "" && len(args) > 0 {
		path = filepath.Base(args[0])
	}
	return &State{
		Args:    args,
		path:    path,
		header:  c.UsageHeader,
		config:  c.Config,
		command: c,
	}
}

// child builds the state for sub, which was matched by s.Args[1].
func (s *State) child(sub *Command) *State {
	header := sub.UsageHeader
	if header == "" {
		header = s.header
	}
	cfg := sub.Config
	if cfg == nil {
		cfg = s.config
	}
	return &State{
		Args:    s.Args[1:],
		path:    s.path + " " + sub.Name,
		header:  header,
		config:  cfg,
		command: sub,
		parent:  s,
	}
}

// Get retrieves the current value of an option by any of its names, with type inference. It looks
// at the command's own options first and then walks up through the commands that dispatched to it.
// Example usage:
//
//	verbose := Get[bool](cmd, "--verbose")
//	count := Get[int](cmd, "-n")
//	input := Get[string](cmd, "-i")
//
// Values are bool, string, int, float64 or [ActionFunc], matching the option kind. Get panics if
// the name is not registered anywhere on the path or the type does not match, since either is a
// programming error.
func Get[T any](c *Command, name string) T {
	for cmd := c; cmd != nil; cmd = cmd.parent() {
		reg, _ := newRegistry(cmd.Options)
		opt, ok := reg.lookup(name)
		if !ok {
			continue
		}
		v := opt.value.get()
		if t, ok := v.(T); ok {
			return t
		}
		panic(fmt.Sprintf("internal error: type mismatch for option %q in command %q: registered %s, requested %T",
			name, cmd.Path(), opt.Kind(), *new(T)))
	}
	panic(fmt.Sprintf("internal error: option %q not found in command %q", name, c.Path()))
}
