package libcmd

import (
	"fmt"

	"github.com/mfridman/libcmd/pkg/suggest"
)

// Digest parses args against the command tree rooted at c and writes the results into the storage
// bound to the options.
//
// args[0] is the program name and is never matched. If args[1] names a subcommand, the subcommand is
// marked selected, c is unmarked, and the subcommand digests args[1:]; c parses nothing itself.
// Otherwise every remaining token must be one of c's option names:
//
//   - a bool option is set to true,
//   - an action option is invoked with c,
//   - a string, int or float option takes the following token as its value, unless there is no
//     following token or the following token is itself an option name, in which case the option is
//     left unchanged.
//
// Repeated options overwrite earlier values. Options that do not appear keep their current value.
// An empty args, an unknown token or a malformed number fails with an error matching
// [ErrInvalidArgument]; whatever was written before the failing token stays written.
func (c *Command) Digest(args []string) error {
	c.state = newRootState(c, args)
	return c.digest((*Command).consume)
}

// digest resolves the subcommand path starting at c and hands the terminal command to leaf.
func (c *Command) digest(leaf func(*Command) error) error {
	args := c.state.Args
	if len(args) == 0 {
		return NewError(ErrEmptyArgs, "", nil)
	}
	if len(args) == 1 {
		return nil
	}
	if sub := c.findSubCommand(args[1]); sub != nil {
		if sub.Selected != nil {
			*sub.Selected = true
		}
		if c.Selected != nil {
			*c.Selected = false
		}
		sub.state = c.state.child(sub)
		sub.debug("dispatch", "from", c.Path(), "to", sub.Path(), "args", len(sub.state.Args)-1)
		return sub.digest(leaf)
	}
	return leaf(c)
}

// consume applies c's tokens, excluding the first, to c's options.
func (c *Command) consume() error {
	reg, conflicts := newRegistry(c.Options)
	for _, conflict := range conflicts {
		c.warn("option name claimed twice, last one wins", "command", c.Path(), "name", conflict.Name)
	}

	args := c.state.Args
	for i := 1; i < len(args); {
		arg := args[i]
		opt, ok := reg.lookup(arg)
		if !ok {
			return c.unknownArgument(arg, reg)
		}
		switch opt.Kind() {
		case KindBool:
			_ = opt.value.set("")
			c.debug("flag", "command", c.Path(), "name", arg)
			i++
		case KindAction:
			c.debug("action", "command", c.Path(), "name", arg)
			if err := opt.run(c); err != nil {
				return err
			}
			i++
		default:
			if i+1 >= len(args) {
				c.debug("option without value", "command", c.Path(), "name", arg)
				i++
				continue
			}
			next := args[i+1]
			if _, isName := reg.lookup(next); isName {
				c.debug("option followed by option", "command", c.Path(), "name", arg, "next", next)
				i++
				continue
			}
			if err := opt.value.set(next); err != nil {
				return fmt.Errorf("command %q: option %s: %w", c.Path(), arg, err)
			}
			c.debug("option", "command", c.Path(), "name", arg, "value", next)
			i += 2
		}
	}
	return nil
}

func (c *Command) unknownArgument(arg string, reg registry) error {
	known := reg.names()
	for _, sub := range c.SubCommands {
		if sub != nil {
			known = append(known, sub.Name)
		}
	}
	err := &Error{
		code:        ErrUnknownArgument,
		arg:         arg,
		suggestions: suggest.FindSimilar(arg, known, 3),
	}
	return fmt.Errorf("command %q: %w", c.Path(), err)
}
