package libcmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mfridman/xflag"
)

// FlagSet returns a [flag.FlagSet] view of c's options. Each name starting with "-" is registered
// with its leading dashes removed, so "--input" and "-input" both become the flag "input". Names
// the flag package cannot express, such as "/h" or "wasd", are left out. Bool and action options
// are bool flags; setting an action flag to true runs the action.
//
// When names of two different options strip to the same flag, the name sorting first is kept
// ("--x" over "-x") and a warning is logged.
//
// The values write through to the same storage the options are bound to.
func (c *Command) FlagSet() *flag.FlagSet {
	fset := flag.NewFlagSet(c.Path(), flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.Usage = func() {}

	reg, _ := newRegistry(c.Options)
	for _, name := range reg.names() {
		stripped := strings.TrimLeft(name, "-")
		if stripped == name || stripped == "" || strings.Contains(stripped, "=") {
			continue
		}
		opt := reg[name]
		if f := fset.Lookup(stripped); f != nil {
			if f.Value.(*flagValue).opt != opt {
				c.warn("flag name claimed twice, first name wins",
					"command", c.Path(), "flag", stripped, "dropped", name)
			}
			continue
		}
		fset.Var(&flagValue{opt: opt, cmd: c}, stripped, opt.Description)
	}
	return fset
}

// ParseFlags is an alternative to [Command.Digest] that follows the standard library flag grammar
// on the selected command: "-name=value" is accepted, and flags may be interleaved with positional
// arguments, which are returned. Subcommand dispatch, selection and the first token rules are the
// same as for Digest, and so are the error codes: a bad number is [ErrBadInt] or [ErrBadFloat] and
// an undefined flag is [ErrUnknownArgument]. Other flag grammar failures are [ErrBadFlag].
func (c *Command) ParseFlags(args []string) ([]string, error) {
	c.state = newRootState(c, args)
	var positional []string
	err := c.digest(func(cmd *Command) error {
		fset := cmd.FlagSet()
		if err := xflag.ParseToEnd(fset, cmd.state.Args[1:]); err != nil {
			return cmd.flagError(fset, err)
		}
		positional = fset.Args()
		return nil
	})
	return positional, err
}

const undefinedFlagPrefix = "flag provided but not defined: "

// flagError converts a failure of the flag package back into the error Digest would report. The flag
// package formats errors returned by Set with %v, so the original error is taken from the value that
// recorded it.
func (c *Command) flagError(fset *flag.FlagSet, err error) error {
	var cause error
	fset.VisitAll(func(f *flag.Flag) {
		if v, ok := f.Value.(*flagValue); ok && v.err != nil {
			cause = v.err
		}
	})
	var typed *Error
	switch {
	case errors.As(cause, &typed):
		return fmt.Errorf("command %q: %w", c.Path(), typed)
	case cause != nil:
		// Action errors are returned as they are.
		return cause
	}
	if name, ok := strings.CutPrefix(err.Error(), undefinedFlagPrefix); ok {
		reg, _ := newRegistry(c.Options)
		return c.unknownArgument(name, reg)
	}
	return fmt.Errorf("command %q: %w", c.Path(), NewError(ErrBadFlag, "", err))
}

// flagValue adapts an Option to flag.Value and flag.Getter.
type flagValue struct {
	opt *Option
	cmd *Command

	// err is the error of a failed conversion or action.
	err error
}

var _ flag.Getter = (*flagValue)(nil)

func (v *flagValue) String() string {
	// The flag package calls String on a zero value when printing defaults.
	if v == nil || v.opt == nil {
		return ""
	}
	return v.opt.value.String()
}

func (v *flagValue) Set(s string) error {
	switch v.opt.Kind() {
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*v.opt.value.(*boolValue).p = b
		return nil
	case KindAction:
		b, err := strconv.ParseBool(s)
		if err != nil || !b {
			return err
		}
		v.err = v.opt.run(v.cmd)
		return v.err
	default:
		v.err = v.opt.value.set(s)
		return v.err
	}
}

func (v *flagValue) Get() any {
	return v.opt.value.get()
}

func (v *flagValue) IsBoolFlag() bool {
	return v.opt.IsFlag()
}
