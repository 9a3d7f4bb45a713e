package libcmd

import (
	"errors"
	"fmt"
	"strings"
)

// Command is one node of a command tree. It owns its options and its subcommands.
//
// Build the top-level command with [NewRoot] and every subcommand with [NewSubCommand]; both add the
// implicit actions. A bare &Command{} literal has no implicit options at all.
type Command struct {
	// Name is always a single word. It is matched exactly against the first token after the parent's
	// name to select this command, and it makes up the display path shown in help text.
	Name string

	// Description is shown under the usage line and next to the name in the parent's help.
	Description string

	// UsageHeader is printed at the top of the help text. Subcommands without their own header use
	// the header of the command that dispatched to them.
	UsageHeader string

	// License is printed by the --license action of a root command.
	License string

	// UsageFunc optionally replaces [DefaultUsage] for this command.
	UsageFunc func(*Command) string

	// Options are matched against the command's tokens. When two options share a name the one
	// listed later wins.
	Options []*Option

	// SubCommands are tried in order against the first token after the command's name.
	SubCommands []*Command

	// Selected, if not nil, is set to true when parsing dispatches to this command and to false when
	// parsing continues into one of its subcommands.
	Selected *bool

	// Config controls output, exit and rendering. Nil means defaults. A subcommand without one
	// uses the config of the command that dispatched to it, which is only known once a parse has
	// reached it; before that its Usage renders with its own config or the defaults.
	Config *Config

	state *State
}

// NewRoot prepares c as a top-level entry point: a help action (-h, --help) and a license action
// (--license) are prepended to its options.
func NewRoot(c *Command) *Command {
	c.Options = append([]*Option{helpOption(), licenseOption()}, c.Options...)
	return c
}

// NewSubCommand prepares c as a subcommand: only the help action is prepended to its options.
func NewSubCommand(c *Command) *Command {
	c.Options = append([]*Option{helpOption()}, c.Options...)
	return c
}

func helpOption() *Option {
	return Action(showHelp, []string{"-h", "--help"}, "Shows this message", "/h")
}

func licenseOption() *Option {
	return Action(showLicense, []string{"--license"}, "Shows the license", "--License", "/License", "/license")
}

func showHelp(c *Command) error {
	cfg := c.config()
	fmt.Fprintln(cfg.Stdout, c.Usage())
	cfg.Exit(0)
	return nil
}

func showLicense(c *Command) error {
	cfg := c.config()
	if c.License != "" {
		fmt.Fprintln(cfg.Stdout, c.License)
	}
	fmt.Fprintln(cfg.Stdout, cfg.LicenseNotice)
	cfg.Exit(0)
	return nil
}

// Path returns the display path of the command: the names from the root to this command joined by
// spaces. It reflects the last parse; before any parse it is just the command's name.
func (c *Command) Path() string {
	if c.state == nil {
		return c.Name
	}
	return c.state.path
}

// Args returns the tokens this command saw during the last parse, starting with its own name. It
// is nil if parsing never reached this command.
func (c *Command) Args() []string {
	if c.state == nil {
		return nil
	}
	return c.state.Args
}

func (c *Command) parent() *Command {
	if c.state == nil || c.state.parent == nil {
		return nil
	}
	return c.state.parent.command
}

func (c *Command) header() string {
	if c.state == nil {
		return c.UsageHeader
	}
	return c.state.header
}

// findSubCommand returns the first subcommand named name, or nil.
func (c *Command) findSubCommand(name string) *Command {
	for _, sub := range c.SubCommands {
		if sub != nil && sub.Name == name {
			return sub
		}
	}
	return nil
}

// Validate checks the command tree for mistakes that parsing tolerates silently: missing or
// multi-word names, options without any name, and names claimed twice within one command.
func (c *Command) Validate() error {
	return validateCommands(c, nil)
}

func validateCommands(c *Command, path []string) error {
	if c.Name == "" && len(path) > 0 {
		return fmt.Errorf("subcommand in path %q has no name", strings.Join(path, " "))
	}
	if strings.ContainsAny(c.Name, " \t") {
		return fmt.Errorf("command name %q contains spaces, must be a single word", c.Name)
	}
	currentPath := append(path, c.Name)
	where := strings.TrimSpace(strings.Join(currentPath, " "))

	var errs []error
	for i, opt := range c.Options {
		if opt == nil || opt.value == nil {
			errs = append(errs, fmt.Errorf("command %q: option %d is not initialized", where, i))
			continue
		}
		if len(opt.Names()) == 0 {
			errs = append(errs, fmt.Errorf("command %q: option %d has no names", where, i))
		}
	}
	_, conflicts := newRegistry(c.Options)
	for _, conflict := range conflicts {
		errs = append(errs, fmt.Errorf("command %q: name %q is claimed by %v and %v",
			where, conflict.Name, conflict.Previous.Hands, conflict.Winner.Hands))
	}
	seen := make(map[string]bool)
	for _, sub := range c.SubCommands {
		if sub == nil {
			errs = append(errs, fmt.Errorf("command %q: nil subcommand", where))
			continue
		}
		if seen[sub.Name] {
			errs = append(errs, fmt.Errorf("command %q: duplicate subcommand %q", where, sub.Name))
		}
		seen[sub.Name] = true
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	for _, sub := range c.SubCommands {
		if err := validateCommands(sub, currentPath); err != nil {
			return err
		}
	}
	return nil
}
