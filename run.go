package libcmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const (
	// DefaultColumnWidth is the width, in terminal cells, of each name column in help output.
	DefaultColumnWidth = 12

	// DefaultLicenseNotice is printed after the program's own license text.
	DefaultLicenseNotice = "Command line parsing by libcmd, licensed under the Mozilla Public License 2.0: " +
		"https://mozilla.org/MPL/2.0/"
)

// Config controls where a command tree writes, how it exits and how help is laid out. The zero
// value is ready to use.
type Config struct {
	// Stdout receives help, license and comfortable-mode error text. Defaults to [os.Stdout].
	Stdout io.Writer

	// Exit terminates the process. Defaults to [os.Exit]. Tests replace it to observe the status.
	Exit func(code int)

	// ColumnWidth is the width of each name column in help output. Defaults to
	// [DefaultColumnWidth].
	ColumnWidth int

	// Width wraps help descriptions at this many cells. Zero disables wrapping.
	Width int

	// LicenseNotice is printed by the license action after the program's license text. Defaults to
	// [DefaultLicenseNotice].
	LicenseNotice string

	// Logger, if set, receives debug records of dispatch and option matching, and warnings for
	// option names claimed twice.
	Logger *log.Logger
}

// ComfortDigest is [Command.Digest] for program entry points. An invalid argument is printed to the
// configured Stdout followed by an exit with status 1. Any other error, such as one returned by an
// action, is returned to the caller.
func (c *Command) ComfortDigest(args []string) error {
	err := c.Digest(args)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidArgument) {
		cfg := c.config()
		fmt.Fprintln(cfg.Stdout, err)
		cfg.Exit(1)
	}
	return err
}

// config returns the effective configuration of c with defaults applied. The config inherited from
// a parent is only seen after a parse has dispatched to c.
func (c *Command) config() *Config {
	cfg := c.Config
	if c.state != nil && c.state.config != nil {
		cfg = c.state.config
	}
	return checkAndSetConfig(cfg)
}

func checkAndSetConfig(cfg *Config) *Config {
	var out Config
	if cfg != nil {
		out = *cfg
	}
	if out.Stdout == nil {
		out.Stdout = os.Stdout
	}
	if out.Exit == nil {
		out.Exit = os.Exit
	}
	if out.ColumnWidth <= 0 {
		out.ColumnWidth = DefaultColumnWidth
	}
	if out.LicenseNotice == "" {
		out.LicenseNotice = DefaultLicenseNotice
	}
	return &out
}

func (c *Command) debug(msg string, keyvals ...any) {
	if logger := c.config().Logger; logger != nil {
		logger.Debug(msg, keyvals...)
	}
}

func (c *Command) warn(msg string, keyvals ...any) {
	if logger := c.config().Logger; logger != nil {
		logger.Warn(msg, keyvals...)
	}
}
