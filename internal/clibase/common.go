// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"varheat/internal/cmdutil"
)

// Common holds the logging and misc flags shared by every command.
type Common struct {
	LogLevel  string
	LogFormat string
	Quiet     bool
	Version   bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.LogLevel, "log-level", "warn", "log level: debug | info | warn | error [warn]")
	fs.StringVar(&c.LogFormat, "log-format", "text", "log format: text | json [text]")
	fs.BoolVar(&c.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if _, err := cmdutil.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid --log-format %q", c.LogFormat)
	}
	return nil
}

// LogOptions converts the shared flags to logger options.
func (c Common) LogOptions() cmdutil.LogOptions {
	return cmdutil.LogOptions{Level: c.LogLevel, Format: c.LogFormat, Quiet: c.Quiet}
}

// ErrTooManyPositionals is returned when more positionals are given than a
// command accepts.
var ErrTooManyPositionals = errors.New("too many positional arguments")
