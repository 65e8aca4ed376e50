// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
)

// Common holds the CLI fields shared by every tpsrank tool.
type Common struct {
	Quiet    bool
	Verbose  bool
	Version  bool
	Examples bool
}

// Register wires the shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.BoolVar(&c.Quiet, "quiet", false, "errors only on stderr [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "informational logging on stderr [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
	fs.BoolVar(&c.Examples, "examples", false, "print quickstart examples and exit [false]")
}

// Validate applies the shared CLI invariants.
func Validate(c *Common) error {
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}
