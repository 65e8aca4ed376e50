// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"tpsrank/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. oneLine is the
// tool's single-sentence description; extra prints the tool-specific flag
// sections and receives a defaults lookup for its format strings.
func UsageCommon(fs *flag.FlagSet, name, oneLine string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, oneLine)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Errors only on stderr [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Informational logging on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
