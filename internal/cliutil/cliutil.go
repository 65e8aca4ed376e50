// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// boolFlagNames collects the flags on fs that take no value, so the
// splitter knows not to swallow the argument after them.
func boolFlagNames(fs *flag.FlagSet) map[string]bool {
	names := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if v, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && v.IsBoolFlag() {
			names[f.Name] = true
		}
	})
	return names
}

// SplitFlagsAndPositionals separates flag-like arguments from positionals
// ahead of fs.Parse, keeping stdlib semantics for "-", "--" and "--x=y".
// The flag package stops at the first positional; our tools accept flags
// and positionals in any order.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) ([]string, []string) {
	var flagArgs, posArgs []string
	isBool := boolFlagNames(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if name := strings.TrimLeft(arg, "-"); !isBool[name] && i+1 < len(argv) {
				i++
				flagArgs = append(flagArgs, argv[i])
			}
		}
	}
	return flagArgs, posArgs
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands globs among path-like positionals and replaces
// directories with their sorted *.tsv / *.tsv.gz entries, so a partition
// output directory can be passed as-is.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			sort.Strings(m)
			out = append(out, m...)
			continue
		}
		if fi, err := os.Stat(a); err == nil && fi.IsDir() {
			entries, err := dirTables(a)
			if err != nil {
				return nil, err
			}
			out = append(out, entries...)
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func dirTables(dir string) ([]string, error) {
	var out []string
	for _, pat := range []string{"*.tsv", "*.tsv.gz"} {
		m, err := filepath.Glob(filepath.Join(dir, pat))
		if err != nil {
			return nil, fmt.Errorf("bad glob in %q: %v", dir, err)
		}
		out = append(out, m...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no *.tsv files in directory %q", dir)
	}
	sort.Strings(out)
	return out, nil
}
