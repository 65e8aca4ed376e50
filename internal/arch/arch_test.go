// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkgInfo struct {
	ImportPath string
	Imports    []string
}

func modulePackages(t *testing.T) []pkgInfo {
	t.Helper()
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	var pkgs []pkgInfo
	dec := json.NewDecoder(&out)
	for {
		var p pkgInfo
		err := dec.Decode(&p)
		if err == io.EOF {
			return pkgs
		}
		if err != nil {
			t.Fatalf("decode go list output: %v", err)
		}
		if strings.HasPrefix(p.ImportPath, "tpsrank/") {
			pkgs = append(pkgs, p)
		}
	}
}

// Library packages must not reach upward into orchestration or CLI code.
func TestImportBoundaries(t *testing.T) {
	appLayer := []string{
		"tpsrank/internal/app", "tpsrank/internal/distapp", "tpsrank/internal/aggapp",
		"tpsrank/internal/combineapp", "tpsrank/internal/scoreapp",
		"tpsrank/internal/cli", "tpsrank/internal/distcli", "tpsrank/internal/aggcli",
		"tpsrank/internal/combinecli", "tpsrank/internal/scorecli",
		"tpsrank/internal/appshell", "tpsrank/cmd/",
	}

	forbidden := map[string][]string{
		"tpsrank/internal/pipeline":  appLayer,
		"tpsrank/internal/aggregate": append([]string{"tpsrank/internal/pipeline"}, appLayer...),
		"tpsrank/internal/manifest":  append([]string{"tpsrank/internal/pipeline"}, appLayer...),
		"tpsrank/internal/writers":   append([]string{"tpsrank/internal/pipeline"}, appLayer...),
		"tpsrank/internal/output":    append([]string{"tpsrank/internal/pipeline"}, appLayer...),
		"tpsrank/internal/pretty":    append([]string{"tpsrank/internal/pipeline"}, appLayer...),
	}

	var violations []string
	for _, p := range modulePackages(t) {
		for prefix, banned := range forbidden {
			if !strings.HasPrefix(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range banned {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, p.ImportPath+" imports "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("layering violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
