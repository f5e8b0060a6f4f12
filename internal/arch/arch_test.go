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

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// frontEnd is everything that knows about flags, env, stdout or exit codes.
var frontEnd = []string{
	"varheat/internal/app", // also appcore, appshell
	"varheat/internal/cli", // also clibase, cliutil
	"varheat/internal/cmdutil",
	"varheat/internal/config",
	"varheat/cmd/",
}

func with(extra ...string) []string { return append(append([]string{}, frontEnd...), extra...) }

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "varheat/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	report := []string{"varheat/internal/writers", "varheat/internal/output", "varheat/pkg/"}
	bans := map[string][]string{
		"varheat/internal/matrix": with(append(report,
			"varheat/internal/tsv", "varheat/internal/variability", "varheat/internal/zscore",
			"varheat/internal/heatmap", "varheat/internal/pipeline")...),
		"varheat/internal/tsv":         with(append(report, "varheat/internal/heatmap", "varheat/internal/pipeline")...),
		"varheat/internal/variability": with(append(report, "varheat/internal/heatmap", "varheat/internal/pipeline")...),
		"varheat/internal/zscore":      with(append(report, "varheat/internal/heatmap", "varheat/internal/pipeline")...),
		"varheat/internal/heatmap":     with(append(report, "varheat/internal/tsv", "varheat/internal/pipeline")...),
		"varheat/internal/pipeline":    with(report...),
		"varheat/internal/writers":     with("varheat/internal/pipeline", "varheat/internal/heatmap"),
		"varheat/internal/output":      with("varheat/internal/pipeline", "varheat/internal/heatmap", "varheat/internal/writers"),
		"varheat/pkg/api":              with("varheat/internal/"),
	}

	var violations []string
	seen := 0
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "varheat/") {
			continue
		}
		seen++
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "varheat/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if seen == 0 {
		t.Fatalf("go list returned no varheat packages")
	}
	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
