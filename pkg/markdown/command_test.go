package markdown

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/cliscribe/cliscribe/pkg/help"
	"github.com/cliscribe/cliscribe/pkg/scan"
)

func testReport(root *scan.CommandNode) *scan.Report {
	return &scan.Report{
		Command:   "tool",
		ScannedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Root:      root,
	}
}

func TestRenderCommandTreeGolden(t *testing.T) {
	report := testReport(&scan.CommandNode{
		Path:   []string{"tool"},
		Format: scan.FormatStructured,
		Structured: &help.Structured{
			Usage:       "tool [opts]",
			Description: "A short tool.",
			Commands: []help.Command{
				{Name: "build", Signature: "build [x]", Description: "Builds it"},
			},
			Options: []help.Option{
				{Short: "-h", Long: "--help", Description: "show help"},
			},
		},
	})

	got := RenderCommandTree(report, DefaultConfig())
	want := "# CLI Reference\n" +
		"\n" +
		"*Generated: 2026-08-01T12:00:00Z*\n" +
		"\n" +
		"*Command: `tool`*\n" +
		"\n" +
		"## Table of Contents\n" +
		"\n" +
		"- [tool](#tool)\n" +
		"## tool\n" +
		"\n" +
		"A short tool.\n" +
		"\n" +
		"**Usage:**\n" +
		"```bash\n" +
		"tool [opts]\n" +
		"```\n" +
		"\n" +
		"**Available Commands:**\n" +
		"\n" +
		"- `build [x]` - Builds it\n" +
		"\n" +
		"**Options:**\n" +
		"\n" +
		"- `-h --help` - show help\n"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCommandTreeDeterministic(t *testing.T) {
	report := testReport(&scan.CommandNode{
		Path:   []string{"tool"},
		Format: scan.FormatStructured,
		Structured: &help.Structured{
			Usage: "tool",
			Commands: []help.Command{
				{Name: "b", Signature: "b", Description: "second"},
				{Name: "a", Signature: "a", Description: "first"},
			},
		},
		Children: map[string]*scan.CommandNode{
			"a": {Path: []string{"tool", "a"}, Format: scan.FormatRaw, Raw: "a help"},
			"b": {Path: []string{"tool", "b"}, Format: scan.FormatRaw, Raw: "b help"},
		},
	})

	first := RenderCommandTree(report, DefaultConfig())
	for i := 0; i < 5; i++ {
		if got := RenderCommandTree(report, DefaultConfig()); got != first {
			t.Fatal("render is not deterministic across runs")
		}
	}

	// Children follow help-text order, not map order.
	if strings.Index(first, "### tool b") > strings.Index(first, "### tool a") {
		t.Error("children not rendered in listed order")
	}
}

func TestOptionLayouts(t *testing.T) {
	structured := &help.Structured{
		Usage: "tool",
		Options: []help.Option{
			{Short: "-v", Long: "--version", Description: "show version"},
		},
	}

	list := RenderCommandTree(testReport(&scan.CommandNode{
		Path: []string{"tool"}, Format: scan.FormatStructured, Structured: structured,
	}), DefaultConfig())
	if !strings.Contains(list, "- `-v --version` - show version") {
		t.Errorf("list layout missing option line:\n%s", list)
	}

	cfg := DefaultConfig()
	cfg.OptionLayout = LayoutTable
	table := RenderCommandTree(testReport(&scan.CommandNode{
		Path: []string{"tool"}, Format: scan.FormatStructured, Structured: structured,
	}), cfg)
	if !strings.Contains(table, "| `-v --version` | show version |") {
		t.Errorf("table layout missing option row:\n%s", table)
	}
	if !strings.Contains(table, "| Option | Description |") {
		t.Error("table layout missing header row")
	}
}

func TestTableEscapesPipes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OptionLayout = LayoutTable
	doc := RenderCommandTree(testReport(&scan.CommandNode{
		Path:   []string{"tool"},
		Format: scan.FormatStructured,
		Structured: &help.Structured{
			Usage:   "tool",
			Options: []help.Option{{Long: "--sep", Description: "use | as separator"}},
		},
	}), cfg)
	if !strings.Contains(doc, `use \| as separator`) {
		t.Errorf("pipe not escaped in table cell:\n%s", doc)
	}
}

func TestAngleBracketsEscaped(t *testing.T) {
	doc := RenderCommandTree(testReport(&scan.CommandNode{
		Path:   []string{"tool"},
		Format: scan.FormatStructured,
		Structured: &help.Structured{
			Usage:       "tool",
			Description: "Runs <fast> mode.",
			Options:     []help.Option{{Long: "--name <value>", Description: "set <value>"}},
		},
	}), DefaultConfig())
	if strings.Contains(doc, "<fast>") || strings.Contains(doc, "set <value>") {
		t.Errorf("angle brackets not escaped:\n%s", doc)
	}
	if !strings.Contains(doc, "Runs &lt;fast&gt; mode.") {
		t.Errorf("escaped description missing:\n%s", doc)
	}
}

func TestErrorNodeStubs(t *testing.T) {
	tests := []struct {
		kind    scan.ErrorKind
		subKind string
		want    string
	}{
		{scan.ErrExecution, "bigint_serialization", "technical issue with option serialization"},
		{scan.ErrExecution, "unknown", "currently unavailable due to a technical issue"},
		{scan.ErrAlreadyVisited, "", "documented in an earlier section"},
		{scan.ErrMaxDepthExceeded, "", "not included in this reference"},
		{scan.ErrNoOutput, "", "produced no help output"},
		{scan.ErrInvalidSubcommand, "", "does not provide its own help output"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			doc := RenderCommandTree(testReport(&scan.CommandNode{
				Path:   []string{"tool", "broken"},
				Format: scan.FormatError,
				Err:    &scan.NodeError{Kind: tt.kind, SubKind: tt.subKind},
			}), DefaultConfig())
			if !strings.Contains(doc, "## tool broken") {
				t.Errorf("stub heading missing:\n%s", doc)
			}
			if !strings.Contains(doc, tt.want) {
				t.Errorf("stub sentence for %s missing %q:\n%s", tt.kind, tt.want, doc)
			}
		})
	}
}

func TestErrorNodesAppearInTOC(t *testing.T) {
	report := testReport(&scan.CommandNode{
		Path:   []string{"tool"},
		Format: scan.FormatStructured,
		Structured: &help.Structured{
			Usage:    "tool",
			Commands: []help.Command{{Name: "broken", Signature: "broken", Description: "x"}},
		},
		Children: map[string]*scan.CommandNode{
			"broken": {
				Path:   []string{"tool", "broken"},
				Format: scan.FormatError,
				Err:    &scan.NodeError{Kind: scan.ErrNoOutput},
			},
		},
	})
	doc := RenderCommandTree(report, DefaultConfig())
	if !strings.Contains(doc, "  - [tool broken](#tool-broken)") {
		t.Errorf("error node missing from TOC:\n%s", doc)
	}
}

func TestMaxDepthOmitsSubtree(t *testing.T) {
	deep := &scan.CommandNode{
		Path:   []string{"tool", "a", "b"},
		Format: scan.FormatRaw,
		Raw:    "depth two help",
	}
	report := testReport(&scan.CommandNode{
		Path:   []string{"tool"},
		Format: scan.FormatStructured,
		Structured: &help.Structured{
			Usage:    "tool",
			Commands: []help.Command{{Name: "a", Signature: "a", Description: "x"}},
		},
		Children: map[string]*scan.CommandNode{
			"a": {
				Path:   []string{"tool", "a"},
				Format: scan.FormatStructured,
				Structured: &help.Structured{
					Usage:    "tool a",
					Commands: []help.Command{{Name: "b", Signature: "b", Description: "y"}},
				},
				Children: map[string]*scan.CommandNode{"b": deep},
			},
		},
	})

	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	doc := RenderCommandTree(report, cfg)
	if !strings.Contains(doc, "tool a") {
		t.Error("depth-2 node missing")
	}
	if strings.Contains(doc, "depth two help") {
		t.Errorf("node beyond MaxDepth rendered:\n%s", doc)
	}
}

func TestSectionedRendering(t *testing.T) {
	doc := RenderCommandTree(testReport(&scan.CommandNode{
		Path:   []string{"tool", "start"},
		Format: scan.FormatSectioned,
		Sectioned: &help.Sectioned{
			Description: "Starts a node.",
			Sections: []help.Section{{
				Name: "NETWORK",
				Options: []help.SectionOption{{
					Flag:        "--port <n>",
					Default:     "8080",
					EnvVar:      "PORT",
					Description: "port to bind",
				}},
			}},
		},
	}), DefaultConfig())

	for _, want := range []string{
		"**NETWORK**",
		"- `--port <n>` (default: `8080`)",
		"  port to bind",
		"  *Environment: `$PORT`*",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("sectioned doc missing %q:\n%s", want, doc)
		}
	}

	cfg := DefaultConfig()
	cfg.ShowEnvVars = false
	doc = RenderCommandTree(testReport(&scan.CommandNode{
		Path:   []string{"tool", "start"},
		Format: scan.FormatSectioned,
		Sectioned: &help.Sectioned{
			Sections: []help.Section{{
				Name:    "NETWORK",
				Options: []help.SectionOption{{Flag: "--port", EnvVar: "PORT"}},
			}},
		},
	}), cfg)
	if strings.Contains(doc, "$PORT") {
		t.Error("env var shown despite ShowEnvVars=false")
	}
}

func TestInjectableHeaderAndFooter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RenderHeader = func(name string, depth int) string {
		return strings.Repeat("#", depth+1) + " cmd: " + name
	}
	cfg.RenderFooter = func() string { return "---\n*end of reference*" }

	doc := RenderCommandTree(testReport(&scan.CommandNode{
		Path: []string{"tool"}, Format: scan.FormatRaw, Raw: "help",
	}), cfg)

	if !strings.Contains(doc, "## cmd: tool") {
		t.Errorf("custom header not used:\n%s", doc)
	}
	if !strings.HasSuffix(doc, "*end of reference*") {
		t.Errorf("footer not appended:\n%s", doc)
	}
}

func TestConfigToggles(t *testing.T) {
	report := testReport(&scan.CommandNode{
		Path:   []string{"tool"},
		Format: scan.FormatStructured,
		Structured: &help.Structured{
			Usage: "tool [opts]",
		},
	})

	cfg := DefaultConfig()
	cfg.IncludeTOC = false
	cfg.IncludeMetadata = false
	cfg.ShowUsage = false
	doc := RenderCommandTree(report, cfg)

	if strings.Contains(doc, "Table of Contents") {
		t.Error("TOC rendered despite IncludeTOC=false")
	}
	if strings.Contains(doc, "*Generated:") {
		t.Error("metadata rendered despite IncludeMetadata=false")
	}
	if strings.Contains(doc, "**Usage:**") {
		t.Error("usage rendered despite ShowUsage=false")
	}
}
