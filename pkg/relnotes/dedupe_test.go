package relnotes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name string
		line string
		ok   bool
		want Entry
	}{
		{
			name: "pr link",
			line: "* feat: add thing ([#1234](https://example.com/pull/1234))",
			ok:   true,
			want: Entry{
				Indent:      "* ",
				Description: "feat: add thing",
				Links:       " ([#1234](https://example.com/pull/1234))",
				PRNumber:    "1234",
			},
		},
		{
			name: "commit link",
			line: "  * fix: handle nil ([abc1234def](https://example.com/commit/abc1234def))",
			ok:   true,
			want: Entry{
				Indent:      "  * ",
				Description: "fix: handle nil",
				Links:       " ([abc1234def](https://example.com/commit/abc1234def))",
				HasCommit:   true,
			},
		},
		{
			name: "no links",
			line: "* chore: bump deps",
			ok:   true,
			want: Entry{Indent: "* ", Description: "chore: bump deps"},
		},
		{
			name: "pr and commit",
			line: "* feat: x ([#9](u)) ([ABCDEF012](u))",
			ok:   true,
			want: Entry{
				Indent:      "* ",
				Description: "feat: x",
				Links:       " ([#9](u)) ([ABCDEF012](u))",
				PRNumber:    "9",
				HasCommit:   true,
			},
		},
		{name: "heading", line: "## v1.2.0"},
		{name: "blank", line: ""},
		{name: "prose", line: "Thanks to all contributors."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEntry(tt.line)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			tt.want.Line = tt.line
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("entry mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDedupeExactLines(t *testing.T) {
	lines := []string{
		"## v1.0.0",
		"* feat: add scanning ([#1](u))",
		"* feat: add scanning ([#1](u))",
		"",
		"",
	}
	out, stats := Dedupe(lines)
	want := []string{"## v1.0.0", "* feat: add scanning ([#1](u))", ""}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if stats.ExactDuplicates != 2 {
		t.Errorf("ExactDuplicates = %d, want 2", stats.ExactDuplicates)
	}
}

func TestDedupePrefersPREntry(t *testing.T) {
	lines := []string{
		"* feat: add rendering",
		"* feat: add rendering ([#42](u))",
	}
	out, stats := Dedupe(lines)
	want := []string{"* feat: add rendering ([#42](u))"}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if stats.NoPRDuplicates != 1 {
		t.Errorf("NoPRDuplicates = %d, want 1", stats.NoPRDuplicates)
	}
}

func TestDedupeSamePRKeepsFirst(t *testing.T) {
	lines := []string{
		"* fix: cache path ([#7](first))",
		"* fix: cache path ([#7](second))",
		"* fix: cache path ([#8](other))",
	}
	out, stats := Dedupe(lines)
	want := []string{
		"* fix: cache path ([#7](first))",
		"* fix: cache path ([#8](other))",
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if stats.PRDuplicates != 1 {
		t.Errorf("PRDuplicates = %d, want 1", stats.PRDuplicates)
	}
}

func TestDedupeCommitOnlyKeepsFirst(t *testing.T) {
	lines := []string{
		"* chore: regenerate docs ([aaaaaaa](u1))",
		"* chore: regenerate docs ([bbbbbbb](u2))",
	}
	out, stats := Dedupe(lines)
	want := []string{"* chore: regenerate docs ([aaaaaaa](u1))"}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if stats.CommitOnlyDuplicates != 1 {
		t.Errorf("CommitOnlyDuplicates = %d, want 1", stats.CommitOnlyDuplicates)
	}
}

func TestDedupeDistinctDescriptionsUntouched(t *testing.T) {
	lines := []string{
		"* feat: one ([#1](u))",
		"* feat: two ([#2](u))",
		"* feat: three",
	}
	out, stats := Dedupe(lines)
	if diff := cmp.Diff(lines, out); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if stats.TotalRemoved != 0 {
		t.Errorf("TotalRemoved = %d, want 0", stats.TotalRemoved)
	}
}

func TestDedupeRulesCompose(t *testing.T) {
	lines := []string{
		"## Changelog",
		"* feat: widget ([#10](a))",
		"* feat: widget ([#10](a))",
		"* feat: widget",
		"* feat: widget ([#10](b))",
		"* docs: tidy ([1234abc](c1))",
		"* docs: tidy ([5678def](c2))",
	}
	out, stats := Dedupe(lines)
	want := []string{
		"## Changelog",
		"* feat: widget ([#10](a))",
		"* docs: tidy ([1234abc](c1))",
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	wantStats := Stats{
		ExactDuplicates:      1,
		NoPRDuplicates:       1,
		PRDuplicates:         1,
		CommitOnlyDuplicates: 1,
		TotalRemoved:         4,
		OriginalLines:        7,
		FinalLines:           3,
	}
	if diff := cmp.Diff(wantStats, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestDedupeFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "notes.md")
	content := "## v2\n* fix: a ([#1](u))\n* fix: a ([#1](u))\n"
	if err := os.WriteFile(in, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	stats, err := DedupeFile(in, in)
	if err != nil {
		t.Fatalf("DedupeFile: %v", err)
	}
	if stats.ExactDuplicates != 1 || stats.FinalLines != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	got, err := os.ReadFile(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "## v2\n* fix: a ([#1](u))\n" {
		t.Errorf("file content = %q", got)
	}
}

func TestDedupeFileMissing(t *testing.T) {
	if _, err := DedupeFile(filepath.Join(t.TempDir(), "absent.md"), "out.md"); err == nil {
		t.Error("expected error for missing input")
	}
}
