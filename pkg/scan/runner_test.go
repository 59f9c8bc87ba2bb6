package scan

import (
	"context"
	"strings"
	"testing"

	"github.com/cliscribe/cliscribe/pkg/httputil"
)

func newTestCache(t *testing.T) *httputil.Cache {
	t.Helper()
	cache, err := httputil.NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	return cache
}

func TestCachingRunnerHit(t *testing.T) {
	inner := &fakeRunner{outputs: map[string]string{"tool --help": "Usage: tool\n"}}
	r := CachingRunner{Runner: inner, Cache: newTestCache(t)}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		out, err := r.Run(ctx, []string{"tool", "--help"})
		if err != nil {
			t.Fatalf("Run %d: %v", i, err)
		}
		if out != "Usage: tool\n" {
			t.Errorf("Run %d = %q", i, out)
		}
	}
	if n := inner.callCount("tool --help"); n != 1 {
		t.Errorf("inner runner invoked %d times, want 1", n)
	}
}

func TestCachingRunnerRefresh(t *testing.T) {
	inner := &fakeRunner{outputs: map[string]string{"tool --help": "Usage: tool\n"}}
	r := CachingRunner{Runner: inner, Cache: newTestCache(t), Refresh: true}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := r.Run(ctx, []string{"tool", "--help"}); err != nil {
			t.Fatalf("Run %d: %v", i, err)
		}
	}
	if n := inner.callCount("tool --help"); n != 2 {
		t.Errorf("inner runner invoked %d times, want 2", n)
	}
}

func TestExecRunnerCapturesOutput(t *testing.T) {
	out, err := ExecRunner{}.Run(context.Background(), []string{"sh", "-c", "echo hello"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("output = %q", out)
	}
}

func TestExecRunnerNonZeroExitKeepsOutput(t *testing.T) {
	out, err := ExecRunner{}.Run(context.Background(), []string{"sh", "-c", "echo partial; exit 1"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.TrimSpace(out) != "partial" {
		t.Errorf("output = %q", out)
	}
}
