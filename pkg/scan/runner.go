package scan

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/cliscribe/cliscribe/pkg/httputil"
)

// DefaultTimeout bounds a single help probe. Interactive tools that ignore
// --help and wait for input would otherwise hang the whole scan.
const DefaultTimeout = 60 * time.Second

// Runner captures the combined output of one program invocation. The scan
// pass depends only on this interface so tests can substitute a canned map
// of outputs for live subprocesses.
type Runner interface {
	Run(ctx context.Context, args []string) (string, error)
}

// ExecRunner invokes the program as a subprocess and captures stdout and
// stderr interleaved, the way a terminal would show them.
type ExecRunner struct {
	// Timeout per invocation. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Run executes args[0] with the remaining arguments. A wide COLUMNS value is
// forced so help generators do not wrap their output into a shape the parsers
// cannot read. A non-zero exit status is not an error here: many tools exit 1
// after printing perfectly good help text.
func (r ExecRunner) Run(ctx context.Context, args []string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Env = append(os.Environ(), "COLUMNS=200")

	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), nil
		}
		return "", err
	}
	return string(out), nil
}

// CachingRunner wraps a Runner with a persistent cache so repeated scans of
// an unchanged tool skip the subprocess entirely.
type CachingRunner struct {
	Runner Runner
	Cache  *httputil.Cache

	// Refresh skips cache reads, forcing a live probe. Results are still
	// written back.
	Refresh bool
}

// Run returns the cached output for the argument list when present,
// otherwise delegates to the wrapped Runner and stores the result. Cache
// failures degrade to a live probe rather than failing the scan.
func (r CachingRunner) Run(ctx context.Context, args []string) (string, error) {
	key := strings.Join(args, " ")
	if !r.Refresh {
		var cached string
		if ok, err := r.Cache.Get(key, &cached); ok && err == nil {
			return cached, nil
		}
	}
	out, err := r.Runner.Run(ctx, args)
	if err != nil {
		return "", err
	}
	if err := r.Cache.Set(key, out); err != nil {
		return out, nil
	}
	return out, nil
}
