// Package exec invokes external build and type-check tools as opaque
// subprocesses. The checker treats each tool as a correctness oracle: it
// captures the combined output and exit code and never interprets either.
package exec

import (
	"context"
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"
	"time"
)

// ErrToolFailure signals a nonzero exit or a timed-out invocation.
var ErrToolFailure = errors.New("external tool failure")

// maxCapturedOutput caps the retained combined output. Both the head and the
// tail are kept: type checkers tend to report near the top, bundlers near
// the bottom.
const maxCapturedOutput = 8 << 10

// Result holds the observable outcome of one tool invocation.
type Result struct {
	Command  string
	Output   string
	ExitCode int
	TimedOut bool
	Elapsed  time.Duration
}

// Run executes name with args in dir, bounded by timeout. The returned error
// wraps ErrToolFailure for nonzero exits and timeouts; the Result is valid
// in either case and carries the captured output.
func Run(dir, name string, args []string, timeout time.Duration) (Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	start := time.Now()
	out, err := cmd.CombinedOutput()
	res := Result{
		Command: strings.Join(append([]string{name}, args...), " "),
		Output:  Truncate(string(out), maxCapturedOutput),
		Elapsed: time.Since(start),
	}

	if ctx.Err() == context.DeadlineExceeded {
		res.TimedOut = true
		res.ExitCode = -1
		return res, fmt.Errorf("%w: %s timed out after %s", ErrToolFailure, res.Command, timeout)
	}
	if err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
		}
		return res, fmt.Errorf("%w: %s: %v", ErrToolFailure, res.Command, err)
	}
	return res, nil
}

// Truncate limits s to roughly max bytes, keeping the head and the tail with
// an elision marker between them. Short input is returned unchanged.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	half := max / 2
	return s[:half] + "\n... (output truncated) ...\n" + s[len(s)-half:]
}
