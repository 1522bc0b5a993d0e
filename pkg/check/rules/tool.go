package rules

import (
	"time"

	"github.com/stockenboard/shipcheck/pkg/check"
	"github.com/stockenboard/shipcheck/pkg/check/exec"
)

// ToolCheck runs an external command in the project root and turns its exit
// status into a single finding. The captured output is embedded verbatim on
// failure (truncated, keeping enough to diagnose); the output is never
// parsed or interpreted.
type ToolCheck struct {
	RuleID  string
	Label   string // e.g. "tsc --noEmit"
	Command string
	Args    []string
}

// Check emits exactly one finding. A timeout counts as a failure rather
// than hanging the run.
func (c ToolCheck) Check(ctx *check.Context) []check.Finding {
	timeout := ctx.ToolTimeout
	if timeout <= 0 {
		timeout = check.DefaultToolTimeout
	}

	res, err := exec.Run(ctx.Root, c.Command, c.Args, timeout)
	if err == nil {
		return []check.Finding{check.Ok(c.RuleID, "%s passed (%s)", c.Label, res.Elapsed.Round(time.Millisecond))}
	}
	if res.TimedOut {
		return []check.Finding{check.Err(c.RuleID, "%s timed out after %s", c.Label, timeout)}
	}
	f := check.Err(c.RuleID, "%s failed (exit %d)", c.Label, res.ExitCode)
	f.Context = check.SplitLines(res.Output)
	return []check.Finding{f}
}
