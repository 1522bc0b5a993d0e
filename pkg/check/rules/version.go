package rules

import (
	"errors"
	"regexp"

	"github.com/stockenboard/shipcheck/pkg/check"
)

// NumberMatchCheck extracts two labeled numeric values from one artifact via
// pattern matches and requires them to be equal. This is the
// parse-then-compare shape: a pattern that fails to match is itself an err
// finding, never a silent skip.
type NumberMatchCheck struct {
	RuleID      string
	File        string
	First       *regexp.Regexp // must have one capture group of digits
	FirstLabel  string
	Second      *regexp.Regexp // must have one capture group of digits
	SecondLabel string
}

// Check emits exactly one finding: ok with both values, err with both
// values on mismatch, or err when either pattern does not match.
func (c NumberMatchCheck) Check(ctx *check.Context) []check.Finding {
	content, err := ctx.ReadFile(c.File)
	if err != nil {
		if errors.Is(err, check.ErrArtifactMissing) {
			return []check.Finding{check.Err(c.RuleID, "%s does not exist", c.File)}
		}
		return []check.Finding{check.Err(c.RuleID, "%s: %v", c.File, err)}
	}

	name := baseName(c.File)
	firstMatch := c.First.FindStringSubmatch(content)
	secondMatch := c.Second.FindStringSubmatch(content)
	if firstMatch == nil || secondMatch == nil {
		return []check.Finding{check.Err(c.RuleID, "%s: cannot parse %s or %s", name, c.FirstLabel, c.SecondLabel)}
	}

	first, second := firstMatch[1], secondMatch[1]
	if first != second {
		return []check.Finding{check.Err(c.RuleID, "%s: %s=%s != %s=%s", name, c.FirstLabel, first, c.SecondLabel, second)}
	}
	return []check.Finding{check.Ok(c.RuleID, "%s: %s=%s == %s=%s", name, c.FirstLabel, first, c.SecondLabel, second)}
}
