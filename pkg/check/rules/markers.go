package rules

import (
	"errors"
	"strings"

	"github.com/stockenboard/shipcheck/pkg/check"
)

// MarkerCondition is one named boolean test over a file's text.
type MarkerCondition struct {
	Label  string // short condition name used in messages
	Marker string // substring to look for
	Forbid bool   // when true, the condition passes if the marker is absent

	// StripComments removes the trailing line-comment portion of every line
	// before searching. Used by forbid conditions so a marker that appears
	// only inside a comment is not flagged.
	StripComments bool
}

// MarkerCheck evaluates a static list of presence/absence conditions against
// one artifact. This is the most common rule shape in the registry: the same
// evaluator is reused across UI component files with different condition
// sets.
type MarkerCheck struct {
	RuleID     string
	File       string
	Conditions []MarkerCondition
}

// Check emits one finding per condition. A missing artifact is one err
// finding for the whole rule; the run continues with the next rule.
func (c MarkerCheck) Check(ctx *check.Context) []check.Finding {
	content, err := ctx.ReadFile(c.File)
	if err != nil {
		if errors.Is(err, check.ErrArtifactMissing) {
			return []check.Finding{check.Err(c.RuleID, "%s does not exist", c.File)}
		}
		return []check.Finding{check.Err(c.RuleID, "%s: %v", c.File, err)}
	}

	name := baseName(c.File)
	var findings []check.Finding
	for _, cond := range c.Conditions {
		haystack := content
		if cond.StripComments {
			haystack = stripLineComments(content)
		}
		found := strings.Contains(haystack, cond.Marker)
		passed := found != cond.Forbid
		if passed {
			findings = append(findings, check.Ok(c.RuleID, "%s: %s", name, cond.Label))
		} else {
			findings = append(findings, check.Err(c.RuleID, "%s: %s FAILED", name, cond.Label))
		}
	}
	return findings
}

// EitherFileCheck tests whether a marker appears in a primary file or a
// fallback file. Some invariants are satisfied by code that moved between
// files during refactors, so the check accepts the marker in either
// location.
type EitherFileCheck struct {
	RuleID   string
	Primary  string
	Fallback string
	Marker   string
	Label    string
}

// Check emits a single combined ok/err finding, plus one err per file that
// could not be read.
func (c EitherFileCheck) Check(ctx *check.Context) []check.Finding {
	var findings []check.Finding
	found := false
	for _, rel := range []string{c.Primary, c.Fallback} {
		content, err := ctx.ReadFile(rel)
		if err != nil {
			if errors.Is(err, check.ErrArtifactMissing) {
				findings = append(findings, check.Err(c.RuleID, "%s does not exist", rel))
			} else {
				findings = append(findings, check.Err(c.RuleID, "%s: %v", rel, err))
			}
			continue
		}
		if strings.Contains(content, c.Marker) {
			found = true
		}
	}
	where := baseName(c.Primary) + "/" + baseName(c.Fallback)
	if found {
		findings = append(findings, check.Ok(c.RuleID, "%s: %s", where, c.Label))
	} else {
		findings = append(findings, check.Err(c.RuleID, "%s: %s not satisfied in either file", where, c.Label))
	}
	return findings
}

// PreferredMarkerCheck verifies that a file uses a preferred marker, and
// downgrades to a warning when it relies on a discouraged fallback marker
// instead. Neither marker present is also acceptable: the file simply does
// not touch the concern.
type PreferredMarkerCheck struct {
	RuleID      string
	File        string
	Preferred   string
	Discouraged string
	Label       string
}

// Check emits exactly one finding: ok, warn, or err (artifact missing).
func (c PreferredMarkerCheck) Check(ctx *check.Context) []check.Finding {
	content, err := ctx.ReadFile(c.File)
	if err != nil {
		if errors.Is(err, check.ErrArtifactMissing) {
			return []check.Finding{check.Err(c.RuleID, "%s does not exist", c.File)}
		}
		return []check.Finding{check.Err(c.RuleID, "%s: %v", c.File, err)}
	}
	name := baseName(c.File)
	switch {
	case strings.Contains(content, c.Preferred):
		return []check.Finding{check.Ok(c.RuleID, "%s: %s", name, c.Label)}
	case strings.Contains(content, c.Discouraged):
		return []check.Finding{check.Warn(c.RuleID, "%s: uses %s without %s", name, c.Discouraged, c.Preferred)}
	default:
		return []check.Finding{check.Ok(c.RuleID, "%s: no direct %s use", name, c.Discouraged)}
	}
}

// stripLineComments removes the `//`-to-end-of-line portion of each line.
// Block comments are left alone; the shipped artifacts only use line
// comments around the markers this shape guards.
func stripLineComments(content string) string {
	lines := check.SplitLines(content)
	out := make([]string, len(lines))
	for i, line := range lines {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

func baseName(rel string) string {
	if idx := strings.LastIndex(rel, "/"); idx >= 0 {
		return rel[idx+1:]
	}
	return rel
}
