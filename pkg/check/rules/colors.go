package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/stockenboard/shipcheck/pkg/check"
)

// maxColorContext caps the offending lines quoted per file.
const maxColorContext = 5

// ColorPattern is one named hardcoded-color pattern.
type ColorPattern struct {
	Label string
	Re    *regexp.Regexp
}

// Stylesheet color patterns: raw hex literals, the legacy rgba() function,
// and theme-variable references carrying a hardcoded literal fallback. The
// fallback form nominally "uses" the variable but still defeats theme
// indirection, so it is flagged too.
var (
	hexRe         = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b`)
	rgbaRe        = regexp.MustCompile(`rgba\(`)
	varFallbackRe = regexp.MustCompile(`var\(--\w+,\s*#`)

	inlineHexRe         = regexp.MustCompile(`['"]#[0-9a-fA-F]{3,8}['"]`)
	inlineVarFallbackRe = regexp.MustCompile(`var\(--\w+,\s*#[0-9a-fA-F]`)
)

// CSSColorPatterns match hardcoded colors in stylesheet lines.
func CSSColorPatterns() []ColorPattern {
	return []ColorPattern{
		{Label: "hardcoded hex", Re: hexRe},
		{Label: "hardcoded rgba", Re: rgbaRe},
		{Label: "var() with hex fallback", Re: varFallbackRe},
	}
}

// InlineColorPatterns match hardcoded colors in component markup, where hex
// literals appear as quoted style values.
func InlineColorPatterns() []ColorPattern {
	return []ColorPattern{
		{Label: "inline hex", Re: inlineHexRe},
		{Label: "var() with hex fallback", Re: inlineVarFallbackRe},
	}
}

// ColorScanCheck walks every file of one extension under a root directory
// and flags hardcoded color values outside the theme system. The designated
// theme source of truth and files on the static exemption list (intentional
// literal palettes) are skipped entirely, as are full-line comments.
type ColorScanCheck struct {
	RuleID      string
	Dir         string
	Ext         string
	Patterns    []ColorPattern
	Exclude     []string        // project-relative paths, e.g. the theme file
	ExemptNames map[string]bool // exempt base names, e.g. ThemePicker.tsx

	// CommentPrefixes mark full-line comments to skip before testing.
	CommentPrefixes []string
}

// Check emits one finding per scanned file: err naming the file and the
// match count with up to maxColorContext offending lines as context, or ok.
func (c ColorScanCheck) Check(ctx *check.Context) []check.Finding {
	files, err := ctx.WalkExt(c.Dir, c.Ext)
	if err != nil {
		return []check.Finding{check.Err(c.RuleID, "cannot walk %s: %v", c.Dir, err)}
	}

	excluded := make(map[string]bool, len(c.Exclude))
	for _, rel := range c.Exclude {
		excluded[rel] = true
	}

	var findings []check.Finding
	for _, rel := range files {
		if excluded[rel] || c.ExemptNames[baseName(rel)] {
			continue
		}
		content, err := ctx.ReadFile(rel)
		if err != nil {
			if errors.Is(err, check.ErrArtifactMissing) {
				findings = append(findings, check.Err(c.RuleID, "%s does not exist", rel))
			} else {
				findings = append(findings, check.Err(c.RuleID, "%s: %v", rel, err))
			}
			continue
		}
		issues := c.scan(content)
		if len(issues) > 0 {
			f := check.Err(c.RuleID, "%s: %d hardcoded color(s)", rel, len(issues))
			f.File = rel
			if len(issues) > maxColorContext {
				issues = issues[:maxColorContext]
			}
			f.Context = issues
			findings = append(findings, f)
			continue
		}
		findings = append(findings, check.Ok(c.RuleID, "%s", rel))
	}
	return findings
}

// scan collects one issue line per pattern match, skipping comment lines.
func (c ColorScanCheck) scan(content string) []string {
	var issues []string
	for i, line := range check.SplitLines(content) {
		stripped := strings.TrimSpace(line)
		if c.isComment(stripped) {
			continue
		}
		for _, p := range c.Patterns {
			if p.Re.MatchString(stripped) {
				issues = append(issues, fmt.Sprintf("L%d: %s: %s", i+1, p.Label, snippet(stripped)))
			}
		}
	}
	return issues
}

func (c ColorScanCheck) isComment(stripped string) bool {
	for _, prefix := range c.CommentPrefixes {
		if strings.HasPrefix(stripped, prefix) {
			return true
		}
	}
	return false
}
