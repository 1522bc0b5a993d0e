package rules

import (
	"errors"
	"regexp"
	"strings"

	"github.com/stockenboard/shipcheck/pkg/check"
)

// cjkRe matches the CJK Unified Ideographs block, the script range the
// shipped provider metadata must not contain.
var cjkRe = regexp.MustCompile(`[\x{4e00}-\x{9fff}]`)

// snippetLen caps the quoted line excerpt in line-level messages.
const snippetLen = 80

// ForbiddenScriptCheck scans every file matching a glob for two independent
// per-line conditions:
//
//  1. a marker substring co-occurring with a CJK character on the same line,
//  2. a map-key literal extracted by KeyPattern whose key itself contains a
//     CJK character.
//
// The second condition deliberately tests only the extracted key: CJK in
// human-readable message strings (format! arguments and the like) is
// permitted, CJK in data keys that ship to the UI is not. Each condition
// flags the first offending line per file only.
type ForbiddenScriptCheck struct {
	RuleID     string
	Glob       string         // e.g. "src-tauri/src/providers/*.rs"
	Marker     string         // e.g. "free_tier_info"
	KeyPattern *regexp.Regexp // capture group 1 is the inserted key literal
}

// Check emits one ok finding per clean file, or the specific line-level err
// findings for files that trip either condition.
func (c ForbiddenScriptCheck) Check(ctx *check.Context) []check.Finding {
	files, err := ctx.Glob(c.Glob)
	if err != nil || len(files) == 0 {
		return []check.Finding{check.Err(c.RuleID, "no files match %s", c.Glob)}
	}

	var findings []check.Finding
	for _, rel := range files {
		content, err := ctx.ReadFile(rel)
		if err != nil {
			if errors.Is(err, check.ErrArtifactMissing) {
				findings = append(findings, check.Err(c.RuleID, "%s does not exist", rel))
			} else {
				findings = append(findings, check.Err(c.RuleID, "%s: %v", rel, err))
			}
			continue
		}

		name := baseName(rel)
		lines := check.SplitLines(content)
		fileOk := true

		for i, line := range lines {
			if strings.Contains(line, c.Marker) && cjkRe.MatchString(line) {
				findings = append(findings, check.ErrAt(c.RuleID, name, i+1,
					"%s contains CJK text: %s", c.Marker, snippet(line)))
				fileOk = false
				break
			}
		}
		for i, line := range lines {
			m := c.KeyPattern.FindStringSubmatch(line)
			if m != nil && cjkRe.MatchString(m[1]) {
				findings = append(findings, check.ErrAt(c.RuleID, name, i+1,
					"inserted key contains CJK text: %s", m[1]))
				fileOk = false
				break
			}
		}

		if fileOk {
			findings = append(findings, check.Ok(c.RuleID, "%s", name))
		}
	}
	return findings
}

func snippet(line string) string {
	runes := []rune(strings.TrimSpace(line))
	if len(runes) > snippetLen {
		runes = runes[:snippetLen]
	}
	return string(runes)
}
