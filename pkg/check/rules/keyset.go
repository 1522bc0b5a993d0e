package rules

import (
	"errors"
	"strings"

	"github.com/stockenboard/shipcheck/pkg/check"
)

// KeySetCheck verifies that every catalog file in a locale set defines every
// key of a static expected list. A key counts as present in either its
// unquoted object-property form (`key:`) or its quoted form (`'key':`);
// keys that start with a digit require quoting in object-literal syntax, so
// accepting only one form would produce false negatives.
type KeySetCheck struct {
	RuleID  string
	Dir     string   // catalog directory, e.g. "src/lib/i18n"
	Locales []string // file stems, e.g. "zh_TW", "en"
	Ext     string   // file extension including the dot
	Label   string   // catalog section name used in messages
	Keys    []string // expected key list, order preserved in messages
}

// Check reads each locale file and reports one finding per file: ok with the
// verified key count, or err listing every missing key. A missing file is a
// single err for that file only; the remaining locales are still checked.
func (c KeySetCheck) Check(ctx *check.Context) []check.Finding {
	var findings []check.Finding
	for _, loc := range c.Locales {
		rel := c.Dir + "/" + loc + c.Ext
		content, err := ctx.ReadFile(rel)
		if err != nil {
			if errors.Is(err, check.ErrArtifactMissing) {
				findings = append(findings, check.Err(c.RuleID, "%s does not exist", rel))
				continue
			}
			findings = append(findings, check.Err(c.RuleID, "%s: %v", rel, err))
			continue
		}

		var missing []string
		for _, key := range c.Keys {
			if !containsKey(content, key) {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			findings = append(findings, check.Err(c.RuleID, "%s%s %s missing: %s",
				loc, c.Ext, c.Label, strings.Join(missing, ", ")))
			continue
		}
		findings = append(findings, check.Ok(c.RuleID, "%s%s %s (%d keys)", loc, c.Ext, c.Label, len(c.Keys)))
	}
	return findings
}

// containsKey accepts the unquoted and the single-quoted property form.
func containsKey(content, key string) bool {
	return strings.Contains(content, key+":") || strings.Contains(content, "'"+key+"':")
}
