package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticRule(id, group string, findings ...Finding) RuleDef {
	return RuleDef{
		ID:    id,
		Group: group,
		Check: func(*Context) []Finding { return findings },
	}
}

func TestRunner(t *testing.T) {
	ctx := NewContext(t.TempDir())

	t.Run("failure never stops the run", func(t *testing.T) {
		var ran []string
		rules := []RuleDef{
			{ID: "A1", Group: "g", Check: func(*Context) []Finding {
				ran = append(ran, "A1")
				return []Finding{Err("A1", "artifact does not exist")}
			}},
			{ID: "A2", Group: "g", Check: func(*Context) []Finding {
				ran = append(ran, "A2")
				return []Finding{Ok("A2", "fine")}
			}},
			{ID: "A3", Group: "g", Check: func(*Context) []Finding {
				ran = append(ran, "A3")
				return []Finding{Ok("A3", "also fine")}
			}},
		}

		result := NewRunner(ctx, WithRules(rules)).Run()
		assert.Equal(t, []string{"A1", "A2", "A3"}, ran)
		assert.Equal(t, Report{Ok: 2, Err: 1}, result.Report)
		assert.Equal(t, 1, result.Report.ExitCode())
	})

	t.Run("sections follow group boundaries in order", func(t *testing.T) {
		rules := []RuleDef{
			staticRule("L1", "i18n", Ok("L1", "a")),
			staticRule("L2", "i18n", Ok("L2", "b")),
			staticRule("F1", "frontend", Ok("F1", "c")),
			staticRule("T1", "theme", Ok("T1", "d")),
		}

		result := NewRunner(ctx, WithRules(rules)).Run()
		require.Len(t, result.Sections, 3)
		assert.Equal(t, 1, result.Sections[0].Index)
		assert.Equal(t, "i18n", result.Sections[0].Group)
		assert.Len(t, result.Sections[0].Findings, 2)
		assert.Equal(t, "frontend", result.Sections[1].Group)
		assert.Equal(t, "theme", result.Sections[2].Group)
		assert.Equal(t, 3, result.Sections[2].Index)
	})

	t.Run("disable skips without reordering", func(t *testing.T) {
		rules := []RuleDef{
			staticRule("A1", "g1", Ok("A1", "a")),
			staticRule("A2", "g1", Ok("A2", "b")),
			staticRule("B1", "g2", Ok("B1", "c")),
		}

		result := NewRunner(ctx, WithRules(rules), WithDisabled([]string{"A2"})).Run()
		require.Len(t, result.Sections, 2)
		require.Len(t, result.Sections[0].Findings, 1)
		assert.Equal(t, "A1", result.Sections[0].Findings[0].RuleID)
		assert.Equal(t, "B1", result.Sections[1].Findings[0].RuleID)
		assert.Equal(t, Report{Ok: 2}, result.Report)
	})

	t.Run("only restricts the run", func(t *testing.T) {
		rules := []RuleDef{
			staticRule("A1", "g1", Ok("A1", "a")),
			staticRule("B1", "g2", Err("B1", "bad")),
			staticRule("C1", "g3", Ok("C1", "c")),
		}

		result := NewRunner(ctx, WithRules(rules), WithOnly([]string{"A1", "C1"})).Run()
		require.Len(t, result.Sections, 2)
		assert.Equal(t, "g1", result.Sections[0].Group)
		assert.Equal(t, "g3", result.Sections[1].Group)
		assert.Equal(t, Report{Ok: 2}, result.Report)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		rules := []RuleDef{
			staticRule("A1", "g1", Ok("A1", "a")),
			staticRule("B1", "g2", Warn("B1", "hm"), Err("B1", "bad")),
		}

		first := NewRunner(ctx, WithRules(rules)).Run()
		second := NewRunner(ctx, WithRules(rules)).Run()
		assert.Equal(t, first, second)
	})
}
