package rules

import (
	"testing"
	"time"

	"github.com/stockenboard/shipcheck/pkg/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolCheck(t *testing.T) {
	t.Run("passing tool", func(t *testing.T) {
		ctx := newTestContext(t, nil)
		findings := ToolCheck{
			RuleID:  "BD01",
			Label:   "tsc --noEmit",
			Command: "sh",
			Args:    []string{"-c", "true"},
		}.Check(ctx)

		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusOk, findings[0].Status)
		assert.Contains(t, findings[0].Message, "tsc --noEmit passed")
	})

	t.Run("failing tool embeds its output", func(t *testing.T) {
		ctx := newTestContext(t, nil)
		findings := ToolCheck{
			RuleID:  "BD01",
			Label:   "tsc --noEmit",
			Command: "sh",
			Args:    []string{"-c", "echo 'src/App.tsx(3,1): type error'; exit 2"},
		}.Check(ctx)

		require.Len(t, findings, 1)
		f := findings[0]
		assert.Equal(t, check.StatusErr, f.Status)
		assert.Contains(t, f.Message, "tsc --noEmit failed (exit 2)")
		require.NotEmpty(t, f.Context)
		assert.Contains(t, f.Context[0], "type error")
	})

	t.Run("timeout is a failure, not a hang", func(t *testing.T) {
		ctx := newTestContext(t, nil)
		ctx.ToolTimeout = 100 * time.Millisecond
		findings := ToolCheck{
			RuleID:  "BD02",
			Label:   "vite build",
			Command: "sh",
			Args:    []string{"-c", "sleep 5"},
		}.Check(ctx)

		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusErr, findings[0].Status)
		assert.Contains(t, findings[0].Message, "timed out")
	})

	t.Run("zero timeout falls back to the default", func(t *testing.T) {
		ctx := newTestContext(t, nil)
		ctx.ToolTimeout = 0
		findings := ToolCheck{
			RuleID:  "BD01",
			Label:   "tsc --noEmit",
			Command: "sh",
			Args:    []string{"-c", "true"},
		}.Check(ctx)

		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusOk, findings[0].Status)
	})
}
