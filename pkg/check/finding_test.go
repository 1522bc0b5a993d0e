package check

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "ok", StatusOk.String())
		assert.Equal(t, "warn", StatusWarn.String())
		assert.Equal(t, "err", StatusErr.String())
	})

	t.Run("glyph", func(t *testing.T) {
		assert.Equal(t, "✓", StatusOk.Glyph())
		assert.Equal(t, "⚠", StatusWarn.Glyph())
		assert.Equal(t, "✗", StatusErr.Glyph())
	})

	t.Run("json round trip", func(t *testing.T) {
		data, err := json.Marshal(StatusWarn)
		require.NoError(t, err)
		assert.Equal(t, `"warn"`, string(data))

		var s Status
		require.NoError(t, json.Unmarshal([]byte(`"err"`), &s))
		assert.Equal(t, StatusErr, s)
		assert.Error(t, json.Unmarshal([]byte(`"fatal"`), &s))
	})

	t.Run("parse", func(t *testing.T) {
		s, ok := ParseStatus("warn")
		require.True(t, ok)
		assert.Equal(t, StatusWarn, s)

		s, ok = ParseStatus("OK")
		require.True(t, ok)
		assert.Equal(t, StatusOk, s)

		_, ok = ParseStatus("fatal")
		assert.False(t, ok)
	})
}

func TestFindingConstructors(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		f := Ok("LC01", "en.ts %s (%d keys)", "extraFields", 28)
		assert.Equal(t, StatusOk, f.Status)
		assert.Equal(t, "LC01", f.RuleID)
		assert.Equal(t, "en.ts extraFields (28 keys)", f.Message)
	})

	t.Run("err at location", func(t *testing.T) {
		f := ErrAt("PR01", "binance.rs", 42, "inserted key contains CJK text: %s", "不支援")
		assert.Equal(t, StatusErr, f.Status)
		assert.Equal(t, "binance.rs", f.File)
		assert.Equal(t, 42, f.Line)
	})
}

func TestFindingString(t *testing.T) {
	t.Run("plain message", func(t *testing.T) {
		f := Ok("BE03", "lib.rs: ensure_clean_db present")
		assert.Equal(t, "✓ lib.rs: ensure_clean_db present", f.String())
	})

	t.Run("with location", func(t *testing.T) {
		f := ErrAt("PR01", "kraken.rs", 7, "bad key")
		assert.Equal(t, "✗ kraken.rs:7 bad key", f.String())
	})

	t.Run("with context lines", func(t *testing.T) {
		f := Err("TH01", "src/App.css: 2 hardcoded color(s)")
		f.Context = []string{"L3: hardcoded hex: color: #fff;", "L9: hardcoded rgba: rgba(0,0,0,0.5)"}
		s := f.String()
		assert.Contains(t, s, "✗ src/App.css: 2 hardcoded color(s)")
		assert.Contains(t, s, "\n    L3: hardcoded hex")
		assert.Contains(t, s, "\n    L9: hardcoded rgba")
	})
}

func TestSinkAndReport(t *testing.T) {
	t.Run("empty sink", func(t *testing.T) {
		s := &Sink{}
		r := s.Report()
		assert.Equal(t, Report{}, r)
		assert.Equal(t, 0, r.ExitCode())
	})

	t.Run("counts fold from findings", func(t *testing.T) {
		s := &Sink{}
		s.Add(Ok("A", "one"), Ok("A", "two"))
		s.Add(Warn("B", "careful"))
		s.Add(Err("C", "broken"), Err("C", "still broken"))

		r := s.Report()
		assert.Equal(t, 2, r.Ok)
		assert.Equal(t, 1, r.Warn)
		assert.Equal(t, 2, r.Err)
		assert.Len(t, s.Findings(), 5)
	})

	t.Run("warnings never fail the run", func(t *testing.T) {
		s := &Sink{}
		s.Add(Ok("A", "fine"), Warn("B", "hm"))
		assert.Equal(t, 0, s.Report().ExitCode())
	})

	t.Run("single err fails the run", func(t *testing.T) {
		s := &Sink{}
		s.Add(Ok("A", "fine"), Err("B", "no"))
		assert.Equal(t, 1, s.Report().ExitCode())
	})

	t.Run("summary line", func(t *testing.T) {
		r := Report{Ok: 12, Warn: 1, Err: 3}
		assert.Equal(t, "✓ 12 passed  ⚠ 1 warnings  ✗ 3 errors", r.String())
	})
}
