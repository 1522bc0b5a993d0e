package rules

import (
	"regexp"
	"testing"

	"github.com/stockenboard/shipcheck/pkg/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaCheck() NumberMatchCheck {
	return NumberMatchCheck{
		RuleID:      "BE02",
		File:        "src-tauri/src/lib.rs",
		First:       regexp.MustCompile(`SCHEMA_VER:\s*&str\s*=\s*"(\d+)"`),
		FirstLabel:  "SCHEMA_VER",
		Second:      regexp.MustCompile(`version:\s*(\d+)`),
		SecondLabel: "migration version",
	}
}

func TestNumberMatchCheck(t *testing.T) {
	t.Run("matching versions", func(t *testing.T) {
		ctx := newTestContext(t, map[string]string{
			"src-tauri/src/lib.rs": "pub const SCHEMA_VER: &str = \"7\";\nMigration { version: 7 }\n",
		})
		findings := schemaCheck().Check(ctx)
		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusOk, findings[0].Status)
		assert.Equal(t, "lib.rs: SCHEMA_VER=7 == migration version=7", findings[0].Message)
	})

	t.Run("mismatch reports both values", func(t *testing.T) {
		ctx := newTestContext(t, map[string]string{
			"src-tauri/src/lib.rs": "pub const SCHEMA_VER: &str = \"8\";\nMigration { version: 7 }\n",
		})
		findings := schemaCheck().Check(ctx)
		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusErr, findings[0].Status)
		assert.Equal(t, "lib.rs: SCHEMA_VER=8 != migration version=7", findings[0].Message)
	})

	t.Run("unparseable file is an err, not a skip", func(t *testing.T) {
		ctx := newTestContext(t, map[string]string{
			"src-tauri/src/lib.rs": "fn main() {}\n",
		})
		findings := schemaCheck().Check(ctx)
		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusErr, findings[0].Status)
		assert.Contains(t, findings[0].Message, "cannot parse SCHEMA_VER or migration version")
	})

	t.Run("missing artifact", func(t *testing.T) {
		ctx := newTestContext(t, nil)
		findings := schemaCheck().Check(ctx)
		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusErr, findings[0].Status)
	})

	t.Run("idempotent across runs", func(t *testing.T) {
		ctx := newTestContext(t, map[string]string{
			"src-tauri/src/lib.rs": "pub const SCHEMA_VER: &str = \"7\";\nMigration { version: 7 }\n",
		})
		first := schemaCheck().Check(ctx)
		second := schemaCheck().Check(ctx)
		assert.Equal(t, first, second)
	})
}
