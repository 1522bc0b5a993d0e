package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stockenboard/shipcheck/pkg/check"
	"github.com/stretchr/testify/require"
)

// newTestContext writes the given project-relative files into a temp root
// and returns a context over it.
func newTestContext(t *testing.T, files map[string]string) *check.Context {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return check.NewContext(root)
}

// statuses collapses findings to their status sequence for compact asserts.
func statuses(findings []check.Finding) []check.Status {
	out := make([]check.Status, len(findings))
	for i, f := range findings {
		out[i] = f.Status
	}
	return out
}
