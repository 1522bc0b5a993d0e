package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrArtifactMissing signals that a required file is absent or unreadable.
// Rules catch it and downgrade it to a single err finding; it never
// propagates to the runner.
var ErrArtifactMissing = errors.New("artifact missing")

// DefaultToolTimeout bounds external tool invocations when the config does
// not override it.
const DefaultToolTimeout = 5 * time.Minute

// Context gives rules access to the project under check. All paths handed to
// its methods are relative to Root. Reads are synchronous and uncached; the
// artifacts are small text files and each rule owns its own reads.
type Context struct {
	// Root is the project root directory all artifact paths resolve against.
	Root string

	// ToolTimeout bounds each external tool invocation.
	ToolTimeout time.Duration
}

// NewContext creates a context rooted at dir with the default tool timeout.
func NewContext(dir string) *Context {
	return &Context{Root: dir, ToolTimeout: DefaultToolTimeout}
}

// ReadFile loads an artifact as UTF-8 text. A missing file returns an error
// wrapping ErrArtifactMissing with the path; other read failures (permission
// denied, path is a directory) carry the underlying error so findings report
// the real cause.
func (c *Context) ReadFile(rel string) (string, error) {
	data, err := os.ReadFile(filepath.Join(c.Root, rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrArtifactMissing, rel)
		}
		return "", fmt.Errorf("read %s: %w", rel, err)
	}
	return string(data), nil
}

// Glob returns the sorted project-relative paths matching pattern, which is
// itself project-relative (e.g. "src-tauri/src/providers/*.rs").
func (c *Context) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(c.Root, pattern))
	if err != nil {
		return nil, err
	}
	rels := make([]string, 0, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(c.Root, m)
		if err != nil {
			continue
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	sort.Strings(rels)
	return rels, nil
}

// WalkExt returns the sorted project-relative paths of all files under dir
// (recursively) whose name ends with ext.
func (c *Context) WalkExt(dir, ext string) ([]string, error) {
	root := filepath.Join(c.Root, dir)
	var rels []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		rel, err := filepath.Rel(c.Root, path)
		if err != nil {
			return err
		}
		rels = append(rels, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrArtifactMissing, dir)
	}
	sort.Strings(rels)
	return rels, nil
}

// SplitLines splits artifact text for line-oriented scanning. Content is
// split on \n only; it is not otherwise altered, since rules match literal
// substrings against it.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
