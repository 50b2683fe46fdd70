// Package pathutil produces the canonical directory strings stored with
// each entry. Exact-match and prefix-match queries both depend on the
// same entry never normalizing to two different strings.
package pathutil

import (
	"fmt"
	"path/filepath"
)

// Normalize maps a user-supplied path to one canonical absolute string:
// no trailing separator, no "." or ".." segments, symlinks resolved when
// the path exists on disk. When it does not exist (or cannot be read)
// the lexically cleaned absolute path is used instead — normalization is
// total so that entries whose backing directory vanished can still be
// matched and deleted.
func Normalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
