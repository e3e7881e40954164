// Package paths provides path resolution and containment checks for
// materialization targets. Every catalog path goes through SafeJoin before
// anything touches the filesystem.
package paths

import (
	"path/filepath"
	"strings"

	"github.com/scafflab/scaffgen/pkg/errors"
)

// ValidateRelative performs basic validation on a catalog-relative path.
func ValidateRelative(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Common filesystem limit
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// Normalize cleans a forward-slash relative path without touching the
// filesystem. Two catalog entries collide when their normalized forms match.
func Normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(filepath.FromSlash(path)))
}

// SafeJoin joins root and a forward-slash relative path and ensures the
// result stays inside root. Absolute paths and paths whose cleaned form
// climbs out of root are rejected with ErrPathEscape.
func SafeJoin(root, rel string) (string, error) {
	if err := ValidateRelative(rel); err != nil {
		return "", err
	}

	native := filepath.FromSlash(rel)
	if filepath.IsAbs(native) {
		return "", errors.Newf(errors.ErrPathEscape, "absolute paths are not allowed: %s", rel)
	}

	cleanRoot := filepath.Clean(root)
	joined := filepath.Clean(filepath.Join(cleanRoot, native))

	relBack, err := filepath.Rel(cleanRoot, joined)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathEscape, "cannot resolve %s under %s", rel, root)
	}
	relSlash := filepath.ToSlash(relBack)
	if relSlash == ".." || strings.HasPrefix(relSlash, "../") {
		return "", errors.Newf(errors.ErrPathEscape, "path escapes base directory: %s", rel)
	}

	return joined, nil
}
