package preview

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// Change summarizes how next differs from prev as an RFC 7386 merge patch.
// Both must be JSON objects. Returns "" when they are equal.
func Change(prev, next []byte) (string, error) {
	patch, err := jsonpatch.CreateMergePatch(prev, next)
	if err != nil {
		return "", fmt.Errorf("failed to diff previews: %w", err)
	}
	if bytes.Equal(bytes.TrimSpace(patch), []byte("{}")) {
		return "", nil
	}
	return string(patch), nil
}
