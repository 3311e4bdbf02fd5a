package auth

import (
	"errors"
	"os"
	"strings"

	"github.com/malq-cli/malq/filesystem"
)

// ResolveClientID prefers the configured value and falls back to the
// contents of path. Both empty yields "".
func ResolveClientID(configured, path string) (string, error) {
	if id := strings.TrimSpace(configured); id != "" {
		return id, nil
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}
