package client

import (
	"fmt"
	"os"
	"strings"
)

// saveAPIKey writes the service API key to the credentials file, readable
// only by the owner.
func saveAPIKey(path, key string) error {
	if err := os.WriteFile(path, []byte(key+"\n"), 0600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	return nil
}

// loadAPIKey reads the stored API key. A missing file means the client is
// not configured yet; that is not an error.
func loadAPIKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read credentials file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
