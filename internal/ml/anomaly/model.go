package anomaly

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the trained forest as JSON, creating parent directories as
// needed.
func (f *Forest) Save(path string) error {
	if len(f.Trees) == 0 {
		return fmt.Errorf("refusing to save an untrained model")
	}
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create model dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}

// Load reads a forest saved by Save.
func Load(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal model: %w", err)
	}
	if len(f.Trees) == 0 || f.Features == 0 {
		return nil, fmt.Errorf("model file %s holds no trained forest", path)
	}
	return &f, nil
}
