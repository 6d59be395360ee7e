package util

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SaveJson writes data as JSON, creating parent directories as needed.
func SaveJson(path string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	bs, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0644)
}

// LoadJson reads JSON written by SaveJson back into out.
func LoadJson(path string, out interface{}) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(bs, out)
}
