// Package storage keeps hooked's state files below the git directory.
//
// Files are written atomically (temp file plus rename) and writers that
// read-modify-write a file serialize through a [FileLock].
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DirName is the directory below the git directory holding state files.
const DirName = "hooked"

// Dir returns <gitDir>/hooked, creating it if needed.
func Dir(gitDir string) (string, error) {
	dir := filepath.Join(gitDir, DirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// SaveJSON atomically writes data as indented JSON to path.
func SaveJSON(path string, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(jsonData); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// LoadJSON reads JSON from path into dest.
// Returns an error wrapping os.ErrNotExist if the file doesn't exist.
func LoadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
