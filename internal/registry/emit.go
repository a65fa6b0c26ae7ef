package registry

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/skill-stack/skillreg/internal/errors"
)

// Write serializes the registry to path as indented JSON with a trailing
// newline. The file is written to a temp file in the same directory and
// renamed into place, so a crash mid-write never leaves a truncated
// registry behind.
func Write(reg *Registry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return errors.IOWriteError(path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".registry-*.json")
	if err != nil {
		return errors.IOWriteError(path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.IOWriteError(path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.IOWriteError(path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.IOWriteError(path, err)
	}
	return nil
}

// Read loads a previously emitted registry file.
func Read(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IOReadError(path, err)
	}

	reg := New()
	if err := json.Unmarshal(data, reg); err != nil {
		return nil, errors.Wrap(errors.CodeIOReadError, "parsing registry", err).
			WithDetail("path", path)
	}
	return reg, nil
}
