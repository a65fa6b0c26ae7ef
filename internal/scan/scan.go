// Package scan enumerates candidate skill package directories.
package scan

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/skill-stack/skillreg/internal/errors"
)

// SkillDirs returns the names of the immediate subdirectories of root,
// sorted lexicographically. Non-directory entries are skipped. The scan
// order is part of the registry contract, not an artifact of the host
// filesystem.
//
// A missing root (or a root that is not a directory) is the one fatal
// condition in the pipeline and returns SCAN_001.
func SkillDirs(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ScanRootMissing(root)
		}
		return nil, errors.ScanRootMissing(root).WithCause(err)
	}
	if !info.IsDir() {
		return nil, errors.ScanRootMissing(root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.IOReadError(root, err)
	}

	var names []string
	for _, entry := range entries {
		// Stat follows symlinks, so a symlink to a directory still counts
		// as a skill directory.
		fi, err := os.Stat(filepath.Join(root, entry.Name()))
		if err != nil || !fi.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}
