package skill

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/skill-stack/skillreg/internal/errors"
)

// HashPrefix identifies the fingerprint algorithm in emitted hashes.
const HashPrefix = "sha256"

// ContentHash computes the fingerprint of a skill directory: sha256 over
// every file's slash-separated relative path followed by its raw bytes.
// Directories and the files within them are visited in sorted order at
// every level, so the result is independent of host filesystem iteration
// order. Any byte change, rename, addition, or removal changes the digest.
func ContentHash(dir string) (string, error) {
	h := sha256.New()
	if err := hashDir(h, dir, dir); err != nil {
		return "", err
	}
	return HashPrefix + ":" + hex.EncodeToString(h.Sum(nil)), nil
}

// hashDir feeds one directory level into the digest: files in sorted
// order first, then subdirectories in sorted order.
func hashDir(h hash.Hash, root, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.IOReadError(dir, err)
	}

	var files, subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	sort.Strings(subdirs)

	for _, name := range files {
		path := filepath.Join(dir, name)
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.IOReadError(path, err)
		}
		h.Write([]byte(filepath.ToSlash(rel)))

		if err := hashFile(h, path); err != nil {
			return err
		}
	}

	for _, name := range subdirs {
		if err := hashDir(h, root, filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	return nil
}

func hashFile(h hash.Hash, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.IOReadError(path, err)
	}
	defer file.Close()

	if _, err := io.Copy(h, file); err != nil {
		return errors.IOReadError(path, err)
	}
	return nil
}
