// Package testutil provides test fixtures and helpers for skillreg.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// SkillMD returns a valid declaration file for a skill named name.
func SkillMD(name string) string {
	return fmt.Sprintf(`---
name: %s
description: Test skill %s
version: 1.0.0
author: test-suite
---

# %s

Test skill body.
`, name, name, name)
}

// WriteSkill creates root/<name>/ with the given declaration content and
// returns the skill directory path.
func WriteSkill(t *testing.T, root, name, declaration string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	WriteFile(t, filepath.Join(dir, "SKILL.md"), declaration)
	return dir
}

// WriteValidSkill creates root/<name>/ with a valid declaration and one
// payload script, and returns the skill directory path.
func WriteValidSkill(t *testing.T, root, name string) string {
	t.Helper()
	dir := WriteSkill(t, root, name, SkillMD(name))
	WriteFile(t, filepath.Join(dir, "scripts", "run.py"), "print('ok')\n")
	return dir
}
