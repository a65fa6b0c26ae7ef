package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skill-stack/skillreg/internal/registry"
	"github.com/skill-stack/skillreg/internal/testutil"
)

// setupWorkDir points the command globals at a fresh project directory and
// restores them when the test ends.
func setupWorkDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("HOME", t.TempDir()) // ignore any user-level config

	oldWorkDir := workDir
	t.Cleanup(func() {
		workDir = oldWorkDir
	})
	workDir = tmpDir
	return tmpDir
}

func TestGenerate(t *testing.T) {
	t.Run("valid skills produce a registry", func(t *testing.T) {
		dir := setupWorkDir(t)
		root := filepath.Join(dir, "skills")
		testutil.WriteValidSkill(t, root, "foo")
		testutil.WriteValidSkill(t, root, "bar")

		var buf bytes.Buffer
		generateCmd.SetOut(&buf)
		generateCmd.SetErr(&buf)

		if err := runGenerate(generateCmd, nil); err != nil {
			t.Fatalf("runGenerate failed: %v", err)
		}

		reg, err := registry.Read(filepath.Join(dir, "registry.json"))
		if err != nil {
			t.Fatalf("reading emitted registry: %v", err)
		}
		if len(reg.Skills) != 2 {
			t.Fatalf("len(Skills) = %d, want 2", len(reg.Skills))
		}
		if reg.Skills[0].ID != "bar" || reg.Skills[1].ID != "foo" {
			t.Errorf("order = [%s, %s], want [bar, foo]", reg.Skills[0].ID, reg.Skills[1].ID)
		}
		if !strings.Contains(buf.String(), "2 skill(s)") {
			t.Errorf("summary missing count, got: %q", buf.String())
		}
	})

	t.Run("one invalid skill blocks emission", func(t *testing.T) {
		dir := setupWorkDir(t)
		root := filepath.Join(dir, "skills")
		testutil.WriteValidSkill(t, root, "good")
		testutil.WriteSkill(t, root, "bad", "missing frontmatter\n")

		var buf bytes.Buffer
		generateCmd.SetOut(&buf)
		generateCmd.SetErr(&buf)

		err := runGenerate(generateCmd, nil)
		if err == nil {
			t.Fatal("runGenerate should fail with an invalid skill")
		}

		if _, statErr := os.Stat(filepath.Join(dir, "registry.json")); !os.IsNotExist(statErr) {
			t.Error("no registry should be written when any skill is invalid")
		}
	})

	t.Run("zero skills emits empty registry", func(t *testing.T) {
		dir := setupWorkDir(t)
		if err := os.MkdirAll(filepath.Join(dir, "skills"), 0755); err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		generateCmd.SetOut(&buf)
		generateCmd.SetErr(&buf)

		if err := runGenerate(generateCmd, nil); err != nil {
			t.Fatalf("runGenerate failed: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(dir, "registry.json"))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "{\n  \"skills\": []\n}\n" {
			t.Errorf("registry = %q", data)
		}
	})

	t.Run("missing root fails", func(t *testing.T) {
		setupWorkDir(t) // skills/ never created

		var buf bytes.Buffer
		generateCmd.SetOut(&buf)
		generateCmd.SetErr(&buf)

		if err := runGenerate(generateCmd, nil); err == nil {
			t.Fatal("runGenerate should fail when the skills root is missing")
		}
	})

	t.Run("explicit root and output", func(t *testing.T) {
		dir := setupWorkDir(t)
		root := filepath.Join(dir, "elsewhere")
		testutil.WriteValidSkill(t, root, "solo")

		oldOutput := generateOutput
		t.Cleanup(func() {
			generateOutput = oldOutput
		})
		generateOutput = filepath.Join(dir, "out", "reg.json")
		if err := os.MkdirAll(filepath.Join(dir, "out"), 0755); err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		generateCmd.SetOut(&buf)
		generateCmd.SetErr(&buf)

		if err := runGenerate(generateCmd, []string{root}); err != nil {
			t.Fatalf("runGenerate failed: %v", err)
		}

		reg, err := registry.Read(generateOutput)
		if err != nil {
			t.Fatal(err)
		}
		if len(reg.Skills) != 1 || reg.Skills[0].ID != "solo" {
			t.Errorf("Skills = %v", reg.Skills)
		}
	})
}
