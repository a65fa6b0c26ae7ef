package registry

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func sampleRegistry() *Registry {
	reg := New()
	reg.Skills = append(reg.Skills, Record{
		ID:                   "bar",
		Description:          "Bar skill",
		Version:              "1.0.0",
		Author:               "team",
		ContentHash:          "sha256:" + strings.Repeat("ab", 32),
		RequiresEnv:          []string{},
		HasExecutionManifest: false,
	}, Record{
		ID:                   "foo",
		Description:          "Foo skill",
		Version:              "0.2.0",
		Author:               "team",
		ContentHash:          "sha256:" + strings.Repeat("cd", 32),
		RequiresEnv:          []string{"FOO_TOKEN"},
		HasExecutionManifest: true,
	})
	return reg
}

func TestWrite(t *testing.T) {
	t.Run("indentation and trailing newline", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "registry.json")
		if err := Write(sampleRegistry(), path); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		text := string(data)

		if !strings.HasSuffix(text, "\n") {
			t.Error("output should end with a newline")
		}
		if strings.HasSuffix(text, "\n\n") {
			t.Error("output should end with a single newline")
		}
		if !strings.Contains(text, "\n  \"skills\": [") {
			t.Errorf("output should use two-space indentation:\n%s", text)
		}
	})

	t.Run("empty registry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "registry.json")
		if err := Write(New(), path); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		want := "{\n  \"skills\": []\n}\n"
		if string(data) != want {
			t.Errorf("output = %q, want %q", data, want)
		}
	})

	t.Run("overwrites previous content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "registry.json")
		if err := os.WriteFile(path, []byte("stale garbage that is longer than the new content"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := Write(New(), path); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		reg, err := Read(path)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(reg.Skills) != 0 {
			t.Errorf("Skills = %v, want empty", reg.Skills)
		}
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		if err := Write(sampleRegistry(), filepath.Join(dir, "registry.json")); err != nil {
			t.Fatal(err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 || entries[0].Name() != "registry.json" {
			t.Errorf("directory contains %v, want only registry.json", entries)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	original := sampleRegistry()

	if err := Write(original, path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	reread, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if !reflect.DeepEqual(original, reread) {
		t.Errorf("round trip mismatch:\n got %#v\nwant %#v", reread, original)
	}
}

func TestFieldOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	if err := Write(sampleRegistry(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	fields := []string{"\"id\"", "\"description\"", "\"version\"", "\"author\"",
		"\"contentHash\"", "\"requiresEnv\"", "\"hasExecutionManifest\""}
	last := -1
	for _, f := range fields {
		idx := strings.Index(text, f)
		if idx < 0 {
			t.Fatalf("field %s missing from output", f)
		}
		if idx < last {
			t.Errorf("field %s out of order", f)
		}
		last = idx
	}
}
