// Package skill parses and fingerprints skill package directories.
package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skill-stack/skillreg/internal/errors"
)

// RequiredFields are the frontmatter keys every skill must declare,
// checked in this order.
var RequiredFields = []string{"name", "description", "version", "author"}

// LoadFromDir loads and validates the declaration file of a skill directory
// using the default declaration filename.
func LoadFromDir(dir string) (*Frontmatter, error) {
	return LoadFile(dir, DeclarationName)
}

// LoadFile loads and validates a skill's declaration file. The skill's
// identity in errors is the directory base name.
func LoadFile(dir, filename string) (*Frontmatter, error) {
	id := filepath.Base(dir)

	path := filepath.Join(dir, filename)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.SkillMissingDeclaration(id, filename)
		}
		return nil, errors.IOReadError(path, err)
	}

	return Parse(content, id)
}

// Parse validates a declaration file's content. Validation short-circuits
// at the first failure: fence prefix, fence split, YAML decode, mapping
// check, then each required field in order.
func Parse(content []byte, id string) (*Frontmatter, error) {
	text := string(content)

	if !strings.HasPrefix(text, "---") {
		return nil, errors.SkillMissingFrontmatter(id)
	}

	parts := strings.SplitN(text, "---", 3)
	if len(parts) < 3 {
		return nil, errors.SkillMalformedFrontmatter(id)
	}

	var raw any
	if err := yaml.Unmarshal([]byte(parts[1]), &raw); err != nil {
		return nil, errors.SkillParseError(id, err)
	}

	mapping, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.SkillNotAMapping(id)
	}

	for _, field := range RequiredFields {
		if _, ok := mapping[field]; !ok {
			return nil, errors.SkillMissingField(id, field)
		}
	}

	_, hasExecution := mapping["execution"]

	fm := &Frontmatter{
		Name:         scalarString(mapping["name"]),
		Description:  scalarString(mapping["description"]),
		Version:      scalarString(mapping["version"]),
		Author:       scalarString(mapping["author"]),
		RequiresEnv:  stringSlice(mapping["requires_env"]),
		HasExecution: hasExecution,
		Body:         strings.TrimPrefix(parts[2], "\n"),
	}

	return fm, nil
}

// scalarString renders a frontmatter scalar as a string. YAML scalars like
// `version: 1.0` decode as numbers; they are kept verbatim rather than
// rejected.
func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}

// stringSlice renders a frontmatter sequence as a string slice. Returns an
// empty (non-nil) slice when the key is absent or not a sequence.
func stringSlice(v any) []string {
	result := []string{}
	seq, ok := v.([]any)
	if !ok {
		return result
	}
	for _, item := range seq {
		result = append(result, scalarString(item))
	}
	return result
}
