package skill

// DeclarationName is the default declaration filename in a skill directory.
const DeclarationName = "SKILL.md"

// Frontmatter is the validated metadata block of a skill declaration file.
// It is the typed projection of the YAML frontmatter; untyped maps never
// leave the parser.
type Frontmatter struct {
	// Name is the unique identifier for this skill (required).
	Name string

	// Description is a human-readable description of the skill (required).
	Description string

	// Version is the declared skill version (required).
	Version string

	// Author is the skill author (required).
	Author string

	// RequiresEnv lists environment variable names the skill payload needs
	// at run time. Never nil.
	RequiresEnv []string

	// HasExecution records whether an "execution" key was present. Its
	// contents are not inspected.
	HasExecution bool

	// Body is the free-form content after the closing fence.
	Body string
}
