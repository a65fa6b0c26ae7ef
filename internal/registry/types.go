// Package registry builds and emits the consolidated skill registry.
//
// The registry is the single aggregated manifest for a skills directory:
// one Record per validated skill package, ordered by package directory
// name, written to registry.json only when every package validated.
package registry

// Record is the registry-ready projection of one validated skill package.
// It is immutable once built.
type Record struct {
	// ID is the skill's declared name.
	ID string `json:"id"`

	// Description is the declared description, whitespace-trimmed.
	Description string `json:"description"`

	// Version is the declared skill version.
	Version string `json:"version"`

	// Author is the declared author.
	Author string `json:"author"`

	// ContentHash is the fingerprint of the package's file tree, in
	// "sha256:<hex>" form.
	ContentHash string `json:"contentHash"`

	// RequiresEnv lists environment variables the payload needs. Always
	// serialized as an array, never null.
	RequiresEnv []string `json:"requiresEnv"`

	// HasExecutionManifest records whether the declaration carried an
	// execution block.
	HasExecutionManifest bool `json:"hasExecutionManifest"`
}

// Registry is the emitted registry.json document.
type Registry struct {
	Skills []Record `json:"skills"`
}

// New returns an empty registry whose skills array serializes as [].
func New() *Registry {
	return &Registry{Skills: []Record{}}
}
