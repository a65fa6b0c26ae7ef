// Package errors provides structured error types for skillreg.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes for skillreg operations.
const (
	// Scan errors
	CodeScanRootMissing = "SCAN_001" // Skills root missing or not a directory

	// Skill validation errors
	CodeSkillMissingDeclaration   = "SKILL_001" // No SKILL.md in the skill directory
	CodeSkillMissingFrontmatter   = "SKILL_002" // Declaration file does not start with a fence
	CodeSkillMalformedFrontmatter = "SKILL_003" // Frontmatter fence never closed
	CodeSkillParseError           = "SKILL_004" // YAML syntax error in frontmatter
	CodeSkillNotAMapping          = "SKILL_005" // Frontmatter is not a mapping
	CodeSkillMissingField         = "SKILL_006" // Missing required frontmatter field

	// Registry errors
	CodeRegistryDuplicateID = "REG_001" // Two skills declare the same name

	// IO errors
	CodeIOReadError  = "IO_001" // Read error
	CodeIOWriteError = "IO_002" // Write error
)

// RegError is the structured error type for skillreg operations.
type RegError struct {
	Code    string         `json:"code"`              // Error code (e.g., "SKILL_006")
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Context (skill, field, path, etc.)
	Cause   error          `json:"-"`                 // Wrapped error (not serialized)
}

// Error implements the error interface.
func (e *RegError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *RegError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *RegError) WithDetail(key string, value any) *RegError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause wraps an underlying error.
func (e *RegError) WithCause(err error) *RegError {
	e.Cause = err
	return e
}

// MarshalJSON implements json.Marshaler with cause error message.
func (e *RegError) MarshalJSON() ([]byte, error) {
	type alias RegError
	aux := struct {
		*alias
		CauseMsg string `json:"cause,omitempty"`
	}{
		alias: (*alias)(e),
	}
	if e.Cause != nil {
		aux.CauseMsg = e.Cause.Error()
	}
	return json.Marshal(aux)
}

// New creates a new RegError.
func New(code, message string) *RegError {
	return &RegError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new RegError with formatted message.
func Newf(code, format string, args ...any) *RegError {
	return &RegError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with a RegError.
func Wrap(code, message string, err error) *RegError {
	return &RegError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted RegError.
func Wrapf(code string, err error, format string, args ...any) *RegError {
	return &RegError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// --- Scan Errors ---

// ScanRootMissing creates the fatal error for a missing skills root.
// This is the only error that aborts a run outright.
func ScanRootMissing(path string) *RegError {
	return Newf(CodeScanRootMissing, "skills directory not found: %s", path).
		WithDetail("path", path)
}

// --- Skill Errors ---

// SkillMissingDeclaration creates an error for a skill with no declaration file.
func SkillMissingDeclaration(skill, filename string) *RegError {
	return Newf(CodeSkillMissingDeclaration, "no %s found in skill %s", filename, skill).
		WithDetail("skill", skill).
		WithDetail("file", filename)
}

// SkillMissingFrontmatter creates an error for a declaration file without a fence.
func SkillMissingFrontmatter(skill string) *RegError {
	return Newf(CodeSkillMissingFrontmatter, "skill %s declaration missing frontmatter", skill).
		WithDetail("skill", skill)
}

// SkillMalformedFrontmatter creates an error for an unterminated frontmatter fence.
func SkillMalformedFrontmatter(skill string) *RegError {
	return Newf(CodeSkillMalformedFrontmatter, "skill %s has invalid frontmatter format", skill).
		WithDetail("skill", skill)
}

// SkillParseError creates an error for frontmatter that fails to parse as YAML.
func SkillParseError(skill string, err error) *RegError {
	return Wrapf(CodeSkillParseError, err, "skill %s frontmatter parse error", skill).
		WithDetail("skill", skill)
}

// SkillNotAMapping creates an error for frontmatter that is not a mapping.
func SkillNotAMapping(skill string) *RegError {
	return Newf(CodeSkillNotAMapping, "skill %s frontmatter is not a mapping", skill).
		WithDetail("skill", skill)
}

// SkillMissingField creates an error for a missing required frontmatter field.
func SkillMissingField(skill, field string) *RegError {
	return Newf(CodeSkillMissingField, "skill %s missing required field %q", skill, field).
		WithDetail("skill", skill).
		WithDetail("field", field)
}

// --- Registry Errors ---

// RegistryDuplicateID creates an error for two skills declaring the same id.
func RegistryDuplicateID(id, firstDir, dupDir string) *RegError {
	return Newf(CodeRegistryDuplicateID, "duplicate skill id %q (declared in %s and %s)", id, firstDir, dupDir).
		WithDetail("id", id).
		WithDetail("first_dir", firstDir).
		WithDetail("duplicate_dir", dupDir)
}

// --- IO Errors ---

// IOReadError creates an error for read failures.
func IOReadError(path string, err error) *RegError {
	return Wrap(CodeIOReadError, "failed to read file", err).
		WithDetail("path", path)
}

// IOWriteError creates an error for write failures.
func IOWriteError(path string, err error) *RegError {
	return Wrap(CodeIOWriteError, "failed to write file", err).
		WithDetail("path", path)
}

// HasCode checks if an error is a RegError with the given code.
// It handles wrapped errors by unwrapping to find a RegError.
func HasCode(err error, code string) bool {
	var rerr *RegError
	if errors.As(err, &rerr) {
		return rerr.Code == code
	}
	return false
}

// Code returns the error code if err is a RegError, empty string otherwise.
// It handles wrapped errors by unwrapping to find a RegError.
func Code(err error) string {
	var rerr *RegError
	if errors.As(err, &rerr) {
		return rerr.Code
	}
	return ""
}
