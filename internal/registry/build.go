package registry

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/skill-stack/skillreg/internal/errors"
	"github.com/skill-stack/skillreg/internal/scan"
	"github.com/skill-stack/skillreg/internal/skill"
)

// Builder drives one scan -> parse -> hash run over a skills root.
// Per-package failures are logged and counted; only a missing root aborts
// the run.
type Builder struct {
	// Root is the skills directory to scan.
	Root string

	// DeclarationFile is the manifest filename expected in each package.
	DeclarationFile string

	// AllowDuplicateIDs disables the duplicate declared-name check.
	AllowDuplicateIDs bool

	// Logger receives per-skill progress and failure diagnostics.
	Logger *slog.Logger
}

// NewBuilder creates a Builder with default settings.
func NewBuilder(root string, logger *slog.Logger) *Builder {
	return &Builder{
		Root:            root,
		DeclarationFile: skill.DeclarationName,
		Logger:          logger,
	}
}

// Build processes every package directory under Root in sorted order and
// returns the accumulated registry together with the number of packages
// that failed validation. The registry contains only valid packages; when
// the error count is nonzero callers must not emit it.
//
// The returned error is non-nil only for the fatal missing-root condition.
func (b *Builder) Build() (*Registry, int, error) {
	dirs, err := scan.SkillDirs(b.Root)
	if err != nil {
		return nil, 0, err
	}

	reg := New()
	errCount := 0
	seen := make(map[string]string) // declared id -> directory name

	for _, name := range dirs {
		dir := filepath.Join(b.Root, name)
		b.Logger.Info("processing skill", "skill", name)

		fm, err := skill.LoadFile(dir, b.DeclarationFile)
		if err != nil {
			b.Logger.Error("skill validation failed", "skill", name, "error", err)
			errCount++
			continue
		}

		// Hashing only runs for packages that validated.
		contentHash, err := skill.ContentHash(dir)
		if err != nil {
			b.Logger.Error("skill hashing failed", "skill", name, "error", err)
			errCount++
			continue
		}

		if !b.AllowDuplicateIDs {
			if firstDir, ok := seen[fm.Name]; ok {
				b.Logger.Error("skill validation failed", "skill", name,
					"error", errors.RegistryDuplicateID(fm.Name, firstDir, name))
				errCount++
				continue
			}
			seen[fm.Name] = name
		}

		reg.Skills = append(reg.Skills, Record{
			ID:                   fm.Name,
			Description:          strings.TrimSpace(fm.Description),
			Version:              fm.Version,
			Author:               fm.Author,
			ContentHash:          contentHash,
			RequiresEnv:          fm.RequiresEnv,
			HasExecutionManifest: fm.HasExecution,
		})
	}

	return reg, errCount, nil
}
