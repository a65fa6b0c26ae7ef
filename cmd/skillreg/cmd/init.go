package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skill-stack/skillreg/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new skill package",
	Long: `Create a new skill package directory with a valid SKILL.md.

The package is created under the configured skills root (or --root) as
<skills-root>/<name>/ with a declaration you can fill in and a scripts/
directory for the payload.

Examples:
  skillreg init summarize-text
  skillreg init translate-text --author "registry-team"`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

var (
	initAuthor string
	initRoot   string
)

func init() {
	initCmd.Flags().StringVar(&initAuthor, "author", "unknown", "author recorded in the declaration")
	initCmd.Flags().StringVar(&initRoot, "root", "", "skills root (default: skills_dir from config)")
	rootCmd.AddCommand(initCmd)
}

const declarationTemplate = `---
name: %s
description: |
  Describe what this skill does.
version: 0.1.0
author: %s
---

# %s

Document the skill here. The body is ignored by the registry.
`

func runInit(cmd *cobra.Command, args []string) error {
	cfg, baseDir, err := loadConfig()
	if err != nil {
		return err
	}

	name := args[0]
	root := initRoot
	if root == "" {
		root = cfg.SkillsDir(baseDir)
	}

	dir := filepath.Join(root, name)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("skill %s already exists at %s", name, dir)
	}

	if err := os.MkdirAll(filepath.Join(dir, "scripts"), 0755); err != nil {
		return fmt.Errorf("creating skill directory: %w", err)
	}

	declaration := fmt.Sprintf(declarationTemplate, name, initAuthor, name)
	declPath := filepath.Join(dir, cfg.Registry.DeclarationFile)
	if err := os.WriteFile(declPath, []byte(declaration), 0644); err != nil {
		return fmt.Errorf("writing declaration: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.Render(ui.Success, "Created "+dir))
	fmt.Fprintln(cmd.OutOrStdout(), ui.Render(ui.Muted, "  edit "+declPath+" and add payload files under scripts/"))
	return nil
}
