package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skill-stack/skillreg/internal/scan"
	"github.com/skill-stack/skillreg/internal/skill"
	"github.com/skill-stack/skillreg/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate skill declarations without writing a registry",
	Long: `Validate skill package declarations and report every failure.

The path may be a skills root (every subdirectory is checked) or a single
skill directory (detected by the presence of a declaration file). When the
path is omitted, the configured skills root is used.

Checks per package:
- declaration file exists
- frontmatter fence present and closed
- frontmatter parses as a YAML mapping
- name, description, version, author declared

Examples:
  skillreg validate
  skillreg validate ./skills
  skillreg validate ./skills/translate-text --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output findings as JSON")
	rootCmd.AddCommand(validateCmd)
}

// finding is one validation outcome for --json output.
type finding struct {
	Skill string `json:"skill"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, baseDir, err := loadConfig()
	if err != nil {
		return err
	}

	path := resolveRoot(cfg, baseDir, args)
	declName := cfg.Registry.DeclarationFile

	// A directory containing a declaration file is a single skill; anything
	// else is treated as a skills root.
	var dirs []string
	var root string
	if _, err := os.Stat(filepath.Join(path, declName)); err == nil {
		root = filepath.Dir(path)
		dirs = []string{filepath.Base(path)}
	} else {
		root = path
		dirs, err = scan.SkillDirs(root)
		if err != nil {
			return err
		}
	}

	var findings []finding
	failures := 0
	for _, name := range dirs {
		_, err := skill.LoadFile(filepath.Join(root, name), declName)
		f := finding{Skill: name, Valid: err == nil}
		if err != nil {
			f.Error = err.Error()
			failures++
		}
		findings = append(findings, f)
	}

	if validateJSON {
		data, err := json.MarshalIndent(findings, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		for _, f := range findings {
			if f.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Render(ui.Success, "ok"), f.Skill)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n", ui.Render(ui.Failure, "FAIL"), f.Skill, f.Error)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d skill(s) failed validation", failures)
	}
	return nil
}
