package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skill-stack/skillreg/internal/registry"
	"github.com/skill-stack/skillreg/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:     "generate [skills-root]",
	Aliases: []string{"gen"},
	Short:   "Generate registry.json from a skills directory",
	Long: `Scan a skills directory, validate every package, and write the
consolidated registry.

Each immediate subdirectory of the skills root is one package. A package is
valid when its SKILL.md frontmatter parses as a mapping and declares name,
description, version, and author. Valid packages are fingerprinted
(sha256 over relative paths and file bytes in sorted order) and collected
into registry.json, ordered by directory name.

If any package fails validation the run exits nonzero and nothing is
written.

Examples:
  skillreg generate                    # Use skills_dir from config
  skillreg generate ./registry/skills  # Explicit root
  skillreg generate -o out/registry.json ./skills`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var generateOutput string

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "registry output path (default: output_file from config)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, baseDir, err := loadConfig()
	if err != nil {
		return err
	}

	logger, cleanup, err := newLogger(cfg, baseDir)
	if err != nil {
		return err
	}
	defer cleanup()

	root := resolveRoot(cfg, baseDir, args)
	outPath := generateOutput
	if outPath == "" {
		outPath = cfg.OutputFile(baseDir)
	}

	builder := registry.NewBuilder(root, logger)
	builder.DeclarationFile = cfg.Registry.DeclarationFile
	builder.AllowDuplicateIDs = cfg.Registry.AllowDuplicateIDs

	reg, errCount, err := builder.Build()
	if err != nil {
		return err
	}

	if errCount > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Render(ui.Failure,
			fmt.Sprintf("%d skill(s) failed validation", errCount)))
		return fmt.Errorf("%d skill(s) failed validation", errCount)
	}

	if err := registry.Write(reg, outPath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.Render(ui.Success,
		fmt.Sprintf("Generated %s with %d skill(s)", outPath, len(reg.Skills))))
	return nil
}
