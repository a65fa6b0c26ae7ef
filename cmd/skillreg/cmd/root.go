package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/skill-stack/skillreg/internal/config"
	"github.com/skill-stack/skillreg/internal/logging"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	verbose bool
	workDir string
)

var rootCmd = &cobra.Command{
	Use:   "skillreg",
	Short: "Skill package registry generator",
	Long: `skillreg scans a directory of self-describing skill packages, validates
each package's SKILL.md frontmatter, fingerprints its file tree, and emits
a consolidated registry.json.

A skill package is a directory with a SKILL.md declaration at its root and
arbitrary payload files beneath it. skillreg never executes or inspects the
payload; it only validates the declared metadata and hashes the bytes.

Registry generation is all-or-nothing: if any package fails validation, no
registry is written and skillreg exits nonzero.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&workDir, "workdir", "C", "", "working directory (default: current)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("skillreg {{.Version}}\n")
}

// getWorkDir returns the effective working directory.
func getWorkDir() (string, error) {
	if workDir != "" {
		return workDir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return dir, nil
}

// loadConfig loads configuration relative to the working directory.
func loadConfig() (*config.Config, string, error) {
	dir, err := getWorkDir()
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadFromDir(dir)
	if err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config: %w", err)
	}
	return cfg, dir, nil
}

// newLogger builds the run logger, honoring --verbose.
func newLogger(cfg *config.Config, baseDir string) (*slog.Logger, func(), error) {
	if verbose {
		cfg.Logging.Level = config.LogLevelDebug
	}

	logger, closer, err := logging.NewFromConfig(cfg, baseDir)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if closer != nil {
			closer.Close()
		}
	}
	return logger, cleanup, nil
}

// resolveRoot picks the skills root: positional argument first, then config.
func resolveRoot(cfg *config.Config, baseDir string, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.SkillsDir(baseDir)
}
