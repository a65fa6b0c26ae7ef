package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skill-stack/skillreg/internal/logging"
	"github.com/skill-stack/skillreg/internal/registry"
	"github.com/skill-stack/skillreg/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list [skills-root]",
	Aliases: []string{"ls"},
	Short:   "List valid skill packages",
	Long: `List the skill packages that would appear in the registry.

The output shows:
  - ID:          Declared skill name
  - VERSION:     Declared version
  - AUTHOR:      Declared author
  - DESCRIPTION: Declared description

Invalid packages are noted on stderr but do not stop the listing.
Use --json for machine-readable output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, baseDir, err := loadConfig()
	if err != nil {
		return err
	}

	// Listing is informational; only surface hard failures on stderr.
	builder := registry.NewBuilder(resolveRoot(cfg, baseDir, args), logging.NewWithLevel(slog.LevelError))
	builder.DeclarationFile = cfg.Registry.DeclarationFile
	builder.AllowDuplicateIDs = cfg.Registry.AllowDuplicateIDs

	reg, errCount, err := builder.Build()
	if err != nil {
		return err
	}
	if errCount > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Render(ui.Warning,
			fmt.Sprintf("%d skill(s) failed validation and are not listed", errCount)))
	}

	if listJSON {
		data, err := json.MarshalIndent(reg.Skills, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(reg.Skills) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No skills found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVERSION\tAUTHOR\tDESCRIPTION")
	for _, rec := range reg.Skills {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.ID, rec.Version, rec.Author, rec.Description)
	}
	return w.Flush()
}
