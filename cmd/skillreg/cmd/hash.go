package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skill-stack/skillreg/internal/skill"
)

var hashCmd = &cobra.Command{
	Use:   "hash <skill-dir>",
	Short: "Print the content fingerprint of a skill directory",
	Long: `Compute and print the content fingerprint of one skill directory.

The fingerprint is sha256 over every file's slash-separated relative path
followed by its raw bytes, with directories and files visited in sorted
order. It is stable across machines and filesystem orderings; any byte
change, rename, addition, or removal produces a different value.

Examples:
  skillreg hash ./skills/translate-text`,
	Args: cobra.ExactArgs(1),
	RunE: runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	fingerprint, err := skill.ContentHash(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), fingerprint)
	return nil
}
