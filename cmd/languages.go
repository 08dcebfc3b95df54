package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/highlighter/languages"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List bundled languages and their aliases",
	Long: `List all bundled languages and the names they can be selected by as JSON.

Any alias works with --lang, and a file whose extension is an alias is
highlighted with that language automatically.

Examples:
  highlighter languages
  highlighter languages | jq '.[].name'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := json.MarshalIndent(languages.Default().Languages(), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding languages: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
