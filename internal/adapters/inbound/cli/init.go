package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const configFileName = ".pagekraft.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .pagekraft.yaml configuration file",
		Long:  "Create a .pagekraft.yaml with sensible defaults in the site directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(starterConfig), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .pagekraft.yaml")

	return cmd
}

const starterConfig = `# Pagekraft configuration

# Page to audit, relative to this directory.
page: index.html

# Extra stylesheets beyond the page's <link rel="stylesheet"> references.
# stylesheets:
#   - css/print.css

# Categories to leave out of the report entirely.
# skip_categories:
#   - interactions

# Fail "audit --ci" below this score (0-10).
# min_score: 7.0
`
