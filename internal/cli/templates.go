package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// defaultTemplateDir is where templates land when no directory is given.
const defaultTemplateDir = "sample_pdf"

// templatesCommand creates the templates command, which batch-generates
// grids for every paper format and standard square size.
func (c *CLI) templatesCommand() *cobra.Command {
	var flags gridFlags

	cmd := &cobra.Command{
		Use:   "templates [dir]",
		Short: "Generate template grids for every paper format and standard size",
		Long: `Generate a template grid PDF for every supported paper format and each
standard square size (10, 12, 15, 20 and 25 mm).

Combinations whose squares do not fit the paper are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := defaultTemplateDir
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runTemplates(cmd, dir, flags)
		},
	}

	addGridFlags(cmd, &flags)

	return cmd
}

func (c *CLI) runTemplates(cmd *cobra.Command, dir string, flags gridFlags) error {
	opts := c.baseOptions()
	flags.apply(cmd, &opts)

	spin := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Generating templates in %s", dir))
	spin.Start()
	results, err := c.newRunner().Templates(cmd.Context(), dir, opts)
	spin.Stop()
	if err != nil {
		return err
	}

	created := 0
	for _, res := range results {
		if !res.Skipped() {
			created++
		}
	}

	printSuccess("Created %d template files in %s", created, dir)
	if skipped := len(results) - created; skipped > 0 {
		printWarning("Skipped %d combinations that do not fit their paper:", skipped)
		for _, res := range results {
			if res.Skipped() {
				printDetail("%s with %gmm squares", res.PageSize, res.SizeMM)
			}
		}
	}

	return nil
}
