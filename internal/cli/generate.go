package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tzgrid/tianzige/pkg/errors"
	"github.com/tzgrid/tianzige/pkg/paper"
	"github.com/tzgrid/tianzige/pkg/pipeline"
)

// gridFlags is the flag surface shared by the generate and templates
// commands.
type gridFlags struct {
	color        string
	marginTop    float64
	marginBottom float64
	marginLeft   float64
	marginRight  float64
	noInnerGrid  bool
}

// addGridFlags registers the shared flags on cmd.
func addGridFlags(cmd *cobra.Command, f *gridFlags) {
	cmd.Flags().StringVarP(&f.color, "color", "c", pipeline.DefaultColor, "line color in hex format (e.g. #808080)")
	cmd.Flags().Float64Var(&f.marginTop, "margin-top", pipeline.DefaultMarginTopMM, "top margin in mm")
	cmd.Flags().Float64Var(&f.marginBottom, "margin-bottom", pipeline.DefaultMarginBottomMM, "bottom margin in mm")
	cmd.Flags().Float64Var(&f.marginLeft, "margin-left", pipeline.DefaultMarginLeftMM, "left margin in mm")
	cmd.Flags().Float64Var(&f.marginRight, "margin-right", pipeline.DefaultMarginRightMM, "right margin in mm")
	cmd.Flags().BoolVar(&f.noInnerGrid, "no-inner-grid", false, "disable the dashed inner grid lines")
}

// apply overlays flags the user explicitly set onto opts, so config
// file values survive unless overridden on the command line.
func (f *gridFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	set := cmd.Flags().Changed
	if set("color") {
		opts.Color = f.color
	}
	if set("margin-top") {
		opts.MarginTopMM = f.marginTop
	}
	if set("margin-bottom") {
		opts.MarginBottomMM = f.marginBottom
	}
	if set("margin-left") {
		opts.MarginLeftMM = f.marginLeft
	}
	if set("margin-right") {
		opts.MarginRightMM = f.marginRight
	}
	if f.noInnerGrid {
		opts.InnerGrid = false
	}
}

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	gridFlags
	pageSize      string
	sizeMM        float64
	minHorizontal int
	minVertical   int
}

// generateCommand creates the generate command for a single grid PDF.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [output.pdf]",
		Short: "Generate a tianzige grid PDF",
		Long: `Generate a single tianzige grid PDF.

The square size is auto-calculated so that at least the minimum number
of boxes (default 10 per axis) fits the page, unless --size is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args[0], opts)
		},
	}

	addGenerateFlags(cmd, &opts)

	return cmd
}

// addGenerateFlags registers the full grid flag surface. The root
// command registers the same set so `tianzige output.pdf` works
// without the generate subcommand.
func addGenerateFlags(cmd *cobra.Command, opts *generateOpts) {
	addGridFlags(cmd, &opts.gridFlags)
	cmd.Flags().StringVarP(&opts.pageSize, "page-size", "p", pipeline.DefaultPageSize, "page size: "+joinNames())
	cmd.Flags().Float64VarP(&opts.sizeMM, "size", "s", 0, "square size in mm (default: auto-sized to fit the minimum boxes)")
	cmd.Flags().IntVar(&opts.minHorizontal, "min-horizontal", 0, "minimum number of horizontal boxes (default 10 if size not given)")
	cmd.Flags().IntVar(&opts.minVertical, "min-vertical", 0, "minimum number of vertical boxes (default 10 if size not given)")
}

func (c *CLI) runGenerate(cmd *cobra.Command, output string, o generateOpts) error {
	opts := c.baseOptions()
	o.gridFlags.apply(cmd, &opts)

	set := cmd.Flags().Changed
	if set("page-size") {
		opts.PageSize = o.pageSize
	}
	if set("size") {
		opts.SquareSizeMM = o.sizeMM
	}
	if set("min-horizontal") {
		opts.MinHorizontal = o.minHorizontal
	}
	if set("min-vertical") {
		opts.MinVertical = o.minVertical
	}

	data, err := c.newRunner().Generate(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "writing %s", output)
	}

	c.Logger.Infof("Generated tianzige grid: %s", output)
	return nil
}

func joinNames() string {
	names := paper.Names()
	out := names[0]
	for _, name := range names[1:] {
		out += ", " + name
	}
	return out
}
