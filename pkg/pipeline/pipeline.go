// Package pipeline provides the grid generation pipeline for tianzige.
//
// This package implements the validate → resolve → render sequence
// shared by the CLI and the HTTP server. Centralizing it keeps the
// two entry points behaviorally identical: same defaults, same error
// taxonomy, same output bytes for the same options.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.PageSize = "a5"
//	data, err := runner.Generate(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("grid.pdf", data, 0644)
//
// All validation and layout errors are reported before any PDF bytes
// are produced; a non-nil error means no partial output exists.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/tzgrid/tianzige/pkg/errors"
	"github.com/tzgrid/tianzige/pkg/geom"
	"github.com/tzgrid/tianzige/pkg/grid"
	"github.com/tzgrid/tianzige/pkg/paper"
)

// TemplateSizesMM are the square sizes rendered by the batch template
// generator, for every supported paper format.
var TemplateSizesMM = []float64{10, 12, 15, 20, 25}

// Runner executes grid generations.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil logger falls back to the
// default logger.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{logger: logger}
}

// Generate renders a single grid PDF and returns its bytes.
//
// The pipeline is a single linear pass: validate the color, validate
// the margins, look up the paper format, resolve the square size,
// compute the dimensions, then draw. Any failure aborts before
// drawing starts.
func (r *Runner) Generate(ctx context.Context, opts Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !geom.ValidateHexColor(opts.Color) {
		return nil, errors.New(errors.ErrCodeInvalidColor,
			"invalid hex color %q, want #RRGGBB", opts.Color)
	}
	rgb := geom.HexToRGB(opts.Color)

	if err := validateMargins(opts); err != nil {
		return nil, err
	}

	page, err := paper.Lookup(opts.PageSize)
	if err != nil {
		return nil, err
	}

	margins := grid.Margins{
		Top:    opts.MarginTopMM * paper.MM,
		Bottom: opts.MarginBottomMM * paper.MM,
		Left:   opts.MarginLeftMM * paper.MM,
		Right:  opts.MarginRightMM * paper.MM,
	}

	spec, err := grid.Build(page, margins, sizeRequest(opts))
	if err != nil {
		return nil, err
	}
	r.logger.Debugf("Resolved layout: %.1fmm squares, %dx%d boxes on %s",
		spec.Square/paper.MM, spec.Cols, spec.Rows, opts.PageSize)

	var buf bytes.Buffer
	if err := grid.WritePDF(&buf, spec, rgb, opts.InnerGrid); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sizeRequest maps the options onto the resolver's request variants.
func sizeRequest(opts Options) geom.SizeRequest {
	if opts.SquareSizeMM != 0 {
		return geom.Explicit{
			SizeMM:        opts.SquareSizeMM,
			MinHorizontal: opts.MinHorizontal,
			MinVertical:   opts.MinVertical,
		}
	}
	return geom.MinimumBoxes{
		Horizontal: opts.MinHorizontal,
		Vertical:   opts.MinVertical,
	}
}

func validateMargins(opts Options) error {
	margins := []struct {
		name  string
		value float64
	}{
		{"top", opts.MarginTopMM},
		{"bottom", opts.MarginBottomMM},
		{"left", opts.MarginLeftMM},
		{"right", opts.MarginRightMM},
	}
	for _, m := range margins {
		if m.value < 0 {
			return errors.New(errors.ErrCodeInvalidMargin,
				"%s margin must not be negative, got %gmm", m.name, m.value)
		}
	}
	return nil
}

// TemplateResult records the outcome of one template combination.
type TemplateResult struct {
	PageSize string
	SizeMM   float64
	Path     string
	Err      error
}

// Skipped reports whether this combination was skipped because the
// square size does not suit the paper.
func (t TemplateResult) Skipped() bool {
	return t.Err != nil
}

// Templates renders the full template matrix (every paper format with
// every template square size) into dir, using base for margins, color
// and inner grid. Combinations whose squares do not fit are recorded
// and skipped; any other failure aborts the batch. Cancelling ctx
// stops the batch between items.
func (r *Runner) Templates(ctx context.Context, dir string, base Options) ([]TemplateResult, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "creating template directory %s", dir)
	}

	var results []TemplateResult
	for _, pageSize := range paper.Names() {
		for _, sizeMM := range TemplateSizesMM {
			if err := ctx.Err(); err != nil {
				return results, err
			}

			opts := base
			opts.PageSize = pageSize
			opts.SquareSizeMM = sizeMM
			opts.MinHorizontal = 0
			opts.MinVertical = 0

			result := TemplateResult{PageSize: pageSize, SizeMM: sizeMM}

			data, err := r.Generate(ctx, opts)
			if errors.IsSizing(err) {
				r.logger.Debugf("Skipping %s with %gmm squares: %v", pageSize, sizeMM, err)
				result.Err = err
				results = append(results, result)
				continue
			}
			if err != nil {
				return results, err
			}

			result.Path = filepath.Join(dir, fmt.Sprintf("tianzige_%s_%gmm.pdf", pageSize, sizeMM))
			if err := os.WriteFile(result.Path, data, 0644); err != nil {
				return results, errors.Wrap(errors.ErrCodeIO, err, "writing %s", result.Path)
			}
			r.logger.Debugf("Generated template: %s", result.Path)
			results = append(results, result)
		}
	}
	return results, nil
}
