// Package pkg provides the core libraries for tianzige grid generation.
//
// # Overview
//
// Tianzige generates 田字格 (tianzige) writing grid PDFs: squares with
// optional dashed midpoint lines, used to practice Chinese character
// writing. The pkg directory is organized as follows:
//
//  1. [paper] - Page formats and unit conversion (mm to PDF points)
//  2. [geom] - Square sizing, grid dimensions, and hex color parsing
//  3. [grid] - Grid layout, line rendering, and PDF output
//  4. [pipeline] - Orchestration (options → layout → render → bytes)
//  5. [cache] - Render caches (memory, file, Redis) for the HTTP server
//  6. [errors] - Structured errors with stable machine-readable codes
//
// # Quick Start
//
// Generate a grid PDF with the defaults:
//
//	import "github.com/tzgrid/tianzige/pkg/pipeline"
//
//	runner := pipeline.NewRunner(nil)
//	data, err := runner.Generate(ctx, pipeline.DefaultOptions())
//
// Or build the layout directly:
//
//	page, _ := paper.Lookup("a4")
//	spec, _ := grid.Build(page, margins, geom.MinimumBoxes{Horizontal: 10, Vertical: 10})
//	err := grid.WritePDF(w, spec, rgb, true)
//
// [paper]: https://pkg.go.dev/github.com/tzgrid/tianzige/pkg/paper
// [geom]: https://pkg.go.dev/github.com/tzgrid/tianzige/pkg/geom
// [grid]: https://pkg.go.dev/github.com/tzgrid/tianzige/pkg/grid
// [pipeline]: https://pkg.go.dev/github.com/tzgrid/tianzige/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/tzgrid/tianzige/pkg/cache
// [errors]: https://pkg.go.dev/github.com/tzgrid/tianzige/pkg/errors
package pkg
