// Package cli implements the tianzige command-line interface.
//
// This package provides commands for generating a single grid PDF,
// batch-generating template files for every paper format, and serving
// grids over HTTP. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tzgrid/tianzige/pkg/buildinfo"
	"github.com/tzgrid/tianzige/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "tianzige"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var opts generateOpts
	root := &cobra.Command{
		Use:          "tianzige [output.pdf]",
		Short:        "Tianzige generates Chinese character practice grids as PDFs",
		Long:         `Tianzige is a CLI tool for generating 田字格 (tianzige) writing grid PDFs: squares with optional dashed midpoint lines, used to practice Chinese character writing.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation generates directly, like `generate`.
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.runGenerate(cmd, args[0], opts)
		},
	}
	addGenerateFlags(root, &opts)

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.templatesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// baseOptions returns the pipeline defaults with the user's config
// file (if any) applied on top. Explicit flags override both.
func (c *CLI) baseOptions() pipeline.Options {
	opts := pipeline.DefaultOptions()
	path, err := configPath()
	if err != nil {
		return opts
	}
	cfg, err := loadConfig(path)
	if err != nil {
		c.Logger.Warnf("Ignoring config file %s: %v", path, err)
		return opts
	}
	cfg.applyTo(&opts)
	return opts
}

// configDir returns the config directory using the XDG standard
// (~/.config/tianzige/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
