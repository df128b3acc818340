// Package cli implements the ggchart command-line interface.
//
// The CLI renders figure descriptions (TOML, see package config) to raster
// files. It is built with cobra and logs through charmbracelet/log, which
// also receives the library's own slog output.
//
// # Commands
//
//   - render: render a description, or the built-in demo, to an image
//   - formats: list the registered raster formats
//
// All commands accept --verbose (-v) for debug logging.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
)

const appName = "ggchart"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level. The logger also becomes the
// ggchart library logger.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
	ggchart.SetLogger(slog.New(c.Logger))
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "ggchart renders chart figures to images",
		Long:          `ggchart renders figures described in TOML (a background, a tree of boxes and labels, and a title) to PNG or TIFF.`,
		Version:       ggchart.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s\n", appName, ggchart.Version))

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.formatsCommand())
	return root
}
