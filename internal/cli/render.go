package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/config"
	"github.com/gogpu/ggchart/surface"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultFormat = "png"
)

// renderOpts holds the flags of the render command. Zero values fall back
// to the description's [output] table, then to the defaults above.
type renderOpts struct {
	output string
	format string
	width  int
	height int
	title  string
	dryRun bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file.toml]",
		Short: "Render a figure description to an image",
		Long: `Render a figure description to an image.

Without a file, the built-in demo figure is rendered. The format defaults to
the output file's extension.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			titleSet := cmd.Flags().Changed("title")
			return c.runRender(cmd, path, opts, titleSet)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.<format> or demo.png)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "raster format, see 'ggchart formats'")
	cmd.Flags().IntVar(&opts.width, "width", 0, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "image height in pixels")
	cmd.Flags().StringVar(&opts.title, "title", "", "override the figure title")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the draw calls instead of writing a file")
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts, titleSet bool) error {
	start := time.Now()

	file := demoFile()
	if path != "" {
		f, err := config.Load(path)
		if err != nil {
			return err
		}
		file = f
	}
	resolveOutput(&opts, file.Output, path)

	var extra []ggchart.FigureOption
	if titleSet {
		extra = append(extra, ggchart.WithTitle(opts.title))
	}
	fig, err := file.Figure(extra...)
	if err != nil {
		return err
	}
	defer fig.Close()
	c.Logger.Debug("figure built", "items", fig.Len(), "title", fig.Title())

	if opts.dryRun {
		var rec surface.Recorder
		if err := fig.Draw(&rec, opts.width, opts.height); err != nil {
			return err
		}
		_, err := fmt.Fprint(cmd.OutOrStdout(), rec.String())
		return err
	}

	if err := fig.ExportToRaster(opts.output, opts.width, opts.height, opts.format); err != nil {
		return err
	}
	c.Logger.Infof("Wrote %s (%dx%d %s, %s)", opts.output, opts.width, opts.height, opts.format,
		time.Since(start).Round(time.Millisecond))
	return nil
}

// resolveOutput fills unset flags from the description, the output path
// and the defaults, in that order.
func resolveOutput(opts *renderOpts, out config.Output, input string) {
	if opts.width == 0 {
		opts.width = out.Width
	}
	if opts.width == 0 {
		opts.width = defaultWidth
	}
	if opts.height == 0 {
		opts.height = out.Height
	}
	if opts.height == 0 {
		opts.height = defaultHeight
	}

	if opts.format == "" && opts.output != "" {
		opts.format = strings.TrimPrefix(filepath.Ext(opts.output), ".")
	}
	if opts.format == "" {
		opts.format = out.Format
	}
	if opts.format == "" {
		opts.format = defaultFormat
	}
	opts.format = strings.ToLower(opts.format)

	if opts.output == "" {
		base := "demo"
		if input != "" {
			base = strings.TrimSuffix(input, filepath.Ext(input))
		}
		opts.output = base + "." + opts.format
	}
}
