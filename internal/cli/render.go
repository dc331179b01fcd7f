package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxkit/pkg/doc"
	"github.com/matzehuels/boxkit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path; empty prints to stdout
	format  string // output format: "text" or "json"
	framed  bool   // wrap the result in an ASCII border
	noCache bool   // disable the render cache
	refresh bool   // bypass the cache and overwrite the stored entry
}

// renderCommand creates the render command for building layout documents.
// Documents are read as JSON, or as TOML when the file ends in .toml.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: pipeline.FormatText}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a layout document",
		Long: `Render builds the layout document in the given file and prints the result.

Documents are JSON by default; files ending in .toml are parsed as TOML.
Rendered output is cached under the document's content hash, so re-rendering
an unchanged document is instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json")
	cmd.Flags().BoolVar(&opts.framed, "framed", false, "wrap the result in an ASCII border")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")

	return cmd
}

// runRender loads the document, runs the pipeline, and writes the output.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	d, err := doc.ReadFile(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded document %q from %s", d.Name, input)

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	res, err := runner.Execute(ctx, d, pipeline.Options{
		Format:  opts.format,
		Framed:  opts.framed,
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %s", input))

	if opts.output == "" {
		_, err := os.Stdout.Write(res.Output)
		return err
	}

	if err := os.WriteFile(opts.output, res.Output, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	printSuccess("Rendered %s", input)
	printFile(opts.output)
	printStats(res.Height, res.Width, res.CacheInfo.RenderHit)
	return nil
}
