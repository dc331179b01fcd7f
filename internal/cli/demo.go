package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxkit/pkg/figure"
	"github.com/matzehuels/boxkit/pkg/pipeline"
)

// demoOpts holds the command-line flags for the demo command.
type demoOpts struct {
	depth   int    // recursion depth for recursive figures
	format  string // output format: "text" or "json"
	framed  bool   // wrap the figure in an ASCII border
	noCache bool   // disable the render cache
}

// demoCommand creates the demo command for rendering built-in figures.
func (c *CLI) demoCommand() *cobra.Command {
	opts := demoOpts{depth: 3, format: pipeline.FormatText}

	cmd := &cobra.Command{
		Use:       "demo [figure]",
		Short:     "Render a built-in demo figure",
		Long:      `Demo renders one of the built-in figures. Run without arguments to list them.`,
		ValidArgs: figure.Names(),
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				listFigures()
				return nil
			}
			return c.runDemo(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.depth, "depth", "d", opts.depth, fmt.Sprintf("recursion depth (0-%d)", figure.MaxDepth))
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json")
	cmd.Flags().BoolVar(&opts.framed, "framed", false, "wrap the figure in an ASCII border")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// listFigures prints the available figure names.
func listFigures() {
	printInfo("Available figures:")
	for _, name := range figure.Names() {
		printDetail("%s", name)
	}
	printNextStep("Render one", "boxkit demo sierpinski --depth 4")
}

// runDemo renders the named figure through the pipeline.
func (c *CLI) runDemo(ctx context.Context, name string, opts *demoOpts) error {
	logger := loggerFromContext(ctx)

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	res, err := runner.ExecuteFigure(ctx, name, opts.depth, pipeline.Options{
		Format: opts.format,
		Framed: opts.framed,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(res.Output)
	return err
}
