package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxkit/pkg/doc"
)

const (
	treeFormatDOT = "dot"
	treeFormatSVG = "svg"
)

// treeCommand creates the tree command for exporting a document's
// expression tree as a Graphviz graph.
func (c *CLI) treeCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Export a document's expression tree as DOT or SVG",
		Long: `Tree converts the layout document's expression tree to Graphviz DOT
format, or renders it straight to SVG. Useful for understanding how a
document composes its boxes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd.Context(), args[0], output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, derived from input for svg)")
	cmd.Flags().StringVarP(&format, "format", "f", treeFormatDOT, "output format: dot (default), svg")

	return cmd
}

// runTree loads the document and writes its tree in the requested format.
func (c *CLI) runTree(ctx context.Context, input, output, format string) error {
	logger := loggerFromContext(ctx)

	d, err := doc.ReadFile(input)
	if err != nil {
		return err
	}
	dot := doc.ToDOT(d)

	var data []byte
	switch format {
	case treeFormatDOT:
		data = []byte(dot)
	case treeFormatSVG:
		logger.Debug("Rendering tree SVG")
		data, err = doc.RenderDOTSVG(dot)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", format)
	}

	// DOT with no output file goes to stdout for piping into graphviz.
	if output == "" && format == treeFormatDOT {
		fmt.Print(dot)
		return nil
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	printSuccess("Exported expression tree")
	printFile(output)
	return nil
}
