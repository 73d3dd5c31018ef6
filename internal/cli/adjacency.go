package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
	"github.com/tangybbq/dlb-lumatone/pkg/render/nodelink"
)

// adjacencyOpts holds the command-line flags for the adjacency command.
type adjacencyOpts struct {
	output string // output file path ("" means stdout)
	format string // "dot", "svg", or "png"
}

// newAdjacencyCmd creates the adjacency command, a debug tool that emits the
// key connection graph (the three generator directions of every key) as
// Graphviz DOT or a rendered image.
func newAdjacencyCmd() *cobra.Command {
	opts := adjacencyOpts{format: "dot"}

	cmd := &cobra.Command{
		Use:   "adjacency",
		Short: "Emit the key connection graph (debug tool)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdjacency(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, png")

	return cmd
}

func runAdjacency(ctx context.Context, opts *adjacencyOpts) error {
	logger := loggerFromContext(ctx)

	dot := nodelink.ToDOT(lumatone.NewMoveMap())

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		logger.Info("Rendering connection graph SVG")
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		data = svg
	case "png":
		logger.Info("Rendering connection graph PNG")
		png, err := nodelink.RenderPNG(ctx, dot)
		if err != nil {
			return err
		}
		data = png
	default:
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", opts.format)
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Generated connection graph")
		printFile(opts.output)
	}
	return nil
}
