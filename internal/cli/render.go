package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tangybbq/dlb-lumatone/pkg/ltn"
	"github.com/tangybbq/dlb-lumatone/pkg/render/hexsvg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path; derived from the input when empty
}

// newRenderCmd creates the render command for drawing an existing LTN
// mapping file as an SVG diagram of the keyboard.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <mapping.ltn>",
		Short: "Render an LTN mapping file as an SVG diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output SVG file (default: input with .svg extension)")

	return cmd
}

// runRender loads the mapping from input and writes the SVG diagram.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	kb, err := ltn.LoadFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded mapping: %d keys assigned", kb.Count())

	data, err := hexsvg.Render(kb)
	if err != nil {
		return err
	}
	logger.Debugf("Generated SVG: %d bytes", len(data))

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	printSuccess("Rendered diagram")
	printFile(outputPath)
	return nil
}
