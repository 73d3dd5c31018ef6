package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tangybbq/dlb-lumatone/pkg/fill"
	"github.com/tangybbq/dlb-lumatone/pkg/layout"
	"github.com/tangybbq/dlb-lumatone/pkg/ltn"
	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
	"github.com/tangybbq/dlb-lumatone/pkg/render/hexsvg"
	"github.com/tangybbq/dlb-lumatone/pkg/tuning"
)

const (
	defaultStartGroup = 2  // middle of the five panels
	defaultStartKey   = 39 // near the center of the playing surface
	defaultBound      = 16 // wide enough to reach both ends of the board
)

// fillOpts holds the command-line flags for the fill command.
type fillOpts struct {
	plan    string   // TOML plan file; overrides the individual flags
	tuning  string   // tuning name, e.g. "edo12"
	layout  string   // layout name, e.g. "wicki-hayden"
	starts  []string // seed positions as "group,key"
	left    int      // horizontal bound left of each seed
	right   int      // horizontal bound right of each seed
	output  string   // LTN output path ("" means stdout)
	svgPath string   // optional SVG diagram of the result
}

// newFillCmd creates the fill command for generating a keyboard mapping.
//
// Default settings:
//   - tuning: edo12
//   - layout: wicki-hayden
//   - start: 2,39 (center of the board), bounds 16 keys each way
func newFillCmd() *cobra.Command {
	opts := fillOpts{
		tuning: "edo12",
		layout: "wicki-hayden",
		left:   defaultBound,
		right:  defaultBound,
	}

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Generate a keyboard mapping and write it as an LTN file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.plan, "plan", "p", "", "TOML plan file (overrides tuning/layout/start flags)")
	cmd.Flags().StringVarP(&opts.tuning, "tuning", "t", opts.tuning, "tuning name: "+strings.Join(tuning.Names(), ", "))
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", opts.layout, "layout name: "+strings.Join(layout.PresetNames(), ", "))
	cmd.Flags().StringArrayVarP(&opts.starts, "start", "s", nil, `seed position as "group,key" (repeatable)`)
	cmd.Flags().IntVar(&opts.left, "left", opts.left, "how many keys the fill may travel left of each seed")
	cmd.Flags().IntVar(&opts.right, "right", opts.right, "how many keys the fill may travel right of each seed")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "LTN output file (default stdout)")
	cmd.Flags().StringVar(&opts.svgPath, "svg", "", "also write an SVG diagram of the mapping")

	return cmd
}

// buildPlan resolves the flags into a fill plan, either by loading the plan
// file or by assembling one from the individual flags.
func buildPlan(opts *fillOpts) (*layout.Plan, error) {
	if opts.plan != "" {
		return layout.LoadPlan(opts.plan)
	}

	tun, err := tuning.Lookup(opts.tuning)
	if err != nil {
		return nil, err
	}
	lay, err := layout.Lookup(opts.layout)
	if err != nil {
		return nil, err
	}
	if opts.left < 0 || opts.right < 0 {
		return nil, fmt.Errorf("fill bounds must not be negative")
	}

	starts := opts.starts
	if len(starts) == 0 {
		starts = []string{fmt.Sprintf("%d,%d", defaultStartGroup, defaultStartKey)}
	}

	p := &layout.Plan{Tuning: tun, Layout: lay}
	for _, s := range starts {
		pos, err := parseStart(s)
		if err != nil {
			return nil, err
		}
		p.Fills = append(p.Fills, layout.FillSpec{Start: pos, Left: opts.left, Right: opts.right})
	}
	return p, nil
}

// parseStart parses a "group,key" flag value into a key position.
func parseStart(s string) (lumatone.KeyPosition, error) {
	var group, key int
	if n, err := fmt.Sscanf(s, "%d,%d", &group, &key); err != nil || n != 2 {
		return lumatone.KeyPosition{}, fmt.Errorf("invalid start %q (expected \"group,key\")", s)
	}
	pos := lumatone.KeyPosition{Group: uint8(group), Key: uint8(key)}
	if group < 0 || key < 0 || !pos.Valid() {
		return lumatone.KeyPosition{}, fmt.Errorf("start %q out of range (groups 0-%d, keys 0-%d)",
			s, lumatone.NumGroups-1, lumatone.KeysPerGroup-1)
	}
	return pos, nil
}

// runFill generates the mapping and writes the LTN file and optional SVG.
func runFill(ctx context.Context, opts *fillOpts) error {
	logger := loggerFromContext(ctx)

	p, err := buildPlan(opts)
	if err != nil {
		return err
	}
	logger.Infof("Filling with %s tuning, %d pass(es)", p.Tuning, len(p.Fills))

	prog := newProgress(logger)
	kb := lumatone.NewKeyboard()
	total := 0
	for _, fs := range p.Fills {
		n := fill.Fill(kb, p.Tuning, p.Layout, fs.Start, fs.Left, fs.Right)
		logger.Debugf("Fill from %d,%d: %d keys", fs.Start.Group, fs.Start.Key, n)
		total += n
	}
	prog.done(fmt.Sprintf("Assigned %d keys", total))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := ltn.Save(out, kb); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Wrote mapping")
		printFile(opts.output)
	}

	if opts.svgPath != "" {
		data, err := hexsvg.Render(kb)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.svgPath, data, 0644); err != nil {
			return err
		}
		logger.Debugf("Generated SVG: %d bytes", len(data))
		printFile(opts.svgPath)
	}
	return nil
}
