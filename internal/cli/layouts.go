package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tangybbq/dlb-lumatone/pkg/layout"
	"github.com/tangybbq/dlb-lumatone/pkg/tuning"
)

// newLayoutsCmd creates the layouts command, which lists the built-in
// tunings and layout presets along with their interval step sizes.
func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List available tunings and layout presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printTunings()
			fmt.Println()
			printLayouts()
			return nil
		},
	}
}

// printTunings prints one row per tuning with its step count for every
// interval, so it doubles as a reference for choosing custom layouts.
func printTunings() {
	fmt.Println(StyleTitle.Render("Tunings"))

	headers := []string{"Tuning", "Octave"}
	for _, iv := range tuning.IntervalNames() {
		headers = append(headers, iv)
	}

	var rows [][]string
	for _, name := range tuning.Names() {
		tun := tuning.Tunings[name]
		row := []string{name, octaveSize(tun)}
		for i := range tuning.IntervalNames() {
			row = append(row, fmt.Sprintf("%d", tun.Steps(tuning.Interval(i))))
		}
		rows = append(rows, row)
	}

	fmt.Println(newTable(headers, rows))
}

// octaveSize formats the steps-per-octave of a tuning, or "?" for tunings
// that do not advertise a fixed division.
func octaveSize(tun tuning.Tuning) string {
	if e, ok := tun.(*tuning.Edo); ok {
		return fmt.Sprintf("%d", e.Octave())
	}
	return "?"
}

// printLayouts prints the preset layouts and the interval each grid
// direction spans.
func printLayouts() {
	fmt.Println(StyleTitle.Render("Layouts"))

	var rows [][]string
	for _, name := range layout.PresetNames() {
		lay := layout.Presets[name]
		rows = append(rows, []string{
			name,
			lay.Right.String(),
			lay.UpLeft.String(),
			lay.UpRight.String(),
		})
	}

	fmt.Println(newTable([]string{"Layout", "Right", "Up-Left", "Up-Right"}, rows))
}

// newTable builds a bordered table in the house style.
func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)
}
