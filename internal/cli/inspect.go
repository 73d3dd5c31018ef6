package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tangybbq/dlb-lumatone/pkg/ltn"
	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
)

// newInspectCmd creates the inspect command, an interactive browser for an
// LTN mapping file. Keys are drawn in their mapping colors on the staggered
// grid, and the status line shows the MIDI assignment under the cursor.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <mapping.ltn>",
		Short: "Browse an LTN mapping file interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, err := ltn.LoadFile(args[0])
			if err != nil {
				return err
			}
			model, err := newGridModel(args[0], kb)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// Grid cell styles
var (
	gridCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	gridEmptyStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// gridModel is the bubbletea model for browsing a keyboard mapping.
type gridModel struct {
	path    string
	kb      *lumatone.Keyboard
	rows    [][]lumatone.KeyPosition
	cursorY int
	cursorX int // index into rows[cursorY]
}

func newGridModel(path string, kb *lumatone.Keyboard) (gridModel, error) {
	rows, err := lumatone.GridRows(lumatone.NewMoveMap())
	if err != nil {
		return gridModel{}, err
	}
	return gridModel{path: path, kb: kb, rows: rows}, nil
}

func (m gridModel) Init() tea.Cmd {
	return nil
}

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursorY > 0 {
				m.cursorY--
				m.clampCursor()
			}
		case "down", "j":
			if m.cursorY < len(m.rows)-1 {
				m.cursorY++
				m.clampCursor()
			}
		case "left", "h":
			if m.cursorX > 0 {
				m.cursorX--
			}
		case "right", "l":
			if m.cursorX < len(m.rows[m.cursorY])-1 {
				m.cursorX++
			}
		}
	}
	return m, nil
}

// clampCursor keeps the cursor on a real key when moving between rows of
// different lengths, preserving the on-screen column where possible.
func (m *gridModel) clampCursor() {
	if m.cursorX >= len(m.rows[m.cursorY]) {
		m.cursorX = len(m.rows[m.cursorY]) - 1
	}
}

func (m gridModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect " + m.path))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ navigate  q quit"))
	b.WriteString("\n\n")

	for y, row := range m.rows {
		// Two columns per grid step, one extra for the odd-row stagger.
		b.WriteString(strings.Repeat(" ", 2*lumatone.RowSpans[y].Offset+y%2))
		for x, pos := range row {
			b.WriteString(m.renderCell(pos, y == m.cursorY && x == m.cursorX))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	return b.String()
}

// renderCell draws one key as a two-character cell in its mapping color.
func (m gridModel) renderCell(pos lumatone.KeyPosition, selected bool) string {
	info := m.kb.Get(pos)

	cell := "· "
	style := gridEmptyStyle
	if info != nil {
		cell = "⬢ "
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color.Hex()))
	}
	if selected {
		cell = "▣ "
		style = gridCursorStyle
		if info != nil {
			style = style.Foreground(lipgloss.Color(info.Color.Hex()))
		}
	}
	return style.Render(cell)
}

// statusLine describes the key under the cursor.
func (m gridModel) statusLine() string {
	pos := m.rows[m.cursorY][m.cursorX]
	head := StyleHighlight.Render(fmt.Sprintf("group %d key %2d", pos.Group, pos.Key))

	info := m.kb.Get(pos)
	if info == nil {
		return head + StyleDim.Render("  unassigned")
	}
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color.Hex())).Render("⬢")
	return head + StyleValue.Render(fmt.Sprintf("  %-4s", info.Label)) +
		StyleDim.Render(fmt.Sprintf("  channel %d  note %d  ", info.Channel, info.Note)) +
		swatch + StyleDim.Render(" "+info.Color.Hex())
}
