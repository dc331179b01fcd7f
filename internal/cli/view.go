package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxkit/pkg/box"
	"github.com/matzehuels/boxkit/pkg/doc"
)

// viewCommand creates the view command for browsing a render interactively.
func (c *CLI) viewCommand() *cobra.Command {
	var framed bool

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a rendered document in an interactive pager",
		Long: `View builds the layout document and opens the result in a scrollable
pager, for layouts larger than the terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0], framed)
		},
	}

	cmd.Flags().BoolVar(&framed, "framed", false, "wrap the result in an ASCII border")

	return cmd
}

// runView builds the document and hands the rendered lines to the pager.
func (c *CLI) runView(ctx context.Context, input string, framed bool) error {
	d, err := doc.ReadFile(input)
	if err != nil {
		return err
	}

	b, err := doc.Build(d)
	if err != nil {
		return err
	}
	if framed {
		b = box.Framed(b)
	}

	title := d.Name
	if title == "" {
		title = input
	}

	model := newPagerModel(title, b.Lines())
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// =============================================================================
// pagerModel - Scrollable render viewer
// =============================================================================

// pagerModel is the bubbletea model for scrolling through rendered lines.
type pagerModel struct {
	title  string
	lines  []string
	width  int // terminal width
	height int // visible content rows
	xOff   int
	yOff   int
}

func newPagerModel(title string, lines []string) pagerModel {
	return pagerModel{
		title:  title,
		lines:  lines,
		width:  80,
		height: 20,
	}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.yOff > 0 {
				m.yOff--
			}
		case "down", "j":
			if m.yOff < len(m.lines)-m.height {
				m.yOff++
			}
		case "left", "h":
			if m.xOff > 0 {
				m.xOff -= 4
				if m.xOff < 0 {
					m.xOff = 0
				}
			}
		case "right", "l":
			m.xOff += 4
		case "g", "home":
			m.yOff = 0
			m.xOff = 0
		case "G", "end":
			if len(m.lines) > m.height {
				m.yOff = len(m.lines) - m.height
			}
		case "pgup":
			m.yOff -= m.height
			if m.yOff < 0 {
				m.yOff = 0
			}
		case "pgdown":
			m.yOff += m.height
			if max := len(m.lines) - m.height; m.yOff > max {
				m.yOff = max
			}
			if m.yOff < 0 {
				m.yOff = 0
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - 4
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m pagerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ scroll  ←/→ pan  g/G top/bottom  q quit"))
	b.WriteString("\n\n")

	end := m.yOff + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}

	for i := m.yOff; i < end; i++ {
		b.WriteString(m.window(m.lines[i]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d-%d/%d]", m.yOff+1, end, len(m.lines))))

	return b.String()
}

// window clips a line to the horizontal viewport.
func (m pagerModel) window(line string) string {
	runes := []rune(line)
	if m.xOff >= len(runes) {
		return ""
	}
	runes = runes[m.xOff:]
	if m.width > 0 && len(runes) > m.width {
		runes = runes[:m.width]
	}
	return string(runes)
}
