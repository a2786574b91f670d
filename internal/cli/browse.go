package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/babelgallery/pkg/gallery"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	cardStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// browseCommand opens the interactive room navigator.
func (c *CLI) browseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [room]",
		Short: "Walk through the gallery room by room",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var room int64 = 1
			if len(args) == 1 {
				r, err := gallery.ParseRoom(args[0])
				if err != nil {
					return err
				}
				room = r
			}
			model := NewRoomModel(room)
			_, err := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
			return err
		},
	}
	return cmd
}

// =============================================================================
// RoomModel - Interactive room navigation
// =============================================================================

// RoomModel is the bubbletea model for walking the gallery. Each room shows
// its four displays; the cursor picks one side of the room.
type RoomModel struct {
	Room        int64
	Cursor      int
	Displays    []gallery.Summary
	ShowDetails bool
	Err         error
}

// NewRoomModel creates a model standing in room.
func NewRoomModel(room int64) RoomModel {
	m := RoomModel{Room: room}
	m.load()
	return m
}

func (m *RoomModel) load() {
	ids, err := gallery.RoomDisplays(m.Room)
	if err != nil {
		m.Err = err
		m.Displays = nil
		return
	}
	m.Err = nil
	m.Displays = make([]gallery.Summary, 0, len(ids))
	for _, id := range ids {
		s, err := gallery.Summarize(id)
		if err != nil {
			m.Err = err
			return
		}
		m.Displays = append(m.Displays, s)
	}
}

// Selected returns the display under the cursor.
func (m RoomModel) Selected() (gallery.Summary, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Displays) {
		return gallery.Summary{}, false
	}
	return m.Displays[m.Cursor], true
}

func (m RoomModel) Init() tea.Cmd {
	return nil
}

func (m RoomModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.ShowDetails {
			m.ShowDetails = false
			return m, nil
		}
		return m, tea.Quit
	case "left", "h":
		if m.Room > 1 {
			m.Room--
			m.load()
		}
	case "right", "l":
		if m.Room < gallery.MaxRoom {
			m.Room++
			m.load()
		}
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < gallery.DisplaysPerRoom-1 {
			m.Cursor++
		}
	case "enter":
		m.ShowDetails = !m.ShowDetails
	}
	return m, nil
}

func (m RoomModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Room %d", m.Room)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ room  ↑/↓ side  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(StyleWarning.Render(m.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	for i, s := range m.Displays {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-8d %-5s %s", cursor, s.Display, s.Ratio.Name, quoteTitle(s.Title))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if s, ok := m.Selected(); ok && m.ShowDetails {
		var card strings.Builder
		writeSummary(&card, s)
		b.WriteString("\n")
		b.WriteString(cardStyle.Render(strings.TrimRight(card.String(), "\n")))
		b.WriteString("\n")
	}

	return b.String()
}
