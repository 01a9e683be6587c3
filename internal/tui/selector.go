package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateCategorySelection handles input while the category selector
// overlay is open.
func (m Model) updateCategorySelection(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			m.selectingCategory = false
			return m, nil

		case "up", "k":
			if m.catCursor > 0 {
				m.catCursor--
			}

		case "down", "j":
			if m.catCursor < len(m.categories)-1 {
				m.catCursor++
			}

		case "enter":
			if len(m.categories) > 0 {
				m.activeCategory = m.categories[m.catCursor].Name
			}
			m.selectingCategory = false
			return m, nil
		}
	}

	return m, nil
}

// renderCategorySelector renders the category picker overlay
func (m Model) renderCategorySelector() string {
	var b strings.Builder

	b.WriteString(selectorTitleStyle.Render("Select a category"))
	b.WriteString("\n\n")

	for i, c := range m.categories {
		cursor := "  "
		nameStyle := selectorItemStyle
		if i == m.catCursor {
			cursor = selectorCursorStyle.Render("❯ ")
			nameStyle = selectorSelectedStyle
		}

		marker := " "
		if c.Name == m.activeCategory {
			marker = selectorSelectedStyle.Render("●")
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, marker, nameStyle.Render(c.Name)))
		if c.Description != "" {
			b.WriteString(selectorValueStyle.Render("      " + c.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("↑↓ navigate  •  enter select  •  esc cancel"))

	contentWidth := m.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	panel := messagesAreaStyle.Width(contentWidth).Render(b.String())
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Width(contentWidth).Render(titleStyle.Render("♥ WellnessHub")),
		panel,
	)
}
