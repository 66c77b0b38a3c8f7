// PrintForge - 3D Printer Component Installer
// Copyright (C) 2026 PrintForge Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package selector implements the interactive component selection menu.
package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/printforge/printforge/internal/catalog"
)

// Model is the bubbletea model for the selection menu. It owns a working
// copy of the catalog and tracks cursor, scroll, and outcome.
type Model struct {
	components []catalog.Component
	cursor     int
	offset     int
	width      int
	height     int
	confirmed  bool
	cancelled  bool
	keys       keyMap
}

// New creates a selection model over a copy of the given components.
// The placeholder dimensions hold until the first WindowSizeMsg arrives.
func New(components []catalog.Component) Model {
	working := make([]catalog.Component, len(components))
	copy(working, components)
	return Model{
		components: working,
		width:      80,
		height:     24,
		keys:       defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.offset = m.scrollTo(m.cursor)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.offset = m.scrollTo(m.cursor)

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.components)-1 {
				m.cursor++
			}
			m.offset = m.scrollTo(m.cursor)

		case key.Matches(msg, m.keys.Toggle):
			if len(m.components) > 0 {
				m.components[m.cursor].Selected = !m.components[m.cursor].Selected
			}

		case key.Matches(msg, m.keys.All):
			for i := range m.components {
				m.components[i].Selected = true
			}

		case key.Matches(msg, m.keys.None):
			for i := range m.components {
				m.components[i].Selected = false
			}

		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// scrollTo returns the scroll offset that keeps the cursor's display row
// inside the viewport, moving as little as possible.
func (m Model) scrollTo(cursor int) int {
	items := buildItems(m.components)
	return ensureVisible(currentItem(items, cursor), m.offset, visibleRows(m.height))
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.center(titleStyle.Render("3D Printer Component Installer")))
	b.WriteString("\n")
	b.WriteString(m.center(subtitleStyle.Render("Select components to install")))
	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n")

	items := buildItems(m.components)
	visible := visibleRows(m.height)
	start := m.offset
	if start > len(items) {
		start = len(items)
	}
	end := m.offset + visible
	if end > len(items) {
		end = len(items)
	}
	for _, it := range items[start:end] {
		b.WriteString(m.renderItem(it))
		b.WriteString("\n")
	}
	for i := end - start; i < visible; i++ {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.separator())
	b.WriteString("\n")
	b.WriteString(m.center(helpStyle.Render("↑/↓: Navigate   SPACE: Toggle   A: Select All   N: Deselect All")))
	b.WriteString("\n")
	b.WriteString(m.center(helpStyle.Render("ENTER: Confirm and Install   Q/ESC: Cancel")))
	b.WriteString("\n")
	b.WriteString(m.center(fmt.Sprintf("Selected: %d/%d", m.selectedCount(), len(m.components))))

	return b.String()
}

func (m Model) renderItem(it displayItem) string {
	if it.kind == kindCategory {
		return categoryStyle.Render(categoryLine(it.category, m.width))
	}
	c := m.components[it.index]
	line := componentLine(c, m.width)
	if it.index == m.cursor {
		// Current row is emphasized across its full width, selected or not.
		return currentStyle.Width(m.width - 1).Render(line)
	}
	if c.Selected {
		return selectedStyle.Render(line)
	}
	return line
}

func (m Model) center(s string) string {
	return lipgloss.PlaceHorizontal(m.width-1, lipgloss.Center, s)
}

func (m Model) separator() string {
	if m.width < 2 {
		return ""
	}
	return strings.Repeat("─", m.width-1)
}

func (m Model) selectedCount() int {
	count := 0
	for _, c := range m.components {
		if c.Selected {
			count++
		}
	}
	return count
}

// Cancelled returns true if the user backed out of the menu.
func (m Model) Cancelled() bool { return m.cancelled }

// Confirmed returns true if the user confirmed the selection.
func (m Model) Confirmed() bool { return m.confirmed }

// Result returns the selected slugs in catalog order.
func (m Model) Result() []string {
	return catalog.SelectedSlugs(m.components)
}
