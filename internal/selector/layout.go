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

package selector

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/printforge/printforge/internal/catalog"
)

// reservedRows is the screen space taken by the header (title, subtitle,
// separator) and the footer (separator, instructions, count) plus the
// blank line between list and footer.
const reservedRows = 8

// minDescWidth is the smallest description budget worth rendering; below
// that the row shows checkbox and name only.
const minDescWidth = 10

type itemKind int

const (
	kindCategory itemKind = iota
	kindComponent
)

// displayItem is one rendered row of the list area: either a category
// header or a component.
type displayItem struct {
	kind     itemKind
	category string // set for kindCategory
	index    int    // component index, set for kindComponent
}

// visibleRows returns how many list rows fit in a terminal of the given
// height, never less than one.
func visibleRows(height int) int {
	rows := height - reservedRows
	if rows < 1 {
		return 1
	}
	return rows
}

// buildItems flattens the component list into display rows, inserting a
// category header wherever the category differs from the previous
// component's. Categories are not deduplicated: a category returning
// after an interruption gets a second header.
func buildItems(components []catalog.Component) []displayItem {
	var items []displayItem
	last := ""
	for i, c := range components {
		if i == 0 || c.Category != last {
			items = append(items, displayItem{kind: kindCategory, category: c.Category})
			last = c.Category
		}
		items = append(items, displayItem{kind: kindComponent, index: i})
	}
	return items
}

// currentItem returns the display index of the row holding the component
// at the given cursor position.
func currentItem(items []displayItem, cursor int) int {
	for i, it := range items {
		if it.kind == kindComponent && it.index == cursor {
			return i
		}
	}
	return 0
}

// ensureVisible returns the smallest scroll adjustment that brings the
// current display row into a viewport of the given size. The offset is
// unchanged when the row is already visible.
func ensureVisible(current, offset, visible int) int {
	if current < offset {
		return current
	}
	if current >= offset+visible {
		return current - visible + 1
	}
	return offset
}

// componentLine renders a component row: checkbox, name, and as much of
// the description as the width allows. The description is dropped
// entirely when its budget is too small and truncated with "..." when it
// does not fit. The line never reaches the last column.
func componentLine(c catalog.Component, width int) string {
	check := "[ ]"
	if c.Selected {
		check = "[X]"
	}
	line := fmt.Sprintf("  %s %s", check, c.Name)
	budget := width - runewidth.StringWidth(line) - 5
	if budget > minDescWidth {
		line += " - " + runewidth.Truncate(c.Description, budget, "...")
	}
	return runewidth.Truncate(line, width-1, "")
}

// categoryLine renders a category header row.
func categoryLine(category string, width int) string {
	text := fmt.Sprintf("── %s ──", category)
	return "  " + runewidth.Truncate(text, width-3, "")
}
