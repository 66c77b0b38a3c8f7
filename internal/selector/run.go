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
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/printforge/printforge/internal/catalog"
)

// ErrCancelled is returned by Run when the user backs out of the menu
// without confirming.
var ErrCancelled = errors.New("selection cancelled")

// Run executes the selection menu TUI and returns the chosen slugs in
// catalog order. An empty slice means the user confirmed with nothing
// selected, which is distinct from ErrCancelled. The alternate screen is
// entered on start and restored on every exit path, including interrupts.
func Run(components []catalog.Component) ([]string, error) {
	p := tea.NewProgram(New(components), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("selector error: %w", err)
	}

	sm := finalModel.(Model)
	if sm.Cancelled() || !sm.Confirmed() {
		return nil, ErrCancelled
	}
	return sm.Result(), nil
}
