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

// Package catalog defines the installable printer software components.
package catalog

import "fmt"

// Component is one installable piece of printer software.
type Component struct {
	Name        string // Display name
	Slug        string // Identifier passed to the install script
	Description string
	Category    string
	Selected    bool // Pre-selected in the interactive menu
}

// definitions is the component catalog. Order is significant: the menu,
// the list output, and the install handoff all follow it, and components
// sharing a category must sit next to each other to group under one header.
var definitions = []Component{
	{
		Name:        "Guppy Screen",
		Slug:        "guppyscreen",
		Description: "Alternative touchscreen UI for the printer display",
		Category:    "Display & Interface",
		Selected:    true,
	},
	{
		Name:        "Mainsail",
		Slug:        "mainsail",
		Description: "Modern web interface for Klipper",
		Category:    "Display & Interface",
		Selected:    true,
	},
	{
		Name:        "uStreamer",
		Slug:        "ustreamer",
		Description: "Lightweight MJPEG streaming server for camera",
		Category:    "Camera & Streaming",
		Selected:    true,
	},
	{
		Name:        "Timelapse (MJPEG)",
		Slug:        "timelapse",
		Description: "Print timelapse recording with MJPEG encoder",
		Category:    "Camera & Streaming",
		Selected:    true,
	},
	{
		Name:        "Timelapse (H264)",
		Slug:        "timelapseh264",
		Description: "Print timelapse recording with H264 encoder",
		Category:    "Camera & Streaming",
		Selected:    false,
	},
	{
		Name:        "All Macros & Configs",
		Slug:        "macros",
		Description: "Complete set of macros, start_print, and overrides",
		Category:    "Macros & Configuration",
		Selected:    true,
	},
	{
		Name:        "Macros Only",
		Slug:        "macros_only",
		Description: "Install only macros.cfg",
		Category:    "Macros & Configuration",
		Selected:    false,
	},
	{
		Name:        "Start Print Only",
		Slug:        "start_print",
		Description: "Install only start_print.cfg",
		Category:    "Macros & Configuration",
		Selected:    false,
	},
	{
		Name:        "Overrides Only",
		Slug:        "overrides",
		Description: "Install only overrides.cfg",
		Category:    "Macros & Configuration",
		Selected:    false,
	},
	{
		Name:        "KAMP",
		Slug:        "kamp",
		Description: "Klipper Adaptive Meshing & Purging",
		Category:    "Macros & Configuration",
		Selected:    false,
	},
	{
		Name:        "Resonance Tester",
		Slug:        "resonance",
		Description: "Custom resonance testing for input shaping",
		Category:    "Calibration & Tuning",
		Selected:    true,
	},
	{
		Name:        "ShakeTune",
		Slug:        "shaketune",
		Description: "Advanced input shaper analysis and tuning",
		Category:    "Calibration & Tuning",
		Selected:    true,
	},
	{
		Name:        "Cleanup Service",
		Slug:        "cleanup",
		Description: "Automatic cleanup of old printer backups",
		Category:    "System Services",
		Selected:    true,
	},
}

// Defaults returns a fresh working copy of the catalog with default
// selections applied. Callers own the copy and may toggle it freely.
func Defaults() []Component {
	components := make([]Component, len(definitions))
	copy(components, definitions)
	return components
}

// Slugs returns every component slug in catalog order.
func Slugs() []string {
	slugs := make([]string, len(definitions))
	for i, c := range definitions {
		slugs[i] = c.Slug
	}
	return slugs
}

// Find returns the component with the given slug.
func Find(slug string) (Component, bool) {
	for _, c := range definitions {
		if c.Slug == slug {
			return c, true
		}
	}
	return Component{}, false
}

// Validate checks that every slug names a catalog component and that no
// slug repeats.
func Validate(slugs []string) error {
	seen := make(map[string]bool)
	for _, s := range slugs {
		if _, ok := Find(s); !ok {
			return fmt.Errorf("unknown component %q", s)
		}
		if seen[s] {
			return fmt.Errorf("duplicate component %q", s)
		}
		seen[s] = true
	}
	return nil
}

// SelectedSlugs returns the slugs of the selected components, preserving
// the order they appear in.
func SelectedSlugs(components []Component) []string {
	var slugs []string
	for _, c := range components {
		if c.Selected {
			slugs = append(slugs, c.Slug)
		}
	}
	return slugs
}
