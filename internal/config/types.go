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

package config

// Config is the top-level printforge configuration (config.yaml).
type Config struct {
	Version   int             `yaml:"version"`
	Installer InstallerConfig `yaml:"installer"`
	UI        UIConfig        `yaml:"ui"`
}

// InstallerConfig holds settings for the component install handoff.
type InstallerConfig struct {
	// Script overrides the path of the install script.
	Script string `yaml:"script,omitempty"`
	// ExtraArgs are passed to the install script before the component list.
	ExtraArgs []string `yaml:"extra_args,omitempty"`
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}
