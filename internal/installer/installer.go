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

// Package installer hands the selected components to the install script.
package installer

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/printforge/printforge/internal/config"
	"github.com/printforge/printforge/internal/ui"
)

// DefaultScript is where the firmware ships the component install script.
const DefaultScript = "/usr/data/printforge/scripts/install.sh"

// Options holds everything needed for the install handoff.
type Options struct {
	Script     string   // install script path
	Components []string // selected component slugs, catalog order
	ExtraArgs  []string // config-provided args placed before the component list
	DryRun     bool
}

// Resolve picks the install script path: flag wins over config, config
// over the built-in default.
func Resolve(flagPath string, cfg *config.Config) string {
	if flagPath != "" {
		return flagPath
	}
	if cfg != nil && cfg.Installer.Script != "" {
		return cfg.Installer.Script
	}
	return DefaultScript
}

// Args builds the component argv for the install script, one element per
// slug after the --components flag.
func Args(components []string) []string {
	return append([]string{"--components"}, components...)
}

// CheckRoot verifies the process runs with root privileges.
func CheckRoot() error {
	if os.Geteuid() != 0 {
		return errors.New("installation must be run as root (use sudo)")
	}
	return nil
}

// Run executes the install script with the selected components and
// returns its exit code. A dry run stops before any privilege or script
// checks.
func Run(opts Options) (int, error) {
	if opts.DryRun {
		fmt.Println("Dry run - not installing.")
		return 0, nil
	}

	if err := CheckRoot(); err != nil {
		return 1, err
	}
	if _, err := os.Stat(opts.Script); err != nil {
		return 1, fmt.Errorf("install script not found at %s: %w", opts.Script, err)
	}

	args := append(append([]string{}, opts.ExtraArgs...), Args(opts.Components)...)
	ui.Debugf("Install handoff: %s %s", opts.Script, strings.Join(args, " "))

	// Run with inherited stdio
	c := exec.Command(opts.Script, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			return 1, fmt.Errorf("running install script: %w", err)
		}
	}
	return exitCode, nil
}
