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

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/printforge/printforge/internal/catalog"
	"github.com/printforge/printforge/internal/config"
	"github.com/printforge/printforge/internal/installer"
	"github.com/printforge/printforge/internal/platform"
	"github.com/printforge/printforge/internal/selector"
	"github.com/printforge/printforge/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Select and install printer components",
	Long: `Open the interactive selection menu and hand the chosen components
to the install script. With --components the menu is skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd)
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}

// runInstall drives the selection menu, or takes --components directly,
// and hands the result to the install script.
func runInstall(cmd *cobra.Command) error {
	components, _ := cmd.Flags().GetStringSlice("components")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	script, _ := cmd.Flags().GetString("script")

	var selected []string
	if len(components) > 0 {
		if err := catalog.Validate(components); err != nil {
			return err
		}
		selected = components
	} else {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: Interactive mode requires a terminal.")
			fmt.Fprintln(os.Stderr, "Use 'printforge list' to see available components, or pass --components.")
			os.Exit(1)
		}

		var err error
		selected, err = selector.Run(catalog.Defaults())
		if errors.Is(err, selector.ErrCancelled) {
			fmt.Println()
			fmt.Println("Installation cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if len(selected) == 0 {
		fmt.Println("No components selected.")
		return nil
	}

	fmt.Printf("\nSelected components: %s\n", strings.Join(selected, ", "))

	cfg := config.LoadOrDefault()
	opts := installer.Options{
		Script:     installer.Resolve(script, cfg),
		Components: selected,
		ExtraArgs:  cfg.Installer.ExtraArgs,
		DryRun:     dryRun,
	}

	if !dryRun && !platform.IsPrinterHost() {
		ui.Warn("This does not look like a printer host. The install script may fail.")
	}

	code, err := installer.Run(opts)
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}
