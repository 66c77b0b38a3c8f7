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
	"fmt"
	"os"

	"github.com/printforge/printforge/internal/config"
	"github.com/printforge/printforge/internal/platform"
	"github.com/printforge/printforge/internal/ui"
	"github.com/spf13/cobra"
)

// Version is set by ldflags at build time.
var Version = "1.4.2"

var rootCmd = &cobra.Command{
	Use:   "printforge",
	Short: "3D Printer Component Installer",
	Long:  "PrintForge – Pick and install printer software components from an interactive menu",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.Flags().GetBool("verbose")
		ui.Verbose = v

		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor || config.LoadOrDefault().UI.NoColor {
			ui.DisableColors()
		}

		// Seed config.yaml on first run
		if err := config.WriteDefaults(); err != nil {
			ui.Debugf("Could not write default config: %v", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Running the bare binary opens the selection menu
		return runInstall(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("printforge version %s (%s)\n", Version, platform.GetPlatform())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringSliceP("components", "c", nil, "Install these components without the menu")
	rootCmd.PersistentFlags().BoolP("dry-run", "d", false, "Show what would be installed without installing")
	rootCmd.PersistentFlags().StringP("script", "s", "", "Path to the install script")

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("printforge version {{.Version}}\n")
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() {
	config.EnsureDirs()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
