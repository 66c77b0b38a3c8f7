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

	"github.com/printforge/printforge/internal/catalog"
	"github.com/printforge/printforge/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available components",
	Run: func(cmd *cobra.Command, args []string) {
		ui.LogoSmall()
		fmt.Println()
		ui.Cecho("Available Components:", ui.Cyan)

		category := ""
		for _, c := range catalog.Defaults() {
			if c.Category != category {
				category = c.Category
				fmt.Println()
				ui.Cecho(category, ui.Cyan)
			}

			marker := ""
			if c.Selected {
				marker = ui.Green + " [default]" + ui.NC
			}
			fmt.Printf("  %-15s %s%s%s%s\n", c.Slug, ui.Dim, c.Description, ui.NC, marker)
		}

		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  printforge                    Open the interactive selection menu")
		fmt.Println("  printforge install -c <slugs> Install specific components directly")
		fmt.Println("  printforge install --dry-run  Preview the install without running it")
		fmt.Println("  printforge version            Print version and platform")
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
