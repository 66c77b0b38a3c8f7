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
	"path/filepath"

	"github.com/printforge/printforge/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell autocompletion",
	Long: `Generate autocompletion for your shell.

If no shell is specified, the current shell is detected from $SHELL.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	Run: func(cmd *cobra.Command, args []string) {
		shell := detectShell()
		if len(args) > 0 {
			shell = args[0]
		}

		var err error
		switch shell {
		case "bash":
			err = rootCmd.GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			err = rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			err = rootCmd.GenFishCompletion(os.Stdout, true)
		default:
			ui.Errorf("Unsupported shell: %s (supported: bash, zsh, fish)", shell)
			os.Exit(1)
		}
		if err != nil {
			ui.Errorf("Failed to generate %s completion: %v", shell, err)
			os.Exit(1)
		}

		// Hint goes to stderr so piping to eval stays clean
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintf(os.Stderr, "\n# Add to your shell config: eval \"$(printforge completion %s)\"\n", shell)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// detectShell returns the name of the user's login shell.
func detectShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		switch base := filepath.Base(sh); base {
		case "bash", "zsh", "fish":
			return base
		}
	}
	return "bash"
}
