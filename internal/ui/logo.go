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

package ui

import "fmt"

// LogoSmall prints the PrintForge ASCII logo.
func LogoSmall() {
	fmt.Print(Cyan)
	fmt.Println("  ____       _       _   _____                    ")
	fmt.Println(" |  _ \\ _ __(_)_ __ | |_|  ___|__  _ __ __ _  ___ ")
	fmt.Println(" | |_) | '__| | '_ \\| __| |_ / _ \\| '__/ _` |/ _ \\")
	fmt.Println(" |  __/| |  | | | | | |_|  _| (_) | | | (_| |  __/")
	fmt.Println(" |_|   |_|  |_|_| |_|\\__|_|  \\___/|_|  \\__, |\\___|")
	fmt.Println("                                       |___/      ")
	fmt.Print(NC)
	fmt.Printf("%s          by PrintForge (https://github.com/printforge)%s\n", Dim, NC)
}

// Logo prints the full PrintForge logo with tagline.
func Logo() {
	LogoSmall()
	fmt.Println()
	fmt.Printf("%s3D Printer Component Installer%s\n", Dim, NC)
}
