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

// Package platform provides OS and architecture detection.
package platform

import "runtime"

// DetectOS returns the current operating system as a normalized string.
func DetectOS() string {
	switch runtime.GOOS {
	case "darwin":
		return "macos"
	case "linux":
		return "linux"
	case "windows":
		return "windows"
	default:
		return "unknown"
	}
}

// DetectArch returns the current architecture as a normalized string.
func DetectArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "arm64"
	case "arm":
		return "armv7"
	case "mips", "mipsle":
		// K-series printer mainboards run 32-bit MIPS.
		return "mips32"
	default:
		return runtime.GOARCH
	}
}

// GetPlatform returns "os-arch" (e.g. "linux-mips32").
func GetPlatform() string {
	return DetectOS() + "-" + DetectArch()
}

// IsPrinterHost reports whether this looks like a printer mainboard
// rather than a desktop machine.
func IsPrinterHost() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	switch runtime.GOARCH {
	case "mips", "mipsle", "arm", "arm64":
		return true
	}
	return false
}
