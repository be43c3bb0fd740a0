// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI sequences for plain (non TUI) output, set by InitializeColors
var Green, Info, Warning, Error, Reset string

// detectTerminalMode asks the terminal for its background colour
func detectTerminalMode() TerminalMode {
	if os.Getenv("NO_COLOR") != "" {
		return TerminalModeUnknown
	}
	if lipgloss.HasDarkBackground() {
		return TerminalModeDark
	}
	return TerminalModeLight
}

// InitializeColors picks the ANSI palette for the current terminal
func InitializeColors() {
	Green, Info, Warning, Error, Reset = GetANSIColors(detectTerminalMode())
}

func GetANSIColors(mode TerminalMode) (success, info, warning, error, reset string) {
	switch mode {
	case TerminalModeUnknown:
		return "", "", "", "", ""
	case TerminalModeLight:
		// darker colours for contrast on light backgrounds
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	default:
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}
