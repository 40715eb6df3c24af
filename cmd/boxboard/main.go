// cmd/boxboard/main.go
//
// This is the entry point for boxboard.
// When you run `boxboard` from any directory, this is what executes.
//
// Flow:
// 1. Seed the .boxboard folder (logs, presets, config.yaml)
// 2. Build the application model
// 3. Hand it to bubbletea and block until the user quits

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/boxboard/internal/config"
	"github.com/kingrea/boxboard/internal/tui"
)

func main() {
	// The current working directory is the "project" the board runs in
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitBoxboardDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .boxboard directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting boxboard: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
