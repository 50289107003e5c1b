// Package tui provides the terminal user interface for ldot.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
//   - Text prompts for generating stack files (using survey)
package tui
