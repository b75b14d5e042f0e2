// Package ui provides color output helpers for the querylens CLI.
// Colors are disabled automatically when stdout is not a terminal and
// can be forced off with --no-color.
package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	green  = color.New(color.FgGreen)
	bold   = color.New(color.Bold)
)

// DisableColor turns off all color output.
func DisableColor() {
	color.NoColor = true
}

// Errorf prints an error message to stderr.
func Errorf(format string, args ...any) {
	red.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// Warnf prints a warning message to stderr.
func Warnf(format string, args ...any) {
	yellow.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// Successf prints a success message to stdout.
func Successf(format string, args ...any) {
	green.Printf(format+"\n", args...)
}

// Headerf prints a bold header line to stdout.
func Headerf(format string, args ...any) {
	bold.Printf(format+"\n", args...)
}

// Printf prints a plain line to stdout.
func Printf(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
