//go:build !windows

package internal

import "github.com/fatih/color"

// Emph highlights names and values in CLI output.
var Emph = color.New(color.FgBlue, color.Bold).SprintFunc()

// Warn marks warnings in CLI output.
var Warn = color.New(color.FgYellow, color.Bold).SprintFunc()
