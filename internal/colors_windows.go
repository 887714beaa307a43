//go:build windows

package internal

import "fmt"

// Emph highlights names and values in CLI output.
var Emph = func(a ...interface{}) string {
	return fmt.Sprint(a...)
}

// Warn marks warnings in CLI output.
var Warn = func(a ...interface{}) string {
	return fmt.Sprint(a...)
}
