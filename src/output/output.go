// Package output renders command results for the terminal.
package output

import "os"

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// StatusIcon returns a colored status icon.
func StatusIcon(ok bool, color bool) string {
	switch {
	case ok && color:
		return colorGreen + "✓" + colorReset
	case ok:
		return "✓"
	case color:
		return colorRed + "✗" + colorReset
	default:
		return "✗"
	}
}

// Dimmed returns dimmed text if color is enabled.
func Dimmed(text string, color bool) string {
	if !color {
		return text
	}
	return colorGray + text + colorReset
}

// Bold returns bold text if color is enabled.
func Bold(text string, color bool) string {
	if !color {
		return text
	}
	return colorBold + text + colorReset
}

// Warning returns yellow text if color is enabled.
func Warning(text string, color bool) string {
	if !color {
		return text
	}
	return colorYellow + text + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// IsCI reports whether we are running inside a CI pipeline.
func IsCI() bool {
	return os.Getenv("CI") == "true"
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}
