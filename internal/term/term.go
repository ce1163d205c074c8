// Package term holds the ANSI colors used by logging and the banner.
// [Configure] sets them once at startup; while colors are off every color is
// the empty string and [Paint] returns its input unchanged.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/picnamer/internal/config"
)

// Log level and banner colors. Empty when colors are disabled.
var (
	Red     string // ERROR
	Green   string // SUCCESS
	Yellow  string // WARN
	Blue    string // INFO
	Cyan    string // DEBUG
	Magenta string // banner
	NC      string // reset
)

// Configure turns colors on or off for mode.
func Configure(mode config.ColorMode) {
	if !colorsWanted(mode) {
		Red, Green, Yellow, Blue, Cyan, Magenta, NC = "", "", "", "", "", "", ""
		return
	}
	Red, Green, Yellow = "\033[1;91m", "\033[1;92m", "\033[1;93m"
	Blue, Cyan, Magenta = "\033[1;94m", "\033[1;96m", "\033[1;95m"
	NC = "\033[0m"
}

// Paint wraps s in color and a reset when colors are enabled.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + NC
}

// colorsWanted resolves auto mode from stdout being a TTY, NO_COLOR
// (https://no-color.org) and TERM=dumb.
func colorsWanted(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return stdoutIsTTY() &&
		os.Getenv("NO_COLOR") == "" &&
		strings.ToLower(os.Getenv("TERM")) != "dumb"
}

func stdoutIsTTY() bool {
	fi, err := os.Stdout.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
