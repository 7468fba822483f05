package iterm2

import (
	"os"
	"strconv"
	"strings"
)

// Detect returns true if the current environment likely supports the
// iTerm2 inline-image protocol. MDV_IMAGES=1/0 overrides detection either
// way; otherwise known terminal identifiers are checked. Detection is
// best-effort: a false negative costs inline images, a false positive
// costs garbled escape bytes, so the known-terminal list stays narrow.
func Detect() bool {
	switch os.Getenv("MDV_IMAGES") {
	case "0":
		return false
	case "1":
		return true
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "mintty", "vscode", "rio":
		return true
	}
	// LC_TERMINAL survives ssh where TERM_PROGRAM does not.
	if os.Getenv("LC_TERMINAL") == "iTerm2" {
		return true
	}
	// Konsole speaks the protocol since 22.04.
	if v := os.Getenv("KONSOLE_VERSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 220400 {
			return true
		}
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "wezterm") {
		return true
	}
	return false
}
