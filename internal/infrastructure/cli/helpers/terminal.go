package helpers

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdout is attached to a terminal and the
// process is not running under CI, so callers can decide whether to animate.
func IsInteractive() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
