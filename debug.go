package imagedit

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug tracing. When enabled, gesture
// transitions, commands and snapshots are logged to stderr.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// debugf prints a trace line to stderr when debug mode is on.
func (s *Session) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[imagedit] "+format+"\n", args...)
}
