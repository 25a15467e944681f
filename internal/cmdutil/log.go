// internal/cmdutil/log.go
package cmdutil

import (
	"drach/internal/logging"
)

// Warnf logs a warning unless quiet is set.
func Warnf(l *logging.Logger, quiet bool, format string, a ...any) {
	if quiet || l == nil {
		return
	}
	l.Warn().Msgf(format, a...)
}
