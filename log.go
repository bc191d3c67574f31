package aurora

import "log/slog"

var logger = slog.Default().With("component", "aurora")

// SetLogger replaces the logger used for renderer fallbacks, layout warnings
// and debug frame stats. Passing nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l.With("component", "aurora")
}
