package webhook

import "log/slog"

// ListenerOption defines a function type used to configure a Listener.
type ListenerOption func(*Listener)

// WithLogger sets a custom slog.Logger for the Listener.
func WithLogger(logger *slog.Logger) ListenerOption {
	return func(l *Listener) {
		l.logger = logger
	}
}

// WithPath overrides the delivery route. The default is DefaultPath.
func WithPath(path string) ListenerOption {
	return func(l *Listener) {
		l.path = path
	}
}

// WithArchiver attaches a best-effort archiver for raw payloads.
func WithArchiver(archiver Archiver) ListenerOption {
	return func(l *Listener) {
		l.archiver = archiver
	}
}
