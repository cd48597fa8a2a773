// Package logging builds log/slog loggers from configuration. Settings can be read
// through a tree.View, so each subsystem section inherits the application's log level
// unless it overrides it.
package logging
