// Package logging wraps log/slog with the handlers and attribute
// helpers shared by every marquee component. Console output favors a
// compact human-readable line format; JSON output is stable for log
// shipping.
package logging
