package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRoot   = "root"
	KeyPath   = "path"
	KeyFile   = "file"
	KeyTarget = "target"
	KeyCount  = "count"
	KeyIssues = "issues"
	KeyMode   = "mode"
	KeyError  = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Root(r string) slog.Attr   { return slog.String(KeyRoot, r) }
func Path(p string) slog.Attr   { return slog.String(KeyPath, p) }
func File(f string) slog.Attr   { return slog.String(KeyFile, f) }
func Target(t string) slog.Attr { return slog.String(KeyTarget, t) }
func Count(n int) slog.Attr     { return slog.Int(KeyCount, n) }
func Issues(n int) slog.Attr    { return slog.Int(KeyIssues, n) }
func Mode(m string) slog.Attr   { return slog.String(KeyMode, m) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
