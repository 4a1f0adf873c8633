package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyTag     = "tag"
	KeyChannel = "channel"
	KeyReason  = "reason"
	KeyPage    = "page"
	KeyAnchor  = "anchor"
	KeyMedia   = "utm_media"
	KeySource  = "utm_source"
	KeyPath    = "path"
	KeySetting = "setting"
	KeyCount   = "count"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Tag(t string) slog.Attr       { return slog.String(KeyTag, t) }
func Channel(c string) slog.Attr   { return slog.String(KeyChannel, c) }
func Reason(r string) slog.Attr    { return slog.String(KeyReason, r) }
func Page(p string) slog.Attr      { return slog.String(KeyPage, p) }
func Anchor(a string) slog.Attr    { return slog.String(KeyAnchor, a) }
func Media(m string) slog.Attr     { return slog.String(KeyMedia, m) }
func Source(s string) slog.Attr    { return slog.String(KeySource, s) }
func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func Setting(key string) slog.Attr { return slog.String(KeySetting, key) }
func Count(n int) slog.Attr        { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
