package header

//go:generate go tool mockgen -package hdrmock -destination ../internal/testutil/hdrmock/hdrmock.go github.com/ghettovoice/httphdr/header Grammar,DateFormatter

import (
	"net/http"
	"time"
)

// DateFormatter converts between [time.Time] and the textual HTTP-date.
type DateFormatter interface {
	FormatDate(t time.Time) string
	ParseDate(s string) (time.Time, bool)
}

// RFC1123 is the default [DateFormatter].
// It renders IMF-fixdate ([http.TimeFormat]) in UTC and parses every
// format accepted by [http.ParseTime]: IMF-fixdate, RFC 850 and ANSI C asctime.
type RFC1123 struct{}

func (RFC1123) FormatDate(t time.Time) string { return t.UTC().Format(http.TimeFormat) }

func (RFC1123) ParseDate(s string) (time.Time, bool) {
	t, err := http.ParseTime(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TryParseDate parses an HTTP-date. On failure it returns the zero time and false.
func (u *Utils) TryParseDate(s string) (time.Time, bool) {
	t, ok := u.dates.ParseDate(s)
	if !ok {
		u.log.Debug("invalid date", "value", s)
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as an HTTP-date, optionally enclosed in DQUOTEs.
func (u *Utils) FormatDate(t time.Time, quoted bool) string {
	s := u.dates.FormatDate(t)
	if quoted {
		return `"` + s + `"`
	}
	return s
}

// TryParseDate calls [Utils.TryParseDate] of the default [Utils].
func TryParseDate(s string) (time.Time, bool) { return std.TryParseDate(s) }

// FormatDate calls [Utils.FormatDate] of the default [Utils].
func FormatDate(t time.Time, quoted bool) string { return std.FormatDate(t, quoted) }
