package header

import (
	"strconv"

	"github.com/ghettovoice/httphdr/internal/constraints"
)

// ParseInt32 parses s as a non-negative decimal int32.
// Only ASCII digits are accepted: no sign, no whitespace, no group separators.
// On failure it returns 0, false.
func ParseInt32(s string) (int32, bool) {
	if !isDigits(s) {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// ParseInt64 is like [ParseInt32] but for int64.
func ParseInt64(s string) (int64, bool) {
	if !isDigits(s) {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// ParseInt32View parses the digits in the window of v without copying it.
//
// An empty buffer or window yields 0, false. Unlike [ParseInt32] the result is
// not width-checked and overflow wraps. A non-digit inside the window stops
// the scan and yields 0, true.
func ParseInt32View(v StringView) (int32, bool) { return parseView[int32](v) }

// ParseInt64View is like [ParseInt32View] but for int64.
func ParseInt64View(v StringView) (int64, bool) { return parseView[int64](v) }

func parseView[T constraints.FixedInt](v StringView) (T, bool) {
	if v.Buffer == "" || v.Length == 0 || !v.IsValid() {
		return 0, false
	}

	var res T
	i, end := v.Offset, v.Offset+v.Length
	for ; i < end; i++ {
		d := v.Buffer[i] - '0'
		if d > 9 {
			break
		}
		res = res*10 + T(d)
	}
	if i != end {
		return 0, true
	}
	return res, true
}

// FormatInt64 renders v in decimal, with a leading '-' for negative values.
func FormatInt64(v int64) string { return strconv.FormatInt(v, 10) }
