package header

import (
	"math"
	"time"

	"github.com/ghettovoice/httphdr/internal/util"
)

const maxSeconds = math.MaxInt64 / int64(time.Second)

// ParseSeconds looks for name followed by "=<digits>" in the raw field values,
// e.g. "max-age" in "public, max-age=30", and returns the digits as seconds.
//
// The name is matched case-insensitively anywhere in a value, and spaces
// are allowed around '='. Only the first value that contains name is
// examined: if it is not followed by '=' and at least one digit, the scan
// stops and reports false. Values that do not fit [time.Duration] are
// reported as not found.
func ParseSeconds(values []string, name string) (time.Duration, bool) {
	for _, v := range values {
		i := util.IndexFold(v, name)
		if i < 0 {
			continue
		}

		secs, ok := parseSecondsAt(v, i+len(name))
		if !ok || secs < 0 || secs > maxSeconds {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	return 0, false
}

func parseSecondsAt(s string, i int) (int64, bool) {
	var eq bool
	for ; i < len(s); i++ {
		if s[i] == '=' {
			eq = true
		} else if s[i] != ' ' {
			break
		}
	}
	if !eq {
		return 0, false
	}

	end := i
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == i {
		return 0, false
	}
	return ParseInt64View(StringView{s, i, end - i})
}

// Contains reports whether any of the raw field values contains name, ignoring case.
func Contains(values []string, name string) bool {
	for _, v := range values {
		if util.ContainsFold(v, name) {
			return true
		}
	}
	return false
}
