package header

import (
	"math"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

const qualityName = "q"

// Quality is an optional quality value, the "q" parameter (RFC 9110 Section 12.4.2).
type Quality struct {
	Value float64
	Set   bool
}

// NoQuality is the unset quality value.
var NoQuality Quality

// Q returns a set quality value.
func Q(v float64) Quality { return Quality{Value: v, Set: true} }

func (q Quality) String() string {
	if !q.Set {
		return ""
	}
	return FormatQuality(q.Value)
}

// GetQuality returns the value of the "q" parameter.
// A missing or malformed parameter yields [NoQuality].
// Only digits and a single '.' are accepted, values above 1 are returned as is.
func GetQuality(params ParamFinder) Quality {
	p := params.Find(qualityName)
	if p == nil {
		return NoQuality
	}
	v, ok := parseQuality(p.Value)
	if !ok {
		return NoQuality
	}
	return Q(v)
}

func parseQuality(s string) (float64, bool) {
	var digits, dots int
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			digits++
		case c == '.':
			if dots++; dots > 1 {
				return 0, false
			}
		default:
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SetQuality sets, updates or removes the "q" parameter.
//
// An unset q removes the parameter. Otherwise q.Value must be within [0, 1],
// else an error wrapping [ErrOutOfRange] is returned and params is left untouched.
// An existing parameter keeps its position, a new one is appended.
func SetQuality(params ParamList, q Quality) error {
	p := params.Find(qualityName)
	if !q.Set {
		if p != nil {
			params.Remove(p)
		}
		return nil
	}

	if math.IsNaN(q.Value) || q.Value < 0 || q.Value > 1 {
		return errtrace.Wrap(errorutil.NewOutOfRangeError("quality %v is outside of [0, 1]", q.Value))
	}

	v := FormatQuality(q.Value)
	if p != nil {
		p.Value = v
	} else {
		params.Append(qualityName, v)
	}
	return nil
}

// FormatQuality renders v with one integer digit and one to three fractional digits,
// e.g. 1 -> "1.0", 0.5 -> "0.5", 0.1234 -> "0.123".
func FormatQuality(v float64) string {
	if v == 0 {
		// drops the sign of negative zero
		v = 0
	}
	s := strings.TrimRight(strconv.FormatFloat(v, 'f', 3, 64), "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
