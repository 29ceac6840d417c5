package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/grammar"
)

// NextNonEmptyIndex skips optional whitespace at s[start:] and, if a comma follows,
// the comma and the whitespace after it.
// With skipEmpty, any further run of commas and whitespace is skipped as well,
// so "a,, ,b" is treated as "a,b".
//
// It returns the index of the next list element and whether a separator was consumed.
// The start must not exceed len(s).
func NextNonEmptyIndex(s string, start int, skipEmpty bool) (next int, separatorFound bool) {
	cur := start + grammar.WhitespaceLen(s, start)
	if cur == len(s) || s[cur] != ',' {
		return cur, false
	}

	cur++
	cur += grammar.WhitespaceLen(s, cur)
	if skipEmpty {
		for cur < len(s) && s[cur] == ',' {
			cur++
			cur += grammar.WhitespaceLen(s, cur)
		}
	}
	return cur, true
}

// ParseTokenList parses a comma-separated list of tokens, such as the value
// of the Vary or Allow fields. Empty elements are skipped.
// An empty s yields a nil slice.
func (u *Utils) ParseTokenList(s string) ([]string, error) {
	var toks []string
	i, _ := NextNonEmptyIndex(s, 0, true)
	for i < len(s) {
		n := u.grammar.TokenLen(s, i)
		if n == 0 {
			u.log.Debug("invalid token list", "value", s, "pos", i)
			return nil, errtrace.Wrap(errorutil.NewInvalidFormatError("invalid token at %d in %q", i, s))
		}
		toks = append(toks, s[i:i+n])

		var sep bool
		if i, sep = NextNonEmptyIndex(s, i+n, true); !sep && i < len(s) {
			u.log.Debug("invalid token list", "value", s, "pos", i)
			return nil, errtrace.Wrap(errorutil.NewInvalidFormatError("expected comma at %d in %q", i, s))
		}
	}
	return toks, nil
}

// ParseTokenList calls [Utils.ParseTokenList] of the default [Utils].
func ParseTokenList(s string) ([]string, error) {
	return errtrace.Wrap2(std.ParseTokenList(s))
}
