package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/grammar"
)

// Grammar scans RFC 9110 productions.
// Both methods return the number of bytes of the production starting at s[start],
// zero if there is none.
type Grammar interface {
	TokenLen(s string, start int) int
	// QuotedStringLen also reports whether a complete quoted-string was parsed.
	QuotedStringLen(s string, start int) (n int, ok bool)
}

// RFC9110Grammar is the default [Grammar] for the rules of RFC 9110 Section 5.6.
// Its scans are linear in the length of the input.
type RFC9110Grammar struct{}

func (RFC9110Grammar) TokenLen(s string, start int) int { return grammar.TokenLen(s, start) }

func (RFC9110Grammar) QuotedStringLen(s string, start int) (int, bool) {
	return grammar.QuotedStringLen(s, start)
}

// CheckValidToken returns an error wrapping [ErrInvalidArgument] if value is empty
// and an error wrapping [ErrInvalidFormat] if value is not a single token.
// The paramName is used in error messages.
func (u *Utils) CheckValidToken(value, paramName string) error {
	if value == "" {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("%s: empty string is not allowed", paramName))
	}
	if n := u.grammar.TokenLen(value, 0); n != len(value) {
		u.log.Debug("invalid token", "param", paramName, "value", value, "matched", n)
		return errtrace.Wrap(errorutil.NewInvalidFormatError("%s: invalid token %q", paramName, value))
	}
	return nil
}

// CheckValidQuotedString returns an error wrapping [ErrInvalidArgument] if value is empty
// and an error wrapping [ErrInvalidFormat] if value is not a single quoted-string.
// No bytes are allowed after the closing DQUOTE.
func (u *Utils) CheckValidQuotedString(value, paramName string) error {
	if value == "" {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("%s: empty string is not allowed", paramName))
	}
	if n, ok := u.grammar.QuotedStringLen(value, 0); !ok || n != len(value) {
		u.log.Debug("invalid quoted string", "param", paramName, "value", value, "matched", n, "parsed", ok)
		return errtrace.Wrap(errorutil.NewInvalidFormatError("%s: invalid quoted string %q", paramName, value))
	}
	return nil
}

// TokenLen returns the length of the token at s[start], zero if there is none.
func (u *Utils) TokenLen(s string, start int) int { return u.grammar.TokenLen(s, start) }

// QuotedStringLen returns the length of the quoted-string at s[start]
// and whether it is complete.
func (u *Utils) QuotedStringLen(s string, start int) (int, bool) {
	return u.grammar.QuotedStringLen(s, start)
}

func (u *Utils) IsToken(s string) bool {
	return s != "" && u.grammar.TokenLen(s, 0) == len(s)
}

func (u *Utils) IsQuotedString(s string) bool {
	if s == "" {
		return false
	}
	n, ok := u.grammar.QuotedStringLen(s, 0)
	return ok && n == len(s)
}

// CheckValidToken calls [Utils.CheckValidToken] of the default [Utils].
func CheckValidToken(value, paramName string) error {
	return errtrace.Wrap(std.CheckValidToken(value, paramName))
}

// CheckValidQuotedString calls [Utils.CheckValidQuotedString] of the default [Utils].
func CheckValidQuotedString(value, paramName string) error {
	return errtrace.Wrap(std.CheckValidQuotedString(value, paramName))
}

// IsToken reports whether s is a single RFC 9110 token.
func IsToken(s string) bool { return std.IsToken(s) }

// IsQuotedString reports whether s is a single RFC 9110 quoted-string.
func IsQuotedString(s string) bool { return std.IsQuotedString(s) }

// RemoveQuotes strips one leading and one trailing DQUOTE if s has both.
// Escapes inside are left as is.
func RemoveQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
