// Package grammar implements the RFC 9110 productions used by header field values.
//
// Every scanner is a single forward pass over the input driven by a byte class table.
package grammar

import (
	"strings"

	"github.com/ghettovoice/httphdr/internal/util"
)

type charClass uint8

const (
	cTchar      charClass = 1 << iota // tchar
	cQdtext                           // qdtext
	cQuotedPair                       // HTAB / SP / VCHAR / obs-text after a backslash
)

var byteClass [256]charClass

func init() {
	for i := range len(byteClass) {
		b := byte(i)
		var c charClass
		if ('0' <= b && b <= '9') || ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z') ||
			strings.IndexByte("!#$%&'*+-.^_`|~", b) >= 0 {
			c |= cTchar
		}
		if b == '\t' || b == ' ' || b == 0x21 || (0x23 <= b && b <= 0x5B) || (0x5D <= b && b <= 0x7E) || b >= 0x80 {
			c |= cQdtext
		}
		if b == '\t' || (0x20 <= b && b <= 0x7E) || b >= 0x80 {
			c |= cQuotedPair
		}
		byteClass[i] = c
	}
}

// TokenLen returns the length of the token that starts at s[start].
// Zero means there is no token at start.
func TokenLen(s string, start int) int {
	if start < 0 || start >= len(s) {
		return 0
	}
	i := start
	for i < len(s) && byteClass[s[i]]&cTchar != 0 {
		i++
	}
	return i - start
}

// QuotedStringLen returns the length of the quoted-string that starts at s[start].
// The ok result reports whether a complete quoted-string, closing DQUOTE included, was matched.
// On failure the length is zero.
func QuotedStringLen(s string, start int) (n int, ok bool) {
	if start < 0 || start >= len(s) || s[start] != '"' {
		return 0, false
	}
	for i := start + 1; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			return i + 1 - start, true
		case c == '\\':
			if i+1 == len(s) || byteClass[s[i+1]]&cQuotedPair == 0 {
				return 0, false
			}
			i++
		case byteClass[c]&cQdtext == 0:
			return 0, false
		}
	}
	return 0, false
}

// WhitespaceLen returns the number of whitespace bytes at s[start:].
// Besides SP and HTAB, an obs-fold (CRLF followed by SP or HTAB) counts as whitespace.
func WhitespaceLen(s string, start int) int {
	i := start
	for i < len(s) {
		switch c := s[i]; {
		case c == ' ' || c == '\t':
			i++
		case c == '\r' && i+2 < len(s) && s[i+1] == '\n' && (s[i+2] == ' ' || s[i+2] == '\t'):
			i += 3
		default:
			return i - start
		}
	}
	return i - start
}

// Quote renders s as a quoted-string, escaping DQUOTE and backslash.
func Quote(s string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}
