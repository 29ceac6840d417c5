package grammar_test

import (
	"strings"
	"testing"

	"github.com/ghettovoice/httphdr/internal/grammar"
)

func TestTokenLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		str   string
		start int
		want  int
	}{
		{"empty", "", 0, 0},
		{"start at end", "gzip", 4, 0},
		{"negative start", "gzip", -1, 0},
		{"whole", "gzip", 0, 4},
		{"tchars", "!#$%&'*+-.^_`|~09azAZ", 0, 21},
		{"stops at space", "gz ip", 0, 2},
		{"stops at separator", "text/html", 0, 4},
		{"from offset", "a, deflate;q=1", 3, 7},
		{"no token", `"quoted"`, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.TokenLen(c.str, c.start), c.want; got != want {
				t.Errorf("grammar.TokenLen(%q, %d) = %d, want %d", c.str, c.start, got, want)
			}
		})
	}
}

func TestQuotedStringLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		str    string
		start  int
		wantN  int
		wantOK bool
	}{
		{"empty", "", 0, 0, false},
		{"not quoted", "abc", 0, 0, false},
		{"empty quoted", `""`, 0, 2, true},
		{"simple", `"abc"`, 0, 5, true},
		{"with space", `"a b"`, 0, 5, true},
		{"escaped quote", `"a\"b"`, 0, 6, true},
		{"trailing space", `"abc" `, 0, 5, true},
		{"unterminated", `"abc`, 0, 0, false},
		{"from offset", `x="abc";y`, 2, 5, true},
		{"control char", "\"a\x01b\"", 0, 0, false},
		{"obs-text", "\"\x80\xff\"", 0, 4, true},
		{"escaped control char", "\"a\\\x01\"", 0, 0, false},
		{"escaped backslash at end", `"a\\"`, 0, 5, true},
		{"backslash at end", `"a\`, 0, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			n, ok := grammar.QuotedStringLen(c.str, c.start)
			if n != c.wantN || ok != c.wantOK {
				t.Errorf("grammar.QuotedStringLen(%q, %d) = (%d, %v), want (%d, %v)",
					c.str, c.start, n, ok, c.wantN, c.wantOK)
			}
		})
	}
}

func TestWhitespaceLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		str   string
		start int
		want  int
	}{
		{"empty", "", 0, 0},
		{"none", "a b", 0, 0},
		{"spaces", "a  \tb", 1, 3},
		{"obs-fold", "a\r\n b", 1, 3},
		{"bare crlf", "a\r\nb", 1, 0},
		{"till end", "a   ", 1, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.WhitespaceLen(c.str, c.start), c.want; got != want {
				t.Errorf("grammar.WhitespaceLen(%q, %d) = %d, want %d", c.str, c.start, got, want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", `""`},
		{"no quote", "abc", `"abc"`},
		{"with quote", `ab"c`, `"ab\"c"`},
		{"with backslash", `ab\c`, `"ab\\c"`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Quote(c.str), c.want; got != want {
				t.Errorf("grammar.Quote(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestScanners_LongInput(t *testing.T) {
	t.Parallel()

	tok := strings.Repeat("a", 1<<16)
	if got, want := grammar.TokenLen(tok, 0), len(tok); got != want {
		t.Errorf("grammar.TokenLen(64 KiB token, 0) = %d, want %d", got, want)
	}

	qs := `"` + strings.Repeat(`a\"b `, 1<<14) + `"`
	if n, ok := grammar.QuotedStringLen(qs, 0); n != len(qs) || !ok {
		t.Errorf("grammar.QuotedStringLen(64 KiB quoted-string, 0) = (%d, %v), want (%d, true)", n, ok, len(qs))
	}

	unterminated := `"` + strings.Repeat("a", 1<<16)
	if n, ok := grammar.QuotedStringLen(unterminated, 0); n != 0 || ok {
		t.Errorf("grammar.QuotedStringLen(64 KiB unterminated, 0) = (%d, %v), want (0, false)", n, ok)
	}
}
