package header_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphdr/header"
)

func TestNextNonEmptyIndex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		str       string
		start     int
		skipEmpty bool
		wantNext  int
		wantSep   bool
	}{
		{"empty", "", 0, false, 0, false},
		{"at end", "abc", 3, false, 3, false},
		{"no separator", "a b", 1, false, 2, false},
		{"trailing whitespace", "a  ", 1, false, 3, false},
		{"separator", "a, b", 1, false, 3, true},
		{"whitespace before separator", "a \t, b", 1, false, 5, true},
		{"empty elements kept", "a,, ,b", 1, false, 2, true},
		{"empty elements skipped", "a,, ,b", 1, true, 5, true},
		{"example run", "a,,  ,b", 1, true, 6, true},
		{"only separators", "a, , ,", 1, true, 6, true},
		{"obs-fold", "a,\r\n b", 1, false, 5, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			next, sep := header.NextNonEmptyIndex(c.str, c.start, c.skipEmpty)
			if next != c.wantNext || sep != c.wantSep {
				t.Errorf("header.NextNonEmptyIndex(%q, %d, %v) = (%d, %v), want (%d, %v)",
					c.str, c.start, c.skipEmpty, next, sep, c.wantNext, c.wantSep)
			}
		})
	}
}

func TestNextNonEmptyIndex_TokenScan(t *testing.T) {
	t.Parallel()

	// The returned index is a valid start for the next token.
	s := "gzip, , deflate"
	i, sep := header.NextNonEmptyIndex(s, len("gzip"), true)
	if !sep {
		t.Fatalf("separatorFound = false, want true")
	}
	if got, want := s[i:], "deflate"; got != want {
		t.Errorf("s[next:] = %q, want %q", got, want)
	}
}

func TestParseTokenList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		str     string
		want    []string
		wantErr error
	}{
		{"empty", "", nil, nil},
		{"only separators", " , ,", nil, nil},
		{"single", "Accept", []string{"Accept"}, nil},
		{"list", "Accept, Accept-Encoding,Origin", []string{"Accept", "Accept-Encoding", "Origin"}, nil},
		{"empty elements", ",GET,, ,HEAD,", []string{"GET", "HEAD"}, nil},
		{"wildcard", "*", []string{"*"}, nil},
		{"missing comma", "GET HEAD", nil, header.ErrInvalidFormat},
		{"not a token", "GET, /x", nil, header.ErrInvalidFormat},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseTokenList(c.str)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Errorf("header.ParseTokenList(%q) error = %v, want %v", c.str, err, c.wantErr)
				}
			} else if err != nil {
				t.Errorf("header.ParseTokenList(%q) error = %v, want nil", c.str, err)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("header.ParseTokenList(%q) = %q, want %q\ndiff (-got +want):\n%v", c.str, got, c.want, diff)
			}
		})
	}
}
