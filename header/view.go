package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

// StringView is a window of Length bytes of Buffer starting at Offset.
// It does not own the buffer.
type StringView struct {
	Buffer string
	Offset int
	Length int
}

// NewStringView creates a view of buf[offset:offset+length].
// It returns an error wrapping [ErrInvalidArgument] if the window is out of bounds.
func NewStringView(buf string, offset, length int) (StringView, error) {
	v := StringView{buf, offset, length}
	if !v.IsValid() {
		return StringView{}, errtrace.Wrap(errorutil.NewInvalidArgumentError(
			"view [%d:%d] is out of bounds of %d bytes", offset, offset+length, len(buf)))
	}
	return v, nil
}

// ViewOf returns a view of the whole s.
func ViewOf(s string) StringView { return StringView{s, 0, len(s)} }

func (v StringView) IsValid() bool {
	return v.Offset >= 0 && v.Length >= 0 && v.Offset <= len(v.Buffer)-v.Length
}

func (v StringView) IsEmpty() bool { return v.Length == 0 }

// String returns the viewed bytes, sharing memory with Buffer.
// It returns an empty string for an invalid view.
func (v StringView) String() string {
	if !v.IsValid() {
		return ""
	}
	return v.Buffer[v.Offset : v.Offset+v.Length]
}
