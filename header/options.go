package header

import (
	"log/slog"

	"github.com/ghettovoice/httphdr/internal/log"
)

// Utils groups the operations that depend on injected capabilities:
// the grammar scanner, the date formatter and the debug logger.
// A Utils is immutable and safe for concurrent use.
type Utils struct {
	grammar Grammar
	dates   DateFormatter
	log     *slog.Logger
}

// NewUtils creates a new Utils.
// Without options it uses [RFC9110Grammar], [RFC1123] and a logger that discards everything.
func NewUtils(opts ...Option) *Utils {
	u := &Utils{
		grammar: RFC9110Grammar{},
		dates:   RFC1123{},
		log:     log.Noop,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.ApplyUtils(u)
		}
	}
	return u
}

var std = NewUtils()

type Option interface {
	ApplyUtils(u *Utils)
}

type withGrammar struct {
	grammar Grammar
}

func (o withGrammar) ApplyUtils(u *Utils) {
	if o.grammar != nil {
		u.grammar = o.grammar
	}
}

// WithGrammar sets the scanner of token and quoted-string productions.
func WithGrammar(g Grammar) Option {
	return withGrammar{g}
}

type withDateFormatter struct {
	dates DateFormatter
}

func (o withDateFormatter) ApplyUtils(u *Utils) {
	if o.dates != nil {
		u.dates = o.dates
	}
}

// WithDateFormatter sets the formatter used by [Utils.TryParseDate] and [Utils.FormatDate].
func WithDateFormatter(f DateFormatter) Option {
	return withDateFormatter{f}
}

type withLogger struct {
	log *slog.Logger
}

func (o withLogger) ApplyUtils(u *Utils) {
	if o.log != nil {
		u.log = o.log
	}
}

// WithLogger sets the logger that receives debug records about rejected input.
// Rejections are still reported to the caller.
func WithLogger(l *slog.Logger) Option {
	return withLogger{l}
}
