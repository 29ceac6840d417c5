// Package header provides low-level primitives for parsing and formatting
// HTTP header field values as defined by RFC 9110.
//
// The package does not model any particular header. It is a toolbox used by
// typed header values (media types, cache directives, content ranges and so
// on) to validate, scan and render the pieces they are built from.
//
// # Grammar validation
//
// [CheckValidToken] and [CheckValidQuotedString] verify that a whole string
// is a single token or quoted-string:
//
//	if err := header.CheckValidToken("gzip", "encoding"); err != nil {
//		// errors.Is(err, header.ErrInvalidFormat) or header.ErrInvalidArgument
//	}
//
// Trailing bytes are never accepted, not even whitespace after the closing
// DQUOTE of a quoted-string. [IsToken] and [IsQuotedString] are the boolean
// counterparts, and [RemoveQuotes] strips a single pair of surrounding quotes.
//
// # Parameters and quality values
//
// [Params] is an ordered list of name/value pairs; it implements
// [ParamList], the interface accepted by [GetQuality] and [SetQuality].
// Parameter names are matched case-insensitively.
//
//	var params header.Params
//	header.SetQuality(&params, header.Q(0.5))   // ;q=0.5
//	q := header.GetQuality(params)              // Quality{Value: 0.5, Set: true}
//	header.SetQuality(&params, header.NoQuality) // removes q
//
// Quality values are rendered with at most three fractional digits and
// parsed with a literal '.' as decimal separator.
//
// # Lists
//
// [NextNonEmptyIndex] walks comma-separated lists, skipping optional
// whitespace and, on request, empty list elements. The returned index is a
// valid start for the next token or quoted-string scan.
// [Utils.ParseTokenList] is built on it.
//
// # Numbers and durations
//
// [ParseInt32] and [ParseInt64] accept only ASCII digits and check the
// width of the result. The [StringView] variants scan a window of a larger
// string without copying it. [ParseSeconds] finds a "name=<digits>" pair
// inside raw field values, as in "max-age=30".
//
// # Dates
//
// [TryParseDate] and [FormatDate] delegate to a [DateFormatter]; the default
// one, [RFC1123], uses the IMF-fixdate format of net/http.
//
// # Configuration
//
// Package-level functions use a default [Utils] instance. Use [NewUtils]
// with [WithGrammar], [WithDateFormatter] or [WithLogger] to substitute the
// grammar scanner, the date formatter or the debug logger.
//
// # References
//
//   - RFC 9110 - HTTP Semantics
//   - RFC 5234 - Augmented BNF for Syntax Specifications
package header
