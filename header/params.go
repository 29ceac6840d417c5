package header

import (
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Param is a header value parameter.
// Value is a token, a quoted-string with its quotes, or empty.
type Param struct {
	Name  string
	Value string
}

// NewParam creates a validated parameter.
// The name must be a token, the value must be empty, a token or a quoted-string.
func NewParam(name, value string) (Param, error) {
	if err := CheckValidToken(name, "name"); err != nil {
		return Param{}, errtrace.Wrap(err)
	}
	if value != "" {
		var err error
		if value[0] == '"' {
			err = CheckValidQuotedString(value, "value")
		} else {
			err = CheckValidToken(value, "value")
		}
		if err != nil {
			return Param{}, errtrace.Wrap(err)
		}
	}
	return Param{name, value}, nil
}

func (p Param) String() string {
	if p.Value == "" {
		return p.Name
	}
	if IsToken(p.Value) || IsQuotedString(p.Value) {
		return p.Name + "=" + p.Value
	}
	return p.Name + "=" + grammar.Quote(p.Value)
}

// Equal compares names case-insensitively.
// Quoted values are compared exactly, unquoted ones case-insensitively.
func (p Param) Equal(other Param) bool {
	if !util.EqFold(p.Name, other.Name) {
		return false
	}
	if isQuotedValue(p.Value) || isQuotedValue(other.Value) {
		return p.Value == other.Value
	}
	return util.EqFold(p.Value, other.Value)
}

func isQuotedValue(v string) bool { return len(v) > 0 && v[0] == '"' }

// ParamFinder looks parameters up by name.
type ParamFinder interface {
	// Find returns the first parameter with the given name or nil.
	// The returned pointer can be used to modify the value in place.
	Find(name string) *Param
}

// ParamList is an ordered, mutable list of parameters.
type ParamList interface {
	ParamFinder
	// Append adds a parameter to the end of the list.
	Append(name, value string)
	// Remove deletes the parameter p points to and reports whether it was found.
	// Order of the remaining parameters is kept.
	Remove(p *Param) bool
}

// Params is the default [ParamList] implementation.
// Names are matched case-insensitively.
type Params []Param

func (ps Params) Find(name string) *Param {
	for i := range ps {
		if util.EqFold(ps[i].Name, name) {
			return &ps[i]
		}
	}
	return nil
}

func (ps *Params) Append(name, value string) {
	*ps = append(*ps, Param{name, value})
}

func (ps *Params) Remove(p *Param) bool {
	if p == nil {
		return false
	}
	for i := range *ps {
		if &(*ps)[i] == p {
			*ps = slices.Delete(*ps, i, i+1)
			return true
		}
	}
	return false
}

// Get returns the value of the first parameter with the given name.
func (ps Params) Get(name string) (string, bool) {
	if p := ps.Find(name); p != nil {
		return p.Value, true
	}
	return "", false
}

func (ps Params) Len() int { return len(ps) }

func (ps Params) Clone() Params { return slices.Clone(ps) }

// Equal reports whether ps and other hold the same parameters, in any order.
func (ps Params) Equal(other Params) bool {
	return EqualCollectionsFunc(ps, other, Param.Equal)
}

func (ps Params) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for _, p := range ps {
		sb.WriteByte(';')
		sb.WriteString(p.String())
	}
	return sb.String()
}
