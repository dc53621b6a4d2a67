// Package request holds one type per Genability operation. Each request
// encodes its own query parameters: set fields become name/value pairs in a
// fixed order and unset fields are left out, which is how the API tells
// "unset" apart from an empty value.
package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/icodeforyou/genability-go/isotime"
	"github.com/icodeforyou/genability-go/types/maybe"
)

type Param struct {
	Name  string
	Value string
}

// Params keeps insertion order, url.Values does not.
type Params []Param

// Encoder is implemented by every request that travels as a query string.
type Encoder interface {
	QueryParams() Params
}

// Add appends name=value when v is set.
func Add[T any](p Params, name string, v maybe.Maybe[T]) Params {
	if !v.IsValid() {
		return p
	}
	return append(p, Param{Name: name, Value: format(v.Value())})
}

func format(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return isotime.Format(v)
	case []string:
		return strings.Join(v, ",")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (p Params) Get(name string) (string, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return "", false
}

func (p Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

func (p Params) Names() []string {
	names := make([]string, len(p))
	for i, param := range p {
		names[i] = param.Name
	}
	return names
}

// Encode renders the pairs as a query string in their original order.
func (p Params) Encode() string {
	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}
