package request

import "github.com/icodeforyou/genability-go/types/maybe"

// Base carries the paging, search and sorting fields every list operation
// accepts. Requests embed it and encode its fields before their own.
type Base struct {
	Fields     maybe.Maybe[string] // "ext" or "min"
	PageStart  maybe.Maybe[int]
	PageCount  maybe.Maybe[int]
	Search     maybe.Maybe[string]
	SearchOn   maybe.Maybe[[]string]
	StartsWith maybe.Maybe[bool]
	EndsWith   maybe.Maybe[bool]
	IsRegex    maybe.Maybe[bool]
	SortOn     maybe.Maybe[[]string]
	SortOrder  maybe.Maybe[[]string] // "ASC" or "DESC", one per SortOn entry
}

func (b Base) QueryParams() Params {
	var p Params
	p = Add(p, "fields", b.Fields)
	p = Add(p, "pageStart", b.PageStart)
	p = Add(p, "pageCount", b.PageCount)
	p = Add(p, "search", b.Search)
	p = Add(p, "searchOn", b.SearchOn)
	p = Add(p, "startsWith", b.StartsWith)
	p = Add(p, "endsWith", b.EndsWith)
	p = Add(p, "isRegex", b.IsRegex)
	p = Add(p, "sortOn", b.SortOn)
	p = Add(p, "sortOrder", b.SortOrder)
	return p
}
