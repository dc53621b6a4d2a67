package types

// GroupBy selects how profile readings are aggregated.
type GroupBy string

const (
	GroupByYear    GroupBy = "YEAR"
	GroupByMonth   GroupBy = "MONTH"
	GroupByWeek    GroupBy = "WEEK"
	GroupByDay     GroupBy = "DAY"
	GroupByHour    GroupBy = "HOUR"
	GroupByQtrHour GroupBy = "QTRHOUR"
)

func (g GroupBy) String() string { return string(g) }

// ClipBy decides whether partial periods at the edges of a date range are
// kept (OUTER) or dropped (INNER).
type ClipBy string

const (
	ClipByOuter ClipBy = "OUTER"
	ClipByInner ClipBy = "INNER"
)

func (c ClipBy) String() string { return string(c) }
