package srs

import (
	"github.com/chazu/srs/pkg/relation"
)

// QueryType selects what TwoObjectQuery computes.
type QueryType int

const (
	RCC_DR QueryType = iota
	RCC_PO
	RCC_EQ
	RCC_PP
	RCC_PPI
	ORIENTATION
	ALLOCENTRIC_ORIENTATION
)

var queryNames = [...]string{
	RCC_DR:                  "RCC_DR",
	RCC_PO:                  "RCC_PO",
	RCC_EQ:                  "RCC_EQ",
	RCC_PP:                  "RCC_PP",
	RCC_PPI:                 "RCC_PPI",
	ORIENTATION:             "ORIENTATION",
	ALLOCENTRIC_ORIENTATION: "ALLOCENTRIC_ORIENTATION",
}

// QueryToString returns the diagnostic label of t, or "UNKNOWN".
func QueryToString(t QueryType) string {
	if t < 0 || int(t) >= len(queryNames) {
		return "UNKNOWN"
	}
	return queryNames[t]
}

func (t QueryType) String() string { return QueryToString(t) }

// IsRCC reports whether t asks a yes/no topological question.
func (t QueryType) IsRCC() bool {
	return t >= RCC_DR && t <= RCC_PPI
}

// rcc maps an RCC query type to the relation it tests for.
func (t QueryType) rcc() relation.RCC {
	switch t {
	case RCC_DR:
		return relation.DR
	case RCC_PO:
		return relation.PO
	case RCC_EQ:
		return relation.EQ
	case RCC_PP:
		return relation.PP
	default:
		return relation.PPI
	}
}

// ParseQueryType is the inverse of QueryToString.
func ParseQueryType(s string) (QueryType, error) {
	for i, name := range queryNames {
		if name == s {
			return QueryType(i), nil
		}
	}
	return 0, &UnknownQueryError{Name: s}
}

// QueryTypes returns every query type in code order.
func QueryTypes() []QueryType {
	ts := make([]QueryType, len(queryNames))
	for i := range queryNames {
		ts[i] = QueryType(i)
	}
	return ts
}
