package database

import (
	"context"
	"fmt"
	"strings"
)

// Store modes reported by Collections.Mode.
const (
	ModeREST     = "rest"
	ModePostgres = "postgres"
	ModeMock     = "mock"
)

// Filter is an equality constraint on one column.
type Filter struct {
	Field string
	Value any
}

// Order sorts by one column. Ascending unless Descending is set.
type Order struct {
	Field      string
	Descending bool
}

// Query is the whole read surface: equality filters, ordering and an optional limit.
// A zero Limit means no limit.
type Query struct {
	Filters []Filter
	Order   []Order
	Limit   int
}

// Eq appends an equality filter.
func (q Query) Eq(field string, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Value: value})
	return q
}

// OrderBy appends an ordering column.
func (q Query) OrderBy(field string, descending bool) Query {
	q.Order = append(append([]Order(nil), q.Order...), Order{Field: field, Descending: descending})
	return q
}

// WithLimit returns q with the row limit set.
func (q Query) WithLimit(n int) Query {
	q.Limit = n
	return q
}

func (q Query) String() string {
	var parts []string
	for _, f := range q.Filters {
		parts = append(parts, fmt.Sprintf("%s=%v", f.Field, f.Value))
	}
	for _, o := range q.Order {
		dir := "asc"
		if o.Descending {
			dir = "desc"
		}
		parts = append(parts, fmt.Sprintf("order %s %s", o.Field, dir))
	}
	if q.Limit > 0 {
		parts = append(parts, fmt.Sprintf("limit %d", q.Limit))
	}
	return strings.Join(parts, ", ")
}

// Collections is the capability every backing store offers. Reads decode the
// matching rows into dest, which must point to a slice. Every failure is an
// *errs.RemoteError. Implementations hold no per-call mutable state and are safe
// for concurrent use.
type Collections interface {
	Select(ctx context.Context, collection string, q Query, dest any) error
	Insert(ctx context.Context, collection string, record any) error
	Mode() string
}
