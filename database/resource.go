package database

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/rpupo63/nexusconsult-backend/models"
)

// Resource is the read/write surface of one collection. Scope filters are applied
// to every read and cannot be removed by callers; DefaultOrder is used when a
// query names no ordering of its own.
type Resource[T any] struct {
	store        Collections
	collection   string
	entity       string
	scope        []Filter
	defaultOrder []Order
	now          func() time.Time
}

// NewResource builds a Resource for collection. entity names the record in error messages.
func NewResource[T any](store Collections, collection, entity string, scope []Filter, defaultOrder ...Order) *Resource[T] {
	return &Resource[T]{
		store:        store,
		collection:   collection,
		entity:       entity,
		scope:        scope,
		defaultOrder: defaultOrder,
		now:          time.Now,
	}
}

func (r *Resource[T]) Collection() string { return r.collection }

// Find returns the matching records. The result is never nil.
func (r *Resource[T]) Find(ctx context.Context, q Query) ([]T, error) {
	scoped := Query{
		Filters: append(append([]Filter(nil), r.scope...), q.Filters...),
		Order:   q.Order,
		Limit:   q.Limit,
	}
	if len(scoped.Order) == 0 {
		scoped.Order = r.defaultOrder
	}

	items := []T{}
	if err := r.store.Select(ctx, r.collection, scoped, &items); err != nil {
		return []T{}, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// FindOne returns the single record whose field equals value. Zero rows is a
// not-found ApiErr, distinct from a transport failure.
func (r *Resource[T]) FindOne(ctx context.Context, field string, value any) (*T, error) {
	items, err := r.Find(ctx, Query{}.Eq(field, value).WithLimit(1))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewNotFound(r.entity)
	}
	return &items[0], nil
}

// Insert writes one record. Records implementing models.Stamper get their id,
// timestamps and defaults first.
func (r *Resource[T]) Insert(ctx context.Context, record *T) error {
	if s, ok := any(record).(models.Stamper); ok {
		s.Stamp(r.now().UTC())
	}
	return r.store.Insert(ctx, r.collection, record)
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases s and joins its alphanumeric runs with hyphens.
func slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
