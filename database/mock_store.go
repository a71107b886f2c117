package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// MockStore keeps collections as JSON rows in memory. Filters, ordering and limits
// follow the live stores: equality on the JSON field named like the column, NULLs
// last when ascending and first when descending.
type MockStore struct {
	mu   sync.RWMutex
	rows map[string][][]byte
}

func NewMockStore() *MockStore {
	return &MockStore{rows: make(map[string][][]byte)}
}

func (s *MockStore) Mode() string { return ModeMock }

// Seed appends records to a collection as if they had been inserted.
func (s *MockStore) Seed(collection string, records ...any) error {
	for _, r := range records {
		if err := s.Insert(context.Background(), collection, r); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of rows stored in collection.
func (s *MockStore) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows[collection])
}

func (s *MockStore) Insert(ctx context.Context, collection string, record any) error {
	if err := ctx.Err(); err != nil {
		return errs.NewRemoteError(collection, "insert", err)
	}
	row, err := json.Marshal(record)
	if err != nil {
		return errs.NewRemoteError(collection, "insert", fmt.Errorf("encode record: %w", err))
	}
	if !gjson.ValidBytes(row) || !gjson.ParseBytes(row).IsObject() {
		return errs.NewRemoteError(collection, "insert", fmt.Errorf("record must encode to a JSON object"))
	}

	s.mu.Lock()
	s.rows[collection] = append(s.rows[collection], row)
	s.mu.Unlock()
	return nil
}

func (s *MockStore) Select(ctx context.Context, collection string, q Query, dest any) error {
	if err := ctx.Err(); err != nil {
		return errs.NewRemoteError(collection, "select", err)
	}

	s.mu.RLock()
	all := s.rows[collection]
	matched := make([][]byte, 0, len(all))
	for _, row := range all {
		if matches(row, q.Filters) {
			matched = append(matched, row)
		}
	}
	s.mu.RUnlock()

	if len(q.Order) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			for _, o := range q.Order {
				c := compareResults(gjson.GetBytes(matched[i], o.Field), gjson.GetBytes(matched[j], o.Field))
				if o.Descending {
					c = -c
				}
				if c != 0 {
					return c < 0
				}
			}
			return false
		})
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	out := []byte("[]")
	for _, row := range matched {
		var err error
		out, err = sjson.SetRawBytes(out, "-1", row)
		if err != nil {
			return errs.NewRemoteError(collection, "select", fmt.Errorf("assemble rows: %w", err))
		}
	}
	if err := json.Unmarshal(out, dest); err != nil {
		return errs.NewRemoteError(collection, "select", fmt.Errorf("decode rows: %w", err))
	}
	return nil
}

func matches(row []byte, filters []Filter) bool {
	for _, f := range filters {
		if !equalResult(gjson.GetBytes(row, f.Field), f.Value) {
			return false
		}
	}
	return true
}

// equalResult compares a stored field with a filter value using the value's JSON form.
func equalResult(field gjson.Result, value any) bool {
	encoded, err := json.Marshal(value)
	if err != nil {
		return false
	}
	want := gjson.ParseBytes(encoded)
	if isNull(want) || isNull(field) {
		// SQL equality never matches NULL.
		return false
	}
	return compareResults(field, want) == 0
}

func isNull(r gjson.Result) bool {
	return !r.Exists() || r.Type == gjson.Null
}

// compareResults orders two JSON values. NULL sorts after every other value.
func compareResults(a, b gjson.Result) int {
	switch an, bn := isNull(a), isNull(b); {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}

	if a.Type == gjson.Number && b.Type == gjson.Number {
		return compareFloat(a.Float(), b.Float())
	}
	if isBool(a) && isBool(b) {
		return compareBool(a.Bool(), b.Bool())
	}
	if a.Type == gjson.String && b.Type == gjson.String {
		if at, ok := parseTime(a.Str); ok {
			if bt, ok := parseTime(b.Str); ok {
				return at.Compare(bt)
			}
		}
	}
	return strings.Compare(a.String(), b.String())
}

func isBool(r gjson.Result) bool {
	return r.Type == gjson.True || r.Type == gjson.False
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func parseTime(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	return t, err == nil
}
