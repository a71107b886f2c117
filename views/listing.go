// Package views holds the per-page state that turns resource data into what a
// page renders: category and search filters, pagination and expansion toggles.
//
// Category filters are pushed to the data layer and re-trigger the page's
// loader; free-text search is applied here, over whatever the loader returned.
package views

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/rpupo63/nexusconsult-backend/hooks"
	"github.com/rpupo63/nexusconsult-backend/models"
)

// Page is the rendered state of a listing.
type Page[T any] struct {
	Items          []T      `json:"items"`
	Total          int      `json:"total"`
	Loading        bool     `json:"loading"`
	Error          string   `json:"error,omitempty"`
	Empty          bool     `json:"empty"`
	CanReset       bool     `json:"canReset"`
	CanLoadMore    bool     `json:"canLoadMore"`
	ActiveCategory string   `json:"activeCategory"`
	SearchQuery    string   `json:"searchQuery"`
	Categories     []string `json:"categories"`
}

// Listing combines a category-keyed loader with local search and "load more"
// pagination. A pageSize of zero shows every match.
type Listing[T any] struct {
	loader     *hooks.Loader[string, []T]
	categories []string
	fields     func(T) []string
	pageSize   int

	mu      sync.Mutex
	search  string
	visible int
}

// NewListing starts loading seed right away. A seed that is not one of
// categories falls back to "All".
func NewListing[T any](fetch hooks.Fetch[string, []T], categories []string, fields func(T) []string, pageSize int, seed string) *Listing[T] {
	l := &Listing[T]{
		loader:     hooks.NewLoader[string, []T](fetch, []T{}),
		categories: categories,
		fields:     fields,
		pageSize:   pageSize,
		visible:    pageSize,
	}
	l.loader.Load(l.normalize(seed))
	return l
}

func (l *Listing[T]) normalize(category string) string {
	for _, c := range l.categories {
		if c == category {
			return c
		}
	}
	return models.CategoryAll
}

// SetCategory narrows the listing and refetches. Pagination restarts.
func (l *Listing[T]) SetCategory(category string) {
	l.mu.Lock()
	l.visible = l.pageSize
	l.mu.Unlock()
	l.loader.Load(l.normalize(category))
}

// SetSearch changes the free-text filter without refetching.
func (l *Listing[T]) SetSearch(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.search = strings.TrimSpace(query)
	l.visible = l.pageSize
}

// Reset clears the category and the search in one step.
func (l *Listing[T]) Reset() {
	l.mu.Lock()
	l.search = ""
	l.visible = l.pageSize
	l.mu.Unlock()
	l.loader.Load(models.CategoryAll)
}

// LoadMore reveals the next page of matches.
func (l *Listing[T]) LoadMore() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pageSize > 0 && l.visible <= math.MaxInt-l.pageSize {
		l.visible += l.pageSize
	}
}

// ShowPages reveals the first n pages at once, as if LoadMore had been pressed
// n-1 times. Counts past the addressable range saturate.
func (l *Listing[T]) ShowPages(n int) {
	if n < 1 {
		n = 1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pageSize <= 0 {
		return
	}
	if n > math.MaxInt/l.pageSize {
		l.visible = math.MaxInt
		return
	}
	l.visible = n * l.pageSize
}

// Close drops any fetch still in flight.
func (l *Listing[T]) Close() {
	l.loader.Close()
}

// Snapshot waits for the current load and returns the page to render. A
// cancelled ctx returns the state as it stands together with ctx's error.
func (l *Listing[T]) Snapshot(ctx context.Context) (Page[T], error) {
	st, err := l.loader.Wait(ctx)

	l.mu.Lock()
	search, visible := l.search, l.visible
	l.mu.Unlock()

	matched := make([]T, 0, len(st.Data))
	for _, item := range st.Data {
		if MatchesSearch(l.fields(item), search) {
			matched = append(matched, item)
		}
	}

	page := Page[T]{
		Items:          matched,
		Total:          len(matched),
		Loading:        st.Loading,
		Error:          st.Error,
		ActiveCategory: st.Params,
		SearchQuery:    search,
		Categories:     append([]string{models.CategoryAll}, l.categories...),
	}
	if visible > 0 && len(matched) > visible {
		page.Items = matched[:visible]
		page.CanLoadMore = true
	}
	page.Empty = !st.Loading && page.Total == 0
	page.CanReset = page.Empty && (st.Params != models.CategoryAll || search != "")
	return page, err
}

// MatchesSearch reports whether query is a case-insensitive substring of any
// field. An empty query matches everything.
func MatchesSearch(fields []string, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
