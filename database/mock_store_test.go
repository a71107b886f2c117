package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/rpupo63/nexusconsult-backend/models"
)

type row struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Rank     int        `json:"rank"`
	Featured bool       `json:"featured"`
	When     *time.Time `json:"when"`
}

func seededStore(t *testing.T) *MockStore {
	t.Helper()
	jan := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	// Earlier instant with a larger lexical form, so times must compare as times.
	early := time.Date(2023, 1, 5, 5, 0, 0, 0, time.FixedZone("x", 9*3600))
	s := NewMockStore()
	err := s.Seed("things",
		row{Name: "a", Category: "Design", Rank: 3, When: &jan},
		row{Name: "b", Category: "Software", Rank: 10, Featured: true, When: &early},
		row{Name: "c", Category: "Design", Rank: 2, Featured: true},
		row{Name: "d", Category: "Marketing", Rank: 1, When: &jan},
	)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func assertNames(t *testing.T, got []row, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

func TestMockStoreFilter(t *testing.T) {
	s := seededStore(t)
	var got []row
	if err := s.Select(context.Background(), "things", Query{}.Eq("category", "Design"), &got); err != nil {
		t.Fatalf("select: %v", err)
	}
	assertNames(t, got, "a", "c")
}

func TestMockStoreFilterBoolAndNumber(t *testing.T) {
	s := seededStore(t)
	var got []row
	if err := s.Select(context.Background(), "things", Query{}.Eq("featured", true).Eq("rank", 10), &got); err != nil {
		t.Fatalf("select: %v", err)
	}
	assertNames(t, got, "b")
}

func TestMockStoreNumericOrder(t *testing.T) {
	s := seededStore(t)
	var got []row
	if err := s.Select(context.Background(), "things", Query{}.OrderBy("rank", false), &got); err != nil {
		t.Fatalf("select: %v", err)
	}
	assertNames(t, got, "d", "c", "a", "b")
}

func TestMockStoreMultiColumnOrder(t *testing.T) {
	s := seededStore(t)
	var got []row
	q := Query{}.OrderBy("featured", true).OrderBy("rank", true)
	if err := s.Select(context.Background(), "things", q, &got); err != nil {
		t.Fatalf("select: %v", err)
	}
	assertNames(t, got, "b", "c", "a", "d")
}

func TestMockStoreNullOrdering(t *testing.T) {
	s := seededStore(t)

	var asc []row
	if err := s.Select(context.Background(), "things", Query{}.OrderBy("when", false), &asc); err != nil {
		t.Fatalf("select: %v", err)
	}
	assertNames(t, asc, "b", "a", "d", "c")

	var desc []row
	if err := s.Select(context.Background(), "things", Query{}.OrderBy("when", true), &desc); err != nil {
		t.Fatalf("select: %v", err)
	}
	assertNames(t, desc, "c", "a", "d", "b")
}

func TestMockStoreLimit(t *testing.T) {
	s := seededStore(t)
	var got []row
	if err := s.Select(context.Background(), "things", Query{}.OrderBy("rank", false).WithLimit(2), &got); err != nil {
		t.Fatalf("select: %v", err)
	}
	assertNames(t, got, "d", "c")
}

func TestMockStoreNullNeverMatches(t *testing.T) {
	s := seededStore(t)
	var got []row
	if err := s.Select(context.Background(), "things", Query{}.Eq("when", nil), &got); err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %v", names(got))
	}
}

func TestMockStoreEmptyCollectionIsEmptySlice(t *testing.T) {
	s := NewMockStore()
	got := []row{{Name: "stale"}}
	if err := s.Select(context.Background(), "missing", Query{}, &got); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestMockStoreInsertRejectsNonObject(t *testing.T) {
	s := NewMockStore()
	err := s.Insert(context.Background(), "things", []int{1, 2})
	var remote *errs.RemoteError
	if !errors.As(err, &remote) || remote.Operation != "insert" {
		t.Fatalf("expected remote insert error, got %v", err)
	}
}

func TestMockStoreCancelledContext(t *testing.T) {
	s := seededStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var got []row
	err := s.Select(ctx, "things", Query{}, &got)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMockStoreSelectIsIdempotent(t *testing.T) {
	s := seededStore(t)
	q := Query{}.OrderBy("featured", true)
	var first, second []row
	if err := s.Select(context.Background(), "things", q, &first); err != nil {
		t.Fatal(err)
	}
	if err := s.Select(context.Background(), "things", q, &second); err != nil {
		t.Fatal(err)
	}
	assertNames(t, second, names(first)...)
}

func TestMustSeedPanicsOnBrokenFixture(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a fixture that is not a JSON object")
		}
	}()
	mustSeed(NewMockStore(), "broken", 42)
}

func TestFixtureStoreSeedsEveryCollection(t *testing.T) {
	s := NewFixtureStore()
	for _, c := range []string{
		models.BlogPostsCollection, models.BlogCommentsCollection, models.ProjectsCollection,
		models.TeamMembersCollection, models.TestimonialsCollection,
		models.ApplicationsCollection, models.MessagesCollection,
	} {
		if s.Len(c) == 0 {
			t.Errorf("%s is empty", c)
		}
	}
}
