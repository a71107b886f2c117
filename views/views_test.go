package views

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rpupo63/nexusconsult-backend/database"
	"github.com/rpupo63/nexusconsult-backend/models"
)

func fixtureDB() database.Database {
	return database.New(database.NewFixtureStore())
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

var projectCategories = []string{"Software", "Design", "Marketing"}

func TestMatchesSearch(t *testing.T) {
	fields := []string{"GreenLife Brand Identity", "Design"}
	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"greenlife", true},
		{"DESIGN", true},
		{" brand ", true},
		{"software", false},
	}
	for _, tt := range tests {
		if got := MatchesSearch(fields, tt.query); got != tt.want {
			t.Errorf("MatchesSearch(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestBlogListingPagination(t *testing.T) {
	db := fixtureDB()
	blog := NewBlogListing(db.BlogPostRepo(), []string{"Technology", "Marketing", "Design"}, 2, models.CategoryAll)
	defer blog.Close()

	page, err := blog.Snapshot(testCtx(t))
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if page.Total != 6 || len(page.Items) != 2 || !page.CanLoadMore {
		t.Fatalf("got total=%d items=%d more=%v, want 6/2/true", page.Total, len(page.Items), page.CanLoadMore)
	}

	blog.LoadMore()
	blog.LoadMore()
	page, _ = blog.Snapshot(testCtx(t))
	if len(page.Items) != 6 || page.CanLoadMore {
		t.Errorf("after two LoadMore got %d items more=%v, want 6/false", len(page.Items), page.CanLoadMore)
	}

	blog.SetSearch("branding")
	page, _ = blog.Snapshot(testCtx(t))
	if page.Total != 1 || page.Items[0].Title != "The Psychology of Color in Branding" {
		t.Errorf("search branding: got %+v", page.Items)
	}
}

func TestBlogListingShowPagesSaturates(t *testing.T) {
	db := fixtureDB()
	blog := NewBlogListing(db.BlogPostRepo(), nil, 2, models.CategoryAll)
	defer blog.Close()

	blog.ShowPages(2)
	page, _ := blog.Snapshot(testCtx(t))
	if len(page.Items) != 4 || !page.CanLoadMore {
		t.Errorf("ShowPages(2): items=%d more=%v, want 4/true", len(page.Items), page.CanLoadMore)
	}

	blog.ShowPages(math.MaxInt)
	blog.LoadMore()
	page, _ = blog.Snapshot(testCtx(t))
	if len(page.Items) != 6 || page.CanLoadMore {
		t.Errorf("ShowPages(MaxInt): items=%d more=%v, want 6/false", len(page.Items), page.CanLoadMore)
	}

	blog.ShowPages(0)
	page, _ = blog.Snapshot(testCtx(t))
	if len(page.Items) != 2 {
		t.Errorf("ShowPages(0): items=%d, want 2", len(page.Items))
	}
}

func TestBlogListingCategoryAndReset(t *testing.T) {
	db := fixtureDB()
	blog := NewBlogListing(db.BlogPostRepo(), []string{"Technology", "Marketing", "Design"}, BlogPageSize, "Design")
	defer blog.Close()

	page, _ := blog.Snapshot(testCtx(t))
	if page.ActiveCategory != "Design" || page.Total != 2 {
		t.Fatalf("Design: got category=%q total=%d", page.ActiveCategory, page.Total)
	}
	for _, p := range page.Items {
		if p.Category != "Design" {
			t.Errorf("post %q has category %q", p.Title, p.Category)
		}
	}

	blog.SetSearch("nothing matches this")
	page, _ = blog.Snapshot(testCtx(t))
	if !page.Empty || !page.CanReset {
		t.Fatalf("got empty=%v canReset=%v, want both", page.Empty, page.CanReset)
	}

	blog.Reset()
	page, _ = blog.Snapshot(testCtx(t))
	if page.ActiveCategory != models.CategoryAll || page.SearchQuery != "" || page.Total != 6 {
		t.Errorf("after reset got category=%q search=%q total=%d", page.ActiveCategory, page.SearchQuery, page.Total)
	}
	if page.CanReset {
		t.Error("CanReset should be false with nothing to reset")
	}
}

func TestListingUnknownSeedFallsBackToAll(t *testing.T) {
	team := NewTeamListing(fixtureDB().TeamMemberRepo(), []string{"Leadership", "Technology", "Marketing", "Design", "Operations"}, "Astrology")
	defer team.Close()

	page, _ := team.Snapshot(testCtx(t))
	if page.ActiveCategory != models.CategoryAll || page.Total != 8 {
		t.Errorf("got category=%q total=%d, want All/8", page.ActiveCategory, page.Total)
	}
	if page.Categories[0] != models.CategoryAll {
		t.Errorf("categories should start with All: %v", page.Categories)
	}
}

type failingProjects struct{}

func (failingProjects) FindAll(context.Context, string) ([]models.PortfolioProject, error) {
	return nil, errors.New("connection refused")
}

func TestListingErrorRendersEmpty(t *testing.T) {
	p := NewPortfolio(failingProjects{}, projectCategories, models.CategoryAll)
	defer p.Close()

	page, err := p.Snapshot(testCtx(t))
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if page.Error != "connection refused" || len(page.Items) != 0 || page.Items == nil {
		t.Errorf("got error=%q items=%v", page.Error, page.Items)
	}
	if page.Loading {
		t.Error("Loading should be false after a failure")
	}
}

func TestPortfolioFeaturedSplit(t *testing.T) {
	p := NewPortfolio(fixtureDB().ProjectRepo(), projectCategories, models.CategoryAll)
	defer p.Close()

	page, _ := p.Snapshot(testCtx(t))
	if len(page.Featured) != 2 || len(page.Grid) != 6 {
		t.Fatalf("got featured=%d grid=%d, want 2/6", len(page.Featured), len(page.Grid))
	}

	p.SetCategory("Design")
	page, _ = p.Snapshot(testCtx(t))
	if len(page.Featured) != 0 || len(page.Grid) != 3 {
		t.Errorf("Design: got featured=%d grid=%d, want 0/3", len(page.Featured), len(page.Grid))
	}

	p.SetCategory(models.CategoryAll)
	p.SetSearch("health")
	page, _ = p.Snapshot(testCtx(t))
	if len(page.Featured) != 0 || len(page.Grid) != 1 || page.Grid[0].Title != "HealthTrack App" {
		t.Errorf("search: got featured=%v grid=%v", page.Featured, page.Grid)
	}
}

func TestBlogDetail(t *testing.T) {
	db := fixtureDB()
	d := NewBlogDetail(db.BlogPostRepo(), db.BlogCommentRepo(), "the-future-of-ai-in-business-consulting")
	defer d.Close()

	got, err := d.Snapshot(testCtx(t))
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if got.NotFound || got.Data == nil {
		t.Fatalf("got %+v, want a post", got)
	}
	if len(got.Data.Related) != 1 || got.Data.Related[0].ID != database.FixtureID("b4") {
		t.Errorf("related = %v, want [b4]", got.Data.Related)
	}
	if len(got.Data.Comments) != 2 {
		t.Errorf("got %d comments, want the 2 approved", len(got.Data.Comments))
	}

	d.SetSlug("no-such-post")
	got, _ = d.Snapshot(testCtx(t))
	if !got.NotFound || got.Redirect != "/blog" || got.Data != nil {
		t.Errorf("missing post: got %+v", got)
	}
}

func TestProjectDetailNeighbours(t *testing.T) {
	d := NewProjectDetail(fixtureDB().ProjectRepo(), "techfinance-dashboard")
	defer d.Close()

	got, _ := d.Snapshot(testCtx(t))
	if got.Data == nil || got.Data.PrevSlug != "" || got.Data.NextSlug != "greenlife-brand-identity" {
		t.Fatalf("first project: got %+v", got.Data)
	}

	d.SetSlug("sustainable-packaging-design")
	got, _ = d.Snapshot(testCtx(t))
	if got.Data == nil || got.Data.PrevSlug != "smart-home-iot-platform" || got.Data.NextSlug != "" {
		t.Errorf("last project: got %+v", got.Data)
	}

	d.SetSlug("fintech-onboarding-revamp")
	got, _ = d.Snapshot(testCtx(t))
	if !got.NotFound || got.Redirect != "/portfolio" {
		t.Errorf("unpublished project: got %+v", got)
	}
}

func TestCareers(t *testing.T) {
	c := NewCareers()
	page := c.Snapshot()
	if len(page.Jobs) != 3 || len(page.Internships) != 3 {
		t.Fatalf("got %d jobs %d internships", len(page.Jobs), len(page.Internships))
	}

	c.SetDepartment("Design")
	page = c.Snapshot()
	if len(page.Jobs) != 1 || page.Jobs[0].ID != "j3" || len(page.Internships) != 1 {
		t.Errorf("Design: got %+v", page)
	}

	c.SetDepartment("Unknown")
	if c.Snapshot().ActiveDepartment != models.CategoryAll {
		t.Error("unknown department should fall back to All")
	}

	if !c.Toggle("j1") {
		t.Error("first toggle should expand")
	}
	if !c.Snapshot().Jobs[0].Expanded {
		t.Error("j1 should render expanded")
	}
	if c.Toggle("j1") {
		t.Error("second toggle should collapse")
	}
}

func TestDashboard(t *testing.T) {
	db := fixtureDB()
	d := NewDashboard(db.ApplicationRepo(), db.ApplicationMessageRepo())
	defer d.Close()

	page, err := d.Snapshot(testCtx(t))
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if page.ActiveTab != TabApplications || len(page.Applications) != 4 {
		t.Fatalf("got tab=%q apps=%d", page.ActiveTab, len(page.Applications))
	}
	unread := map[string]int{}
	for _, a := range page.Applications {
		unread[a.PositionTitle] = a.Unread
	}
	if unread["Software Development Intern"] != 1 || unread["Digital Marketing Intern"] != 0 {
		t.Errorf("unread counts = %v", unread)
	}
	if len(page.Thread) != 0 || page.Selected != nil {
		t.Errorf("no thread should be open: %+v", page.Thread)
	}

	app1 := database.FixtureID("app1")
	d.ToggleExpanded(app1)
	d.Select(app1)
	page, _ = d.Snapshot(testCtx(t))
	if page.ActiveTab != TabMessages || len(page.Thread) != 3 {
		t.Errorf("got tab=%q thread=%d, want messages/3", page.ActiveTab, len(page.Thread))
	}
	for _, a := range page.Applications {
		if a.Expanded != (a.ID == app1) {
			t.Errorf("application %s expanded=%v", a.PositionTitle, a.Expanded)
		}
	}

	d.SetTab("bogus")
	if page, _ = d.Snapshot(testCtx(t)); page.ActiveTab != TabMessages {
		t.Errorf("unknown tab should be ignored, got %q", page.ActiveTab)
	}
}

type failingTestimonials struct{}

func (failingTestimonials) FindAll(context.Context, bool) ([]models.Testimonial, error) {
	return nil, errors.New("timeout")
}

func TestLoadHomeSectionsFailIndependently(t *testing.T) {
	db := fixtureDB()
	page := LoadHome(testCtx(t), HomeSources{
		Projects:     db.ProjectRepo(),
		Testimonials: failingTestimonials{},
		Posts:        db.BlogPostRepo(),
	})

	if len(page.FeaturedProjects.Items) != 2 || page.FeaturedProjects.Error != "" {
		t.Errorf("featured projects = %+v", page.FeaturedProjects)
	}
	if page.Testimonials.Error != "timeout" || page.Testimonials.Items == nil {
		t.Errorf("testimonials = %+v", page.Testimonials)
	}
	if len(page.LatestPosts.Items) != HomeLatestPosts {
		t.Errorf("got %d latest posts", len(page.LatestPosts.Items))
	}
}

func TestServicesProcessTabs(t *testing.T) {
	s := NewServices()
	page := s.Snapshot()
	if page.ActiveProcess != ProcessSoftware || len(page.Services) != 9 || len(page.Process) != 6 {
		t.Fatalf("default page: process=%q services=%d steps=%d", page.ActiveProcess, len(page.Services), len(page.Process))
	}
	if page.Process[0].Title != "Discovery & Planning" {
		t.Errorf("first software step = %q", page.Process[0].Title)
	}

	s.SetProcess("Marketing")
	if page = s.Snapshot(); page.ActiveProcess != ProcessMarketing || page.Process[5].Title != "Optimization" {
		t.Errorf("marketing tab: %q %q", page.ActiveProcess, page.Process[5].Title)
	}

	s.SetProcess("finance")
	if page = s.Snapshot(); page.ActiveProcess != ProcessMarketing {
		t.Errorf("unknown tab changed the selection to %q", page.ActiveProcess)
	}
}

func TestServicesSingleOpenFAQ(t *testing.T) {
	s := NewServices()
	first, second := faqs[0].Question, faqs[1].Question

	openCount := func(p ServicesPage) (n int, open string) {
		for _, f := range p.FAQs {
			if f.Open {
				n++
				open = f.Question
			}
		}
		return n, open
	}

	if n, _ := openCount(s.Snapshot()); n != 0 {
		t.Fatalf("%d answers open initially", n)
	}
	if !s.ToggleFAQ(first) {
		t.Fatal("first toggle should open")
	}
	if !s.ToggleFAQ(second) {
		t.Fatal("second question should open")
	}
	if n, open := openCount(s.Snapshot()); n != 1 || open != second {
		t.Errorf("open = %d %q, want only the second question", n, open)
	}
	if s.ToggleFAQ(second) {
		t.Fatal("toggling the open question should close it")
	}
	if n, _ := openCount(s.Snapshot()); n != 0 {
		t.Errorf("%d answers open after closing", n)
	}
}

func TestChat(t *testing.T) {
	tests := []struct {
		message string
		topic   string
	}{
		{"What services do you offer?", "services"},
		{"Can you HELP me?", "services"},
		{"How much do your services cost?", "services"},
		{"Send me a quote", "pricing"},
		{"What does the premium package include?", "pricing"},
		{"How can I contact your team?", "contact"},
		{"What's your phone number?", "contact"},
		{"What are your business hours?", "hours"},
		{"Are you open on Saturday?", "hours"},
		{"Can I see your portfolio?", "portfolio"},
		{"Which clients have you had?", "portfolio"},
		{"Any job openings?", "hours"},
		{"Do you have an internship?", "career"},
		{"I'd like a position", "career"},
		{"Are you hiring?", "fallback"},
		{"", "fallback"},
		{"Bonjour", "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got := Chat(tt.message)
			if got.Topic != tt.topic {
				t.Errorf("Chat(%q).Topic = %q, want %q", tt.message, got.Topic, tt.topic)
			}
			if len(got.Suggestions) != len(ChatSuggestions) {
				t.Errorf("suggestions = %v", got.Suggestions)
			}
		})
	}
	if Chat("gibberish").Reply != ChatFallback {
		t.Error("fallback reply text changed")
	}
}
