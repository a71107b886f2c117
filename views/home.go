package views

import (
	"context"

	"github.com/rpupo63/nexusconsult-backend/models"
	"golang.org/x/sync/errgroup"
)

// Home page section sizes.
const (
	HomeFeaturedProjects = 3
	HomeLatestPosts      = 3
)

type HomeSources struct {
	Projects interface {
		FindFeatured(ctx context.Context, limit int) ([]models.PortfolioProject, error)
	}
	Testimonials interface {
		FindAll(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error)
	}
	Posts BlogSource
}

// Section is one independently loaded block of a composite page.
type Section[T any] struct {
	Items []T    `json:"items"`
	Error string `json:"error,omitempty"`
}

type HomePage struct {
	FeaturedProjects Section[models.PortfolioProject] `json:"featuredProjects"`
	Testimonials     Section[models.Testimonial]      `json:"testimonials"`
	LatestPosts      Section[models.BlogPost]         `json:"latestPosts"`
}

// LoadHome fetches every home page section concurrently. A failing section
// carries its own error and an empty list; the others render normally.
func LoadHome(ctx context.Context, src HomeSources) HomePage {
	var page HomePage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.FeaturedProjects = section(src.Projects.FindFeatured(gctx, HomeFeaturedProjects))
		return nil
	})
	g.Go(func() error {
		page.Testimonials = section(src.Testimonials.FindAll(gctx, true))
		return nil
	})
	g.Go(func() error {
		page.LatestPosts = section(src.Posts.FindAll(gctx, models.CategoryAll, HomeLatestPosts))
		return nil
	})
	_ = g.Wait()
	return page
}

func section[T any](items []T, err error) Section[T] {
	if err != nil {
		return Section[T]{Items: []T{}, Error: err.Error()}
	}
	if items == nil {
		items = []T{}
	}
	return Section[T]{Items: items}
}
