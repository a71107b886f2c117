package database

import (
	"context"
	"strings"

	"github.com/rpupo63/nexusconsult-backend/models"
)

type BlogPostRepo struct {
	posts *Resource[models.BlogPost]
}

// NewBlogPostRepo scopes every read to published posts, newest first.
func NewBlogPostRepo(store Collections) *BlogPostRepo {
	return &BlogPostRepo{
		posts: NewResource[models.BlogPost](store, models.BlogPostsCollection, "blog post",
			[]Filter{{Field: "published", Value: true}},
			Order{Field: "created_at", Descending: true}),
	}
}

// FindAll returns published posts, narrowed to category unless it is empty or "All".
// A positive limit caps the result.
func (r *BlogPostRepo) FindAll(ctx context.Context, category string, limit int) ([]models.BlogPost, error) {
	q := Query{}.WithLimit(limit)
	if !isAll(category) {
		q = q.Eq("category", category)
	}
	return r.posts.Find(ctx, q)
}

// FindBySlug returns the published post with slug.
func (r *BlogPostRepo) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return r.posts.FindOne(ctx, "slug", slug)
}

// FindRelated returns up to n other published posts in the same category.
func (r *BlogPostRepo) FindRelated(ctx context.Context, post models.BlogPost, n int) ([]models.BlogPost, error) {
	candidates, err := r.posts.Find(ctx, Query{}.Eq("category", post.Category).WithLimit(n+1))
	if err != nil {
		return candidates, err
	}
	related := make([]models.BlogPost, 0, n)
	for _, c := range candidates {
		if c.ID != post.ID && len(related) < n {
			related = append(related, c)
		}
	}
	return related, nil
}

func isAll(category string) bool {
	category = strings.TrimSpace(category)
	return category == "" || strings.EqualFold(category, models.CategoryAll)
}
