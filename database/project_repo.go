package database

import (
	"context"

	"github.com/rpupo63/nexusconsult-backend/models"
)

type ProjectRepo struct {
	projects *Resource[models.PortfolioProject]
}

// NewProjectRepo scopes every read to published projects, featured first and
// then newest first.
func NewProjectRepo(store Collections) *ProjectRepo {
	return &ProjectRepo{
		projects: NewResource[models.PortfolioProject](store, models.ProjectsCollection, "project",
			[]Filter{{Field: "published", Value: true}},
			Order{Field: "featured", Descending: true},
			Order{Field: "created_at", Descending: true}),
	}
}

// FindAll returns published projects, narrowed to category unless it is empty or "All".
func (r *ProjectRepo) FindAll(ctx context.Context, category string) ([]models.PortfolioProject, error) {
	q := Query{}
	if !isAll(category) {
		q = q.Eq("category", category)
	}
	return r.projects.Find(ctx, q)
}

// FindFeatured returns featured projects, newest first. A positive limit caps the result.
func (r *ProjectRepo) FindFeatured(ctx context.Context, limit int) ([]models.PortfolioProject, error) {
	return r.projects.Find(ctx, Query{}.Eq("featured", true).WithLimit(limit))
}

// FindBySlug returns the published project with slug.
func (r *ProjectRepo) FindBySlug(ctx context.Context, slug string) (*models.PortfolioProject, error) {
	return r.projects.FindOne(ctx, "slug", slug)
}
