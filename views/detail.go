package views

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/rpupo63/nexusconsult-backend/hooks"
	"github.com/rpupo63/nexusconsult-backend/models"
)

// RelatedPostCount is how many related posts a post page shows.
const RelatedPostCount = 3

// Detail is the rendered state of a single-entity page. A lookup that resolves
// to nothing sets NotFound and names the listing page to navigate to instead.
type Detail[T any] struct {
	Data     *T     `json:"data"`
	Loading  bool   `json:"loading"`
	Error    string `json:"error,omitempty"`
	NotFound bool   `json:"notFound"`
	Redirect string `json:"redirect,omitempty"`
}

func detailFrom[T any](st hooks.State[string, *T], notFound bool, redirect string) Detail[T] {
	d := Detail[T]{Data: st.Data, Loading: st.Loading, Error: st.Error}
	if notFound {
		d.NotFound = true
		d.Redirect = redirect
	}
	return d
}

type PostSource interface {
	FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	FindRelated(ctx context.Context, post models.BlogPost, n int) ([]models.BlogPost, error)
}

type CommentSource interface {
	FindForPost(ctx context.Context, postID uuid.UUID) ([]models.BlogComment, error)
}

// BlogPostView is a post with the sections rendered beside it. The side sections
// fail on their own without failing the post.
type BlogPostView struct {
	Post          models.BlogPost      `json:"post"`
	Related       []models.BlogPost    `json:"related"`
	RelatedError  string               `json:"relatedError,omitempty"`
	Comments      []models.BlogComment `json:"comments"`
	CommentsError string               `json:"commentsError,omitempty"`
}

type BlogDetail struct {
	loader *hooks.Loader[string, *BlogPostView]
}

func NewBlogDetail(posts PostSource, comments CommentSource, slug string) *BlogDetail {
	fetch := func(ctx context.Context, slug string) (*BlogPostView, error) {
		post, err := posts.FindBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		view := &BlogPostView{Post: *post}
		view.Related, err = posts.FindRelated(ctx, *post, RelatedPostCount)
		if err != nil {
			view.RelatedError = err.Error()
		}
		view.Comments, err = comments.FindForPost(ctx, post.ID)
		if err != nil {
			view.CommentsError = err.Error()
		}
		return view, nil
	}
	d := &BlogDetail{loader: hooks.NewLoader[string, *BlogPostView](fetch, nil)}
	d.loader.Load(slug)
	return d
}

// SetSlug switches to another post.
func (d *BlogDetail) SetSlug(slug string) { d.loader.Load(slug) }

func (d *BlogDetail) Close() { d.loader.Close() }

func (d *BlogDetail) Snapshot(ctx context.Context) (Detail[BlogPostView], error) {
	st, err := d.loader.Wait(ctx)
	return detailFrom(st, d.loader.ErrorIs(errs.ErrNotFound), "/blog"), err
}

type ProjectLookup interface {
	ProjectSource
	FindBySlug(ctx context.Context, slug string) (*models.PortfolioProject, error)
}

// ProjectView is a case study with the slugs of its neighbours in the
// portfolio's default order. The first project has no previous one and the
// last has no next one.
type ProjectView struct {
	Project  models.PortfolioProject `json:"project"`
	PrevSlug string                  `json:"prevSlug,omitempty"`
	NextSlug string                  `json:"nextSlug,omitempty"`
}

type ProjectDetail struct {
	loader *hooks.Loader[string, *ProjectView]
}

func NewProjectDetail(projects ProjectLookup, slug string) *ProjectDetail {
	fetch := func(ctx context.Context, slug string) (*ProjectView, error) {
		project, err := projects.FindBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		view := &ProjectView{Project: *project}
		// Neighbours are optional; a failed listing leaves them blank.
		all, err := projects.FindAll(ctx, models.CategoryAll)
		if err == nil {
			for i := range all {
				if all[i].ID != project.ID {
					continue
				}
				if i > 0 {
					view.PrevSlug = all[i-1].Slug
				}
				if i < len(all)-1 {
					view.NextSlug = all[i+1].Slug
				}
				break
			}
		}
		return view, nil
	}
	d := &ProjectDetail{loader: hooks.NewLoader[string, *ProjectView](fetch, nil)}
	d.loader.Load(slug)
	return d
}

func (d *ProjectDetail) SetSlug(slug string) { d.loader.Load(slug) }

func (d *ProjectDetail) Close() { d.loader.Close() }

func (d *ProjectDetail) Snapshot(ctx context.Context) (Detail[ProjectView], error) {
	st, err := d.loader.Wait(ctx)
	return detailFrom(st, d.loader.ErrorIs(errs.ErrNotFound), "/portfolio"), err
}
