package views

import (
	"context"

	"github.com/rpupo63/nexusconsult-backend/models"
)

// BlogPageSize is how many posts the blog shows before "Load More".
const BlogPageSize = 6

type BlogSource interface {
	FindAll(ctx context.Context, category string, limit int) ([]models.BlogPost, error)
}

type ProjectSource interface {
	FindAll(ctx context.Context, category string) ([]models.PortfolioProject, error)
}

type TeamSource interface {
	FindAll(ctx context.Context, department string) ([]models.TeamMember, error)
}

func blogFields(p models.BlogPost) []string {
	return []string{p.Title, p.Excerpt, p.Category, p.AuthorName}
}

func projectFields(p models.PortfolioProject) []string {
	return []string{p.Title, p.ShortDescription, p.Category, p.ClientName}
}

func teamFields(m models.TeamMember) []string {
	return []string{m.Name, m.Role, m.Department}
}

// NewBlogListing returns the blog page state seeded with category.
func NewBlogListing(src BlogSource, categories []string, pageSize int, category string) *Listing[models.BlogPost] {
	fetch := func(ctx context.Context, c string) ([]models.BlogPost, error) {
		return src.FindAll(ctx, c, 0)
	}
	return NewListing[models.BlogPost](fetch, categories, blogFields, pageSize, category)
}

// NewTeamListing returns the team page state seeded with department.
func NewTeamListing(src TeamSource, departments []string, department string) *Listing[models.TeamMember] {
	return NewListing[models.TeamMember](src.FindAll, departments, teamFields, 0, department)
}

// Portfolio splits featured projects into their own strip while the page is
// unfiltered.
type Portfolio struct {
	*Listing[models.PortfolioProject]
}

type PortfolioPage struct {
	Page[models.PortfolioProject]
	Featured []models.PortfolioProject `json:"featured"`
	Grid     []models.PortfolioProject `json:"grid"`
}

func NewPortfolio(src ProjectSource, categories []string, category string) *Portfolio {
	return &Portfolio{Listing: NewListing[models.PortfolioProject](src.FindAll, categories, projectFields, 0, category)}
}

func (p *Portfolio) Snapshot(ctx context.Context) (PortfolioPage, error) {
	page, err := p.Listing.Snapshot(ctx)
	out := PortfolioPage{
		Page:     page,
		Featured: []models.PortfolioProject{},
		Grid:     page.Items,
	}
	if page.ActiveCategory != models.CategoryAll || page.SearchQuery != "" {
		return out, err
	}

	out.Grid = make([]models.PortfolioProject, 0, len(page.Items))
	for _, project := range page.Items {
		if project.Featured {
			out.Featured = append(out.Featured, project)
		} else {
			out.Grid = append(out.Grid, project)
		}
	}
	return out, err
}
