package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/nexusconsult-backend/database"
	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/rpupo63/nexusconsult-backend/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	categories  []string
}

func newProjectHandler(projectRepo *database.ProjectRepo, categories []string) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		categories:  categories,
	}
}

// getAllProjects returns the portfolio page
// @Summary List projects
// @Description Published projects. While unfiltered, featured projects are returned separately from the grid.
// @Tags Projects
// @Produce json
// @Param category query string false "Category, All when empty or unknown"
// @Param q query string false "Search over title, description, category and client"
// @Success 200 {object} views.PortfolioPage
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		portfolio := views.NewPortfolio(h.projectRepo, h.categories, q.Get("category"))
		defer portfolio.Close()
		portfolio.SetSearch(q.Get("q"))

		page, err := portfolio.Snapshot(r.Context())
		if err != nil {
			h.responder.WriteTimeoutError(w, r.URL.Path)
			return
		}
		h.responder.WriteJSON(w, page)
	}
}

// getProject returns a case study with its neighbours
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} views.Detail[views.ProjectView]
// @Failure 404 {object} ErrorResponse "Not Found - redirect names the portfolio"
// @Router /project/{slug} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail := views.NewProjectDetail(h.projectRepo, chi.URLParam(r, "slug"))
		defer detail.Close()

		d, err := detail.Snapshot(r.Context())
		if err != nil {
			h.responder.WriteTimeoutError(w, r.URL.Path)
			return
		}
		if d.NotFound {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found").WithRedirect(d.Redirect))
			return
		}
		h.responder.WriteJSON(w, d)
	}
}
