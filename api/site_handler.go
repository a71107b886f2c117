package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/nexusconsult-backend/database"
	"github.com/rpupo63/nexusconsult-backend/forms"
	"github.com/rpupo63/nexusconsult-backend/hooks"
	"github.com/rpupo63/nexusconsult-backend/models"
	"github.com/rpupo63/nexusconsult-backend/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type siteHandler struct {
	responder   Responder
	logger      zerolog.Logger
	db          database.Database
	departments []string
	startupTime time.Time
}

func newSiteHandler(db database.Database, departments []string, startupTime time.Time) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		db:          db,
		departments: departments,
		startupTime: startupTime,
	}
}

// health reports which store is serving data
// @Summary Health check
// @Tags Site
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h siteHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status:    "ok",
			Mode:      h.db.Mode(),
			Uptime:    time.Since(h.startupTime).Round(time.Second).String(),
			StartedAt: h.startupTime.UTC().Format(time.RFC3339),
		})
	}
}

// getHome returns the home page sections. Each section reports its own error.
// @Summary Home page
// @Tags Site
// @Produce json
// @Success 200 {object} views.HomePage
// @Router /home [get]
func (h siteHandler) getHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, views.LoadHome(r.Context(), views.HomeSources{
			Projects:     h.db.ProjectRepo(),
			Testimonials: h.db.TestimonialRepo(),
			Posts:        h.db.BlogPostRepo(),
		}))
	}
}

// getTeamMembers returns active team members
// @Summary List team members
// @Tags Site
// @Produce json
// @Param department query string false "Department, All when empty or unknown"
// @Param q query string false "Search over name, role and department"
// @Success 200 {object} views.Page[models.TeamMember]
// @Router /team-members [get]
func (h siteHandler) getTeamMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		team := views.NewTeamListing(h.db.TeamMemberRepo(), h.departments, q.Get("department"))
		defer team.Close()
		team.SetSearch(q.Get("q"))

		page, err := team.Snapshot(r.Context())
		if err != nil {
			h.responder.WriteTimeoutError(w, r.URL.Path)
			return
		}
		h.responder.WriteJSON(w, page)
	}
}

// getTestimonials returns approved testimonials
// @Summary List testimonials
// @Tags Site
// @Produce json
// @Param featured query bool false "Only featured testimonials"
// @Success 200 {object} ListResponse[models.Testimonial]
// @Router /testimonials [get]
func (h siteHandler) getTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loader := hooks.NewLoader[bool, []models.Testimonial](h.db.TestimonialRepo().FindAll, []models.Testimonial{})
		defer loader.Close()
		loader.Load(queryBool(r, "featured"))

		st, err := loader.Wait(r.Context())
		if err != nil {
			h.responder.WriteTimeoutError(w, r.URL.Path)
			return
		}
		h.responder.WriteJSON(w, ListResponse[models.Testimonial]{
			Items:   st.Data,
			Total:   len(st.Data),
			Loading: st.Loading,
			Error:   st.Error,
		})
	}
}

// getCareers returns the job board
// @Summary Careers page
// @Tags Site
// @Produce json
// @Param department query string false "Department, All when empty or unknown"
// @Param expanded query string false "Comma-separated job ids shown expanded"
// @Success 200 {object} views.CareersPage
// @Router /careers [get]
func (h siteHandler) getCareers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		careers := views.NewCareers()
		careers.SetDepartment(strings.TrimSpace(r.URL.Query().Get("department")))
		for _, id := range queryList(r, "expanded") {
			careers.Toggle(id)
		}
		h.responder.WriteJSON(w, careers.Snapshot())
	}
}

// getServices returns the services page
// @Summary Services page
// @Tags Site
// @Produce json
// @Param process query string false "Process tab: software, marketing or design" default(software)
// @Param faq query string false "Question shown open"
// @Success 200 {object} views.ServicesPage
// @Router /services [get]
func (h siteHandler) getServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := views.NewServices()
		q := r.URL.Query()
		services.SetProcess(q.Get("process"))
		if faq := strings.TrimSpace(q.Get("faq")); faq != "" {
			services.ToggleFAQ(faq)
		}
		h.responder.WriteJSON(w, services.Snapshot())
	}
}

// chat answers a chat widget message
// @Summary Chat widget reply
// @Tags Site
// @Accept json
// @Produce json
// @Param message body forms.ChatForm true "Message"
// @Success 200 {object} views.ChatReply
// @Failure 400 {object} ErrorResponse "Empty message"
// @Router /chat [post]
func (h siteHandler) chat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form forms.ChatForm
		if err := decodeJSON(w, r, defaultMaxBody, &form); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := form.Validate().Err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		reply := views.Chat(form.Message)
		h.logger.Debug().Str("topic", reply.Topic).Msg("Chat reply")
		h.responder.WriteJSON(w, reply)
	}
}
