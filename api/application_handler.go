package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/nexusconsult-backend/database"
	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/rpupo63/nexusconsult-backend/forms"
	"github.com/rpupo63/nexusconsult-backend/models"
	"github.com/rpupo63/nexusconsult-backend/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type applicationHandler struct {
	responder       Responder
	logger          zerolog.Logger
	applicationRepo *database.ApplicationRepo
	messageRepo     *database.ApplicationMessageRepo
	window          time.Duration
}

func newApplicationHandler(applicationRepo *database.ApplicationRepo, messageRepo *database.ApplicationMessageRepo, window time.Duration) applicationHandler {
	logger := log.With().Str("handlerName", "applicationHandler").Logger()

	return applicationHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		applicationRepo: applicationRepo,
		messageRepo:     messageRepo,
		window:          window,
	}
}

// getApplications returns the applicant dashboard
// @Summary Applicant dashboard
// @Tags Applications
// @Produce json
// @Param expanded query string false "Application id shown expanded" format(uuid)
// @Param tab query string false "applications or messages"
// @Success 200 {object} views.DashboardPage
// @Router /applications [get]
func (h applicationHandler) getApplications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard := views.NewDashboard(h.applicationRepo, h.messageRepo)
		defer dashboard.Close()

		q := r.URL.Query()
		if expanded := strings.TrimSpace(q.Get("expanded")); expanded != "" {
			id, err := uuid.Parse(expanded)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("expanded", "not a valid id"))
				return
			}
			dashboard.ToggleExpanded(id)
		}
		if tab := q.Get("tab"); tab != "" {
			dashboard.SetTab(tab)
		}

		page, err := dashboard.Snapshot(r.Context())
		if err != nil {
			h.responder.WriteTimeoutError(w, r.URL.Path)
			return
		}
		h.responder.WriteJSON(w, page)
	}
}

// getMessages opens the message thread of one application
// @Summary Application message thread
// @Tags Applications
// @Produce json
// @Param applicationID path string true "Application id" format(uuid)
// @Success 200 {object} views.DashboardPage
// @Failure 400 {object} ErrorResponse "Invalid applicationID"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Router /applications/{applicationID}/messages [get]
func (h applicationHandler) getMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.application(w, r)
		if !ok {
			return
		}

		dashboard := views.NewDashboard(h.applicationRepo, h.messageRepo)
		defer dashboard.Close()
		dashboard.Select(id)

		page, err := dashboard.Snapshot(r.Context())
		if err != nil {
			h.responder.WriteTimeoutError(w, r.URL.Path)
			return
		}
		h.responder.WriteJSON(w, page)
	}
}

// sendMessage posts an applicant reply to an application thread
// @Summary Reply on an application thread
// @Tags Applications
// @Accept json
// @Produce json
// @Param applicationID path string true "Application id" format(uuid)
// @Param message body forms.MessageForm true "Message"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 502 {object} ErrorResponse "Store rejected the write"
// @Router /applications/{applicationID}/messages [post]
func (h applicationHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form forms.MessageForm
		if err := decodeJSON(w, r, defaultMaxBody, &form); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := form.Validate().Err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, ok := h.application(w, r)
		if !ok {
			return
		}

		message := models.ApplicationMessage{
			ApplicationID: id,
			SenderType:    models.SenderApplicant,
			Content:       strings.TrimSpace(form.Content),
		}
		resp, err := submitOnce(r.Context(), h.window, h.messageRepo.Add, &message)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("send", "application message", err))
			return
		}
		h.responder.WriteStatus(w, http.StatusCreated, resp)
	}
}

// application resolves the applicationID path parameter to an existing
// application, writing the error response when it cannot.
func (h applicationHandler) application(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "applicationID"))
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid applicationID"))
		return uuid.Nil, false
	}
	if _, err := h.applicationRepo.FindByID(r.Context(), id); err != nil {
		apiErr := errs.NewDatabaseError("find", "application", err)
		if apiErr.StatusCode == http.StatusNotFound {
			apiErr.WithRedirect("/dashboard")
		}
		h.responder.WriteError(w, apiErr)
		return uuid.Nil, false
	}
	return id, true
}
