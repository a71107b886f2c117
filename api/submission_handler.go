package api

import (
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/nexusconsult-backend/attachments"
	"github.com/rpupo63/nexusconsult-backend/database"
	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/rpupo63/nexusconsult-backend/forms"
	"github.com/rpupo63/nexusconsult-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type submissionHandler struct {
	responder      Responder
	logger         zerolog.Logger
	contactRepo    *database.ContactSubmissionRepo
	newsletterRepo *database.NewsletterRepo
	uploader       attachments.Uploader
	window         time.Duration
	maxUpload      int64
}

func newSubmissionHandler(contactRepo *database.ContactSubmissionRepo, newsletterRepo *database.NewsletterRepo,
	uploader attachments.Uploader, window time.Duration, maxUpload int64) submissionHandler {
	logger := log.With().Str("handlerName", "submissionHandler").Logger()

	return submissionHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		contactRepo:    contactRepo,
		newsletterRepo: newsletterRepo,
		uploader:       uploader,
		window:         window,
		maxUpload:      maxUpload,
	}
}

// submitContact stores a contact form submission
// @Summary Submit the contact form
// @Description Accepts JSON, or multipart form data with an optional "file" attachment.
// @Tags Forms
// @Accept json,mpfd
// @Produce json
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 413 {object} ErrorResponse "Attachment too large"
// @Failure 502 {object} ErrorResponse "Store or attachment storage rejected the write"
// @Router /contact [post]
func (h submissionHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form forms.ContactForm
		multipart := isMultipart(r)
		if multipart {
			if err := parseMultipart(w, r, h.maxUpload); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			defer r.MultipartForm.RemoveAll()
			form = forms.ContactForm{
				Name:    r.FormValue("name"),
				Email:   r.FormValue("email"),
				Phone:   r.FormValue("phone"),
				Subject: r.FormValue("subject"),
				Message: r.FormValue("message"),
			}
		} else if err := decodeJSON(w, r, defaultMaxBody, &form); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		form = form.Trimmed()
		if err := form.Validate().Err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		submission := models.ContactSubmission{
			Name:    form.Name,
			Email:   form.Email,
			Phone:   optional(form.Phone),
			Subject: form.Subject,
			Message: form.Message,
		}

		if multipart {
			if file, header, err := r.FormFile("file"); err == nil {
				ref, err := h.uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
				file.Close()
				if err != nil {
					h.responder.WriteError(w, errs.NewServiceUnreachableError("attachment storage", err))
					return
				}
				submission.FileURL = &ref
			} else if !errors.Is(err, http.ErrMissingFile) {
				h.responder.WriteError(w, errs.NewBadRequestError("unreadable attachment"))
				return
			}
		}

		resp, err := submitOnce(r.Context(), h.window, h.contactRepo.Add, &submission)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("submit", "contact form", err))
			return
		}
		h.logger.Info().Bool("attachment", submission.FileURL != nil).Msg("Contact submission stored")
		h.responder.WriteStatus(w, http.StatusCreated, resp)
	}
}

// subscribe adds an address to the newsletter
// @Summary Subscribe to the newsletter
// @Tags Forms
// @Accept json
// @Produce json
// @Param subscription body forms.NewsletterForm true "Subscription"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 502 {object} ErrorResponse "Store rejected the write"
// @Router /newsletter [post]
func (h submissionHandler) subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form forms.NewsletterForm
		if err := decodeJSON(w, r, defaultMaxBody, &form); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := form.Validate().Err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		subscription := models.NewsletterSubscription{
			Email:  strings.ToLower(strings.TrimSpace(form.Email)),
			Source: strings.TrimSpace(form.Source),
		}
		resp, err := submitOnce(r.Context(), h.window, h.newsletterRepo.Subscribe, &subscription)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("subscribe", "newsletter", err))
			return
		}
		h.responder.WriteStatus(w, http.StatusCreated, resp)
	}
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func multipartError(err error, maxUpload int64) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errs.NewMaxBodySizeExceededError(maxUpload)
	}
	return errs.NewMalformedPayloadError("multipart", err)
}
