package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rpupo63/nexusconsult-backend/attachments"
	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/rpupo63/nexusconsult-backend/forms"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type registrationHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  attachments.Uploader
	maxUpload int64
}

func newRegistrationHandler(uploader attachments.Uploader, maxUpload int64) registrationHandler {
	logger := log.With().Str("handlerName", "registrationHandler").Logger()

	return registrationHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
		maxUpload: maxUpload,
	}
}

// validateStep checks the registration form up to and including one step
// @Summary Validate a registration step
// @Description Validates every step before step, then step itself. A failing earlier step is reported as the current one.
// @Tags Registration
// @Accept json
// @Produce json
// @Param step query int false "Zero-based step index" default(0)
// @Param values body forms.Values true "Field values"
// @Success 200 {object} RegistrationStepResponse
// @Failure 400 {object} RegistrationStepResponse "Step invalid"
// @Router /register/validate [post]
func (h registrationHandler) validateStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		step, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("step")))
		if err != nil {
			step = 0
		}

		var values forms.Values
		if err := decodeJSON(w, r, defaultMaxBody, &values); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		wizard := forms.NewRegistrationWizard()
		wizard.SetAll(values)
		if !wizard.GoTo(step) {
			if wizard.Errors().Valid() {
				h.responder.WriteError(w, errs.NewInvalidFieldError("step", "no such step"))
				return
			}
			h.writeStep(w, wizard, false)
			return
		}
		h.writeStep(w, wizard, wizard.Next())
	}
}

// register validates the whole form and stores the resume
// @Summary Register an applicant account
// @Description Multipart form with the registration fields and a "resume" file.
// @Tags Registration
// @Accept mpfd
// @Produce json
// @Success 201 {object} RegistrationResponse
// @Failure 400 {object} RegistrationStepResponse "Form invalid"
// @Failure 502 {object} ErrorResponse "Resume storage failed"
// @Router /register [post]
func (h registrationHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(w, r, h.maxUpload); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer r.MultipartForm.RemoveAll()

		wizard := forms.NewRegistrationWizard()
		for _, field := range []string{forms.FieldName, forms.FieldEmail, forms.FieldPassword, forms.FieldConfirmPassword, forms.FieldAgreeTerms} {
			wizard.Set(field, r.FormValue(field))
		}
		file, header, err := r.FormFile(forms.FieldResume)
		switch {
		case err == nil:
			defer file.Close()
			wizard.Set(forms.FieldResume, header.Filename)
		case !errors.Is(err, http.ErrMissingFile):
			h.responder.WriteError(w, errs.NewBadRequestError("unreadable resume"))
			return
		}

		if !wizard.GoTo(wizard.Len()-1) || !wizard.Begin() {
			h.writeStep(w, wizard, false)
			return
		}
		defer wizard.Finish()

		ref, err := h.uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			h.responder.WriteError(w, errs.NewServiceUnreachableError("resume storage", err))
			return
		}

		h.logger.Info().Str("resume", ref).Msg("Registration accepted")
		h.responder.WriteStatus(w, http.StatusCreated, RegistrationResponse{
			Accepted: true,
			Name:     strings.TrimSpace(wizard.Value(forms.FieldName)),
			Email:    strings.TrimSpace(wizard.Value(forms.FieldEmail)),
			Resume:   ref,
		})
	}
}

func (h registrationHandler) writeStep(w http.ResponseWriter, wizard *forms.Wizard, valid bool) {
	resp := RegistrationStepResponse{
		Step:     wizard.Step(),
		StepName: wizard.StepName(),
		IsLast:   wizard.IsLast(),
		Valid:    valid,
	}
	if valid {
		h.responder.WriteJSON(w, resp)
		return
	}
	resp.Fields = wizard.Errors()
	h.responder.WriteStatus(w, http.StatusBadRequest, resp)
}
