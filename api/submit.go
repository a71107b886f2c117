package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rpupo63/nexusconsult-backend/hooks"
)

// defaultMaxBody bounds JSON form bodies.
const defaultMaxBody = 1 << 20

// submitOnce runs one write through a Submitter and returns its state for the
// response. The reset timer is never observed server side, so it is stopped.
func submitOnce[P any](ctx context.Context, window time.Duration, write func(context.Context, P) error, payload P) (SubmitResponse, error) {
	s := hooks.NewSubmitter(write, window)
	defer s.Close()
	if err := s.Submit(ctx, payload); err != nil {
		return SubmitResponse{}, err
	}
	return SubmitResponse{SubmitState: s.State(), SubmittedWindowMs: s.Window().Milliseconds()}, nil
}

// parseMultipart reads a multipart body whose files total at most maxUpload.
// Parts past the in-memory threshold spill to temp files, so callers must
// defer r.MultipartForm.RemoveAll().
func parseMultipart(w http.ResponseWriter, r *http.Request, maxUpload int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload+defaultMaxBody)
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		return multipartError(err, maxUpload)
	}
	return nil
}

func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func queryBool(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get(key)))
	return err == nil && v
}

func queryList(r *http.Request, key string) []string {
	var out []string
	for _, part := range strings.Split(r.URL.Query().Get(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
