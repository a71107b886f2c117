package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// RestStore talks to a Supabase project through its PostgREST endpoint.
type RestStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRestStore returns a store for the project at baseURL. A nil client uses a
// default http.Client with no timeout beyond the request context.
func NewRestStore(baseURL, apiKey string, client *http.Client) *RestStore {
	if client == nil {
		client = &http.Client{}
	}
	return &RestStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

func (s *RestStore) Mode() string { return ModeREST }

func (s *RestStore) Select(ctx context.Context, collection string, q Query, dest any) error {
	endpoint := s.baseURL + "/rest/v1/" + collection + "?" + encodeQuery(q)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errs.NewRemoteError(collection, "select", err)
	}
	s.setHeaders(req)

	body, err := s.do(req, collection, "select")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return errs.NewRemoteError(collection, "select", fmt.Errorf("decode rows: %w", err))
	}
	return nil
}

func (s *RestStore) Insert(ctx context.Context, collection string, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return errs.NewRemoteError(collection, "insert", fmt.Errorf("encode record: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/rest/v1/"+collection, bytes.NewReader(payload))
	if err != nil {
		return errs.NewRemoteError(collection, "insert", err)
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	_, err = s.do(req, collection, "insert")
	return err
}

func (s *RestStore) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")
}

func (s *RestStore) do(req *http.Request, collection, op string) ([]byte, error) {
	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errs.NewRemoteError(collection, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewRemoteError(collection, op, fmt.Errorf("read response: %w", err))
	}

	log.Debug().
		Str("collection", collection).
		Str("op", op).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("rest store request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &errs.RemoteError{
			Collection: collection,
			Operation:  op,
			Status:     resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, body),
		}
	}
	return body, nil
}

// errorMessage pulls the human message out of a PostgREST error body.
func errorMessage(status int, body []byte) string {
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, "message"); msg.Exists() && msg.String() != "" {
			return msg.String()
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", status)
}

func encodeQuery(q Query) string {
	values := url.Values{}
	values.Set("select", "*")
	for _, f := range q.Filters {
		values.Add(f.Field, "eq."+formatValue(f.Value))
	}
	if len(q.Order) > 0 {
		parts := make([]string, 0, len(q.Order))
		for _, o := range q.Order {
			dir := "asc"
			if o.Descending {
				dir = "desc"
			}
			parts = append(parts, o.Field+"."+dir)
		}
		values.Set("order", strings.Join(parts, ","))
	}
	if q.Limit > 0 {
		values.Set("limit", fmt.Sprint(q.Limit))
	}
	return values.Encode()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
