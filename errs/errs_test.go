package errs

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	err := NewNotFoundError("blog post not found")
	if !IsNotFound(err) {
		t.Fatalf("expected errors.Is(err, ErrNotFound)")
	}
	if err.Error() != "blog post not found" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if err.StatusCode != http.StatusNotFound {
		t.Fatalf("StatusCode = %d", err.StatusCode)
	}
}

func TestDatabaseErrorFromRemote(t *testing.T) {
	remote := &RemoteError{Collection: "blog_posts", Operation: "select", Status: 500, Message: "relation does not exist"}
	err := NewDatabaseError("find", "blog posts", remote)
	if err.StatusCode != http.StatusBadGateway {
		t.Fatalf("StatusCode = %d, want 502", err.StatusCode)
	}
	if !IsRemoteError(err) {
		t.Fatalf("expected remote error classification")
	}
	var got *RemoteError
	if !errors.As(err.Cause, &got) || got.Message != "relation does not exist" {
		t.Fatalf("expected remote cause to be preserved")
	}
}

func TestDatabaseErrorFromNotFound(t *testing.T) {
	err := NewDatabaseError("find", "project", NewNotFound("project"))
	if err.StatusCode != http.StatusNotFound || !IsNotFound(err) {
		t.Fatalf("expected 404 not found, got %d %v", err.StatusCode, err)
	}
}

func TestValidationErrorListsFields(t *testing.T) {
	err := NewValidationError(map[string]string{"email": "Email is invalid", "name": "Name is required"})
	if !IsValidationError(err) {
		t.Fatalf("expected validation sentinel")
	}
	if err.Details != "invalid fields: email, name" {
		t.Fatalf("Details = %q", err.Details)
	}
	if len(err.Fields) != 2 {
		t.Fatalf("Fields = %v", err.Fields)
	}
}

func TestRemoteErrorMessage(t *testing.T) {
	err := NewRemoteError("testimonials", "select", errors.New("connection refused"))
	if err.Error() != "select testimonials: connection refused" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if err.Message != "connection refused" {
		t.Fatalf("Message = %q", err.Message)
	}
}

func TestDatabaseErrorFromDuplicateKey(t *testing.T) {
	err := NewDatabaseError("insert", "newsletter subscription", errors.New(`duplicate key value violates unique constraint "newsletter_subscriptions_email_key"`))
	if err.StatusCode != http.StatusConflict || !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("got %d %v, want 409 already exists", err.StatusCode, err)
	}
	if err.Cause == nil || err.Details != "Failed to insert newsletter subscription" {
		t.Fatalf("details = %q cause = %v", err.Details, err.Cause)
	}
}

func TestRateLimitErrorCarriesRetryAfter(t *testing.T) {
	err := NewRateLimitError("form submissions", time.Minute)
	if !IsRateLimitError(err) || err.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("got %d %v", err.StatusCode, err)
	}
	if err.RetryAfter != time.Minute {
		t.Fatalf("RetryAfter = %v", err.RetryAfter)
	}
	if IsRateLimitError(NewBadRequestError("nope")) {
		t.Fatal("bad request classified as rate limit")
	}
}

func TestConfigErrors(t *testing.T) {
	cause := errors.New("no such file")
	err := NewConfigError("site.yaml", cause)
	if !IsConfigError(err) || !errors.Is(err.Cause, cause) {
		t.Fatalf("config error not classified: %v", err)
	}
	if env := NewEnvironmentVariableError("SUPABASE_ANON_KEY"); !errors.Is(env, ErrEnvironmentVariable) {
		t.Fatalf("env error not classified: %v", env)
	}
}

func TestInternalErrorMatchesSentinel(t *testing.T) {
	err := NewInternalErrorWithCause("Internal Server Error", errors.New("boom"))
	if !IsInternal(err) || err.Error() != "Internal Server Error" {
		t.Fatalf("got %v", err)
	}
	if IsInternal(NewNotFound("post")) {
		t.Fatal("not found classified as internal")
	}
}
