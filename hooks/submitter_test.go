package hooks

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSubmitterRoundTrip(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	s := NewSubmitter(func(ctx context.Context, p string) error {
		calls++
		<-release
		return nil
	}, 50*time.Millisecond)
	defer s.Close()

	if st := s.State(); st.Submitting || st.Submitted {
		t.Fatalf("unexpected initial state %+v", st)
	}

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background(), "hello") }()

	deadline := time.Now().Add(time.Second)
	for !s.State().Submitting {
		if time.Now().After(deadline) {
			t.Fatal("never entered submitting")
		}
		time.Sleep(time.Millisecond)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if st := s.State(); st.Submitting || !st.Submitted || st.Error != "" {
		t.Fatalf("unexpected state after success %+v", st)
	}

	time.Sleep(150 * time.Millisecond)
	if st := s.State(); st.Submitted {
		t.Fatalf("submitted should reset after the window, got %+v", st)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one write, got %d", calls)
	}
}

func TestSubmitterFailure(t *testing.T) {
	s := NewSubmitter(func(ctx context.Context, p int) error {
		return errors.New("insert failed")
	}, time.Second)
	defer s.Close()

	err := s.Submit(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if st := s.State(); st.Submitted || st.Submitting || st.Error != "insert failed" {
		t.Fatalf("unexpected state %+v", st)
	}
}

func TestSubmitterNewSubmitRestartsWindow(t *testing.T) {
	s := NewSubmitter(func(ctx context.Context, p int) error { return nil }, 80*time.Millisecond)
	defer s.Close()

	_ = s.Submit(context.Background(), 1)
	time.Sleep(50 * time.Millisecond)
	_ = s.Submit(context.Background(), 2)
	time.Sleep(50 * time.Millisecond)
	if !s.State().Submitted {
		t.Fatal("first timer must not reset the second submission")
	}
}

func TestSubmitterZeroWindowKeepsFlag(t *testing.T) {
	s := NewSubmitter(func(ctx context.Context, p int) error { return nil }, 0)
	_ = s.Submit(context.Background(), 1)
	time.Sleep(10 * time.Millisecond)
	if !s.State().Submitted {
		t.Fatal("zero window should keep submitted set")
	}
}
