package database

import (
	"context"

	"github.com/rpupo63/nexusconsult-backend/models"
)

// ContactSubmissionRepo is write-only; the public site never reads submissions back.
type ContactSubmissionRepo struct {
	submissions *Resource[models.ContactSubmission]
}

func NewContactSubmissionRepo(store Collections) *ContactSubmissionRepo {
	return &ContactSubmissionRepo{
		submissions: NewResource[models.ContactSubmission](store, models.ContactSubmissionsCollection, "contact submission", nil),
	}
}

// Add inserts one submission.
func (r *ContactSubmissionRepo) Add(ctx context.Context, submission *models.ContactSubmission) error {
	return r.submissions.Insert(ctx, submission)
}

// NewsletterRepo is write-only.
type NewsletterRepo struct {
	subscriptions *Resource[models.NewsletterSubscription]
}

func NewNewsletterRepo(store Collections) *NewsletterRepo {
	return &NewsletterRepo{
		subscriptions: NewResource[models.NewsletterSubscription](store, models.NewsletterCollection, "newsletter subscription", nil),
	}
}

// Subscribe inserts one subscription.
func (r *NewsletterRepo) Subscribe(ctx context.Context, subscription *models.NewsletterSubscription) error {
	return r.subscriptions.Insert(ctx, subscription)
}
