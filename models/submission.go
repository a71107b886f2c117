package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact submission workflow values.
const (
	SubmissionStatusNew        = "new"
	SubmissionStatusInProgress = "in_progress"
	SubmissionStatusCompleted  = "completed"
	SubmissionStatusArchived   = "archived"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ContactSubmission is written by the contact form and never read back publicly.
type ContactSubmission struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Phone     *string   `json:"phone" db:"phone" gorm:"type:text"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	FileURL   *string   `json:"file_url" db:"file_url" gorm:"type:text"`
	Status    string    `json:"status" db:"status" gorm:"type:text;not null;default:'new'"`
	Priority  string    `json:"priority" db:"priority" gorm:"type:text;not null;default:'medium'"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}

func (ContactSubmission) TableName() string { return ContactSubmissionsCollection }

func (s *ContactSubmission) Stamp(now time.Time) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = SubmissionStatusNew
	}
	if s.Priority == "" {
		s.Priority = PriorityMedium
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}

// NewsletterSubscription is written by the newsletter signup.
type NewsletterSubscription struct {
	ID             uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Email          string     `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Source         string     `json:"source" db:"source" gorm:"type:text;not null;default:'website'"`
	Subscribed     bool       `json:"subscribed" db:"subscribed" gorm:"not null"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at" gorm:"not null"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at" db:"unsubscribed_at"`
}

func (NewsletterSubscription) TableName() string { return NewsletterCollection }

// Stamp always marks the row subscribed; signups never create unsubscribed rows.
func (s *NewsletterSubscription) Stamp(now time.Time) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Source == "" {
		s.Source = "website"
	}
	s.Subscribed = true
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
}
