package models

import (
	"time"

	"github.com/google/uuid"
)

// Application pipeline: pending -> reviewing -> interview|task -> accepted|rejected.
const (
	ApplicationPending   = "pending"
	ApplicationReviewing = "reviewing"
	ApplicationInterview = "interview"
	ApplicationTask      = "task"
	ApplicationAccepted  = "accepted"
	ApplicationRejected  = "rejected"

	SenderApplicant = "applicant"
	SenderCompany   = "company"
)

// JobApplication is a candidate's application as shown on the dashboard.
type JobApplication struct {
	ID              uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	PositionTitle   string     `json:"position_title" db:"position_title" gorm:"type:text;not null"`
	Department      string     `json:"department" db:"department" gorm:"type:text;not null"`
	ApplicationType string     `json:"application_type" db:"application_type" gorm:"type:text;not null"`
	Status          string     `json:"status" db:"status" gorm:"type:text;not null;default:'pending'"`
	Feedback        *string    `json:"feedback" db:"feedback" gorm:"type:text"`
	NextStep        *string    `json:"next_step" db:"next_step" gorm:"type:text"`
	TaskDescription *string    `json:"task_description" db:"task_description" gorm:"type:text"`
	TaskDueDate     *time.Time `json:"task_due_date" db:"task_due_date"`
	TaskSubmitted   bool       `json:"task_submitted" db:"task_submitted" gorm:"not null;default:false"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at" gorm:"not null"`
}

func (JobApplication) TableName() string { return ApplicationsCollection }

// HasTask reports whether the application carries a task sub-record.
func (a JobApplication) HasTask() bool {
	return a.TaskDescription != nil
}

// ApplicationMessage is one entry of an application's message thread.
type ApplicationMessage struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ApplicationID uuid.UUID `json:"application_id" db:"application_id" gorm:"type:uuid;not null;index"`
	SenderType    string    `json:"sender_type" db:"sender_type" gorm:"type:text;not null"`
	Content       string    `json:"content" db:"content" gorm:"type:text;not null"`
	Read          bool      `json:"read" db:"read" gorm:"not null;default:false"`
	CreatedAt     time.Time `json:"created_at" db:"created_at" gorm:"not null"`
}

func (ApplicationMessage) TableName() string { return MessagesCollection }

func (m *ApplicationMessage) Stamp(now time.Time) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.SenderType == "" {
		m.SenderType = SenderApplicant
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
}
