package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a person on the team page. Inactive members are never listed.
type TeamMember struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name         string    `json:"name" db:"name" gorm:"type:text;not null"`
	Role         string    `json:"role" db:"role" gorm:"type:text;not null"`
	Department   string    `json:"department" db:"department" gorm:"type:text;not null;index"`
	Bio          string    `json:"bio" db:"bio" gorm:"type:text"`
	ImageURL     string    `json:"image_url" db:"image_url" gorm:"type:text"`
	Email        *string   `json:"email" db:"email" gorm:"type:text"`
	LinkedinURL  *string   `json:"linkedin_url" db:"linkedin_url" gorm:"type:text"`
	TwitterURL   *string   `json:"twitter_url" db:"twitter_url" gorm:"type:text"`
	WebsiteURL   *string   `json:"website_url" db:"website_url" gorm:"type:text"`
	DisplayOrder int       `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0"`
	Active       bool      `json:"active" db:"active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}

func (TeamMember) TableName() string { return TeamMembersCollection }

// Testimonial is a client quote. Only approved testimonials are listed.
type Testimonial struct {
	ID            uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ClientName    string     `json:"client_name" db:"client_name" gorm:"type:text;not null"`
	ClientRole    string     `json:"client_role" db:"client_role" gorm:"type:text"`
	ClientCompany string     `json:"client_company" db:"client_company" gorm:"type:text"`
	ClientImage   *string    `json:"client_image" db:"client_image" gorm:"type:text"`
	Content       string     `json:"content" db:"content" gorm:"type:text;not null"`
	Rating        int        `json:"rating" db:"rating" gorm:"type:integer;not null;check:rating BETWEEN 1 AND 5"`
	ProjectID     *uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid"`
	Featured      bool       `json:"featured" db:"featured" gorm:"not null;default:false"`
	Approved      bool       `json:"approved" db:"approved" gorm:"not null;default:false"`
	DisplayOrder  int        `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at" gorm:"not null"`
}

func (Testimonial) TableName() string { return TestimonialsCollection }
