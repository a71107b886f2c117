package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GalleryImage is one entry of a project's ordered gallery.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// ProjectTestimonial is the client quote attached to a case study.
type ProjectTestimonial struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Position string `json:"position"`
}

// PortfolioProject is a case study in the portfolio. Featured projects list first.
type PortfolioProject struct {
	ID               uuid.UUID                               `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title            string                                  `json:"title" db:"title" gorm:"type:text;not null"`
	Slug             string                                  `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Category         string                                  `json:"category" db:"category" gorm:"type:text;not null;index"`
	ClientName       string                                  `json:"client_name" db:"client_name" gorm:"type:text;not null"`
	ShortDescription string                                  `json:"short_description" db:"short_description" gorm:"type:text;not null"`
	FullDescription  *string                                 `json:"full_description" db:"full_description" gorm:"type:text"`
	Challenge        *string                                 `json:"challenge" db:"challenge" gorm:"type:text"`
	Solution         *string                                 `json:"solution" db:"solution" gorm:"type:text"`
	Results          datatypes.JSONSlice[string]             `json:"results" db:"results"`
	FeaturedImage    string                                  `json:"featured_image" db:"featured_image" gorm:"type:text;not null"`
	GalleryImages    datatypes.JSONSlice[GalleryImage]       `json:"gallery_images" db:"gallery_images"`
	Technologies     datatypes.JSONSlice[string]             `json:"technologies" db:"technologies"`
	Services         datatypes.JSONSlice[string]             `json:"services" db:"services"`
	Testimonial      *datatypes.JSONType[ProjectTestimonial] `json:"testimonial" db:"testimonial"`
	ProjectURL       *string                                 `json:"project_url" db:"project_url" gorm:"type:text"`
	CompletionDate   *time.Time                              `json:"completion_date" db:"completion_date"`
	Duration         *string                                 `json:"duration" db:"duration" gorm:"type:text"`
	Featured         bool                                    `json:"featured" db:"featured" gorm:"not null;default:false"`
	Published        bool                                    `json:"published" db:"published" gorm:"not null;default:false;index"`
	CreatedAt        time.Time                               `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt        time.Time                               `json:"updated_at" db:"updated_at" gorm:"not null"`
}

func (PortfolioProject) TableName() string { return ProjectsCollection }
