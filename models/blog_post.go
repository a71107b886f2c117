package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BlogPost is an article on the agency blog. Only published posts are public.
type BlogPost struct {
	ID              uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title           string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug            string                      `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Excerpt         string                      `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Content         string                      `json:"content" db:"content" gorm:"type:text;not null"`
	Category        string                      `json:"category" db:"category" gorm:"type:text;not null;index"`
	FeaturedImage   *string                     `json:"featured_image" db:"featured_image" gorm:"type:text"`
	AuthorID        *uuid.UUID                  `json:"author_id" db:"author_id" gorm:"type:uuid"`
	AuthorName      string                      `json:"author_name" db:"author_name" gorm:"type:text;not null"`
	AuthorRole      string                      `json:"author_role" db:"author_role" gorm:"type:text"`
	AuthorAvatar    *string                     `json:"author_avatar" db:"author_avatar" gorm:"type:text"`
	Published       bool                        `json:"published" db:"published" gorm:"not null;default:false;index"`
	ReadTime        int                         `json:"read_time" db:"read_time" gorm:"type:integer;not null;default:0"`
	Tags            datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	MetaDescription *string                     `json:"meta_description" db:"meta_description" gorm:"type:text"`
	PublishedAt     *time.Time                  `json:"published_at" db:"published_at"`
	CreatedAt       time.Time                   `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt       time.Time                   `json:"updated_at" db:"updated_at" gorm:"not null"`
}

func (BlogPost) TableName() string { return BlogPostsCollection }

// BlogComment is a reader comment on a post. Comments are hidden until approved.
type BlogComment struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	PostID       uuid.UUID  `json:"post_id" db:"post_id" gorm:"type:uuid;not null;index"`
	ParentID     *uuid.UUID `json:"parent_id" db:"parent_id" gorm:"type:uuid"`
	AuthorName   string     `json:"author_name" db:"author_name" gorm:"type:text;not null"`
	AuthorEmail  string     `json:"author_email" db:"author_email" gorm:"type:text;not null"`
	AuthorAvatar *string    `json:"author_avatar" db:"author_avatar" gorm:"type:text"`
	Content      string     `json:"content" db:"content" gorm:"type:text;not null"`
	Approved     bool       `json:"approved" db:"approved" gorm:"not null;default:false"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at" gorm:"not null"`
}

func (BlogComment) TableName() string { return BlogCommentsCollection }

func (c *BlogComment) Stamp(now time.Time) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
}
