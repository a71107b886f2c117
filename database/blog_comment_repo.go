package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/nexusconsult-backend/models"
)

type BlogCommentRepo struct {
	approved *Resource[models.BlogComment]
	all      *Resource[models.BlogComment]
}

func NewBlogCommentRepo(store Collections) *BlogCommentRepo {
	oldestFirst := Order{Field: "created_at"}
	return &BlogCommentRepo{
		approved: NewResource[models.BlogComment](store, models.BlogCommentsCollection, "comment",
			[]Filter{{Field: "approved", Value: true}}, oldestFirst),
		all: NewResource[models.BlogComment](store, models.BlogCommentsCollection, "comment", nil, oldestFirst),
	}
}

// FindForPost returns the approved comments on a post, oldest first.
func (r *BlogCommentRepo) FindForPost(ctx context.Context, postID uuid.UUID) ([]models.BlogComment, error) {
	return r.approved.Find(ctx, Query{}.Eq("post_id", postID))
}

// Add stores a new comment. Comments start unapproved and stay hidden until moderated.
func (r *BlogCommentRepo) Add(ctx context.Context, comment *models.BlogComment) error {
	comment.Approved = false
	return r.all.Insert(ctx, comment)
}
