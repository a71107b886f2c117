package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/nexusconsult-backend/database"
	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/rpupo63/nexusconsult-backend/forms"
	"github.com/rpupo63/nexusconsult-backend/models"
	"github.com/rpupo63/nexusconsult-backend/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
	commentRepo  *database.BlogCommentRepo
	categories   []string
	window       time.Duration
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo, commentRepo *database.BlogCommentRepo, categories []string, window time.Duration) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
		commentRepo:  commentRepo,
		categories:   categories,
		window:       window,
	}
}

// getAllBlogPosts returns one page of the blog listing
// @Summary List blog posts
// @Description Published posts, newest first, narrowed by category and a free-text search. page counts "Load More" presses starting at 1.
// @Tags Blog Posts
// @Produce json
// @Param category query string false "Category, All when empty or unknown"
// @Param q query string false "Search over title, excerpt, category and author"
// @Param limit query int false "Posts per page" default(6)
// @Param page query int false "Pages revealed" default(1)
// @Success 200 {object} views.Page[models.BlogPost]
// @Failure 504 {object} ErrorResponse "Timed out waiting for the store"
// @Router /blog-posts [get]
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		listing := views.NewBlogListing(h.blogPostRepo, h.categories, queryInt(r, "limit", views.BlogPageSize), q.Get("category"))
		defer listing.Close()

		listing.SetSearch(q.Get("q"))
		listing.ShowPages(queryInt(r, "page", 1))

		page, err := listing.Snapshot(r.Context())
		if err != nil {
			h.responder.WriteTimeoutError(w, r.URL.Path)
			return
		}
		h.responder.WriteJSON(w, page)
	}
}

// getBlogPost returns a post with its related posts and approved comments
// @Summary Get blog post
// @Tags Blog Posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} views.Detail[views.BlogPostView]
// @Failure 404 {object} ErrorResponse "Not Found - redirect names the blog listing"
// @Router /blog-post/{slug} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail := views.NewBlogDetail(h.blogPostRepo, h.commentRepo, chi.URLParam(r, "slug"))
		defer detail.Close()

		d, err := detail.Snapshot(r.Context())
		if err != nil {
			h.responder.WriteTimeoutError(w, r.URL.Path)
			return
		}
		if d.NotFound {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found").WithRedirect(d.Redirect))
			return
		}
		h.responder.WriteJSON(w, d)
	}
}

// addComment stores a reader comment. Comments wait for moderation before
// they are listed.
// @Summary Comment on a blog post
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Param comment body forms.CommentForm true "Comment"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Failure 502 {object} ErrorResponse "Store rejected the write"
// @Router /blog-post/{slug}/comments [post]
func (h blogPostHandler) addComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form forms.CommentForm
		if err := decodeJSON(w, r, defaultMaxBody, &form); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := form.Validate().Err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.blogPostRepo.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}

		comment := models.BlogComment{
			PostID:      post.ID,
			AuthorName:  strings.TrimSpace(form.Name),
			AuthorEmail: strings.TrimSpace(form.Email),
			Content:     strings.TrimSpace(form.Content),
		}
		if form.ParentID != "" {
			parent, err := uuid.Parse(form.ParentID)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("parentId", "not a valid id"))
				return
			}
			comment.ParentID = &parent
		}

		resp, err := submitOnce(r.Context(), h.window, func(ctx context.Context, c *models.BlogComment) error {
			return h.commentRepo.Add(ctx, c)
		}, &comment)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("add", "blog comment", err))
			return
		}
		h.logger.Info().Str("post", post.Slug).Msg("Comment received")
		h.responder.WriteStatus(w, http.StatusCreated, resp)
	}
}
