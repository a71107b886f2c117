package database

import (
	"net/http"

	"github.com/rpupo63/nexusconsult-backend/config"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	store                 Collections
	blogPostRepo          *BlogPostRepo
	blogCommentRepo       *BlogCommentRepo
	projectRepo           *ProjectRepo
	teamMemberRepo        *TeamMemberRepo
	testimonialRepo       *TestimonialRepo
	contactSubmissionRepo *ContactSubmissionRepo
	newsletterRepo        *NewsletterRepo
	applicationRepo       *ApplicationRepo
	messageRepo           *ApplicationMessageRepo
}

// New initializes every repository over one shared store.
func New(store Collections) Database {
	return Database{
		store:                 store,
		blogPostRepo:          NewBlogPostRepo(store),
		blogCommentRepo:       NewBlogCommentRepo(store),
		projectRepo:           NewProjectRepo(store),
		teamMemberRepo:        NewTeamMemberRepo(store),
		testimonialRepo:       NewTestimonialRepo(store),
		contactSubmissionRepo: NewContactSubmissionRepo(store),
		newsletterRepo:        NewNewsletterRepo(store),
		applicationRepo:       NewApplicationRepo(store),
		messageRepo:           NewApplicationMessageRepo(store),
	}
}

// OpenStore picks the backing store once at startup. An unconfigured project
// switches every collection to the fixture store; DB_TYPE=supa uses the direct
// Postgres connection, anything else the REST endpoint.
func OpenStore(cfg config.Config) (Collections, *gorm.DB, error) {
	if !cfg.IsConfigured() {
		log.Warn().Msg("Supabase is not configured, serving mock data")
		return NewFixtureStore(), nil, nil
	}

	if cfg.DBType == "supa" {
		db, err := OpenPostgres(cfg, NewGormLogger(logger.Warn))
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("host", cfg.DB.Host).Msg("Connected to Supabase Postgres")
		return NewGormStore(db), db, nil
	}

	log.Info().Str("url", cfg.SupabaseURL).Msg("Using Supabase REST endpoint")
	return NewRestStore(cfg.SupabaseURL, cfg.SupabaseAnonKey, &http.Client{Timeout: cfg.ReadTimeout}), nil, nil
}

// Accessor methods for each repository

func (d Database) Mode() string {
	return d.store.Mode()
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) BlogCommentRepo() *BlogCommentRepo {
	return d.blogCommentRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TeamMemberRepo() *TeamMemberRepo {
	return d.teamMemberRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) ContactSubmissionRepo() *ContactSubmissionRepo {
	return d.contactSubmissionRepo
}

func (d Database) NewsletterRepo() *NewsletterRepo {
	return d.newsletterRepo
}

func (d Database) ApplicationRepo() *ApplicationRepo {
	return d.applicationRepo
}

func (d Database) ApplicationMessageRepo() *ApplicationMessageRepo {
	return d.messageRepo
}
