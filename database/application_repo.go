package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/nexusconsult-backend/models"
)

type ApplicationRepo struct {
	applications *Resource[models.JobApplication]
}

func NewApplicationRepo(store Collections) *ApplicationRepo {
	return &ApplicationRepo{
		applications: NewResource[models.JobApplication](store, models.ApplicationsCollection, "application", nil,
			Order{Field: "created_at", Descending: true}),
	}
}

// FindAll returns every application, newest first.
func (r *ApplicationRepo) FindAll(ctx context.Context) ([]models.JobApplication, error) {
	return r.applications.Find(ctx, Query{})
}

// FindByID returns one application.
func (r *ApplicationRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error) {
	return r.applications.FindOne(ctx, "id", id)
}

type ApplicationMessageRepo struct {
	messages *Resource[models.ApplicationMessage]
}

func NewApplicationMessageRepo(store Collections) *ApplicationMessageRepo {
	return &ApplicationMessageRepo{
		messages: NewResource[models.ApplicationMessage](store, models.MessagesCollection, "message", nil,
			Order{Field: "created_at"}),
	}
}

// FindAll returns every message of every application, oldest first.
func (r *ApplicationMessageRepo) FindAll(ctx context.Context) ([]models.ApplicationMessage, error) {
	return r.messages.Find(ctx, Query{})
}

// FindForApplication returns one application's thread, oldest first.
func (r *ApplicationMessageRepo) FindForApplication(ctx context.Context, applicationID uuid.UUID) ([]models.ApplicationMessage, error) {
	return r.messages.Find(ctx, Query{}.Eq("application_id", applicationID))
}

// Add appends a message to a thread.
func (r *ApplicationMessageRepo) Add(ctx context.Context, message *models.ApplicationMessage) error {
	return r.messages.Insert(ctx, message)
}
