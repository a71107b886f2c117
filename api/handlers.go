package api

import (
	"github.com/rpupo63/nexusconsult-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, rt router) *routeHandlers {
	cfg := rt.config
	catalog := cfg.Catalog
	return &routeHandlers{
		siteHandler: newSiteHandler(database, catalog.TeamDepartments, rt.startupTime),
		blogPostHandler: newBlogPostHandler(database.BlogPostRepo(), database.BlogCommentRepo(),
			catalog.BlogCategories, cfg.SubmittedWindow),
		projectHandler: newProjectHandler(database.ProjectRepo(), catalog.PortfolioCategories),
		submissionHandler: newSubmissionHandler(database.ContactSubmissionRepo(), database.NewsletterRepo(),
			rt.uploader, cfg.SubmittedWindow, cfg.MaxUploadBytes),
		registrationHandler: newRegistrationHandler(rt.uploader, cfg.MaxUploadBytes),
		applicationHandler: newApplicationHandler(database.ApplicationRepo(), database.ApplicationMessageRepo(),
			cfg.SubmittedWindow),
	}
}
