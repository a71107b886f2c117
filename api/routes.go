package api

import (
	"github.com/go-chi/chi/v5"
)

// setupSiteRoutes mounts the public pages and the rate-limited form endpoints.
func setupSiteRoutes(r chi.Router, handlers *routeHandlers, limiter rateLimitMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.siteHandler.health())
		r.Get("/home", handlers.siteHandler.getHome())
		r.Get("/team-members", handlers.siteHandler.getTeamMembers())
		r.Get("/testimonials", handlers.siteHandler.getTestimonials())
		r.Get("/careers", handlers.siteHandler.getCareers())
		r.Get("/services", handlers.siteHandler.getServices())
		r.Post("/chat", handlers.siteHandler.chat())

		r.Get("/blog-posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Get("/blog-post/{slug}", handlers.blogPostHandler.getBlogPost())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{slug}", handlers.projectHandler.getProject())

		r.Get("/applications", handlers.applicationHandler.getApplications())
		r.Get("/applications/{applicationID}/messages", handlers.applicationHandler.getMessages())

		r.Post("/register/validate", handlers.registrationHandler.validateStep())

		r.Group(func(r chi.Router) {
			r.Use(limiter.limit)

			r.Post("/blog-post/{slug}/comments", handlers.blogPostHandler.addComment())
			r.Post("/applications/{applicationID}/messages", handlers.applicationHandler.sendMessage())
			r.Post("/contact", handlers.submissionHandler.submitContact())
			r.Post("/newsletter", handlers.submissionHandler.subscribe())
			r.Post("/register", handlers.registrationHandler.register())
		})
	})
}
