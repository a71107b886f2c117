package models

import "time"

// Collection names in the hosted store. Each model's TableName returns one of these.
const (
	BlogPostsCollection          = "blog_posts"
	ProjectsCollection           = "portfolio_projects"
	TeamMembersCollection        = "team_members"
	TestimonialsCollection       = "testimonials"
	ContactSubmissionsCollection = "contact_submissions"
	NewsletterCollection         = "newsletter_subscriptions"
	BlogCommentsCollection       = "blog_comments"
	ApplicationsCollection       = "job_applications"
	MessagesCollection           = "application_messages"
)

// CategoryAll is the listing filter that matches every record.
const CategoryAll = "All"

// Stamper is implemented by records this service inserts. Stamp assigns the id,
// timestamps and column defaults a fresh row needs.
type Stamper interface {
	Stamp(now time.Time)
}

// All returns one zero value of every model, in migration order.
func All() []interface{} {
	return []interface{}{
		&BlogPost{},
		&BlogComment{},
		&PortfolioProject{},
		&TeamMember{},
		&Testimonial{},
		&ContactSubmission{},
		&NewsletterSubscription{},
		&JobApplication{},
		&ApplicationMessage{},
	}
}
