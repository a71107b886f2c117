package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/nexusconsult-backend/models"
	"gorm.io/datatypes"
)

// FixtureID derives the stable id of a fixture record from its short name.
func FixtureID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("nexusconsult:"+name))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func pexels(id string) string {
	return "https://images.pexels.com/photos/" + id + "/pexels-photo-" + id + ".jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"
}

// NewFixtureStore returns a MockStore seeded with the demo dataset served when
// the hosted store is not configured.
func NewFixtureStore() *MockStore {
	s := NewMockStore()
	seed := map[string][]any{
		models.BlogPostsCollection:    toAny(FixtureBlogPosts()),
		models.BlogCommentsCollection: toAny(FixtureBlogComments()),
		models.ProjectsCollection:     toAny(FixtureProjects()),
		models.TeamMembersCollection:  toAny(FixtureTeamMembers()),
		models.TestimonialsCollection: toAny(FixtureTestimonials()),
		models.ApplicationsCollection: toAny(FixtureApplications()),
		models.MessagesCollection:     toAny(FixtureMessages()),
	}
	for collection, records := range seed {
		mustSeed(s, collection, records...)
	}
	return s
}

// mustSeed panics when a fixture cannot be stored, so mock mode never starts
// with a silently empty collection.
func mustSeed(s *MockStore, collection string, records ...any) {
	if err := s.Seed(collection, records...); err != nil {
		panic(fmt.Sprintf("seed fixture collection %s: %v", collection, err))
	}
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out
}

func post(name, title, excerpt, category, author, role, image string, readTime int, at time.Time, tags ...string) models.BlogPost {
	return models.BlogPost{
		ID:            FixtureID(name),
		Title:         title,
		Slug:          slugify(title),
		Excerpt:       excerpt,
		Content:       "<p>" + excerpt + "</p>",
		Category:      category,
		FeaturedImage: ptr(pexels(image)),
		AuthorName:    author,
		AuthorRole:    role,
		Published:     true,
		ReadTime:      readTime,
		Tags:          datatypes.JSONSlice[string](tags),
		PublishedAt:   ptr(at),
		CreatedAt:     at,
		UpdatedAt:     at,
	}
}

func FixtureBlogPosts() []models.BlogPost {
	draft := post("b7", "Measuring Brand Equity in a Cookieless World",
		"Work in progress on attribution after third-party cookies.",
		"Marketing", "Sophia Chen", "Marketing Strategist", "905163", 6, day(2023, time.July, 1))
	draft.Published = false
	draft.PublishedAt = nil

	return []models.BlogPost{
		post("b1", "The Future of AI in Business Consulting",
			"Explore how artificial intelligence is transforming the consulting industry and creating new opportunities for businesses.",
			"Technology", "Alex Morgan", "Technology Director", "2599244", 5, day(2023, time.June, 15), "AI", "Consulting"),
		post("b2", "5 Marketing Trends That Will Dominate 2023",
			"Stay ahead of the curve with these emerging marketing trends that are set to reshape the industry this year.",
			"Marketing", "Sophia Chen", "Marketing Strategist", "905163", 4, day(2023, time.May, 22), "Trends"),
		post("b3", "Design Systems: Why Every Brand Needs One",
			"Learn how implementing a comprehensive design system can streamline your brand's visual identity and improve consistency.",
			"Design", "Marcus Johnson", "Creative Director", "196644", 6, day(2023, time.April, 10), "Branding", "UI"),
		post("b4", "Building Scalable Software Architecture",
			"Discover the key principles of designing software systems that can grow with your business needs.",
			"Technology", "Raj Patel", "Lead Developer", "1181298", 7, day(2023, time.March, 18), "Architecture"),
		post("b5", "The Psychology of Color in Branding",
			"Explore how color choices influence consumer perception and how to leverage this in your brand strategy.",
			"Design", "Emma Williams", "Brand Strategist", "1037999", 5, day(2023, time.February, 28), "Branding"),
		post("b6", "Optimizing Customer Acquisition Costs",
			"Learn strategies to reduce your CAC while maintaining quality leads and improving conversion rates.",
			"Marketing", "Daniel Smith", "Growth Manager", "6476589", 6, day(2023, time.January, 15), "Growth"),
		draft,
	}
}

func FixtureBlogComments() []models.BlogComment {
	first := FixtureID("c1")
	return []models.BlogComment{
		{
			ID:          first,
			PostID:      FixtureID("b1"),
			AuthorName:  "Jennifer Lee",
			AuthorEmail: "jennifer@example.com",
			Content:     "Great insights on how AI is changing consulting. Would love a follow-up on implementation challenges.",
			Approved:    true,
			CreatedAt:   day(2023, time.June, 16),
		},
		{
			ID:          FixtureID("c2"),
			PostID:      FixtureID("b1"),
			ParentID:    &first,
			AuthorName:  "Alex Morgan",
			AuthorEmail: "alex@nexusconsult.com",
			Content:     "Thanks Jennifer, a follow-up on implementation is already in the works.",
			Approved:    true,
			CreatedAt:   day(2023, time.June, 17),
		},
		{
			ID:          FixtureID("c3"),
			PostID:      FixtureID("b1"),
			AuthorName:  "Mark Thompson",
			AuthorEmail: "mark@example.com",
			Content:     "How do you see AI affecting smaller consulting firms?",
			Approved:    false,
			CreatedAt:   day(2023, time.June, 18),
		},
	}
}

func project(name, title, category, client, image, description string, featured bool, at time.Time, technologies ...string) models.PortfolioProject {
	return models.PortfolioProject{
		ID:               FixtureID(name),
		Title:            title,
		Slug:             slugify(title),
		Category:         category,
		ClientName:       client,
		ShortDescription: description,
		FeaturedImage:    pexels(image),
		Results:          datatypes.JSONSlice[string]{},
		GalleryImages:    datatypes.JSONSlice[models.GalleryImage]{{Src: pexels(image), Alt: title}},
		Technologies:     datatypes.JSONSlice[string](technologies),
		Services:         datatypes.JSONSlice[string]{category},
		Featured:         featured,
		Published:        true,
		CreatedAt:        at,
		UpdatedAt:        at,
	}
}

func FixtureProjects() []models.PortfolioProject {
	greenLife := project("p2", "GreenLife Brand Identity", "Design", "GreenLife Organics", "6177645",
		"Complete brand overhaul for an eco-friendly lifestyle company, including logo, color palette, and design system.",
		true, day(2023, time.May, 15), "Adobe Illustrator", "Figma")
	greenLife.FullDescription = ptr("GreenLife Organics needed a brand identity that reflected its commitment to sustainability while appealing to a modern audience.")
	greenLife.Challenge = ptr("The existing brand felt dated and failed to communicate the company's eco-friendly values.")
	greenLife.Solution = ptr("We built a fresh visual identity around natural colors and a flexible design system for every touchpoint.")
	greenLife.Results = datatypes.JSONSlice[string]{
		"40% increase in brand recognition",
		"25% growth in social media engagement",
		"Consistent identity across 12 product lines",
	}
	greenLife.Testimonial = ptr(datatypes.NewJSONType(models.ProjectTestimonial{
		Quote:    "NexusConsult captured exactly who we are. Our customers noticed the difference immediately.",
		Author:   "Sarah Miller",
		Position: "CEO, GreenLife Organics",
	}))
	greenLife.Duration = ptr("3 months")
	greenLife.CompletionDate = ptr(day(2023, time.April, 30))

	hidden := project("p9", "Fintech Onboarding Revamp", "Software", "Ledgerly", "7889441",
		"Onboarding flow redesign awaiting client approval.", false, day(2023, time.July, 1), "React")
	hidden.Published = false

	return []models.PortfolioProject{
		project("p1", "TechFinance Dashboard", "Software", "CapitalGrowth Inc.", "7889441",
			"An intuitive financial analytics platform with real-time data visualization for investment tracking.",
			true, day(2023, time.June, 1), "React", "Go", "PostgreSQL"),
		greenLife,
		project("p3", "Urban Eats Campaign", "Marketing", "Urban Eats Co.", "696218",
			"Digital marketing campaign increasing online orders by 150% through strategic social media and influencer partnerships.",
			false, day(2023, time.April, 20)),
		project("p4", "HealthTrack App", "Software", "HealthPlus Medical", "4386467",
			"Mobile application for health monitoring with personalized insights, activity tracking, and nutrition guidance.",
			false, day(2023, time.April, 1), "React Native", "Node.js"),
		project("p5", "Luxury Resort Website", "Design", "Azure Bay Resorts", "338504",
			"Immersive website design for a luxury resort, featuring virtual tours, booking system, and responsive layout.",
			false, day(2023, time.March, 10), "Figma", "WordPress"),
		project("p6", "E-Commerce Growth Strategy", "Marketing", "StyleHub Fashion", "230544",
			"Comprehensive marketing strategy that increased conversion rates by 75% and expanded market reach for an online retailer.",
			false, day(2023, time.February, 20)),
		project("p7", "Smart Home IoT Platform", "Software", "ConnectedLiving Tech", "1643383",
			"Integrated IoT platform for managing smart home devices with advanced automation capabilities and intuitive controls.",
			false, day(2023, time.February, 1), "Go", "MQTT"),
		project("p8", "Sustainable Packaging Design", "Design", "NaturalProducts Co.", "7262996",
			"Eco-friendly packaging redesign that reduced materials by 40% while enhancing brand visibility and customer experience.",
			false, day(2023, time.January, 10)),
		hidden,
	}
}

func member(name, fullName, role, department, image string, order int) models.TeamMember {
	at := day(2023, time.January, 1)
	return models.TeamMember{
		ID:           FixtureID(name),
		Name:         fullName,
		Role:         role,
		Department:   department,
		Bio:          fullName + " leads " + department + " work at NexusConsult.",
		ImageURL:     pexels(image),
		LinkedinURL:  ptr("https://linkedin.com"),
		DisplayOrder: order,
		Active:       true,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}

func FixtureTeamMembers() []models.TeamMember {
	former := member("t9", "Noah Brooks", "Content Writer", "Marketing", "1222271", 9)
	former.Active = false

	return []models.TeamMember{
		member("t1", "David Chen", "CEO & Founder", "Leadership", "2379004", 1),
		member("t2", "Sarah Johnson", "CTO", "Technology", "774909", 2),
		member("t3", "Michael Rodriguez", "Marketing Director", "Marketing", "2182970", 3),
		member("t4", "Emily Chen", "Creative Director", "Design", "1239291", 4),
		member("t5", "James Wilson", "Lead Developer", "Technology", "1681010", 5),
		member("t6", "Sophia Kim", "UX/UI Designer", "Design", "415829", 6),
		member("t7", "Daniel Martinez", "SEO Specialist", "Marketing", "220453", 7),
		member("t8", "Olivia Taylor", "Project Manager", "Operations", "733872", 8),
		former,
	}
}

func FixtureTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID:            FixtureID("r1"),
			ClientName:    "Sarah Johnson",
			ClientRole:    "CEO",
			ClientCompany: "TechInnovate",
			ClientImage:   ptr(pexels("774909")),
			Content:       "NexusConsult transformed our digital presence. Their strategic approach and technical expertise helped us increase our online engagement by 200%.",
			Rating:        5,
			ProjectID:     ptr(FixtureID("p1")),
			Featured:      true,
			Approved:      true,
			DisplayOrder:  1,
			CreatedAt:     day(2023, time.March, 1),
		},
		{
			ID:            FixtureID("r2"),
			ClientName:    "Michael Rodriguez",
			ClientRole:    "Marketing Director",
			ClientCompany: "EcoFriendly Co.",
			ClientImage:   ptr(pexels("2182970")),
			Content:       "Working with NexusConsult was a game-changer. Their marketing strategies delivered measurable results and their team was a pleasure to work with.",
			Rating:        5,
			Featured:      true,
			Approved:      true,
			DisplayOrder:  2,
			CreatedAt:     day(2023, time.April, 1),
		},
		{
			ID:            FixtureID("r3"),
			ClientName:    "Emily Chen",
			ClientRole:    "Product Manager",
			ClientCompany: "HealthPlus",
			ClientImage:   ptr(pexels("1239291")),
			Content:       "The app NexusConsult built for us exceeded expectations. Users love the intuitive design and our retention has never been better.",
			Rating:        4,
			ProjectID:     ptr(FixtureID("p4")),
			Featured:      false,
			Approved:      true,
			DisplayOrder:  3,
			CreatedAt:     day(2023, time.May, 1),
		},
		{
			ID:            FixtureID("r4"),
			ClientName:    "Tom Baker",
			ClientRole:    "Founder",
			ClientCompany: "Pending Review Ltd.",
			Content:       "Awaiting moderation.",
			Rating:        3,
			Approved:      false,
			DisplayOrder:  4,
			CreatedAt:     day(2023, time.June, 1),
		},
	}
}

func FixtureApplications() []models.JobApplication {
	return []models.JobApplication{
		{
			ID:              FixtureID("app1"),
			PositionTitle:   "Software Development Intern",
			Department:      "Technology",
			ApplicationType: "internship",
			Status:          models.ApplicationInterview,
			NextStep:        ptr("Technical interview scheduled for June 20, 2023 at 2:00 PM"),
			CreatedAt:       day(2023, time.June, 1),
			UpdatedAt:       day(2023, time.June, 10),
		},
		{
			ID:              FixtureID("app2"),
			PositionTitle:   "Digital Marketing Intern",
			Department:      "Marketing",
			ApplicationType: "internship",
			Status:          models.ApplicationTask,
			TaskDescription: ptr("Create a sample social media campaign for a fictional eco-friendly product"),
			TaskDueDate:     ptr(day(2023, time.June, 25)),
			TaskSubmitted:   false,
			CreatedAt:       day(2023, time.May, 28),
			UpdatedAt:       day(2023, time.June, 12),
		},
		{
			ID:              FixtureID("app3"),
			PositionTitle:   "UX/UI Designer",
			Department:      "Design",
			ApplicationType: "job",
			Status:          models.ApplicationRejected,
			Feedback:        ptr("We were impressed with your portfolio but decided to move forward with candidates who have more experience in user research."),
			CreatedAt:       day(2023, time.May, 15),
			UpdatedAt:       day(2023, time.June, 5),
		},
		{
			ID:              FixtureID("app4"),
			PositionTitle:   "Product Manager",
			Department:      "Technology",
			ApplicationType: "job",
			Status:          models.ApplicationReviewing,
			CreatedAt:       day(2023, time.June, 10),
			UpdatedAt:       day(2023, time.June, 10),
		},
	}
}

func FixtureMessages() []models.ApplicationMessage {
	app1, app2 := FixtureID("app1"), FixtureID("app2")
	return []models.ApplicationMessage{
		{
			ID:            FixtureID("msg1"),
			ApplicationID: app1,
			SenderType:    models.SenderCompany,
			Content:       "Thank you for your application! We'd like to invite you to a technical interview.",
			Read:          true,
			CreatedAt:     time.Date(2023, time.June, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:            FixtureID("msg2"),
			ApplicationID: app1,
			SenderType:    models.SenderApplicant,
			Content:       "Thank you for the opportunity! I'm available on June 20th at 2:00 PM.",
			Read:          true,
			CreatedAt:     time.Date(2023, time.June, 10, 15, 45, 0, 0, time.UTC),
		},
		{
			ID:            FixtureID("msg3"),
			ApplicationID: app1,
			SenderType:    models.SenderCompany,
			Content:       "Great! We've scheduled your interview for June 20th at 2:00 PM. You'll receive a calendar invite shortly.",
			Read:          false,
			CreatedAt:     time.Date(2023, time.June, 11, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:            FixtureID("msg4"),
			ApplicationID: app2,
			SenderType:    models.SenderCompany,
			Content:       "Hello! As part of our selection process, we'd like you to complete a small task. Please create a sample social media campaign for a fictional eco-friendly product and submit it by June 25.",
			Read:          true,
			CreatedAt:     time.Date(2023, time.June, 12, 11, 0, 0, 0, time.UTC),
		},
	}
}
