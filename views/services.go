package views

import (
	"strings"
	"sync"
)

// Process tabs on the services page.
const (
	ProcessSoftware  = "software"
	ProcessMarketing = "marketing"
	ProcessDesign    = "design"
)

type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type ProcessStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQItem is a question as rendered, open or collapsed.
type FAQItem struct {
	FAQ
	Open bool `json:"open"`
}

type ServicesPage struct {
	Services          []Service     `json:"services"`
	ProcessCategories []string      `json:"processCategories"`
	ActiveProcess     string        `json:"activeProcess"`
	Process           []ProcessStep `json:"process"`
	FAQs              []FAQItem     `json:"faqs"`
}

// Services holds the services page state: one process tab and at most one
// open FAQ answer.
type Services struct {
	mu      sync.Mutex
	process string
	openFAQ string
}

func NewServices() *Services {
	return &Services{process: ProcessSoftware}
}

// SetProcess switches the process tab. Unknown categories are ignored.
func (s *Services) SetProcess(category string) {
	category = strings.ToLower(strings.TrimSpace(category))
	if _, ok := processSteps[category]; !ok {
		return
	}
	s.mu.Lock()
	s.process = category
	s.mu.Unlock()
}

// ToggleFAQ opens question, closing any other, or closes it when it is already
// open. It reports whether question is open afterwards.
func (s *Services) ToggleFAQ(question string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.openFAQ == question {
		s.openFAQ = ""
		return false
	}
	s.openFAQ = question
	return true
}

func (s *Services) Snapshot() ServicesPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	page := ServicesPage{
		Services:          append([]Service(nil), serviceCatalog...),
		ProcessCategories: []string{ProcessSoftware, ProcessMarketing, ProcessDesign},
		ActiveProcess:     s.process,
		Process:           append([]ProcessStep(nil), processSteps[s.process]...),
		FAQs:              make([]FAQItem, len(faqs)),
	}
	for i, f := range faqs {
		page.FAQs[i] = FAQItem{FAQ: f, Open: f.Question == s.openFAQ}
	}
	return page
}

var serviceCatalog = []Service{
	{Title: "Custom Software Development", Category: ProcessSoftware,
		Description: "Tailored software solutions designed to address your specific business challenges and streamline operations."},
	{Title: "Data Analytics & BI", Category: ProcessSoftware,
		Description: "Transform your data into actionable insights with our comprehensive business intelligence solutions."},
	{Title: "Digital Marketing Strategy", Category: ProcessMarketing,
		Description: "Strategic marketing plans that increase your online presence and drive measurable business growth."},
	{Title: "SEO Optimization", Category: ProcessMarketing,
		Description: "Improve your search engine rankings and increase organic traffic with our proven SEO techniques."},
	{Title: "Graphic Design", Category: ProcessDesign,
		Description: "Eye-catching visual designs that communicate your brand message effectively and memorably."},
	{Title: "UI/UX Design", Category: ProcessDesign,
		Description: "User-centered design that creates intuitive, engaging experiences across all digital touchpoints."},
	{Title: "Social Media Management", Category: ProcessMarketing,
		Description: "Build and engage your community with strategic content and data-driven social media campaigns."},
	{Title: "Brand Strategy", Category: ProcessDesign,
		Description: "Develop a cohesive brand identity that resonates with your target audience and stands out from competitors."},
	{Title: "Content Creation", Category: ProcessMarketing,
		Description: "Compelling content that tells your story, showcases your expertise, and drives customer engagement."},
}

var processSteps = map[string][]ProcessStep{
	ProcessSoftware: {
		{"Discovery & Planning", "We analyze your business requirements and develop a strategic roadmap for your software solution."},
		{"Design & Architecture", "Our team designs intuitive interfaces and robust system architecture tailored to your needs."},
		{"Development", "We build your solution using modern technologies and best practices for optimal performance."},
		{"Testing & QA", "Rigorous testing ensures your software is reliable, secure, and meets all requirements."},
		{"Deployment", "We handle the technical aspects of launching your solution in your preferred environment."},
		{"Support & Maintenance", "Ongoing support and updates keep your software running smoothly and secure."},
	},
	ProcessMarketing: {
		{"Research & Analysis", "We study your market, audience, and competition to identify opportunities and challenges."},
		{"Strategy Development", "We create a comprehensive marketing plan aligned with your business objectives."},
		{"Content Creation", "Our team develops compelling content that resonates with your target audience."},
		{"Campaign Execution", "We implement your marketing campaigns across relevant channels for maximum impact."},
		{"Performance Tracking", "Real-time analytics provide insights into campaign performance and ROI."},
		{"Optimization", "Continuous improvement based on data to enhance results and maximize returns."},
	},
	ProcessDesign: {
		{"Discovery & Brief", "We define your design goals, target audience, and brand requirements."},
		{"Research & Inspiration", "We explore visual directions and gather inspiration that aligns with your brand."},
		{"Concept Development", "Our designers create initial concepts for review and feedback."},
		{"Design Refinement", "We refine and perfect your designs based on your feedback and requirements."},
		{"Finalization", "Final designs are prepared and optimized for their intended use."},
		{"Implementation Support", "We provide guidelines and support for implementing your designs consistently."},
	},
}

var faqs = []FAQ{
	{
		Question: "How long does a typical project take?",
		Answer:   "Project timelines vary based on scope and complexity. A small website might take 4-6 weeks, while a custom software application could take 3-6 months. During our initial consultation, we'll provide you with a detailed timeline based on your specific requirements.",
	},
	{
		Question: "What is your pricing structure?",
		Answer:   "We offer flexible pricing options including fixed-price projects, retainer agreements, and hourly rates depending on your needs. Each proposal includes a detailed breakdown of costs and deliverables. We believe in transparent pricing with no hidden fees.",
	},
	{
		Question: "Do you work with startups and small businesses?",
		Answer:   "Absolutely! We have experience working with businesses of all sizes, from startups to enterprise organizations. We tailor our approach to meet your specific needs and budget constraints while delivering high-quality solutions.",
	},
	{
		Question: "Can you support our existing systems and applications?",
		Answer:   "Yes, we provide support and maintenance for existing systems, even those not originally developed by us. Our team can audit your current solution, suggest improvements, and implement updates to enhance functionality and performance.",
	},
	{
		Question: "Do you offer ongoing maintenance and support?",
		Answer:   "Yes, we offer flexible maintenance and support packages to ensure your solution remains secure, up-to-date, and functioning optimally. Our support packages include regular updates, monitoring, troubleshooting, and technical assistance.",
	},
}
