package views

import (
	"sync"

	"github.com/rpupo63/nexusconsult-backend/models"
)

type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

type Internship struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Department  string `json:"department"`
	Description string `json:"description"`
}

// JobCard is a job as rendered, with its expansion toggle.
type JobCard struct {
	Job
	Expanded bool `json:"expanded"`
}

type CareersPage struct {
	Jobs             []JobCard    `json:"jobs"`
	Internships      []Internship `json:"internships"`
	ActiveDepartment string       `json:"activeDepartment"`
	Departments      []string     `json:"departments"`
}

// Careers is the static job board. Nothing on it is fetched.
type Careers struct {
	mu         sync.Mutex
	department string
	expanded   map[string]bool
}

func NewCareers() *Careers {
	return &Careers{department: models.CategoryAll, expanded: map[string]bool{}}
}

// SetDepartment narrows both lists. Unknown departments show everything.
func (c *Careers) SetDepartment(department string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.department = models.CategoryAll
	for _, d := range careerDepartments() {
		if d == department {
			c.department = d
		}
	}
}

// Toggle flips a job's expansion and reports the new state.
func (c *Careers) Toggle(jobID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expanded[jobID] = !c.expanded[jobID]
	return c.expanded[jobID]
}

func (c *Careers) Snapshot() CareersPage {
	c.mu.Lock()
	defer c.mu.Unlock()

	page := CareersPage{
		Jobs:             []JobCard{},
		Internships:      []Internship{},
		ActiveDepartment: c.department,
		Departments:      append([]string{models.CategoryAll}, careerDepartments()...),
	}
	for _, j := range jobCatalog {
		if c.department == models.CategoryAll || j.Department == c.department {
			page.Jobs = append(page.Jobs, JobCard{Job: j, Expanded: c.expanded[j.ID]})
		}
	}
	for _, i := range internshipCatalog {
		if c.department == models.CategoryAll || i.Department == c.department {
			page.Internships = append(page.Internships, i)
		}
	}
	return page
}

func careerDepartments() []string {
	return []string{"Technology", "Marketing", "Design"}
}

var jobCatalog = []Job{
	{
		ID:          "j1",
		Title:       "Senior Software Developer",
		Department:  "Technology",
		Location:    "San Francisco, CA",
		Type:        "Full-time",
		Description: "We're looking for an experienced software developer to lead the development of innovative solutions for our clients. You'll work with cutting-edge technologies and collaborate with a talented team of professionals.",
		Requirements: []string{
			"5+ years of experience in software development",
			"Proficiency in JavaScript, TypeScript, and React",
			"Experience with Node.js and backend frameworks",
			"Knowledge of CI/CD and cloud platforms",
			"Strong problem-solving skills and attention to detail",
		},
	},
	{
		ID:          "j2",
		Title:       "Digital Marketing Specialist",
		Department:  "Marketing",
		Location:    "Remote",
		Type:        "Full-time",
		Description: "Join our marketing team to develop and implement data-driven marketing strategies for our clients. You'll be responsible for creating engaging campaigns across various digital platforms to drive measurable results.",
		Requirements: []string{
			"3+ years of experience in digital marketing",
			"Experience with SEO, SEM, and social media marketing",
			"Knowledge of analytics tools and data interpretation",
			"Excellent communication and project management skills",
			"Creative thinking and problem-solving abilities",
		},
	},
	{
		ID:          "j3",
		Title:       "UX/UI Designer",
		Department:  "Design",
		Location:    "New York, NY",
		Type:        "Full-time",
		Description: "We're seeking a talented UX/UI designer to create intuitive and visually appealing interfaces for web and mobile applications. You'll work closely with clients and development teams to deliver exceptional user experiences.",
		Requirements: []string{
			"3+ years of experience in UX/UI design",
			"Proficiency in design tools like Figma, Sketch, Adobe XD",
			"Strong portfolio demonstrating user-centered design",
			"Experience with design systems and component libraries",
			"Understanding of accessibility standards and best practices",
		},
	},
}

var internshipCatalog = []Internship{
	{
		ID:          "i1",
		Title:       "Software Development Internship",
		Duration:    "3-6 months",
		Department:  "Technology",
		Description: "Gain hands-on experience in software development working alongside our experienced team. Learn modern development practices and contribute to real client projects.",
	},
	{
		ID:          "i2",
		Title:       "Digital Marketing Internship",
		Duration:    "3-6 months",
		Department:  "Marketing",
		Description: "Develop practical marketing skills by assisting with campaign planning, execution, and analysis. Experience the full marketing lifecycle and learn industry best practices.",
	},
	{
		ID:          "i3",
		Title:       "Graphic Design Internship",
		Duration:    "3-6 months",
		Department:  "Design",
		Description: "Build your design portfolio while working on real client projects. Learn about brand identity, visual communication, and design processes in a professional environment.",
	},
}
