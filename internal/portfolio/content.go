package portfolio

// Portfolio is the full set of content rendered by the panels
type Portfolio struct {
	Name       string       `yaml:"name" json:"name"`
	Title      string       `yaml:"title" json:"title"`
	Tagline    string       `yaml:"tagline" json:"tagline"`
	About      []string     `yaml:"about" json:"about"`
	Experience []Experience `yaml:"experience" json:"experience"`
	Skills     []SkillGroup `yaml:"skills" json:"skills"`
	Projects   []Project    `yaml:"projects" json:"projects"`
	Contact    Contact      `yaml:"contact" json:"contact"`
}

// Experience is one position in the work history
type Experience struct {
	Role       string   `yaml:"role" json:"role"`
	Company    string   `yaml:"company" json:"company"`
	Period     string   `yaml:"period" json:"period"`
	Location   string   `yaml:"location,omitempty" json:"location,omitempty"`
	Highlights []string `yaml:"highlights" json:"highlights"`
}

// SkillGroup groups skills under a category heading
type SkillGroup struct {
	Category string  `yaml:"category" json:"category"`
	Skills   []Skill `yaml:"skills" json:"skills"`
}

// Skill is a named skill with a proficiency level from 1 to MaxSkillLevel
type Skill struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

// MaxSkillLevel is the top of the proficiency scale
const MaxSkillLevel = 5

// Project is a portfolio project entry
type Project struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech" json:"tech"`
	URL         string   `yaml:"url,omitempty" json:"url,omitempty"`
}

// Contact holds the contact details shown on the contact panel
type Contact struct {
	Email    string `yaml:"email" json:"email"`
	Website  string `yaml:"website,omitempty" json:"website,omitempty"`
	GitHub   string `yaml:"github,omitempty" json:"github,omitempty"`
	LinkedIn string `yaml:"linkedin,omitempty" json:"linkedin,omitempty"`
	Location string `yaml:"location,omitempty" json:"location,omitempty"`
}

// Default returns the built-in portfolio
func Default() *Portfolio {
	return &Portfolio{
		Name:    "Alex Morgan",
		Title:   "Senior Software Engineer",
		Tagline: "Building reliable backend systems and developer tools.",
		About: []string{
			"I design and operate distributed services, with a focus on observability, clean APIs and tooling that makes other engineers faster.",
			"Outside of work I maintain a handful of open source command-line tools and write about terminal UX.",
		},
		Experience: []Experience{
			{
				Role:     "Senior Software Engineer",
				Company:  "Northwind Systems",
				Period:   "2021 - Present",
				Location: "Remote",
				Highlights: []string{
					"Led the migration of the billing pipeline to an event-driven architecture",
					"Cut p99 latency of the public API by 40% through query and cache work",
					"Mentored four engineers through their first on-call rotations",
				},
			},
			{
				Role:     "Software Engineer",
				Company:  "Lumen Analytics",
				Period:   "2017 - 2021",
				Location: "Montreal, QC",
				Highlights: []string{
					"Built the ingestion service handling 2B events per day",
					"Introduced structured logging and tracing across 30 services",
				},
			},
			{
				Role:    "Junior Developer",
				Company: "Pixel & Co",
				Period:  "2015 - 2017",
				Highlights: []string{
					"Shipped internal tooling for content publishing",
				},
			},
		},
		Skills: []SkillGroup{
			{
				Category: "Languages",
				Skills: []Skill{
					{Name: "Go", Level: 5},
					{Name: "TypeScript", Level: 4},
					{Name: "Python", Level: 4},
					{Name: "SQL", Level: 4},
				},
			},
			{
				Category: "Infrastructure",
				Skills: []Skill{
					{Name: "Kubernetes", Level: 4},
					{Name: "Terraform", Level: 3},
					{Name: "PostgreSQL", Level: 4},
					{Name: "Kafka", Level: 3},
				},
			},
			{
				Category: "Practices",
				Skills: []Skill{
					{Name: "API design", Level: 5},
					{Name: "Observability", Level: 4},
					{Name: "Incident response", Level: 4},
				},
			},
		},
		Projects: []Project{
			{
				Name:        "termfolio",
				Description: "This portfolio, rendered as a keyboard-driven terminal application.",
				Tech:        []string{"Go", "Bubble Tea", "Lip Gloss"},
				URL:         "https://github.com/studiowebux/termfolio",
			},
			{
				Name:        "logtail",
				Description: "A fast structured log viewer with filtering and live follow.",
				Tech:        []string{"Go", "SQLite"},
				URL:         "https://github.com/alexmorgan/logtail",
			},
			{
				Name:        "shipit",
				Description: "Release automation for monorepos with changelog generation.",
				Tech:        []string{"TypeScript", "Node.js"},
			},
		},
		Contact: Contact{
			Email:    "alex@example.com",
			Website:  "https://alexmorgan.dev",
			GitHub:   "https://github.com/alexmorgan",
			LinkedIn: "https://www.linkedin.com/in/alexmorgan",
			Location: "Montreal, QC",
		},
	}
}
