package content

import "github.com/paul-wang1/portfolio/internal/platform/icons"

// ExperienceType classifies an experience entry.
type ExperienceType string

const (
	ExperienceLeadership      ExperienceType = "leadership"
	ExperienceExtracurricular ExperienceType = "extracurricular"
	ExperienceWork            ExperienceType = "work"
)

// PersonalInfo is the site owner's profile.
type PersonalInfo struct {
	Name         string   `yaml:"name" validate:"required"`
	Title        string   `yaml:"title" validate:"required"`
	Institution  string   `yaml:"institution" validate:"required"`
	Major        string   `yaml:"major"`
	Minor        string   `yaml:"minor"`
	Graduation   string   `yaml:"graduation"`
	ClassYear    string   `yaml:"class_year"`
	Email        string   `yaml:"email" validate:"required,email"`
	LinkedIn     string   `yaml:"linkedin" validate:"omitempty,url"`
	GitHub       string   `yaml:"github" validate:"omitempty,url"`
	Location     string   `yaml:"location"`
	Relocation   string   `yaml:"relocation"`
	Availability string   `yaml:"availability"`
	Summary      string   `yaml:"summary"`
	ContactPitch string   `yaml:"contact_pitch"`
	Tagline      string   `yaml:"tagline"`
	Bio          []string `yaml:"bio"`
	Resume       string   `yaml:"resume"`
	Headshot     string   `yaml:"headshot"`
}

// NavItem is one navigation bar entry. Href may be a path, a fragment, or a
// path with a fragment.
type NavItem struct {
	Name string `yaml:"name" validate:"required"`
	Href string `yaml:"href" validate:"required"`
}

// SocialLink is an outbound profile link.
type SocialLink struct {
	Name string   `yaml:"name" validate:"required"`
	Icon icons.ID `yaml:"icon" validate:"required,icon"`
	URL  string   `yaml:"url" validate:"required,url"`
}

// Experience is a role shown in the experience section.
type Experience struct {
	ID           int            `yaml:"id"`
	Type         ExperienceType `yaml:"type" validate:"required,oneof=leadership extracurricular work"`
	Role         string         `yaml:"role" validate:"required"`
	Organization string         `yaml:"organization" validate:"required"`
	Location     string         `yaml:"location"`
	Period       string         `yaml:"period"`
	Description  []string       `yaml:"description"`
}

// Image is a captioned picture.
type Image struct {
	Path    string `yaml:"path" validate:"required"`
	Caption string `yaml:"caption"`
}

// Video references a YouTube video by id.
type Video struct {
	YouTubeID string `yaml:"youtube_id" validate:"required"`
	Caption   string `yaml:"caption"`
}

// Document is a downloadable write-up.
type Document struct {
	Path  string `yaml:"path" validate:"required"`
	Title string `yaml:"title"`
}

// Project is one portfolio project. Implementation holds the Markdown body of
// the project file and is displayed through the narrative formatter.
type Project struct {
	ID             int       `yaml:"id"`
	Slug           string    `yaml:"slug" validate:"required,slug"`
	Order          int       `yaml:"order" validate:"gte=0"`
	Title          string    `yaml:"title" validate:"required"`
	Type           string    `yaml:"type" validate:"required"`
	Description    string    `yaml:"description" validate:"required"`
	HeroImage      string    `yaml:"hero_image"`
	Problem        string    `yaml:"problem"`
	Solution       string    `yaml:"solution"`
	Implementation string    `yaml:"-"`
	Images         []Image   `yaml:"images" validate:"dive"`
	Videos         []Video   `yaml:"videos" validate:"dive"`
	Document       *Document `yaml:"document" validate:"omitempty"`
	TechStack      []string  `yaml:"tech_stack" validate:"dive,required"`
	GitHubURL      string    `yaml:"github_url" validate:"omitempty,url"`
	LiveURL        string    `yaml:"live_url" validate:"omitempty,url"`
	Featured       bool      `yaml:"featured"`

	source string
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Name   string   `yaml:"name" validate:"required"`
	Skills []string `yaml:"skills" validate:"min=1,dive,required"`
}

// AboutPage is the personal page content.
type AboutPage struct {
	Title     string   `yaml:"title" validate:"required"`
	Subtitle  string   `yaml:"subtitle"`
	HeroImage string   `yaml:"hero_image"`
	Bio       []string `yaml:"bio"`
	Photos    []Image  `yaml:"photos" validate:"dive"`
	Hobbies   []string `yaml:"hobbies"`
	FunFacts  []string `yaml:"fun_facts"`
}
