package content

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/paul-wang1/portfolio/internal/platform/icons"
	"gopkg.in/yaml.v3"
)

const (
	// SiteFile is the site document path inside a content tree.
	SiteFile = "site.yaml"
	// ProjectsDir holds one Markdown file per project.
	ProjectsDir = "projects"
)

var frontMatterFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

type siteDocument struct {
	Personal   PersonalInfo    `yaml:"personal"`
	Nav        []NavItem       `yaml:"nav" validate:"min=1,dive"`
	Social     []SocialLink    `yaml:"social" validate:"dive"`
	Experience []Experience    `yaml:"experience" validate:"dive"`
	Skills     []SkillCategory `yaml:"skills" validate:"dive"`
	About      AboutPage       `yaml:"about"`
}

// Load reads and validates a content tree.
func Load(fsys fs.FS) (*Portfolio, error) {
	if fsys == nil {
		return nil, errors.New("content filesystem is required")
	}
	doc, err := loadSite(fsys)
	if err != nil {
		return nil, err
	}
	projects, err := loadProjects(fsys)
	if err != nil {
		return nil, err
	}
	return newPortfolio(doc, projects), nil
}

func loadSite(fsys fs.FS) (siteDocument, error) {
	raw, err := fs.ReadFile(fsys, SiteFile)
	if err != nil {
		return siteDocument{}, fmt.Errorf("read %s: %w", SiteFile, err)
	}
	var doc siteDocument
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return siteDocument{}, fmt.Errorf("%w: decode %s: %v", ErrInvalidContent, SiteFile, err)
	}
	for i := range doc.Social {
		if id, ok := icons.ParseID(string(doc.Social[i].Icon)); ok {
			doc.Social[i].Icon = id
		}
	}
	if err := validateStruct(SiteFile, doc); err != nil {
		return siteDocument{}, err
	}
	return doc, nil
}

func loadProjects(fsys fs.FS) ([]Project, error) {
	names, err := fs.Glob(fsys, path.Join(ProjectsDir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	projects := make([]Project, 0, len(names))
	for _, name := range names {
		project, err := loadProject(fsys, name)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	slices.SortStableFunc(projects, func(a, b Project) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), strings.Compare(a.source, b.source))
	})
	if err := validateUniqueSlugs(projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func loadProject(fsys fs.FS, name string) (Project, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Project{}, fmt.Errorf("read %s: %w", name, err)
	}
	var project Project
	body, err := frontmatter.MustParse(bytes.NewReader(raw), &project, frontMatterFormat)
	if err != nil {
		return Project{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidContent, name, err)
	}
	project.Implementation = strings.Trim(string(body), "\r\n")
	project.source = name
	if err := validateStruct(name, project); err != nil {
		return Project{}, err
	}
	return project, nil
}
