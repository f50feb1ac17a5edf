package templates

import (
	"github.com/paul-wang1/portfolio/internal/services/portfolio/content"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/navigation"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	CurrentPath string
	Year        int
	Site        *content.Portfolio
}

func (p PageContext) location() navigation.Location {
	return navigation.ParseLocation(p.CurrentPath)
}

func (p PageContext) lang() string {
	if p.Lang == "" {
		return "en"
	}
	return p.Lang
}

func (p PageContext) site() *content.Portfolio {
	if p.Site == nil {
		return &content.Portfolio{}
	}
	return p.Site
}
