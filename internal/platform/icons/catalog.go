package icons

import "strings"

// ID identifies one icon in the catalog.
type ID string

const (
	IDGitHub       ID = "github"
	IDLinkedIn     ID = "linkedin"
	IDEmail        ID = "email"
	IDBriefcase    ID = "briefcase"
	IDUsers        ID = "users"
	IDAward        ID = "award"
	IDCode         ID = "code"
	IDAlert        ID = "alert"
	IDCheck        ID = "check"
	IDArrowLeft    ID = "arrow-left"
	IDArrowRight   ID = "arrow-right"
	IDExternalLink ID = "external-link"
	IDDownload     ID = "download"
	IDMapPin       ID = "map-pin"
	IDChevronDown  ID = "chevron-down"
	IDMenu         ID = "menu"
	IDClose        ID = "close"
)

// Definition describes a catalog entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: IDGitHub, Name: "GitHub", Description: "GitHub profile and repository links."},
	{ID: IDLinkedIn, Name: "LinkedIn", Description: "LinkedIn profile links."},
	{ID: IDEmail, Name: "Email", Description: "Mail links and contact cards."},
	{ID: IDBriefcase, Name: "Briefcase", Description: "Generic work entries; fallback for unknown experience types."},
	{ID: IDUsers, Name: "Users", Description: "Clubs and extracurricular groups."},
	{ID: IDAward, Name: "Award", Description: "Paid work and recognitions."},
	{ID: IDCode, Name: "Code", Description: "Project placeholders without a hero image."},
	{ID: IDAlert, Name: "Alert", Description: "Not found and error pages."},
	{ID: IDCheck, Name: "Check", Description: "Featured badges."},
	{ID: IDArrowLeft, Name: "Arrow left", Description: "Back links."},
	{ID: IDArrowRight, Name: "Arrow right", Description: "Forward links and calls to action."},
	{ID: IDExternalLink, Name: "External link", Description: "Links that open another site."},
	{ID: IDDownload, Name: "Download", Description: "Resume and document downloads."},
	{ID: IDMapPin, Name: "Map pin", Description: "Location lines."},
	{ID: IDChevronDown, Name: "Chevron down", Description: "Scroll hint below the hero."},
	{ID: IDMenu, Name: "Menu", Description: "Mobile menu button while closed."},
	{ID: IDClose, Name: "Close", Description: "Mobile menu button while open."},
}

// Catalog returns a copy of the icon definitions in display order.
func Catalog() []Definition {
	defs := make([]Definition, len(catalog))
	copy(defs, catalog)
	return defs
}

// ParseID resolves a content key to a catalog identifier.
func ParseID(raw string) (ID, bool) {
	key := ID(strings.ToLower(strings.TrimSpace(raw)))
	for _, def := range catalog {
		if def.ID == key {
			return key, true
		}
	}
	return "", false
}
