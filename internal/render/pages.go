// Package render builds per-page view models. Every builder is a pure
// function of the preprocessed table and the widget selections: data in,
// view model out, nothing mutated. The page set is a closed enum; the
// sidebar only ever offers these six values.
package render

type Page string

const (
	PageHome          Page = "home"
	PageOverview      Page = "overview"
	PageDistributions Page = "distributions"
	PageRelationships Page = "relationships"
	PageTarget        Page = "target"
	PageSummary       Page = "summary"
)

// NavEntry pairs a page value with its sidebar title.
type NavEntry struct {
	Page  Page
	Title string
}

// Nav is the sidebar menu in display order.
var Nav = []NavEntry{
	{PageHome, "Home"},
	{PageOverview, "Data Overview"},
	{PageDistributions, "Distributions"},
	{PageRelationships, "Relationships"},
	{PageTarget, "Target Analysis"},
	{PageSummary, "Summary"},
}

// ParsePage maps a path segment onto the page enum.
func ParsePage(s string) (Page, bool) {
	for _, entry := range Nav {
		if string(entry.Page) == s {
			return entry.Page, true
		}
	}
	return "", false
}

// Title returns the display title of a page.
func (p Page) Title() string {
	for _, entry := range Nav {
		if entry.Page == p {
			return entry.Title
		}
	}
	return string(p)
}
