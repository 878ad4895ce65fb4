// Package table converts sync results, components and files into rows for
// the table and markdown formatters.
package table

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/agentstation/pushull"
	"github.com/agentstation/pushull/internal/files"
	"github.com/agentstation/pushull/pkg/sync"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ResultToTableData converts a sync result to one row per domain.
func ResultToTableData(result *sync.Result) Data {
	headers := []string{"Domain", "Component", "Translations", "Uploaded", "Downloaded", "Merged", "Deleted", "Skipped"}

	rows := make([][]string, 0, len(result.DomainResults))
	for _, dr := range result.Domains() {
		component := "-"
		if dr.ComponentCreated {
			component = "created"
		}
		rows = append(rows, []string{
			dr.Domain,
			component,
			list(dr.TranslationsCreated),
			list(dr.Uploaded),
			list(dr.Downloaded),
			strconv.Itoa(dr.MergedCount),
			strconv.Itoa(dr.DeletedUnits),
			list(dr.Skipped),
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft, AlignCenter, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft,
		},
	}
}

// ComponentsToTableData converts remote components to table format.
func ComponentsToTableData(components []*pushull.Component) Data {
	rows := make([][]string, 0, len(components))
	for _, c := range components {
		name := c.Name
		if name == "" {
			name = c.Slug
		}
		rows = append(rows, []string{pushull.DenormalizeDomain(c.Slug), c.Slug, name, c.URL})
	}
	return Data{
		Headers: []string{"Domain", "Slug", "Name", "URL"},
		Rows:    rows,
	}
}

// FilesToTableData converts written translation files to table format.
func FilesToTableData(written []files.File) Data {
	rows := make([][]string, 0, len(written))
	for _, f := range written {
		rows = append(rows, []string{f.Path, f.Domain, f.Locale, LanguageName(f.Locale), strconv.Itoa(f.Messages)})
	}
	return Data{
		Headers:         []string{"File", "Domain", "Locale", "Language", "Messages"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight},
	}
}

// LanguageName returns the English name of locale, or "-" when unknown.
func LanguageName(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "-"
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return "-"
}

func list(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
