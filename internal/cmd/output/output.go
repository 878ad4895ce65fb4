package output

import (
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/pushull"
	"github.com/agentstation/pushull/internal/cmd/table"
	"github.com/agentstation/pushull/internal/files"
	"github.com/agentstation/pushull/pkg/sync"
)

// FormatResult writes a sync result in format.
func FormatResult(w io.Writer, result *sync.Result, format Format) error {
	if !format.Tabular() {
		return NewFormatter(format).Format(w, result)
	}
	title := cases.Title(language.English).String(result.Operation) + ": " + result.Summary()
	return formatterWithTitle(format, title).Format(w, table.ResultToTableData(result))
}

// FormatComponents writes remote components in format.
func FormatComponents(w io.Writer, components []*pushull.Component, format Format) error {
	if !format.Tabular() {
		return NewFormatter(format).Format(w, components)
	}
	return formatterWithTitle(format, "Components").Format(w, table.ComponentsToTableData(components))
}

// FormatFiles writes the list of saved translation files in format.
func FormatFiles(w io.Writer, written []files.File, format Format) error {
	if !format.Tabular() {
		return NewFormatter(format).Format(w, written)
	}
	return formatterWithTitle(format, "Files").Format(w, table.FilesToTableData(written))
}

func formatterWithTitle(format Format, title string) Formatter {
	if format == FormatMarkdown {
		return &MarkdownFormatter{Title: title}
	}
	return NewFormatter(format)
}
