package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/pushull"
	"github.com/agentstation/pushull/internal/files"
	"github.com/agentstation/pushull/pkg/sync"
)

func TestResultToTableData(t *testing.T) {
	result := sync.NewResult("write", "run")
	dr := result.Domain("validators")
	dr.ComponentCreated = true
	dr.Uploaded = []string{"en"}
	other := result.Domain("messages")
	other.TranslationsCreated = []string{"de"}
	other.Uploaded = []string{"de", "fr"}
	other.Downloaded = []string{"fr"}
	other.MergedCount = 2

	data := ResultToTableData(result)

	require.Len(t, data.Rows, 2)
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
	assert.Equal(t, []string{"messages", "-", "de", "de, fr", "fr", "2", "0", "-"}, data.Rows[0])
	assert.Equal(t, []string{"validators", "created", "-", "en", "-", "0", "0", "-"}, data.Rows[1])
}

func TestComponentsToTableData(t *testing.T) {
	data := ComponentsToTableData([]*pushull.Component{
		{Slug: "messages", Name: "Messages", URL: "https://weblate.example.com/api/components/app/messages/"},
		{Slug: "emails_dot_html"},
	})

	require.Len(t, data.Rows, 2)
	assert.Equal(t, "messages", data.Rows[0][0])
	assert.Equal(t, "Messages", data.Rows[0][2])
	assert.Equal(t, []string{"emails.html", "emails_dot_html", "emails_dot_html", ""}, data.Rows[1])
}

func TestFilesToTableData(t *testing.T) {
	data := FilesToTableData([]files.File{
		{Path: "translations/messages.de.xlf", Domain: "messages", Locale: "de", Messages: 3},
	})

	require.Len(t, data.Rows, 1)
	assert.Equal(t, []string{"translations/messages.de.xlf", "messages", "de", "German", "3"}, data.Rows[0])
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"fr", "French"},
		{"de", "German"},
		{"not a locale", "-"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageName(tt.locale))
		})
	}

	assert.NotEqual(t, "-", LanguageName("pt_BR"), "underscore separated locales are accepted")
}
