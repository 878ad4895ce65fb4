package pull

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/pushull"
	"github.com/agentstation/pushull/internal/appcontext"
	"github.com/agentstation/pushull/internal/cmd/cmdutil"
	"github.com/agentstation/pushull/internal/files"
	"github.com/agentstation/pushull/pkg/catalogs"
	"github.com/agentstation/pushull/pkg/errors"
)

func TestExecute(t *testing.T) {
	dir := t.TempDir()

	var gotDomains, gotLocales []string
	provider := &appcontext.ProviderMock{
		ReadFunc: func(_ context.Context, domains, locales []string) (*catalogs.Bag, error) {
			gotDomains, gotLocales = domains, locales
			de := catalogs.New("de")
			de.Add(map[string]string{"hello": "Hallo", "bye": "Tschüss"}, "messages")
			return catalogs.NewBag(de), nil
		},
	}
	app := &appcontext.Mock{
		ProviderFunc:        func() (pushull.Provider, error) { return provider, nil },
		TranslationsDirFunc: func() string { return dir },
		LocalesFunc:         func() []string { return []string{"fr"} },
	}

	var out bytes.Buffer
	flags := &cmdutil.SyncFlags{Locales: []string{"de"}}
	require.NoError(t, Execute(context.Background(), app, flags, []string{"messages"}, &out))

	assert.Equal(t, []string{"messages"}, gotDomains)
	assert.Equal(t, []string{"de"}, gotLocales)

	var written []files.File
	require.NoError(t, json.Unmarshal(out.Bytes(), &written))
	require.Len(t, written, 1)
	assert.Equal(t, filepath.Join(dir, "messages.de.xlf"), written[0].Path)
	assert.Equal(t, 2, written[0].Messages)

	bag, err := files.Load(dir, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hallo", bag.Catalog("de").All("messages")["hello"])
}

func TestExecuteUsesConfiguredLocales(t *testing.T) {
	var gotLocales []string
	provider := &appcontext.ProviderMock{
		ReadFunc: func(_ context.Context, _, locales []string) (*catalogs.Bag, error) {
			gotLocales = locales
			return catalogs.NewBag(), nil
		},
	}
	app := &appcontext.Mock{
		ProviderFunc:        func() (pushull.Provider, error) { return provider, nil },
		TranslationsDirFunc: func() string { return t.TempDir() },
		LocalesFunc:         func() []string { return []string{"fr", "it"} },
	}

	require.NoError(t, Execute(context.Background(), app, &cmdutil.SyncFlags{}, nil, &bytes.Buffer{}))
	assert.Equal(t, []string{"fr", "it"}, gotLocales)
}

func TestExecuteRequiresLocales(t *testing.T) {
	app := &appcontext.Mock{}
	err := Execute(context.Background(), app, &cmdutil.SyncFlags{}, nil, &bytes.Buffer{})
	assert.True(t, errors.IsValidationError(err))
}

func TestExecuteRejectsInvalidLocale(t *testing.T) {
	app := &appcontext.Mock{
		ProviderFunc: func() (pushull.Provider, error) {
			t.Fatal("provider must not be created")
			return nil, nil
		},
	}
	flags := &cmdutil.SyncFlags{Locales: []string{"de", "not a locale!"}}
	err := Execute(context.Background(), app, flags, nil, &bytes.Buffer{})
	var validation *errors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Locales", validation.Field)
}
