package push

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/pushull"
	"github.com/agentstation/pushull/internal/appcontext"
	"github.com/agentstation/pushull/internal/cmd/cmdutil"
	"github.com/agentstation/pushull/internal/files"
	"github.com/agentstation/pushull/pkg/catalogs"
	"github.com/agentstation/pushull/pkg/errors"
	"github.com/agentstation/pushull/pkg/sync"
	"github.com/agentstation/pushull/pkg/xliff"
)

func writeFiles(t *testing.T, dir string) {
	t.Helper()

	en := catalogs.New("en")
	en.Add(map[string]string{"hello": "Hello"}, "messages")
	en.Add(map[string]string{"required": "Required"}, "validators")
	de := catalogs.New("de")
	de.Add(map[string]string{"hello": "Hallo"}, "messages")

	_, err := files.Save(dir, catalogs.NewBag(en, de), xliff.EncodeOptions{DefaultLocale: "en"})
	require.NoError(t, err)
}

func newApp(dir string, provider pushull.Provider) *appcontext.Mock {
	return &appcontext.Mock{
		ProviderFunc:        func() (pushull.Provider, error) { return provider, nil },
		TranslationsDirFunc: func() string { return dir },
	}
}

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir)

	var pushed *catalogs.Bag
	provider := &appcontext.ProviderMock{
		WriteFunc: func(_ context.Context, bag *catalogs.Bag) (*sync.Result, error) {
			pushed = bag
			result := sync.NewResult("write", "run")
			result.Domain("messages").Uploaded = []string{"de", "en"}
			return result, nil
		},
	}

	var out bytes.Buffer
	err := Execute(context.Background(), newApp(dir, provider), &cmdutil.SyncFlags{}, nil, &out)
	require.NoError(t, err)

	require.NotNil(t, pushed)
	assert.Equal(t, []string{"de", "en"}, pushed.Locales())
	assert.Equal(t, []string{"messages", "validators"}, pushed.Domains())
	assert.Contains(t, out.String(), `"Operation": "write"`)
	assert.Len(t, provider.ComponentCreatedHooks, 1)
}

func TestExecuteFilters(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir)

	var pushed *catalogs.Bag
	provider := &appcontext.ProviderMock{
		WriteFunc: func(_ context.Context, bag *catalogs.Bag) (*sync.Result, error) {
			pushed = bag
			return sync.NewResult("write", "run"), nil
		},
	}

	flags := &cmdutil.SyncFlags{Locales: []string{"de"}}
	err := Execute(context.Background(), newApp(dir, provider), flags, []string{"messages"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, []string{"de"}, pushed.Locales())
	assert.Equal(t, []string{"messages"}, pushed.Domains())
}

func TestExecuteUsesConfiguredLocales(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir)

	var pushed *catalogs.Bag
	provider := &appcontext.ProviderMock{
		WriteFunc: func(_ context.Context, bag *catalogs.Bag) (*sync.Result, error) {
			pushed = bag
			return sync.NewResult("write", "run"), nil
		},
	}
	app := newApp(dir, provider)
	app.LocalesFunc = func() []string { return []string{"de"} }

	require.NoError(t, Execute(context.Background(), app, &cmdutil.SyncFlags{}, nil, &bytes.Buffer{}))
	assert.Equal(t, []string{"de"}, pushed.Locales())
}

func TestExecuteRunTimeout(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir)

	var hasDeadline bool
	provider := &appcontext.ProviderMock{
		WriteFunc: func(ctx context.Context, _ *catalogs.Bag) (*sync.Result, error) {
			_, hasDeadline = ctx.Deadline()
			return sync.NewResult("write", "run"), nil
		},
	}

	flags := &cmdutil.SyncFlags{Timeout: time.Minute}
	require.NoError(t, Execute(context.Background(), newApp(dir, provider), flags, nil, &bytes.Buffer{}))
	assert.True(t, hasDeadline)

	require.NoError(t, Execute(context.Background(), newApp(dir, provider), &cmdutil.SyncFlags{}, nil, &bytes.Buffer{}))
	assert.False(t, hasDeadline)
}

func TestExecuteCommit(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir)

	var committed []string
	provider := &appcontext.ProviderMock{
		WriteFunc: func(_ context.Context, _ *catalogs.Bag) (*sync.Result, error) {
			result := sync.NewResult("write", "run")
			result.Domain("messages").Uploaded = []string{"de"}
			result.Domain("validators").Skip("en", "catalog is empty")
			return result, nil
		},
		CommitFunc: func(_ context.Context, domain string) error {
			committed = append(committed, domain)
			return nil
		},
	}

	err := Execute(context.Background(), newApp(dir, provider), &cmdutil.SyncFlags{Commit: true}, nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"messages"}, committed)
}

func TestExecuteErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		app := newApp(t.TempDir()+"/missing", &appcontext.ProviderMock{})
		err := Execute(context.Background(), app, &cmdutil.SyncFlags{}, nil, &bytes.Buffer{})
		var validation *errors.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "Dir", validation.Field)
	})

	t.Run("invalid locale", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir)
		provider := &appcontext.ProviderMock{
			WriteFunc: func(context.Context, *catalogs.Bag) (*sync.Result, error) {
				t.Fatal("write must not run")
				return nil, nil
			},
		}
		flags := &cmdutil.SyncFlags{Locales: []string{"not a locale!"}}
		err := Execute(context.Background(), newApp(dir, provider), flags, nil, &bytes.Buffer{})
		var validation *errors.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "Locales", validation.Field)
	})

	t.Run("write failure", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir)
		failure := errors.NewSyncError("write", "messages", "de", errors.NewRemoteError("upload", "translation", "messages/de", 500, ""))
		provider := &appcontext.ProviderMock{
			WriteFunc: func(context.Context, *catalogs.Bag) (*sync.Result, error) { return nil, failure },
		}
		err := Execute(context.Background(), newApp(dir, provider), &cmdutil.SyncFlags{}, nil, &bytes.Buffer{})
		assert.ErrorIs(t, err, failure)
		assert.True(t, errors.IsProviderUnavailable(err))
	})

	t.Run("invalid format", func(t *testing.T) {
		app := newApp(t.TempDir(), &appcontext.ProviderMock{})
		app.OutputFormatFunc = func() string { return "xml" }
		err := Execute(context.Background(), app, &cmdutil.SyncFlags{}, nil, &bytes.Buffer{})
		assert.Error(t, err)
	})
}
