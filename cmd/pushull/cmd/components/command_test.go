package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/pushull"
	"github.com/agentstation/pushull/internal/appcontext"
	"github.com/agentstation/pushull/pkg/errors"
)

func run(t *testing.T, provider *appcontext.ProviderMock, args ...string) (string, error) {
	t.Helper()

	app := &appcontext.Mock{
		ProviderFunc: func() (pushull.Provider, error) { return provider, nil },
	}
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList(t *testing.T) {
	provider := &appcontext.ProviderMock{
		ComponentsFunc: func(context.Context) ([]*pushull.Component, error) {
			return []*pushull.Component{{Slug: "messages"}, {Slug: "validators"}}, nil
		},
	}

	out, err := run(t, provider, "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"slug": "messages"`)
	assert.Contains(t, out, `"slug": "validators"`)
}

func TestDelete(t *testing.T) {
	var deleted string
	provider := &appcontext.ProviderMock{
		DeleteComponentFunc: func(_ context.Context, domain string) error {
			deleted = domain
			return nil
		},
	}

	out, err := run(t, provider, "delete", "emails.html")
	require.NoError(t, err)
	assert.Equal(t, "emails.html", deleted)
	assert.Equal(t, "✓ Deleted component emails.html\n", out)

	_, err = run(t, provider, "delete")
	assert.Error(t, err, "domain argument is required")
}

func TestCommit(t *testing.T) {
	provider := &appcontext.ProviderMock{
		CommitFunc: func(_ context.Context, domain string) error {
			return errors.NewNotFoundError("component", domain)
		},
	}

	_, err := run(t, provider, "commit", "missing")
	assert.True(t, errors.IsNotFound(err))
}
