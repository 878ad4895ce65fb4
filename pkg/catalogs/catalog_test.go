package catalogs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := New("de")
	c.Set("hello", "Hallo", "messages")
	c.Set("greeting", "Hallo {name}", "messages+intl-icu")
	c.Add(map[string]string{"required": "Pflichtfeld"}, "validators")

	assert.Equal(t, "de", c.Locale())
	assert.Equal(t, []string{"messages", "validators"}, c.Domains())
	assert.True(t, c.Has("greeting", "messages"))
	assert.True(t, c.Has("hello", "messages"))
	assert.False(t, c.Has("hello", "validators"))
	assert.Equal(t, 2, c.Len("messages"))
	assert.False(t, c.Empty())

	want := map[string]string{"hello": "Hallo", "greeting": "Hallo {name}"}
	if diff := cmp.Diff(want, c.All("messages")); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}

	v, ok := c.Get("greeting", "messages+intl-icu")
	require.True(t, ok)
	assert.Equal(t, "Hallo {name}", v)
}

func TestCatalogCopyIsDeep(t *testing.T) {
	c := New("fr")
	c.Set("a", "1", "messages")

	cp := c.Copy()
	cp.Set("a", "2", "messages")

	v, _ := c.Get("a", "messages")
	assert.Equal(t, "1", v)
	assert.True(t, New("fr").Empty())
}

func TestBag(t *testing.T) {
	de := New("de")
	de.Set("a", "A", "messages")
	de2 := New("de")
	de2.Set("b", "B", "validators")
	en := New("en")
	en.Set("a", "A", "messages")

	bag := NewBag(en, de, nil)
	bag.AddCatalog(de2)

	assert.Equal(t, 2, bag.Len())
	assert.Equal(t, []string{"de", "en"}, bag.Locales())
	assert.Equal(t, []string{"messages", "validators"}, bag.Domains())
	assert.True(t, bag.Catalog("de").Has("b", "validators"))
	assert.Nil(t, bag.Catalog("it"))
}

func TestNewMessages(t *testing.T) {
	local := New("de")
	local.Set("kept", "lokal", "messages")
	local.Set("icu", "lokal {n}", "messages+intl-icu")

	remote := New("de")
	remote.Set("kept", "remote", "messages")
	remote.Set("icu", "remote {n}", "messages")
	remote.Set("added", "neu", "messages")
	remote.Set("other", "x", "validators")

	got := NewMessages(local, remote, "messages")

	if diff := cmp.Diff(map[string]string{"added": "neu"}, got); diff != "" {
		t.Errorf("NewMessages() mismatch (-want +got):\n%s", diff)
	}
}
