package pushull

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentstation/pushull/pkg/catalogs"
	"github.com/agentstation/pushull/pkg/logging"
	"github.com/agentstation/pushull/pkg/xliff"
)

// fakeWeblate is an in-memory Weblate serving the project "app".
type fakeWeblate struct {
	mu   sync.Mutex
	url  string
	hits map[string]int

	components map[string]bool
	files      map[string][]byte // "<slug>/<locale>" -> xliff content
	forms      map[string]url.Values
	deleted    []string
	fail       map[string]int // "METHOD /path" -> forced status
}

func newFakeWeblate(t *testing.T) *fakeWeblate {
	t.Helper()

	f := &fakeWeblate{
		hits:       make(map[string]int),
		components: make(map[string]bool),
		files:      make(map[string][]byte),
		forms:      make(map[string]url.Values),
		fail:       make(map[string]int),
	}
	server := httptest.NewServer(f)
	t.Cleanup(server.Close)
	f.url = server.URL
	return f
}

// provider returns a provider talking to the fake server.
func (f *fakeWeblate) provider(t *testing.T, opts ...Option) Provider {
	t.Helper()

	base := []Option{
		WithEndpoint(f.url + "/api/"),
		WithProject("app"),
		WithToken("secret"),
		WithLogger(logging.NewNopLogger()),
	}
	p, err := New(append(base, opts...)...)
	require.NoError(t, err)
	return p
}

// seed creates a component and optional translations from messages keyed by locale.
func (f *fakeWeblate) seed(t *testing.T, slug string, messages map[string]map[string]string) {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.components[slug] = true
	for locale, m := range messages {
		cat := catalogs.New(locale)
		cat.Add(m, "messages")
		content, err := xliff.Encode(cat, "messages", xliff.EncodeOptions{DefaultLocale: "en"})
		require.NoError(t, err)
		f.files[slug+"/"+locale] = content
	}
}

// failOn makes the server answer key ("METHOD /path") with status.
func (f *fakeWeblate) failOn(key string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[key] = status
}

func (f *fakeWeblate) form(id string) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forms[id]
}

func (f *fakeWeblate) raw(id string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return string(f.files[id])
}

func (f *fakeWeblate) deletedUnits() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func (f *fakeWeblate) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[key]
}

// countSuffix sums the hits of method on paths ending with suffix.
func (f *fakeWeblate) countSuffix(method, suffix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for key, hits := range f.hits {
		if strings.HasPrefix(key, method+" ") && strings.HasSuffix(key, suffix) {
			n += hits
		}
	}
	return n
}

func (f *fakeWeblate) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, hits := range f.hits {
		n += hits
	}
	return n
}

// file decodes the stored content of slug/locale.
func (f *fakeWeblate) file(t *testing.T, slug, locale string) *catalogs.Catalog {
	t.Helper()

	f.mu.Lock()
	content, ok := f.files[slug+"/"+locale]
	f.mu.Unlock()
	require.True(t, ok, "no file for %s/%s", slug, locale)

	cat, err := xliff.Decode(content, locale, "messages")
	require.NoError(t, err)
	return cat
}

func (f *fakeWeblate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := r.Method + " " + r.URL.Path
	f.hits[key]++
	if status, ok := f.fail[key]; ok {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{"detail":"forced failure"}`)
		return
	}
	if r.Header.Get("Authorization") != "Token secret" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/"), "/"), "/")
	switch {
	case len(parts) == 3 && parts[0] == "projects" && parts[2] == "components":
		if r.Method == http.MethodPost {
			f.createComponent(w, r)
			return
		}
		f.listComponents(w)

	case len(parts) == 3 && parts[0] == "components":
		slug := parts[2]
		if !f.components[slug] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method == http.MethodDelete {
			delete(f.components, slug)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		f.writeJSON(w, http.StatusOK, f.component(slug))

	case len(parts) == 4 && parts[0] == "components" && parts[3] == "repository":
		f.writeJSON(w, http.StatusOK, map[string]any{"result": true})

	case len(parts) == 4 && parts[0] == "components" && parts[3] == "translations":
		var body struct {
			LanguageCode string `json:"language_code"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		empty, _ := xliff.Encode(catalogs.New(body.LanguageCode), "messages", xliff.EncodeOptions{DefaultLocale: "en"})
		f.files[parts[2]+"/"+body.LanguageCode] = empty
		f.writeJSON(w, http.StatusCreated, map[string]any{"data": f.translation(parts[2], body.LanguageCode)})

	case len(parts) == 4 && parts[0] == "translations":
		if _, ok := f.files[parts[2]+"/"+parts[3]]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		f.writeJSON(w, http.StatusOK, f.translation(parts[2], parts[3]))

	case len(parts) == 5 && parts[0] == "translations" && parts[4] == "file":
		id := parts[2] + "/" + parts[3]
		if r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/x-xliff+xml")
			_, _ = w.Write(f.files[id])
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		content, _ := io.ReadAll(file)
		f.files[id] = content
		f.forms[id] = r.MultipartForm.Value
		f.writeJSON(w, http.StatusOK, map[string]any{"accepted": 1})

	case len(parts) == 5 && parts[0] == "translations" && parts[4] == "units":
		f.findUnit(w, r, parts[2], parts[3])

	case len(parts) == 4 && parts[0] == "units":
		f.deleted = append(f.deleted, parts[1]+"/"+parts[2]+"/"+parts[3])
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeWeblate) listComponents(w http.ResponseWriter) {
	slugs := make([]string, 0, len(f.components))
	for slug := range f.components {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	results := []map[string]string{f.component("glossary")}
	for _, slug := range slugs {
		results = append(results, f.component(slug))
	}
	f.writeJSON(w, http.StatusOK, map[string]any{"count": len(results), "next": nil, "results": results})
}

func (f *fakeWeblate) createComponent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	slug := r.FormValue("slug")
	file, _, err := r.FormFile("docfile")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	content, _ := io.ReadAll(file)

	f.components[slug] = true
	f.files[slug+"/"+r.FormValue("source_language")] = content
	f.forms[slug] = r.MultipartForm.Value
	f.writeJSON(w, http.StatusCreated, f.component(slug))
}

func (f *fakeWeblate) findUnit(w http.ResponseWriter, r *http.Request, slug, locale string) {
	key := strings.TrimSuffix(strings.TrimPrefix(r.URL.Query().Get("q"), `context:="`), `"`)
	results := []map[string]string{}

	if content := f.files[slug+"/"+locale]; len(content) > 0 {
		cat, err := xliff.Decode(content, locale, "messages")
		if err == nil && cat.Has(key, "messages") {
			results = append(results, map[string]string{
				"context": key,
				"url":     f.url + "/api/units/" + slug + "/" + locale + "/" + url.PathEscape(key) + "/",
			})
		}
	}
	f.writeJSON(w, http.StatusOK, map[string]any{"count": len(results), "next": nil, "results": results})
}

func (f *fakeWeblate) component(slug string) map[string]string {
	base := f.url + "/api/components/app/" + slug + "/"
	return map[string]string{
		"slug":             slug,
		"name":             slug,
		"url":              base,
		"repository_url":   base + "repository/",
		"translations_url": base + "translations/",
	}
}

func (f *fakeWeblate) translation(slug, locale string) map[string]string {
	base := f.url + "/api/translations/app/" + slug + "/" + locale + "/"
	return map[string]string{
		"language_code":  locale,
		"filename":       slug + "/" + locale + ".xlf",
		"file_url":       base + "file/",
		"units_list_url": base + "units/",
	}
}

func (f *fakeWeblate) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// catalog builds a catalog of locale holding messages in domain.
func catalog(locale, domain string, messages map[string]string) *catalogs.Catalog {
	cat := catalogs.New(locale)
	cat.Add(messages, domain)
	return cat
}
