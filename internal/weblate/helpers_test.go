package weblate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/agentstation/pushull/internal/transport"
	"github.com/agentstation/pushull/pkg/logging"
)

// recorder counts requests per "METHOD /path" and delegates to a mux.
type recorder struct {
	mu   sync.Mutex
	hits map[string]int
	mux  *http.ServeMux
	auth []string
	url  string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.hits[req.Method+" "+req.URL.Path]++
	r.auth = append(r.auth, req.Header.Get("Authorization"))
	r.mu.Unlock()
	r.mux.ServeHTTP(w, req)
}

func (r *recorder) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hits[key]
}

func (r *recorder) authorization(i int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i >= len(r.auth) {
		return ""
	}
	return r.auth[i]
}

// newTestSession starts a fake server and returns a session talking to it.
// register is called with the server URL so handlers can build absolute links.
func newTestSession(t *testing.T, register func(mux *http.ServeMux, serverURL string)) (*Session, *recorder) {
	t.Helper()

	rec := &recorder{hits: make(map[string]int), mux: http.NewServeMux()}
	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)
	rec.url = server.URL

	register(rec.mux, server.URL)

	client := transport.New(transport.Config{
		BaseURL: server.URL + "/api/",
		Token:   "secret",
		Logger:  logging.NewNopLogger(),
	})
	return NewSession(client, "app", "en", logging.NewNopLogger()), rec
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func component(serverURL, slug string) Component {
	base := serverURL + "/api/components/app/" + slug + "/"
	return Component{
		Slug:            slug,
		URL:             base,
		RepositoryURL:   base + "repository/",
		TranslationsURL: base + "translations/",
	}
}

func translation(serverURL, slug, locale string) Translation {
	base := serverURL + "/api/translations/app/" + slug + "/" + locale + "/"
	return Translation{
		LanguageCode: locale,
		Filename:     "translations/" + slug + "/" + locale + ".xlf",
		FileURL:      base + "file/",
		UnitsListURL: base + "units/",
	}
}
