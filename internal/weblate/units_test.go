package weblate

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/pushull/pkg/errors"
)

func TestUnits(t *testing.T) {
	ctx := context.Background()
	var queries []string

	s, rec := newTestSession(t, func(mux *http.ServeMux, serverURL string) {
		mux.HandleFunc("/api/translations/app/messages/de/units/", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query().Get("q")
			queries = append(queries, q)
			switch q {
			case `context:="hello"`:
				writeJSON(w, http.StatusOK, map[string]any{
					"next": nil,
					"results": []Unit{
						{Context: "hello.world", URL: serverURL + "/api/units/2/"},
						{Context: "hello", URL: serverURL + "/api/units/1/"},
					},
				})
			case `context:="broken"`:
				w.WriteHeader(http.StatusBadGateway)
			default:
				writeJSON(w, http.StatusOK, map[string]any{"next": nil, "results": []Unit{}})
			}
		})
		mux.HandleFunc("/api/units/1/", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		mux.HandleFunc("/api/units/9/", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
	})
	base := rec.url
	de := translation(base, "messages", "de")

	unit, err := s.Units.Get(ctx, &de, "hello")
	require.NoError(t, err)
	require.NotNil(t, unit)
	assert.Equal(t, "hello", unit.Context)
	assert.Equal(t, base+"/api/units/1/", unit.URL)

	missing, err := s.Units.Get(ctx, &de, "absent")
	require.NoError(t, err)
	assert.Nil(t, missing)

	broken, err := s.Units.Get(ctx, &de, "broken")
	require.NoError(t, err)
	assert.Nil(t, broken)

	require.NoError(t, s.Units.Delete(ctx, unit))
	assert.Equal(t, 1, rec.count("DELETE /api/units/1/"))

	err = s.Units.Delete(ctx, &Unit{Context: "locked", URL: base + "/api/units/9/"})
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorized(err))

	assert.Equal(t, []string{`context:="hello"`, `context:="absent"`, `context:="broken"`}, queries)
}
