package pushull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		domain string
		slug   string
	}{
		{"messages", "messages"},
		{"app.admin", "app_dot_admin"},
		{"a.b.c", "a_dot_b_dot_c"},
		{"messages+intl-icu", "messages+intl-icu"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			assert.Equal(t, tt.slug, NormalizeDomain(tt.domain))
			assert.Equal(t, tt.domain, DenormalizeDomain(tt.slug))
		})
	}
}

func TestDomainRoundTrip(t *testing.T) {
	for _, domain := range []string{"messages", "validators", "app.admin", ".leading", "trailing.", "a..b", "_dot", "dot_"} {
		assert.Equal(t, domain, DenormalizeDomain(NormalizeDomain(domain)), domain)
	}

	// A domain holding the placeholder itself does not survive the trip.
	assert.Equal(t, "a.b", DenormalizeDomain(NormalizeDomain("a_dot_b")))
}
