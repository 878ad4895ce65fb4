package pushull

import (
	"strings"

	"github.com/agentstation/pushull/pkg/constants"
)

// NormalizeDomain turns a local domain name into a remote component slug.
// Dots are routing separators on the server and are replaced by "_dot_".
func NormalizeDomain(domain string) string {
	return strings.ReplaceAll(domain, ".", constants.DomainDotPlaceholder)
}

// DenormalizeDomain reverses NormalizeDomain. A domain that already contained
// "_dot_" before normalization comes back with a dot instead.
func DenormalizeDomain(slug string) string {
	return strings.ReplaceAll(slug, constants.DomainDotPlaceholder, ".")
}
