package sync

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Result represents the outcome of a push, pull or delete run.
type Result struct {
	RunID         string                   // Identifier attached to every log entry of the run
	Operation     string                   // write, read or delete
	DomainResults map[string]*DomainResult // Results per local domain
}

// DomainResult records the remote actions taken for one domain.
type DomainResult struct {
	Domain string

	ComponentCreated    bool     // The remote component was created from the local catalog
	TranslationsCreated []string // Locales added to the component
	Uploaded            []string // Locales whose file was uploaded
	Downloaded          []string // Locales whose file was downloaded
	Skipped             []string // Locales skipped, as "locale: reason"

	MergedCount  int // Remote-only messages merged into local catalogs before upload
	DeletedUnits int // Units removed from remote translations
}

// NewResult creates an empty result.
func NewResult(operation, runID string) *Result {
	return &Result{
		RunID:         runID,
		Operation:     operation,
		DomainResults: make(map[string]*DomainResult),
	}
}

// Domain returns the result of domain, creating it on first use.
func (r *Result) Domain(domain string) *DomainResult {
	dr, ok := r.DomainResults[domain]
	if !ok {
		dr = &DomainResult{Domain: domain}
		r.DomainResults[domain] = dr
	}
	return dr
}

// Domains returns the domain results sorted by domain name.
func (r *Result) Domains() []*DomainResult {
	out := make([]*DomainResult, 0, len(r.DomainResults))
	for _, dr := range r.DomainResults {
		out = append(out, dr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Domain < out[j].Domain })
	return out
}

// TotalChanges returns the number of remote mutations across all domains.
func (r *Result) TotalChanges() int {
	total := 0
	for _, dr := range r.DomainResults {
		total += dr.Changes()
	}
	return total
}

// HasChanges returns true if the run changed anything remotely.
func (r *Result) HasChanges() bool {
	return r.TotalChanges() > 0
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	if !r.HasChanges() {
		return "No changes"
	}
	changed := 0
	for _, dr := range r.DomainResults {
		if dr.HasChanges() {
			changed++
		}
	}
	return fmt.Sprintf("%d remote changes across %d domains", r.TotalChanges(), changed)
}

// Changes returns the number of remote mutations for the domain.
func (dr *DomainResult) Changes() int {
	n := len(dr.TranslationsCreated) + len(dr.Uploaded) + dr.DeletedUnits
	if dr.ComponentCreated {
		n++
	}
	return n
}

// HasChanges returns true if the domain was changed remotely.
func (dr *DomainResult) HasChanges() bool {
	return dr.Changes() > 0
}

// Summary returns a human-readable summary of the domain result.
func (dr *DomainResult) Summary() string {
	var parts []string
	if dr.ComponentCreated {
		parts = append(parts, "component created")
	}
	if n := len(dr.TranslationsCreated); n > 0 {
		parts = append(parts, fmt.Sprintf("%d translations created", n))
	}
	if n := len(dr.Uploaded); n > 0 {
		parts = append(parts, fmt.Sprintf("%d uploaded", n))
	}
	if dr.MergedCount > 0 {
		parts = append(parts, fmt.Sprintf("%d messages merged", dr.MergedCount))
	}
	if n := len(dr.Downloaded); n > 0 {
		parts = append(parts, fmt.Sprintf("%d downloaded", n))
	}
	if dr.DeletedUnits > 0 {
		parts = append(parts, fmt.Sprintf("%d units deleted", dr.DeletedUnits))
	}
	if n := len(dr.Skipped); n > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", n))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s: No changes", dr.Domain)
	}
	return fmt.Sprintf("%s: %s", dr.Domain, strings.Join(parts, ", "))
}

// Skip records a skipped locale with its reason.
func (dr *DomainResult) Skip(locale, reason string) {
	entry := reason
	if locale != "" {
		entry = locale + ": " + reason
	}
	if !slices.Contains(dr.Skipped, entry) {
		dr.Skipped = append(dr.Skipped, entry)
	}
}
