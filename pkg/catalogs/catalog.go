// Package catalogs provides the in-memory model of translation messages.
//
// A Catalog holds the messages of one locale grouped by domain. A domain may
// have an ICU variant stored under "<domain>+intl-icu"; lookups through Has,
// Get and All treat both variants as one domain. A Bag groups catalogs of
// several locales.
//
// Example usage:
//
//	cat := catalogs.New("de")
//	cat.Set("hello", "Hallo", "messages")
//	cat.Set("greeting", "Hallo {name}", "messages+intl-icu")
//
//	cat.All("messages")   // both messages
//	cat.Domains()         // ["messages"]
package catalogs

import (
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/agentstation/pushull/pkg/constants"
)

// Catalog holds the messages of one locale. It is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	locale   string
	messages map[string]map[string]string
}

// New creates an empty catalog for locale.
func New(locale string) *Catalog {
	return &Catalog{
		locale:   locale,
		messages: make(map[string]map[string]string),
	}
}

// Locale returns the catalog locale.
func (c *Catalog) Locale() string {
	return c.locale
}

// Domains returns the sorted domain names, with ICU variants folded into
// their plain domain.
func (c *Catalog) Domains() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{}, len(c.messages))
	for domain, messages := range c.messages {
		if len(messages) == 0 {
			continue
		}
		seen[PlainDomain(domain)] = struct{}{}
	}
	domains := make([]string, 0, len(seen))
	for domain := range seen {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	return domains
}

// All returns a copy of the messages of domain, including its ICU variant.
// Plain messages win over ICU ones with the same key.
func (c *Catalog) All(domain string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	domain = PlainDomain(domain)
	out := make(map[string]string)
	maps.Copy(out, c.messages[IntlDomain(domain)])
	maps.Copy(out, c.messages[domain])
	return out
}

// Has reports whether key exists in domain or its ICU variant.
func (c *Catalog) Has(key, domain string) bool {
	_, ok := c.Get(key, domain)
	return ok
}

// Get returns the message key of domain, looking at the ICU variant too.
func (c *Catalog) Get(key, domain string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	plain := PlainDomain(domain)
	if v, ok := c.messages[plain][key]; ok {
		return v, true
	}
	v, ok := c.messages[IntlDomain(plain)][key]
	return v, ok
}

// Set stores one message.
func (c *Catalog) Set(key, value, domain string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value, domain)
}

// Add stores messages into domain, overwriting existing keys.
func (c *Catalog) Add(messages map[string]string, domain string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range messages {
		c.set(k, v, domain)
	}
}

func (c *Catalog) set(key, value, domain string) {
	if c.messages[domain] == nil {
		c.messages[domain] = make(map[string]string)
	}
	c.messages[domain][key] = value
}

// Len returns the number of messages of domain including its ICU variant.
func (c *Catalog) Len(domain string) int {
	return len(c.All(domain))
}

// Empty reports whether the catalog holds no message at all.
func (c *Catalog) Empty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, messages := range c.messages {
		if len(messages) > 0 {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the catalog.
func (c *Catalog) Copy() *Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := New(c.locale)
	for domain, messages := range c.messages {
		out.messages[domain] = maps.Clone(messages)
	}
	return out
}

// merge adds every message of other, keeping domain variants apart.
func (c *Catalog) merge(other *Catalog) {
	other.mu.RLock()
	defer other.mu.RUnlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	for domain, messages := range other.messages {
		for k, v := range messages {
			c.set(k, v, domain)
		}
	}
}

// PlainDomain strips the ICU suffix from domain.
func PlainDomain(domain string) string {
	return strings.TrimSuffix(domain, constants.IntlDomainSuffix)
}

// IntlDomain returns the ICU variant name of a plain domain.
func IntlDomain(domain string) string {
	return PlainDomain(domain) + constants.IntlDomainSuffix
}
