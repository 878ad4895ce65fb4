package catalogs

import (
	"sort"
	"sync"
)

// Bag groups catalogs by locale.
type Bag struct {
	mu       sync.RWMutex
	catalogs map[string]*Catalog
}

// NewBag creates an empty bag, optionally seeded with catalogs.
func NewBag(catalogs ...*Catalog) *Bag {
	b := &Bag{catalogs: make(map[string]*Catalog)}
	for _, c := range catalogs {
		b.AddCatalog(c)
	}
	return b
}

// AddCatalog adds c to the bag. Messages are merged into the catalog already
// held for the same locale.
func (b *Bag) AddCatalog(c *Catalog) {
	if c == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.catalogs[c.Locale()]; ok {
		if existing != c {
			existing.merge(c)
		}
		return
	}
	b.catalogs[c.Locale()] = c
}

// Catalog returns the catalog of locale, or nil.
func (b *Bag) Catalog(locale string) *Catalog {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.catalogs[locale]
}

// Catalogs returns the catalogs sorted by locale.
func (b *Bag) Catalogs() []*Catalog {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*Catalog, 0, len(b.catalogs))
	for _, c := range b.catalogs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Locale() < out[j].Locale() })
	return out
}

// Locales returns the sorted locales held by the bag.
func (b *Bag) Locales() []string {
	catalogs := b.Catalogs()
	locales := make([]string, len(catalogs))
	for i, c := range catalogs {
		locales[i] = c.Locale()
	}
	return locales
}

// Domains returns the sorted union of the domains of every catalog.
func (b *Bag) Domains() []string {
	seen := make(map[string]struct{})
	for _, c := range b.Catalogs() {
		for _, d := range c.Domains() {
			seen[d] = struct{}{}
		}
	}
	domains := make([]string, 0, len(seen))
	for d := range seen {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}

// Len returns the number of catalogs.
func (b *Bag) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.catalogs)
}
