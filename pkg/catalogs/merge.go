package catalogs

// NewMessages returns the messages of domain found in remote but missing from
// local. A key is considered present locally when it exists in the plain
// domain or in its ICU variant.
func NewMessages(local, remote *Catalog, domain string) map[string]string {
	out := make(map[string]string)
	for key, value := range remote.All(domain) {
		if local.Has(key, domain) {
			continue
		}
		out[key] = value
	}
	return out
}
