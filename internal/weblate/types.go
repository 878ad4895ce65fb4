package weblate

// Component is a remote translatable group, one per domain.
type Component struct {
	Slug            string `json:"slug"`
	Name            string `json:"name,omitempty"`
	URL             string `json:"url"`
	RepositoryURL   string `json:"repository_url"`
	TranslationsURL string `json:"translations_url"`
}

// Translation is the locale-specific content of a component.
type Translation struct {
	LanguageCode string `json:"language_code"`
	Filename     string `json:"filename"`
	FileURL      string `json:"file_url"`
	UnitsListURL string `json:"units_list_url"`
}

// Unit is one message of a translation.
type Unit struct {
	Context string `json:"context"`
	URL     string `json:"url"`
}

// Resolved is the outcome of a resolve-or-create call. Created is true only
// when Value was created by that very call.
type Resolved[T any] struct {
	Value   *T
	Created bool
}

func existing[T any](v *T) *Resolved[T] {
	return &Resolved[T]{Value: v}
}

func created[T any](v *T) *Resolved[T] {
	return &Resolved[T]{Value: v, Created: true}
}

// page is one page of a paginated listing. Results is a pointer so a page
// without the key can be told apart from an empty page.
type page[T any] struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results *[]T    `json:"results"`
}
