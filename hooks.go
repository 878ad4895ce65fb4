package pushull

import "sync"

// Hook function types for remote changes made during a run
type (
	// ComponentCreatedHook is called after a component was created for domain
	ComponentCreatedHook func(domain string, component *Component)

	// TranslationUploadedHook is called after the file of domain/locale was uploaded.
	// merged is the number of remote-only messages folded into the upload.
	TranslationUploadedHook func(domain, locale string, merged int)

	// UnitDeletedHook is called after the unit key was deleted from domain/locale
	UnitDeletedHook func(domain, locale, key string)
)

// hooks manages event callbacks
type hooks struct {
	mu                    sync.RWMutex
	onComponentCreated    []ComponentCreatedHook
	onTranslationUploaded []TranslationUploadedHook
	onUnitDeleted         []UnitDeletedHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnComponentCreated registers a callback for created components
func (h *hooks) OnComponentCreated(fn ComponentCreatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onComponentCreated = append(h.onComponentCreated, fn)
}

// OnTranslationUploaded registers a callback for uploaded translations
func (h *hooks) OnTranslationUploaded(fn TranslationUploadedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onTranslationUploaded = append(h.onTranslationUploaded, fn)
}

// OnUnitDeleted registers a callback for deleted units
func (h *hooks) OnUnitDeleted(fn UnitDeletedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnitDeleted = append(h.onUnitDeleted, fn)
}

// Callbacks run outside the lock so a hook may register further hooks.

func (h *hooks) componentCreated(domain string, component *Component) {
	h.mu.RLock()
	fns := append([]ComponentCreatedHook(nil), h.onComponentCreated...)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(domain, component)
	}
}

func (h *hooks) translationUploaded(domain, locale string, merged int) {
	h.mu.RLock()
	fns := append([]TranslationUploadedHook(nil), h.onTranslationUploaded...)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(domain, locale, merged)
	}
}

func (h *hooks) unitDeleted(domain, locale, key string) {
	h.mu.RLock()
	fns := append([]UnitDeletedHook(nil), h.onUnitDeleted...)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(domain, locale, key)
	}
}
