package appcontext

import (
	"context"

	"github.com/agentstation/pushull"
	"github.com/agentstation/pushull/pkg/catalogs"
	"github.com/agentstation/pushull/pkg/sync"
)

// ProviderMock provides a mock implementation of pushull.Provider for testing.
// Function fields default to empty results. Registered hooks are kept so
// tests can fire them.
type ProviderMock struct {
	WriteFunc           func(ctx context.Context, bag *catalogs.Bag) (*sync.Result, error)
	ReadFunc            func(ctx context.Context, domains, locales []string) (*catalogs.Bag, error)
	DeleteFunc          func(ctx context.Context, bag *catalogs.Bag) (*sync.Result, error)
	ComponentsFunc      func(ctx context.Context) ([]*pushull.Component, error)
	DeleteComponentFunc func(ctx context.Context, domain string) error
	CommitFunc          func(ctx context.Context, domain string) error

	Resets                int
	ComponentCreatedHooks []pushull.ComponentCreatedHook
	UploadedHooks         []pushull.TranslationUploadedHook
	UnitDeletedHooks      []pushull.UnitDeletedHook
}

// Write calls WriteFunc or returns an empty result.
func (m *ProviderMock) Write(ctx context.Context, bag *catalogs.Bag) (*sync.Result, error) {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, bag)
	}
	return sync.NewResult("write", ""), nil
}

// Read calls ReadFunc or returns an empty bag.
func (m *ProviderMock) Read(ctx context.Context, domains, locales []string) (*catalogs.Bag, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, domains, locales)
	}
	return catalogs.NewBag(), nil
}

// Delete calls DeleteFunc or returns an empty result.
func (m *ProviderMock) Delete(ctx context.Context, bag *catalogs.Bag) (*sync.Result, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, bag)
	}
	return sync.NewResult("delete", ""), nil
}

// Components calls ComponentsFunc or returns nil.
func (m *ProviderMock) Components(ctx context.Context) ([]*pushull.Component, error) {
	if m.ComponentsFunc != nil {
		return m.ComponentsFunc(ctx)
	}
	return nil, nil
}

// DeleteComponent calls DeleteComponentFunc or returns nil.
func (m *ProviderMock) DeleteComponent(ctx context.Context, domain string) error {
	if m.DeleteComponentFunc != nil {
		return m.DeleteComponentFunc(ctx, domain)
	}
	return nil
}

// Commit calls CommitFunc or returns nil.
func (m *ProviderMock) Commit(ctx context.Context, domain string) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx, domain)
	}
	return nil
}

// Reset counts the calls.
func (m *ProviderMock) Reset() {
	m.Resets++
}

// OnComponentCreated records fn.
func (m *ProviderMock) OnComponentCreated(fn pushull.ComponentCreatedHook) {
	m.ComponentCreatedHooks = append(m.ComponentCreatedHooks, fn)
}

// OnTranslationUploaded records fn.
func (m *ProviderMock) OnTranslationUploaded(fn pushull.TranslationUploadedHook) {
	m.UploadedHooks = append(m.UploadedHooks, fn)
}

// OnUnitDeleted records fn.
func (m *ProviderMock) OnUnitDeleted(fn pushull.UnitDeletedHook) {
	m.UnitDeletedHooks = append(m.UnitDeletedHooks, fn)
}

// String returns a fixed DSN-like name.
func (m *ProviderMock) String() string {
	return "pushull://mock"
}

// Ensure ProviderMock implements pushull.Provider at compile time.
var _ pushull.Provider = (*ProviderMock)(nil)
