package pushull

import (
	"context"
	"maps"
	"slices"

	"github.com/agentstation/pushull/pkg/catalogs"
	"github.com/agentstation/pushull/pkg/errors"
	"github.com/agentstation/pushull/pkg/logging"
	"github.com/agentstation/pushull/pkg/sync"
	"github.com/agentstation/pushull/pkg/xliff"
)

// Write pushes the catalogs of bag to the remote project.
func (p *provider) Write(ctx context.Context, bag *catalogs.Bag) (*sync.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, result := p.begin(ctx, "write")
	logger := logging.FromContext(ctx)

	for _, original := range bag.Catalogs() {
		// Step 1: Work on a copy so that merged remote messages stay out of the caller's bag
		cat := original.Copy()
		locale := cat.Locale()
		domains := cat.Domains()

		// Step 2: A lone domain is looked up by slug instead of listing the project
		if err := p.prefetch(ctx, domains); err != nil {
			return nil, errors.NewSyncError("write", domains[0], locale, err)
		}

		for _, domain := range domains {
			if err := p.writeDomain(ctx, cat, domain, result); err != nil {
				return nil, errors.NewSyncError("write", domain, locale, err)
			}
		}
	}

	logger.Info().Str("summary", result.Summary()).Msg("Write completed")
	return result, nil
}

func (p *provider) writeDomain(ctx context.Context, cat *catalogs.Catalog, domain string, result *sync.Result) error {
	locale := cat.Locale()
	logger := logging.FromContext(ctx).With().Str("domain", domain).Str("locale", locale).Logger()
	dr := result.Domain(domain)

	if cat.Len(domain) == 0 {
		logger.Info().Msg("Catalog is empty")
		dr.Skip(locale, "catalog is empty")
		return nil
	}

	content, err := p.encode(cat, domain)
	if err != nil {
		return err
	}

	// Step 1: Resolve the component, creating it from the local content
	resolved, err := p.session.Components.GetOrNull(ctx, NormalizeDomain(domain), content)
	if err != nil {
		return err
	}
	if resolved == nil {
		logger.Error().Msg("Could not get or create component")
		dr.Skip(locale, "component unavailable")
		return nil
	}
	component := resolved.Value
	if resolved.Created {
		dr.ComponentCreated = true
		p.componentCreated(domain, component)

		// The creation upload already holds the default locale
		if locale == p.config.defaultLocale {
			return nil
		}
	}

	// Step 2: Resolve the translation of locale
	translation, err := p.session.Translations.GetOrCreate(ctx, component, locale)
	if err != nil {
		return err
	}
	if translation.Created {
		dr.TranslationsCreated = append(dr.TranslationsCreated, locale)

		if err := p.session.Translations.Upload(ctx, translation.Value, content); err != nil {
			return err
		}
		dr.Uploaded = append(dr.Uploaded, locale)
		p.translationUploaded(domain, locale, 0)
		return nil
	}

	// Step 3: Keep messages translated remotely since the last run
	remoteContent, err := p.session.Translations.Download(ctx, translation.Value)
	if err != nil {
		return err
	}
	dr.Downloaded = append(dr.Downloaded, locale)

	remote, err := xliff.Decode(remoteContent, locale, domain)
	if err != nil {
		return err
	}
	merged := catalogs.NewMessages(cat, remote, domain)
	if len(merged) > 0 {
		cat.Add(merged, domain)
		dr.MergedCount += len(merged)
		logger.Debug().Int("merged", len(merged)).Msg("Merged remote messages")

		if content, err = p.encode(cat, domain); err != nil {
			return err
		}
	}

	// Step 4: Upload the merged content
	if err := p.session.Translations.Upload(ctx, translation.Value, content); err != nil {
		return err
	}
	dr.Uploaded = append(dr.Uploaded, locale)
	p.translationUploaded(domain, locale, len(merged))
	return nil
}

// Read downloads the requested domains for every locale.
func (p *provider) Read(ctx context.Context, domains, locales []string) (*catalogs.Bag, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, _ = p.begin(ctx, "read")
	logger := logging.FromContext(ctx)

	// Step 1: Default to every remote component
	if len(domains) == 0 {
		components, err := p.session.Components.List(ctx, false)
		if err != nil {
			return nil, errors.NewSyncError("read", "", "", err)
		}
		for slug := range components {
			domains = append(domains, DenormalizeDomain(slug))
		}
		slices.Sort(domains)
	}

	// Step 2: A lone domain is looked up by slug instead of listing the project
	if err := p.prefetch(ctx, domains); err != nil {
		return nil, errors.NewSyncError("read", domains[0], "", err)
	}

	bag := catalogs.NewBag()
	for _, locale := range locales {
		for _, domain := range domains {
			cat, err := p.readDomain(ctx, domain, locale)
			if err != nil {
				return nil, errors.NewSyncError("read", domain, locale, err)
			}
			bag.AddCatalog(cat)
		}
	}

	logger.Info().Int("domains", len(domains)).Int("locales", len(locales)).Msg("Read completed")
	return bag, nil
}

func (p *provider) readDomain(ctx context.Context, domain, locale string) (*catalogs.Catalog, error) {
	resolved, err := p.session.Components.GetOrNull(ctx, NormalizeDomain(domain), nil)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		logging.FromContext(ctx).Info().Str("domain", domain).Msg("Component does not exist")
		return nil, nil
	}

	translation, err := p.session.Translations.GetOrCreate(ctx, resolved.Value, locale)
	if err != nil {
		return nil, err
	}
	content, err := p.session.Translations.Download(ctx, translation.Value)
	if err != nil {
		return nil, err
	}
	return xliff.Decode(content, locale, domain)
}

// Delete removes the remote units of every message in bag.
func (p *provider) Delete(ctx context.Context, bag *catalogs.Bag) (*sync.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, result := p.begin(ctx, "delete")
	logger := logging.FromContext(ctx)

	for _, cat := range bag.Catalogs() {
		domains := cat.Domains()
		if err := p.prefetch(ctx, domains); err != nil {
			return nil, errors.NewSyncError("delete", domains[0], cat.Locale(), err)
		}

		for _, domain := range domains {
			if err := p.deleteDomain(ctx, cat, domain, result); err != nil {
				return nil, errors.NewSyncError("delete", domain, cat.Locale(), err)
			}
		}
	}

	logger.Info().Str("summary", result.Summary()).Msg("Delete completed")
	return result, nil
}

func (p *provider) deleteDomain(ctx context.Context, cat *catalogs.Catalog, domain string, result *sync.Result) error {
	locale := cat.Locale()
	logger := logging.FromContext(ctx).With().Str("domain", domain).Str("locale", locale).Logger()
	dr := result.Domain(domain)

	messages := cat.All(domain)
	if len(messages) == 0 {
		dr.Skip(locale, "catalog is empty")
		return nil
	}

	resolved, err := p.session.Components.GetOrNull(ctx, NormalizeDomain(domain), nil)
	if err != nil {
		return err
	}
	if resolved == nil {
		logger.Info().Msg("Component does not exist")
		dr.Skip(locale, "component does not exist")
		return nil
	}
	component := resolved.Value

	exists, err := p.session.Translations.Has(ctx, component, locale)
	if err != nil {
		return err
	}
	if !exists {
		logger.Info().Msg("Translation does not exist")
		dr.Skip(locale, "translation does not exist")
		return nil
	}

	translation, err := p.session.Translations.GetOrCreate(ctx, component, locale)
	if err != nil {
		return err
	}

	for _, key := range slices.Sorted(maps.Keys(messages)) {
		unit, err := p.session.Units.Get(ctx, translation.Value, key)
		if err != nil {
			return err
		}
		if unit == nil {
			logger.Debug().Str("key", key).Msg("Unit does not exist")
			continue
		}
		if err := p.session.Units.Delete(ctx, unit); err != nil {
			return err
		}
		dr.DeletedUnits++
		p.unitDeleted(domain, locale, key)
	}
	return nil
}
