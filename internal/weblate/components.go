package weblate

import (
	"bytes"
	"context"
	"net/http"

	"github.com/agentstation/pushull/internal/transport"
	"github.com/agentstation/pushull/pkg/constants"
	"github.com/agentstation/pushull/pkg/errors"
	"github.com/agentstation/pushull/pkg/xliff"
)

const resourceComponent = "component"

// ComponentClient manages the components of the session's project.
type ComponentClient struct {
	s *Session
}

// List returns every component of the project keyed by slug, glossary excluded.
//
// The cached set is returned as-is unless reload is set, the cache is empty,
// or it was filled by single-key lookups. In those cases all pages are fetched
// and the cache is replaced.
func (c *ComponentClient) List(ctx context.Context, reload bool) (map[string]*Component, error) {
	store := c.s.components
	if !reload && store.Len() > 0 && !store.Partial() {
		return store.All(), nil
	}

	entries := make(map[string]*Component)
	next := ""
	for {
		req := c.s.client.R(ctx)
		url := next
		if url == "" {
			req.SetPathParam("project", c.s.project).SetQueryParam("page", "1")
			url = "projects/{project}/components/"
		}

		resp, err := req.Get(url)
		if err != nil {
			return nil, errors.WrapRemote("list", resourceComponent, "", 0, err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, c.s.remoteError("list", resourceComponent, "", resp)
		}

		var p page[Component]
		if err := transport.DecodeJSON(resp.Body(), &p); err != nil {
			return nil, c.s.decodeError("list", resourceComponent, "", resp, err)
		}
		if p.Results == nil {
			return nil, c.s.decodeError("list", resourceComponent, "", resp, errors.New("response has no results"))
		}

		for i := range *p.Results {
			component := (*p.Results)[i]
			if component.Slug == constants.GlossarySlug {
				continue
			}
			c.s.logger.Debug().Str("component", component.Slug).Msg("Loaded component")
			entries[component.Slug] = &component
		}

		if p.Next == nil || *p.Next == "" {
			break
		}
		next = *p.Next
	}

	store.Replace(entries)
	return store.All(), nil
}

// GetOne returns the component with slug using a single-resource request.
// An absent component yields (nil, nil).
func (c *ComponentClient) GetOne(ctx context.Context, slug string) (*Component, error) {
	if component, ok := c.s.components.Lookup(slug); ok {
		return component, nil
	}

	resp, err := c.s.client.R(ctx).
		SetPathParams(map[string]string{"project": c.s.project, "slug": slug}).
		Get("components/{project}/{slug}/")
	if err != nil {
		return nil, errors.WrapRemote("get", resourceComponent, slug, 0, err)
	}
	if resp.StatusCode() != http.StatusOK {
		c.s.logger.Debug().Str("component", slug).Int("status", resp.StatusCode()).Msg("Component not found")
		return nil, nil
	}

	var component Component
	if err := transport.DecodeJSON(resp.Body(), &component); err != nil {
		return nil, c.s.decodeError("get", resourceComponent, slug, resp, err)
	}
	c.s.logger.Debug().Str("component", component.Slug).Msg("Loaded component")
	c.s.components.Put(slug, &component)
	return &component, nil
}

// Has reports whether the project has a component with slug. A cache miss
// costs at most one full listing.
func (c *ComponentClient) Has(ctx context.Context, slug string) (bool, error) {
	if c.s.components.Has(slug) {
		return true, nil
	}
	components, err := c.List(ctx, false)
	if err != nil {
		return false, err
	}
	_, ok := components[slug]
	return ok, nil
}

// GetOrNull returns the component with slug. When it does not exist and
// content is not empty, the component is created from content. Otherwise nil
// is returned.
func (c *ComponentClient) GetOrNull(ctx context.Context, slug string, content []byte) (*Resolved[Component], error) {
	ok, err := c.Has(ctx, slug)
	if err != nil {
		return nil, err
	}
	if ok {
		component, _ := c.s.components.Get(slug)
		return existing(component), nil
	}
	if len(content) == 0 {
		return nil, nil
	}

	component, err := c.Create(ctx, slug, content)
	if err != nil {
		return nil, err
	}
	return created(component), nil
}

// Create uploads content as the template of a new component named name.
// The default locale of the session is the source language.
func (c *ComponentClient) Create(ctx context.Context, name string, content []byte) (*Component, error) {
	locale := c.s.defaultLocale
	resp, err := c.s.client.R(ctx).
		SetPathParam("project", c.s.project).
		SetMultipartFormData(map[string]string{
			"name":            name,
			"slug":            name,
			"edit_template":   "true",
			"manage_units":    "true",
			"source_language": locale,
			"file_format":     constants.FileFormatXLIFF,
		}).
		SetMultipartField("docfile", name+"/"+locale+constants.XLIFFExtension,
			"application/x-xliff+xml", bytes.NewReader(xliff.PreserveWhitespace(content))).
		Post("projects/{project}/components/")
	if err != nil {
		return nil, errors.WrapRemote("create", resourceComponent, name, 0, err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, c.s.remoteError("create", resourceComponent, name, resp)
	}

	var component Component
	if err := transport.DecodeJSON(resp.Body(), &component); err != nil {
		return nil, c.s.decodeError("create", resourceComponent, name, resp, err)
	}
	if component.Slug == "" {
		component.Slug = name
	}
	c.s.logger.Debug().Str("component", component.Slug).Msg("Added component")
	c.s.components.Put(component.Slug, &component)
	return &component, nil
}

// Delete removes the component and evicts it from the cache.
func (c *ComponentClient) Delete(ctx context.Context, component *Component) error {
	resp, err := c.s.client.R(ctx).Delete(component.URL)
	if err != nil {
		return errors.WrapRemote("delete", resourceComponent, component.Slug, 0, err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		return c.s.remoteError("delete", resourceComponent, component.Slug, resp)
	}
	c.s.logger.Debug().Str("component", component.Slug).Msg("Deleted component")
	c.s.components.Remove(component.Slug)
	return nil
}

// Commit asks the server to commit pending changes of the component to its repository.
func (c *ComponentClient) Commit(ctx context.Context, component *Component) error {
	resp, err := c.s.client.R(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"operation": "commit"}).
		Post(component.RepositoryURL)
	if err != nil {
		return errors.WrapRemote("commit", resourceComponent, component.Slug, 0, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return c.s.remoteError("commit", resourceComponent, component.Slug, resp)
	}
	c.s.logger.Debug().Str("component", component.Slug).Msg("Component committed")
	return nil
}
