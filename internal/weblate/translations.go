package weblate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path"

	"github.com/agentstation/pushull/internal/transport"
	"github.com/agentstation/pushull/pkg/constants"
	"github.com/agentstation/pushull/pkg/errors"
)

const resourceTranslation = "translation"

// TranslationClient manages the per-locale translations of components.
// Translations are looked up per locale and never cached.
type TranslationClient struct {
	s *Session
}

// get fetches the translation of component for locale. Absent yields (nil, nil).
func (c *TranslationClient) get(ctx context.Context, component *Component, locale string) (*Translation, error) {
	id := component.Slug + "/" + locale
	resp, err := c.s.client.R(ctx).
		SetPathParams(map[string]string{
			"project":   c.s.project,
			"component": component.Slug,
			"language":  locale,
		}).
		Get("translations/{project}/{component}/{language}/")
	if err != nil {
		return nil, errors.WrapRemote("get", resourceTranslation, id, 0, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, nil
	}

	var translation Translation
	if err := transport.DecodeJSON(resp.Body(), &translation); err != nil {
		return nil, c.s.decodeError("get", resourceTranslation, id, resp, err)
	}
	c.s.logger.Debug().Str("component", component.Slug).Str("locale", locale).Msg("Loaded translation")
	return &translation, nil
}

// Has reports whether component has a translation for locale, without creating it.
func (c *TranslationClient) Has(ctx context.Context, component *Component, locale string) (bool, error) {
	translation, err := c.get(ctx, component, locale)
	if err != nil {
		return false, err
	}
	return translation != nil, nil
}

// GetOrCreate returns the translation of component for locale, adding the
// language to the component when it does not exist yet.
func (c *TranslationClient) GetOrCreate(ctx context.Context, component *Component, locale string) (*Resolved[Translation], error) {
	translation, err := c.get(ctx, component, locale)
	if err != nil {
		return nil, err
	}
	if translation != nil {
		return existing(translation), nil
	}

	id := component.Slug + "/" + locale
	req := c.s.client.R(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"language_code": locale})
	url := component.TranslationsURL
	if url == "" {
		req.SetPathParams(map[string]string{"project": c.s.project, "component": component.Slug})
		url = "components/{project}/{component}/translations/"
	}

	resp, err := req.Post(url)
	if err != nil {
		return nil, errors.WrapRemote("create", resourceTranslation, id, 0, err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, c.s.remoteError("create", resourceTranslation, id, resp)
	}

	var envelope struct {
		Data *Translation `json:"data"`
	}
	if err := transport.DecodeJSON(resp.Body(), &envelope); err != nil {
		return nil, c.s.decodeError("create", resourceTranslation, id, resp, err)
	}
	translation = envelope.Data
	if translation == nil {
		translation = &Translation{}
		if err := json.Unmarshal(resp.Body(), translation); err != nil {
			return nil, c.s.decodeError("create", resourceTranslation, id, resp, err)
		}
	}
	if translation.LanguageCode == "" {
		translation.LanguageCode = locale
	}

	c.s.logger.Debug().Str("component", component.Slug).Str("locale", locale).Msg("Added translation")
	return created(translation), nil
}

// Upload replaces the content of translation with content.
func (c *TranslationClient) Upload(ctx context.Context, translation *Translation, content []byte) error {
	fileName := path.Base(translation.Filename)
	if translation.Filename == "" {
		fileName = translation.LanguageCode + constants.XLIFFExtension
	}

	resp, err := c.s.client.R(ctx).
		SetMultipartFormData(map[string]string{
			"method": constants.UploadMethodReplace,
			"fuzzy":  constants.UploadFuzzyProcess,
		}).
		SetMultipartField("file", fileName, "application/x-xliff+xml", bytes.NewReader(content)).
		Post(translation.FileURL)
	if err != nil {
		return errors.WrapRemote("upload", resourceTranslation, translation.LanguageCode, 0, err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return c.s.remoteError("upload", resourceTranslation, translation.LanguageCode, resp)
	}
	c.s.logger.Debug().Str("locale", translation.LanguageCode).Int("bytes", len(content)).Msg("Uploaded translation")
	return nil
}

// Download returns the file content of translation.
func (c *TranslationClient) Download(ctx context.Context, translation *Translation) ([]byte, error) {
	resp, err := c.s.client.R(ctx).
		SetHeader("Accept", "*/*").
		Get(translation.FileURL)
	if err != nil {
		return nil, errors.WrapRemote("download", resourceTranslation, translation.LanguageCode, 0, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, c.s.remoteError("download", resourceTranslation, translation.LanguageCode, resp)
	}
	c.s.logger.Debug().Str("locale", translation.LanguageCode).Int("bytes", len(resp.Body())).Msg("Downloaded translation")
	return resp.Body(), nil
}
