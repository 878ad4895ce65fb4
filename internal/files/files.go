// Package files loads and saves translation catalogs as XLIFF files laid out
// as <dir>/<domain>.<locale>.xlf.
package files

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/agentstation/pushull/pkg/catalogs"
	"github.com/agentstation/pushull/pkg/constants"
	"github.com/agentstation/pushull/pkg/errors"
	"github.com/agentstation/pushull/pkg/logging"
	"github.com/agentstation/pushull/pkg/xliff"
)

// File describes one translation file on disk.
type File struct {
	Path     string `json:"path" yaml:"path"`
	Domain   string `json:"domain" yaml:"domain"`
	Locale   string `json:"locale" yaml:"locale"`
	Messages int    `json:"messages" yaml:"messages"`
}

var extensions = []string{constants.XLIFFExtension, ".xliff"}

// Parse splits a file name into domain and locale. ok is false when the name
// does not follow <domain>.<locale>.xlf or the locale is not a valid tag.
func Parse(name string) (domain, locale string, ok bool) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if !slices.Contains(extensions, ext) {
		return "", "", false
	}
	base = strings.TrimSuffix(base, ext)

	i := strings.LastIndex(base, ".")
	if i <= 0 || i == len(base)-1 {
		return "", "", false
	}
	domain, locale = base[:i], base[i+1:]
	if _, err := language.Parse(locale); err != nil {
		return "", "", false
	}
	return domain, locale, true
}

// Load reads every translation file of dir into a bag. Empty domains or
// locales select everything; otherwise only matching files are read. ICU
// variants (messages+intl-icu) match their plain domain.
func Load(dir string, domains, locales []string) (*catalogs.Bag, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapIO("read", dir, err)
	}

	bag := catalogs.NewBag()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		domain, locale, ok := Parse(entry.Name())
		if !ok {
			logging.Debug().Str("file", entry.Name()).Msg("Skipping file")
			continue
		}
		if len(domains) > 0 && !slices.Contains(domains, catalogs.PlainDomain(domain)) {
			continue
		}
		if len(locales) > 0 && !slices.Contains(locales, locale) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapIO("read", path, err)
		}
		cat, err := xliff.Decode(data, locale, domain)
		if err != nil {
			return nil, err
		}
		logging.Debug().Str("file", path).Int("messages", cat.Len(domain)).Msg("Loaded translation file")
		bag.AddCatalog(cat)
	}
	return bag, nil
}

// Save writes one file per domain and locale of bag into dir, creating it if
// needed. Existing files are overwritten.
func Save(dir string, bag *catalogs.Bag, opts xliff.EncodeOptions) ([]File, error) {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}

	var written []File
	for _, cat := range bag.Catalogs() {
		for _, domain := range cat.Domains() {
			data, err := xliff.Encode(cat, domain, opts)
			if err != nil {
				return nil, err
			}

			path := filepath.Join(dir, domain+"."+cat.Locale()+constants.XLIFFExtension)
			if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
				return nil, errors.WrapIO("write", path, err)
			}
			written = append(written, File{
				Path:     path,
				Domain:   domain,
				Locale:   cat.Locale(),
				Messages: cat.Len(domain),
			})
		}
	}

	sort.Slice(written, func(i, j int) bool { return written[i].Path < written[j].Path })
	return written, nil
}
