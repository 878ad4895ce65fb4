// Package xliff reads and writes translation catalogs as XLIFF documents.
//
// Decode understands XLIFF 1.2 and 2.0. Encode always writes XLIFF 1.2, the
// format the translation server is configured with.
package xliff

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"regexp"
	"sort"
	"strings"

	"github.com/agentstation/pushull/pkg/catalogs"
	"github.com/agentstation/pushull/pkg/errors"
)

const (
	namespace12 = "urn:oasis:names:tc:xliff:document:1.2"
	version12   = "1.2"
	toolID      = "pushull"
)

// EncodeOptions configures Encode.
type EncodeOptions struct {
	// DefaultLocale is written as the source language.
	DefaultLocale string
}

type document struct {
	XMLName xml.Name `xml:"xliff"`
	Xmlns   string   `xml:"xmlns,attr,omitempty"`
	Version string   `xml:"version,attr"`
	SrcLang string   `xml:"srcLang,attr,omitempty"`
	TrgLang string   `xml:"trgLang,attr,omitempty"`
	Files   []file   `xml:"file"`
}

type file struct {
	SourceLanguage string   `xml:"source-language,attr,omitempty"`
	TargetLanguage string   `xml:"target-language,attr,omitempty"`
	Datatype       string   `xml:"datatype,attr,omitempty"`
	Original       string   `xml:"original,attr,omitempty"`
	ID             string   `xml:"id,attr,omitempty"`
	Header         *header  `xml:"header,omitempty"`
	Body           *body    `xml:"body,omitempty"`
	Units          []unit   `xml:"unit,omitempty"`
	Groups         []group2 `xml:"group,omitempty"`
}

type header struct {
	Tool tool `xml:"tool"`
}

type tool struct {
	ID   string `xml:"tool-id,attr"`
	Name string `xml:"tool-name,attr"`
}

// 1.2 elements

type body struct {
	Units  []transUnit `xml:"trans-unit"`
	Groups []group12   `xml:"group,omitempty"`
}

type group12 struct {
	Units  []transUnit `xml:"trans-unit"`
	Groups []group12   `xml:"group,omitempty"`
}

type transUnit struct {
	ID      string  `xml:"id,attr"`
	Resname string  `xml:"resname,attr,omitempty"`
	Source  text    `xml:"source"`
	Target  *target `xml:"target"`
}

type text struct {
	Value string `xml:",chardata"`
}

type target struct {
	Value string `xml:",chardata"`
	State string `xml:"state,attr,omitempty"`
}

// 2.0 elements

type group2 struct {
	Units  []unit   `xml:"unit"`
	Groups []group2 `xml:"group"`
}

type unit struct {
	ID       string    `xml:"id,attr"`
	Name     string    `xml:"name,attr"`
	Segments []segment `xml:"segment"`
}

type segment struct {
	Source text    `xml:"source"`
	Target *target `xml:"target"`
}

// Decode parses an XLIFF document into a catalog of locale holding the
// messages under domain. An empty locale is taken from the document.
func Decode(data []byte, locale, domain string) (*catalogs.Catalog, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("xliff", domain, err)
	}
	if doc.XMLName.Local != "xliff" {
		return nil, errors.NewParseError("xliff", domain, "root element is not <xliff>", nil)
	}

	if locale == "" {
		locale = documentLocale(&doc)
	}
	cat := catalogs.New(locale)

	for _, f := range doc.Files {
		if f.Body != nil {
			addTransUnits(cat, domain, f.Body.Units, f.Body.Groups)
		}
		addUnits(cat, domain, f.Units, f.Groups)
	}
	return cat, nil
}

func documentLocale(doc *document) string {
	if doc.TrgLang != "" {
		return doc.TrgLang
	}
	for _, f := range doc.Files {
		if f.TargetLanguage != "" {
			return f.TargetLanguage
		}
	}
	return ""
}

func addTransUnits(cat *catalogs.Catalog, domain string, units []transUnit, groups []group12) {
	for _, u := range units {
		key := u.Resname
		if key == "" {
			key = u.Source.Value
		}
		value := u.Source.Value
		if u.Target != nil {
			value = u.Target.Value
		}
		cat.Set(key, value, domain)
	}
	for _, g := range groups {
		addTransUnits(cat, domain, g.Units, g.Groups)
	}
}

func addUnits(cat *catalogs.Catalog, domain string, units []unit, groups []group2) {
	for _, u := range units {
		for _, s := range u.Segments {
			key := u.Name
			if key == "" {
				key = s.Source.Value
			}
			value := s.Source.Value
			if s.Target != nil {
				value = s.Target.Value
			}
			cat.Set(key, value, domain)
		}
	}
	for _, g := range groups {
		addUnits(cat, domain, g.Units, g.Groups)
	}
}

// Encode writes the messages of domain (ICU variant included) as an XLIFF
// 1.2 document. Units are sorted by key.
func Encode(cat *catalogs.Catalog, domain string, opts EncodeOptions) ([]byte, error) {
	messages := cat.All(domain)
	keys := make([]string, 0, len(messages))
	for k := range messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	units := make([]transUnit, 0, len(keys))
	for _, k := range keys {
		units = append(units, transUnit{
			ID:      unitID(k),
			Resname: k,
			Source:  text{Value: k},
			Target:  &target{Value: messages[k]},
		})
	}

	sourceLanguage := opts.DefaultLocale
	if sourceLanguage == "" {
		sourceLanguage = cat.Locale()
	}
	doc := document{
		Xmlns:   namespace12,
		Version: version12,
		Files: []file{{
			SourceLanguage: sourceLanguage,
			TargetLanguage: cat.Locale(),
			Datatype:       "plaintext",
			Original:       "file.ext",
			Header:         &header{Tool: tool{ID: toolID, Name: "Pushull"}},
			Body:           &body{Units: units},
		}},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, errors.WrapResource("encode", "catalog", domain, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// unitID derives a short stable id from the message key.
func unitID(key string) string {
	sum := sha256.Sum256([]byte(key))
	id := base64.StdEncoding.EncodeToString(sum[:])[:7]
	return strings.NewReplacer("/", ".", "+", "_").Replace(id)
}

var (
	transUnitTag = regexp.MustCompile(`<trans-unit(\s[^>]*)?>`)
	xmlSpaceAttr = regexp.MustCompile(`\s+xml:space\s*=\s*("[^"]*"|'[^']*')`)
)

// PreserveWhitespace marks every trans-unit of content with
// xml:space="preserve", replacing any xml:space the unit already carries.
func PreserveWhitespace(content []byte) []byte {
	return transUnitTag.ReplaceAllFunc(content, func(tag []byte) []byte {
		attrs := xmlSpaceAttr.ReplaceAll(tag[len("<trans-unit"):], nil)
		out := make([]byte, 0, len(tag)+len(` xml:space="preserve"`))
		out = append(out, `<trans-unit xml:space="preserve"`...)
		return append(out, attrs...)
	})
}
