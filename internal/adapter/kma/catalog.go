package kma

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// Base selects the URL root a catalog entry is served from.
type Base int

const (
	BaseURL     Base = iota // typ01/url, the primary REST-style root
	BaseCGI                 // typ01/cgi-bin/url
	BaseOpenAPI             // typ02/openApi
	BaseHub                 // API root; paths carry their own product prefix
	baseCount
)

var baseNames = [baseCount]string{"url", "cgi", "openapi", "hub"}

func (b Base) String() string {
	if !b.valid() {
		return "base(" + strconv.Itoa(int(b)) + ")"
	}
	return baseNames[b]
}

func (b Base) valid() bool { return b >= 0 && b < baseCount }

// MarshalText implements encoding.TextMarshaler.
func (b Base) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// ParseBase maps a catalog base name to a Base. The empty string is BaseURL.
func ParseBase(s string) (Base, error) {
	if s == "" {
		return BaseURL, nil
	}
	for i, name := range baseNames {
		if strings.EqualFold(s, name) {
			return Base(i), nil
		}
	}
	return 0, errors.Errorf("unknown base %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Base) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseBase(node.Value)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Parameter formats accepted in the catalog.
const (
	FormatDateTime = "datetime"
	FormatDate     = "date"
	FormatInt      = "int"
	FormatFloat    = "float"
	FormatString   = "string"
)

// ParamSpec describes one query parameter of an endpoint.
type ParamSpec struct {
	Name        string   `yaml:"name" json:"name"`
	Format      string   `yaml:"format" json:"format"`
	Required    bool     `yaml:"required" json:"required,omitempty"`
	Default     string   `yaml:"default" json:"default,omitempty"`
	Values      []string `yaml:"values" json:"values,omitempty"`
	Description string   `yaml:"description" json:"description,omitempty"`
}

// Endpoint is a named upstream product.
type Endpoint struct {
	Name        string            `yaml:"name" json:"name"`
	Path        string            `yaml:"path" json:"path,omitempty"`
	Base        Base              `yaml:"base" json:"base"`
	Raw         bool              `yaml:"raw" json:"raw,omitempty"`
	Description string            `yaml:"description" json:"description"`
	Fixed       map[string]string `yaml:"fixed" json:"fixed,omitempty"`
	Params      []ParamSpec       `yaml:"params" json:"params,omitempty"`
	Unsupported string            `yaml:"unsupported" json:"unsupported,omitempty"`
	// LongTimeout selects the client's satellite timeout instead of the default.
	LongTimeout bool `yaml:"long_timeout" json:"long_timeout,omitempty"`
}

// Supported reports whether the endpoint may be called.
func (e Endpoint) Supported() bool { return e.Unsupported == "" }

// Resolve builds the query for a call: fixed parameters first, then
// defaults, then caller values. An empty caller value falls back to the
// default. Required and format constraints are checked against the merged
// result. Caller keys that the entry does not declare are
// passed through unchanged.
func (e Endpoint) Resolve(params Params) (Params, error) {
	if !e.Supported() {
		return nil, &NotSupportedError{Endpoint: e.Name, Alternative: e.Unsupported}
	}

	out := make(Params, len(e.Fixed)+len(e.Params)+len(params))
	for k, v := range e.Fixed {
		out[k] = v
	}
	for _, p := range e.Params {
		if p.Default != "" {
			out[p.Name] = p.Default
		}
	}
	for k, v := range params {
		out[k] = v
	}

	for _, p := range e.Params {
		v, ok := out[p.Name]
		if (!ok || formatParam(v) == "") && p.Default != "" {
			v, ok = p.Default, true
			out[p.Name] = v
		}
		if !ok || formatParam(v) == "" {
			if p.Required {
				return nil, &ValidationError{Param: p.Name, Reason: "is required"}
			}
			delete(out, p.Name)
			continue
		}
		if err := p.check(formatParam(v)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (p ParamSpec) check(v string) error {
	switch p.Format {
	case FormatDateTime:
		if _, err := domain.ParseDateTime(v); err != nil {
			return &ValidationError{Param: p.Name, Reason: "want YYYYMMDDHHmm, got " + strconv.Quote(v)}
		}
	case FormatDate:
		if _, err := domain.ParseDate(v); err != nil {
			return &ValidationError{Param: p.Name, Reason: "want YYYYMMDD, got " + strconv.Quote(v)}
		}
	case FormatInt:
		if _, err := strconv.Atoi(v); err != nil {
			return &ValidationError{Param: p.Name, Reason: "want an integer, got " + strconv.Quote(v)}
		}
	case FormatFloat:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return &ValidationError{Param: p.Name, Reason: "want a number, got " + strconv.Quote(v)}
		}
	}
	if len(p.Values) > 0 && !slices.Contains(p.Values, v) {
		return &ValidationError{Param: p.Name, Reason: fmt.Sprintf("want one of %s, got %q", strings.Join(p.Values, ", "), v)}
	}
	return nil
}

// Catalog is an immutable set of endpoints keyed by name.
type Catalog struct {
	byName map[string]Endpoint
	names  []string
}

//go:embed endpoints.yaml
var embeddedCatalog []byte

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(embeddedCatalog))
})

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) { return defaultCatalog() }

// LoadCatalog parses a YAML endpoint catalog.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc struct {
		Endpoints []Endpoint `yaml:"endpoints"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "parse endpoint catalog")
	}

	cat := &Catalog{byName: make(map[string]Endpoint, len(doc.Endpoints))}
	for i, ep := range doc.Endpoints {
		if ep.Name == "" {
			return nil, errors.Errorf("endpoint catalog: entry %d has no name", i)
		}
		if _, dup := cat.byName[ep.Name]; dup {
			return nil, errors.Errorf("endpoint catalog: duplicate entry %q", ep.Name)
		}
		if ep.Supported() && ep.Path == "" {
			return nil, errors.Errorf("endpoint catalog: %q has no path", ep.Name)
		}
		for _, p := range ep.Params {
			switch p.Format {
			case FormatDateTime, FormatDate, FormatInt, FormatFloat, FormatString:
			default:
				return nil, errors.Errorf("endpoint catalog: %q param %q has unknown format %q", ep.Name, p.Name, p.Format)
			}
		}
		cat.byName[ep.Name] = ep
		cat.names = append(cat.names, ep.Name)
	}
	for _, ep := range cat.byName {
		if ep.Unsupported == "" {
			continue
		}
		if alt, ok := cat.byName[ep.Unsupported]; !ok || !alt.Supported() {
			return nil, errors.Errorf("endpoint catalog: %q names unknown alternative %q", ep.Name, ep.Unsupported)
		}
	}
	sort.Strings(cat.names)
	return cat, nil
}

// Lookup returns the endpoint registered under name.
func (c *Catalog) Lookup(name string) (Endpoint, bool) {
	ep, ok := c.byName[name]
	return ep, ok
}

// Names returns all endpoint names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// List returns all endpoints sorted by name.
func (c *Catalog) List() []Endpoint {
	out := make([]Endpoint, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[name])
	}
	return out
}
