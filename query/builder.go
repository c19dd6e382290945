package query

import (
	"fmt"
	"net/url"
	"strings"

	"pitchside/config"
	"pitchside/preferences"
)

// Param is one query parameter; the builder emits them in a fixed order
type Param struct {
	Key   string
	Value string
}

// Builder assembles content API request URLs from fixed configuration and user preferences
type Builder struct {
	cfg config.APIConfig
}

// NewBuilder creates a builder for the given configuration
func NewBuilder(cfg config.APIConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Config returns the configuration the builder was created with
func (b *Builder) Config() config.APIConfig {
	return b.cfg
}

// Params returns the query parameters in request order.
// Preference values are used as given; callers resolve defaults first.
func (b *Builder) Params(prefs preferences.Values) []Param {
	return []Param{
		{config.ParamSection, b.cfg.Section},
		{config.ParamOrderBy, prefs.OrderBy},
		{config.ParamFromDate, b.cfg.FromDate},
		{config.ParamShowTags, b.cfg.ShowTags},
		{config.ParamPageSize, prefs.PageSize},
		{config.ParamQuery, b.cfg.Query},
		{config.ParamAPIKey, b.cfg.APIKey},
	}
}

// Build returns the complete request URL. It performs no I/O; the only failure
// is a base endpoint that is not an absolute http(s) URL.
func (b *Builder) Build(prefs preferences.Values) (string, error) {
	base, err := url.Parse(b.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return "", fmt.Errorf("base url %q is not an absolute http(s) url", b.cfg.BaseURL)
	}

	// url.Values.Encode sorts keys, so the fixed order is encoded by hand
	var sb strings.Builder
	for i, p := range b.Params(prefs) {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(escape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(escape(p.Value))
	}

	base.RawQuery = sb.String()
	base.Fragment = ""
	return base.String(), nil
}

// escape percent-encodes s, with spaces as %20 rather than '+'
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ParseParams reads the query parameters back out of a request URL.
// Repeated keys keep their first value.
func ParseParams(rawURL string) (map[string]string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing url: %w", err)
	}
	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("parsing query: %w", err)
	}
	params := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params, nil
}
