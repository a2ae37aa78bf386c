package model

import (
	"log/slog"
	"regexp"
	"slices"

	"github.com/hashicorp/go-multierror"
)

var ( //nolint:gochecknoglobals
	uriPlaceholderFinder = regexp.MustCompile(`\{([^{}]+)\}`)
)

// RequestBuilder accumulates the configuration of a Request. It is not safe
// for concurrent use and should be discarded once Build succeeds.
type RequestBuilder struct {
	name        string
	baseURL     string
	uri         string
	method      string
	body        string
	headers     []Header
	pathParams  []PathParam
	queryParams []QueryParam
}

// NewRequestBuilder returns an empty builder.
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{}
}

func (b *RequestBuilder) WithBaseURL(baseURL string) *RequestBuilder {
	b.baseURL = baseURL
	return b
}

func (b *RequestBuilder) WithURI(uri string) *RequestBuilder {
	b.uri = uri
	return b
}

// WithMethod stores the verb as given. It is checked by Build, not here.
func (b *RequestBuilder) WithMethod(method string) *RequestBuilder {
	b.method = method
	return b
}

func (b *RequestBuilder) WithName(name string) *RequestBuilder {
	b.name = name
	return b
}

func (b *RequestBuilder) WithBody(body string) *RequestBuilder {
	b.body = body
	return b
}

// WithHeaders appends headers. Equal headers are kept as separate entries.
func (b *RequestBuilder) WithHeaders(headers ...Header) *RequestBuilder {
	b.headers = append(b.headers, headers...)
	return b
}

// WithPathParams appends path params; each must match a {name} in the uri.
func (b *RequestBuilder) WithPathParams(params ...PathParam) *RequestBuilder {
	b.pathParams = append(b.pathParams, params...)
	return b
}

// WithQueryParams appends query params. They are rendered in this order.
func (b *RequestBuilder) WithQueryParams(params ...QueryParam) *RequestBuilder {
	b.queryParams = append(b.queryParams, params...)
	return b
}

// Build validates the configuration and returns the Request. Checks run in a
// fixed order and the first violation is returned as a *ConfigurationError.
func (b *RequestBuilder) Build() (*Request, error) {
	if errs := b.validate(true); errs != nil {
		slog.Debug("Build: request configuration rejected", "name", b.name, "method", b.method, "uri", b.uri, "reason", errs.Errors[0])
		return nil, errs.Errors[0]
	}

	return &Request{
		name:        b.name,
		baseURL:     b.baseURL,
		uri:         b.uri,
		method:      Method(b.method),
		headers:     slices.Clone(b.headers),
		pathParams:  slices.Clone(b.pathParams),
		queryParams: slices.Clone(b.queryParams),
		body:        b.body,
		url:         formatURL(b.baseURL, b.uri, b.pathParams, b.queryParams),
	}, nil
}

// Validate runs every check and returns all violations as a
// *multierror.Error, or nil when Build would succeed.
func (b *RequestBuilder) Validate() error {
	return b.validate(false).ErrorOrNil()
}

func (b *RequestBuilder) validate(stopAtFirst bool) *multierror.Error {
	var errs *multierror.Error
	add := func(err error) bool {
		errs = multierror.Append(errs, err)
		return stopAtFirst
	}

	if b.baseURL == "" && add(configErrorf(msgBaseURLEmpty)) {
		return errs
	}
	if b.uri == "" && add(configErrorf(msgURIEmpty)) {
		return errs
	}
	for _, err := range b.pathParamViolations() {
		if add(err) {
			return errs
		}
	}
	if _, err := ParseMethod(b.method); err != nil && add(err) {
		return errs
	}
	if Method(b.method) == MethodGet && b.body != "" && add(configErrorf(msgBodyWithGet)) {
		return errs
	}
	return errs
}

// pathParamViolations checks the supplied params against the uri first, then
// the uri placeholders against the supplied params.
func (b *RequestBuilder) pathParamViolations() []error {
	var violations []error
	placeholders := uriPlaceholders(b.uri)

	supplied := make(map[string]struct{}, len(b.pathParams))
	for _, p := range b.pathParams {
		supplied[p.Name] = struct{}{}
		if !slices.Contains(placeholders, p.Name) {
			violations = append(violations, configErrorf(msgPathParamNotInURI, p.Name))
		}
	}
	for _, name := range placeholders {
		if _, ok := supplied[name]; !ok {
			violations = append(violations, configErrorf(msgPlaceholderNoParam, name))
		}
	}
	return violations
}

// uriPlaceholders lists the distinct placeholder names in order of appearance.
func uriPlaceholders(uri string) []string {
	var names []string
	for _, m := range uriPlaceholderFinder.FindAllStringSubmatch(uri, -1) {
		if !slices.Contains(names, m[1]) {
			names = append(names, m[1])
		}
	}
	return names
}
