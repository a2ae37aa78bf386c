package model

import (
	"slices"
	"strings"
)

// Request is an immutable description of an HTTP call. It can only be
// obtained from RequestBuilder.Build, which guarantees it is consistent.
type Request struct {
	name        string
	baseURL     string
	uri         string
	method      Method
	headers     []Header
	pathParams  []PathParam
	queryParams []QueryParam
	body        string
	url         string
}

// Name is the optional human readable label of the request.
func (r *Request) Name() string { return r.name }

// BaseURL is the scheme and authority part, e.g. "http://localhost:8080".
func (r *Request) BaseURL() string { return r.baseURL }

// URI is the path template, possibly holding {name} placeholders.
func (r *Request) URI() string { return r.uri }

func (r *Request) Method() Method { return r.method }

// Body returns the raw payload; it is never parsed.
func (r *Request) Body() string { return r.body }

func (r *Request) HasBody() bool { return r.body != "" }

// Headers returns a copy of the headers in the order they were added.
func (r *Request) Headers() []Header { return slices.Clone(r.headers) }

// PathParams returns a copy of the path params in the order they were added.
func (r *Request) PathParams() []PathParam { return slices.Clone(r.pathParams) }

// QueryParams returns a copy of the query params in the order they were added.
func (r *Request) QueryParams() []QueryParam { return slices.Clone(r.queryParams) }

func (r *Request) IsGet() bool    { return r.method == MethodGet }
func (r *Request) IsPost() bool   { return r.method == MethodPost }
func (r *Request) IsPut() bool    { return r.method == MethodPut }
func (r *Request) IsDelete() bool { return r.method == MethodDelete }

// URL is the fully resolved target: base url, uri with path params
// substituted and the query string, without any escaping.
func (r *Request) URL() string { return r.url }

func (r *Request) String() string {
	return r.method.String() + " " + r.url
}

func formatURL(baseURL, uri string, pathParams []PathParam, queryParams []QueryParam) string {
	var sb strings.Builder
	sb.WriteString(baseURL)

	path := uri
	for _, p := range pathParams {
		path = strings.ReplaceAll(path, p.placeholder(), p.Value)
	}
	sb.WriteString(path)

	for i, q := range queryParams {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(q.Name)
		sb.WriteByte('=')
		sb.WriteString(q.Value)
	}
	return sb.String()
}
