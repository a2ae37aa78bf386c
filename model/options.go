package model

import "strings"

// LoaderOption is a functional option for configuring the Loader.
type LoaderOption func(*Loader) error

// WithBaseURL sets the base URL used for request lines whose target starts
// with "/". A trailing slash is dropped.
func WithBaseURL(baseURL string) LoaderOption {
	return func(l *Loader) error {
		l.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithDefaultHeader adds a header placed before the headers of every loaded request.
func WithDefaultHeader(name, value string) LoaderOption {
	return func(l *Loader) error {
		l.defaultHeaders = append(l.defaultHeaders, NewHeader(name, value))
		return nil
	}
}

// WithDefaultHeaders adds multiple default headers.
func WithDefaultHeaders(headers ...Header) LoaderOption {
	return func(l *Loader) error {
		l.defaultHeaders = append(l.defaultHeaders, headers...)
		return nil
	}
}
