package model

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPRequest converts r into a *http.Request ready to be sent by any
// http.Client. Headers are added in order, so repeated names keep every value.
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if r.HasBody() {
		body = strings.NewReader(r.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.method.String(), r.url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request for %s: %w", r, err)
	}

	for _, h := range r.headers {
		httpReq.Header.Add(h.Name, h.Value)
	}
	if host := httpReq.Header.Get("Host"); host != "" {
		httpReq.Host = host
	}
	return httpReq, nil
}
