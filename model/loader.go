package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Loader reads request definitions from .http / .rest files and turns each
// block into a validated Request.
type Loader struct {
	baseURL        string
	defaultHeaders []Header
}

// NewLoader creates a Loader configured by the given options.
func NewLoader(options ...LoaderOption) (*Loader, error) {
	l := &Loader{}
	for _, option := range options {
		if err := option(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// LoadFile parses the file at filePath. See Load.
func (l *Loader) LoadFile(filePath string) ([]*Request, error) {
	slog.Debug("LoadFile: opening request file", "filePath", filePath)
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open request file %s: %w", filePath, err)
	}
	defer func() { _ = file.Close() }()

	return l.Load(file, filePath)
}

// Load parses every request block read from reader. Blocks that fail
// validation are skipped and reported together in a *multierror.Error, so the
// returned slice may be non-empty alongside a non-nil error. A malformed
// request or header line aborts parsing.
func (l *Loader) Load(reader io.Reader, source string) ([]*Request, error) {
	blocks, err := scanBlocks(reader, source)
	if err != nil {
		return nil, err
	}

	var requests []*Request
	var multiErr *multierror.Error
	for i, block := range blocks {
		req, buildErr := l.build(block)
		if buildErr != nil {
			wrappedErr := fmt.Errorf("request %d (%s) at %s:%d: %w", i+1, block.label(), source, block.lineNumber, buildErr)
			multiErr = multierror.Append(multiErr, wrappedErr)
			continue
		}
		requests = append(requests, req)
	}
	slog.Debug("Load: finished", "source", source, "numBlocks", len(blocks), "numRequests", len(requests))

	if len(blocks) == 0 {
		return nil, fmt.Errorf("no requests found in %s", source)
	}
	return requests, multiErr.ErrorOrNil()
}

func (l *Loader) build(block *requestBlock) (*Request, error) {
	baseURL, uri, query := splitTarget(block.target, l.baseURL)
	return NewRequestBuilder().
		WithName(block.name).
		WithMethod(block.method).
		WithBaseURL(baseURL).
		WithURI(uri).
		WithQueryParams(query...).
		WithPathParams(block.pathParams...).
		WithHeaders(l.defaultHeaders...).
		WithHeaders(block.headers...).
		WithBody(block.body()).
		Build()
}

// requestBlock holds the raw parts of one request between separators.
type requestBlock struct {
	name        string
	lineNumber  int
	method      string
	target      string
	headers     []Header
	pathParams  []PathParam
	bodyLines   []string
	parsingBody bool
}

func (b *requestBlock) label() string {
	if b.name != "" {
		return b.name
	}
	return strings.TrimSpace(b.method + " " + b.target)
}

func (b *requestBlock) isEmpty() bool {
	return b.method == "" && len(b.bodyLines) == 0 && len(b.headers) == 0 && len(b.pathParams) == 0
}

// body joins the body lines, dropping trailing blank ones.
func (b *requestBlock) body() string {
	lines := b.bodyLines
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

var errInvalidLine = errors.New("invalid line")

func scanBlocks(reader io.Reader, source string) ([]*requestBlock, error) {
	scanner := bufio.NewScanner(reader)
	var blocks []*requestBlock
	var current *requestBlock
	lineNumber := 0

	flush := func() {
		if current != nil && !current.isEmpty() {
			blocks = append(blocks, current)
		}
		current = nil
	}
	ensure := func() {
		if current == nil {
			current = &requestBlock{lineNumber: lineNumber}
		}
	}

	for scanner.Scan() {
		lineNumber++
		originalLine := scanner.Text()
		trimmedLine := strings.TrimSpace(originalLine)

		if strings.HasPrefix(trimmedLine, requestSeparator) {
			flush()
			current = &requestBlock{
				lineNumber: lineNumber,
				name:       strings.TrimSpace(strings.TrimLeft(trimmedLine, commentPrefix)),
			}
			continue
		}

		if content, isComment := commentContent(trimmedLine); isComment {
			if name, isName := parseNameFromAtNameDirective(content); isName {
				ensure()
				current.name = name
			}
			continue
		}

		if current != nil && current.parsingBody {
			current.bodyLines = append(current.bodyLines, originalLine)
			continue
		}

		if trimmedLine == "" {
			if current != nil && current.method != "" {
				current.parsingBody = true
			}
			continue
		}

		ensure()
		if current.method == "" {
			if param, ok := parsePathParamDefinition(trimmedLine); ok {
				current.pathParams = append(current.pathParams, param)
				continue
			}
			method, target, _, ok := splitRequestLine(trimmedLine)
			if !ok {
				return nil, fmt.Errorf("%s:%d: %w: %q, expected METHOD URL [HTTP_VERSION]", source, lineNumber, errInvalidLine, trimmedLine)
			}
			current.method, current.target = method, target
			continue
		}

		name, value, found := strings.Cut(trimmedLine, ":")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%s:%d: %w: %q, expected 'Name: Value'", source, lineNumber, errInvalidLine, trimmedLine)
		}
		current.headers = append(current.headers, NewHeader(strings.TrimSpace(name), strings.TrimSpace(value)))
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading requests from %s: %w", source, err)
	}
	return blocks, nil
}
