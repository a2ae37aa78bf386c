package model

import (
	"strings"
	"unicode"
)

const (
	requestSeparator   = "###"
	commentPrefix      = "#"
	slashCommentPrefix = "//"
	nameDirective      = "@name"
	schemeSeparator    = "://"
)

// parseNameFromAtNameDirective checks if commentContent is a "@name value"
// directive and extracts the value with internal whitespace collapsed.
func parseNameFromAtNameDirective(commentContent string) (nameValue string, isAtNamePattern bool) {
	if !strings.HasPrefix(commentContent, nameDirective) {
		return "", false
	}
	if len(commentContent) == len(nameDirective) {
		return "", true
	}
	// "@nametag" is not the directive
	if !unicode.IsSpace(rune(commentContent[len(nameDirective)])) {
		return "", false
	}
	return strings.Join(strings.Fields(commentContent[len(nameDirective):]), " "), true
}

// commentContent strips a leading "#" or "//" marker.
func commentContent(trimmedLine string) (string, bool) {
	switch {
	case strings.HasPrefix(trimmedLine, commentPrefix):
		return strings.TrimSpace(strings.TrimLeft(trimmedLine, commentPrefix)), true
	case strings.HasPrefix(trimmedLine, slashCommentPrefix):
		return strings.TrimSpace(strings.TrimPrefix(trimmedLine, slashCommentPrefix)), true
	default:
		return "", false
	}
}

// parsePathParamDefinition reads "@key = value".
func parsePathParamDefinition(trimmedLine string) (PathParam, bool) {
	if !strings.HasPrefix(trimmedLine, "@") {
		return PathParam{}, false
	}
	key, value, found := strings.Cut(trimmedLine[1:], "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return PathParam{}, false
	}
	return NewPathParam(key, strings.TrimSpace(value)), true
}

// splitRequestLine returns the method, target and optional HTTP version of
// "METHOD TARGET [HTTP/x.y]".
func splitRequestLine(line string) (method, target, httpVersion string, ok bool) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return "", "", "", false
	}
	method = strings.ToUpper(parts[0])
	if last := parts[len(parts)-1]; len(parts) > 2 && strings.HasPrefix(last, "HTTP/") {
		return method, strings.Join(parts[1:len(parts)-1], ""), last, true
	}
	return method, strings.Join(parts[1:], ""), "", true
}

// splitTarget separates an absolute target into base url and uri, and parses
// the raw query into ordered params. Relative targets use defaultBaseURL.
// Nothing is unescaped so the resulting Request URL matches the file.
func splitTarget(target, defaultBaseURL string) (baseURL, uri string, query []QueryParam) {
	if i := strings.Index(target, "#"); i >= 0 {
		target = target[:i]
	}
	pathPart, rawQuery, _ := strings.Cut(target, "?")

	if i := strings.Index(pathPart, schemeSeparator); i >= 0 {
		authority := pathPart[i+len(schemeSeparator):]
		if slash := strings.Index(authority, "/"); slash >= 0 {
			cut := i + len(schemeSeparator) + slash
			baseURL, uri = pathPart[:cut], pathPart[cut:]
		} else {
			baseURL = pathPart
		}
	} else {
		baseURL, uri = defaultBaseURL, pathPart
	}

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		query = append(query, NewQueryParam(name, value))
	}
	return baseURL, uri, query
}
