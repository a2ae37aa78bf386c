package model

import "net/http"

// Method is one of the HTTP verbs a Request may carry.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

// ParseMethod maps a verb to a supported Method. The match is exact, so
// "get" and "HEAD" are both rejected.
func ParseMethod(s string) (Method, error) {
	if s == "" {
		return "", configErrorf(msgMethodMandatory)
	}
	switch m := Method(s); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return m, nil
	default:
		return "", configErrorf(msgMethodUnavailable)
	}
}

func (m Method) String() string {
	return string(m)
}
