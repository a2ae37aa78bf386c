package model

// Header is a single name/value pair attached to a request.
type Header struct {
	Name  string
	Value string
}

// NewHeader returns a Header.
func NewHeader(name, value string) Header {
	return Header{Name: name, Value: value}
}

// PathParam fills a {name} placeholder of the request uri.
type PathParam struct {
	Name  string
	Value string
}

// NewPathParam returns a PathParam.
func NewPathParam(name, value string) PathParam {
	return PathParam{Name: name, Value: value}
}

// placeholder is the literal token replaced by the param value.
func (p PathParam) placeholder() string {
	return "{" + p.Name + "}"
}

// QueryParam is rendered as name=value in the query string.
type QueryParam struct {
	Name  string
	Value string
}

// NewQueryParam returns a QueryParam.
func NewQueryParam(name, value string) QueryParam {
	return QueryParam{Name: name, Value: value}
}
