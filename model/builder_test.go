package model_test

import (
	"errors"
	"testing"

	"github.com/altitdb/swagger-tc-generator/model"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name            string
		builder         *model.RequestBuilder
		expectedErrText string
	}{
		{
			name:            "missing base url",
			builder:         model.NewRequestBuilder().WithURI(testURI),
			expectedErrText: "The baseUrl value cannot be null or empty.",
		},
		{
			name:            "missing base url wins over everything else",
			builder:         model.NewRequestBuilder().WithMethod("HEAD").WithBody("x").WithPathParams(model.NewPathParam("a", "b")),
			expectedErrText: "The baseUrl value cannot be null or empty.",
		},
		{
			name:            "missing uri",
			builder:         model.NewRequestBuilder().WithBaseURL(testBaseURL),
			expectedErrText: "The uri value cannot be null or empty.",
		},
		{
			name: "path param without placeholder",
			builder: model.NewRequestBuilder().
				WithBaseURL(testBaseURL).
				WithURI(testURI).
				WithPathParams(model.NewPathParam("some-param", "some-param-value")),
			expectedErrText: "The path param {some-param} was not aware in uri.",
		},
		{
			name:            "placeholder without path param",
			builder:         newGetBuilder().WithURI(testURI + "/{id}"),
			expectedErrText: "The uri placeholder {id} has no path param informed.",
		},
		{
			name: "unknown param reported before missing placeholder",
			builder: newGetBuilder().
				WithURI(testURI + "/{id}").
				WithPathParams(model.NewPathParam("other", "1")),
			expectedErrText: "The path param {other} was not aware in uri.",
		},
		{
			name:            "missing method",
			builder:         model.NewRequestBuilder().WithBaseURL(testBaseURL).WithURI(testURI).WithName("Some request"),
			expectedErrText: "The field method is mandatory.",
		},
		{
			name:            "unsupported method",
			builder:         newGetBuilder().WithName("Some request").WithMethod("HEAD"),
			expectedErrText: "The method is not available in request.",
		},
		{
			name:            "lower case method",
			builder:         newGetBuilder().WithMethod("get"),
			expectedErrText: "The method is not available in request.",
		},
		{
			name:            "body with GET",
			builder:         newGetBuilder().WithName("Some request").WithBody(`{"name":"value"`),
			expectedErrText: "The field body does not must be informed with GET method.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.builder.Build()
			require.Error(t, err)
			assert.Nil(t, req)
			assert.EqualError(t, err, tt.expectedErrText)
			assert.ErrorIs(t, err, model.ErrInvalidRequestConfiguration)

			var configErr *model.ConfigurationError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tt.expectedErrText, configErr.Message)
		})
	}
}

func TestBuild_LastScalarWins(t *testing.T) {
	req, err := newGetBuilder().
		WithMethod("HEAD").
		WithMethod("PUT").
		WithBody("first").
		WithBody("second").
		WithName("a").
		WithName("b").
		Build()
	require.NoError(t, err)
	assert.True(t, req.IsPut())
	assert.Equal(t, "second", req.Body())
	assert.Equal(t, "b", req.Name())
}

func TestBuild_CallOrderDoesNotMatter(t *testing.T) {
	first, err := model.NewRequestBuilder().
		WithMethod("DELETE").
		WithPathParams(model.NewPathParam("id", "1")).
		WithURI("/items/{id}").
		WithBaseURL(testBaseURL).
		Build()
	require.NoError(t, err)

	second, err := model.NewRequestBuilder().
		WithBaseURL(testBaseURL).
		WithURI("/items/{id}").
		WithPathParams(model.NewPathParam("id", "1")).
		WithMethod("DELETE").
		Build()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	err := model.NewRequestBuilder().
		WithURI("/items/{id}").
		WithPathParams(model.NewPathParam("other", "1")).
		Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr), "Expected a multierror.Error")

	messages := make([]string, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		messages = append(messages, e.Error())
	}
	assert.Equal(t, []string{
		"The baseUrl value cannot be null or empty.",
		"The path param {other} was not aware in uri.",
		"The uri placeholder {id} has no path param informed.",
		"The field method is mandatory.",
	}, messages)
	assert.ErrorIs(t, err, model.ErrInvalidRequestConfiguration)
}

func TestValidate_NilWhenValid(t *testing.T) {
	assert.NoError(t, newGetBuilder().Validate())
}

func TestParseMethod(t *testing.T) {
	for _, verb := range []string{"GET", "POST", "PUT", "DELETE"} {
		m, err := model.ParseMethod(verb)
		require.NoError(t, err)
		assert.Equal(t, verb, m.String())
	}

	_, err := model.ParseMethod("")
	assert.EqualError(t, err, "The field method is mandatory.")

	_, err = model.ParseMethod("PATCH")
	assert.EqualError(t, err, "The method is not available in request.")
}
