// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and the parsing
of integer parameters, ensuring consistent validation errors.
*/
package requestutil

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/imperium/internal/platform/validate"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query retrieves a trimmed query-string value from the request.
*/
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

/*
IntParam parses a named URL parameter as an integer.

Returns:
  - int: The parsed value
  - error: apperr.ValidationError if the segment is not an integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	validator := &validate.Validator{}
	value := validator.Int(name, Param(request, name))
	return value, validator.Err()
}

/*
IntQuery parses a query-string value as an integer, falling back to def when absent.

Returns:
  - int: The parsed value or def
  - error: apperr.ValidationError if the value is present but malformed
*/
func IntQuery(request *http.Request, name string, def int) (int, error) {
	raw := Query(request, name)
	if raw == "" {
		return def, nil
	}

	validator := &validate.Validator{}
	value := validator.Int(name, raw)
	return value, validator.Err()
}

/*
RequiredIntQuery parses a mandatory query-string integer.

Returns:
  - int: The parsed value
  - error: apperr.ValidationError if the value is missing or malformed
*/
func RequiredIntQuery(request *http.Request, name string) (int, error) {
	raw := Query(request, name)
	if raw == "" {
		return 0, validate.RequiredError(name, "This field is required")
	}

	validator := &validate.Validator{}
	value := validator.Int(name, raw)
	return value, validator.Err()
}
