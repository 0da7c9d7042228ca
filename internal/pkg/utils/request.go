package utils

import (
	"dental-hms/internal/pkg/exceptions"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// ParseURLParamID reads a chi url param that must hold a positive integer key.
func ParseURLParamID(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, paramName)
	}
	if id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(fmt.Errorf("got %d", id), paramName)
	}
	return id, nil
}

// ParseQueryInt returns defaultValue when the query param is absent and an error
// when it is present but not an integer.
func ParseQueryInt(r *http.Request, paramName string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, paramName)
	}
	return value, nil
}

// ParseRequiredQueryID reads a query param that must hold a positive integer key.
func ParseRequiredQueryID(r *http.Request, paramName string) (int, error) {
	id, err := ParseQueryInt(r, paramName, 0)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(fmt.Errorf("got %d", id), paramName)
	}
	return id, nil
}

// DecodeAndValidateBody decodes the JSON body into dst, runs the sanitizers over it
// and validates the sanitized value.
func DecodeAndValidateBody[T any](r *http.Request, dst *T, sanitizers ...func(*T)) error {
	if r.Body == nil || r.Body == http.NoBody {
		return exceptions.ErrCannotParseJSON(errors.New("empty request body"))
	}
	// read fully first: the JSON decoder reports a truncated body instead of the
	// MaxBytesReader error
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return exceptions.ErrRequestBodyTooLarge(tooLarge.Limit)
		}
		return exceptions.ErrCannotParseJSON(err)
	}
	if len(raw) == 0 {
		return exceptions.ErrCannotParseJSON(errors.New("empty request body"))
	}

	err = json.Unmarshal(raw, dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	for _, sanitize := range sanitizers {
		sanitize(dst)
	}

	err = ValidateStruct(dst)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
