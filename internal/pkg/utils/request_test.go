package utils

import (
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/exceptions"
	"dental-hms/internal/pkg/hms_dto"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected a CustomError, got %T", err)
	return customErr.StatusCode
}

func TestDecodeAndValidateBody(t *testing.T) {
	t.Run("Decodes, sanitizes and validates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/staff", strings.NewReader(`{"firstName":"  Ana ","lastName":"Lee","email":" Ana@Clinic.Test"}`))
		request := new(hms_dto.StaffRequest)

		err := DecodeAndValidateBody(req, request, SanitizeStaffRequest)

		require.NoError(t, err)
		assert.Equal(t, "Ana", request.FirstName)
		assert.Equal(t, "ana@clinic.test", request.Email)
	})

	t.Run("Oversized body without content length", func(t *testing.T) {
		body := `{"firstName":"` + strings.Repeat("a", 4096) + `","lastName":"Lee"}`
		req := httptest.NewRequest(http.MethodPost, "/staff", strings.NewReader(body))
		req.ContentLength = -1
		req.Body = http.MaxBytesReader(httptest.NewRecorder(), req.Body, 1024)

		err := DecodeAndValidateBody(req, new(hms_dto.StaffRequest))

		require.Error(t, err)
		assert.Equal(t, constvars.StatusRequestEntityTooLarge, statusOf(t, err))
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/staff", strings.NewReader(`{"firstName":`))

		err := DecodeAndValidateBody(req, new(hms_dto.StaffRequest))

		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/staff", strings.NewReader(""))

		err := DecodeAndValidateBody(req, new(hms_dto.StaffRequest))

		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Validation failure after sanitizing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/staff", strings.NewReader(`{"firstName":"   ","lastName":"Lee"}`))

		err := DecodeAndValidateBody(req, new(hms_dto.StaffRequest), SanitizeStaffRequest)

		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})
}
