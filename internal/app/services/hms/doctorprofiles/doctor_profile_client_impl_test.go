package doctorprofiles

import (
	"context"
	"dental-hms/internal/app/services/hms/hmstest"
	"dental-hms/internal/pkg/exceptions"
	"dental-hms/internal/pkg/hms_dto"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDoctorProfileClient_Paths(t *testing.T) {
	server := hmstest.NewServer(t, http.StatusOK, `{}`)
	client := NewDoctorProfileClient(server.HMSClient(), zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name      string
		status    int
		body      string
		call      func() error
		wantVerb  string
		wantPath  string
		wantQuery string
	}{
		{
			name:     "FindAll",
			body:     `[]`,
			call:     func() error { _, err := client.FindAll(ctx); return err },
			wantVerb: http.MethodGet,
			wantPath: "/api/doctorprofiles",
		},
		{
			name:     "FindByID",
			body:     `{}`,
			call:     func() error { _, err := client.FindByID(ctx, 9); return err },
			wantVerb: http.MethodGet,
			wantPath: "/api/doctorprofiles/9",
		},
		{
			name:      "FindByStaff",
			body:      `{}`,
			call:      func() error { _, err := client.FindByStaff(ctx, 2); return err },
			wantVerb:  http.MethodGet,
			wantPath:  "/api/doctorprofiles/staff/2",
			wantQuery: "",
		},
		{
			name:     "Create",
			status:   http.StatusCreated,
			body:     `{"doctorProfileId":10}`,
			call:     func() error { _, err := client.Create(ctx, &hms_dto.DoctorProfileRequest{StaffID: 2, LicenseNumber: "DL-1"}); return err },
			wantVerb: http.MethodPost,
			wantPath: "/api/doctorprofiles",
		},
		{
			name:     "Update",
			status:   http.StatusNoContent,
			call:     func() error { _, err := client.Update(ctx, 9, &hms_dto.DoctorProfileRequest{StaffID: 2, LicenseNumber: "DL-1"}); return err },
			wantVerb: http.MethodPut,
			wantPath: "/api/doctorprofiles/9",
		},
		{
			name:     "Delete",
			body:     `{}`,
			call:     func() error { return client.Delete(ctx, 9) },
			wantVerb: http.MethodDelete,
			wantPath: "/api/doctorprofiles/9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := tt.status
			if status == 0 {
				status = http.StatusOK
			}
			server.Respond(status, tt.body)

			require.NoError(t, tt.call())

			last := server.Last()
			assert.Equal(t, tt.wantVerb, last.Method)
			assert.Equal(t, tt.wantPath, last.Path)
			assert.Equal(t, tt.wantQuery, last.RawQuery)
		})
	}
}

func TestDoctorProfileClient_NotFound(t *testing.T) {
	server := hmstest.NewServer(t, http.StatusNotFound, "not found")
	client := NewDoctorProfileClient(server.HMSClient(), zap.NewNop())

	result, err := client.FindByID(context.Background(), 404)

	assert.Nil(t, result)
	httpErr, ok := exceptions.AsHttpError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "not found", httpErr.Body)
}
