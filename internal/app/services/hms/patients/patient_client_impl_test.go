package patients

import (
	"context"
	"dental-hms/internal/app/services/hms/hmstest"
	"dental-hms/internal/pkg/hms_dto"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPatientClient_Paths(t *testing.T) {
	server := hmstest.NewServer(t, http.StatusOK, `{}`)
	client := NewPatientClient(server.HMSClient(), zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name     string
		body     string
		call     func() error
		wantVerb string
		wantPath string
	}{
		{
			name:     "FindAll",
			body:     `[]`,
			call:     func() error { _, err := client.FindAll(ctx); return err },
			wantVerb: http.MethodGet,
			wantPath: "/api/Patient/GetAllPatients",
		},
		{
			name:     "FindByID",
			body:     `{}`,
			call:     func() error { _, err := client.FindByID(ctx, 5); return err },
			wantVerb: http.MethodGet,
			wantPath: "/api/Patient/GetPatientById/5",
		},
		{
			name:     "FindByClinic",
			body:     `[]`,
			call:     func() error { _, err := client.FindByClinic(ctx, 2); return err },
			wantVerb: http.MethodGet,
			wantPath: "/api/Patient/GetPatientsByClinic/2",
		},
		{
			name:     "Create",
			body:     `{"patientId":5}`,
			call:     func() error { _, err := client.Create(ctx, &hms_dto.PatientRequest{FirstName: "Mia", LastName: "Hart"}); return err },
			wantVerb: http.MethodPost,
			wantPath: "/api/Patient/CreatePatient",
		},
		{
			name:     "Update",
			body:     `{"patientId":5}`,
			call:     func() error { _, err := client.Update(ctx, 5, &hms_dto.PatientRequest{FirstName: "Mia", LastName: "Hart"}); return err },
			wantVerb: http.MethodPut,
			wantPath: "/api/Patient/UpdatePatient/5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server.Respond(http.StatusOK, tt.body)

			require.NoError(t, tt.call())

			last := server.Last()
			assert.Equal(t, tt.wantVerb, last.Method)
			assert.Equal(t, tt.wantPath, last.Path)
			assert.Empty(t, last.RawQuery)
		})
	}
}

func TestPatientClient_OptionalClinicIsOmitted(t *testing.T) {
	server := hmstest.NewServer(t, http.StatusOK, `{"patientId":5,"firstName":"Mia","lastName":"Hart"}`)
	client := NewPatientClient(server.HMSClient(), zap.NewNop())

	patient, err := client.Create(context.Background(), &hms_dto.PatientRequest{FirstName: "Mia", LastName: "Hart"})

	require.NoError(t, err)
	assert.Nil(t, patient.ClinicID)
	assert.Nil(t, patient.Clinic)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(server.Last().Body, &sent))
	assert.NotContains(t, sent, "clinicId")
}

func TestPatientClient_FindByClinicNullBody(t *testing.T) {
	server := hmstest.NewServer(t, http.StatusOK, `null`)
	client := NewPatientClient(server.HMSClient(), zap.NewNop())

	patients, err := client.FindByClinic(context.Background(), 2)

	require.NoError(t, err)
	assert.NotNil(t, patients)
	assert.Empty(t, patients)
}
