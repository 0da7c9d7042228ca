package patients

import (
	"context"
	"dental-hms/internal/app/contracts"
	"dental-hms/internal/app/services/hms/httpcall"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/hms_dto"
	"dental-hms/internal/pkg/utils"
	"fmt"

	"go.uber.org/zap"
)

// patientClient uses the action-style Patient controller. Unlike clinics, ids are
// path segments.
type patientClient struct {
	Client *httpcall.Client
	Log    *zap.Logger
}

func NewPatientClient(client *httpcall.Client, logger *zap.Logger) contracts.PatientClient {
	return &patientClient{
		Client: client,
		Log:    logger,
	}
}

func (c *patientClient) FindAll(ctx context.Context) ([]hms_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := httpcall.List[hms_dto.Patient](ctx, c.Client, constvars.EndpointPatientGetAll)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientClient) FindByID(ctx context.Context, patientID int) (*hms_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, patientID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointPatientGetByID, patientID)
	return httpcall.Get[hms_dto.Patient](ctx, c.Client, path)
}

func (c *patientClient) FindByClinic(ctx context.Context, clinicID int) ([]hms_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.FindByClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, clinicID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointPatientGetByClinic, clinicID)
	patients, err := httpcall.List[hms_dto.Patient](ctx, c.Client, path)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientClient.FindByClinic succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientClient) Create(ctx context.Context, request *hms_dto.PatientRequest) (*hms_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return httpcall.Post[hms_dto.Patient](ctx, c.Client, constvars.EndpointPatientCreate, request)
}

func (c *patientClient) Update(ctx context.Context, patientID int, request *hms_dto.PatientRequest) (*hms_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, patientID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointPatientUpdate, patientID)
	return httpcall.Put[hms_dto.Patient](ctx, c.Client, path, request)
}
