package visits

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

// visitClient maps to the backend's PatientVisitInformation controller.
type visitClient struct {
	Client *httpcall.Client
	Log    *zap.Logger
}

func NewVisitClient(client *httpcall.Client, logger *zap.Logger) contracts.VisitClient {
	return &visitClient{
		Client: client,
		Log:    logger,
	}
}

func (c *visitClient) FindAll(ctx context.Context) ([]hms_dto.Visit, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("visitClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	visits, err := httpcall.List[hms_dto.Visit](ctx, c.Client, constvars.EndpointVisits)
	if err != nil {
		return nil, err
	}

	c.Log.Info("visitClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(visits)),
	)
	return visits, nil
}

func (c *visitClient) FindByID(ctx context.Context, visitID int) (*hms_dto.Visit, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("visitClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, visitID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointVisits, visitID)
	return httpcall.Get[hms_dto.Visit](ctx, c.Client, path)
}

func (c *visitClient) FindByPatient(ctx context.Context, patientID int) ([]hms_dto.Visit, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("visitClient.FindByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, patientID),
	)

	path := fmt.Sprintf("%s/patient/%d", constvars.EndpointVisits, patientID)
	visits, err := httpcall.List[hms_dto.Visit](ctx, c.Client, path)
	if err != nil {
		return nil, err
	}

	c.Log.Info("visitClient.FindByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(visits)),
	)
	return visits, nil
}

func (c *visitClient) Create(ctx context.Context, request *hms_dto.VisitRequest) (*hms_dto.Visit, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("visitClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created, err := httpcall.Post[hms_dto.Visit](ctx, c.Client, constvars.EndpointVisits, request)
	if err != nil {
		return nil, err
	}

	c.Log.Info("visitClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return created, nil
}

func (c *visitClient) Update(ctx context.Context, visitID int, request *hms_dto.VisitRequest) (*hms_dto.Visit, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("visitClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, visitID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointVisits, visitID)
	return httpcall.Put[hms_dto.Visit](ctx, c.Client, path, request)
}

func (c *visitClient) Delete(ctx context.Context, visitID int) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("visitClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, visitID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointVisits, visitID)
	return httpcall.Delete(ctx, c.Client, path)
}
