package prescriptions

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

type prescriptionClient struct {
	Client *httpcall.Client
	Log    *zap.Logger
}

func NewPrescriptionClient(client *httpcall.Client, logger *zap.Logger) contracts.PrescriptionClient {
	return &prescriptionClient{
		Client: client,
		Log:    logger,
	}
}

func (c *prescriptionClient) FindAll(ctx context.Context) ([]hms_dto.Prescription, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("prescriptionClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	prescriptions, err := httpcall.List[hms_dto.Prescription](ctx, c.Client, constvars.EndpointPrescriptions)
	if err != nil {
		return nil, err
	}

	c.Log.Info("prescriptionClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(prescriptions)),
	)
	return prescriptions, nil
}

func (c *prescriptionClient) FindByID(ctx context.Context, prescriptionID int) (*hms_dto.Prescription, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("prescriptionClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, prescriptionID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointPrescriptions, prescriptionID)
	return httpcall.Get[hms_dto.Prescription](ctx, c.Client, path)
}

func (c *prescriptionClient) FindByVisit(ctx context.Context, visitID int) ([]hms_dto.Prescription, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("prescriptionClient.FindByVisit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, visitID),
	)

	path := fmt.Sprintf("%s/visit/%d", constvars.EndpointPrescriptions, visitID)
	prescriptions, err := httpcall.List[hms_dto.Prescription](ctx, c.Client, path)
	if err != nil {
		return nil, err
	}

	c.Log.Info("prescriptionClient.FindByVisit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(prescriptions)),
	)
	return prescriptions, nil
}

func (c *prescriptionClient) Create(ctx context.Context, request *hms_dto.PrescriptionRequest) (*hms_dto.Prescription, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("prescriptionClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created, err := httpcall.Post[hms_dto.Prescription](ctx, c.Client, constvars.EndpointPrescriptions, request)
	if err != nil {
		return nil, err
	}

	c.Log.Info("prescriptionClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return created, nil
}

func (c *prescriptionClient) Update(ctx context.Context, prescriptionID int, request *hms_dto.PrescriptionRequest) (*hms_dto.Prescription, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("prescriptionClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, prescriptionID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointPrescriptions, prescriptionID)
	return httpcall.Put[hms_dto.Prescription](ctx, c.Client, path, request)
}

func (c *prescriptionClient) Delete(ctx context.Context, prescriptionID int) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("prescriptionClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, prescriptionID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointPrescriptions, prescriptionID)
	return httpcall.Delete(ctx, c.Client, path)
}
