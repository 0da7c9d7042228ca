package clinics

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

// clinicClient talks to the backend's action-style Clinic controller. Ids travel in
// the query string on every path except GetAllClinics.
type clinicClient struct {
	Client *httpcall.Client
	Log    *zap.Logger
}

func NewClinicClient(client *httpcall.Client, logger *zap.Logger) contracts.ClinicClient {
	return &clinicClient{
		Client: client,
		Log:    logger,
	}
}

func (c *clinicClient) FindAll(ctx context.Context) ([]hms_dto.Clinic, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("clinicClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	clinics, err := httpcall.List[hms_dto.Clinic](ctx, c.Client, constvars.EndpointClinicGetAll)
	if err != nil {
		return nil, err
	}

	c.Log.Info("clinicClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(clinics)),
	)
	return clinics, nil
}

func (c *clinicClient) FindByID(ctx context.Context, clinicID int) (*hms_dto.Clinic, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("clinicClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, clinicID),
	)

	path := fmt.Sprintf("%s?id=%d", constvars.EndpointClinicGetByID, clinicID)
	return httpcall.Get[hms_dto.Clinic](ctx, c.Client, path)
}

func (c *clinicClient) FindByEnterprise(ctx context.Context, enterpriseID int) ([]hms_dto.Clinic, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("clinicClient.FindByEnterprise called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, enterpriseID),
	)

	path := fmt.Sprintf("%s?enterpriseId=%d", constvars.EndpointClinicGetByEnterprise, enterpriseID)
	clinics, err := httpcall.List[hms_dto.Clinic](ctx, c.Client, path)
	if err != nil {
		return nil, err
	}

	c.Log.Info("clinicClient.FindByEnterprise succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(clinics)),
	)
	return clinics, nil
}

func (c *clinicClient) Create(ctx context.Context, enterpriseID int, request *hms_dto.ClinicRequest) (*hms_dto.Clinic, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("clinicClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, enterpriseID),
	)

	path := fmt.Sprintf("%s?enterpriseId=%d", constvars.EndpointClinicCreate, enterpriseID)
	clinic, err := httpcall.Post[hms_dto.Clinic](ctx, c.Client, path, request)
	if err != nil {
		return nil, err
	}

	c.Log.Info("clinicClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return clinic, nil
}

func (c *clinicClient) Update(ctx context.Context, clinicID int, request *hms_dto.ClinicRequest) (*hms_dto.Clinic, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("clinicClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, clinicID),
	)

	path := fmt.Sprintf("%s?id=%d", constvars.EndpointClinicUpdate, clinicID)
	return httpcall.Put[hms_dto.Clinic](ctx, c.Client, path, request)
}

func (c *clinicClient) Delete(ctx context.Context, clinicID int) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("clinicClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, clinicID),
	)

	path := fmt.Sprintf("%s?id=%d", constvars.EndpointClinicDelete, clinicID)
	return httpcall.Delete(ctx, c.Client, path)
}
