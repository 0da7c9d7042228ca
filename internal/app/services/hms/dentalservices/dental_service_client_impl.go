package dentalservices

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

// dentalServiceClient covers the clinic price list (/services).
type dentalServiceClient struct {
	Client *httpcall.Client
	Log    *zap.Logger
}

func NewDentalServiceClient(client *httpcall.Client, logger *zap.Logger) contracts.DentalServiceClient {
	return &dentalServiceClient{
		Client: client,
		Log:    logger,
	}
}

func (c *dentalServiceClient) FindAll(ctx context.Context) ([]hms_dto.Service, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("dentalServiceClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	services, err := httpcall.List[hms_dto.Service](ctx, c.Client, constvars.EndpointServices)
	if err != nil {
		return nil, err
	}

	c.Log.Info("dentalServiceClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(services)),
	)
	return services, nil
}

func (c *dentalServiceClient) FindByID(ctx context.Context, serviceID int) (*hms_dto.Service, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("dentalServiceClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, serviceID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointServices, serviceID)
	return httpcall.Get[hms_dto.Service](ctx, c.Client, path)
}

func (c *dentalServiceClient) FindByClinic(ctx context.Context, clinicID int) ([]hms_dto.Service, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("dentalServiceClient.FindByClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, clinicID),
	)

	path := fmt.Sprintf("%s?clinicId=%d", constvars.EndpointServices, clinicID)
	services, err := httpcall.List[hms_dto.Service](ctx, c.Client, path)
	if err != nil {
		return nil, err
	}

	c.Log.Info("dentalServiceClient.FindByClinic succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(services)),
	)
	return services, nil
}

func (c *dentalServiceClient) Create(ctx context.Context, request *hms_dto.ServiceRequest) (*hms_dto.Service, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("dentalServiceClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created, err := httpcall.Post[hms_dto.Service](ctx, c.Client, constvars.EndpointServices, request)
	if err != nil {
		return nil, err
	}

	c.Log.Info("dentalServiceClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return created, nil
}

func (c *dentalServiceClient) Update(ctx context.Context, serviceID int, request *hms_dto.ServiceRequest) (*hms_dto.Service, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("dentalServiceClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, serviceID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointServices, serviceID)
	return httpcall.Put[hms_dto.Service](ctx, c.Client, path, request)
}

func (c *dentalServiceClient) Delete(ctx context.Context, serviceID int) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("dentalServiceClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, serviceID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointServices, serviceID)
	return httpcall.Delete(ctx, c.Client, path)
}
