package staff

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

type staffClient struct {
	Client *httpcall.Client
	Log    *zap.Logger
}

func NewStaffClient(client *httpcall.Client, logger *zap.Logger) contracts.StaffClient {
	return &staffClient{
		Client: client,
		Log:    logger,
	}
}

func (c *staffClient) FindAll(ctx context.Context) ([]hms_dto.Staff, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("staffClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	members, err := httpcall.List[hms_dto.Staff](ctx, c.Client, constvars.EndpointStaff)
	if err != nil {
		return nil, err
	}

	c.Log.Info("staffClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(members)),
	)
	return members, nil
}

func (c *staffClient) FindByID(ctx context.Context, staffID int) (*hms_dto.Staff, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("staffClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, staffID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointStaff, staffID)
	return httpcall.Get[hms_dto.Staff](ctx, c.Client, path)
}

func (c *staffClient) FindByClinic(ctx context.Context, clinicID int) ([]hms_dto.Staff, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("staffClient.FindByClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, clinicID),
	)

	path := fmt.Sprintf("%s?clinicId=%d", constvars.EndpointStaff, clinicID)
	members, err := httpcall.List[hms_dto.Staff](ctx, c.Client, path)
	if err != nil {
		return nil, err
	}

	c.Log.Info("staffClient.FindByClinic succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(members)),
	)
	return members, nil
}

func (c *staffClient) Create(ctx context.Context, request *hms_dto.StaffRequest) (*hms_dto.Staff, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("staffClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created, err := httpcall.Post[hms_dto.Staff](ctx, c.Client, constvars.EndpointStaff, request)
	if err != nil {
		return nil, err
	}

	c.Log.Info("staffClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return created, nil
}

func (c *staffClient) Update(ctx context.Context, staffID int, request *hms_dto.StaffRequest) (*hms_dto.Staff, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("staffClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, staffID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointStaff, staffID)
	return httpcall.Put[hms_dto.Staff](ctx, c.Client, path, request)
}

func (c *staffClient) Delete(ctx context.Context, staffID int) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("staffClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, staffID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointStaff, staffID)
	return httpcall.Delete(ctx, c.Client, path)
}
