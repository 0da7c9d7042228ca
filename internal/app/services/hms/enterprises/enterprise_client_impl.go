package enterprises

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

type enterpriseClient struct {
	Client *httpcall.Client
	Log    *zap.Logger
}

func NewEnterpriseClient(client *httpcall.Client, logger *zap.Logger) contracts.EnterpriseClient {
	return &enterpriseClient{
		Client: client,
		Log:    logger,
	}
}

func (c *enterpriseClient) FindAll(ctx context.Context) ([]hms_dto.Enterprise, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("enterpriseClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	enterprises, err := httpcall.List[hms_dto.Enterprise](ctx, c.Client, constvars.EndpointEnterprise)
	if err != nil {
		return nil, err
	}

	c.Log.Info("enterpriseClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(enterprises)),
	)
	return enterprises, nil
}

func (c *enterpriseClient) FindByID(ctx context.Context, enterpriseID int) (*hms_dto.Enterprise, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("enterpriseClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, enterpriseID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointEnterprise, enterpriseID)
	return httpcall.Get[hms_dto.Enterprise](ctx, c.Client, path)
}
