package roles

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

type roleClient struct {
	Client *httpcall.Client
	Log    *zap.Logger
}

func NewRoleClient(client *httpcall.Client, logger *zap.Logger) contracts.RoleClient {
	return &roleClient{
		Client: client,
		Log:    logger,
	}
}

func (c *roleClient) FindAll(ctx context.Context) ([]hms_dto.Role, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("roleClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	roles, err := httpcall.List[hms_dto.Role](ctx, c.Client, constvars.EndpointRoles)
	if err != nil {
		return nil, err
	}

	c.Log.Info("roleClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(roles)),
	)
	return roles, nil
}

func (c *roleClient) FindByID(ctx context.Context, roleID int) (*hms_dto.Role, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("roleClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, roleID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointRoles, roleID)
	return httpcall.Get[hms_dto.Role](ctx, c.Client, path)
}

func (c *roleClient) Create(ctx context.Context, request *hms_dto.RoleRequest) (*hms_dto.Role, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("roleClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created, err := httpcall.Post[hms_dto.Role](ctx, c.Client, constvars.EndpointRoles, request)
	if err != nil {
		return nil, err
	}

	c.Log.Info("roleClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return created, nil
}

func (c *roleClient) Update(ctx context.Context, roleID int, request *hms_dto.RoleRequest) (*hms_dto.Role, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("roleClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, roleID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointRoles, roleID)
	return httpcall.Put[hms_dto.Role](ctx, c.Client, path, request)
}

func (c *roleClient) Delete(ctx context.Context, roleID int) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("roleClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, roleID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointRoles, roleID)
	return httpcall.Delete(ctx, c.Client, path)
}
