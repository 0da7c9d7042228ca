package doctorprofiles

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

// doctorProfileClient.FindByStaff returns a single record: a staff member has at
// most one doctor profile.
type doctorProfileClient struct {
	Client *httpcall.Client
	Log    *zap.Logger
}

func NewDoctorProfileClient(client *httpcall.Client, logger *zap.Logger) contracts.DoctorProfileClient {
	return &doctorProfileClient{
		Client: client,
		Log:    logger,
	}
}

func (c *doctorProfileClient) FindAll(ctx context.Context) ([]hms_dto.DoctorProfile, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("doctorProfileClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profiles, err := httpcall.List[hms_dto.DoctorProfile](ctx, c.Client, constvars.EndpointDoctorProfiles)
	if err != nil {
		return nil, err
	}

	c.Log.Info("doctorProfileClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(profiles)),
	)
	return profiles, nil
}

func (c *doctorProfileClient) FindByID(ctx context.Context, doctorProfileID int) (*hms_dto.DoctorProfile, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("doctorProfileClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, doctorProfileID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointDoctorProfiles, doctorProfileID)
	return httpcall.Get[hms_dto.DoctorProfile](ctx, c.Client, path)
}

func (c *doctorProfileClient) FindByStaff(ctx context.Context, staffID int) (*hms_dto.DoctorProfile, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("doctorProfileClient.FindByStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, staffID),
	)

	path := fmt.Sprintf("%s/staff/%d", constvars.EndpointDoctorProfiles, staffID)
	return httpcall.Get[hms_dto.DoctorProfile](ctx, c.Client, path)
}

func (c *doctorProfileClient) Create(ctx context.Context, request *hms_dto.DoctorProfileRequest) (*hms_dto.DoctorProfile, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("doctorProfileClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created, err := httpcall.Post[hms_dto.DoctorProfile](ctx, c.Client, constvars.EndpointDoctorProfiles, request)
	if err != nil {
		return nil, err
	}

	c.Log.Info("doctorProfileClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return created, nil
}

func (c *doctorProfileClient) Update(ctx context.Context, doctorProfileID int, request *hms_dto.DoctorProfileRequest) (*hms_dto.DoctorProfile, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("doctorProfileClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, doctorProfileID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointDoctorProfiles, doctorProfileID)
	return httpcall.Put[hms_dto.DoctorProfile](ctx, c.Client, path, request)
}

func (c *doctorProfileClient) Delete(ctx context.Context, doctorProfileID int) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("doctorProfileClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, doctorProfileID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointDoctorProfiles, doctorProfileID)
	return httpcall.Delete(ctx, c.Client, path)
}
