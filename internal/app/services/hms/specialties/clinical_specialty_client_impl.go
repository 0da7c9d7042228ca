package specialties

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

type clinicalSpecialtyClient struct {
	Client *httpcall.Client
	Log    *zap.Logger
}

func NewClinicalSpecialtyClient(client *httpcall.Client, logger *zap.Logger) contracts.ClinicalSpecialtyClient {
	return &clinicalSpecialtyClient{
		Client: client,
		Log:    logger,
	}
}

func (c *clinicalSpecialtyClient) FindAll(ctx context.Context) ([]hms_dto.ClinicalSpecialty, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("clinicalSpecialtyClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	specialties, err := httpcall.List[hms_dto.ClinicalSpecialty](ctx, c.Client, constvars.EndpointClinicalSpecialties)
	if err != nil {
		return nil, err
	}

	c.Log.Info("clinicalSpecialtyClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(specialties)),
	)
	return specialties, nil
}

func (c *clinicalSpecialtyClient) FindByID(ctx context.Context, specialtyID int) (*hms_dto.ClinicalSpecialty, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("clinicalSpecialtyClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, specialtyID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointClinicalSpecialties, specialtyID)
	return httpcall.Get[hms_dto.ClinicalSpecialty](ctx, c.Client, path)
}

func (c *clinicalSpecialtyClient) Create(ctx context.Context, request *hms_dto.ClinicalSpecialtyRequest) (*hms_dto.ClinicalSpecialty, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("clinicalSpecialtyClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created, err := httpcall.Post[hms_dto.ClinicalSpecialty](ctx, c.Client, constvars.EndpointClinicalSpecialties, request)
	if err != nil {
		return nil, err
	}

	c.Log.Info("clinicalSpecialtyClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return created, nil
}

func (c *clinicalSpecialtyClient) Update(ctx context.Context, specialtyID int, request *hms_dto.ClinicalSpecialtyRequest) (*hms_dto.ClinicalSpecialty, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("clinicalSpecialtyClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, specialtyID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointClinicalSpecialties, specialtyID)
	return httpcall.Put[hms_dto.ClinicalSpecialty](ctx, c.Client, path, request)
}

func (c *clinicalSpecialtyClient) Delete(ctx context.Context, specialtyID int) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("clinicalSpecialtyClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, specialtyID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointClinicalSpecialties, specialtyID)
	return httpcall.Delete(ctx, c.Client, path)
}
