package contracts

import (
	"context"
	"dental-hms/internal/pkg/hms_dto"
)

type DentalServiceClient interface {
	FindAll(ctx context.Context) ([]hms_dto.Service, error)
	FindByID(ctx context.Context, serviceID int) (*hms_dto.Service, error)
	FindByClinic(ctx context.Context, clinicID int) ([]hms_dto.Service, error)
	Create(ctx context.Context, request *hms_dto.ServiceRequest) (*hms_dto.Service, error)
	Update(ctx context.Context, serviceID int, request *hms_dto.ServiceRequest) (*hms_dto.Service, error)
	Delete(ctx context.Context, serviceID int) error
}
