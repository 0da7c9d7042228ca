package contracts

import (
	"context"
	"dental-hms/internal/pkg/hms_dto"
)

type ClinicClient interface {
	FindAll(ctx context.Context) ([]hms_dto.Clinic, error)
	FindByID(ctx context.Context, clinicID int) (*hms_dto.Clinic, error)
	FindByEnterprise(ctx context.Context, enterpriseID int) ([]hms_dto.Clinic, error)
	Create(ctx context.Context, enterpriseID int, request *hms_dto.ClinicRequest) (*hms_dto.Clinic, error)
	Update(ctx context.Context, clinicID int, request *hms_dto.ClinicRequest) (*hms_dto.Clinic, error)
	Delete(ctx context.Context, clinicID int) error
}

type EnterpriseClient interface {
	FindAll(ctx context.Context) ([]hms_dto.Enterprise, error)
	FindByID(ctx context.Context, enterpriseID int) (*hms_dto.Enterprise, error)
}
