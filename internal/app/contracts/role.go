package contracts

import (
	"context"
	"dental-hms/internal/pkg/hms_dto"
)

type RoleClient interface {
	FindAll(ctx context.Context) ([]hms_dto.Role, error)
	FindByID(ctx context.Context, roleID int) (*hms_dto.Role, error)
	Create(ctx context.Context, request *hms_dto.RoleRequest) (*hms_dto.Role, error)
	Update(ctx context.Context, roleID int, request *hms_dto.RoleRequest) (*hms_dto.Role, error)
	Delete(ctx context.Context, roleID int) error
}

type ClinicalSpecialtyClient interface {
	FindAll(ctx context.Context) ([]hms_dto.ClinicalSpecialty, error)
	FindByID(ctx context.Context, specialtyID int) (*hms_dto.ClinicalSpecialty, error)
	Create(ctx context.Context, request *hms_dto.ClinicalSpecialtyRequest) (*hms_dto.ClinicalSpecialty, error)
	Update(ctx context.Context, specialtyID int, request *hms_dto.ClinicalSpecialtyRequest) (*hms_dto.ClinicalSpecialty, error)
	Delete(ctx context.Context, specialtyID int) error
}
