package contracts

import (
	"context"
	"dental-hms/internal/pkg/hms_dto"
)

type StaffClient interface {
	FindAll(ctx context.Context) ([]hms_dto.Staff, error)
	FindByID(ctx context.Context, staffID int) (*hms_dto.Staff, error)
	FindByClinic(ctx context.Context, clinicID int) ([]hms_dto.Staff, error)
	Create(ctx context.Context, request *hms_dto.StaffRequest) (*hms_dto.Staff, error)
	Update(ctx context.Context, staffID int, request *hms_dto.StaffRequest) (*hms_dto.Staff, error)
	Delete(ctx context.Context, staffID int) error
}

type DoctorProfileClient interface {
	FindAll(ctx context.Context) ([]hms_dto.DoctorProfile, error)
	FindByID(ctx context.Context, doctorProfileID int) (*hms_dto.DoctorProfile, error)
	FindByStaff(ctx context.Context, staffID int) (*hms_dto.DoctorProfile, error)
	Create(ctx context.Context, request *hms_dto.DoctorProfileRequest) (*hms_dto.DoctorProfile, error)
	Update(ctx context.Context, doctorProfileID int, request *hms_dto.DoctorProfileRequest) (*hms_dto.DoctorProfile, error)
	Delete(ctx context.Context, doctorProfileID int) error
}

type SalaryClient interface {
	Calculate(ctx context.Context, staffID int, period hms_dto.SalaryPeriod) (*hms_dto.SalaryCalculation, error)
	CalculateBatch(ctx context.Context, request *hms_dto.SalaryBatchRequest) ([]hms_dto.SalaryCalculation, error)
	FindHistory(ctx context.Context, staffID int) ([]hms_dto.SalaryCalculation, error)
	Approve(ctx context.Context, calculationID int) (*hms_dto.SalaryCalculation, error)
}
