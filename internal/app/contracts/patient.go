package contracts

import (
	"context"
	"dental-hms/internal/pkg/hms_dto"
)

// PatientClient has no Delete: the backend keeps patient records.
type PatientClient interface {
	FindAll(ctx context.Context) ([]hms_dto.Patient, error)
	FindByID(ctx context.Context, patientID int) (*hms_dto.Patient, error)
	FindByClinic(ctx context.Context, clinicID int) ([]hms_dto.Patient, error)
	Create(ctx context.Context, request *hms_dto.PatientRequest) (*hms_dto.Patient, error)
	Update(ctx context.Context, patientID int, request *hms_dto.PatientRequest) (*hms_dto.Patient, error)
}

type VisitClient interface {
	FindAll(ctx context.Context) ([]hms_dto.Visit, error)
	FindByID(ctx context.Context, visitID int) (*hms_dto.Visit, error)
	FindByPatient(ctx context.Context, patientID int) ([]hms_dto.Visit, error)
	Create(ctx context.Context, request *hms_dto.VisitRequest) (*hms_dto.Visit, error)
	Update(ctx context.Context, visitID int, request *hms_dto.VisitRequest) (*hms_dto.Visit, error)
	Delete(ctx context.Context, visitID int) error
}

type PrescriptionClient interface {
	FindAll(ctx context.Context) ([]hms_dto.Prescription, error)
	FindByID(ctx context.Context, prescriptionID int) (*hms_dto.Prescription, error)
	FindByVisit(ctx context.Context, visitID int) ([]hms_dto.Prescription, error)
	Create(ctx context.Context, request *hms_dto.PrescriptionRequest) (*hms_dto.Prescription, error)
	Update(ctx context.Context, prescriptionID int, request *hms_dto.PrescriptionRequest) (*hms_dto.Prescription, error)
	Delete(ctx context.Context, prescriptionID int) error
}
