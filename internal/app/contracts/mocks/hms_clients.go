package mocks

import (
	"context"
	"dental-hms/internal/pkg/hms_dto"

	"github.com/stretchr/testify/mock"
)

type MockClinicClient struct {
	mock.Mock
}

func (m *MockClinicClient) FindAll(ctx context.Context) ([]hms_dto.Clinic, error) {
	args := m.Called(ctx)
	var result []hms_dto.Clinic
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Clinic)
	}
	return result, args.Error(1)
}

func (m *MockClinicClient) FindByID(ctx context.Context, id int) (*hms_dto.Clinic, error) {
	args := m.Called(ctx, id)
	var result *hms_dto.Clinic
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Clinic)
	}
	return result, args.Error(1)
}

func (m *MockClinicClient) FindByEnterprise(ctx context.Context, enterpriseID int) ([]hms_dto.Clinic, error) {
	args := m.Called(ctx, enterpriseID)
	var result []hms_dto.Clinic
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Clinic)
	}
	return result, args.Error(1)
}

func (m *MockClinicClient) Create(ctx context.Context, enterpriseID int, request *hms_dto.ClinicRequest) (*hms_dto.Clinic, error) {
	args := m.Called(ctx, enterpriseID, request)
	var result *hms_dto.Clinic
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Clinic)
	}
	return result, args.Error(1)
}

func (m *MockClinicClient) Update(ctx context.Context, id int, request *hms_dto.ClinicRequest) (*hms_dto.Clinic, error) {
	args := m.Called(ctx, id, request)
	var result *hms_dto.Clinic
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Clinic)
	}
	return result, args.Error(1)
}

func (m *MockClinicClient) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPatientClient struct {
	mock.Mock
}

func (m *MockPatientClient) FindAll(ctx context.Context) ([]hms_dto.Patient, error) {
	args := m.Called(ctx)
	var result []hms_dto.Patient
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Patient)
	}
	return result, args.Error(1)
}

func (m *MockPatientClient) FindByID(ctx context.Context, id int) (*hms_dto.Patient, error) {
	args := m.Called(ctx, id)
	var result *hms_dto.Patient
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Patient)
	}
	return result, args.Error(1)
}

func (m *MockPatientClient) FindByClinic(ctx context.Context, clinicID int) ([]hms_dto.Patient, error) {
	args := m.Called(ctx, clinicID)
	var result []hms_dto.Patient
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Patient)
	}
	return result, args.Error(1)
}

func (m *MockPatientClient) Create(ctx context.Context, request *hms_dto.PatientRequest) (*hms_dto.Patient, error) {
	args := m.Called(ctx, request)
	var result *hms_dto.Patient
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Patient)
	}
	return result, args.Error(1)
}

func (m *MockPatientClient) Update(ctx context.Context, id int, request *hms_dto.PatientRequest) (*hms_dto.Patient, error) {
	args := m.Called(ctx, id, request)
	var result *hms_dto.Patient
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Patient)
	}
	return result, args.Error(1)
}

type MockVisitClient struct {
	mock.Mock
}

func (m *MockVisitClient) FindAll(ctx context.Context) ([]hms_dto.Visit, error) {
	args := m.Called(ctx)
	var result []hms_dto.Visit
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Visit)
	}
	return result, args.Error(1)
}

func (m *MockVisitClient) FindByID(ctx context.Context, id int) (*hms_dto.Visit, error) {
	args := m.Called(ctx, id)
	var result *hms_dto.Visit
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Visit)
	}
	return result, args.Error(1)
}

func (m *MockVisitClient) FindByPatient(ctx context.Context, patientID int) ([]hms_dto.Visit, error) {
	args := m.Called(ctx, patientID)
	var result []hms_dto.Visit
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Visit)
	}
	return result, args.Error(1)
}

func (m *MockVisitClient) Create(ctx context.Context, request *hms_dto.VisitRequest) (*hms_dto.Visit, error) {
	args := m.Called(ctx, request)
	var result *hms_dto.Visit
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Visit)
	}
	return result, args.Error(1)
}

func (m *MockVisitClient) Update(ctx context.Context, id int, request *hms_dto.VisitRequest) (*hms_dto.Visit, error) {
	args := m.Called(ctx, id, request)
	var result *hms_dto.Visit
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Visit)
	}
	return result, args.Error(1)
}

func (m *MockVisitClient) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPrescriptionClient struct {
	mock.Mock
}

func (m *MockPrescriptionClient) FindAll(ctx context.Context) ([]hms_dto.Prescription, error) {
	args := m.Called(ctx)
	var result []hms_dto.Prescription
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Prescription)
	}
	return result, args.Error(1)
}

func (m *MockPrescriptionClient) FindByID(ctx context.Context, id int) (*hms_dto.Prescription, error) {
	args := m.Called(ctx, id)
	var result *hms_dto.Prescription
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Prescription)
	}
	return result, args.Error(1)
}

func (m *MockPrescriptionClient) FindByVisit(ctx context.Context, visitID int) ([]hms_dto.Prescription, error) {
	args := m.Called(ctx, visitID)
	var result []hms_dto.Prescription
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Prescription)
	}
	return result, args.Error(1)
}

func (m *MockPrescriptionClient) Create(ctx context.Context, request *hms_dto.PrescriptionRequest) (*hms_dto.Prescription, error) {
	args := m.Called(ctx, request)
	var result *hms_dto.Prescription
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Prescription)
	}
	return result, args.Error(1)
}

func (m *MockPrescriptionClient) Update(ctx context.Context, id int, request *hms_dto.PrescriptionRequest) (*hms_dto.Prescription, error) {
	args := m.Called(ctx, id, request)
	var result *hms_dto.Prescription
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Prescription)
	}
	return result, args.Error(1)
}

func (m *MockPrescriptionClient) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStaffClient struct {
	mock.Mock
}

func (m *MockStaffClient) FindAll(ctx context.Context) ([]hms_dto.Staff, error) {
	args := m.Called(ctx)
	var result []hms_dto.Staff
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Staff)
	}
	return result, args.Error(1)
}

func (m *MockStaffClient) FindByID(ctx context.Context, id int) (*hms_dto.Staff, error) {
	args := m.Called(ctx, id)
	var result *hms_dto.Staff
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Staff)
	}
	return result, args.Error(1)
}

func (m *MockStaffClient) FindByClinic(ctx context.Context, clinicID int) ([]hms_dto.Staff, error) {
	args := m.Called(ctx, clinicID)
	var result []hms_dto.Staff
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Staff)
	}
	return result, args.Error(1)
}

func (m *MockStaffClient) Create(ctx context.Context, request *hms_dto.StaffRequest) (*hms_dto.Staff, error) {
	args := m.Called(ctx, request)
	var result *hms_dto.Staff
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Staff)
	}
	return result, args.Error(1)
}

func (m *MockStaffClient) Update(ctx context.Context, id int, request *hms_dto.StaffRequest) (*hms_dto.Staff, error) {
	args := m.Called(ctx, id, request)
	var result *hms_dto.Staff
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Staff)
	}
	return result, args.Error(1)
}

func (m *MockStaffClient) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDoctorProfileClient struct {
	mock.Mock
}

func (m *MockDoctorProfileClient) FindAll(ctx context.Context) ([]hms_dto.DoctorProfile, error) {
	args := m.Called(ctx)
	var result []hms_dto.DoctorProfile
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.DoctorProfile)
	}
	return result, args.Error(1)
}

func (m *MockDoctorProfileClient) FindByID(ctx context.Context, id int) (*hms_dto.DoctorProfile, error) {
	args := m.Called(ctx, id)
	var result *hms_dto.DoctorProfile
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.DoctorProfile)
	}
	return result, args.Error(1)
}

func (m *MockDoctorProfileClient) FindByStaff(ctx context.Context, staffID int) (*hms_dto.DoctorProfile, error) {
	args := m.Called(ctx, staffID)
	var result *hms_dto.DoctorProfile
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.DoctorProfile)
	}
	return result, args.Error(1)
}

func (m *MockDoctorProfileClient) Create(ctx context.Context, request *hms_dto.DoctorProfileRequest) (*hms_dto.DoctorProfile, error) {
	args := m.Called(ctx, request)
	var result *hms_dto.DoctorProfile
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.DoctorProfile)
	}
	return result, args.Error(1)
}

func (m *MockDoctorProfileClient) Update(ctx context.Context, id int, request *hms_dto.DoctorProfileRequest) (*hms_dto.DoctorProfile, error) {
	args := m.Called(ctx, id, request)
	var result *hms_dto.DoctorProfile
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.DoctorProfile)
	}
	return result, args.Error(1)
}

func (m *MockDoctorProfileClient) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDentalServiceClient struct {
	mock.Mock
}

func (m *MockDentalServiceClient) FindAll(ctx context.Context) ([]hms_dto.Service, error) {
	args := m.Called(ctx)
	var result []hms_dto.Service
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Service)
	}
	return result, args.Error(1)
}

func (m *MockDentalServiceClient) FindByID(ctx context.Context, id int) (*hms_dto.Service, error) {
	args := m.Called(ctx, id)
	var result *hms_dto.Service
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Service)
	}
	return result, args.Error(1)
}

func (m *MockDentalServiceClient) FindByClinic(ctx context.Context, clinicID int) ([]hms_dto.Service, error) {
	args := m.Called(ctx, clinicID)
	var result []hms_dto.Service
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Service)
	}
	return result, args.Error(1)
}

func (m *MockDentalServiceClient) Create(ctx context.Context, request *hms_dto.ServiceRequest) (*hms_dto.Service, error) {
	args := m.Called(ctx, request)
	var result *hms_dto.Service
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Service)
	}
	return result, args.Error(1)
}

func (m *MockDentalServiceClient) Update(ctx context.Context, id int, request *hms_dto.ServiceRequest) (*hms_dto.Service, error) {
	args := m.Called(ctx, id, request)
	var result *hms_dto.Service
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Service)
	}
	return result, args.Error(1)
}

func (m *MockDentalServiceClient) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoleClient struct {
	mock.Mock
}

func (m *MockRoleClient) FindAll(ctx context.Context) ([]hms_dto.Role, error) {
	args := m.Called(ctx)
	var result []hms_dto.Role
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Role)
	}
	return result, args.Error(1)
}

func (m *MockRoleClient) FindByID(ctx context.Context, id int) (*hms_dto.Role, error) {
	args := m.Called(ctx, id)
	var result *hms_dto.Role
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Role)
	}
	return result, args.Error(1)
}

func (m *MockRoleClient) Create(ctx context.Context, request *hms_dto.RoleRequest) (*hms_dto.Role, error) {
	args := m.Called(ctx, request)
	var result *hms_dto.Role
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Role)
	}
	return result, args.Error(1)
}

func (m *MockRoleClient) Update(ctx context.Context, id int, request *hms_dto.RoleRequest) (*hms_dto.Role, error) {
	args := m.Called(ctx, id, request)
	var result *hms_dto.Role
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Role)
	}
	return result, args.Error(1)
}

func (m *MockRoleClient) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockClinicalSpecialtyClient struct {
	mock.Mock
}

func (m *MockClinicalSpecialtyClient) FindAll(ctx context.Context) ([]hms_dto.ClinicalSpecialty, error) {
	args := m.Called(ctx)
	var result []hms_dto.ClinicalSpecialty
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.ClinicalSpecialty)
	}
	return result, args.Error(1)
}

func (m *MockClinicalSpecialtyClient) FindByID(ctx context.Context, id int) (*hms_dto.ClinicalSpecialty, error) {
	args := m.Called(ctx, id)
	var result *hms_dto.ClinicalSpecialty
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.ClinicalSpecialty)
	}
	return result, args.Error(1)
}

func (m *MockClinicalSpecialtyClient) Create(ctx context.Context, request *hms_dto.ClinicalSpecialtyRequest) (*hms_dto.ClinicalSpecialty, error) {
	args := m.Called(ctx, request)
	var result *hms_dto.ClinicalSpecialty
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.ClinicalSpecialty)
	}
	return result, args.Error(1)
}

func (m *MockClinicalSpecialtyClient) Update(ctx context.Context, id int, request *hms_dto.ClinicalSpecialtyRequest) (*hms_dto.ClinicalSpecialty, error) {
	args := m.Called(ctx, id, request)
	var result *hms_dto.ClinicalSpecialty
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.ClinicalSpecialty)
	}
	return result, args.Error(1)
}

func (m *MockClinicalSpecialtyClient) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEnterpriseClient struct {
	mock.Mock
}

func (m *MockEnterpriseClient) FindAll(ctx context.Context) ([]hms_dto.Enterprise, error) {
	args := m.Called(ctx)
	var result []hms_dto.Enterprise
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.Enterprise)
	}
	return result, args.Error(1)
}

func (m *MockEnterpriseClient) FindByID(ctx context.Context, id int) (*hms_dto.Enterprise, error) {
	args := m.Called(ctx, id)
	var result *hms_dto.Enterprise
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.Enterprise)
	}
	return result, args.Error(1)
}

type MockSalaryClient struct {
	mock.Mock
}

func (m *MockSalaryClient) Calculate(ctx context.Context, staffID int, period hms_dto.SalaryPeriod) (*hms_dto.SalaryCalculation, error) {
	args := m.Called(ctx, staffID, period)
	var result *hms_dto.SalaryCalculation
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.SalaryCalculation)
	}
	return result, args.Error(1)
}

func (m *MockSalaryClient) CalculateBatch(ctx context.Context, request *hms_dto.SalaryBatchRequest) ([]hms_dto.SalaryCalculation, error) {
	args := m.Called(ctx, request)
	var result []hms_dto.SalaryCalculation
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.SalaryCalculation)
	}
	return result, args.Error(1)
}

func (m *MockSalaryClient) FindHistory(ctx context.Context, staffID int) ([]hms_dto.SalaryCalculation, error) {
	args := m.Called(ctx, staffID)
	var result []hms_dto.SalaryCalculation
	if v := args.Get(0); v != nil {
		result = v.([]hms_dto.SalaryCalculation)
	}
	return result, args.Error(1)
}

func (m *MockSalaryClient) Approve(ctx context.Context, calculationID int) (*hms_dto.SalaryCalculation, error) {
	args := m.Called(ctx, calculationID)
	var result *hms_dto.SalaryCalculation
	if v := args.Get(0); v != nil {
		result = v.(*hms_dto.SalaryCalculation)
	}
	return result, args.Error(1)
}
