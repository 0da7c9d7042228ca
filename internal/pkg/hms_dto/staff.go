package hms_dto

type Staff struct {
	StaffID     int     `json:"staffId"`
	ClinicID    *int    `json:"clinicId,omitempty"`
	RoleID      *int    `json:"roleId,omitempty"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email,omitempty"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
	HireDate    string  `json:"hireDate,omitempty"`
	BaseSalary  float64 `json:"baseSalary"`
	IsActive    bool    `json:"isActive"`
	Clinic      *Clinic `json:"clinic,omitempty"`
	Role        *Role   `json:"role,omitempty"`
}

type StaffRequest struct {
	ClinicID    *int    `json:"clinicId,omitempty" validate:"omitempty,gt=0"`
	RoleID      *int    `json:"roleId,omitempty" validate:"omitempty,gt=0"`
	FirstName   string  `json:"firstName" validate:"required,max=100"`
	LastName    string  `json:"lastName" validate:"required,max=100"`
	Email       string  `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string  `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	HireDate    string  `json:"hireDate,omitempty" validate:"omitempty,iso_date"`
	BaseSalary  float64 `json:"baseSalary" validate:"gte=0"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type DoctorProfile struct {
	DoctorProfileID   int                `json:"doctorProfileId"`
	StaffID           int                `json:"staffId"`
	SpecialtyID       *int               `json:"specialtyId,omitempty"`
	LicenseNumber     string             `json:"licenseNumber"`
	YearsOfExperience int                `json:"yearsOfExperience"`
	CommissionRate    float64            `json:"commissionRate"`
	Biography         string             `json:"biography,omitempty"`
	Staff             *Staff             `json:"staff,omitempty"`
	Specialty         *ClinicalSpecialty `json:"specialty,omitempty"`
}

type DoctorProfileRequest struct {
	StaffID           int     `json:"staffId" validate:"required,gt=0"`
	SpecialtyID       *int    `json:"specialtyId,omitempty" validate:"omitempty,gt=0"`
	LicenseNumber     string  `json:"licenseNumber" validate:"required,max=50"`
	YearsOfExperience int     `json:"yearsOfExperience" validate:"gte=0"`
	CommissionRate    float64 `json:"commissionRate" validate:"gte=0,lte=100"`
	Biography         string  `json:"biography,omitempty" validate:"omitempty,max=2000"`
}
