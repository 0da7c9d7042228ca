package hms_dto

type Patient struct {
	PatientID             int     `json:"patientId"`
	ClinicID              *int    `json:"clinicId,omitempty"`
	FirstName             string  `json:"firstName"`
	LastName              string  `json:"lastName"`
	DateOfBirth           string  `json:"dateOfBirth,omitempty"`
	Gender                string  `json:"gender,omitempty"`
	PhoneNumber           string  `json:"phoneNumber,omitempty"`
	Email                 string  `json:"email,omitempty"`
	Address               string  `json:"address,omitempty"`
	MedicalHistory        string  `json:"medicalHistory,omitempty"`
	Allergies             string  `json:"allergies,omitempty"`
	EmergencyContactName  string  `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string  `json:"emergencyContactPhone,omitempty"`
	RegistrationDate      string  `json:"registrationDate,omitempty"`
	Clinic                *Clinic `json:"clinic,omitempty"`
}

type PatientRequest struct {
	ClinicID              *int   `json:"clinicId,omitempty" validate:"omitempty,gt=0"`
	FirstName             string `json:"firstName" validate:"required,max=100"`
	LastName              string `json:"lastName" validate:"required,max=100"`
	DateOfBirth           string `json:"dateOfBirth,omitempty" validate:"omitempty,iso_date"`
	Gender                string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	PhoneNumber           string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	Email                 string `json:"email,omitempty" validate:"omitempty,email"`
	Address               string `json:"address,omitempty" validate:"omitempty,max=500"`
	MedicalHistory        string `json:"medicalHistory,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	EmergencyContactName  string `json:"emergencyContactName,omitempty" validate:"omitempty,max=200"`
	EmergencyContactPhone string `json:"emergencyContactPhone,omitempty" validate:"omitempty,max=30"`
}
