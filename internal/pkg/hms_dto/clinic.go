package hms_dto

type Clinic struct {
	ClinicID     int         `json:"clinicId"`
	EnterpriseID int         `json:"enterpriseId"`
	ClinicName   string      `json:"clinicName"`
	Address      string      `json:"address,omitempty"`
	PhoneNumber  string      `json:"phoneNumber,omitempty"`
	Email        string      `json:"email,omitempty"`
	IsActive     bool        `json:"isActive"`
	CreatedDate  string      `json:"createdDate,omitempty"`
	Enterprise   *Enterprise `json:"enterprise,omitempty"`
}

// ClinicRequest is the body for the CreateClinic and UpdateClinic actions. The
// enterprise and clinic ids travel in the query string, not in the body.
type ClinicRequest struct {
	ClinicName  string `json:"clinicName" validate:"required,max=200"`
	Address     string `json:"address,omitempty" validate:"omitempty,max=500"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	IsActive    *bool  `json:"isActive,omitempty"`
}
