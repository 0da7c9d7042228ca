package hms_dto

type Role struct {
	RoleID      int    `json:"roleId"`
	RoleName    string `json:"roleName"`
	Description string `json:"description,omitempty"`
}

type RoleRequest struct {
	RoleName    string `json:"roleName" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type ClinicalSpecialty struct {
	SpecialtyID   int    `json:"specialtyId"`
	SpecialtyName string `json:"specialtyName"`
	Description   string `json:"description,omitempty"`
}

type ClinicalSpecialtyRequest struct {
	SpecialtyName string `json:"specialtyName" validate:"required,max=150"`
	Description   string `json:"description,omitempty" validate:"omitempty,max=500"`
}
