package hms_dto

// Service is a billable dental procedure offered by a clinic.
type Service struct {
	ServiceID       int     `json:"serviceId"`
	ClinicID        int     `json:"clinicId"`
	ServiceName     string  `json:"serviceName"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	IsActive        bool    `json:"isActive"`
	Clinic          *Clinic `json:"clinic,omitempty"`
}

type ServiceRequest struct {
	ClinicID        int     `json:"clinicId" validate:"required,gt=0"`
	ServiceName     string  `json:"serviceName" validate:"required,max=200"`
	Description     string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes *int    `json:"durationMinutes,omitempty" validate:"omitempty,gt=0"`
	IsActive        *bool   `json:"isActive,omitempty"`
}
