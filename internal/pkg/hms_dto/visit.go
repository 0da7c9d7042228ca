package hms_dto

// Visit mirrors the backend's PatientVisitInformation record.
type Visit struct {
	VisitID        int      `json:"visitId"`
	PatientID      int      `json:"patientId"`
	StaffID        *int     `json:"staffId,omitempty"`
	ServiceID      *int     `json:"serviceId,omitempty"`
	VisitDate      string   `json:"visitDate"`
	ChiefComplaint string   `json:"chiefComplaint,omitempty"`
	Diagnosis      string   `json:"diagnosis,omitempty"`
	TreatmentNotes string   `json:"treatmentNotes,omitempty"`
	ToothNumbers   string   `json:"toothNumbers,omitempty"`
	TotalCost      *float64 `json:"totalCost,omitempty"`
	FollowUpDate   string   `json:"followUpDate,omitempty"`
	Patient        *Patient `json:"patient,omitempty"`
	Staff          *Staff   `json:"staff,omitempty"`
	Service        *Service `json:"service,omitempty"`
}

type VisitRequest struct {
	PatientID      int      `json:"patientId" validate:"required,gt=0"`
	StaffID        *int     `json:"staffId,omitempty" validate:"omitempty,gt=0"`
	ServiceID      *int     `json:"serviceId,omitempty" validate:"omitempty,gt=0"`
	VisitDate      string   `json:"visitDate" validate:"required,iso_date"`
	ChiefComplaint string   `json:"chiefComplaint,omitempty" validate:"omitempty,max=1000"`
	Diagnosis      string   `json:"diagnosis,omitempty" validate:"omitempty,max=2000"`
	TreatmentNotes string   `json:"treatmentNotes,omitempty"`
	ToothNumbers   string   `json:"toothNumbers,omitempty" validate:"omitempty,max=200"`
	TotalCost      *float64 `json:"totalCost,omitempty" validate:"omitempty,gte=0"`
	FollowUpDate   string   `json:"followUpDate,omitempty" validate:"omitempty,iso_date"`
}
