package hms_dto

type Prescription struct {
	PrescriptionID int    `json:"prescriptionId"`
	VisitID        int    `json:"visitId"`
	MedicationName string `json:"medicationName"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency,omitempty"`
	DurationDays   *int   `json:"durationDays,omitempty"`
	Instructions   string `json:"instructions,omitempty"`
	PrescribedDate string `json:"prescribedDate,omitempty"`
	Visit          *Visit `json:"visit,omitempty"`
}

type PrescriptionRequest struct {
	VisitID        int    `json:"visitId" validate:"required,gt=0"`
	MedicationName string `json:"medicationName" validate:"required,max=200"`
	Dosage         string `json:"dosage" validate:"required,max=100"`
	Frequency      string `json:"frequency,omitempty" validate:"omitempty,max=100"`
	DurationDays   *int   `json:"durationDays,omitempty" validate:"omitempty,gt=0"`
	Instructions   string `json:"instructions,omitempty" validate:"omitempty,max=1000"`
	PrescribedDate string `json:"prescribedDate,omitempty" validate:"omitempty,iso_date"`
}
