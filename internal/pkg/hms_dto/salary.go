package hms_dto

type SalaryCalculation struct {
	CalculationID     int      `json:"calculationId"`
	StaffID           int      `json:"staffId"`
	Month             int      `json:"month"`
	Year              int      `json:"year"`
	BaseSalary        float64  `json:"baseSalary"`
	VisitCount        int      `json:"visitCount"`
	CommissionAmount  float64  `json:"commissionAmount"`
	Deductions        float64  `json:"deductions"`
	NetSalary         float64  `json:"netSalary"`
	Status            string   `json:"status,omitempty"`
	CalculatedDate    string   `json:"calculatedDate,omitempty"`
	ApprovedDate      string   `json:"approvedDate,omitempty"`
	StaffName         string   `json:"staffName,omitempty"`
	StaffRoleName     string   `json:"staffRoleName,omitempty"`
	DoctorProfileID   *int     `json:"doctorProfileId,omitempty"`
	CommissionPercent *float64 `json:"commissionPercent,omitempty"`
}

// SalaryBatchRequest asks the backend to compute salaries for every active staff
// member of a clinic for one period.
type SalaryBatchRequest struct {
	ClinicID int `json:"clinicId" validate:"required,gt=0"`
	Month    int `json:"month" validate:"required,gte=1,lte=12"`
	Year     int `json:"year" validate:"required,gte=2000,lte=2100"`
}

type SalaryPeriod struct {
	Month int `validate:"required,gte=1,lte=12"`
	Year  int `validate:"required,gte=2000,lte=2100"`
}

const (
	SalaryStatusDraft    = "Draft"
	SalaryStatusApproved = "Approved"
)
