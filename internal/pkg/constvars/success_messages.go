package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	GetClinicSuccessMessage    = "successfully fetched clinic data"
	CreateClinicSuccessMessage = "clinic created successfully"
	UpdateClinicSuccessMessage = "clinic updated successfully"
	DeleteClinicSuccessMessage = "clinic deleted successfully"

	GetEnterpriseSuccessMessage = "successfully fetched enterprise data"

	GetPatientSuccessMessage    = "successfully fetched patient data"
	CreatePatientSuccessMessage = "patient registered successfully"
	UpdatePatientSuccessMessage = "patient updated successfully"

	GetStaffSuccessMessage    = "successfully fetched staff data"
	CreateStaffSuccessMessage = "staff member created successfully"
	UpdateStaffSuccessMessage = "staff member updated successfully"
	DeleteStaffSuccessMessage = "staff member deleted successfully"

	GetServiceSuccessMessage    = "successfully fetched service data"
	CreateServiceSuccessMessage = "service created successfully"
	UpdateServiceSuccessMessage = "service updated successfully"
	DeleteServiceSuccessMessage = "service deleted successfully"

	GetRoleSuccessMessage    = "successfully fetched role data"
	CreateRoleSuccessMessage = "role created successfully"
	UpdateRoleSuccessMessage = "role updated successfully"
	DeleteRoleSuccessMessage = "role deleted successfully"

	GetClinicalSpecialtySuccessMessage    = "successfully fetched clinical specialty data"
	CreateClinicalSpecialtySuccessMessage = "clinical specialty created successfully"
	UpdateClinicalSpecialtySuccessMessage = "clinical specialty updated successfully"
	DeleteClinicalSpecialtySuccessMessage = "clinical specialty deleted successfully"

	GetDoctorProfileSuccessMessage    = "successfully fetched doctor profile data"
	CreateDoctorProfileSuccessMessage = "doctor profile created successfully"
	UpdateDoctorProfileSuccessMessage = "doctor profile updated successfully"
	DeleteDoctorProfileSuccessMessage = "doctor profile deleted successfully"

	GetVisitSuccessMessage    = "successfully fetched visit data"
	CreateVisitSuccessMessage = "visit recorded successfully"
	UpdateVisitSuccessMessage = "visit updated successfully"
	DeleteVisitSuccessMessage = "visit deleted successfully"

	GetPrescriptionSuccessMessage    = "successfully fetched prescription data"
	CreatePrescriptionSuccessMessage = "prescription created successfully"
	UpdatePrescriptionSuccessMessage = "prescription updated successfully"
	DeletePrescriptionSuccessMessage = "prescription deleted successfully"

	GetSalarySuccessMessage       = "successfully fetched salary data"
	CalculateSalarySuccessMessage = "salary calculated successfully"
	ApproveSalarySuccessMessage   = "salary calculation approved"

	GetReferenceSuccessMessage     = "successfully fetched reference data"
	RefreshReferenceSuccessMessage = "reference data refresh started"
)
