package constvars

// Resource names used in logs, errors and mutation events.
const (
	ResourceClinic            = "Clinic"
	ResourceEnterprise        = "Enterprise"
	ResourcePatient           = "Patient"
	ResourceStaff             = "Staff"
	ResourceService           = "Service"
	ResourceRole              = "Role"
	ResourceClinicalSpecialty = "ClinicalSpecialty"
	ResourceDoctorProfile     = "DoctorProfile"
	ResourceVisit             = "PatientVisitInformation"
	ResourcePrescription      = "Prescription"
	ResourceSalary            = "SalaryCalculation"
)

// Backend endpoint roots, relative to the HMS base url. The clinic and patient
// controllers use action-style paths and query-string ids, the rest are RESTful.
const (
	EndpointClinicGetAll          = "/Clinic/GetAllClinics"
	EndpointClinicGetByID         = "/Clinic/GetClinicById"
	EndpointClinicGetByEnterprise = "/Clinic/GetClinicsByEnterprise"
	EndpointClinicCreate          = "/Clinic/CreateClinic"
	EndpointClinicUpdate          = "/Clinic/UpdateClinic"
	EndpointClinicDelete          = "/Clinic/DeleteClinic"

	EndpointPatientGetAll      = "/Patient/GetAllPatients"
	EndpointPatientGetByID     = "/Patient/GetPatientById"
	EndpointPatientGetByClinic = "/Patient/GetPatientsByClinic"
	EndpointPatientCreate      = "/Patient/CreatePatient"
	EndpointPatientUpdate      = "/Patient/UpdatePatient"

	EndpointEnterprise          = "/Enterprise"
	EndpointStaff               = "/staff"
	EndpointServices            = "/services"
	EndpointRoles               = "/roles"
	EndpointClinicalSpecialties = "/clinicalspecialties"
	EndpointDoctorProfiles      = "/doctorprofiles"
	EndpointVisits              = "/PatientVisitInformation"
	EndpointPrescriptions       = "/Prescriptions"
	EndpointSalary              = "/salary"
)

const (
	MutationActionCreated  = "created"
	MutationActionUpdated  = "updated"
	MutationActionDeleted  = "deleted"
	MutationActionApproved = "approved"
	MutationActionComputed = "computed"
)
