package utils

import (
	"dental-hms/internal/pkg/hms_dto"
	"strings"
	"unicode"
)

func capitalize(input string) string {
	if len(input) == 0 {
		return input
	}
	runes := []rune(input)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeClinicRequest(input *hms_dto.ClinicRequest) {
	input.ClinicName = strings.TrimSpace(input.ClinicName)
	input.Address = strings.TrimSpace(input.Address)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Email = sanitizeEmail(input.Email)
}

func SanitizePatientRequest(input *hms_dto.PatientRequest) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Gender = capitalize(strings.TrimSpace(input.Gender))
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Email = sanitizeEmail(input.Email)
	input.Address = strings.TrimSpace(input.Address)
	input.EmergencyContactName = strings.TrimSpace(input.EmergencyContactName)
	input.EmergencyContactPhone = strings.TrimSpace(input.EmergencyContactPhone)
}

func SanitizeStaffRequest(input *hms_dto.StaffRequest) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Email = sanitizeEmail(input.Email)
}

func SanitizePrescriptionRequest(input *hms_dto.PrescriptionRequest) {
	input.MedicationName = strings.TrimSpace(input.MedicationName)
	input.Dosage = strings.TrimSpace(input.Dosage)
	input.Frequency = strings.TrimSpace(input.Frequency)
	input.Instructions = strings.TrimSpace(input.Instructions)
}
