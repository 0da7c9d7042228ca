package responses

import (
	"dental-hms/internal/pkg/async"
	"dental-hms/internal/pkg/hms_dto"
)

// ReferenceEntry is the JSON face of one reference query. Error is null while the
// query has no error.
type ReferenceEntry[T any] struct {
	Data    T       `json:"data"`
	Loading bool    `json:"loading"`
	Error   *string `json:"error"`
}

type ReferenceSnapshot struct {
	Roles               ReferenceEntry[[]hms_dto.Role]              `json:"roles"`
	ClinicalSpecialties ReferenceEntry[[]hms_dto.ClinicalSpecialty] `json:"clinicalSpecialties"`
	Enterprises         ReferenceEntry[[]hms_dto.Enterprise]        `json:"enterprises"`
	Clinics             ReferenceEntry[[]hms_dto.Clinic]            `json:"clinics"`
}

func NewReferenceEntry[T any](state async.State[T]) ReferenceEntry[T] {
	entry := ReferenceEntry[T]{
		Data:    state.Data,
		Loading: state.Loading,
	}
	if state.Error != "" {
		message := state.Error
		entry.Error = &message
	}
	return entry
}
