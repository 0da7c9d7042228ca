package controllers

import (
	"context"
	"dental-hms/internal/app/config"
	"dental-hms/internal/app/contracts"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/hms_dto"
	"dental-hms/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Recorder       contracts.MutationRecorder
	PatientClient  contracts.PatientClient
}

func NewPatientController(logger *zap.Logger, internalConfig *config.InternalConfig, recorder contracts.MutationRecorder, patientClient contracts.PatientClient) *PatientController {
	return &PatientController{
		Log:            logger,
		InternalConfig: internalConfig,
		Recorder:       recorder,
		PatientClient:  patientClient,
	}
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	clinicID, err := utils.ParseQueryInt(r, constvars.QueryParamClinicID, 0)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	fetch := ctrl.PatientClient.FindAll
	if clinicID > 0 {
		fetch = func(ctx context.Context) ([]hms_dto.Patient, error) {
			return ctrl.PatientClient.FindByClinic(ctx, clinicID)
		}
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[[]hms_dto.Patient]{
		Name:     "patients.FindAll",
		Resource: constvars.ResourcePatient,
		Message:  constvars.GetPatientSuccessMessage,
		Fetch:    fetch,
	})
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	patientID, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[*hms_dto.Patient]{
		Name:     "patients.FindByID",
		Resource: constvars.ResourcePatient,
		Message:  constvars.GetPatientSuccessMessage,
		Fetch: func(ctx context.Context) (*hms_dto.Patient, error) {
			return ctrl.PatientClient.FindByID(ctx, patientID)
		},
	})
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(hms_dto.PatientRequest)
	err := utils.DecodeAndValidateBody(r, request, utils.SanitizePatientRequest)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, request, writeRoute[*hms_dto.PatientRequest, *hms_dto.Patient]{
		Name:       "patients.Create",
		Resource:   constvars.ResourcePatient,
		Action:     constvars.MutationActionCreated,
		StatusCode: http.StatusCreated,
		Message:    constvars.CreatePatientSuccessMessage,
		Mutate:     ctrl.PatientClient.Create,
		ResourceID: func(_ *hms_dto.PatientRequest, created *hms_dto.Patient) int {
			if created == nil {
				return 0
			}
			return created.PatientID
		},
	})
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	patientID, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(hms_dto.PatientRequest)
	err = utils.DecodeAndValidateBody(r, request, utils.SanitizePatientRequest)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	input := updateInput[hms_dto.PatientRequest]{ID: patientID, Body: request}
	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, input, writeRoute[updateInput[hms_dto.PatientRequest], *hms_dto.Patient]{
		Name:       "patients.Update",
		Resource:   constvars.ResourcePatient,
		Action:     constvars.MutationActionUpdated,
		StatusCode: http.StatusOK,
		Message:    constvars.UpdatePatientSuccessMessage,
		Mutate: func(ctx context.Context, input updateInput[hms_dto.PatientRequest]) (*hms_dto.Patient, error) {
			return ctrl.PatientClient.Update(ctx, input.ID, input.Body)
		},
		ResourceID: func(input updateInput[hms_dto.PatientRequest], _ *hms_dto.Patient) int {
			return input.ID
		},
	})
}
