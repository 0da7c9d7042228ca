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

type PrescriptionController struct {
	Log                *zap.Logger
	InternalConfig     *config.InternalConfig
	Recorder           contracts.MutationRecorder
	PrescriptionClient contracts.PrescriptionClient
}

func NewPrescriptionController(logger *zap.Logger, internalConfig *config.InternalConfig, recorder contracts.MutationRecorder, prescriptionClient contracts.PrescriptionClient) *PrescriptionController {
	return &PrescriptionController{
		Log:                logger,
		InternalConfig:     internalConfig,
		Recorder:           recorder,
		PrescriptionClient: prescriptionClient,
	}
}

// FindAll narrows the list with the optional visitId query param.
func (ctrl *PrescriptionController) FindAll(w http.ResponseWriter, r *http.Request) {
	visitID, err := utils.ParseQueryInt(r, constvars.QueryParamVisitID, 0)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	fetch := ctrl.PrescriptionClient.FindAll
	if visitID > 0 {
		fetch = func(ctx context.Context) ([]hms_dto.Prescription, error) {
			return ctrl.PrescriptionClient.FindByVisit(ctx, visitID)
		}
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[[]hms_dto.Prescription]{
		Name:     "prescriptions.FindAll",
		Resource: constvars.ResourcePrescription,
		Message:  constvars.GetPrescriptionSuccessMessage,
		Fetch:    fetch,
	})
}

func (ctrl *PrescriptionController) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[*hms_dto.Prescription]{
		Name:     "prescriptions.FindByID",
		Resource: constvars.ResourcePrescription,
		Message:  constvars.GetPrescriptionSuccessMessage,
		Fetch: func(ctx context.Context) (*hms_dto.Prescription, error) {
			return ctrl.PrescriptionClient.FindByID(ctx, id)
		},
	})
}

func (ctrl *PrescriptionController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(hms_dto.PrescriptionRequest)
	err := utils.DecodeAndValidateBody(r, request, utils.SanitizePrescriptionRequest)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, request, writeRoute[*hms_dto.PrescriptionRequest, *hms_dto.Prescription]{
		Name:       "prescriptions.Create",
		Resource:   constvars.ResourcePrescription,
		Action:     constvars.MutationActionCreated,
		StatusCode: http.StatusCreated,
		Message:    constvars.CreatePrescriptionSuccessMessage,
		Mutate:     ctrl.PrescriptionClient.Create,
		ResourceID: func(_ *hms_dto.PrescriptionRequest, created *hms_dto.Prescription) int {
			if created == nil {
				return 0
			}
			return created.PrescriptionID
		},
	})
}

func (ctrl *PrescriptionController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(hms_dto.PrescriptionRequest)
	err = utils.DecodeAndValidateBody(r, request, utils.SanitizePrescriptionRequest)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	input := updateInput[hms_dto.PrescriptionRequest]{ID: id, Body: request}
	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, input, writeRoute[updateInput[hms_dto.PrescriptionRequest], *hms_dto.Prescription]{
		Name:       "prescriptions.Update",
		Resource:   constvars.ResourcePrescription,
		Action:     constvars.MutationActionUpdated,
		StatusCode: http.StatusOK,
		Message:    constvars.UpdatePrescriptionSuccessMessage,
		Mutate: func(ctx context.Context, input updateInput[hms_dto.PrescriptionRequest]) (*hms_dto.Prescription, error) {
			return ctrl.PrescriptionClient.Update(ctx, input.ID, input.Body)
		},
		ResourceID: func(input updateInput[hms_dto.PrescriptionRequest], _ *hms_dto.Prescription) int {
			return input.ID
		},
	})
}

func (ctrl *PrescriptionController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, id, writeRoute[int, interface{}]{
		Name:       "prescriptions.Delete",
		Resource:   constvars.ResourcePrescription,
		Action:     constvars.MutationActionDeleted,
		StatusCode: http.StatusOK,
		Message:    constvars.DeletePrescriptionSuccessMessage,
		Mutate:     deleteByID(ctrl.PrescriptionClient.Delete),
		ResourceID: inputID,
	})
}
