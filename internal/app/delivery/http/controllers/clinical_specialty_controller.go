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

type ClinicalSpecialtyController struct {
	Log                     *zap.Logger
	InternalConfig          *config.InternalConfig
	Recorder                contracts.MutationRecorder
	ClinicalSpecialtyClient contracts.ClinicalSpecialtyClient
}

func NewClinicalSpecialtyController(logger *zap.Logger, internalConfig *config.InternalConfig, recorder contracts.MutationRecorder, clinicalSpecialtyClient contracts.ClinicalSpecialtyClient) *ClinicalSpecialtyController {
	return &ClinicalSpecialtyController{
		Log:                     logger,
		InternalConfig:          internalConfig,
		Recorder:                recorder,
		ClinicalSpecialtyClient: clinicalSpecialtyClient,
	}
}

func (ctrl *ClinicalSpecialtyController) FindAll(w http.ResponseWriter, r *http.Request) {
	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[[]hms_dto.ClinicalSpecialty]{
		Name:     "clinicalSpecialties.FindAll",
		Resource: constvars.ResourceClinicalSpecialty,
		Message:  constvars.GetClinicalSpecialtySuccessMessage,
		Fetch:    ctrl.ClinicalSpecialtyClient.FindAll,
	})
}

func (ctrl *ClinicalSpecialtyController) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[*hms_dto.ClinicalSpecialty]{
		Name:     "clinicalSpecialties.FindByID",
		Resource: constvars.ResourceClinicalSpecialty,
		Message:  constvars.GetClinicalSpecialtySuccessMessage,
		Fetch: func(ctx context.Context) (*hms_dto.ClinicalSpecialty, error) {
			return ctrl.ClinicalSpecialtyClient.FindByID(ctx, id)
		},
	})
}

func (ctrl *ClinicalSpecialtyController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(hms_dto.ClinicalSpecialtyRequest)
	err := utils.DecodeAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, request, writeRoute[*hms_dto.ClinicalSpecialtyRequest, *hms_dto.ClinicalSpecialty]{
		Name:       "clinicalSpecialties.Create",
		Resource:   constvars.ResourceClinicalSpecialty,
		Action:     constvars.MutationActionCreated,
		StatusCode: http.StatusCreated,
		Message:    constvars.CreateClinicalSpecialtySuccessMessage,
		Mutate:     ctrl.ClinicalSpecialtyClient.Create,
		ResourceID: func(_ *hms_dto.ClinicalSpecialtyRequest, created *hms_dto.ClinicalSpecialty) int {
			if created == nil {
				return 0
			}
			return created.SpecialtyID
		},
	})
}

func (ctrl *ClinicalSpecialtyController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(hms_dto.ClinicalSpecialtyRequest)
	err = utils.DecodeAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	input := updateInput[hms_dto.ClinicalSpecialtyRequest]{ID: id, Body: request}
	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, input, writeRoute[updateInput[hms_dto.ClinicalSpecialtyRequest], *hms_dto.ClinicalSpecialty]{
		Name:       "clinicalSpecialties.Update",
		Resource:   constvars.ResourceClinicalSpecialty,
		Action:     constvars.MutationActionUpdated,
		StatusCode: http.StatusOK,
		Message:    constvars.UpdateClinicalSpecialtySuccessMessage,
		Mutate: func(ctx context.Context, input updateInput[hms_dto.ClinicalSpecialtyRequest]) (*hms_dto.ClinicalSpecialty, error) {
			return ctrl.ClinicalSpecialtyClient.Update(ctx, input.ID, input.Body)
		},
		ResourceID: func(input updateInput[hms_dto.ClinicalSpecialtyRequest], _ *hms_dto.ClinicalSpecialty) int {
			return input.ID
		},
	})
}

func (ctrl *ClinicalSpecialtyController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, id, writeRoute[int, interface{}]{
		Name:       "clinicalSpecialties.Delete",
		Resource:   constvars.ResourceClinicalSpecialty,
		Action:     constvars.MutationActionDeleted,
		StatusCode: http.StatusOK,
		Message:    constvars.DeleteClinicalSpecialtySuccessMessage,
		Mutate:     deleteByID(ctrl.ClinicalSpecialtyClient.Delete),
		ResourceID: inputID,
	})
}
