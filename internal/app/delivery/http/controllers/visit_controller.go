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

type VisitController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Recorder       contracts.MutationRecorder
	VisitClient    contracts.VisitClient
}

func NewVisitController(logger *zap.Logger, internalConfig *config.InternalConfig, recorder contracts.MutationRecorder, visitClient contracts.VisitClient) *VisitController {
	return &VisitController{
		Log:            logger,
		InternalConfig: internalConfig,
		Recorder:       recorder,
		VisitClient:    visitClient,
	}
}

// FindAll narrows the list with the optional patientId query param.
func (ctrl *VisitController) FindAll(w http.ResponseWriter, r *http.Request) {
	patientID, err := utils.ParseQueryInt(r, constvars.QueryParamPatientID, 0)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	fetch := ctrl.VisitClient.FindAll
	if patientID > 0 {
		fetch = func(ctx context.Context) ([]hms_dto.Visit, error) {
			return ctrl.VisitClient.FindByPatient(ctx, patientID)
		}
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[[]hms_dto.Visit]{
		Name:     "visits.FindAll",
		Resource: constvars.ResourceVisit,
		Message:  constvars.GetVisitSuccessMessage,
		Fetch:    fetch,
	})
}

func (ctrl *VisitController) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[*hms_dto.Visit]{
		Name:     "visits.FindByID",
		Resource: constvars.ResourceVisit,
		Message:  constvars.GetVisitSuccessMessage,
		Fetch: func(ctx context.Context) (*hms_dto.Visit, error) {
			return ctrl.VisitClient.FindByID(ctx, id)
		},
	})
}

func (ctrl *VisitController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(hms_dto.VisitRequest)
	err := utils.DecodeAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, request, writeRoute[*hms_dto.VisitRequest, *hms_dto.Visit]{
		Name:       "visits.Create",
		Resource:   constvars.ResourceVisit,
		Action:     constvars.MutationActionCreated,
		StatusCode: http.StatusCreated,
		Message:    constvars.CreateVisitSuccessMessage,
		Mutate:     ctrl.VisitClient.Create,
		ResourceID: func(_ *hms_dto.VisitRequest, created *hms_dto.Visit) int {
			if created == nil {
				return 0
			}
			return created.VisitID
		},
	})
}

func (ctrl *VisitController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(hms_dto.VisitRequest)
	err = utils.DecodeAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	input := updateInput[hms_dto.VisitRequest]{ID: id, Body: request}
	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, input, writeRoute[updateInput[hms_dto.VisitRequest], *hms_dto.Visit]{
		Name:       "visits.Update",
		Resource:   constvars.ResourceVisit,
		Action:     constvars.MutationActionUpdated,
		StatusCode: http.StatusOK,
		Message:    constvars.UpdateVisitSuccessMessage,
		Mutate: func(ctx context.Context, input updateInput[hms_dto.VisitRequest]) (*hms_dto.Visit, error) {
			return ctrl.VisitClient.Update(ctx, input.ID, input.Body)
		},
		ResourceID: func(input updateInput[hms_dto.VisitRequest], _ *hms_dto.Visit) int {
			return input.ID
		},
	})
}

func (ctrl *VisitController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, id, writeRoute[int, interface{}]{
		Name:       "visits.Delete",
		Resource:   constvars.ResourceVisit,
		Action:     constvars.MutationActionDeleted,
		StatusCode: http.StatusOK,
		Message:    constvars.DeleteVisitSuccessMessage,
		Mutate:     deleteByID(ctrl.VisitClient.Delete),
		ResourceID: inputID,
	})
}
