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

type DentalServiceController struct {
	Log                 *zap.Logger
	InternalConfig      *config.InternalConfig
	Recorder            contracts.MutationRecorder
	DentalServiceClient contracts.DentalServiceClient
}

func NewDentalServiceController(logger *zap.Logger, internalConfig *config.InternalConfig, recorder contracts.MutationRecorder, dentalServiceClient contracts.DentalServiceClient) *DentalServiceController {
	return &DentalServiceController{
		Log:                 logger,
		InternalConfig:      internalConfig,
		Recorder:            recorder,
		DentalServiceClient: dentalServiceClient,
	}
}

// FindAll narrows the list with the optional clinicId query param.
func (ctrl *DentalServiceController) FindAll(w http.ResponseWriter, r *http.Request) {
	clinicID, err := utils.ParseQueryInt(r, constvars.QueryParamClinicID, 0)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	fetch := ctrl.DentalServiceClient.FindAll
	if clinicID > 0 {
		fetch = func(ctx context.Context) ([]hms_dto.Service, error) {
			return ctrl.DentalServiceClient.FindByClinic(ctx, clinicID)
		}
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[[]hms_dto.Service]{
		Name:     "services.FindAll",
		Resource: constvars.ResourceService,
		Message:  constvars.GetServiceSuccessMessage,
		Fetch:    fetch,
	})
}

func (ctrl *DentalServiceController) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[*hms_dto.Service]{
		Name:     "services.FindByID",
		Resource: constvars.ResourceService,
		Message:  constvars.GetServiceSuccessMessage,
		Fetch: func(ctx context.Context) (*hms_dto.Service, error) {
			return ctrl.DentalServiceClient.FindByID(ctx, id)
		},
	})
}

func (ctrl *DentalServiceController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(hms_dto.ServiceRequest)
	err := utils.DecodeAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, request, writeRoute[*hms_dto.ServiceRequest, *hms_dto.Service]{
		Name:       "services.Create",
		Resource:   constvars.ResourceService,
		Action:     constvars.MutationActionCreated,
		StatusCode: http.StatusCreated,
		Message:    constvars.CreateServiceSuccessMessage,
		Mutate:     ctrl.DentalServiceClient.Create,
		ResourceID: func(_ *hms_dto.ServiceRequest, created *hms_dto.Service) int {
			if created == nil {
				return 0
			}
			return created.ServiceID
		},
	})
}

func (ctrl *DentalServiceController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(hms_dto.ServiceRequest)
	err = utils.DecodeAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	input := updateInput[hms_dto.ServiceRequest]{ID: id, Body: request}
	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, input, writeRoute[updateInput[hms_dto.ServiceRequest], *hms_dto.Service]{
		Name:       "services.Update",
		Resource:   constvars.ResourceService,
		Action:     constvars.MutationActionUpdated,
		StatusCode: http.StatusOK,
		Message:    constvars.UpdateServiceSuccessMessage,
		Mutate: func(ctx context.Context, input updateInput[hms_dto.ServiceRequest]) (*hms_dto.Service, error) {
			return ctrl.DentalServiceClient.Update(ctx, input.ID, input.Body)
		},
		ResourceID: func(input updateInput[hms_dto.ServiceRequest], _ *hms_dto.Service) int {
			return input.ID
		},
	})
}

func (ctrl *DentalServiceController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, id, writeRoute[int, interface{}]{
		Name:       "services.Delete",
		Resource:   constvars.ResourceService,
		Action:     constvars.MutationActionDeleted,
		StatusCode: http.StatusOK,
		Message:    constvars.DeleteServiceSuccessMessage,
		Mutate:     deleteByID(ctrl.DentalServiceClient.Delete),
		ResourceID: inputID,
	})
}
