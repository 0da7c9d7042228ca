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

type ClinicController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Recorder       contracts.MutationRecorder
	ClinicClient   contracts.ClinicClient
}

func NewClinicController(logger *zap.Logger, internalConfig *config.InternalConfig, recorder contracts.MutationRecorder, clinicClient contracts.ClinicClient) *ClinicController {
	return &ClinicController{
		Log:            logger,
		InternalConfig: internalConfig,
		Recorder:       recorder,
		ClinicClient:   clinicClient,
	}
}

// FindAll lists every clinic, or the clinics of one enterprise when the
// enterpriseId query param is set.
func (ctrl *ClinicController) FindAll(w http.ResponseWriter, r *http.Request) {
	enterpriseID, err := utils.ParseQueryInt(r, constvars.QueryParamEnterpriseID, 0)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	fetch := ctrl.ClinicClient.FindAll
	if enterpriseID > 0 {
		fetch = func(ctx context.Context) ([]hms_dto.Clinic, error) {
			return ctrl.ClinicClient.FindByEnterprise(ctx, enterpriseID)
		}
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[[]hms_dto.Clinic]{
		Name:     "clinics.FindAll",
		Resource: constvars.ResourceClinic,
		Message:  constvars.GetClinicSuccessMessage,
		Fetch:    fetch,
	})
}

func (ctrl *ClinicController) FindByID(w http.ResponseWriter, r *http.Request) {
	clinicID, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[*hms_dto.Clinic]{
		Name:     "clinics.FindByID",
		Resource: constvars.ResourceClinic,
		Message:  constvars.GetClinicSuccessMessage,
		Fetch: func(ctx context.Context) (*hms_dto.Clinic, error) {
			return ctrl.ClinicClient.FindByID(ctx, clinicID)
		},
	})
}

// Create needs the owning enterprise in the enterpriseId query param, the same
// way the backend's CreateClinic action takes it.
func (ctrl *ClinicController) Create(w http.ResponseWriter, r *http.Request) {
	enterpriseID, err := utils.ParseRequiredQueryID(r, constvars.QueryParamEnterpriseID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(hms_dto.ClinicRequest)
	err = utils.DecodeAndValidateBody(r, request, utils.SanitizeClinicRequest)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, request, writeRoute[*hms_dto.ClinicRequest, *hms_dto.Clinic]{
		Name:       "clinics.Create",
		Resource:   constvars.ResourceClinic,
		Action:     constvars.MutationActionCreated,
		StatusCode: http.StatusCreated,
		Message:    constvars.CreateClinicSuccessMessage,
		Mutate: func(ctx context.Context, request *hms_dto.ClinicRequest) (*hms_dto.Clinic, error) {
			return ctrl.ClinicClient.Create(ctx, enterpriseID, request)
		},
		ResourceID: func(_ *hms_dto.ClinicRequest, created *hms_dto.Clinic) int {
			if created == nil {
				return 0
			}
			return created.ClinicID
		},
	})
}

func (ctrl *ClinicController) Update(w http.ResponseWriter, r *http.Request) {
	clinicID, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(hms_dto.ClinicRequest)
	err = utils.DecodeAndValidateBody(r, request, utils.SanitizeClinicRequest)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	input := updateInput[hms_dto.ClinicRequest]{ID: clinicID, Body: request}
	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, input, writeRoute[updateInput[hms_dto.ClinicRequest], *hms_dto.Clinic]{
		Name:       "clinics.Update",
		Resource:   constvars.ResourceClinic,
		Action:     constvars.MutationActionUpdated,
		StatusCode: http.StatusOK,
		Message:    constvars.UpdateClinicSuccessMessage,
		Mutate: func(ctx context.Context, input updateInput[hms_dto.ClinicRequest]) (*hms_dto.Clinic, error) {
			return ctrl.ClinicClient.Update(ctx, input.ID, input.Body)
		},
		ResourceID: func(input updateInput[hms_dto.ClinicRequest], _ *hms_dto.Clinic) int {
			return input.ID
		},
	})
}

func (ctrl *ClinicController) Delete(w http.ResponseWriter, r *http.Request) {
	clinicID, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, clinicID, writeRoute[int, interface{}]{
		Name:       "clinics.Delete",
		Resource:   constvars.ResourceClinic,
		Action:     constvars.MutationActionDeleted,
		StatusCode: http.StatusOK,
		Message:    constvars.DeleteClinicSuccessMessage,
		Mutate:     deleteByID(ctrl.ClinicClient.Delete),
		ResourceID: inputID,
	})
}
