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

type StaffController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Recorder       contracts.MutationRecorder
	StaffClient    contracts.StaffClient
}

func NewStaffController(logger *zap.Logger, internalConfig *config.InternalConfig, recorder contracts.MutationRecorder, staffClient contracts.StaffClient) *StaffController {
	return &StaffController{
		Log:            logger,
		InternalConfig: internalConfig,
		Recorder:       recorder,
		StaffClient:    staffClient,
	}
}

// FindAll narrows the list with the optional clinicId query param.
func (ctrl *StaffController) FindAll(w http.ResponseWriter, r *http.Request) {
	clinicID, err := utils.ParseQueryInt(r, constvars.QueryParamClinicID, 0)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	fetch := ctrl.StaffClient.FindAll
	if clinicID > 0 {
		fetch = func(ctx context.Context) ([]hms_dto.Staff, error) {
			return ctrl.StaffClient.FindByClinic(ctx, clinicID)
		}
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[[]hms_dto.Staff]{
		Name:     "staff.FindAll",
		Resource: constvars.ResourceStaff,
		Message:  constvars.GetStaffSuccessMessage,
		Fetch:    fetch,
	})
}

func (ctrl *StaffController) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[*hms_dto.Staff]{
		Name:     "staff.FindByID",
		Resource: constvars.ResourceStaff,
		Message:  constvars.GetStaffSuccessMessage,
		Fetch: func(ctx context.Context) (*hms_dto.Staff, error) {
			return ctrl.StaffClient.FindByID(ctx, id)
		},
	})
}

func (ctrl *StaffController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(hms_dto.StaffRequest)
	err := utils.DecodeAndValidateBody(r, request, utils.SanitizeStaffRequest)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, request, writeRoute[*hms_dto.StaffRequest, *hms_dto.Staff]{
		Name:       "staff.Create",
		Resource:   constvars.ResourceStaff,
		Action:     constvars.MutationActionCreated,
		StatusCode: http.StatusCreated,
		Message:    constvars.CreateStaffSuccessMessage,
		Mutate:     ctrl.StaffClient.Create,
		ResourceID: func(_ *hms_dto.StaffRequest, created *hms_dto.Staff) int {
			if created == nil {
				return 0
			}
			return created.StaffID
		},
	})
}

func (ctrl *StaffController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(hms_dto.StaffRequest)
	err = utils.DecodeAndValidateBody(r, request, utils.SanitizeStaffRequest)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	input := updateInput[hms_dto.StaffRequest]{ID: id, Body: request}
	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, input, writeRoute[updateInput[hms_dto.StaffRequest], *hms_dto.Staff]{
		Name:       "staff.Update",
		Resource:   constvars.ResourceStaff,
		Action:     constvars.MutationActionUpdated,
		StatusCode: http.StatusOK,
		Message:    constvars.UpdateStaffSuccessMessage,
		Mutate: func(ctx context.Context, input updateInput[hms_dto.StaffRequest]) (*hms_dto.Staff, error) {
			return ctrl.StaffClient.Update(ctx, input.ID, input.Body)
		},
		ResourceID: func(input updateInput[hms_dto.StaffRequest], _ *hms_dto.Staff) int {
			return input.ID
		},
	})
}

func (ctrl *StaffController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, id, writeRoute[int, interface{}]{
		Name:       "staff.Delete",
		Resource:   constvars.ResourceStaff,
		Action:     constvars.MutationActionDeleted,
		StatusCode: http.StatusOK,
		Message:    constvars.DeleteStaffSuccessMessage,
		Mutate:     deleteByID(ctrl.StaffClient.Delete),
		ResourceID: inputID,
	})
}
