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

type RoleController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Recorder       contracts.MutationRecorder
	RoleClient     contracts.RoleClient
}

func NewRoleController(logger *zap.Logger, internalConfig *config.InternalConfig, recorder contracts.MutationRecorder, roleClient contracts.RoleClient) *RoleController {
	return &RoleController{
		Log:            logger,
		InternalConfig: internalConfig,
		Recorder:       recorder,
		RoleClient:     roleClient,
	}
}

func (ctrl *RoleController) FindAll(w http.ResponseWriter, r *http.Request) {
	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[[]hms_dto.Role]{
		Name:     "roles.FindAll",
		Resource: constvars.ResourceRole,
		Message:  constvars.GetRoleSuccessMessage,
		Fetch:    ctrl.RoleClient.FindAll,
	})
}

func (ctrl *RoleController) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[*hms_dto.Role]{
		Name:     "roles.FindByID",
		Resource: constvars.ResourceRole,
		Message:  constvars.GetRoleSuccessMessage,
		Fetch: func(ctx context.Context) (*hms_dto.Role, error) {
			return ctrl.RoleClient.FindByID(ctx, id)
		},
	})
}

func (ctrl *RoleController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(hms_dto.RoleRequest)
	err := utils.DecodeAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, request, writeRoute[*hms_dto.RoleRequest, *hms_dto.Role]{
		Name:       "roles.Create",
		Resource:   constvars.ResourceRole,
		Action:     constvars.MutationActionCreated,
		StatusCode: http.StatusCreated,
		Message:    constvars.CreateRoleSuccessMessage,
		Mutate:     ctrl.RoleClient.Create,
		ResourceID: func(_ *hms_dto.RoleRequest, created *hms_dto.Role) int {
			if created == nil {
				return 0
			}
			return created.RoleID
		},
	})
}

func (ctrl *RoleController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(hms_dto.RoleRequest)
	err = utils.DecodeAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	input := updateInput[hms_dto.RoleRequest]{ID: id, Body: request}
	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, input, writeRoute[updateInput[hms_dto.RoleRequest], *hms_dto.Role]{
		Name:       "roles.Update",
		Resource:   constvars.ResourceRole,
		Action:     constvars.MutationActionUpdated,
		StatusCode: http.StatusOK,
		Message:    constvars.UpdateRoleSuccessMessage,
		Mutate: func(ctx context.Context, input updateInput[hms_dto.RoleRequest]) (*hms_dto.Role, error) {
			return ctrl.RoleClient.Update(ctx, input.ID, input.Body)
		},
		ResourceID: func(input updateInput[hms_dto.RoleRequest], _ *hms_dto.Role) int {
			return input.ID
		},
	})
}

func (ctrl *RoleController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, id, writeRoute[int, interface{}]{
		Name:       "roles.Delete",
		Resource:   constvars.ResourceRole,
		Action:     constvars.MutationActionDeleted,
		StatusCode: http.StatusOK,
		Message:    constvars.DeleteRoleSuccessMessage,
		Mutate:     deleteByID(ctrl.RoleClient.Delete),
		ResourceID: inputID,
	})
}
