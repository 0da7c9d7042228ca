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

type DoctorProfileController struct {
	Log                 *zap.Logger
	InternalConfig      *config.InternalConfig
	Recorder            contracts.MutationRecorder
	DoctorProfileClient contracts.DoctorProfileClient
}

func NewDoctorProfileController(logger *zap.Logger, internalConfig *config.InternalConfig, recorder contracts.MutationRecorder, doctorProfileClient contracts.DoctorProfileClient) *DoctorProfileController {
	return &DoctorProfileController{
		Log:                 logger,
		InternalConfig:      internalConfig,
		Recorder:            recorder,
		DoctorProfileClient: doctorProfileClient,
	}
}

func (ctrl *DoctorProfileController) FindAll(w http.ResponseWriter, r *http.Request) {
	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[[]hms_dto.DoctorProfile]{
		Name:     "doctorProfiles.FindAll",
		Resource: constvars.ResourceDoctorProfile,
		Message:  constvars.GetDoctorProfileSuccessMessage,
		Fetch:    ctrl.DoctorProfileClient.FindAll,
	})
}

func (ctrl *DoctorProfileController) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[*hms_dto.DoctorProfile]{
		Name:     "doctorProfiles.FindByID",
		Resource: constvars.ResourceDoctorProfile,
		Message:  constvars.GetDoctorProfileSuccessMessage,
		Fetch: func(ctx context.Context) (*hms_dto.DoctorProfile, error) {
			return ctrl.DoctorProfileClient.FindByID(ctx, id)
		},
	})
}

func (ctrl *DoctorProfileController) FindByStaff(w http.ResponseWriter, r *http.Request) {
	staffID, err := utils.ParseURLParamID(r, constvars.UrlParamStaffID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[*hms_dto.DoctorProfile]{
		Name:     "doctorProfiles.FindByStaff",
		Resource: constvars.ResourceDoctorProfile,
		Message:  constvars.GetDoctorProfileSuccessMessage,
		Fetch: func(ctx context.Context) (*hms_dto.DoctorProfile, error) {
			return ctrl.DoctorProfileClient.FindByStaff(ctx, staffID)
		},
	})
}

func (ctrl *DoctorProfileController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(hms_dto.DoctorProfileRequest)
	err := utils.DecodeAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, request, writeRoute[*hms_dto.DoctorProfileRequest, *hms_dto.DoctorProfile]{
		Name:       "doctorProfiles.Create",
		Resource:   constvars.ResourceDoctorProfile,
		Action:     constvars.MutationActionCreated,
		StatusCode: http.StatusCreated,
		Message:    constvars.CreateDoctorProfileSuccessMessage,
		Mutate:     ctrl.DoctorProfileClient.Create,
		ResourceID: func(_ *hms_dto.DoctorProfileRequest, created *hms_dto.DoctorProfile) int {
			if created == nil {
				return 0
			}
			return created.DoctorProfileID
		},
	})
}

func (ctrl *DoctorProfileController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(hms_dto.DoctorProfileRequest)
	err = utils.DecodeAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	input := updateInput[hms_dto.DoctorProfileRequest]{ID: id, Body: request}
	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, input, writeRoute[updateInput[hms_dto.DoctorProfileRequest], *hms_dto.DoctorProfile]{
		Name:       "doctorProfiles.Update",
		Resource:   constvars.ResourceDoctorProfile,
		Action:     constvars.MutationActionUpdated,
		StatusCode: http.StatusOK,
		Message:    constvars.UpdateDoctorProfileSuccessMessage,
		Mutate: func(ctx context.Context, input updateInput[hms_dto.DoctorProfileRequest]) (*hms_dto.DoctorProfile, error) {
			return ctrl.DoctorProfileClient.Update(ctx, input.ID, input.Body)
		},
		ResourceID: func(input updateInput[hms_dto.DoctorProfileRequest], _ *hms_dto.DoctorProfile) int {
			return input.ID
		},
	})
}

func (ctrl *DoctorProfileController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, id, writeRoute[int, interface{}]{
		Name:       "doctorProfiles.Delete",
		Resource:   constvars.ResourceDoctorProfile,
		Action:     constvars.MutationActionDeleted,
		StatusCode: http.StatusOK,
		Message:    constvars.DeleteDoctorProfileSuccessMessage,
		Mutate:     deleteByID(ctrl.DoctorProfileClient.Delete),
		ResourceID: inputID,
	})
}
