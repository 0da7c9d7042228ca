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

// EnterpriseController is read-only: enterprises are administered in the backend.
type EnterpriseController struct {
	Log              *zap.Logger
	InternalConfig   *config.InternalConfig
	EnterpriseClient contracts.EnterpriseClient
}

func NewEnterpriseController(logger *zap.Logger, internalConfig *config.InternalConfig, enterpriseClient contracts.EnterpriseClient) *EnterpriseController {
	return &EnterpriseController{
		Log:              logger,
		InternalConfig:   internalConfig,
		EnterpriseClient: enterpriseClient,
	}
}

func (ctrl *EnterpriseController) FindAll(w http.ResponseWriter, r *http.Request) {
	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[[]hms_dto.Enterprise]{
		Name:     "enterprises.FindAll",
		Resource: constvars.ResourceEnterprise,
		Message:  constvars.GetEnterpriseSuccessMessage,
		Fetch:    ctrl.EnterpriseClient.FindAll,
	})
}

func (ctrl *EnterpriseController) FindByID(w http.ResponseWriter, r *http.Request) {
	enterpriseID, err := utils.ParseURLParamID(r, constvars.UrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[*hms_dto.Enterprise]{
		Name:     "enterprises.FindByID",
		Resource: constvars.ResourceEnterprise,
		Message:  constvars.GetEnterpriseSuccessMessage,
		Fetch: func(ctx context.Context) (*hms_dto.Enterprise, error) {
			return ctrl.EnterpriseClient.FindByID(ctx, enterpriseID)
		},
	})
}
