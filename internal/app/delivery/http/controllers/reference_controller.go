package controllers

import (
	"context"
	"dental-hms/internal/app/contracts"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/exceptions"
	"dental-hms/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ReferenceController exposes the long-lived reference lists (roles, specialties,
// enterprises and clinics) as one snapshot, the way form dropdowns consume them.
type ReferenceController struct {
	Log            *zap.Logger
	ReferenceStore contracts.ReferenceStore
}

func NewReferenceController(logger *zap.Logger, referenceStore contracts.ReferenceStore) *ReferenceController {
	return &ReferenceController{
		Log:            logger,
		ReferenceStore: referenceStore,
	}
}

func (ctrl *ReferenceController) Snapshot(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReferenceSuccessMessage, ctrl.ReferenceStore.Snapshot())
}

// Refresh reruns one list when the resource query param is set, all of them
// otherwise. The reruns happen in the background.
func (ctrl *ReferenceController) Refresh(w http.ResponseWriter, r *http.Request) {
	resource := strings.TrimSpace(r.URL.Query().Get(constvars.QueryParamResource))

	var resources []string
	if resource != "" {
		if !ctrl.ReferenceStore.Tracks(resource) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnknownReferenceResource(resource))
			return
		}
		resources = append(resources, resource)
	}

	ctrl.ReferenceStore.Refresh(context.WithoutCancel(r.Context()), resources...)
	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.RefreshReferenceSuccessMessage, nil)
}
