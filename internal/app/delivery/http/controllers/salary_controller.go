package controllers

import (
	"context"
	"dental-hms/internal/app/config"
	"dental-hms/internal/app/contracts"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/exceptions"
	"dental-hms/internal/pkg/hms_dto"
	"dental-hms/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type SalaryController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Recorder       contracts.MutationRecorder
	SalaryClient   contracts.SalaryClient
	Locker         contracts.LockerService
	now            func() time.Time
}

func NewSalaryController(logger *zap.Logger, internalConfig *config.InternalConfig, recorder contracts.MutationRecorder, salaryClient contracts.SalaryClient, locker contracts.LockerService) *SalaryController {
	return &SalaryController{
		Log:            logger,
		InternalConfig: internalConfig,
		Recorder:       recorder,
		SalaryClient:   salaryClient,
		Locker:         locker,
		now:            time.Now,
	}
}

// Calculate previews the salary of one staff member. Month and year default to
// the current period.
func (ctrl *SalaryController) Calculate(w http.ResponseWriter, r *http.Request) {
	staffID, err := utils.ParseURLParamID(r, constvars.UrlParamStaffID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	period, err := ctrl.parsePeriod(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[*hms_dto.SalaryCalculation]{
		Name:     "salary.Calculate",
		Resource: constvars.ResourceSalary,
		Message:  constvars.CalculateSalarySuccessMessage,
		Fetch: func(ctx context.Context) (*hms_dto.SalaryCalculation, error) {
			return ctrl.SalaryClient.Calculate(ctx, staffID, period)
		},
	})
}

func (ctrl *SalaryController) CalculateBatch(w http.ResponseWriter, r *http.Request) {
	request := new(hms_dto.SalaryBatchRequest)
	err := utils.DecodeAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, request, writeRoute[*hms_dto.SalaryBatchRequest, []hms_dto.SalaryCalculation]{
		Name:       "salary.CalculateBatch",
		Resource:   constvars.ResourceSalary,
		Action:     constvars.MutationActionComputed,
		StatusCode: http.StatusCreated,
		Message:    constvars.CalculateSalarySuccessMessage,
		Mutate:     ctrl.SalaryClient.CalculateBatch,
	})
}

func (ctrl *SalaryController) History(w http.ResponseWriter, r *http.Request) {
	staffID, err := utils.ParseURLParamID(r, constvars.UrlParamStaffID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	serveRead(ctrl.Log, ctrl.InternalConfig, w, r, readRoute[[]hms_dto.SalaryCalculation]{
		Name:     "salary.History",
		Resource: constvars.ResourceSalary,
		Message:  constvars.GetSalarySuccessMessage,
		Fetch: func(ctx context.Context) ([]hms_dto.SalaryCalculation, error) {
			return ctrl.SalaryClient.FindHistory(ctx, staffID)
		},
	})
}

// Approve holds a per-calculation lock for the duration of the backend call, so
// two replicas never approve the same calculation at once.
func (ctrl *SalaryController) Approve(w http.ResponseWriter, r *http.Request) {
	calculationID, err := utils.ParseURLParamID(r, constvars.UrlParamCalculationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	lockKey := constvars.SalaryApprovalLockPrefix + strconv.Itoa(calculationID)
	acquired, lockValue, err := ctrl.Locker.TryLock(r.Context(), lockKey, constvars.SalaryApprovalLockTTL)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if !acquired {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSalaryApprovalInProgress(calculationID))
		return
	}
	defer func() {
		// the lock expires on its own, a failed release only delays the next approval
		_ = ctrl.Locker.Unlock(context.WithoutCancel(r.Context()), lockKey, lockValue)
	}()

	serveWrite(ctrl.Log, ctrl.InternalConfig, ctrl.Recorder, w, r, calculationID, writeRoute[int, *hms_dto.SalaryCalculation]{
		Name:       "salary.Approve",
		Resource:   constvars.ResourceSalary,
		Action:     constvars.MutationActionApproved,
		StatusCode: http.StatusOK,
		Message:    constvars.ApproveSalarySuccessMessage,
		Mutate:     ctrl.SalaryClient.Approve,
		ResourceID: func(id int, _ *hms_dto.SalaryCalculation) int {
			return id
		},
	})
}

func (ctrl *SalaryController) parsePeriod(r *http.Request) (hms_dto.SalaryPeriod, error) {
	now := ctrl.now()
	month, err := utils.ParseQueryInt(r, constvars.QueryParamMonth, int(now.Month()))
	if err != nil {
		return hms_dto.SalaryPeriod{}, err
	}
	year, err := utils.ParseQueryInt(r, constvars.QueryParamYear, now.Year())
	if err != nil {
		return hms_dto.SalaryPeriod{}, err
	}

	period := hms_dto.SalaryPeriod{Month: month, Year: year}
	if err := utils.ValidateStruct(period); err != nil {
		return hms_dto.SalaryPeriod{}, exceptions.ErrSalaryPeriodOutOfRange(month, year)
	}
	return period, nil
}
