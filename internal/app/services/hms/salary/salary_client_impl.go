package salary

import (
	"context"
	"dental-hms/internal/app/contracts"
	"dental-hms/internal/app/services/hms/httpcall"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/hms_dto"
	"dental-hms/internal/pkg/utils"
	"fmt"

	"go.uber.org/zap"
)

type salaryClient struct {
	Client *httpcall.Client
	Log    *zap.Logger
}

func NewSalaryClient(client *httpcall.Client, logger *zap.Logger) contracts.SalaryClient {
	return &salaryClient{
		Client: client,
		Log:    logger,
	}
}

// Calculate asks the backend to compute (or recompute) one staff member's salary for
// a month. The result stays a draft until approved.
func (c *salaryClient) Calculate(ctx context.Context, staffID int, period hms_dto.SalaryPeriod) (*hms_dto.SalaryCalculation, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("salaryClient.Calculate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, staffID),
		zap.Int(constvars.QueryParamMonth, period.Month),
		zap.Int(constvars.QueryParamYear, period.Year),
	)

	path := fmt.Sprintf("%s/calculate/%d?month=%d&year=%d", constvars.EndpointSalary, staffID, period.Month, period.Year)
	return httpcall.Get[hms_dto.SalaryCalculation](ctx, c.Client, path)
}

func (c *salaryClient) CalculateBatch(ctx context.Context, request *hms_dto.SalaryBatchRequest) ([]hms_dto.SalaryCalculation, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("salaryClient.CalculateBatch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.QueryParamClinicID, request.ClinicID),
	)

	path := fmt.Sprintf("%s/calculate", constvars.EndpointSalary)
	calculations, err := httpcall.Post[[]hms_dto.SalaryCalculation](ctx, c.Client, path, request)
	if err != nil {
		return nil, err
	}
	if calculations == nil || *calculations == nil {
		return []hms_dto.SalaryCalculation{}, nil
	}

	c.Log.Info("salaryClient.CalculateBatch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(*calculations)),
	)
	return *calculations, nil
}

func (c *salaryClient) FindHistory(ctx context.Context, staffID int) ([]hms_dto.SalaryCalculation, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("salaryClient.FindHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, staffID),
	)

	path := fmt.Sprintf("%s/history/%d", constvars.EndpointSalary, staffID)
	return httpcall.List[hms_dto.SalaryCalculation](ctx, c.Client, path)
}

func (c *salaryClient) Approve(ctx context.Context, calculationID int) (*hms_dto.SalaryCalculation, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("salaryClient.Approve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, calculationID),
	)

	path := fmt.Sprintf("%s/%d/approve", constvars.EndpointSalary, calculationID)
	return httpcall.Post[hms_dto.SalaryCalculation](ctx, c.Client, path, nil)
}
