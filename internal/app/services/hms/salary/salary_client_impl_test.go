package salary

import (
	"context"
	"dental-hms/internal/app/services/hms/hmstest"
	"dental-hms/internal/pkg/hms_dto"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSalaryClient_Calculate(t *testing.T) {
	server := hmstest.NewServer(t, http.StatusOK, `{"calculationId":30,"staffId":4,"month":2,"year":2024,"netSalary":2150.5,"status":"Draft"}`)
	client := NewSalaryClient(server.HMSClient(), zap.NewNop())

	calculation, err := client.Calculate(context.Background(), 4, hms_dto.SalaryPeriod{Month: 2, Year: 2024})

	require.NoError(t, err)
	assert.Equal(t, 30, calculation.CalculationID)
	assert.Equal(t, 2150.5, calculation.NetSalary)
	assert.Equal(t, hms_dto.SalaryStatusDraft, calculation.Status)

	last := server.Last()
	assert.Equal(t, http.MethodGet, last.Method)
	assert.Equal(t, "/api/salary/calculate/4", last.Path)
	assert.Equal(t, "month=2&year=2024", last.RawQuery)
}

func TestSalaryClient_CalculateBatch(t *testing.T) {
	server := hmstest.NewServer(t, http.StatusOK, `[{"calculationId":1,"staffId":4},{"calculationId":2,"staffId":5}]`)
	client := NewSalaryClient(server.HMSClient(), zap.NewNop())

	calculations, err := client.CalculateBatch(context.Background(), &hms_dto.SalaryBatchRequest{ClinicID: 2, Month: 2, Year: 2024})

	require.NoError(t, err)
	assert.Len(t, calculations, 2)

	last := server.Last()
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/api/salary/calculate", last.Path)

	var sent hms_dto.SalaryBatchRequest
	require.NoError(t, json.Unmarshal(last.Body, &sent))
	assert.Equal(t, hms_dto.SalaryBatchRequest{ClinicID: 2, Month: 2, Year: 2024}, sent)
}

func TestSalaryClient_CalculateBatchNoContent(t *testing.T) {
	server := hmstest.NewServer(t, http.StatusNoContent, "")
	client := NewSalaryClient(server.HMSClient(), zap.NewNop())

	calculations, err := client.CalculateBatch(context.Background(), &hms_dto.SalaryBatchRequest{ClinicID: 2, Month: 2, Year: 2024})

	require.NoError(t, err)
	assert.Equal(t, []hms_dto.SalaryCalculation{}, calculations)
}

func TestSalaryClient_HistoryAndApprove(t *testing.T) {
	server := hmstest.NewServer(t, http.StatusOK, `[]`)
	client := NewSalaryClient(server.HMSClient(), zap.NewNop())
	ctx := context.Background()

	history, err := client.FindHistory(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.Equal(t, "/api/salary/history/4", server.Last().Path)

	server.Respond(http.StatusOK, `{"calculationId":30,"status":"Approved"}`)
	approved, err := client.Approve(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, hms_dto.SalaryStatusApproved, approved.Status)

	last := server.Last()
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/api/salary/30/approve", last.Path)
	assert.Empty(t, last.Body)
}
