package enterprises

import (
	"context"
	"dental-hms/internal/app/services/hms/hmstest"
	"dental-hms/internal/pkg/hms_dto"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnterpriseClient_FindAll(t *testing.T) {
	server := hmstest.NewServer(t, http.StatusOK, `[{"enterpriseId":1,"enterpriseName":"Smile Group","isActive":true}]`)
	client := NewEnterpriseClient(server.HMSClient(), zap.NewNop())

	enterprises, err := client.FindAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []hms_dto.Enterprise{{EnterpriseID: 1, EnterpriseName: "Smile Group", IsActive: true}}, enterprises)
	assert.Equal(t, "/api/Enterprise", server.Last().Path)
}

func TestEnterpriseClient_FindByID(t *testing.T) {
	server := hmstest.NewServer(t, http.StatusOK, `{"enterpriseId":3,"enterpriseName":"North"}`)
	client := NewEnterpriseClient(server.HMSClient(), zap.NewNop())

	enterprise, err := client.FindByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 3, enterprise.EnterpriseID)
	assert.Equal(t, "/api/Enterprise/3", server.Last().Path)
}

func TestEnterpriseClient_NoContentIsAbsent(t *testing.T) {
	server := hmstest.NewServer(t, http.StatusNoContent, "")
	client := NewEnterpriseClient(server.HMSClient(), zap.NewNop())

	enterprise, err := client.FindByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Nil(t, enterprise)
}
