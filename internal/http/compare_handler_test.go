package http

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshatcoder-hash/lifi-lens/internal/analysis"
	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
	"github.com/akshatcoder-hash/lifi-lens/internal/http/httputil"
	"github.com/akshatcoder-hash/lifi-lens/internal/lifi"
)

const validTxHash = "0x4f62cd4b5d9b0ea5f6b4e3a2c1d0f9e8b7a6958473625140f9e8d7c6b5a49382"

type stubRouteClient struct {
	status    *domain.TransactionStatus
	statusErr error
	routes    []*domain.Route
	routesErr error
}

func (s *stubRouteClient) GetStatus(context.Context, string) (*domain.TransactionStatus, error) {
	return s.status, s.statusErr
}

func (s *stubRouteClient) GetRoutes(context.Context, lifi.RouteRequest) ([]*domain.Route, error) {
	return s.routes, s.routesErr
}

func compareRouter(client analysis.RouteClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCompareHandler(analysis.NewService(client, analysis.DefaultTables()))
	h.SetRoutes(r.Group(h.Root()), nil, nil)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) (int, httputil.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)

	var resp httputil.Response
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func failedStatus() *domain.TransactionStatus {
	return &domain.TransactionStatus{
		Status:    domain.StatusFailed,
		Substatus: domain.SubstatusSlippageExceeded,
		Sending: &domain.TransferLeg{
			ChainID: 1,
			Amount:  "1000000",
			Token:   &domain.Token{Address: "0xusdc-mainnet", ChainID: 1},
		},
		Receiving: &domain.TransferLeg{
			ChainID: 137,
			Token:   &domain.Token{Address: "0xusdc-polygon", ChainID: 137},
		},
	}
}

func TestCompareHandlerValidation(t *testing.T) {
	r := compareRouter(&stubRouteClient{})

	tests := []struct {
		name string
		path string
	}{
		{"missing txHash", "/compare"},
		{"empty txHash", "/compare?txHash="},
		{"no 0x prefix", "/compare?txHash=4f62cd4b5d9b0ea5f6b4e3a2c1d0f9e8b7a6958473625140f9e8d7c6b5a49382"},
		{"too short", "/compare?txHash=0x1234"},
		{"non-hex characters", "/compare?txHash=0xZZ62cd4b5d9b0ea5f6b4e3a2c1d0f9e8b7a6958473625140f9e8d7c6b5a49382"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := doGet(t, r, tt.path)
			assert.Equal(t, 400, code)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestCompareHandlerOutcomes(t *testing.T) {
	t.Run("comparison returned", func(t *testing.T) {
		r := compareRouter(&stubRouteClient{status: failedStatus()})

		code, resp := doGet(t, r, "/compare?txHash="+validTxHash)
		assert.Equal(t, 200, code)
		assert.True(t, resp.Success)

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, data["available"])
		assert.NotNil(t, data["comparison"])
	})

	t.Run("insufficient data reads as unavailable comparison, not an error", func(t *testing.T) {
		status := failedStatus()
		status.Receiving = nil
		r := compareRouter(&stubRouteClient{status: status})

		code, resp := doGet(t, r, "/compare?txHash="+validTxHash)
		assert.Equal(t, 200, code)
		assert.True(t, resp.Success)

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, false, data["available"])
		assert.NotEmpty(t, data["reason"])
	})

	t.Run("unknown transaction is a 404", func(t *testing.T) {
		r := compareRouter(&stubRouteClient{statusErr: lifi.ErrStatusNotFound})

		code, resp := doGet(t, r, "/compare?txHash="+validTxHash)
		assert.Equal(t, 404, code)
		assert.False(t, resp.Success)
	})

	t.Run("unexpected failure is a 503", func(t *testing.T) {
		r := compareRouter(&stubRouteClient{statusErr: errors.New("upstream exploded")})

		code, resp := doGet(t, r, "/compare?txHash="+validTxHash)
		assert.Equal(t, 503, code)
		assert.Equal(t, "route analysis is temporarily unavailable", resp.Error)
	})
}
