package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/akshatcoder-hash/lifi-lens/internal/http/httputil"
	"github.com/akshatcoder-hash/lifi-lens/internal/lifi"
)

type StatusHandler struct {
	lifiSvc *lifi.Service
}

func NewStatusHandler(lifiSvc *lifi.Service) *StatusHandler {
	return &StatusHandler{lifiSvc: lifiSvc}
}

func (h *StatusHandler) SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.GET("", h.getStatus)
}

func (h *StatusHandler) Root() string {
	return "/status"
}

// StatusRequest identifies the transaction to look up.
type StatusRequest struct {
	// Source-chain transaction hash (0x-prefixed, 32 bytes hex)
	TxHash string `form:"txHash" binding:"required" example:"0x4f62cd4b5d9b0ea5f6b4e3a2c1d0f9e8b7a6958473625140f9e8d7c6b5a49382"`
}

// @Summary Get cross-chain transaction status
// @Description Proxies the upstream status endpoint. Terminal statuses (DONE/FAILED) are
// @Description served from cache since they can no longer change.
// @Tags status
// @Produce json
// @Param txHash query string true "Source-chain transaction hash" example("0x4f62cd4b...")
// @Success 200 {object} domain.TransactionStatus "Transaction status"
// @Failure 400 {object} map[string]string "Invalid transaction hash"
// @Failure 404 {object} map[string]string "Unknown transaction"
// @Failure 503 {object} map[string]string "Upstream unavailable"
// @Router /api/v1/status [get]
func (h *StatusHandler) getStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}
	if !txHashPattern.MatchString(req.TxHash) {
		httputil.BadRequest(c, "invalid txHash: must be a 0x-prefixed 32-byte hex string")
		return
	}

	status, err := h.lifiSvc.GetStatus(c.Request.Context(), req.TxHash)
	if err != nil {
		if errors.Is(err, lifi.ErrStatusNotFound) {
			httputil.NotFound(c, "transaction not found")
			return
		}
		httputil.Unavailable(c, "status lookup failed: "+err.Error())
		return
	}

	httputil.Success(c, status)
}
