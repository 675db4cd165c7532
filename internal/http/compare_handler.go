package http

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/akshatcoder-hash/lifi-lens/internal/analysis"
	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
	"github.com/akshatcoder-hash/lifi-lens/internal/http/httputil"
	"github.com/akshatcoder-hash/lifi-lens/internal/lifi"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

type CompareHandler struct {
	analysisSvc *analysis.Service
}

func NewCompareHandler(analysisSvc *analysis.Service) *CompareHandler {
	return &CompareHandler{analysisSvc: analysisSvc}
}

func (h *CompareHandler) SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.GET("", h.getComparison)
}

func (h *CompareHandler) Root() string {
	return "/compare"
}

// CompareRequest identifies the failed transaction to analyze.
type CompareRequest struct {
	// Source-chain transaction hash (0x-prefixed, 32 bytes hex)
	TxHash string `form:"txHash" binding:"required" example:"0x4f62cd4b5d9b0ea5f6b4e3a2c1d0f9e8b7a6958473625140f9e8d7c6b5a49382"`
}

// CompareResponse wraps the comparison result with an availability flag so
// the caller can tell "no comparison possible" apart from an empty result.
type CompareResponse struct {
	// Available is false when the transaction's data could not determine
	// both legs of a route; no comparison was attempted.
	Available bool `json:"available"`

	// Reason explains an unavailable comparison.
	Reason string `json:"reason,omitempty"`

	Comparison *domain.RouteComparison `json:"comparison,omitempty"`
}

// @Summary Compare alternative routes for a failed transaction
// @Description Reconstructs the failed transfer's route parameters, queries the routing API
// @Description with several request variants, and returns deduplicated, ranked alternatives with
// @Description metrics, success probability, risk level and recommendation labels.
// @Description
// @Description Three outcomes are distinguished:
// @Description - alternatives found: ranked list plus recommendations
// @Description - no alternatives: empty list, failureReasons explains it
// @Description - comparison not possible: available=false with a reason (common for transactions missing destination-side data)
// @Tags compare
// @Produce json
// @Param txHash query string true "Source-chain transaction hash" example("0x4f62cd4b...")
// @Success 200 {object} CompareResponse "Comparison result"
// @Failure 400 {object} map[string]string "Invalid transaction hash"
// @Failure 404 {object} map[string]string "Unknown transaction"
// @Failure 503 {object} map[string]string "Analysis temporarily unavailable"
// @Router /api/v1/compare [get]
func (h *CompareHandler) getComparison(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}
	if !txHashPattern.MatchString(req.TxHash) {
		httputil.BadRequest(c, "invalid txHash: must be a 0x-prefixed 32-byte hex string")
		return
	}

	comparison, err := h.analysisSvc.Compare(c.Request.Context(), req.TxHash)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrInsufficientData):
			httputil.Success(c, CompareResponse{
				Available: false,
				Reason:    "not enough transaction data to reconstruct a comparable route",
			})
		case errors.Is(err, lifi.ErrStatusNotFound):
			httputil.NotFound(c, "transaction not found")
		default:
			// Unexpected orchestration failure: resolve to "unavailable"
			// rather than propagating, so the caller can suggest a retry.
			httputil.Unavailable(c, "route analysis is temporarily unavailable")
		}
		return
	}

	httputil.Success(c, CompareResponse{
		Available:  true,
		Comparison: comparison,
	})
}
