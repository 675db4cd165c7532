package analysis

import (
	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
)

// Success-probability policy constants. Additive penalties on a 95 base,
// clamped to [50, 98]. Empirical, not derived from data.
const (
	successBase = 95.0
	successMin  = 50.0
	successMax  = 98.0

	complexityPenaltyWeight  = 2.0
	reliabilityPenaltyWeight = 3.0

	lowLiquidityPenalty = 15.0
	midLiquidityPenalty = 5.0

	highImpactPenalty = 10.0
	midImpactPenalty  = 5.0

	highGasPenalty = 10.0
	midGasPenalty  = 5.0

	unknownToolPenalty = 10.0
)

// SuccessProbability estimates the chance the route executes successfully,
// as a percentage bounded to [50, 98] even for degenerate all-zero metrics.
func SuccessProbability(route *domain.Route, m domain.RouteMetrics, tables ScoreProvider) float64 {
	p := successBase

	p -= m.ComplexityScore * complexityPenaltyWeight
	p -= (10 - m.BridgeReliability) * reliabilityPenaltyWeight

	switch {
	case m.LiquidityScore < 4:
		p -= lowLiquidityPenalty
	case m.LiquidityScore < 7:
		p -= midLiquidityPenalty
	}

	switch {
	case m.PriceImpact > 0.02:
		p -= highImpactPenalty
	case m.PriceImpact > 0.01:
		p -= midImpactPenalty
	}

	switch {
	case m.GasEfficiency > 10:
		p -= highGasPenalty
	case m.GasEfficiency > 5:
		p -= midGasPenalty
	}

	if route != nil && hasUnknownTool(route, tables) {
		p -= unknownToolPenalty
	}

	if p < successMin {
		return successMin
	}
	if p > successMax {
		return successMax
	}
	return p
}

func hasUnknownTool(route *domain.Route, tables ScoreProvider) bool {
	for i := range route.Steps {
		if !tables.WellKnownBridge(route.Steps[i].Tool) {
			return true
		}
	}
	return false
}

// ClassifyRisk maps (success probability, complexity, reliability) to a risk
// level. Pure: same inputs always produce the same level.
func ClassifyRisk(successProbability float64, m domain.RouteMetrics) domain.RiskLevel {
	if successProbability < 70 || m.ComplexityScore > 6 || m.BridgeReliability < 6 {
		return domain.RiskHigh
	}
	if successProbability < 85 || m.ComplexityScore > 3 || m.BridgeReliability < 8 {
		return domain.RiskMedium
	}
	return domain.RiskLow
}
