package analysis

import (
	"math"
	"strconv"

	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
)

const (
	// Liquidity tier scores (0-10 scale).
	liquidityHighScore   = 9.0
	liquidityMediumScore = 6.0
	liquidityLowScore    = 3.0

	// A route with no cross-chain step carries no bridge risk.
	pureSwapReliability = 9.0

	// Default slippage tolerance (percent) when no step declares one.
	defaultSlippagePct = 2.0

	// Gas efficiency fallback when the input USD amount is unknown:
	// worst case, treated as "unknown/expensive".
	unknownGasEfficiency = 100.0
)

// CalculateRouteMetrics derives a RouteMetrics value from one candidate
// route. Pure: no side effects, never fails; missing fields default to zero.
// All durations are seconds end to end.
func CalculateRouteMetrics(route *domain.Route, tables ScoreProvider) domain.RouteMetrics {
	var m domain.RouteMetrics
	if route == nil {
		m.GasEfficiency = unknownGasEfficiency
		m.LiquidityScore = liquidityLowScore
		m.BridgeReliability = pureSwapReliability
		m.SlippageTolerance = defaultSlippagePct
		return m
	}

	swapSteps := 0
	crossSteps := 0
	for i := range route.Steps {
		step := &route.Steps[i]

		for _, fee := range step.Estimate.FeeCosts {
			m.TotalFeesUSD += parseUSD(fee.AmountUSD)
		}
		for _, gas := range step.Estimate.GasCosts {
			usd := parseUSD(gas.AmountUSD)
			m.TotalFeesUSD += usd
			m.TotalGasUSD += usd
		}

		m.EstimatedTime += step.Estimate.ExecutionDuration

		switch step.Type {
		case domain.StepTypeCross:
			crossSteps++
		case domain.StepTypeSwap:
			swapSteps++
		}

		if m.SlippageTolerance == 0 && step.Action.Slippage > 0 {
			m.SlippageTolerance = step.Action.Slippage * 100
		}
	}
	if m.SlippageTolerance == 0 {
		m.SlippageTolerance = defaultSlippagePct
	}

	m.ComplexityScore = float64(len(route.Steps)) + 0.5*float64(swapSteps)
	if crossSteps > 0 {
		m.ComplexityScore += 2
	}

	fromUSD := parseUSD(route.FromAmountUSD)
	toUSD := parseUSD(route.ToAmountUSD)
	if fromUSD > 0 {
		m.PriceImpact = math.Abs(fromUSD-toUSD-m.TotalFeesUSD) / fromUSD
		m.GasEfficiency = (m.TotalGasUSD / fromUSD) * 100
	} else {
		m.GasEfficiency = unknownGasEfficiency
	}

	m.LiquidityScore = liquidityScore(route, tables)
	m.BridgeReliability = bridgeReliability(route, tables)

	return m
}

// liquidityScore classifies the route by the deepest liquidity tier any of
// its tools belongs to.
func liquidityScore(route *domain.Route, tables ScoreProvider) float64 {
	medium := false
	for i := range route.Steps {
		tool := route.Steps[i].Tool
		if tables.HighLiquidity(tool) {
			return liquidityHighScore
		}
		if tables.MediumLiquidity(tool) {
			medium = true
		}
	}
	if medium {
		return liquidityMediumScore
	}
	return liquidityLowScore
}

// bridgeReliability averages the reliability table over cross-chain steps
// only. A pure swap route has no bridge exposure and scores 9.
func bridgeReliability(route *domain.Route, tables ScoreProvider) float64 {
	var sum float64
	crossSteps := 0
	for i := range route.Steps {
		if route.Steps[i].Type != domain.StepTypeCross {
			continue
		}
		sum += tables.BridgeReliability(route.Steps[i].Tool)
		crossSteps++
	}
	if crossSteps == 0 {
		return pureSwapReliability
	}
	return sum / float64(crossSteps)
}

// parseUSD parses a USD-denominated decimal string, defaulting to zero on
// missing or malformed input.
func parseUSD(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
