package analysis

import (
	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
)

// Pros/cons thresholds. Presentation policy, paired with the user-facing
// sentences below.
const (
	lowFeesUSD        = 10.0
	highFeesUSD       = 50.0
	fastTimeSeconds   = 5 * 60.0
	slowTimeSeconds   = 15 * 60.0
	highReliability   = 8.0
	lowReliability    = 6.0
	simpleComplexity  = 3.0
	complexComplexity = 5.0
	goodGasEfficiency = 2.0
	poorGasEfficiency = 5.0
	highImpactCon     = 0.01

	// Slippage adjustment trigger: tight tolerance with visible impact.
	slippageAdjustBelowPct = 2.0
	slippageAdjustImpact   = 0.005
)

// Annotate assigns each ranked candidate exactly one recommendation category,
// fills in pros/cons, and builds the presentation-ready recommendation list.
// Candidates must already be ranked best-first (top score at index 0).
func Annotate(alts []domain.AlternativeRoute) []domain.RouteRecommendation {
	if len(alts) == 0 {
		return nil
	}

	cheapest := indexOfMin(alts, func(a *domain.AlternativeRoute) float64 { return a.Metrics.TotalFeesUSD })
	fastest := indexOfMin(alts, func(a *domain.AlternativeRoute) float64 { return a.Metrics.EstimatedTime })
	safest := indexOfMax(alts, func(a *domain.AlternativeRoute) float64 { return a.Metrics.BridgeReliability })
	topScore := alts[0].OptimalScore

	recs := make([]domain.RouteRecommendation, 0, len(alts))
	for i := range alts {
		alt := &alts[i]

		switch {
		case i == cheapest:
			alt.Recommendation = domain.RecommendationCheapest
		case i == fastest:
			alt.Recommendation = domain.RecommendationFastest
		case i == safest:
			alt.Recommendation = domain.RecommendationSafest
		case alt.OptimalScore >= topScore:
			alt.Recommendation = domain.RecommendationOptimal
		default:
			alt.Recommendation = domain.RecommendationAlternative
		}

		alt.Pros = routePros(alt.Metrics)
		alt.Cons = routeCons(alt.Metrics)

		recs = append(recs, domain.RouteRecommendation{
			RouteID:              alt.Route.ID,
			Type:                 alt.Recommendation,
			Pros:                 alt.Pros,
			Cons:                 alt.Cons,
			SuggestedAdjustments: routeAdjustments(alt.Metrics),
			SuccessProbability:   alt.SuccessProbability,
			RiskLevel:            alt.RiskLevel,
		})
	}
	return recs
}

func routePros(m domain.RouteMetrics) []string {
	var pros []string
	if m.TotalFeesUSD < lowFeesUSD {
		pros = append(pros, "Low total fees")
	}
	if m.EstimatedTime < fastTimeSeconds {
		pros = append(pros, "Fast execution (under 5 minutes)")
	}
	if m.BridgeReliability > highReliability {
		pros = append(pros, "Uses highly reliable bridges")
	}
	if m.ComplexityScore < simpleComplexity {
		pros = append(pros, "Simple route with few steps")
	}
	if m.GasEfficiency < goodGasEfficiency {
		pros = append(pros, "Gas efficient")
	}
	if m.LiquidityScore > 7 {
		pros = append(pros, "Routes through deep liquidity")
	}
	return pros
}

func routeCons(m domain.RouteMetrics) []string {
	var cons []string
	if m.TotalFeesUSD > highFeesUSD {
		cons = append(cons, "High total fees")
	}
	if m.EstimatedTime > slowTimeSeconds {
		cons = append(cons, "Slow execution (over 15 minutes)")
	}
	if m.BridgeReliability < lowReliability {
		cons = append(cons, "Uses less reliable bridges")
	}
	if m.ComplexityScore > complexComplexity {
		cons = append(cons, "Complex route with many steps")
	}
	if m.GasEfficiency > poorGasEfficiency {
		cons = append(cons, "High gas cost relative to transfer size")
	}
	if m.PriceImpact > highImpactCon {
		cons = append(cons, "Noticeable price impact")
	}
	return cons
}

func routeAdjustments(m domain.RouteMetrics) []string {
	var out []string
	if m.SlippageTolerance < slippageAdjustBelowPct && m.PriceImpact > slippageAdjustImpact {
		out = append(out, "Consider raising slippage tolerance to 3%")
	}
	return out
}

func indexOfMin(alts []domain.AlternativeRoute, key func(*domain.AlternativeRoute) float64) int {
	best := 0
	for i := 1; i < len(alts); i++ {
		if key(&alts[i]) < key(&alts[best]) {
			best = i
		}
	}
	return best
}

func indexOfMax(alts []domain.AlternativeRoute, key func(*domain.AlternativeRoute) float64) int {
	best := 0
	for i := 1; i < len(alts); i++ {
		if key(&alts[i]) > key(&alts[best]) {
			best = i
		}
	}
	return best
}
