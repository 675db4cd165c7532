package domain

// RouteMetrics is a value object derived on demand from a single route.
// Never persisted and never mutated in place; always recomputed fresh.
type RouteMetrics struct {
	// TotalFeesUSD is the sum of all named fee costs plus all gas costs
	// across the route's steps, in USD.
	TotalFeesUSD float64 `json:"totalFeesUsd"`

	// TotalGasUSD is the gas-only portion of TotalFeesUSD.
	TotalGasUSD float64 `json:"totalGasUsd"`

	// EstimatedTime is the summed execution duration of all steps, seconds.
	EstimatedTime float64 `json:"estimatedTime"`

	// PriceImpact is the fractional value loss between input and output
	// after fees (0.01 == 1%).
	PriceImpact float64 `json:"priceImpact"`

	// ComplexityScore grows with step count, cross-chain hops and swaps.
	ComplexityScore float64 `json:"complexityScore"`

	// GasEfficiency is gas cost as a percentage of the input amount.
	GasEfficiency float64 `json:"gasEfficiency"`

	// LiquidityScore classifies the deepest liquidity tier touched, 0-10.
	LiquidityScore float64 `json:"liquidityScore"`

	// BridgeReliability is the mean reliability of the cross-chain tools
	// used, 0-10. A route with no cross-chain step scores 9.
	BridgeReliability float64 `json:"bridgeReliability"`

	// SlippageTolerance is the route's configured slippage, percent.
	SlippageTolerance float64 `json:"slippageTolerance"`
}

// RecommendationType labels why a route is being recommended.
type RecommendationType string

const (
	RecommendationOptimal     RecommendationType = "optimal"
	RecommendationFastest     RecommendationType = "fastest"
	RecommendationCheapest    RecommendationType = "cheapest"
	RecommendationSafest      RecommendationType = "safest"
	RecommendationAlternative RecommendationType = "alternative"
)

// RiskLevel is a coarse classification of a route's execution risk.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// AlternativeRoute bundles a candidate route with everything the caller
// needs to judge it. Built once per candidate, read-only afterward.
type AlternativeRoute struct {
	Route              *Route             `json:"route"`
	Metrics            RouteMetrics       `json:"metrics"`
	Recommendation     RecommendationType `json:"recommendation"`
	SuccessProbability float64            `json:"successProbability"` // bounded [50, 98]
	RiskLevel          RiskLevel          `json:"riskLevel"`
	Pros               []string           `json:"pros"`
	Cons               []string           `json:"cons"`
	OptimalScore       float64            `json:"optimalScore"`
}

// RouteRecommendation is the presentation-ready summary for one route.
type RouteRecommendation struct {
	RouteID              string             `json:"routeId"`
	Type                 RecommendationType `json:"type"`
	Pros                 []string           `json:"pros"`
	Cons                 []string           `json:"cons"`
	SuggestedAdjustments []string           `json:"suggestedAdjustments,omitempty"`
	SuccessProbability   float64            `json:"successProbability"`
	RiskLevel            RiskLevel          `json:"riskLevel"`
}

// RouteComparison is the top-level comparison result. Constructed fresh per
// request and never cached.
type RouteComparison struct {
	// OriginalRoute is a best-effort partial reconstruction of the failed
	// transaction's route. May be nil when nothing could be reconstructed.
	OriginalRoute *Route `json:"originalRoute,omitempty"`

	// AlternativeRoutes is ordered best-first by optimal score.
	AlternativeRoutes []AlternativeRoute `json:"alternativeRoutes"`

	// FailureReasons are plain-language explanations of why the original
	// transaction failed, or why no alternatives exist.
	FailureReasons []string `json:"failureReasons"`

	Recommendations []RouteRecommendation `json:"recommendations"`
}
