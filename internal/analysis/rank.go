package analysis

import (
	"sort"

	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
)

// Optimal-score weights. Policy constants: tuned, not derived. Changing them
// changes ranking behavior and needs explicit sign-off.
const (
	feeWeight         = 0.3
	timeWeight        = 0.2
	reliabilityWeight = 0.3
	complexityWeight  = 0.2
)

// OptimalScore computes the weighted composite used to rank candidates.
// Each dimension is normalized to a 0-100 scale before weighting.
func OptimalScore(m domain.RouteMetrics) float64 {
	feeScore := clampScore(100 - m.TotalFeesUSD)
	timeScore := clampScore(100 - (m.EstimatedTime/60)*2)
	reliabilityScore := m.BridgeReliability * 10
	complexityScore := clampScore(100 - m.ComplexityScore*10)

	return feeWeight*feeScore +
		timeWeight*timeScore +
		reliabilityWeight*reliabilityScore +
		complexityWeight*complexityScore
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// RankAlternatives sorts candidates best-first by optimal score. The sort is
// stable, so exact score ties keep their dedupe (first-appearance) order;
// re-ranking an already ranked, unchanged list is a no-op.
func RankAlternatives(alts []domain.AlternativeRoute) {
	sort.SliceStable(alts, func(i, j int) bool {
		return alts[i].OptimalScore > alts[j].OptimalScore
	})
}
