package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
)

func TestRankAlternatives(t *testing.T) {
	alt := func(id string, m domain.RouteMetrics) domain.AlternativeRoute {
		return domain.AlternativeRoute{
			Route:        &domain.Route{ID: id},
			Metrics:      m,
			OptimalScore: OptimalScore(m),
		}
	}

	t.Run("sorted descending by optimal score", func(t *testing.T) {
		alts := []domain.AlternativeRoute{
			alt("cheap-slow", domain.RouteMetrics{TotalFeesUSD: 2, EstimatedTime: 3600, BridgeReliability: 7, ComplexityScore: 3}),
			alt("balanced", domain.RouteMetrics{TotalFeesUSD: 10, EstimatedTime: 120, BridgeReliability: 9, ComplexityScore: 1}),
			alt("expensive", domain.RouteMetrics{TotalFeesUSD: 90, EstimatedTime: 300, BridgeReliability: 8, ComplexityScore: 3}),
		}

		RankAlternatives(alts)
		require.Equal(t, "balanced", alts[0].Route.ID)
		for i := 1; i < len(alts); i++ {
			assert.GreaterOrEqual(t, alts[i-1].OptimalScore, alts[i].OptimalScore)
		}
	})

	t.Run("stable under re-ranking", func(t *testing.T) {
		alts := []domain.AlternativeRoute{
			alt("a", domain.RouteMetrics{TotalFeesUSD: 10, EstimatedTime: 300, BridgeReliability: 8, ComplexityScore: 3}),
			alt("tie-1", domain.RouteMetrics{TotalFeesUSD: 5, EstimatedTime: 60, BridgeReliability: 9, ComplexityScore: 1}),
			alt("tie-2", domain.RouteMetrics{TotalFeesUSD: 5, EstimatedTime: 60, BridgeReliability: 9, ComplexityScore: 1}),
		}

		RankAlternatives(alts)
		first := []string{alts[0].Route.ID, alts[1].Route.ID, alts[2].Route.ID}

		RankAlternatives(alts)
		second := []string{alts[0].Route.ID, alts[1].Route.ID, alts[2].Route.ID}

		assert.Equal(t, first, second)
		// exact ties keep input order
		assert.Equal(t, "tie-1", alts[0].Route.ID)
		assert.Equal(t, "tie-2", alts[1].Route.ID)
	})
}

func TestOptimalScoreFormula(t *testing.T) {
	m := domain.RouteMetrics{
		TotalFeesUSD:      12,
		EstimatedTime:     120, // 2 minutes
		BridgeReliability: 9,
		ComplexityScore:   1,
	}

	// 0.3*88 + 0.2*96 + 0.3*90 + 0.2*90
	assert.InDelta(t, 90.6, OptimalScore(m), 1e-9)

	t.Run("components floor at zero", func(t *testing.T) {
		worst := domain.RouteMetrics{
			TotalFeesUSD:      500,
			EstimatedTime:     4 * 3600,
			BridgeReliability: 0,
			ComplexityScore:   15,
		}
		assert.Zero(t, OptimalScore(worst))
	})
}
