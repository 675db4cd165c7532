package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
)

func TestSuccessProbabilityBounds(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name    string
		metrics domain.RouteMetrics
	}{
		{
			name:    "degenerate all-zero metrics",
			metrics: domain.RouteMetrics{},
		},
		{
			name: "worst case everything",
			metrics: domain.RouteMetrics{
				ComplexityScore:   12,
				BridgeReliability: 0,
				LiquidityScore:    1,
				PriceImpact:       0.5,
				GasEfficiency:     50,
			},
		},
		{
			name: "best case everything",
			metrics: domain.RouteMetrics{
				ComplexityScore:   0,
				BridgeReliability: 10,
				LiquidityScore:    9,
				PriceImpact:       0,
				GasEfficiency:     0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := SuccessProbability(nil, tt.metrics, tables)
			assert.GreaterOrEqual(t, p, 50.0)
			assert.LessOrEqual(t, p, 98.0)
		})
	}
}

func TestSuccessProbabilityPenalties(t *testing.T) {
	tables := DefaultTables()

	base := domain.RouteMetrics{
		ComplexityScore:   0,
		BridgeReliability: 10,
		LiquidityScore:    9,
		PriceImpact:       0,
		GasEfficiency:     0,
	}

	t.Run("clean metrics keep the base score", func(t *testing.T) {
		assert.InDelta(t, 95, SuccessProbability(nil, base, tables), 1e-9)
	})

	t.Run("mid liquidity costs 5", func(t *testing.T) {
		m := base
		m.LiquidityScore = 6
		assert.InDelta(t, 90, SuccessProbability(nil, m, tables), 1e-9)
	})

	t.Run("price impact tiers", func(t *testing.T) {
		m := base
		m.PriceImpact = 0.015
		assert.InDelta(t, 90, SuccessProbability(nil, m, tables), 1e-9)
		m.PriceImpact = 0.03
		assert.InDelta(t, 85, SuccessProbability(nil, m, tables), 1e-9)
	})

	t.Run("gas efficiency tiers", func(t *testing.T) {
		m := base
		m.GasEfficiency = 7
		assert.InDelta(t, 90, SuccessProbability(nil, m, tables), 1e-9)
		m.GasEfficiency = 11
		assert.InDelta(t, 85, SuccessProbability(nil, m, tables), 1e-9)
	})

	t.Run("unlisted tool costs 10", func(t *testing.T) {
		route := &domain.Route{
			Steps: []domain.Step{{Type: domain.StepTypeCross, Tool: "mystery-bridge"}},
		}
		assert.InDelta(t, 85, SuccessProbability(route, base, tables), 1e-9)
	})
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		metrics     domain.RouteMetrics
		want        domain.RiskLevel
	}{
		{
			name:        "low probability is high risk",
			probability: 65,
			metrics:     domain.RouteMetrics{ComplexityScore: 1, BridgeReliability: 9},
			want:        domain.RiskHigh,
		},
		{
			name:        "high complexity is high risk",
			probability: 90,
			metrics:     domain.RouteMetrics{ComplexityScore: 7, BridgeReliability: 9},
			want:        domain.RiskHigh,
		},
		{
			name:        "weak bridge is high risk",
			probability: 90,
			metrics:     domain.RouteMetrics{ComplexityScore: 1, BridgeReliability: 5.5},
			want:        domain.RiskHigh,
		},
		{
			name:        "middling probability is medium risk",
			probability: 80,
			metrics:     domain.RouteMetrics{ComplexityScore: 1, BridgeReliability: 9},
			want:        domain.RiskMedium,
		},
		{
			name:        "moderate complexity is medium risk",
			probability: 90,
			metrics:     domain.RouteMetrics{ComplexityScore: 4, BridgeReliability: 9},
			want:        domain.RiskMedium,
		},
		{
			name:        "decent bridge is medium risk",
			probability: 90,
			metrics:     domain.RouteMetrics{ComplexityScore: 1, BridgeReliability: 7.5},
			want:        domain.RiskMedium,
		},
		{
			name:        "clean route is low risk",
			probability: 90,
			metrics:     domain.RouteMetrics{ComplexityScore: 2, BridgeReliability: 9},
			want:        domain.RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyRisk(tt.probability, tt.metrics)
			assert.Equal(t, tt.want, got)

			// pure function: same inputs, same level
			assert.Equal(t, got, ClassifyRisk(tt.probability, tt.metrics))
		})
	}
}
