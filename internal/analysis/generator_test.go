package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
	"github.com/akshatcoder-hash/lifi-lens/internal/lifi"
)

func completeStatus() *domain.TransactionStatus {
	return &domain.TransactionStatus{
		Status:      domain.StatusFailed,
		FromAddress: "0xsender",
		ToAddress:   "0xrecipient",
		Sending: &domain.TransferLeg{
			ChainID: 1,
			Amount:  "1000000000000000000",
			Token:   &domain.Token{Address: "0xusdc-mainnet", ChainID: 1},
		},
		Receiving: &domain.TransferLeg{
			ChainID: 137,
			Token:   &domain.Token{Address: "0xusdc-polygon", ChainID: 137},
		},
	}
}

func TestExtractBaseParams(t *testing.T) {
	t.Run("both legs present", func(t *testing.T) {
		p, err := ExtractBaseParams(completeStatus())
		require.NoError(t, err)

		assert.Equal(t, int64(1), p.FromChainID)
		assert.Equal(t, int64(137), p.ToChainID)
		assert.Equal(t, "0xusdc-mainnet", p.FromToken)
		assert.Equal(t, "0xusdc-polygon", p.ToToken)
		assert.Equal(t, "1000000000000000000", p.FromAmount)
		assert.Equal(t, "0xsender", p.FromAddress)
		assert.Equal(t, "0xrecipient", p.ToAddress)
	})

	t.Run("receiving leg recovered from included steps", func(t *testing.T) {
		status := completeStatus()
		status.Receiving = nil
		status.IncludedSteps = []domain.IncludedStep{
			{Tool: "uniswap", FromChainID: 1, ToChainID: 1, ToToken: &domain.Token{Address: "0xweth", ChainID: 1}},
			{Tool: "across", FromChainID: 1, ToChainID: 137, ToToken: &domain.Token{Address: "0xusdc-polygon", ChainID: 137}},
		}

		p, err := ExtractBaseParams(status)
		require.NoError(t, err)

		// the last hinted step is the destination leg
		assert.Equal(t, int64(137), p.ToChainID)
		assert.Equal(t, "0xusdc-polygon", p.ToToken)
	})

	t.Run("incomplete hints are skipped", func(t *testing.T) {
		status := completeStatus()
		status.Receiving = nil
		status.IncludedSteps = []domain.IncludedStep{
			{Tool: "hop", FromChainID: 1, ToChainID: 10, ToToken: &domain.Token{Address: "0xusdc-op", ChainID: 10}},
			{Tool: "mystery", ToChainID: 0, ToToken: nil},
		}

		p, err := ExtractBaseParams(status)
		require.NoError(t, err)
		assert.Equal(t, int64(10), p.ToChainID)
	})

	insufficientCases := []struct {
		name   string
		mutate func(*domain.TransactionStatus)
	}{
		{"nil status", func(s *domain.TransactionStatus) { *s = domain.TransactionStatus{} }},
		{"no sending leg", func(s *domain.TransactionStatus) { s.Sending = nil }},
		{"no sending token", func(s *domain.TransactionStatus) { s.Sending.Token = nil }},
		{"no destination anywhere", func(s *domain.TransactionStatus) {
			s.Receiving = nil
			s.IncludedSteps = nil
		}},
		{"non-numeric amount", func(s *domain.TransactionStatus) { s.Sending.Amount = "a lot" }},
		{"negative amount", func(s *domain.TransactionStatus) { s.Sending.Amount = "-5" }},
		{"zero amount", func(s *domain.TransactionStatus) { s.Sending.Amount = "0" }},
		{"empty amount", func(s *domain.TransactionStatus) { s.Sending.Amount = "" }},
	}
	for _, tt := range insufficientCases {
		t.Run(tt.name, func(t *testing.T) {
			status := completeStatus()
			tt.mutate(status)
			_, err := ExtractBaseParams(status)
			assert.ErrorIs(t, err, ErrInsufficientData)
		})
	}

	t.Run("nil pointer", func(t *testing.T) {
		_, err := ExtractBaseParams(nil)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})
}

func TestBuildRequestVariants(t *testing.T) {
	tables := DefaultTables()
	params := BaseParams{
		FromChainID: 1,
		ToChainID:   137,
		FromToken:   "0xusdc-mainnet",
		ToToken:     "0xusdc-polygon",
		FromAmount:  "1000000",
		FromAddress: "0xsender",
		ToAddress:   "0xrecipient",
	}

	reqs := BuildRequestVariants(params, tables)
	require.Len(t, reqs, 7)

	t.Run("all variants share the base endpoints", func(t *testing.T) {
		for _, req := range reqs {
			assert.Equal(t, params.FromChainID, req.FromChainID, req.Label)
			assert.Equal(t, params.ToChainID, req.ToChainID, req.Label)
			assert.Equal(t, params.FromToken, req.FromTokenAddress, req.Label)
			assert.Equal(t, params.ToToken, req.ToTokenAddress, req.Label)
			assert.Equal(t, params.FromAmount, req.FromAmount, req.Label)
		}
	})

	t.Run("variant configurations", func(t *testing.T) {
		byLabel := map[string]lifi.RouteRequest{}
		for _, req := range reqs {
			byLabel[req.Label] = req
		}
		require.Len(t, byLabel, 7, "variant labels must be unique")

		base := byLabel["base"]
		assert.Zero(t, base.Options.Slippage)
		assert.Empty(t, base.Options.Order)

		cost := byLabel["cost_high_slippage"]
		assert.InDelta(t, 0.03, cost.Options.Slippage, 1e-9)
		assert.Equal(t, lifi.OrderCheapest, cost.Options.Order)

		speed := byLabel["speed_max_slippage"]
		assert.InDelta(t, 0.05, speed.Options.Slippage, 1e-9)
		assert.Equal(t, lifi.OrderFastest, speed.Options.Order)

		reliable := byLabel["reliable_bridges"]
		assert.InDelta(t, 0.02, reliable.Options.Slippage, 1e-9)
		require.NotNil(t, reliable.Options.Bridges)
		assert.Equal(t, tables.ReliableBridges(), reliable.Options.Bridges.Prefer)

		exchanges := byLabel["major_exchanges"]
		assert.InDelta(t, 0.02, exchanges.Options.Slippage, 1e-9)
		require.NotNil(t, exchanges.Options.Exchanges)
		assert.Equal(t, tables.MajorExchanges(), exchanges.Options.Exchanges.Prefer)

		chainSwitch := byLabel["chain_switch"]
		assert.InDelta(t, 0.025, chainSwitch.Options.Slippage, 1e-9)
		assert.True(t, chainSwitch.Options.AllowSwitchChain)

		conservative := byLabel["conservative"]
		assert.InDelta(t, 0.01, conservative.Options.Slippage, 1e-9)
		assert.Equal(t, lifi.OrderCheapest, conservative.Options.Order)
		require.NotNil(t, conservative.Options.Bridges)
		assert.Equal(t, tables.ConservativeBridges(), conservative.Options.Bridges.Prefer)
	})

	t.Run("deterministic", func(t *testing.T) {
		again := BuildRequestVariants(params, tables)
		assert.Equal(t, reqs, again)
	})
}
