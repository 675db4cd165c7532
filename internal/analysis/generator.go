package analysis

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
	"github.com/akshatcoder-hash/lifi-lens/internal/lifi"
)

// ErrInsufficientData means the failed transaction's data cannot determine
// both legs of a route, so a comparison is skipped rather than attempted
// with corrupt inputs. This is a common case, not a fault.
var ErrInsufficientData = errors.New("insufficient transaction data to reconstruct route parameters")

// BaseParams are the reconstructed request parameters of the original
// transfer, seeding every request variant.
type BaseParams struct {
	FromChainID int64
	ToChainID   int64
	FromToken   string
	ToToken     string
	FromAmount  string
	FromAddress string
	ToAddress   string
}

// ExtractBaseParams reconstructs the route parameters from a transaction
// status. The sending leg is mandatory; the receiving leg falls back to the
// last included-step hint when absent.
func ExtractBaseParams(status *domain.TransactionStatus) (BaseParams, error) {
	if status == nil || status.Sending == nil {
		return BaseParams{}, ErrInsufficientData
	}

	p := BaseParams{
		FromChainID: status.Sending.ChainID,
		FromAmount:  status.Sending.Amount,
		FromAddress: status.FromAddress,
		ToAddress:   status.ToAddress,
	}
	if status.Sending.Token != nil {
		p.FromToken = status.Sending.Token.Address
	}

	if status.Receiving != nil && status.Receiving.ChainID != 0 && status.Receiving.Token != nil {
		p.ToChainID = status.Receiving.ChainID
		p.ToToken = status.Receiving.Token.Address
	} else if hint, ok := receivingHint(status.IncludedSteps); ok {
		p.ToChainID = hint.ToChainID
		p.ToToken = hint.ToToken.Address
	}

	if p.FromChainID == 0 || p.ToChainID == 0 || p.FromToken == "" || p.ToToken == "" {
		return BaseParams{}, ErrInsufficientData
	}

	// Amounts arrive as wei-denominated decimal strings; anything that does
	// not parse as a positive 256-bit integer cannot seed a route request.
	amount, err := uint256.FromDecimal(p.FromAmount)
	if err != nil || amount.IsZero() {
		return BaseParams{}, ErrInsufficientData
	}

	return p, nil
}

// receivingHint picks the last included step that names a destination
// chain/token; the last leg of the original route is the receiving side.
func receivingHint(steps []domain.IncludedStep) (domain.IncludedStep, bool) {
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i].ToChainID != 0 && steps[i].ToToken != nil && steps[i].ToToken.Address != "" {
			return steps[i], true
		}
	}
	return domain.IncludedStep{}, false
}

// BuildRequestVariants expands the base parameters into the fixed,
// deterministic set of request configurations submitted to the routing API.
// Each variant explores one recovery hypothesis for the failed transfer.
func BuildRequestVariants(p BaseParams, tables ScoreProvider) []lifi.RouteRequest {
	base := lifi.RouteRequest{
		FromChainID:      p.FromChainID,
		ToChainID:        p.ToChainID,
		FromTokenAddress: p.FromToken,
		ToTokenAddress:   p.ToToken,
		FromAmount:       p.FromAmount,
		FromAddress:      p.FromAddress,
		ToAddress:        p.ToAddress,
	}

	variants := []struct {
		label   string
		options lifi.RouteOptions
	}{
		{
			label:   "base",
			options: lifi.RouteOptions{},
		},
		{
			label:   "cost_high_slippage",
			options: lifi.RouteOptions{Slippage: 0.03, Order: lifi.OrderCheapest},
		},
		{
			label:   "speed_max_slippage",
			options: lifi.RouteOptions{Slippage: 0.05, Order: lifi.OrderFastest},
		},
		{
			label: "reliable_bridges",
			options: lifi.RouteOptions{
				Slippage: 0.02,
				Bridges:  &lifi.ToolPreference{Prefer: tables.ReliableBridges()},
			},
		},
		{
			label: "major_exchanges",
			options: lifi.RouteOptions{
				Slippage:  0.02,
				Exchanges: &lifi.ToolPreference{Prefer: tables.MajorExchanges()},
			},
		},
		{
			label:   "chain_switch",
			options: lifi.RouteOptions{Slippage: 0.025, AllowSwitchChain: true},
		},
		{
			label: "conservative",
			options: lifi.RouteOptions{
				Slippage: 0.01,
				Order:    lifi.OrderCheapest,
				Bridges:  &lifi.ToolPreference{Prefer: tables.ConservativeBridges()},
			},
		},
	}

	reqs := make([]lifi.RouteRequest, 0, len(variants))
	for _, v := range variants {
		req := base
		req.Label = v.label
		req.Options = v.options
		reqs = append(reqs, req)
	}
	return reqs
}
