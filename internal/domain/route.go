package domain

// Step types as reported by the aggregation API.
const (
	StepTypeSwap  = "swap"
	StepTypeCross = "cross"
	StepTypeLifi  = "lifi"
)

// Token describes a token on a specific chain.
type Token struct {
	Address  string `json:"address"`
	ChainID  int64  `json:"chainId"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Name     string `json:"name,omitempty"`
	PriceUSD string `json:"priceUSD,omitempty"`
}

// FeeCost is a named fee charged by a tool within a step.
type FeeCost struct {
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	AmountUSD string `json:"amountUsd"`
	Token     *Token `json:"token,omitempty"`
	Included  bool   `json:"included,omitempty"`
}

// GasCost is an estimated gas expenditure for a step.
type GasCost struct {
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	AmountUSD string `json:"amountUsd"`
	Token     *Token `json:"token,omitempty"`
}

// Action holds the inputs of a step: what goes in, where it goes,
// and the slippage the step was requested with (fraction, e.g. 0.03).
type Action struct {
	FromChainID int64   `json:"fromChainId"`
	ToChainID   int64   `json:"toChainId"`
	FromToken   *Token  `json:"fromToken,omitempty"`
	ToToken     *Token  `json:"toToken,omitempty"`
	FromAmount  string  `json:"fromAmount"`
	FromAddress string  `json:"fromAddress,omitempty"`
	ToAddress   string  `json:"toAddress,omitempty"`
	Slippage    float64 `json:"slippage,omitempty"`
}

// Estimate holds the expected outputs of a step.
type Estimate struct {
	FromAmount        string    `json:"fromAmount"`
	ToAmount          string    `json:"toAmount"`
	ToAmountMin       string    `json:"toAmountMin,omitempty"`
	ExecutionDuration float64   `json:"executionDuration"` // seconds
	FeeCosts          []FeeCost `json:"feeCosts,omitempty"`
	GasCosts          []GasCost `json:"gasCosts,omitempty"`
}

// Step is one leg of a route, executed by a named bridge or exchange tool.
// Steps chain: each step's output token/chain feeds the next step's input.
// The API is trusted on this; it is not re-verified here.
type Step struct {
	ID       string   `json:"id,omitempty"`
	Type     string   `json:"type"`
	Tool     string   `json:"tool"`
	Action   Action   `json:"action"`
	Estimate Estimate `json:"estimate"`
}

// Route is a proposed transfer path returned by the aggregation API.
// Immutable once returned; identified by its opaque ID.
type Route struct {
	ID            string `json:"id"`
	FromChainID   int64  `json:"fromChainId"`
	ToChainID     int64  `json:"toChainId"`
	FromToken     *Token `json:"fromToken,omitempty"`
	ToToken       *Token `json:"toToken,omitempty"`
	FromAmount    string `json:"fromAmount"`
	ToAmount      string `json:"toAmount"`
	ToAmountMin   string `json:"toAmountMin,omitempty"`
	FromAmountUSD string `json:"fromAmountUsd,omitempty"`
	ToAmountUSD   string `json:"toAmountUsd,omitempty"`
	Steps         []Step `json:"steps"`
}

// CrossStepCount returns the number of cross-chain steps in the route.
func (r *Route) CrossStepCount() int {
	n := 0
	for i := range r.Steps {
		if r.Steps[i].Type == StepTypeCross {
			n++
		}
	}
	return n
}

// Tools returns the ordered tool names of the route's steps.
func (r *Route) Tools() []string {
	tools := make([]string, 0, len(r.Steps))
	for i := range r.Steps {
		tools = append(tools, r.Steps[i].Tool)
	}
	return tools
}
