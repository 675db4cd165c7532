package lifi

import (
	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
)

// RouteOrder is the result-ordering strategy requested from the routing API.
type RouteOrder string

const (
	OrderRecommended RouteOrder = "RECOMMENDED"
	OrderCheapest    RouteOrder = "CHEAPEST"
	OrderFastest     RouteOrder = "FASTEST"
)

// ToolPreference narrows or biases the tools the routing API may use.
type ToolPreference struct {
	Prefer []string `json:"prefer,omitempty"`
	Allow  []string `json:"allow,omitempty"`
	Deny   []string `json:"deny,omitempty"`
}

// RouteOptions tunes a single route request.
type RouteOptions struct {
	Slippage         float64         `json:"slippage,omitempty"`
	Order            RouteOrder      `json:"order,omitempty"`
	Bridges          *ToolPreference `json:"bridges,omitempty"`
	Exchanges        *ToolPreference `json:"exchanges,omitempty"`
	AllowSwitchChain bool            `json:"allowSwitchChain,omitempty"`
	Integrator       string          `json:"integrator,omitempty"`
}

// RouteRequest asks the routing API for candidate routes between two
// chain/token endpoints.
type RouteRequest struct {
	FromChainID      int64        `json:"fromChainId"`
	ToChainID        int64        `json:"toChainId"`
	FromTokenAddress string       `json:"fromTokenAddress"`
	ToTokenAddress   string       `json:"toTokenAddress"`
	FromAmount       string       `json:"fromAmount"`
	FromAddress      string       `json:"fromAddress,omitempty"`
	ToAddress        string       `json:"toAddress,omitempty"`
	Options          RouteOptions `json:"options"`

	// Label names the request variant for logging and metrics only.
	Label string `json:"-"`
}

type routesResponse struct {
	Routes []*domain.Route `json:"routes"`
}

type errorResponse struct {
	Message string `json:"message"`
	Code    any    `json:"code,omitempty"`
}
