package analysis

// ScoreProvider supplies the reliability/liquidity policy tables the
// estimators and the variant generator consume. Injectable so tests can pin
// known fixtures; StaticTables is the production implementation.
type ScoreProvider interface {
	// BridgeReliability returns the 0-10 reliability score for a cross-chain
	// tool. Unknown tools score UnknownToolReliability.
	BridgeReliability(tool string) float64

	// HighLiquidity reports whether the tool is a major aggregator/DEX with
	// deep liquidity.
	HighLiquidity(tool string) bool

	// MediumLiquidity reports whether the tool has moderate liquidity depth.
	MediumLiquidity(tool string) bool

	// WellKnownBridge reports whether the tool is in the well-known bridge
	// set used by the success-probability estimator.
	WellKnownBridge(tool string) bool

	// ReliableBridges is the bridge preference list for the
	// reliability-focused request variant.
	ReliableBridges() []string

	// ConservativeBridges is the narrower preference list for the
	// conservative request variant.
	ConservativeBridges() []string

	// MajorExchanges is the exchange preference list for the
	// exchange-focused request variant.
	MajorExchanges() []string
}

// UnknownToolReliability is the score assigned to bridges absent from the
// reliability table.
const UnknownToolReliability = 5.0

// StaticTables is the default ScoreProvider. The numbers are policy, tuned
// from observed bridge behavior, not derived from data; changing them changes
// ranking behavior and needs explicit sign-off.
type StaticTables struct {
	reliability map[string]float64
	high        map[string]struct{}
	medium      map[string]struct{}
	wellKnown   map[string]struct{}
}

// DefaultTables returns the production scoring tables.
func DefaultTables() *StaticTables {
	return &StaticTables{
		reliability: map[string]float64{
			"across":      9.5,
			"hop":         9.0,
			"stargate":    8.5,
			"cbridge":     8.0,
			"celercircle": 8.0,
			"connext":     7.5,
			"synapse":     7.0,
			"multichain":  6.0,
			"allbridge":   5.5,
		},
		high: setOf(
			"1inch", "0x", "uniswap", "sushiswap", "paraswap", "kyberswap",
		),
		medium: setOf(
			"pancakeswap", "quickswap", "trader-joe", "camelot", "velodrome",
		),
		wellKnown: setOf(
			"across", "hop", "stargate", "cbridge", "connext", "synapse",
		),
	}
}

func setOf(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func (t *StaticTables) BridgeReliability(tool string) float64 {
	if score, ok := t.reliability[tool]; ok {
		return score
	}
	return UnknownToolReliability
}

func (t *StaticTables) HighLiquidity(tool string) bool {
	_, ok := t.high[tool]
	return ok
}

func (t *StaticTables) MediumLiquidity(tool string) bool {
	_, ok := t.medium[tool]
	return ok
}

func (t *StaticTables) WellKnownBridge(tool string) bool {
	_, ok := t.wellKnown[tool]
	return ok
}

func (t *StaticTables) ReliableBridges() []string {
	return []string{"across", "hop", "stargate"}
}

func (t *StaticTables) ConservativeBridges() []string {
	return []string{"across", "hop"}
}

func (t *StaticTables) MajorExchanges() []string {
	return []string{"1inch", "0x", "paraswap"}
}
