package domain

// Transaction status values reported by the aggregation API.
const (
	StatusNotFound = "NOT_FOUND"
	StatusInvalid  = "INVALID"
	StatusPending  = "PENDING"
	StatusDone     = "DONE"
	StatusFailed   = "FAILED"
)

// Substatus values attached to failed or partial transfers.
const (
	SubstatusSlippageExceeded      = "SLIPPAGE_EXCEEDED"
	SubstatusInsufficientBalance   = "INSUFFICIENT_BALANCE"
	SubstatusInsufficientAllowance = "INSUFFICIENT_ALLOWANCE"
	SubstatusOutOfGas              = "OUT_OF_GAS"
	SubstatusBridgeNotAvailable    = "BRIDGE_NOT_AVAILABLE"
	SubstatusPartial               = "PARTIAL"
	SubstatusRefunded              = "REFUNDED"
	SubstatusUnknownError          = "UNKNOWN_ERROR"
)

// TransferLeg is one side (sending or receiving) of a tracked transfer.
// The receiving leg is frequently missing for failed transactions.
type TransferLeg struct {
	ChainID   int64  `json:"chainId"`
	TxHash    string `json:"txHash,omitempty"`
	TxLink    string `json:"txLink,omitempty"`
	Amount    string `json:"amount,omitempty"`
	AmountUSD string `json:"amountUsd,omitempty"`
	Token     *Token `json:"token,omitempty"`
	GasUsed   string `json:"gasUsed,omitempty"`
	GasPrice  string `json:"gasPrice,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// IncludedStep is a hint about a leg the original route contained; used as a
// fallback when the receiving-side data is absent from the status response.
type IncludedStep struct {
	Tool        string `json:"tool,omitempty"`
	FromChainID int64  `json:"fromChainId,omitempty"`
	ToChainID   int64  `json:"toChainId,omitempty"`
	FromToken   *Token `json:"fromToken,omitempty"`
	ToToken     *Token `json:"toToken,omitempty"`
	FromAmount  string `json:"fromAmount,omitempty"`
	ToAmount    string `json:"toAmount,omitempty"`
}

// TransactionStatus is the upstream status of a cross-chain transfer.
type TransactionStatus struct {
	TransactionID    string         `json:"transactionId,omitempty"`
	Status           string         `json:"status"`
	Substatus        string         `json:"substatus,omitempty"`
	SubstatusMessage string         `json:"substatusMessage,omitempty"`
	Tool             string         `json:"tool,omitempty"`
	FromAddress      string         `json:"fromAddress,omitempty"`
	ToAddress        string         `json:"toAddress,omitempty"`
	Sending          *TransferLeg   `json:"sending,omitempty"`
	Receiving        *TransferLeg   `json:"receiving,omitempty"`
	IncludedSteps    []IncludedStep `json:"includedSteps,omitempty"`
	ExplorerLink     string         `json:"lifiExplorerLink,omitempty"`
}

// Terminal reports whether the status can no longer change, which makes the
// response safe to cache indefinitely.
func (s *TransactionStatus) Terminal() bool {
	return s.Status == StatusDone || s.Status == StatusFailed
}

// Failed reports whether the transfer failed outright.
func (s *TransactionStatus) Failed() bool {
	return s.Status == StatusFailed || s.Status == StatusInvalid
}
