package analysis

import (
	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
)

// Diagnostic sentences per known substatus. One fixed sentence each; the
// free-text substatus message, when present, is appended as its own reason.
var substatusReasons = map[string]string{
	domain.SubstatusSlippageExceeded:      "Slippage tolerance was exceeded during execution",
	domain.SubstatusInsufficientBalance:   "Insufficient balance to complete the transaction",
	domain.SubstatusInsufficientAllowance: "Insufficient token allowance for the transfer",
	domain.SubstatusOutOfGas:              "The transaction ran out of gas",
	domain.SubstatusBridgeNotAvailable:    "The bridge was temporarily unavailable",
}

const (
	unknownSubstatusReason = "Transaction failed for unknown reasons"
	genericFailureReason   = "Transaction failed"

	// NoAlternativesReason replaces the list when the comparison finds no
	// candidate routes at all.
	NoAlternativesReason = "No alternative routes found"
)

// FailureReasons maps a failed transaction's substatus and message to
// plain-language explanations. Never returns an empty list.
func FailureReasons(status *domain.TransactionStatus) []string {
	if status == nil || (status.Substatus == "" && status.SubstatusMessage == "") {
		return []string{genericFailureReason}
	}

	var reasons []string
	if status.Substatus != "" {
		if reason, ok := substatusReasons[status.Substatus]; ok {
			reasons = append(reasons, reason)
		} else {
			reasons = append(reasons, unknownSubstatusReason)
		}
	}
	if status.SubstatusMessage != "" {
		reasons = append(reasons, status.SubstatusMessage)
	}
	return reasons
}
