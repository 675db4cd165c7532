package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
)

func TestFailureReasons(t *testing.T) {
	t.Run("known substatus maps to its sentence", func(t *testing.T) {
		status := &domain.TransactionStatus{
			Status:    domain.StatusFailed,
			Substatus: domain.SubstatusInsufficientBalance,
		}
		assert.Equal(t,
			[]string{"Insufficient balance to complete the transaction"},
			FailureReasons(status))
	})

	t.Run("every mapped substatus yields one reason", func(t *testing.T) {
		for _, substatus := range []string{
			domain.SubstatusSlippageExceeded,
			domain.SubstatusInsufficientBalance,
			domain.SubstatusInsufficientAllowance,
			domain.SubstatusOutOfGas,
			domain.SubstatusBridgeNotAvailable,
		} {
			status := &domain.TransactionStatus{Status: domain.StatusFailed, Substatus: substatus}
			reasons := FailureReasons(status)
			require.Len(t, reasons, 1, "substatus %s", substatus)
			assert.NotEqual(t, unknownSubstatusReason, reasons[0])
		}
	})

	t.Run("substatus message is appended as its own reason", func(t *testing.T) {
		status := &domain.TransactionStatus{
			Status:           domain.StatusFailed,
			Substatus:        domain.SubstatusSlippageExceeded,
			SubstatusMessage: "Price moved 4.2% between quote and execution",
		}
		assert.Equal(t, []string{
			"Slippage tolerance was exceeded during execution",
			"Price moved 4.2% between quote and execution",
		}, FailureReasons(status))
	})

	t.Run("unmapped substatus reads as unknown", func(t *testing.T) {
		status := &domain.TransactionStatus{
			Status:    domain.StatusFailed,
			Substatus: "SOMETHING_NEW",
		}
		assert.Equal(t, []string{unknownSubstatusReason}, FailureReasons(status))
	})

	t.Run("message without substatus stands alone", func(t *testing.T) {
		status := &domain.TransactionStatus{
			Status:           domain.StatusFailed,
			SubstatusMessage: "execution reverted",
		}
		assert.Equal(t, []string{"execution reverted"}, FailureReasons(status))
	})

	t.Run("never empty", func(t *testing.T) {
		assert.Equal(t, []string{genericFailureReason}, FailureReasons(nil))
		assert.Equal(t, []string{genericFailureReason},
			FailureReasons(&domain.TransactionStatus{Status: domain.StatusFailed}))
	})
}
