package config

import (
	"errors"
	"strings"

	"github.com/andrew-solarstorm/go-packages/common"
)

type LifiConfig struct {
	// BaseURL is the root of the aggregation API, without trailing slash.
	BaseURL string

	// APIKey is optional; sent as x-lifi-api-key when present.
	APIKey string

	// RequestTimeout is the per-request timeout in seconds.
	RequestTimeout int

	// Integrator identifies this consumer to the upstream API.
	Integrator string
}

func (c *LifiConfig) Key() string {
	return LIFI_CONFIG_KEY
}

func (c *LifiConfig) Load() error {
	c.BaseURL = strings.TrimRight(common.GetEnvOrDefault("LIFI_BASE_URL", "https://li.quest/v1"), "/")
	c.APIKey = common.GetEnvOrDefault("LIFI_API_KEY", "")
	c.RequestTimeout = common.GetEnvOrDefaultInt("LIFI_REQUEST_TIMEOUT", 20)
	c.Integrator = common.GetEnvOrDefault("LIFI_INTEGRATOR", "lifi-lens")
	return c.Validate()
}

func (c *LifiConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("invalid lifi config: base url required")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("invalid lifi config: timeout must be positive")
	}
	return nil
}
