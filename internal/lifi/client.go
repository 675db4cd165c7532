package lifi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/akshatcoder-hash/lifi-lens/internal/adapters/persistence"
	"github.com/akshatcoder-hash/lifi-lens/internal/common"
	"github.com/akshatcoder-hash/lifi-lens/internal/config"
	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
	"github.com/akshatcoder-hash/lifi-lens/internal/metrics"
	"github.com/akshatcoder-hash/lifi-lens/internal/services"
)

const LIFI_SERVICE = "lifi-service"

const routeCacheSize = 512

// ErrStatusNotFound is returned when the upstream API does not know the
// transaction hash.
var ErrStatusNotFound = errors.New("transaction status not found")

type cachedRoutes struct {
	storedAt time.Time
	routes   []*domain.Route
}

// Service is the client for the upstream aggregation API: transaction status
// lookups and candidate route requests. Responses are cached (statuses in an
// LRU warmed from BoltDB, route lists in a short-TTL LRU); no retries —
// callers decide what a failed request means.
type Service struct {
	container.BaseDIInstance

	logger *services.ServiceLogger
	conf   *config.LifiConfig

	httpClient  *nethttp.Client
	storage     *persistence.Storage
	statusCache *BoundedLRUCache[string, *domain.TransactionStatus]
	routeCache  *BoundedLRUCache[string, cachedRoutes]
	routesTTL   time.Duration

	cacheEnabled bool
	cacheDBPath  string
}

func (svc *Service) ID() string {
	return LIFI_SERVICE
}

func (svc *Service) Configure(c container.IContainer) error {
	svc.logger = services.NewServiceLogger(svc)
	svc.conf = c.GetConfig(config.LIFI_CONFIG_KEY).(*config.LifiConfig)

	analysisConf := c.GetConfig(config.ANALYSIS_CONFIG_KEY).(*config.AnalysisConfig)
	svc.cacheEnabled = analysisConf.CacheEnabled
	svc.cacheDBPath = analysisConf.CacheDBPath
	svc.routesTTL = time.Duration(analysisConf.RoutesCacheTTL) * time.Second

	svc.statusCache = NewBoundedLRUCache[string, *domain.TransactionStatus](analysisConf.StatusLRUSize)
	svc.routeCache = NewBoundedLRUCache[string, cachedRoutes](routeCacheSize)

	svc.httpClient = &nethttp.Client{
		Timeout: time.Duration(svc.conf.RequestTimeout) * time.Second,
	}
	return nil
}

func (svc *Service) Start() error {
	if !svc.cacheEnabled {
		return nil
	}

	storage, err := persistence.NewStorage(svc.cacheDBPath)
	if err != nil {
		return err
	}
	svc.storage = storage

	statuses, err := storage.LoadAllStatuses()
	if err != nil {
		svc.logger.Warn().Err(err).Msg("failed to warm status cache from disk")
		return nil
	}
	for txHash, status := range statuses {
		svc.statusCache.Set(txHash, status)
	}
	metrics.StatusCacheSize.Set(float64(svc.statusCache.Size()))
	return nil
}

func (svc *Service) Stop() error {
	if svc.storage != nil {
		return svc.storage.Close()
	}
	return nil
}

// GetStatus fetches the status of a cross-chain transfer. Terminal statuses
// are cached in memory and persisted, since they can no longer change.
func (svc *Service) GetStatus(ctx context.Context, txHash string) (*domain.TransactionStatus, error) {
	key := strings.ToLower(txHash)

	if status, ok := svc.statusCache.Get(key); ok {
		metrics.StatusCacheHits.Inc()
		return status, nil
	}
	metrics.StatusCacheMisses.Inc()

	endpoint := svc.conf.BaseURL + "/status?txHash=" + url.QueryEscape(txHash)
	body, err := svc.doRequest(ctx, nethttp.MethodGet, "status", endpoint, nil)
	if err != nil {
		// the upstream answers unknown hashes with a 404 instead of a
		// NOT_FOUND body
		var httpErr *common.HttpError
		if errors.As(err, &httpErr) && httpErr.StatusCode == nethttp.StatusNotFound {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}

	var status domain.TransactionStatus
	if err := sonic.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("failed to decode status response: %w", err)
	}
	if status.Status == "" || status.Status == domain.StatusNotFound {
		return nil, ErrStatusNotFound
	}

	if status.Terminal() {
		svc.statusCache.Set(key, &status)
		metrics.StatusCacheSize.Set(float64(svc.statusCache.Size()))
		if svc.storage != nil {
			if err := svc.storage.SaveStatus(&persistence.StoredStatus{
				TxHash:   key,
				StoredAt: time.Now().Unix(),
				Status:   &status,
			}); err != nil {
				svc.logger.Warn().Err(err).Str("txHash", txHash).Msg("failed to persist status")
			}
		}
	}

	return &status, nil
}

// GetRoutes requests candidate routes for one request configuration.
// Responses are cached briefly so that concurrent comparisons of the same
// transaction don't hammer the upstream.
func (svc *Service) GetRoutes(ctx context.Context, req RouteRequest) ([]*domain.Route, error) {
	payload, err := sonic.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal route request: %w", err)
	}
	key := string(payload)

	if cached, ok := svc.routeCache.Get(key); ok && time.Since(cached.storedAt) < svc.routesTTL {
		metrics.RouteCacheHits.Inc()
		return cached.routes, nil
	}
	metrics.RouteCacheMisses.Inc()

	endpoint := svc.conf.BaseURL + "/advanced/routes"
	body, err := svc.doRequest(ctx, nethttp.MethodPost, "routes", endpoint, payload)
	if err != nil {
		return nil, err
	}

	var resp routesResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode routes response: %w", err)
	}

	svc.routeCache.Set(key, cachedRoutes{storedAt: time.Now(), routes: resp.Routes})
	return resp.Routes, nil
}

func (svc *Service) doRequest(ctx context.Context, method, endpoint, rawURL string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if svc.conf.APIKey != "" {
		req.Header.Set("x-lifi-api-key", svc.conf.APIKey)
	}

	start := time.Now()
	resp, err := svc.httpClient.Do(req)
	metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("failed to read %s response: %w", endpoint, err)
	}

	if resp.StatusCode != nethttp.StatusOK {
		metrics.UpstreamRequests.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()
		msg := fmt.Sprintf("%s returned %d", endpoint, resp.StatusCode)
		var apiErr errorResponse
		if err := sonic.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return nil, &common.HttpError{
			StatusCode: resp.StatusCode,
			Code:       "UPSTREAM_ERROR",
			Message:    msg,
		}
	}

	metrics.UpstreamRequests.WithLabelValues(endpoint, "200").Inc()
	return body, nil
}
