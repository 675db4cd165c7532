package analysis

import (
	"context"
	"sync"
	"time"

	container "github.com/thehyperflames/dicontainer-go"

	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
	"github.com/akshatcoder-hash/lifi-lens/internal/lifi"
	"github.com/akshatcoder-hash/lifi-lens/internal/metrics"
	"github.com/akshatcoder-hash/lifi-lens/internal/services"
)

const ANALYSIS_SERVICE = "analysis-service"

// RouteClient is the slice of the upstream client the comparison pipeline
// consumes; the production implementation is *lifi.Service.
type RouteClient interface {
	GetStatus(ctx context.Context, txHash string) (*domain.TransactionStatus, error)
	GetRoutes(ctx context.Context, req lifi.RouteRequest) ([]*domain.Route, error)
}

// Service runs the route comparison pipeline: reconstruct the failed
// transfer's parameters, fan out request variants to the routing API, then
// dedupe, score, rank and annotate the candidates. Each Compare call is
// independent; no state is shared across invocations.
type Service struct {
	container.BaseDIInstance

	logger *services.ServiceLogger
	client RouteClient
	tables ScoreProvider
}

// NewService builds a Service outside the DI container; used by tests and
// embedders that wire dependencies by hand.
func NewService(client RouteClient, tables ScoreProvider) *Service {
	svc := &Service{client: client, tables: tables}
	svc.logger = services.NewServiceLogger(svc)
	return svc
}

func (svc *Service) ID() string {
	return ANALYSIS_SERVICE
}

func (svc *Service) Configure(c container.IContainer) error {
	svc.logger = services.NewServiceLogger(svc)
	svc.client = c.Instance(lifi.LIFI_SERVICE).(*lifi.Service)
	svc.tables = DefaultTables()
	return nil
}

func (svc *Service) Start() error {
	return nil
}

func (svc *Service) Stop() error {
	return nil
}

// Compare produces a RouteComparison for the given transaction.
//
// Outcomes:
//   - (comparison, nil) with alternatives: candidates were found and ranked.
//   - (comparison, nil) with an empty list: every variant came back empty or
//     failed; FailureReasons is exactly ["No alternative routes found"].
//   - (nil, ErrInsufficientData): the transaction's data cannot determine
//     both legs of a route; no upstream route call was made.
//   - (nil, err): the status lookup itself failed; the caller should render
//     an "analysis unavailable" state.
func (svc *Service) Compare(ctx context.Context, txHash string) (*domain.RouteComparison, error) {
	start := time.Now()
	defer func() {
		metrics.ComparisonDuration.Observe(time.Since(start).Seconds())
	}()

	status, err := svc.client.GetStatus(ctx, txHash)
	if err != nil {
		metrics.ComparisonRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	params, err := ExtractBaseParams(status)
	if err != nil {
		metrics.ComparisonRequests.WithLabelValues("insufficient_data").Inc()
		svc.logger.Debug().Str("txHash", txHash).Msg("comparison skipped: cannot reconstruct route parameters")
		return nil, err
	}

	candidates := DedupeRoutes(svc.fanOut(ctx, BuildRequestVariants(params, svc.tables)))
	metrics.CandidateRoutes.Observe(float64(len(candidates)))

	comparison := &domain.RouteComparison{
		OriginalRoute:     reconstructOriginalRoute(status, params),
		AlternativeRoutes: []domain.AlternativeRoute{},
	}

	if len(candidates) == 0 {
		comparison.FailureReasons = []string{NoAlternativesReason}
		metrics.ComparisonRequests.WithLabelValues("empty").Inc()
		return comparison, nil
	}

	if status.Failed() {
		comparison.FailureReasons = FailureReasons(status)
	} else {
		comparison.FailureReasons = []string{}
	}

	alts := make([]domain.AlternativeRoute, 0, len(candidates))
	for _, route := range candidates {
		m := CalculateRouteMetrics(route, svc.tables)
		p := SuccessProbability(route, m, svc.tables)
		alts = append(alts, domain.AlternativeRoute{
			Route:              route,
			Metrics:            m,
			SuccessProbability: p,
			RiskLevel:          ClassifyRisk(p, m),
			OptimalScore:       OptimalScore(m),
		})
	}

	RankAlternatives(alts)
	comparison.Recommendations = Annotate(alts)
	comparison.AlternativeRoutes = alts

	metrics.ComparisonRequests.WithLabelValues("ok").Inc()
	return comparison, nil
}

// fanOut submits every request variant concurrently and joins all of them.
// A failed variant contributes nothing; it never aborts the comparison.
// There is no early cutoff: the comparison waits for all variants to settle.
func (svc *Service) fanOut(ctx context.Context, reqs []lifi.RouteRequest) []*domain.Route {
	results := make([][]*domain.Route, len(reqs))

	var wg sync.WaitGroup
	for i := range reqs {
		wg.Add(1)
		go func(slot int, req lifi.RouteRequest) {
			defer wg.Done()
			routes, err := svc.client.GetRoutes(ctx, req)
			if err != nil {
				metrics.VariantRequests.WithLabelValues(req.Label, "error").Inc()
				svc.logger.Warn().Err(err).Str("variant", req.Label).Msg("route variant failed")
				return
			}
			metrics.VariantRequests.WithLabelValues(req.Label, "ok").Inc()
			results[slot] = routes
		}(i, reqs[i])
	}
	wg.Wait()

	var collected []*domain.Route
	for _, routes := range results {
		collected = append(collected, routes...)
	}
	return collected
}

// reconstructOriginalRoute assembles a best-effort partial route from the
// failed transaction's legs. It carries no steps; it exists so the caller
// can render "what was attempted" next to the alternatives.
func reconstructOriginalRoute(status *domain.TransactionStatus, params BaseParams) *domain.Route {
	route := &domain.Route{
		FromChainID: params.FromChainID,
		ToChainID:   params.ToChainID,
		FromAmount:  params.FromAmount,
	}
	if status.Sending != nil {
		route.FromToken = status.Sending.Token
		route.FromAmountUSD = status.Sending.AmountUSD
	}
	if status.Receiving != nil {
		route.ToToken = status.Receiving.Token
		route.ToAmount = status.Receiving.Amount
		route.ToAmountUSD = status.Receiving.AmountUSD
	}
	return route
}
