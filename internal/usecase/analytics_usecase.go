package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pipecrm/internal/domain/analytics"
	"pipecrm/internal/domain/entities"
	"pipecrm/internal/usecase/interfaces"
)

var ErrUnknownForecastType = errors.New("unknown forecast snapshot type")

// AnalyticsConfig tunes the orchestration layer around the pure engine.
type AnalyticsConfig struct {
	CacheTTL time.Duration

	// Horizons used when the cron job persists forecast snapshots.
	SnapshotMonthlyHorizon   int
	SnapshotQuarterlyHorizon int

	Health  analytics.HealthConfig
	Report  analytics.ReportConfig
	Advisor analytics.AdvisorConfig
}

func DefaultAnalyticsConfig() AnalyticsConfig {
	return AnalyticsConfig{
		CacheTTL:                 5 * time.Minute,
		SnapshotMonthlyHorizon:   3,
		SnapshotQuarterlyHorizon: 2,
		Health:                   analytics.DefaultHealthConfig(),
		Report:                   analytics.DefaultReportConfig(),
		Advisor:                  analytics.DefaultAdvisorConfig(),
	}
}

// IAnalyticsUseCase loads record snapshots from the stores, runs the pure
// aggregation engine over them, and caches the serialized results for a
// short TTL.

type IAnalyticsUseCase interface {
	Dashboard(ctx context.Context, period analytics.Period, ownerID string) (analytics.Metrics, error)
	PipelineReport(ctx context.Context) (analytics.PipelineReport, error)
	Forecast(ctx context.Context, pt analytics.PeriodType, horizon int) ([]analytics.PeriodForecast, error)
	ForecastHistory(ctx context.Context, pt analytics.PeriodType, periodsBack int) ([]analytics.PeriodForecast, error)
	Trends(ctx context.Context, pt analytics.PeriodType, points int) ([]analytics.TrendPoint, error)
	TeamPerformance(ctx context.Context) ([]analytics.OwnerPerformance, error)
	Recommendations(ctx context.Context, dealID string) ([]analytics.Recommendation, error)
	SnapshotForecasts(ctx context.Context) error
	ForecastSnapshots(ctx context.Context, ft entities.ForecastType) ([]entities.ForecastSnapshot, error)
}

type AnalyticsUseCase struct {
	deals       interfaces.IDealRepository
	transitions interfaces.IStageTransitionRepository
	customers   interfaces.ICustomerRepository
	activities  interfaces.IActivityRepository
	forecasts   interfaces.IForecastRepository
	cache       interfaces.ISnapshotCache
	cfg         AnalyticsConfig
	logger      *zap.Logger
	now         func() time.Time
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(
	deals interfaces.IDealRepository,
	transitions interfaces.IStageTransitionRepository,
	customers interfaces.ICustomerRepository,
	activities interfaces.IActivityRepository,
	forecasts interfaces.IForecastRepository,
	cache interfaces.ISnapshotCache,
	cfg AnalyticsConfig,
	logger *zap.Logger,
) *AnalyticsUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsUseCase{
		deals:       deals,
		transitions: transitions,
		customers:   customers,
		activities:  activities,
		forecasts:   forecasts,
		cache:       cache,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (u *AnalyticsUseCase) WithClock(now func() time.Time) *AnalyticsUseCase {
	u.now = now
	return u
}

func (u *AnalyticsUseCase) Dashboard(ctx context.Context, period analytics.Period, ownerID string) (analytics.Metrics, error) {
	key := fmt.Sprintf("dashboard:%s:%s", scopeKey(ownerID), period)
	var cached analytics.Metrics
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	deals, err := u.deals.List(ctx, interfaces.DealFilter{OwnerID: ownerID})
	if err != nil {
		return analytics.Metrics{}, err
	}
	customers, err := u.customers.List(ctx, interfaces.CustomerFilter{OwnerID: ownerID})
	if err != nil {
		return analytics.Metrics{}, err
	}
	activities, err := u.activities.List(ctx, interfaces.ActivityFilter{OwnerID: ownerID})
	if err != nil {
		return analytics.Metrics{}, err
	}

	metrics := analytics.DashboardMetrics(analytics.Snapshot{
		Deals:      deals,
		Customers:  customers,
		Activities: activities,
	}, period, u.now())

	u.cacheSet(ctx, key, metrics)
	return metrics, nil
}

func (u *AnalyticsUseCase) PipelineReport(ctx context.Context) (analytics.PipelineReport, error) {
	key := "pipeline-report"
	var cached analytics.PipelineReport
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	deals, err := u.deals.List(ctx, interfaces.DealFilter{})
	if err != nil {
		return analytics.PipelineReport{}, err
	}
	transitions, err := u.transitions.List(ctx, nil)
	if err != nil {
		return analytics.PipelineReport{}, err
	}

	report := analytics.BuildPipelineReport(deals, transitions, u.now(), u.cfg.Report)
	u.cacheSet(ctx, key, report)
	return report, nil
}

func (u *AnalyticsUseCase) Forecast(ctx context.Context, pt analytics.PeriodType, horizon int) ([]analytics.PeriodForecast, error) {
	deals, err := u.activeDeals(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Forecast(deals, pt, horizon, u.now())
}

func (u *AnalyticsUseCase) ForecastHistory(ctx context.Context, pt analytics.PeriodType, periodsBack int) ([]analytics.PeriodForecast, error) {
	deals, err := u.deals.List(ctx, interfaces.DealFilter{})
	if err != nil {
		return nil, err
	}
	return analytics.ForecastWithActuals(deals, pt, periodsBack, u.now())
}

func (u *AnalyticsUseCase) Trends(ctx context.Context, pt analytics.PeriodType, points int) ([]analytics.TrendPoint, error) {
	deals, err := u.deals.List(ctx, interfaces.DealFilter{})
	if err != nil {
		return nil, err
	}
	customers, err := u.customers.List(ctx, interfaces.CustomerFilter{})
	if err != nil {
		return nil, err
	}
	return analytics.SalesTrends(deals, customers, pt, points, u.now())
}

func (u *AnalyticsUseCase) TeamPerformance(ctx context.Context) ([]analytics.OwnerPerformance, error) {
	deals, err := u.deals.List(ctx, interfaces.DealFilter{})
	if err != nil {
		return nil, err
	}
	return analytics.TeamPerformance(deals), nil
}

func (u *AnalyticsUseCase) Recommendations(ctx context.Context, dealID string) ([]analytics.Recommendation, error) {
	deal, err := u.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.ID == "" {
		return nil, ErrDealNotFound
	}

	activities, err := u.activities.List(ctx, interfaces.ActivityFilter{DealID: dealID})
	if err != nil {
		return nil, err
	}
	return analytics.Recommend(deal, activities, u.now(), u.cfg.Advisor), nil
}

// SnapshotForecasts recomputes the near-term monthly and quarterly forecasts
// and persists one snapshot per period. The cron runner calls this on a
// schedule; it is also safe to invoke on demand.
func (u *AnalyticsUseCase) SnapshotForecasts(ctx context.Context) error {
	deals, err := u.activeDeals(ctx)
	if err != nil {
		return err
	}
	now := u.now()

	persist := func(ft entities.ForecastType, pt analytics.PeriodType, horizon int) error {
		periods, err := analytics.Forecast(deals, pt, horizon, now)
		if err != nil {
			return err
		}
		for _, p := range periods {
			_, err := u.forecasts.Upsert(ctx, entities.ForecastSnapshot{
				ID:               uuid.NewString(),
				Period:           p.Period,
				Type:             ft,
				TotalPipeline:    p.TotalPipeline,
				WeightedPipeline: p.WeightedPipeline,
				ExpectedRevenue:  p.ExpectedRevenue,
				CreatedAt:        now.UTC(),
				UpdatedAt:        now.UTC(),
			})
			if err != nil {
				return err
			}
		}
		return nil
	}

	if err := persist(entities.ForecastMonthly, analytics.PeriodMonthly, u.cfg.SnapshotMonthlyHorizon); err != nil {
		return err
	}
	if err := persist(entities.ForecastQuarterly, analytics.PeriodQuarterly, u.cfg.SnapshotQuarterlyHorizon); err != nil {
		return err
	}

	u.logger.Info("forecast snapshots persisted",
		zap.Int("monthly_horizon", u.cfg.SnapshotMonthlyHorizon),
		zap.Int("quarterly_horizon", u.cfg.SnapshotQuarterlyHorizon))
	return nil
}

// ForecastSnapshots returns the persisted snapshots of one type, as written
// by SnapshotForecasts.
func (u *AnalyticsUseCase) ForecastSnapshots(ctx context.Context, ft entities.ForecastType) ([]entities.ForecastSnapshot, error) {
	if !ft.Valid() {
		return nil, ErrUnknownForecastType
	}
	return u.forecasts.ListByType(ctx, ft)
}

func (u *AnalyticsUseCase) activeDeals(ctx context.Context) ([]entities.Deal, error) {
	active := entities.DealStatusActive
	return u.deals.List(ctx, interfaces.DealFilter{Status: &active})
}

// cacheGet deserializes a cached aggregate into out. Cache failures are
// logged and treated as misses; aggregates must stay available when redis
// is not.
func (u *AnalyticsUseCase) cacheGet(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	raw, ok, err := u.cache.Get(ctx, key)
	if err != nil {
		u.logger.Warn("snapshot cache get failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		u.logger.Warn("snapshot cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (u *AnalyticsUseCase) cacheSet(ctx context.Context, key string, v any) {
	if u.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		u.logger.Warn("snapshot cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := u.cache.Set(ctx, key, raw, u.cfg.CacheTTL); err != nil {
		u.logger.Warn("snapshot cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func scopeKey(ownerID string) string {
	if ownerID == "" {
		return "all"
	}
	return ownerID
}
