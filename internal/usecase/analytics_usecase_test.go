package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"pipecrm/internal/domain/analytics"
	"pipecrm/internal/domain/entities"
	"pipecrm/internal/usecase/interfaces"
	mock_interfaces "pipecrm/internal/usecase/interfaces/mocks"
)

func newAnalyticsMocks(ctrl *gomock.Controller) (
	*mock_interfaces.MockIDealRepository,
	*mock_interfaces.MockIStageTransitionRepository,
	*mock_interfaces.MockICustomerRepository,
	*mock_interfaces.MockIActivityRepository,
	*mock_interfaces.MockIForecastRepository,
) {
	return mock_interfaces.NewMockIDealRepository(ctrl),
		mock_interfaces.NewMockIStageTransitionRepository(ctrl),
		mock_interfaces.NewMockICustomerRepository(ctrl),
		mock_interfaces.NewMockIActivityRepository(ctrl),
		mock_interfaces.NewMockIForecastRepository(ctrl)
}

func TestAnalyticsUseCase_Dashboard(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	t.Run("cache hit skips the stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)
		cache := mock_interfaces.NewMockISnapshotCache(ctrl)

		cached, _ := json.Marshal(analytics.Metrics{Period: analytics.PeriodMonth, GeneratedAt: now})
		cache.EXPECT().Get(gomock.Any(), "dashboard:all:month").Return(cached, true, nil)

		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, cache, DefaultAnalyticsConfig(), nil)

		m, err := uc.Dashboard(context.Background(), analytics.PeriodMonth, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Period != analytics.PeriodMonth || !m.GeneratedAt.Equal(now) {
			t.Fatalf("expected cached metrics, got %+v", m)
		}
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)
		cache := mock_interfaces.NewMockISnapshotCache(ctrl)

		cfg := DefaultAnalyticsConfig()
		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, cache, cfg, nil).
			WithClock(func() time.Time { return now })

		cache.EXPECT().Get(gomock.Any(), "dashboard:alice:month").Return(nil, false, nil)
		deals.EXPECT().List(gomock.Any(), interfaces.DealFilter{OwnerID: "alice"}).Return([]entities.Deal{
			{ID: "d1", Stage: entities.StageLead, Status: entities.DealStatusActive,
				Value: decimal.NewFromInt(1000), Probability: 10, CreatedAt: now.AddDate(0, 0, -5)},
		}, nil)
		customers.EXPECT().List(gomock.Any(), interfaces.CustomerFilter{OwnerID: "alice"}).Return(nil, nil)
		activities.EXPECT().List(gomock.Any(), interfaces.ActivityFilter{OwnerID: "alice"}).Return(nil, nil)
		cache.EXPECT().Set(gomock.Any(), "dashboard:alice:month", gomock.Any(), cfg.CacheTTL).Return(nil)

		m, err := uc.Dashboard(context.Background(), analytics.PeriodMonth, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Deals.Total != 1 || m.Deals.Active != 1 {
			t.Fatalf("unexpected metrics: %+v", m.Deals)
		}
	})

	t.Run("cache errors fall through to the stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)
		cache := mock_interfaces.NewMockISnapshotCache(ctrl)

		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, cache, DefaultAnalyticsConfig(), nil).
			WithClock(func() time.Time { return now })

		cache.EXPECT().Get(gomock.Any(), "dashboard:all:month").Return(nil, false, errors.New("redis down"))
		deals.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
		customers.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
		activities.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
		cache.EXPECT().Set(gomock.Any(), "dashboard:all:month", gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if _, err := uc.Dashboard(context.Background(), analytics.PeriodMonth, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nil cache is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)

		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, nil, DefaultAnalyticsConfig(), nil).
			WithClock(func() time.Time { return now })

		deals.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
		customers.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
		activities.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		if _, err := uc.Dashboard(context.Background(), analytics.PeriodMonth, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)

		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, nil, DefaultAnalyticsConfig(), nil)

		deals.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Dashboard(context.Background(), analytics.PeriodMonth, "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestAnalyticsUseCase_Forecast(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	t.Run("projects only active deals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)

		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, nil, DefaultAnalyticsConfig(), nil).
			WithClock(func() time.Time { return now })

		close := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		active := entities.DealStatusActive
		deals.EXPECT().List(gomock.Any(), interfaces.DealFilter{Status: &active}).Return([]entities.Deal{
			{Status: entities.DealStatusActive, Value: decimal.NewFromInt(1000), Probability: 80, ExpectedClose: &close},
		}, nil)

		out, err := uc.Forecast(context.Background(), analytics.PeriodMonthly, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 || out[0].DealCount != 1 {
			t.Fatalf("unexpected forecast: %+v", out)
		}
	})

	t.Run("invalid horizon propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)

		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, nil, DefaultAnalyticsConfig(), nil)

		deals.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := uc.Forecast(context.Background(), analytics.PeriodMonthly, 0)
		if !errors.Is(err, analytics.ErrInvalidHorizon) {
			t.Fatalf("expected ErrInvalidHorizon, got %v", err)
		}
	})
}

func TestAnalyticsUseCase_Recommendations(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	t.Run("deal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)

		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, nil, DefaultAnalyticsConfig(), nil)

		deals.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Deal{}, nil)

		_, err := uc.Recommendations(context.Background(), "missing")
		if !errors.Is(err, ErrDealNotFound) {
			t.Fatalf("expected ErrDealNotFound, got %v", err)
		}
	})

	t.Run("runs the advisor over the deal's activities", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)

		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, nil, DefaultAnalyticsConfig(), nil).
			WithClock(func() time.Time { return now })

		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{
			ID: "d-1", Stage: entities.StageLead, Status: entities.DealStatusActive,
			Probability: 10, CreatedAt: now.AddDate(0, 0, -45),
		}, nil)
		activities.EXPECT().List(gomock.Any(), interfaces.ActivityFilter{DealID: "d-1"}).Return([]entities.Activity{
			{ID: "a1", DealID: "d-1", CreatedAt: now.AddDate(0, 0, -1)},
		}, nil)

		recs, err := uc.Recommendations(context.Background(), "d-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Stale lead only; the recent touchpoint suppresses the no-touch rule.
		if len(recs) != 1 || recs[0].Severity != analytics.SeverityInfo {
			t.Fatalf("unexpected recommendations: %v", recs)
		}
	})
}

func TestAnalyticsUseCase_SnapshotForecasts(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	t.Run("persists one snapshot per period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)

		cfg := DefaultAnalyticsConfig()
		cfg.SnapshotMonthlyHorizon = 2
		cfg.SnapshotQuarterlyHorizon = 1

		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, nil, cfg, nil).
			WithClock(func() time.Time { return now })

		deals.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		var monthly, quarterly int
		forecasts.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.ForecastSnapshot{})).DoAndReturn(
			func(_ context.Context, fs entities.ForecastSnapshot) (entities.ForecastSnapshot, error) {
				switch fs.Type {
				case entities.ForecastMonthly:
					monthly++
				case entities.ForecastQuarterly:
					quarterly++
				}
				if fs.Period == "" || fs.ID == "" {
					t.Fatalf("unexpected snapshot: %+v", fs)
				}
				return fs, nil
			},
		).Times(3)

		if err := uc.SnapshotForecasts(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if monthly != 2 || quarterly != 1 {
			t.Fatalf("expected 2 monthly / 1 quarterly, got %d/%d", monthly, quarterly)
		}
	})

	t.Run("upsert error aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)

		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, nil, DefaultAnalyticsConfig(), nil).
			WithClock(func() time.Time { return now })

		deals.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
		forecasts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.ForecastSnapshot{}, errors.New("db"))

		err := uc.SnapshotForecasts(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestAnalyticsUseCase_ForecastSnapshots(t *testing.T) {
	t.Run("returns persisted snapshots of the requested type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)

		stored := []entities.ForecastSnapshot{
			{ID: "fs-1", Period: "2026-Q3", Type: entities.ForecastQuarterly, ExpectedRevenue: decimal.NewFromInt(4000)},
			{ID: "fs-2", Period: "2026-Q4", Type: entities.ForecastQuarterly, ExpectedRevenue: decimal.NewFromInt(2500)},
		}
		forecasts.EXPECT().ListByType(gomock.Any(), entities.ForecastQuarterly).Return(stored, nil)

		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, nil, DefaultAnalyticsConfig(), nil)

		got, err := uc.ForecastSnapshots(context.Background(), entities.ForecastQuarterly)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].Period != "2026-Q3" || got[1].Period != "2026-Q4" {
			t.Fatalf("unexpected snapshots: %+v", got)
		}
	})

	t.Run("rejects unknown type without touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals, transitions, customers, activities, forecasts := newAnalyticsMocks(ctrl)

		uc := NewAnalyticsUseCase(deals, transitions, customers, activities, forecasts, nil, DefaultAnalyticsConfig(), nil)

		_, err := uc.ForecastSnapshots(context.Background(), entities.ForecastType("weekly"))
		if !errors.Is(err, ErrUnknownForecastType) {
			t.Fatalf("expected ErrUnknownForecastType, got %v", err)
		}
	})
}
