package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"pipecrm/internal/adapter/http/handlers/mocks"
	"pipecrm/internal/domain/analytics"
	"pipecrm/internal/domain/entities"
	"pipecrm/internal/usecase"
)

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/analytics/dashboard", h.Dashboard)

		uc.EXPECT().Dashboard(gomock.Any(), analytics.PeriodMonth, "").Return(analytics.Metrics{Period: analytics.PeriodMonth}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("forwards period and owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/analytics/dashboard", h.Dashboard)

		uc.EXPECT().Dashboard(gomock.Any(), analytics.PeriodWeek, "alice").Return(analytics.Metrics{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/dashboard?period=week&owner_id=alice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("store error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/analytics/dashboard", h.Dashboard)

		uc.EXPECT().Dashboard(gomock.Any(), gomock.Any(), gomock.Any()).Return(analytics.Metrics{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAnalyticsHandler_Forecast(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the projection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/analytics/forecast", h.Forecast)

		uc.EXPECT().Forecast(gomock.Any(), analytics.PeriodQuarterly, 2).Return([]analytics.PeriodForecast{
			{Period: "2026-Q4", Start: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
				TotalPipeline: decimal.NewFromInt(6000), WeightedPipeline: decimal.NewFromInt(4500),
				ExpectedRevenue: decimal.NewFromInt(4000), DealCount: 3},
			{Period: "2027-Q1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/forecast?type=quarterly&horizon=2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 2 || resp[0]["period"] != "2026-Q4" || resp[0]["expected_revenue"] != "4000" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("non-numeric horizon is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/analytics/forecast", h.Forecast)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/forecast?horizon=lots", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range horizon maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/analytics/forecast", h.Forecast)

		uc.EXPECT().Forecast(gomock.Any(), analytics.PeriodMonthly, 99).Return(nil, analytics.ErrInvalidHorizon)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/forecast?horizon=99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAnalyticsHandler_ForecastSnapshots(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("snapshot run persists and confirms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.POST("/v1/analytics/forecast/snapshot", h.SnapshotForecasts)

		uc.EXPECT().SnapshotForecasts(gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/analytics/forecast/snapshot", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("snapshot run failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.POST("/v1/analytics/forecast/snapshot", h.SnapshotForecasts)

		uc.EXPECT().SnapshotForecasts(gomock.Any()).Return(errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/analytics/forecast/snapshot", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("lists snapshots of the requested type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/analytics/forecast/snapshots", h.ForecastSnapshots)

		uc.EXPECT().ForecastSnapshots(gomock.Any(), entities.ForecastQuarterly).Return([]entities.ForecastSnapshot{
			{ID: "fs-1", Period: "2026-Q3", Type: entities.ForecastQuarterly,
				ExpectedRevenue: decimal.NewFromInt(4000)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/forecast/snapshots?type=quarterly", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 1 || resp[0]["period"] != "2026-Q3" || resp[0]["expected_revenue"] != "4000" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("defaults to monthly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/analytics/forecast/snapshots", h.ForecastSnapshots)

		uc.EXPECT().ForecastSnapshots(gomock.Any(), entities.ForecastMonthly).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/forecast/snapshots", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown type maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/analytics/forecast/snapshots", h.ForecastSnapshots)

		uc.EXPECT().ForecastSnapshots(gomock.Any(), entities.ForecastType("weekly")).Return(nil, usecase.ErrUnknownForecastType)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/forecast/snapshots?type=weekly", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAnalyticsHandler_Recommendations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/deals/:id/recommendations", h.Recommendations)

		uc.EXPECT().Recommendations(gomock.Any(), "missing").Return(nil, usecase.ErrDealNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/deals/missing/recommendations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns advisories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/deals/:id/recommendations", h.Recommendations)

		uc.EXPECT().Recommendations(gomock.Any(), "d-1").Return([]analytics.Recommendation{
			{Severity: analytics.SeverityUrgent, Message: "Deal is overdue: expected close was 4 days ago"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/deals/d-1/recommendations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 1 || resp[0]["severity"] != "urgent" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}
