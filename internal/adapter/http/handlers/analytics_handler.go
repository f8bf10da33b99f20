package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pipecrm/internal/adapter/http/dto/response"
	"pipecrm/internal/domain/analytics"
	"pipecrm/internal/domain/entities"
	"pipecrm/internal/usecase"
	"pipecrm/pkg"
)

// AnalyticsHandler serves the read-only aggregation endpoints: dashboard,
// pipeline report, forecasts, trends, team performance and per-deal
// recommendations.

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// Dashboard godoc
// @Summary Dashboard rollup for a trailing window
// @Tags analytics
// @Produce json
// @Param period query string false "today|week|month|quarter|year" default(month)
// @Param owner_id query string false "Scope to one owner"
// @Success 200 {object} analytics.Metrics
// @Router /v1/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	period := analytics.Period(c.DefaultQuery("period", string(analytics.PeriodMonth)))

	metrics, err := h.usecase.Dashboard(c.Request.Context(), period, c.Query("owner_id"))
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// PipelineReport godoc
// @Summary Full pipeline report
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.PipelineReport
// @Router /v1/analytics/pipeline [get]
func (h *AnalyticsHandler) PipelineReport(c *gin.Context) {
	report, err := h.usecase.PipelineReport(c.Request.Context())
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, report)
}

// Forecast godoc
// @Summary Revenue forecast for upcoming periods
// @Tags analytics
// @Produce json
// @Param type query string false "monthly|quarterly|yearly" default(monthly)
// @Param horizon query int false "Number of future periods" default(3)
// @Success 200 {array} analytics.PeriodForecast
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/analytics/forecast [get]
func (h *AnalyticsHandler) Forecast(c *gin.Context) {
	pt := analytics.PeriodType(c.DefaultQuery("type", string(analytics.PeriodMonthly)))
	horizon, err := strconv.Atoi(c.DefaultQuery("horizon", "3"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	forecast, err := h.usecase.Forecast(c.Request.Context(), pt, horizon)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// ForecastHistory godoc
// @Summary Elapsed-period forecasts with actual revenue
// @Tags analytics
// @Produce json
// @Param type query string false "monthly|quarterly|yearly" default(monthly)
// @Param periods_back query int false "Number of elapsed periods" default(3)
// @Success 200 {array} analytics.PeriodForecast
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/analytics/forecast/history [get]
func (h *AnalyticsHandler) ForecastHistory(c *gin.Context) {
	pt := analytics.PeriodType(c.DefaultQuery("type", string(analytics.PeriodMonthly)))
	periodsBack, err := strconv.Atoi(c.DefaultQuery("periods_back", "3"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	history, err := h.usecase.ForecastHistory(c.Request.Context(), pt, periodsBack)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, history)
}

// Trends godoc
// @Summary Sales trend series
// @Tags analytics
// @Produce json
// @Param type query string false "monthly|quarterly|yearly" default(monthly)
// @Param points query int false "Number of periods" default(6)
// @Success 200 {array} analytics.TrendPoint
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/analytics/trends [get]
func (h *AnalyticsHandler) Trends(c *gin.Context) {
	pt := analytics.PeriodType(c.DefaultQuery("type", string(analytics.PeriodMonthly)))
	points, err := strconv.Atoi(c.DefaultQuery("points", "6"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	trends, err := h.usecase.Trends(c.Request.Context(), pt, points)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, trends)
}

// TeamPerformance godoc
// @Summary Per-owner performance rollup
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.OwnerPerformance
// @Router /v1/analytics/team [get]
func (h *AnalyticsHandler) TeamPerformance(c *gin.Context) {
	team, err := h.usecase.TeamPerformance(c.Request.Context())
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, team)
}

// SnapshotForecasts godoc
// @Summary Recompute and persist forecast snapshots
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} pkg.HTTPError
// @Router /v1/analytics/forecast/snapshot [post]
func (h *AnalyticsHandler) SnapshotForecasts(c *gin.Context) {
	if err := h.usecase.SnapshotForecasts(c.Request.Context()); err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "forecast snapshots persisted"})
}

// ForecastSnapshots godoc
// @Summary Persisted forecast snapshots of one type
// @Tags analytics
// @Produce json
// @Param type query string false "monthly|quarterly|yearly" default(monthly)
// @Success 200 {array} response.ForecastSnapshotResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/analytics/forecast/snapshots [get]
func (h *AnalyticsHandler) ForecastSnapshots(c *gin.Context) {
	ft := entities.ForecastType(c.DefaultQuery("type", string(entities.ForecastMonthly)))

	snapshots, err := h.usecase.ForecastSnapshots(c.Request.Context(), ft)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromForecastSnapshots(snapshots))
}

// Recommendations godoc
// @Summary Next-step recommendations for one deal
// @Tags analytics
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {array} analytics.Recommendation
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/deals/{id}/recommendations [get]
func (h *AnalyticsHandler) Recommendations(c *gin.Context) {
	recs, err := h.usecase.Recommendations(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, recs)
}

func mapAnalyticsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, analytics.ErrInvalidHorizon),
		errors.Is(err, analytics.ErrUnknownPeriod),
		errors.Is(err, analytics.ErrInvalidPeriodsBack),
		errors.Is(err, analytics.ErrInvalidTrendLength),
		errors.Is(err, usecase.ErrInvalidDealID),
		errors.Is(err, usecase.ErrUnknownForecastType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDealNotFound):
		return pkg.NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
