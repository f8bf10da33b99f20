package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "pipecrm/internal/adapter/http/dto/request"
	response "pipecrm/internal/adapter/http/dto/response"
	"pipecrm/internal/domain/entities"
	"pipecrm/internal/usecase"
	"pipecrm/internal/usecase/interfaces"
	"pipecrm/pkg"
)

var (
	errInvalidDealPayload = pkg.NewDomainErrorSimple("INVALID_DEAL_INPUT", "Invalid deal payload", http.StatusBadRequest)
)

// PipelineHandler handles HTTP requests for deals and stage transitions.

type PipelineHandler struct {
	usecase usecase.IPipelineUseCase
}

func NewPipelineHandler(uc usecase.IPipelineUseCase) *PipelineHandler {
	return &PipelineHandler{usecase: uc}
}

// CreateDeal godoc
// @Summary Open a deal
// @Tags deals
// @Accept json
// @Produce json
// @Param deal body request.CreateDealRequest true "Deal"
// @Success 201 {object} response.DealResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/deals [post]
func (h *PipelineHandler) CreateDeal(c *gin.Context) {
	var payload request.CreateDealRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}

	deal, err := h.usecase.CreateDeal(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDeal(deal))
}

// GetDeal godoc
// @Summary Fetch one deal
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.DealResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/deals/{id} [get]
func (h *PipelineHandler) GetDeal(c *gin.Context) {
	deal, err := h.usecase.GetDeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeal(deal))
}

// ListDeals godoc
// @Summary List deals
// @Tags deals
// @Produce json
// @Param status query string false "Deal status"
// @Param stage query string false "Pipeline stage"
// @Param owner_id query string false "Owner"
// @Success 200 {array} response.DealResponse
// @Router /v1/deals [get]
func (h *PipelineHandler) ListDeals(c *gin.Context) {
	var filter interfaces.DealFilter
	if v := c.Query("status"); v != "" {
		status := entities.DealStatus(v)
		filter.Status = &status
	}
	if v := c.Query("stage"); v != "" {
		stage := entities.Stage(v)
		filter.Stage = &stage
	}
	filter.OwnerID = c.Query("owner_id")

	deals, err := h.usecase.ListDeals(c.Request.Context(), filter)
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeals(deals))
}

// MoveStage godoc
// @Summary Move a deal to another stage
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param transition body request.MoveStageRequest true "Transition"
// @Success 200 {object} response.DealResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/deals/{id}/stage [patch]
func (h *PipelineHandler) MoveStage(c *gin.Context) {
	var payload request.MoveStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}

	deal, err := h.usecase.MoveStage(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeal(deal))
}

// History godoc
// @Summary Stage history of a deal
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {array} response.TransitionResponse
// @Router /v1/deals/{id}/history [get]
func (h *PipelineHandler) History(c *gin.Context) {
	items, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitions(items))
}

func mapPipelineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDealID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidDealTitle),
		errors.Is(err, usecase.ErrInvalidDealValue),
		errors.Is(err, usecase.ErrUnknownStage),
		errors.Is(err, usecase.ErrInvalidProbability):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDealNotFound):
		return pkg.NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDealConflict):
		return pkg.NewDomainErrorSimple("DEAL_CONFLICT", "Deal was modified concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrInconsistentHistory):
		return pkg.NewDomainErrorSimple("INCONSISTENT_HISTORY", "Stage history does not match the deal", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
