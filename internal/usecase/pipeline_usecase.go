package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pipecrm/internal/domain/entities"
	"pipecrm/internal/usecase/interfaces"
)

var (
	ErrDealNotFound        = errors.New("deal not found")
	ErrDealConflict        = errors.New("deal was modified concurrently")
	ErrInvalidDealID       = errors.New("invalid deal id")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidDealTitle    = errors.New("invalid deal title")
	ErrInvalidDealValue    = errors.New("deal value must not be negative")
	ErrUnknownStage        = errors.New("unknown pipeline stage")
	ErrInvalidProbability  = errors.New("probability must be between 0 and 100")
	ErrInconsistentHistory = errors.New("stage history does not match current deal stage")
)

// CreateDealInput carries everything needed to open a deal. Stage defaults
// to Lead and probability to the stage default when left unset.
type CreateDealInput struct {
	CustomerID    string
	OwnerID       string
	Title         string
	Value         decimal.Decimal
	Stage         entities.Stage
	Probability   *int
	ExpectedClose *time.Time
	Notes         string
}

// MoveStageInput describes one stage transition request. Probability, when
// set, overrides the stage's advisory default.
type MoveStageInput struct {
	DealID      string
	NewStage    entities.Stage
	Actor       string
	Notes       string
	Probability *int
}

// IPipelineUseCase exposes deal lifecycle operations: the CRUD subset needed
// to feed the analytics engine, plus the stage-transition state machine.

type IPipelineUseCase interface {
	CreateDeal(ctx context.Context, in CreateDealInput) (entities.Deal, error)
	GetDeal(ctx context.Context, id string) (entities.Deal, error)
	ListDeals(ctx context.Context, filter interfaces.DealFilter) ([]entities.Deal, error)
	MoveStage(ctx context.Context, in MoveStageInput) (entities.Deal, error)
	History(ctx context.Context, dealID string) ([]entities.StageTransition, error)
}

type PipelineUseCase struct {
	deals       interfaces.IDealRepository
	transitions interfaces.IStageTransitionRepository
	logger      *zap.Logger
	now         func() time.Time
}

var _ IPipelineUseCase = (*PipelineUseCase)(nil)

func NewPipelineUseCase(deals interfaces.IDealRepository, transitions interfaces.IStageTransitionRepository, logger *zap.Logger) *PipelineUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PipelineUseCase{
		deals:       deals,
		transitions: transitions,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (u *PipelineUseCase) WithClock(now func() time.Time) *PipelineUseCase {
	u.now = now
	return u
}

func (u *PipelineUseCase) CreateDeal(ctx context.Context, in CreateDealInput) (entities.Deal, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.Title = strings.TrimSpace(in.Title)
	if in.CustomerID == "" {
		return entities.Deal{}, ErrInvalidCustomerID
	}
	if in.Title == "" {
		return entities.Deal{}, ErrInvalidDealTitle
	}
	if in.Value.IsNegative() {
		return entities.Deal{}, ErrInvalidDealValue
	}

	stage := in.Stage
	if stage == "" {
		stage = entities.StageLead
	}
	if !stage.Valid() {
		return entities.Deal{}, ErrUnknownStage
	}

	probability := stage.DefaultProbability(0)
	if in.Probability != nil {
		if *in.Probability < 0 || *in.Probability > 100 {
			return entities.Deal{}, ErrInvalidProbability
		}
		probability = *in.Probability
	}

	now := u.now().UTC()
	d := entities.Deal{
		ID:            uuid.NewString(),
		CustomerID:    in.CustomerID,
		OwnerID:       strings.TrimSpace(in.OwnerID),
		Title:         in.Title,
		Value:         in.Value,
		Stage:         stage,
		Probability:   probability,
		Status:        entities.StatusForStage(stage),
		ExpectedClose: in.ExpectedClose,
		CreatedAt:     now,
		UpdatedAt:     now,
		Version:       1,
		Notes:         in.Notes,
	}
	return u.deals.Create(ctx, d)
}

func (u *PipelineUseCase) GetDeal(ctx context.Context, id string) (entities.Deal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deal{}, ErrInvalidDealID
	}

	d, err := u.deals.GetByID(ctx, id)
	if err != nil {
		return entities.Deal{}, err
	}
	if d.ID == "" {
		return entities.Deal{}, ErrDealNotFound
	}
	return d, nil
}

func (u *PipelineUseCase) ListDeals(ctx context.Context, filter interfaces.DealFilter) ([]entities.Deal, error) {
	return u.deals.List(ctx, filter)
}

// MoveStage advances (or rewinds) a deal through the funnel. Funnel ordering
// is advisory, so any stage may be the target. Moving a deal to the stage it
// is already in is a no-op: no transition is logged and the deal is returned
// untouched.
//
// On a real transition the deal's probability is reset to the stage default
// unless the caller supplied an override, the status is re-derived from the
// stage, ClosedAt is maintained, and a StageTransition is appended. The
// write is conditional on the deal's version so that two actors racing on
// the same deal cannot both win.
func (u *PipelineUseCase) MoveStage(ctx context.Context, in MoveStageInput) (entities.Deal, error) {
	in.DealID = strings.TrimSpace(in.DealID)
	if in.DealID == "" {
		return entities.Deal{}, ErrInvalidDealID
	}
	if !in.NewStage.Valid() {
		return entities.Deal{}, ErrUnknownStage
	}
	if in.Probability != nil && (*in.Probability < 0 || *in.Probability > 100) {
		return entities.Deal{}, ErrInvalidProbability
	}

	deal, err := u.deals.GetByID(ctx, in.DealID)
	if err != nil {
		return entities.Deal{}, err
	}
	if deal.ID == "" {
		return entities.Deal{}, ErrDealNotFound
	}

	if deal.Stage == in.NewStage {
		return deal, nil
	}

	history, err := u.transitions.ListByDealID(ctx, in.DealID)
	if err != nil {
		return entities.Deal{}, err
	}
	if len(history) > 0 {
		last := history[len(history)-1]
		if last.ToStage != deal.Stage {
			u.logger.Error("stage history out of sync",
				zap.String("deal_id", deal.ID),
				zap.String("deal_stage", string(deal.Stage)),
				zap.String("last_to_stage", string(last.ToStage)))
			return entities.Deal{}, ErrInconsistentHistory
		}
	}

	now := u.now().UTC()
	fromStage := deal.Stage
	expectedVersion := deal.Version

	deal.Stage = in.NewStage
	if in.Probability != nil {
		deal.Probability = *in.Probability
	} else {
		deal.Probability = in.NewStage.DefaultProbability(deal.Probability)
	}
	deal.Status = entities.StatusForStage(in.NewStage)
	switch deal.Status {
	case entities.DealStatusWon, entities.DealStatusLost:
		deal.ClosedAt = &now
	default:
		deal.ClosedAt = nil
	}
	deal.UpdatedAt = now
	deal.Version = expectedVersion + 1

	updated, err := u.deals.UpdateStage(ctx, deal, expectedVersion)
	if err != nil {
		return entities.Deal{}, err
	}
	if updated.ID == "" {
		u.logger.Warn("lost stage-transition race",
			zap.String("deal_id", deal.ID),
			zap.Int64("expected_version", expectedVersion))
		return entities.Deal{}, ErrDealConflict
	}

	_, err = u.transitions.Create(ctx, entities.StageTransition{
		ID:        uuid.NewString(),
		DealID:    deal.ID,
		FromStage: fromStage,
		ToStage:   in.NewStage,
		ChangedBy: strings.TrimSpace(in.Actor),
		ChangedAt: now,
		Notes:     in.Notes,
	})
	if err != nil {
		return entities.Deal{}, err
	}

	u.logger.Info("deal moved",
		zap.String("deal_id", deal.ID),
		zap.String("from", string(fromStage)),
		zap.String("to", string(in.NewStage)))
	return updated, nil
}

func (u *PipelineUseCase) History(ctx context.Context, dealID string) ([]entities.StageTransition, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return nil, ErrInvalidDealID
	}
	return u.transitions.ListByDealID(ctx, dealID)
}
