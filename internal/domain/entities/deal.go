package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stage represents a step of the sales funnel.
//
// Domain notes:
//   - Lead → Qualified → Proposal → Negotiation is the linear chain; Won, Lost
//     and On Hold branch off it as terminal/suspended states.
//   - The ordering is advisory: any stage may transition to any other stage
//     (a Won deal can be reopened as a Lead). Enforcing a strict funnel was
//     considered and deliberately left out.

type Stage string

const (
	StageLead        Stage = "Lead"
	StageQualified   Stage = "Qualified"
	StageProposal    Stage = "Proposal"
	StageNegotiation Stage = "Negotiation"
	StageWon         Stage = "Won"
	StageLost        Stage = "Lost"
	StageOnHold      Stage = "On Hold"
)

// StageOrder lists every stage in funnel order, used for sorting and for
// building zeroed per-stage maps.
var StageOrder = []Stage{
	StageLead,
	StageQualified,
	StageProposal,
	StageNegotiation,
	StageWon,
	StageLost,
	StageOnHold,
}

func (s Stage) Valid() bool {
	switch s {
	case StageLead, StageQualified, StageProposal, StageNegotiation, StageWon, StageLost, StageOnHold:
		return true
	}
	return false
}

// DefaultProbability returns the advisory win probability applied when a deal
// enters the stage. On Hold keeps whatever probability the deal already has.
func (s Stage) DefaultProbability(current int) int {
	switch s {
	case StageLead:
		return 10
	case StageQualified:
		return 25
	case StageProposal:
		return 50
	case StageNegotiation:
		return 75
	case StageWon:
		return 100
	case StageLost:
		return 0
	default:
		return current
	}
}

// DealStatus is the coarse state derived from the stage. It is never set
// independently; stage transitions keep it consistent.

type DealStatus string

const (
	DealStatusActive DealStatus = "Active"
	DealStatusWon    DealStatus = "Won"
	DealStatusLost   DealStatus = "Lost"
	DealStatusOnHold DealStatus = "On Hold"
)

// StatusForStage maps a stage to its derived status.
func StatusForStage(s Stage) DealStatus {
	switch s {
	case StageWon:
		return DealStatusWon
	case StageLost:
		return DealStatusLost
	case StageOnHold:
		return DealStatusOnHold
	default:
		return DealStatusActive
	}
}

// Deal is a sales opportunity moving through the pipeline.
//
// Monetary representation:
//   - Value and everything derived from it use decimal arithmetic; float money
//     is never stored or summed.
//
// Concurrency:
//   - Version implements the optimistic guard for stage transitions. Stores
//     only apply a stage update when the caller's expected version still
//     matches, so at most one writer wins a race on the same deal.
type Deal struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	OwnerID     string          `json:"owner_id,omitempty"`
	Title       string          `json:"title"`
	Value       decimal.Decimal `json:"value"`
	Stage       Stage           `json:"stage"`
	Probability int             `json:"probability"`
	Status      DealStatus      `json:"status"`

	ExpectedClose *time.Time `json:"expected_close,omitempty"`

	// ClosedAt is set when the deal reaches Won or Lost and cleared if it is
	// reopened. Records imported from systems without it fall back to
	// UpdatedAt in cycle-time math.
	ClosedAt *time.Time `json:"closed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Version int64  `json:"version"`
	Notes   string `json:"notes,omitempty"`
}

// WeightedValue is the risk-adjusted pipeline estimate: value scaled by the
// win probability. Always derived, never stored.
func (d Deal) WeightedValue() decimal.Decimal {
	return d.Value.Mul(decimal.NewFromInt(int64(d.Probability))).Div(decimal.NewFromInt(100))
}

// IsOverdue reports whether an active deal is past its expected close date.
func (d Deal) IsOverdue(now time.Time) bool {
	if d.ExpectedClose == nil || d.Status != DealStatusActive {
		return false
	}
	return d.ExpectedClose.Before(truncateToDay(now))
}

// AgeDays is the number of whole days the deal has existed.
func (d Deal) AgeDays(now time.Time) int {
	return wholeDays(d.CreatedAt, now)
}

// CloseTime returns the best known close timestamp for a closed deal.
func (d Deal) CloseTime() time.Time {
	if d.ClosedAt != nil {
		return *d.ClosedAt
	}
	return d.UpdatedAt
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func wholeDays(from, to time.Time) int {
	d := int(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
