package gormrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"pipecrm/internal/domain/entities"
)

// Row types mirror the domain entities with relational mapping concerns
// (column types, indexes) kept out of the domain package.

type dealRow struct {
	ID          string          `gorm:"type:varchar(64);primaryKey"`
	CustomerID  string          `gorm:"type:varchar(64);not null;index"`
	OwnerID     string          `gorm:"type:varchar(64);index"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Value       decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Stage       string          `gorm:"type:varchar(20);not null;index"`
	Probability int             `gorm:"not null"`
	Status      string          `gorm:"type:varchar(20);not null;index"`

	ExpectedClose *time.Time `gorm:"type:timestamptz"`
	ClosedAt      *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null;index"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null"`

	Version int64  `gorm:"not null;default:0"`
	Notes   string `gorm:"type:text"`
}

func (dealRow) TableName() string {
	return "deals"
}

type stageTransitionRow struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	DealID    string    `gorm:"type:varchar(64);not null;index:idx_transitions_deal_changed,priority:1"`
	FromStage string    `gorm:"type:varchar(20);not null"`
	ToStage   string    `gorm:"type:varchar(20);not null"`
	ChangedBy string    `gorm:"type:varchar(64)"`
	ChangedAt time.Time `gorm:"type:timestamptz;not null;index:idx_transitions_deal_changed,priority:2"`
	Notes     string    `gorm:"type:text"`
}

func (stageTransitionRow) TableName() string {
	return "stage_transitions"
}

type customerRow struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(50)"`
	Company   string    `gorm:"type:varchar(255)"`
	Status    string    `gorm:"type:varchar(20);not null;index"`
	OwnerID   string    `gorm:"type:varchar(64);index"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;index"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (customerRow) TableName() string {
	return "customers"
}

type activityRow struct {
	ID          string     `gorm:"type:varchar(64);primaryKey"`
	DealID      string     `gorm:"type:varchar(64);not null;index"`
	Type        string     `gorm:"type:varchar(20);not null"`
	Subject     string     `gorm:"type:varchar(255)"`
	DueDate     time.Time  `gorm:"type:timestamptz;not null"`
	Completed   bool       `gorm:"not null;default:false"`
	CompletedAt *time.Time `gorm:"type:timestamptz"`
	OwnerID     string     `gorm:"type:varchar(64);index"`
	CreatedAt   time.Time  `gorm:"type:timestamptz;not null;index"`
}

func (activityRow) TableName() string {
	return "activities"
}

type forecastSnapshotRow struct {
	ID               string           `gorm:"type:varchar(64);primaryKey"`
	Period           string           `gorm:"type:varchar(10);not null;uniqueIndex:idx_forecasts_period_type,priority:1"`
	Type             string           `gorm:"type:varchar(10);not null;uniqueIndex:idx_forecasts_period_type,priority:2"`
	TotalPipeline    decimal.Decimal  `gorm:"type:numeric(20,2);not null"`
	WeightedPipeline decimal.Decimal  `gorm:"type:numeric(20,2);not null"`
	ExpectedRevenue  decimal.Decimal  `gorm:"type:numeric(20,2);not null"`
	ActualRevenue    *decimal.Decimal `gorm:"type:numeric(20,2)"`
	CreatedAt        time.Time        `gorm:"type:timestamptz;not null"`
	UpdatedAt        time.Time        `gorm:"type:timestamptz;not null"`
}

func (forecastSnapshotRow) TableName() string {
	return "forecast_snapshots"
}

func toDealRow(d entities.Deal) dealRow {
	return dealRow{
		ID:            d.ID,
		CustomerID:    d.CustomerID,
		OwnerID:       d.OwnerID,
		Title:         d.Title,
		Value:         d.Value,
		Stage:         string(d.Stage),
		Probability:   d.Probability,
		Status:        string(d.Status),
		ExpectedClose: d.ExpectedClose,
		ClosedAt:      d.ClosedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		Version:       d.Version,
		Notes:         d.Notes,
	}
}

func (r dealRow) toEntity() entities.Deal {
	return entities.Deal{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		OwnerID:       r.OwnerID,
		Title:         r.Title,
		Value:         r.Value,
		Stage:         entities.Stage(r.Stage),
		Probability:   r.Probability,
		Status:        entities.DealStatus(r.Status),
		ExpectedClose: r.ExpectedClose,
		ClosedAt:      r.ClosedAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Version:       r.Version,
		Notes:         r.Notes,
	}
}

func toStageTransitionRow(tr entities.StageTransition) stageTransitionRow {
	return stageTransitionRow{
		ID:        tr.ID,
		DealID:    tr.DealID,
		FromStage: string(tr.FromStage),
		ToStage:   string(tr.ToStage),
		ChangedBy: tr.ChangedBy,
		ChangedAt: tr.ChangedAt,
		Notes:     tr.Notes,
	}
}

func (r stageTransitionRow) toEntity() entities.StageTransition {
	return entities.StageTransition{
		ID:        r.ID,
		DealID:    r.DealID,
		FromStage: entities.Stage(r.FromStage),
		ToStage:   entities.Stage(r.ToStage),
		ChangedBy: r.ChangedBy,
		ChangedAt: r.ChangedAt,
		Notes:     r.Notes,
	}
}

func (r customerRow) toEntity() entities.Customer {
	return entities.Customer{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		Status:    entities.CustomerStatus(r.Status),
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r activityRow) toEntity() entities.Activity {
	return entities.Activity{
		ID:          r.ID,
		DealID:      r.DealID,
		Type:        entities.ActivityType(r.Type),
		Subject:     r.Subject,
		DueDate:     r.DueDate,
		Completed:   r.Completed,
		CompletedAt: r.CompletedAt,
		OwnerID:     r.OwnerID,
		CreatedAt:   r.CreatedAt,
	}
}

func toForecastSnapshotRow(fs entities.ForecastSnapshot) forecastSnapshotRow {
	return forecastSnapshotRow{
		ID:               fs.ID,
		Period:           fs.Period,
		Type:             string(fs.Type),
		TotalPipeline:    fs.TotalPipeline,
		WeightedPipeline: fs.WeightedPipeline,
		ExpectedRevenue:  fs.ExpectedRevenue,
		ActualRevenue:    fs.ActualRevenue,
		CreatedAt:        fs.CreatedAt,
		UpdatedAt:        fs.UpdatedAt,
	}
}

func (r forecastSnapshotRow) toEntity() entities.ForecastSnapshot {
	return entities.ForecastSnapshot{
		ID:               r.ID,
		Period:           r.Period,
		Type:             entities.ForecastType(r.Type),
		TotalPipeline:    r.TotalPipeline,
		WeightedPipeline: r.WeightedPipeline,
		ExpectedRevenue:  r.ExpectedRevenue,
		ActualRevenue:    r.ActualRevenue,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
