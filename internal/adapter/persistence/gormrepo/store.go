package gormrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pipecrm/internal/domain/entities"
	"pipecrm/internal/usecase/interfaces"
)

// Store is the relational side of persistence. Each aggregate gets its own
// repository view over the shared *gorm.DB so the repository interfaces keep
// their natural method names.

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates every table the store owns.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&dealRow{},
		&stageTransitionRow{},
		&customerRow{},
		&activityRow{},
		&forecastSnapshotRow{},
	)
}

func (s *Store) Deals() *DealStore                  { return &DealStore{db: s.db} }
func (s *Store) Transitions() *StageTransitionStore { return &StageTransitionStore{db: s.db} }
func (s *Store) Customers() *CustomerStore          { return &CustomerStore{db: s.db} }
func (s *Store) Activities() *ActivityStore         { return &ActivityStore{db: s.db} }
func (s *Store) Forecasts() *ForecastStore          { return &ForecastStore{db: s.db} }

// --- deals -----------------------------------------------------------------

type DealStore struct {
	db *gorm.DB
}

var _ interfaces.IDealRepository = (*DealStore)(nil)

func (s *DealStore) Create(ctx context.Context, d entities.Deal) (entities.Deal, error) {
	row := toDealRow(d)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Deal{}, err
	}
	return row.toEntity(), nil
}

func (s *DealStore) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	var row dealRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Deal{}, nil
	}
	if err != nil {
		return entities.Deal{}, err
	}
	return row.toEntity(), nil
}

func (s *DealStore) List(ctx context.Context, filter interfaces.DealFilter) ([]entities.Deal, error) {
	query := s.db.WithContext(ctx).Model(&dealRow{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Stage != nil {
		query = query.Where("stage = ?", string(*filter.Stage))
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}

	var rows []dealRow
	if err := query.Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	deals := make([]entities.Deal, 0, len(rows))
	for _, row := range rows {
		deals = append(deals, row.toEntity())
	}
	return deals, nil
}

// UpdateStage only applies when the stored version still matches. A zero-value
// Deal with a nil error signals the lost race to the caller.
func (s *DealStore) UpdateStage(ctx context.Context, d entities.Deal, expectedVersion int64) (entities.Deal, error) {
	res := s.db.WithContext(ctx).
		Model(&dealRow{}).
		Where("id = ? AND version = ?", d.ID, expectedVersion).
		Updates(map[string]any{
			"stage":       string(d.Stage),
			"status":      string(d.Status),
			"probability": d.Probability,
			"closed_at":   d.ClosedAt,
			"updated_at":  d.UpdatedAt,
			"version":     d.Version,
		})
	if res.Error != nil {
		return entities.Deal{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Deal{}, nil
	}
	return d, nil
}

// --- stage transitions -----------------------------------------------------

type StageTransitionStore struct {
	db *gorm.DB
}

var _ interfaces.IStageTransitionRepository = (*StageTransitionStore)(nil)

func (s *StageTransitionStore) Create(ctx context.Context, tr entities.StageTransition) (entities.StageTransition, error) {
	row := toStageTransitionRow(tr)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.StageTransition{}, err
	}
	return row.toEntity(), nil
}

func (s *StageTransitionStore) ListByDealID(ctx context.Context, dealID string) ([]entities.StageTransition, error) {
	var rows []stageTransitionRow
	err := s.db.WithContext(ctx).
		Where("deal_id = ?", dealID).
		Order("changed_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return transitionEntities(rows), nil
}

func (s *StageTransitionStore) List(ctx context.Context, since *time.Time) ([]entities.StageTransition, error) {
	query := s.db.WithContext(ctx).Model(&stageTransitionRow{})
	if since != nil {
		query = query.Where("changed_at >= ?", *since)
	}
	var rows []stageTransitionRow
	if err := query.Order("changed_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	return transitionEntities(rows), nil
}

func transitionEntities(rows []stageTransitionRow) []entities.StageTransition {
	items := make([]entities.StageTransition, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

// --- customers -------------------------------------------------------------

type CustomerStore struct {
	db *gorm.DB
}

var _ interfaces.ICustomerRepository = (*CustomerStore)(nil)

func (s *CustomerStore) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	var row customerRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return row.toEntity(), nil
}

func (s *CustomerStore) List(ctx context.Context, filter interfaces.CustomerFilter) ([]entities.Customer, error) {
	query := s.db.WithContext(ctx).Model(&customerRow{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	var rows []customerRow
	if err := query.Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Customer, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// --- activities ------------------------------------------------------------

type ActivityStore struct {
	db *gorm.DB
}

var _ interfaces.IActivityRepository = (*ActivityStore)(nil)

func (s *ActivityStore) List(ctx context.Context, filter interfaces.ActivityFilter) ([]entities.Activity, error) {
	query := s.db.WithContext(ctx).Model(&activityRow{})
	if filter.DealID != "" {
		query = query.Where("deal_id = ?", filter.DealID)
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	var rows []activityRow
	if err := query.Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Activity, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// --- forecast snapshots ----------------------------------------------------

type ForecastStore struct {
	db *gorm.DB
}

var _ interfaces.IForecastRepository = (*ForecastStore)(nil)

func (s *ForecastStore) Upsert(ctx context.Context, fs entities.ForecastSnapshot) (entities.ForecastSnapshot, error) {
	row := toForecastSnapshotRow(fs)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "period"}, {Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_pipeline", "weighted_pipeline", "expected_revenue",
				"actual_revenue", "updated_at",
			}),
		}).
		Create(&row).Error
	if err != nil {
		return entities.ForecastSnapshot{}, err
	}
	return row.toEntity(), nil
}

func (s *ForecastStore) ListByType(ctx context.Context, ft entities.ForecastType) ([]entities.ForecastSnapshot, error) {
	var rows []forecastSnapshotRow
	err := s.db.WithContext(ctx).
		Where("type = ?", string(ft)).
		Order("period").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.ForecastSnapshot, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}
