package routerepo

import (
	"context"
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/route"
	"supplyline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Add saves a new route with its stops to the database.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing route and its stop state to the database.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a route by ID with its stops in order.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("stop_order") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDraftForDate retrieves every Draft route running on the given day.
func (r *GormRouteRepository) GetAllDraftForDate(ctx context.Context, date time.Time) ([]*route.Route, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	return r.getAll(ctx,
		"status = ? AND active AND delivery_date >= ? AND delivery_date < ?",
		int(route.StatusDraft), dayStart, dayEnd)
}

// GetAllInProgress retrieves every route currently being driven.
func (r *GormRouteRepository) GetAllInProgress(ctx context.Context) ([]*route.Route, error) {
	return r.getAll(ctx, "status = ? AND active", int(route.StatusInProgress))
}

func (r *GormRouteRepository) getAll(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]*route.Route, error) {
	var dtos []RouteDTO
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("stop_order") }).
		Order("delivery_date").
		Find(&dtos, append([]interface{}{query}, args...)...).Error
	if err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		routes = append(routes, aggregate)
	}

	return routes, nil
}
