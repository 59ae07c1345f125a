package orderrepo

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
// Orders and their items are written together; reads always load the full
// aggregate.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order aggregate to the database, assigning identifiers to
// the order and every item.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.AssignID(kernel.NewUUID()); err != nil {
		return err
	}
	if err := assignItemIDs(aggregate); err != nil {
		return err
	}

	orderDTO, itemDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&orderDTO).Error; err != nil {
		return err
	}
	if len(itemDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(*aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order aggregate under an optimistic version
// check. The stored revision must still match the aggregate's version;
// otherwise a version conflict error is returned and nothing changes.
// Items are rewritten as a whole to keep lines and sort order consistent.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() == nil {
		return errs.NewValueIsRequiredError("order id")
	}
	if err := assignItemIDs(aggregate); err != nil {
		return err
	}

	orderDTO, itemDTOs := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", orderDTO.ID, orderDTO.Version).
		Updates(map[string]any{
			"status":  orderDTO.Status,
			"version": orderDTO.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", orderDTO.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderID", aggregate.ID())
		}
		return errs.NewVersionConflictError("orderID", aggregate.ID())
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderDTO.ID).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}
	if len(itemDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(*aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items in insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	itemDTOs, err := r.loadItems(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs)
}

// GetAllByCustomer retrieves every order placed by the given customer,
// newest first.
func (r *GormOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(ctx, dtos)
}

// GetAll retrieves every order, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(ctx, dtos)
}

// GetAllPendingCreatedBefore retrieves pending orders created strictly
// before the cutoff, oldest first.
func (r *GormOrderRepository) GetAllPendingCreatedBefore(
	ctx context.Context, cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "status = ? AND created_at < ?", order.Pending.String(), cutoff).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(ctx, dtos)
}

func (r *GormOrderRepository) loadItems(ctx context.Context, orderID any) ([]OrderItemDTO, error) {
	var itemDTOs []OrderItemDTO
	err := r.db.WithContext(ctx).
		Order("sort_order").
		Find(&itemDTOs, "order_id = ?", orderID).Error
	if err != nil {
		return nil, err
	}

	return itemDTOs, nil
}

func (r *GormOrderRepository) toDomainAll(ctx context.Context, dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		itemDTOs, err := r.loadItems(ctx, dto.ID)
		if err != nil {
			return nil, err
		}
		o, err := toDomain(dto, itemDTOs)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// assignItemIDs gives identifiers to items that were added since the last
// save. Items restored from storage already carry theirs.
func assignItemIDs(aggregate *order.Order) error {
	for _, item := range aggregate.Items() {
		if item.ID() != nil {
			continue
		}
		if err := item.AssignID(kernel.NewUUID()); err != nil {
			return err
		}
	}

	return nil
}
