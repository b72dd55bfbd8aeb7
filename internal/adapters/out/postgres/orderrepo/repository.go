package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// notDeleted restricts a query to rows without a deletion timestamp.
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("orders.deleted_at IS NULL")
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("orders.created_at DESC").Order("orders.id DESC")
}

// Add saves a new order. The user row is referenced, never written.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectNotFoundError("user", aggregate.User().ID().String())
		}
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}

// Update writes the mutable columns of an existing, non-deleted order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Scopes(notDeleted).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("update order: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a non-deleted order by ID with its user.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a non-deleted order and locks its row with
// SELECT ... FOR UPDATE until the surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := db.Scopes(notDeleted).Preload("User").Take(&dto, "orders.id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, fmt.Errorf("select order: %w", err)
	}

	return toDomain(dto)
}

// GetAll retrieves all non-deleted orders, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Scopes(notDeleted, newestFirst).
		Preload("User").
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}

	return toDomainList(dtos)
}

// GetAllByUser retrieves the non-deleted orders of one user, newest first.
func (r *GormOrderRepository) GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Scopes(notDeleted, newestFirst).
		Preload("User").
		Where("orders.user_id = ?", userID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("select orders by user: %w", err)
	}

	return toDomainList(dtos)
}

// SoftDelete stamps deleted_at on a non-deleted order.
func (r *GormOrderRepository) SoftDelete(ctx context.Context, id kernel.UUID, deletedAt time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Scopes(notDeleted).
		Where("id = ?", id.Bytes()).
		Update("deleted_at", deletedAt)
	if result.Error != nil {
		return fmt.Errorf("soft delete order: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

type statusCountRow struct {
	Status string
	Count  int64
}

// CountByStatus returns the number of non-deleted orders per status.
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int64, error) {
	var rows []statusCountRow
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Scopes(notDeleted).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}

	counts := make(map[order.Status]int64, len(rows))
	for _, row := range rows {
		status, parseErr := order.ParseStatus(row.Status)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[status] = row.Count
	}

	return counts, nil
}
