package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	domainRepo "github.com/tallerlab/taller-api/internal/domain/repository"
	"gorm.io/gorm"
)

type workOrderRepository struct {
	db *gorm.DB
}

// NewWorkOrderRepository creates a new work order repository
func NewWorkOrderRepository(db *gorm.DB) domainRepo.WorkOrderRepository {
	return &workOrderRepository{db: db}
}

func itemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, created_at ASC")
}

func (r *workOrderRepository) Create(ctx context.Context, order *entity.WorkOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *workOrderRepository) GetByID(ctx context.Context, id string) (*entity.WorkOrder, error) {
	var order entity.WorkOrder
	err := r.db.WithContext(ctx).Preload("Items", itemOrder).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Update replaces the order row and its entire item list in one transaction,
// so removed lines do not linger.
func (r *workOrderRepository) Update(ctx context.Context, order *entity.WorkOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&entity.WorkItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
	})
}

func (r *workOrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entity.WorkItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.WorkOrder{}, "id = ?", id).Error
	})
}

func (r *workOrderRepository) List(ctx context.Context, params *domainRepo.WorkOrderFilterParams) ([]entity.WorkOrder, int64, error) {
	var orders []entity.WorkOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.WorkOrder{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Month != "" {
		query = query.Where("date LIKE ?", params.Month+"%")
	}
	if params.Search != "" {
		query = query.Where("client_name ILIKE ? OR vehicle_plate ILIKE ? OR id ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Items", itemOrder).
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC, id DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *workOrderRepository) ListAll(ctx context.Context) ([]entity.WorkOrder, error) {
	var orders []entity.WorkOrder
	err := r.db.WithContext(ctx).Preload("Items", itemOrder).
		Order("date DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *workOrderRepository) ListByMonth(ctx context.Context, yearMonth string) ([]entity.WorkOrder, error) {
	var orders []entity.WorkOrder
	err := r.db.WithContext(ctx).Preload("Items", itemOrder).
		Where("date LIKE ?", yearMonth+"%").
		Order("date DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *workOrderRepository) MaxAssignedID(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(CAST(id AS INTEGER)), 0)
		FROM work_orders
		WHERE id ~ '^[0-9]+$'
	`).Scan(&max).Error
	return max, err
}

func (r *workOrderRepository) GetItem(ctx context.Context, orderID string, itemID uuid.UUID) (*entity.WorkItem, error) {
	var item entity.WorkItem
	err := r.db.WithContext(ctx).First(&item, "id = ? AND order_id = ?", itemID, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *workOrderRepository) SaveItem(ctx context.Context, item *entity.WorkItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *workOrderRepository) ReplaceAll(ctx context.Context, orders []entity.WorkOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.WorkItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&entity.WorkOrder{}).Error; err != nil {
			return err
		}
		if len(orders) == 0 {
			return nil
		}
		return tx.Create(&orders).Error
	})
}
