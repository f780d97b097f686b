package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists a new order with its frozen item and address snapshots.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	m, err := fromOrderDomain(order)
	if err != nil {
		return errors.Wrap(err, "failed to encode order snapshot")
	}

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = m.ID

	return nil
}

// FindOrdersByShopper returns the shopper's orders, newest first.
func (repo *orderRepository) FindOrdersByShopper(ctx context.Context, shopperID uuid.UUID) ([]*entity.Order, error) {
	var models []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("shopper_id = ?", shopperID).
		Order("ordered_at DESC").
		Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(models))
	for _, m := range models {
		order, err := toOrderDomain(m)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode order snapshot")
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// FindOrderByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var m model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&m)
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	var items []entity.CartLine
	if err := json.Unmarshal(data.Items, &items); err != nil {
		return nil, err
	}

	var address entity.ShippingAddress
	if err := json.Unmarshal(data.ShippingAddress, &address); err != nil {
		return nil, err
	}

	return &entity.Order{
		ID:              data.ID,
		ShopperID:       data.ShopperID,
		Items:           items,
		ShippingAddress: address,
		Status:          entity.OrderStatus(data.Status),
		PaymentMethod:   entity.PaymentMethod(data.PaymentMethod),
		DeliveryOption:  entity.DeliveryOptionID(data.DeliveryOption),
		TotalAmount:     data.TotalAmount,
		OrderedAt:       data.OrderedAt,
	}, nil
}

// fromOrderDomain converts a domain Order entity to a GORM model for persistence.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	items, err := json.Marshal(data.Items)
	if err != nil {
		return nil, err
	}

	address, err := json.Marshal(data.ShippingAddress)
	if err != nil {
		return nil, err
	}

	return &model.OrderModel{
		ID:              data.ID,
		ShopperID:       data.ShopperID,
		Items:           datatypes.JSON(items),
		ShippingAddress: datatypes.JSON(address),
		Status:          string(data.Status),
		PaymentMethod:   string(data.PaymentMethod),
		DeliveryOption:  string(data.DeliveryOption),
		TotalAmount:     data.TotalAmount,
		OrderedAt:       data.OrderedAt,
	}, nil
}
