package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new shipping address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.ShippingAddress) error {
	m := fromAddressDomain(address)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = m.ID
	address.CreatedAt = m.CreatedAt
	address.UpdatedAt = m.UpdatedAt

	return nil
}

// FindAddressByID retrieves a single address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.ShippingAddress, error) {
	var m model.ShippingAddressModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&m), nil
}

// FindAddressesByShopper returns the shopper's saved addresses, oldest first.
func (repo *addressRepository) FindAddressesByShopper(ctx context.Context, shopperID uuid.UUID) ([]*entity.ShippingAddress, error) {
	var models []*model.ShippingAddressModel
	if err := repo.db.WithContext(ctx).
		Where("shopper_id = ?", shopperID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list addresses")
	}

	addresses := make([]*entity.ShippingAddress, 0, len(models))
	for _, m := range models {
		addresses = append(addresses, toAddressDomain(m))
	}

	return addresses, nil
}

// UpdateAddress overwrites an existing address.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.ShippingAddress) error {
	m := fromAddressDomain(address)
	result := repo.db.WithContext(ctx).
		Model(&model.ShippingAddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"recipient_name": m.RecipientName,
			"phone_number":   m.PhoneNumber,
			"street":         m.Street,
			"city":           m.City,
			"state":          m.State,
			"zip":            m.Zip,
			"category":       m.Category,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddress removes an address by its unique ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ShippingAddressModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// CountAddressesByShopper reports how many addresses the shopper has saved.
func (repo *addressRepository) CountAddressesByShopper(ctx context.Context, shopperID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ShippingAddressModel{}).
		Where("shopper_id = ?", shopperID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count addresses")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM ShippingAddressModel to a domain entity.
func toAddressDomain(data *model.ShippingAddressModel) *entity.ShippingAddress {
	if data == nil {
		return nil
	}

	return &entity.ShippingAddress{
		ID:            data.ID,
		ShopperID:     data.ShopperID,
		RecipientName: data.RecipientName,
		PhoneNumber:   data.PhoneNumber,
		Street:        data.Street,
		City:          data.City,
		State:         data.State,
		Zip:           data.Zip,
		Category:      entity.AddressCategory(data.Category),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain entity to a GORM model for persistence.
func fromAddressDomain(data *entity.ShippingAddress) *model.ShippingAddressModel {
	if data == nil {
		return nil
	}

	return &model.ShippingAddressModel{
		ID:            data.ID,
		ShopperID:     data.ShopperID,
		RecipientName: data.RecipientName,
		PhoneNumber:   data.PhoneNumber,
		Street:        data.Street,
		City:          data.City,
		State:         data.State,
		Zip:           data.Zip,
		Category:      string(data.Category),
	}
}
