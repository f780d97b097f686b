package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// shopperRepository implements the repository.ShopperRepository interface using GORM.
type shopperRepository struct {
	db *gorm.DB
}

// NewShopperRepository is the constructor for shopperRepository.
func NewShopperRepository(db *gorm.DB) repository.ShopperRepository {
	return &shopperRepository{db: db}
}

// CreateShopper persists a new account. A duplicate email surfaces as
// repository.ErrEmailTaken.
func (repo *shopperRepository) CreateShopper(ctx context.Context, shopper *entity.Shopper) error {
	m := fromShopperDomain(shopper)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shopper")
	}

	shopper.ID = m.ID
	shopper.CreatedAt = m.CreatedAt
	shopper.UpdatedAt = m.UpdatedAt

	return nil
}

// FindShopperByEmail retrieves a single account by email address.
func (repo *shopperRepository) FindShopperByEmail(ctx context.Context, email string) (*entity.Shopper, error) {
	var m model.ShopperModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopperNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopper by email")
	}

	return toShopperDomain(&m), nil
}

// FindShopperByID retrieves a single account by its unique ID.
func (repo *shopperRepository) FindShopperByID(ctx context.Context, id uuid.UUID) (*entity.Shopper, error) {
	var m model.ShopperModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopperNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopper by id")
	}

	return toShopperDomain(&m), nil
}

// SaveDeviceToken records the push notification token for the account.
func (repo *shopperRepository) SaveDeviceToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopperModel{}).
		Where("id = ?", id).
		Update("device_token", token)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save device token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopperNotFound
	}

	return nil
}

// isUniqueConstraintViolation reports whether err is a duplicate key error.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// pgx surfaces SQLSTATE 23505 for unique_violation.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "23505")
}

// --- Mapper Functions ---

// toShopperDomain converts a GORM ShopperModel to a domain Shopper entity.
func toShopperDomain(data *model.ShopperModel) *entity.Shopper {
	if data == nil {
		return nil
	}

	return &entity.Shopper{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		DeviceToken:  data.DeviceToken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromShopperDomain converts a domain Shopper entity to a GORM model for persistence.
func fromShopperDomain(data *entity.Shopper) *model.ShopperModel {
	if data == nil {
		return nil
	}

	return &model.ShopperModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		DeviceToken:  data.DeviceToken,
	}
}
