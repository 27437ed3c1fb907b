package postgres

import (
	"context"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pharmacyRepository implements the repository.PharmacyRepository interface.
type pharmacyRepository struct {
	db *gorm.DB
}

// NewPharmacyRepository is the constructor for pharmacyRepository.
func NewPharmacyRepository(db *gorm.DB) repository.PharmacyRepository {
	return &pharmacyRepository{
		db: db,
	}
}

// FindByID retrieves a single pharmacy by its unique ID.
func (repo *pharmacyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error) {
	var pharmacyM model.PharmacyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pharmacyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to find pharmacy by id")
	}

	return toPharmacyDomain(&pharmacyM), nil
}

// FindAll retrieves every pharmacy, ordered by name ascending.
func (repo *pharmacyRepository) FindAll(ctx context.Context) ([]*entity.Pharmacy, error) {
	var pharmacyModels []*model.PharmacyModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&pharmacyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pharmacies")
	}

	pharmacies := make([]*entity.Pharmacy, 0, len(pharmacyModels))
	for _, pharmacyM := range pharmacyModels {
		pharmacies = append(pharmacies, toPharmacyDomain(pharmacyM))
	}

	return pharmacies, nil
}

// Create persists a new pharmacy.
func (repo *pharmacyRepository) Create(ctx context.Context, pharmacy *entity.Pharmacy) error {
	pharmacyM := fromPharmacyDomain(pharmacy)

	if err := repo.db.WithContext(ctx).Create(pharmacyM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required pharmacy information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pharmacy")
	}

	pharmacy.ID = pharmacyM.ID
	pharmacy.CreatedAt = pharmacyM.CreatedAt
	pharmacy.UpdatedAt = pharmacyM.UpdatedAt

	return nil
}

// Update modifies an existing pharmacy.
func (repo *pharmacyRepository) Update(ctx context.Context, pharmacy *entity.Pharmacy) error {
	pharmacyM := fromPharmacyDomain(pharmacy)

	if err := repo.db.WithContext(ctx).Save(pharmacyM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update pharmacy")
	}

	pharmacy.UpdatedAt = pharmacyM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toPharmacyDomain converts a GORM PharmacyModel to a domain Pharmacy entity.
func toPharmacyDomain(data *model.PharmacyModel) *entity.Pharmacy {
	if data == nil {
		return nil
	}

	return &entity.Pharmacy{
		ID:            data.ID,
		Name:          data.Name,
		Address:       data.Address,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		ContactNumber: data.ContactNumber,
		Verified:      data.Verified,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromPharmacyDomain converts a domain Pharmacy entity to a GORM PharmacyModel.
func fromPharmacyDomain(data *entity.Pharmacy) *model.PharmacyModel {
	if data == nil {
		return nil
	}

	return &model.PharmacyModel{
		ID:            data.ID,
		Name:          data.Name,
		Address:       data.Address,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		ContactNumber: data.ContactNumber,
		Verified:      data.Verified,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
