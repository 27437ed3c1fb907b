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

// stockRepository implements the repository.StockRepository interface.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{
		db: db,
	}
}

// FindByID retrieves a single stock row by its unique ID.
func (repo *stockRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Stock, error) {
	var stockM model.StockModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&stockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock by id")
	}

	return toStockDomain(&stockM), nil
}

// FindByPharmacyAndMedicine retrieves the unique row for the pair.
func (repo *stockRepository) FindByPharmacyAndMedicine(ctx context.Context, pharmacyID, medicineID uuid.UUID) (*entity.Stock, error) {
	var stockM model.StockModel

	if err := repo.db.WithContext(ctx).
		Where("pharmacy_id = ? AND medicine_id = ?", pharmacyID, medicineID).
		First(&stockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock by pharmacy and medicine")
	}

	return toStockDomain(&stockM), nil
}

// FindByPharmacy retrieves all rows for a pharmacy, newest-updated first,
// with the medicine reference expanded.
func (repo *stockRepository) FindByPharmacy(ctx context.Context, pharmacyID uuid.UUID) ([]*entity.Stock, error) {
	var stockModels []*model.StockModel

	if err := repo.db.WithContext(ctx).
		Preload("Medicine").
		Where("pharmacy_id = ?", pharmacyID).
		Order("updated_at DESC").
		Find(&stockModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stock by pharmacy")
	}

	stocks := make([]*entity.Stock, 0, len(stockModels))
	for _, stockM := range stockModels {
		stocks = append(stocks, toStockDomain(stockM))
	}

	return stocks, nil
}

// FindInStockByMedicines retrieves all in-stock rows referencing any of the
// given medicines, with pharmacy, medicine and last verifier expanded.
// Ordering is deterministic: price ascending with unpriced rows last, then
// pharmacy name.
func (repo *stockRepository) FindInStockByMedicines(ctx context.Context, medicineIDs []uuid.UUID) ([]*entity.Stock, error) {
	if len(medicineIDs) == 0 {
		return nil, nil
	}

	var stockModels []*model.StockModel

	if err := repo.db.WithContext(ctx).
		Preload("Pharmacy").
		Preload("Medicine").
		Preload("Verifier").
		Joins("LEFT JOIN pharmacies ON pharmacies.id = stocks.pharmacy_id").
		Where("stocks.medicine_id IN ? AND stocks.in_stock = ?", medicineIDs, true).
		Order("stocks.price ASC NULLS LAST, pharmacies.name ASC").
		Find(&stockModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find in-stock rows by medicines")
	}

	stocks := make([]*entity.Stock, 0, len(stockModels))
	for _, stockM := range stockModels {
		stocks = append(stocks, toStockDomain(stockM))
	}

	return stocks, nil
}

// Create persists a new stock row.
func (repo *stockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	stockM := fromStockDomain(stock)

	if err := repo.db.WithContext(ctx).Create(stockM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStock
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid pharmacy or medicine reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create stock")
	}

	stock.ID = stockM.ID
	stock.CreatedAt = stockM.CreatedAt
	stock.UpdatedAt = stockM.UpdatedAt

	return nil
}

// Update modifies an existing stock row.
func (repo *stockRepository) Update(ctx context.Context, stock *entity.Stock) error {
	stockM := fromStockDomain(stock)

	if err := repo.db.WithContext(ctx).Save(stockM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update stock")
	}

	stock.UpdatedAt = stockM.UpdatedAt

	return nil
}

// Delete removes the row with the given ID when it belongs to the pharmacy.
func (repo *stockRepository) Delete(ctx context.Context, id, pharmacyID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND pharmacy_id = ?", id, pharmacyID).
		Delete(&model.StockModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStockNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStockDomain converts a GORM StockModel to a domain Stock entity,
// carrying over any preloaded references.
func toStockDomain(data *model.StockModel) *entity.Stock {
	if data == nil {
		return nil
	}

	return &entity.Stock{
		ID:                data.ID,
		PharmacyID:        data.PharmacyID,
		MedicineID:        data.MedicineID,
		Quantity:          data.Quantity,
		Price:             data.Price,
		InStock:           data.InStock,
		Status:            entity.StockStatus(data.Status),
		VerificationCount: data.VerificationCount,
		LastUpdatedBy:     data.LastUpdatedBy,
		LastUpdatedAt:     data.LastUpdatedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		Medicine:          toMedicineDomain(data.Medicine),
		Pharmacy:          toPharmacyDomain(data.Pharmacy),
		Verifier:          toUserDomain(data.Verifier),
	}
}

// fromStockDomain converts a domain Stock entity to a GORM StockModel.
// Expanded references are not written back; they are read-only projections.
func fromStockDomain(data *entity.Stock) *model.StockModel {
	if data == nil {
		return nil
	}

	return &model.StockModel{
		ID:                data.ID,
		PharmacyID:        data.PharmacyID,
		MedicineID:        data.MedicineID,
		Quantity:          data.Quantity,
		Price:             data.Price,
		InStock:           data.InStock,
		Status:            data.Status.String(),
		VerificationCount: data.VerificationCount,
		LastUpdatedBy:     data.LastUpdatedBy,
		LastUpdatedAt:     data.LastUpdatedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
