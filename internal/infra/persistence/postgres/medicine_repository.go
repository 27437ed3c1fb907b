package postgres

import (
	"context"
	"strings"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// medicineRepository implements the repository.MedicineRepository interface.
type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository is the constructor for medicineRepository.
func NewMedicineRepository(db *gorm.DB) repository.MedicineRepository {
	return &medicineRepository{
		db: db,
	}
}

// FindByID retrieves a catalog entry by its unique ID.
func (repo *medicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	var medicineM model.MedicineModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&medicineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine by ID")
	}

	return toMedicineDomain(&medicineM), nil
}

// FindAll retrieves every catalog entry, ordered by name ascending.
func (repo *medicineRepository) FindAll(ctx context.Context) ([]*entity.Medicine, error) {
	var medicineModels []*model.MedicineModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&medicineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find medicines")
	}

	medicines := make([]*entity.Medicine, 0, len(medicineModels))
	for _, medicineM := range medicineModels {
		medicines = append(medicines, toMedicineDomain(medicineM))
	}

	return medicines, nil
}

// SearchByName retrieves entries whose name contains the query anywhere,
// case-insensitively. The query is escaped so LIKE metacharacters match
// literally.
func (repo *medicineRepository) SearchByName(ctx context.Context, query string) ([]*entity.Medicine, error) {
	var medicineModels []*model.MedicineModel

	pattern := "%" + escapeLikePattern(query) + "%"
	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", pattern).
		Order("name ASC").
		Find(&medicineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search medicines by name")
	}

	medicines := make([]*entity.Medicine, 0, len(medicineModels))
	for _, medicineM := range medicineModels {
		medicines = append(medicines, toMedicineDomain(medicineM))
	}

	return medicines, nil
}

// Create persists a new catalog entry.
func (repo *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	medicineM := fromMedicineDomain(medicine)

	if err := repo.db.WithContext(ctx).Create(medicineM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "medicine already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create medicine")
	}

	medicine.ID = medicineM.ID
	medicine.CreatedAt = medicineM.CreatedAt
	medicine.UpdatedAt = medicineM.UpdatedAt

	return nil
}

// escapeLikePattern escapes the LIKE/ILIKE metacharacters so a search query
// always matches as a literal substring.
func escapeLikePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}

// --- Mapper Functions ---

// toMedicineDomain converts a GORM MedicineModel to a domain Medicine entity.
func toMedicineDomain(data *model.MedicineModel) *entity.Medicine {
	if data == nil {
		return nil
	}

	return &entity.Medicine{
		ID:          data.ID,
		Name:        data.Name,
		Brand:       data.Brand,
		Category:    entity.MedicineCategory(data.Category),
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromMedicineDomain converts a domain Medicine entity to a GORM MedicineModel.
func fromMedicineDomain(data *entity.Medicine) *model.MedicineModel {
	if data == nil {
		return nil
	}

	return &model.MedicineModel{
		ID:          data.ID,
		Name:        data.Name,
		Brand:       data.Brand,
		Category:    data.Category.String(),
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
