package impl

import (
	"context"
	"testing"

	"medifind/internal/domain/entity"
	mockRepo "medifind/internal/mocks/repository"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceForTest(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockMedicineRepository, *mockRepo.MockPharmacyRepository) {
	t.Helper()

	medicineRepo := mockRepo.NewMockMedicineRepository(t)
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		MedicineRepo: medicineRepo,
		PharmacyRepo: pharmacyRepo,
		Logger:       newDiscardLogger(),
	})

	return service, medicineRepo, pharmacyRepo
}

func TestCatalogService_ListMedicines(t *testing.T) {
	service, medicineRepo, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	medicines := []*entity.Medicine{
		{ID: uuid.New(), Name: "Amoxicillin 250mg", Brand: "Amoxil", Category: entity.CategoryCapsule},
		{ID: uuid.New(), Name: "Paracetamol 500mg", Brand: "Panadol", Category: entity.CategoryTablet},
	}
	medicineRepo.EXPECT().
		FindAll(ctx).
		Return(medicines, nil)

	views, err := service.ListMedicines(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Amoxicillin 250mg", views[0].Name)
	assert.Equal(t, entity.CategoryCapsule, views[0].Category)
}

func TestCatalogService_ListMedicines_Empty(t *testing.T) {
	service, medicineRepo, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	medicineRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Medicine{}, nil)

	views, err := service.ListMedicines(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.NotNil(t, views)
}

func TestCatalogService_ListPharmacies(t *testing.T) {
	service, _, pharmacyRepo := newCatalogServiceForTest(t)
	ctx := context.Background()

	pharmacies := []*entity.Pharmacy{
		{ID: uuid.New(), Name: "City Health Colombo", Verified: true},
		{ID: uuid.New(), Name: "Union Chemist"},
	}
	pharmacyRepo.EXPECT().
		FindAll(ctx).
		Return(pharmacies, nil)

	views, err := service.ListPharmacies(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].Verified)
	assert.Equal(t, "Union Chemist", views[1].Name)
}

func TestCatalogService_ListPharmacies_RepositoryFailure(t *testing.T) {
	service, _, pharmacyRepo := newCatalogServiceForTest(t)
	ctx := context.Background()

	pharmacyRepo.EXPECT().
		FindAll(ctx).
		Return(nil, errors.New("connection reset"))

	_, err := service.ListPharmacies(ctx)
	assert.Error(t, err)
}
