package impl

import (
	"context"
	"testing"
	"time"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	mockRepo "medifind/internal/mocks/repository"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchServiceForTest(t *testing.T) (usecase.SearchUsecase, *mockRepo.MockMedicineRepository, *mockRepo.MockStockRepository) {
	t.Helper()

	medicineRepo := mockRepo.NewMockMedicineRepository(t)
	stockRepo := mockRepo.NewMockStockRepository(t)

	service := NewSearchService(SearchServiceParams{
		MedicineRepo: medicineRepo,
		StockRepo:    stockRepo,
		Logger:       newDiscardLogger(),
	})

	return service, medicineRepo, stockRepo
}

func TestSearchService_Search_EmptyQuery(t *testing.T) {
	service, _, _ := newSearchServiceForTest(t)

	_, err := service.Search(context.Background(), &usecase.SearchInput{Query: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrMissingQuery)
}

func TestSearchService_Search_NoMedicinesMatched(t *testing.T) {
	service, medicineRepo, _ := newSearchServiceForTest(t)
	ctx := context.Background()

	medicineRepo.EXPECT().
		SearchByName(ctx, "unobtainium").
		Return([]*entity.Medicine{}, nil)

	output, err := service.Search(ctx, &usecase.SearchInput{Query: "unobtainium"})
	require.NoError(t, err)
	assert.True(t, output.NoMedicines)
	assert.Empty(t, output.Results)
}

func TestSearchService_Search_MatchedButNothingInStock(t *testing.T) {
	service, medicineRepo, stockRepo := newSearchServiceForTest(t)
	ctx := context.Background()

	medicine := &entity.Medicine{ID: uuid.New(), Name: "Paracetamol 500mg"}
	medicineRepo.EXPECT().
		SearchByName(ctx, "paracetamol").
		Return([]*entity.Medicine{medicine}, nil)

	stockRepo.EXPECT().
		FindInStockByMedicines(ctx, []uuid.UUID{medicine.ID}).
		Return([]*entity.Stock{}, nil)

	output, err := service.Search(ctx, &usecase.SearchInput{Query: "paracetamol"})
	require.NoError(t, err)
	// Catalog matches exist, so this is a zero-count result, not the
	// no-medicines outcome.
	assert.False(t, output.NoMedicines)
	assert.Equal(t, 0, output.Count)
	assert.Empty(t, output.Results)
}

func TestSearchService_Search_BuildsResults(t *testing.T) {
	service, medicineRepo, stockRepo := newSearchServiceForTest(t)
	ctx := context.Background()

	medicine := &entity.Medicine{ID: uuid.New(), Name: "Paracetamol 500mg", Brand: "Panadol"}
	medicineRepo.EXPECT().
		SearchByName(ctx, "para").
		Return([]*entity.Medicine{medicine}, nil)

	verifier := &entity.User{ID: uuid.New(), Name: "Nimal"}
	verifiedAt := time.Now().Add(-time.Hour)
	price := 120.0
	pharmacy := &entity.Pharmacy{
		ID:        uuid.New(),
		Name:      "City Health Colombo",
		Latitude:  6.9061,
		Longitude: 79.8519,
		Verified:  true,
	}
	stock := &entity.Stock{
		ID:                uuid.New(),
		PharmacyID:        pharmacy.ID,
		MedicineID:        medicine.ID,
		Pharmacy:          pharmacy,
		Medicine:          medicine,
		Quantity:          10,
		Price:             &price,
		InStock:           true,
		Status:            entity.StatusInStock,
		VerificationCount: 3,
		LastUpdatedBy:     &verifier.ID,
		LastUpdatedAt:     &verifiedAt,
		Verifier:          verifier,
	}

	// A row whose pharmacy has been deleted must be dropped, not served
	// half-empty.
	orphan := &entity.Stock{
		ID:         uuid.New(),
		MedicineID: medicine.ID,
		Medicine:   medicine,
		InStock:    true,
	}

	stockRepo.EXPECT().
		FindInStockByMedicines(ctx, []uuid.UUID{medicine.ID}).
		Return([]*entity.Stock{stock, orphan}, nil)

	output, err := service.Search(ctx, &usecase.SearchInput{Query: "para"})
	require.NoError(t, err)
	assert.Equal(t, 1, output.Count)
	require.Len(t, output.Results, 1)

	result := output.Results[0]
	assert.Equal(t, stock.ID, result.ID)
	assert.Equal(t, "City Health Colombo", result.Pharmacy.Name)
	assert.Equal(t, "Panadol", result.Medicine.Brand)
	require.NotNil(t, result.LastUpdatedBy)
	assert.Equal(t, "Nimal", *result.LastUpdatedBy)
	assert.Equal(t, 3, result.VerificationCount)
	assert.Nil(t, result.DistanceKm)
}

func TestSearchService_Search_DistanceAnnotation(t *testing.T) {
	service, medicineRepo, stockRepo := newSearchServiceForTest(t)
	ctx := context.Background()

	medicine := &entity.Medicine{ID: uuid.New(), Name: "Paracetamol 500mg"}
	medicineRepo.EXPECT().
		SearchByName(ctx, "para").
		Return([]*entity.Medicine{medicine}, nil)

	pharmacy := &entity.Pharmacy{
		ID:        uuid.New(),
		Name:      "City Health Colombo",
		Latitude:  6.9061,
		Longitude: 79.8519,
	}
	stock := &entity.Stock{
		ID:         uuid.New(),
		PharmacyID: pharmacy.ID,
		MedicineID: medicine.ID,
		Pharmacy:   pharmacy,
		Medicine:   medicine,
		InStock:    true,
		Status:     entity.StatusInStock,
	}
	stockRepo.EXPECT().
		FindInStockByMedicines(ctx, []uuid.UUID{medicine.ID}).
		Return([]*entity.Stock{stock}, nil)

	lat := 6.9061
	lng := 79.8519
	output, err := service.Search(ctx, &usecase.SearchInput{Query: "para", Latitude: &lat, Longitude: &lng})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)
	require.NotNil(t, output.Results[0].DistanceKm)
	// Caller standing at the pharmacy door.
	assert.InDelta(t, 0.0, *output.Results[0].DistanceKm, 0.01)
}

func TestSearchService_Search_MissingCoordinateSkipsDistance(t *testing.T) {
	service, medicineRepo, stockRepo := newSearchServiceForTest(t)
	ctx := context.Background()

	medicine := &entity.Medicine{ID: uuid.New(), Name: "Paracetamol 500mg"}
	medicineRepo.EXPECT().
		SearchByName(ctx, "para").
		Return([]*entity.Medicine{medicine}, nil)

	stock := &entity.Stock{
		ID:         uuid.New(),
		MedicineID: medicine.ID,
		Pharmacy:   &entity.Pharmacy{ID: uuid.New()},
		Medicine:   medicine,
		InStock:    true,
	}
	stockRepo.EXPECT().
		FindInStockByMedicines(ctx, []uuid.UUID{medicine.ID}).
		Return([]*entity.Stock{stock}, nil)

	lat := 6.9061
	output, err := service.Search(ctx, &usecase.SearchInput{Query: "para", Latitude: &lat})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)
	assert.Nil(t, output.Results[0].DistanceKm)
}
