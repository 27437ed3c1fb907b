package impl

import (
	"context"
	"testing"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	mockRepo "medifind/internal/mocks/repository"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerificationServiceForTest(t *testing.T) (usecase.VerificationUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository, *mockRepo.MockStockRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	stockRepo := mockRepo.NewMockStockRepository(t)

	service := NewVerificationService(VerificationServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return service, txManager, userRepo, stockRepo
}

func TestVerificationService_VerifyStock_InvalidStatus(t *testing.T) {
	service, _, _, _ := newVerificationServiceForTest(t)

	_, err := service.VerifyStock(context.Background(), uuid.New(), &usecase.VerifyStockInput{
		PharmacyID: uuid.New(),
		MedicineID: uuid.New(),
		Status:     entity.StockStatus("Maybe"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestVerificationService_VerifyStock_RowMissing(t *testing.T) {
	service, txManager, userRepo, stockRepo := newVerificationServiceForTest(t)
	ctx := context.Background()

	pharmacyID := uuid.New()
	medicineID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().StockRepo().Return(stockRepo)
	factory.EXPECT().UserRepo().Return(userRepo)
	passthroughTx(txManager, factory)

	stockRepo.EXPECT().
		FindByPharmacyAndMedicine(ctx, pharmacyID, medicineID).
		Return(nil, repository.ErrStockNotFound)

	_, err := service.VerifyStock(ctx, uuid.New(), &usecase.VerifyStockInput{
		PharmacyID: pharmacyID,
		MedicineID: medicineID,
		Status:     entity.StatusInStock,
	})
	assert.ErrorIs(t, err, domainerrors.ErrStockRecordNotFound)
}

func TestVerificationService_VerifyStock_Success(t *testing.T) {
	service, txManager, userRepo, stockRepo := newVerificationServiceForTest(t)
	ctx := context.Background()

	reporterID := uuid.New()
	pharmacyID := uuid.New()
	medicineID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().StockRepo().Return(stockRepo)
	factory.EXPECT().UserRepo().Return(userRepo)
	passthroughTx(txManager, factory)

	stock := &entity.Stock{
		ID:                uuid.New(),
		PharmacyID:        pharmacyID,
		MedicineID:        medicineID,
		InStock:           true,
		Status:            entity.StatusInStock,
		VerificationCount: 2,
	}
	stockRepo.EXPECT().
		FindByPharmacyAndMedicine(ctx, pharmacyID, medicineID).
		Return(stock, nil)

	stockRepo.EXPECT().
		Update(ctx, stock).
		Return(nil)

	reporter := &entity.User{ID: reporterID, Role: entity.RoleUser, Points: 40}
	userRepo.EXPECT().
		FindByID(ctx, reporterID).
		Return(reporter, nil)

	userRepo.EXPECT().
		Update(ctx, reporter).
		Return(nil)

	output, err := service.VerifyStock(ctx, reporterID, &usecase.VerifyStockInput{
		PharmacyID: pharmacyID,
		MedicineID: medicineID,
		Status:     entity.StatusOutOfStock,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusOutOfStock, output.Stock.Status)
	assert.False(t, output.Stock.InStock)
	assert.Equal(t, 3, output.Stock.VerificationCount)
	require.NotNil(t, output.Stock.LastUpdatedBy)
	assert.Equal(t, reporterID, *output.Stock.LastUpdatedBy)
	assert.NotNil(t, output.Stock.LastUpdatedAt)

	require.NotNil(t, output.Points)
	assert.Equal(t, 50, *output.Points)
}

func TestVerificationService_VerifyStock_VanishedReporterSkipsCredit(t *testing.T) {
	service, txManager, userRepo, stockRepo := newVerificationServiceForTest(t)
	ctx := context.Background()

	reporterID := uuid.New()
	pharmacyID := uuid.New()
	medicineID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().StockRepo().Return(stockRepo)
	factory.EXPECT().UserRepo().Return(userRepo)
	passthroughTx(txManager, factory)

	stock := &entity.Stock{
		ID:         uuid.New(),
		PharmacyID: pharmacyID,
		MedicineID: medicineID,
	}
	stockRepo.EXPECT().
		FindByPharmacyAndMedicine(ctx, pharmacyID, medicineID).
		Return(stock, nil)

	stockRepo.EXPECT().
		Update(ctx, stock).
		Return(nil)

	userRepo.EXPECT().
		FindByID(ctx, reporterID).
		Return(nil, repository.ErrUserNotFound)

	output, err := service.VerifyStock(ctx, reporterID, &usecase.VerifyStockInput{
		PharmacyID: pharmacyID,
		MedicineID: medicineID,
		Status:     entity.StatusInStock,
	})
	require.NoError(t, err)
	assert.Nil(t, output.Points)
	assert.NotNil(t, output.Stock)
}

func TestVerificationService_Leaderboard(t *testing.T) {
	service, _, userRepo, _ := newVerificationServiceForTest(t)
	ctx := context.Background()

	contributors := []*entity.User{
		{ID: uuid.New(), Name: "Nimal", Role: entity.RoleUser, Points: 120},
		{ID: uuid.New(), Name: "Kamala", Role: entity.RoleUser, Points: 80},
	}
	userRepo.EXPECT().
		TopContributors(ctx, entity.RoleUser, 10).
		Return(contributors, nil)

	entries, err := service.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Nimal", entries[0].Name)
	assert.Equal(t, 120, entries[0].Points)
	assert.Equal(t, "Kamala", entries[1].Name)
}
