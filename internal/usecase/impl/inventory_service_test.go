package impl

import (
	"context"
	"testing"

	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	mockRepo "medifind/internal/mocks/repository"
	mockSvc "medifind/internal/mocks/service"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inventoryMocks struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	pharmacyRepo *mockRepo.MockPharmacyRepository
	medicineRepo *mockRepo.MockMedicineRepository
	stockRepo    *mockRepo.MockStockRepository
	qrService    *mockSvc.MockQRCodeService
}

func newInventoryServiceForTest(t *testing.T) (usecase.InventoryUsecase, *inventoryMocks) {
	t.Helper()

	mocks := &inventoryMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		pharmacyRepo: mockRepo.NewMockPharmacyRepository(t),
		medicineRepo: mockRepo.NewMockMedicineRepository(t),
		stockRepo:    mockRepo.NewMockStockRepository(t),
		qrService:    mockSvc.NewMockQRCodeService(t),
	}

	service := NewInventoryService(InventoryServiceParams{
		TxManager:    mocks.txManager,
		UserRepo:     mocks.userRepo,
		PharmacyRepo: mocks.pharmacyRepo,
		MedicineRepo: mocks.medicineRepo,
		StockRepo:    mocks.stockRepo,
		QRService:    mocks.qrService,
		Logger:       newDiscardLogger(),
	})

	return service, mocks
}

func ownerWithPharmacy(ownerID, pharmacyID uuid.UUID) *entity.User {
	return &entity.User{
		ID:         ownerID,
		Role:       entity.RoleOwner,
		PharmacyID: &pharmacyID,
	}
}

func TestInventoryService_RegisterPharmacy_Success(t *testing.T) {
	service, mocks := newInventoryServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(mocks.userRepo)
	factory.EXPECT().PharmacyRepo().Return(mocks.pharmacyRepo)
	passthroughTx(mocks.txManager, factory)

	owner := &entity.User{ID: ownerID, Role: entity.RoleOwner}
	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(owner, nil)

	mocks.pharmacyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Pharmacy")).
		Return(nil)

	mocks.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			require.NotNil(t, user.PharmacyID)
		}).
		Return(nil)

	view, err := service.RegisterPharmacy(ctx, ownerID, &usecase.RegisterPharmacyInput{
		Name:          "City Health Colombo",
		Address:       "14 Galle Road",
		City:          "Colombo 03",
		Latitude:      6.9061,
		Longitude:     79.8519,
		ContactNumber: "+94 11 234 5678",
	})
	require.NoError(t, err)
	assert.Equal(t, "City Health Colombo", view.Name)
	assert.Equal(t, "14 Galle Road, Colombo 03", view.Address)
	assert.False(t, view.Verified)
}

func TestInventoryService_RegisterPharmacy_SecondRejected(t *testing.T) {
	service, mocks := newInventoryServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pharmacyID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(mocks.userRepo)
	factory.EXPECT().PharmacyRepo().Return(mocks.pharmacyRepo)
	passthroughTx(mocks.txManager, factory)

	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(ownerWithPharmacy(ownerID, pharmacyID), nil)

	_, err := service.RegisterPharmacy(ctx, ownerID, &usecase.RegisterPharmacyInput{
		Name:          "Second Branch",
		Address:       "Kandy Road",
		Latitude:      6.91,
		Longitude:     79.86,
		ContactNumber: "+94 11 111 1111",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPharmacyAlreadyLinked)
}

func TestInventoryService_UpdatePharmacy_PartialPatch(t *testing.T) {
	service, mocks := newInventoryServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pharmacyID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(ownerWithPharmacy(ownerID, pharmacyID), nil)

	pharmacy := &entity.Pharmacy{
		ID:            pharmacyID,
		Name:          "City Health Colombo",
		Address:       "14 Galle Road, Colombo 03",
		Latitude:      6.9061,
		Longitude:     79.8519,
		ContactNumber: "+94 11 234 5678",
	}
	mocks.pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacyID).
		Return(pharmacy, nil)

	mocks.pharmacyRepo.EXPECT().
		Update(ctx, pharmacy).
		Return(nil)

	newNumber := "+94 77 999 8888"
	view, err := service.UpdatePharmacy(ctx, ownerID, &usecase.UpdatePharmacyInput{
		ContactNumber: &newNumber,
	})
	require.NoError(t, err)
	assert.Equal(t, newNumber, view.ContactNumber)
	// Untouched fields keep their values.
	assert.Equal(t, "City Health Colombo", view.Name)
	assert.Equal(t, 6.9061, view.Latitude)
}

func TestInventoryService_GetMine_NoPharmacy(t *testing.T) {
	service, mocks := newInventoryServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Role: entity.RoleOwner}, nil)

	_, err := service.GetMine(ctx, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrNoPharmacyLinked)
}

func TestInventoryService_PharmacyQR(t *testing.T) {
	service, mocks := newInventoryServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pharmacyID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(ownerWithPharmacy(ownerID, pharmacyID), nil)

	mocks.qrService.EXPECT().
		GeneratePharmacyQR(pharmacyID).
		Return([]byte("png-bytes"), nil)

	png, err := service.PharmacyQR(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestInventoryService_UpsertStock_CreatesNewRow(t *testing.T) {
	service, mocks := newInventoryServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pharmacyID := uuid.New()
	medicineID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(ownerWithPharmacy(ownerID, pharmacyID), nil)

	mocks.medicineRepo.EXPECT().
		FindByID(ctx, medicineID).
		Return(&entity.Medicine{ID: medicineID, Name: "Paracetamol 500mg"}, nil)

	mocks.stockRepo.EXPECT().
		FindByPharmacyAndMedicine(ctx, pharmacyID, medicineID).
		Return(nil, repository.ErrStockNotFound)

	mocks.stockRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Stock")).
		Return(nil)

	price := 120.0
	view, err := service.UpsertStock(ctx, ownerID, &usecase.UpsertStockInput{
		MedicineID: medicineID,
		Price:      &price,
	})
	require.NoError(t, err)
	assert.Equal(t, pharmacyID, view.PharmacyID)
	assert.Equal(t, medicineID, view.MedicineID)
	assert.True(t, view.InStock)
	assert.Equal(t, entity.StatusInStock, view.Status)
	require.NotNil(t, view.Price)
	assert.Equal(t, 120.0, *view.Price)
}

func TestInventoryService_UpsertStock_RefreshesExistingRow(t *testing.T) {
	service, mocks := newInventoryServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pharmacyID := uuid.New()
	medicineID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(ownerWithPharmacy(ownerID, pharmacyID), nil)

	mocks.medicineRepo.EXPECT().
		FindByID(ctx, medicineID).
		Return(&entity.Medicine{ID: medicineID}, nil)

	oldPrice := 120.0
	existing := &entity.Stock{
		ID:         uuid.New(),
		PharmacyID: pharmacyID,
		MedicineID: medicineID,
		Quantity:   5,
		Price:      &oldPrice,
		InStock:    true,
		Status:     entity.StatusInStock,
	}
	mocks.stockRepo.EXPECT().
		FindByPharmacyAndMedicine(ctx, pharmacyID, medicineID).
		Return(existing, nil)

	mocks.stockRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	inStock := false
	view, err := service.UpsertStock(ctx, ownerID, &usecase.UpsertStockInput{
		MedicineID: medicineID,
		InStock:    &inStock,
	})
	require.NoError(t, err)
	assert.False(t, view.InStock)
	// The crowd-verified status is not part of the owner's patch.
	assert.Equal(t, entity.StatusInStock, view.Status)
	// Fields not in the patch stay put.
	assert.Equal(t, 5, view.Quantity)
	require.NotNil(t, view.Price)
	assert.Equal(t, 120.0, *view.Price)
}

func TestInventoryService_UpsertStock_UnknownMedicine(t *testing.T) {
	service, mocks := newInventoryServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pharmacyID := uuid.New()
	medicineID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(ownerWithPharmacy(ownerID, pharmacyID), nil)

	mocks.medicineRepo.EXPECT().
		FindByID(ctx, medicineID).
		Return(nil, repository.ErrMedicineNotFound)

	_, err := service.UpsertStock(ctx, ownerID, &usecase.UpsertStockInput{MedicineID: medicineID})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestInventoryService_UpdateStock_KeepsVerifiedStatus(t *testing.T) {
	service, mocks := newInventoryServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pharmacyID := uuid.New()
	stockID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(ownerWithPharmacy(ownerID, pharmacyID), nil)

	// The crowd has reported this medicine out of stock.
	existing := &entity.Stock{
		ID:                stockID,
		PharmacyID:        pharmacyID,
		MedicineID:        uuid.New(),
		InStock:           false,
		Status:            entity.StatusOutOfStock,
		VerificationCount: 5,
	}
	mocks.stockRepo.EXPECT().
		FindByID(ctx, stockID).
		Return(existing, nil)

	mocks.stockRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	inStock := true
	view, err := service.UpdateStock(ctx, ownerID, stockID, &usecase.UpdateStockInput{InStock: &inStock})
	require.NoError(t, err)
	assert.True(t, view.InStock)
	// A restock does not erase the crowd-verified label or its count.
	assert.Equal(t, entity.StatusOutOfStock, view.Status)
	assert.Equal(t, 5, view.VerificationCount)
}

func TestInventoryService_UpdateStock_OtherPharmacyLooksAbsent(t *testing.T) {
	service, mocks := newInventoryServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pharmacyID := uuid.New()
	stockID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(ownerWithPharmacy(ownerID, pharmacyID), nil)

	foreign := &entity.Stock{
		ID:         stockID,
		PharmacyID: uuid.New(),
		MedicineID: uuid.New(),
	}
	mocks.stockRepo.EXPECT().
		FindByID(ctx, stockID).
		Return(foreign, nil)

	quantity := 3
	_, err := service.UpdateStock(ctx, ownerID, stockID, &usecase.UpdateStockInput{Quantity: &quantity})
	assert.ErrorIs(t, err, domainerrors.ErrStockItemNotFound)
}

func TestInventoryService_DeleteStock_NotFound(t *testing.T) {
	service, mocks := newInventoryServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pharmacyID := uuid.New()
	stockID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(ownerWithPharmacy(ownerID, pharmacyID), nil)

	mocks.stockRepo.EXPECT().
		Delete(ctx, stockID, pharmacyID).
		Return(repository.ErrStockNotFound)

	err := service.DeleteStock(ctx, ownerID, stockID)
	assert.ErrorIs(t, err, domainerrors.ErrStockItemNotFound)
}

func TestInventoryService_ListMine(t *testing.T) {
	service, mocks := newInventoryServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pharmacyID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(ownerWithPharmacy(ownerID, pharmacyID), nil)

	stocks := []*entity.Stock{
		{
			ID:         uuid.New(),
			PharmacyID: pharmacyID,
			MedicineID: uuid.New(),
			Medicine:   &entity.Medicine{Name: "Paracetamol 500mg", Brand: "Panadol"},
			Quantity:   10,
			InStock:    true,
			Status:     entity.StatusInStock,
		},
	}
	mocks.stockRepo.EXPECT().
		FindByPharmacy(ctx, pharmacyID).
		Return(stocks, nil)

	views, err := service.ListMine(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Medicine)
	assert.Equal(t, "Paracetamol 500mg", views[0].Medicine.Name)
}
