package impl

import (
	"context"
	"log/slog"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/domain/service"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	pharmacyRepo repository.PharmacyRepository
	medicineRepo repository.MedicineRepository
	stockRepo    repository.StockRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// InventoryServiceParams holds dependencies for inventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	PharmacyRepo repository.PharmacyRepository
	MedicineRepo repository.MedicineRepository
	StockRepo    repository.StockRepository
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		pharmacyRepo: params.PharmacyRepo,
		medicineRepo: params.MedicineRepo,
		stockRepo:    params.StockRepo,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolvePharmacyID loads the owner and returns the pharmacy linked to
// the account.
func (srv *inventoryService) resolvePharmacyID(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, error) {
	owner, err := srv.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return uuid.Nil, domainerrors.ErrUserDoesNotExist
		}

		return uuid.Nil, errors.Wrap(err, "failed to load owner account")
	}

	if owner.PharmacyID == nil {
		return uuid.Nil, domainerrors.ErrNoPharmacyLinked
	}

	return *owner.PharmacyID, nil
}

// RegisterPharmacy creates a pharmacy and links it to the owner.
func (srv *inventoryService) RegisterPharmacy(ctx context.Context, ownerID uuid.UUID, input *usecase.RegisterPharmacyInput) (*usecase.PharmacyView, error) {
	srv.log(ctx).Info("Registering pharmacy", slog.Any("ownerID", ownerID), slog.String("name", input.Name))

	// The stored address folds the city in, matching the public records.
	address := input.Address
	if input.City != "" {
		address = input.Address + ", " + input.City
	}

	pharmacy := &entity.Pharmacy{
		ID:            uuid.New(),
		Name:          input.Name,
		Address:       address,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		ContactNumber: input.ContactNumber,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		pharmacyRepo := repoFactory.PharmacyRepo()

		owner, err := userRepo.FindByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserDoesNotExist
			}

			return errors.Wrap(err, "failed to load owner account")
		}

		if owner.PharmacyID != nil {
			return domainerrors.ErrPharmacyAlreadyLinked
		}

		if err := pharmacyRepo.Create(ctx, pharmacy); err != nil {
			return errors.Wrap(err, "failed to create pharmacy")
		}

		owner.PharmacyID = &pharmacy.ID

		if err := userRepo.Update(ctx, owner); err != nil {
			return errors.Wrap(err, "failed to link pharmacy to owner")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Pharmacy registered", slog.Any("pharmacyID", pharmacy.ID))

	return usecase.NewPharmacyView(pharmacy), nil
}

// UpdatePharmacy patches the owner's pharmacy profile. Nil input fields
// keep their current value.
func (srv *inventoryService) UpdatePharmacy(ctx context.Context, ownerID uuid.UUID, input *usecase.UpdatePharmacyInput) (*usecase.PharmacyView, error) {
	pharmacyID, err := srv.resolvePharmacyID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	pharmacy, err := srv.pharmacyRepo.FindByID(ctx, pharmacyID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrNoPharmacyLinked
		}

		return nil, errors.Wrap(err, "failed to load pharmacy")
	}

	if input.Name != nil {
		pharmacy.Name = *input.Name
	}
	if input.Address != nil {
		pharmacy.Address = *input.Address
	}
	if input.Latitude != nil {
		pharmacy.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		pharmacy.Longitude = *input.Longitude
	}
	if input.ContactNumber != nil {
		pharmacy.ContactNumber = *input.ContactNumber
	}

	if err := srv.pharmacyRepo.Update(ctx, pharmacy); err != nil {
		return nil, errors.Wrap(err, "failed to update pharmacy")
	}

	srv.log(ctx).Debug("Pharmacy updated", slog.Any("pharmacyID", pharmacy.ID))

	return usecase.NewPharmacyView(pharmacy), nil
}

// GetMine returns the owner's pharmacy.
func (srv *inventoryService) GetMine(ctx context.Context, ownerID uuid.UUID) (*usecase.PharmacyView, error) {
	pharmacyID, err := srv.resolvePharmacyID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	pharmacy, err := srv.pharmacyRepo.FindByID(ctx, pharmacyID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrNoPharmacyLinked
		}

		return nil, errors.Wrap(err, "failed to load pharmacy")
	}

	return usecase.NewPharmacyView(pharmacy), nil
}

// PharmacyQR renders a storefront QR code for the owner's pharmacy.
func (srv *inventoryService) PharmacyQR(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	pharmacyID, err := srv.resolvePharmacyID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GeneratePharmacyQR(pharmacyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pharmacy QR code")
	}

	return png, nil
}

// ListMine returns the owner's stock rows with medicines expanded.
func (srv *inventoryService) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*usecase.StockView, error) {
	pharmacyID, err := srv.resolvePharmacyID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stocks, err := srv.stockRepo.FindByPharmacy(ctx, pharmacyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock")
	}

	views := make([]*usecase.StockView, 0, len(stocks))
	for _, stock := range stocks {
		views = append(views, usecase.NewStockView(stock))
	}

	return views, nil
}

// UpsertStock creates the stock row for a medicine, or refreshes it
// when one already exists.
func (srv *inventoryService) UpsertStock(ctx context.Context, ownerID uuid.UUID, input *usecase.UpsertStockInput) (*usecase.StockView, error) {
	pharmacyID, err := srv.resolvePharmacyID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if _, err := srv.medicineRepo.FindByID(ctx, input.MedicineID); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("Medicine not found")
		}

		return nil, errors.Wrap(err, "failed to load medicine")
	}

	stock, err := srv.stockRepo.FindByPharmacyAndMedicine(ctx, pharmacyID, input.MedicineID)
	switch {
	case err == nil:
		applyStockPatch(stock, input.Price, input.Quantity, input.InStock)

		if err := srv.stockRepo.Update(ctx, stock); err != nil {
			return nil, errors.Wrap(err, "failed to update stock")
		}
	case errors.Is(err, repository.ErrStockNotFound):
		stock = &entity.Stock{
			ID:         uuid.New(),
			PharmacyID: pharmacyID,
			MedicineID: input.MedicineID,
			InStock:    true,
		}
		applyStockPatch(stock, input.Price, input.Quantity, input.InStock)

		// A fresh row starts with the status matching the owner's flag,
		// until the first verification report replaces it.
		if stock.InStock {
			stock.Status = entity.StatusInStock
		} else {
			stock.Status = entity.StatusOutOfStock
		}

		if err := srv.stockRepo.Create(ctx, stock); err != nil {
			return nil, errors.Wrap(err, "failed to create stock")
		}
	default:
		return nil, errors.Wrap(err, "failed to load stock")
	}

	srv.log(ctx).Debug("Stock upserted",
		slog.Any("pharmacyID", pharmacyID), slog.Any("medicineID", input.MedicineID))

	return usecase.NewStockView(stock), nil
}

// UpdateStock patches an existing stock row owned by the caller.
func (srv *inventoryService) UpdateStock(ctx context.Context, ownerID uuid.UUID, stockID uuid.UUID, input *usecase.UpdateStockInput) (*usecase.StockView, error) {
	pharmacyID, err := srv.resolvePharmacyID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stock, err := srv.stockRepo.FindByID(ctx, stockID)
	if err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return nil, domainerrors.ErrStockItemNotFound
		}

		return nil, errors.Wrap(err, "failed to load stock")
	}

	// Rows at other pharmacies look absent, they are never disclosed.
	if stock.PharmacyID != pharmacyID {
		return nil, domainerrors.ErrStockItemNotFound
	}

	applyStockPatch(stock, input.Price, input.Quantity, input.InStock)

	if err := srv.stockRepo.Update(ctx, stock); err != nil {
		return nil, errors.Wrap(err, "failed to update stock")
	}

	return usecase.NewStockView(stock), nil
}

// DeleteStock removes a stock row owned by the caller.
func (srv *inventoryService) DeleteStock(ctx context.Context, ownerID uuid.UUID, stockID uuid.UUID) error {
	pharmacyID, err := srv.resolvePharmacyID(ctx, ownerID)
	if err != nil {
		return err
	}

	if err := srv.stockRepo.Delete(ctx, stockID, pharmacyID); err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return domainerrors.ErrStockItemNotFound
		}

		return errors.Wrap(err, "failed to delete stock")
	}

	srv.log(ctx).Debug("Stock deleted", slog.Any("stockID", stockID))

	return nil
}

// applyStockPatch copies the non-nil fields onto the row. The crowd-verified
// Status label is left alone, only verification reports move it.
func applyStockPatch(stock *entity.Stock, price *float64, quantity *int, inStock *bool) {
	if price != nil {
		stock.Price = price
	}
	if quantity != nil {
		stock.Quantity = *quantity
	}
	if inStock != nil {
		stock.InStock = *inStock
	}
}
