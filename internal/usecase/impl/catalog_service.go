package impl

import (
	"context"
	"log/slog"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/domain/repository"
	"medifind/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	medicineRepo repository.MedicineRepository
	pharmacyRepo repository.PharmacyRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	MedicineRepo repository.MedicineRepository
	PharmacyRepo repository.PharmacyRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		medicineRepo: params.MedicineRepo,
		pharmacyRepo: params.PharmacyRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMedicines returns the full medicine catalog ordered by name.
func (srv *catalogService) ListMedicines(ctx context.Context) ([]*usecase.MedicineView, error) {
	medicines, err := srv.medicineRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medicines")
	}

	views := make([]*usecase.MedicineView, 0, len(medicines))
	for _, medicine := range medicines {
		views = append(views, usecase.NewMedicineView(medicine))
	}

	srv.log(ctx).Debug("Listed medicine catalog", slog.Int("count", len(views)))

	return views, nil
}

// ListPharmacies returns every registered pharmacy ordered by name.
func (srv *catalogService) ListPharmacies(ctx context.Context) ([]*usecase.PharmacyView, error) {
	pharmacies, err := srv.pharmacyRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pharmacies")
	}

	views := make([]*usecase.PharmacyView, 0, len(pharmacies))
	for _, pharmacy := range pharmacies {
		views = append(views, usecase.NewPharmacyView(pharmacy))
	}

	srv.log(ctx).Debug("Listed pharmacies", slog.Int("count", len(views)))

	return views, nil
}
