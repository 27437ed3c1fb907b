package usecase

import "context"

// CatalogUsecase exposes read-only listings of the shared medicine
// catalog and the registered pharmacies.
type CatalogUsecase interface {
	// ListMedicines returns the full medicine catalog ordered by name.
	ListMedicines(ctx context.Context) ([]*MedicineView, error)
	// ListPharmacies returns every registered pharmacy ordered by name.
	ListPharmacies(ctx context.Context) ([]*PharmacyView, error)
}
