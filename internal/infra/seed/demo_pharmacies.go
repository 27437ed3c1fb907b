package seed

import (
	"context"
	"log/slog"

	"medifind/internal/domain/entity"
	"medifind/internal/domain/repository"

	"github.com/pkg/errors"
)

// demoPharmacies are the Colombo-area fixtures used for demos and local
// development.
var demoPharmacies = []entity.Pharmacy{
	{
		Name:          "City Health Colombo",
		Address:       "123 Galle Rd, Colombo 03",
		Latitude:      6.9061,
		Longitude:     79.8519,
		ContactNumber: "011-2345678",
		Verified:      true,
	},
	{
		Name:          "Galle Road Pharmacy",
		Address:       "456 Galle Rd, Mount Lavinia",
		Latitude:      6.8306,
		Longitude:     79.8644,
		ContactNumber: "011-9876543",
		Verified:      true,
	},
	{
		Name:          "Union Chemist",
		Address:       "78 Union Place, Colombo 02",
		Latitude:      6.9189,
		Longitude:     79.8568,
		ContactNumber: "011-1122334",
		Verified:      true,
	},
	{
		Name:          "Kandy Road Meds",
		Address:       "55 Kandy Rd, Kelaniya",
		Latitude:      6.9538,
		Longitude:     79.9168,
		ContactNumber: "011-5566778",
		Verified:      false,
	},
	{
		Name:          "Nugegoda Pharmacy",
		Address:       "88 High Level Rd, Nugegoda",
		Latitude:      6.8732,
		Longitude:     79.8895,
		ContactNumber: "011-2233445",
		Verified:      true,
	},
}

// LoadDemoPharmacies inserts the demo pharmacies and gives each one an
// in-stock row for every medicine in the provided slice, cycling prices so
// search results are non-uniform. Intended for empty databases only.
func LoadDemoPharmacies(ctx context.Context, logger *slog.Logger, pharmacyRepo repository.PharmacyRepository, stockRepo repository.StockRepository, medicines []*entity.Medicine) error {
	prices := []float64{120, 150, 185, 210, 95}

	for i := range demoPharmacies {
		pharmacy := demoPharmacies[i]
		if err := pharmacyRepo.Create(ctx, &pharmacy); err != nil {
			return errors.Wrapf(err, "unable to seed pharmacy %s", pharmacy.Name)
		}

		for j, medicine := range medicines {
			price := prices[(i+j)%len(prices)]
			stock := &entity.Stock{
				PharmacyID: pharmacy.ID,
				MedicineID: medicine.ID,
				Quantity:   10 + 5*j,
				Price:      &price,
				InStock:    true,
				Status:     entity.StatusInStock,
			}
			if err := stockRepo.Create(ctx, stock); err != nil {
				return errors.Wrapf(err, "unable to seed stock for %s at %s", medicine.Name, pharmacy.Name)
			}
		}

		logger.Info("Seeded pharmacy", slog.String("name", pharmacy.Name), slog.Int("stockRows", len(medicines)))
	}

	return nil
}
