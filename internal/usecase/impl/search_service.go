package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	medicineRepo repository.MedicineRepository
	stockRepo    repository.StockRepository
	logger       *slog.Logger
}

// SearchServiceParams holds dependencies for searchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	MedicineRepo repository.MedicineRepository
	StockRepo    repository.StockRepository
	Logger       *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		medicineRepo: params.MedicineRepo,
		stockRepo:    params.StockRepo,
		logger:       params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search finds in-stock rows for medicines matching the query, cheapest
// first. Results are pre-sorted by the repository: price ascending with
// unpriced rows last, then pharmacy name.
func (srv *searchService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, domainerrors.ErrMissingQuery
	}

	medicines, err := srv.medicineRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search medicines")
	}

	if len(medicines) == 0 {
		srv.log(ctx).Debug("Search matched no medicines", slog.String("query", query))

		return &usecase.SearchOutput{NoMedicines: true, Results: []*usecase.SearchResult{}}, nil
	}

	medicineIDs := make([]uuid.UUID, 0, len(medicines))
	for _, medicine := range medicines {
		medicineIDs = append(medicineIDs, medicine.ID)
	}

	stocks, err := srv.stockRepo.FindInStockByMedicines(ctx, medicineIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stock for medicines")
	}

	origin := searchOrigin(input)

	results := make([]*usecase.SearchResult, 0, len(stocks))
	for _, stock := range stocks {
		// A stock row whose pharmacy record has vanished is useless to a
		// caller looking for a place to buy.
		if stock.Pharmacy == nil {
			continue
		}

		results = append(results, srv.buildResult(stock, origin))
	}

	srv.log(ctx).Debug("Search completed", slog.String("query", query), slog.Int("count", len(results)))

	return &usecase.SearchOutput{Count: len(results), Results: results}, nil
}

// searchOrigin returns the caller's location, or nil when either
// coordinate is missing.
func searchOrigin(input *usecase.SearchInput) *orb.Point {
	if input.Latitude == nil || input.Longitude == nil {
		return nil
	}

	return &orb.Point{*input.Longitude, *input.Latitude}
}

func (srv *searchService) buildResult(stock *entity.Stock, origin *orb.Point) *usecase.SearchResult {
	pharmacy := stock.Pharmacy

	result := &usecase.SearchResult{
		ID: stock.ID,
		Pharmacy: &usecase.SearchPharmacy{
			ID:            pharmacy.ID,
			Name:          pharmacy.Name,
			Address:       pharmacy.Address,
			Latitude:      pharmacy.Latitude,
			Longitude:     pharmacy.Longitude,
			ContactNumber: pharmacy.ContactNumber,
			Verified:      pharmacy.Verified,
		},
		Medicine:          usecase.NewMedicineView(stock.Medicine),
		Price:             stock.Price,
		Quantity:          stock.Quantity,
		InStock:           stock.InStock,
		Status:            stock.Status,
		VerificationCount: stock.VerificationCount,
		LastUpdatedAt:     stock.LastUpdatedAt,
		UpdatedAt:         stock.UpdatedAt,
	}

	if stock.Verifier != nil {
		name := stock.Verifier.Name
		result.LastUpdatedBy = &name
	}

	if origin != nil {
		distanceKm := roundKm(geo.Distance(*origin, orb.Point{pharmacy.Longitude, pharmacy.Latitude}) / 1000)
		result.DistanceKm = &distanceKm
	}

	return result
}

// roundKm rounds a distance to two decimal places for display.
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
