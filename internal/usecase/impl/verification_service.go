package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "medifind/internal/delivery/context"
	"medifind/internal/domain/entity"
	domainerrors "medifind/internal/domain/errors"
	"medifind/internal/domain/repository"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// verificationPoints is credited to a reporter for each accepted report.
const verificationPoints = 10

// leaderboardSize caps the contributor leaderboard.
const leaderboardSize = 10

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// VerificationServiceParams holds dependencies for verificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifyStock records an on-the-ground report against a stock row and
// credits the reporter. The stock update and the points credit commit
// atomically.
func (srv *verificationService) VerifyStock(ctx context.Context, reporterID uuid.UUID, input *usecase.VerifyStockInput) (*usecase.VerifyStockOutput, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	var (
		verified *entity.Stock
		points   *int
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stockRepo := repoFactory.StockRepo()
		userRepo := repoFactory.UserRepo()

		stock, err := stockRepo.FindByPharmacyAndMedicine(ctx, input.PharmacyID, input.MedicineID)
		if err != nil {
			if errors.Is(err, repository.ErrStockNotFound) {
				return domainerrors.ErrStockRecordNotFound
			}

			return errors.Wrap(err, "failed to load stock for verification")
		}

		now := time.Now()
		stock.Status = input.Status
		stock.InStock = input.Status == entity.StatusInStock
		stock.VerificationCount++
		stock.LastUpdatedBy = &reporterID
		stock.LastUpdatedAt = &now

		if err := stockRepo.Update(ctx, stock); err != nil {
			return errors.Wrap(err, "failed to record verification")
		}

		verified = stock

		reporter, err := userRepo.FindByID(ctx, reporterID)
		if err != nil {
			// A vanished reporter account voids the credit, not the report.
			if errors.Is(err, repository.ErrUserNotFound) {
				srv.log(ctx).Warn("Reporter account missing, skipping points credit", slog.Any("reporterID", reporterID))

				return nil
			}

			return errors.Wrap(err, "failed to load reporter account")
		}

		reporter.Points += verificationPoints
		if err := userRepo.Update(ctx, reporter); err != nil {
			return errors.Wrap(err, "failed to credit reporter points")
		}

		balance := reporter.Points
		points = &balance

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Stock verified",
		slog.Any("pharmacyID", input.PharmacyID),
		slog.Any("medicineID", input.MedicineID),
		slog.String("status", input.Status.String()))

	return &usecase.VerifyStockOutput{Stock: usecase.NewStockView(verified), Points: points}, nil
}

// Leaderboard returns the top contributors by points.
func (srv *verificationService) Leaderboard(ctx context.Context) ([]*usecase.LeaderboardEntry, error) {
	contributors, err := srv.userRepo.TopContributors(ctx, entity.RoleUser, leaderboardSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load leaderboard")
	}

	entries := make([]*usecase.LeaderboardEntry, 0, len(contributors))
	for _, contributor := range contributors {
		entries = append(entries, &usecase.LeaderboardEntry{
			Name:   contributor.Name,
			Points: contributor.Points,
		})
	}

	return entries, nil
}
