package usecase

import (
	"context"

	"medifind/internal/domain/entity"

	"github.com/google/uuid"
)

// VerifyStockInput identifies the stock row being confirmed and the
// status the reporter observed on the ground.
type VerifyStockInput struct {
	PharmacyID uuid.UUID          `json:"pharmacyId" validate:"required"`
	MedicineID uuid.UUID          `json:"medicineId" validate:"required"`
	Status     entity.StockStatus `json:"status" validate:"required"`
}

// VerifyStockOutput is the updated stock row plus the reporter's new
// points balance. Points is nil when the reporter account has vanished
// between authentication and the write.
type VerifyStockOutput struct {
	Stock  *StockView `json:"stock"`
	Points *int       `json:"points"`
}

// LeaderboardEntry is one row of the contributor leaderboard.
type LeaderboardEntry struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// VerificationUsecase covers crowd verification of stock rows and the
// contributor leaderboard built from it.
type VerificationUsecase interface {
	// VerifyStock records an on-the-ground report against a stock row
	// and credits the reporter.
	VerifyStock(ctx context.Context, reporterID uuid.UUID, input *VerifyStockInput) (*VerifyStockOutput, error)
	// Leaderboard returns the top contributors by points.
	Leaderboard(ctx context.Context) ([]*LeaderboardEntry, error)
}
