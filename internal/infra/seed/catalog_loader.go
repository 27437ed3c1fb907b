// Package seed loads the medicine catalog and the demo pharmacy fixtures.
// There is no API route that creates medicines; this tool is the only writer.
package seed

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strings"

	"medifind/internal/domain/entity"
	"medifind/internal/domain/repository"

	"github.com/pkg/errors"
)

// LoadCatalog ingests a CSV catalog (name,brand,category,description) into
// the medicines table. Rows whose (name, brand) already exist are skipped so
// reseeding is idempotent. Returns the number of rows inserted.
func LoadCatalog(ctx context.Context, logger *slog.Logger, medicineRepo repository.MedicineRepository, csvPath string) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to open medicine catalog %s", csvPath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return 0, errors.Wrap(err, "unable to read medicine catalog header")
	}

	inserted := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("Skipping unreadable catalog row", slog.Any("error", err))

			continue
		}
		if len(record) < 3 {
			continue
		}

		name := strings.TrimSpace(record[0])
		brand := strings.TrimSpace(record[1])
		category := entity.MedicineCategory(strings.TrimSpace(record[2]))
		description := ""
		if len(record) > 3 {
			description = strings.TrimSpace(record[3])
		}

		if name == "" || brand == "" {
			continue
		}
		if !category.IsValid() {
			category = entity.CategoryOther
		}

		medicine := &entity.Medicine{
			Name:        name,
			Brand:       brand,
			Category:    category,
			Description: description,
		}
		if err := medicineRepo.Create(ctx, medicine); err != nil {
			// Duplicates are expected on reseed; anything else is worth a warning.
			logger.Debug("Catalog row not inserted", slog.String("name", name), slog.Any("error", err))

			continue
		}
		inserted++
	}

	logger.Info("Seeded medicine catalog", slog.Int("inserted", inserted))

	return inserted, nil
}
