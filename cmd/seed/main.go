// Command seed prepares the database schema and loads the medicine
// catalog, optionally together with demo pharmacies and stock.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"medifind/config"
	logs "medifind/internal/infra/log"
	"medifind/internal/infra/persistence/model"
	"medifind/internal/infra/persistence/postgres"
	"medifind/internal/infra/seed"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to the medicine catalog CSV, overrides config")
	withPharmacies := flag.Bool("pharmacies", false, "also create demo pharmacies with stock")
	flag.Parse()

	if err := run(context.Background(), *catalogPath, *withPharmacies); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %+v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, catalogPath string, withPharmacies bool) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	if err := migrate(db); err != nil {
		return err
	}
	logger.Info("Schema migrated")

	if catalogPath == "" && cfg.Seed != nil {
		catalogPath = cfg.Seed.CatalogPath
	}
	if catalogPath == "" {
		return errors.New("no catalog path configured, set seed.catalogPath or pass -catalog")
	}

	medicineRepo := postgres.NewMedicineRepository(db)

	inserted, err := seed.LoadCatalog(ctx, logger, medicineRepo, catalogPath)
	if err != nil {
		return errors.Wrap(err, "failed to load medicine catalog")
	}
	logger.Info("Catalog loaded", slog.Int("inserted", inserted), slog.String("path", catalogPath))

	if !withPharmacies {
		return nil
	}

	medicines, err := medicineRepo.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list medicines for demo stock")
	}

	pharmacyRepo := postgres.NewPharmacyRepository(db)
	stockRepo := postgres.NewStockRepository(db)

	if err := seed.LoadDemoPharmacies(ctx, logger, pharmacyRepo, stockRepo, medicines); err != nil {
		return errors.Wrap(err, "failed to load demo pharmacies")
	}
	logger.Info("Demo pharmacies loaded")

	return nil
}

func migrate(db *gorm.DB) error {
	models := []any{
		&model.UserModel{},
		&model.PharmacyModel{},
		&model.MedicineModel{},
		&model.StockModel{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	return nil
}
