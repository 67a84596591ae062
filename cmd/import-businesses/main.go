// Command import-businesses loads the business CSV into MongoDB so the site
// can run with BUSINESS_SOURCE=mongo.
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"llcdirectory/config"
	"llcdirectory/database"
	businessRepo "llcdirectory/database/repository/business"
	"llcdirectory/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	csvPath := flag.String("csv", config.AppConfig.BusinessCSVPath, "path to the business CSV export")
	dryRun := flag.Bool("dry-run", false, "parse and report without writing to MongoDB")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	source := businessRepo.NewCSVSource(*csvPath, logger)
	businesses, err := source.Businesses(ctx)
	if errors.Is(err, businessRepo.ErrSourceUnavailable) {
		logger.Sugar().Fatalf("import: no CSV at %s", *csvPath)
	}
	if err != nil {
		logger.Sugar().Fatalf("import: %v", err)
	}
	states := businessRepo.DistinctStates(businesses)
	logger.Info("import: parsed CSV",
		zap.String("path", *csvPath),
		zap.Int("businesses", len(businesses)),
		zap.Int("states", len(states)),
	)
	if *dryRun {
		return
	}

	if err := database.InitDB(); err != nil {
		logger.Sugar().Fatalf("import: %v", err)
	}
	defer func() { _ = database.CloseDB(context.Background()) }()

	repo := businessRepo.NewMongoSource(database.BusinessCollection(), logger)
	inserted, err := repo.ReplaceAll(ctx, businesses)
	if err != nil {
		logger.Sugar().Fatalf("import: %v", err)
	}
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Warn("import: failed to create indexes", zap.Error(err))
	}
	logger.Info("import: done",
		zap.String("database", config.AppConfig.MongoDatabase),
		zap.String("collection", config.AppConfig.MongoBusinessCollection),
		zap.Int("inserted", inserted),
	)
}
