package main

import (
	"imoveis-scraper/config"
	"imoveis-scraper/models"
	"imoveis-scraper/scraper/api"
	"imoveis-scraper/scraper/frontend"
	"imoveis-scraper/services"
	"imoveis-scraper/storage"
	"imoveis-scraper/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Debug)

	logger.Info("=== Real-estate harvest starting ===")
	logger.Info("Config — api domains: %d | frontend domains: %d | output: %s",
		len(cfg.APIDomains), len(cfg.FrontendDomains), cfg.CSVOutputPath)

	var all []*models.Listing

	apiScraper, err := api.New(cfg, logger)
	if err != nil {
		logger.Error("Failed to create API harvester: %v — skipping API domains", err)
	} else {
		for _, domain := range cfg.APIDomains {
			records, err := apiScraper.Harvest(domain)
			if err != nil {
				logger.Error("[main] %s — API harvest failed: %v — keeping %d records",
					domain, err, len(records))
			} else {
				logger.Info("[main] %s — API harvest done, %d records", domain, len(records))
			}
			all = append(all, records...)
		}
	}

	frontendScraper := frontend.New(cfg, logger)
	all = append(all, frontendScraper.Run()...)

	if len(all) == 0 {
		logger.Warn("No records were gathered from any domain — nothing to persist")
		return
	}

	cleaner := services.NewCleaner(logger)
	records := cleaner.Clean(all)

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to prepare CSV output: %v", err)
	} else if err := csvWriter.WriteAll(records); err != nil {
		logger.Error("CSV write failed: %v", err)
	} else {
		logger.Info("%d records saved to %s", len(records), cfg.CSVOutputPath)
	}

	// The insight report prefers the persisted dataset so it reflects what
	// actually landed in the database.
	reportRecords := records

	if cfg.PostgresEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
		if err != nil {
			logger.Error("PostgreSQL unavailable: %v — continuing with CSV only", err)
		} else {
			defer pgWriter.Close()
			if err := pgWriter.WriteAll(records); err != nil {
				logger.Error("PostgreSQL write failed: %v", err)
			} else {
				logger.Info("%d records stored in PostgreSQL (table: properties)", len(records))
				if stored, err := pgWriter.FetchAll(); err != nil {
					logger.Error("Failed to fetch records from DB for insights: %v", err)
				} else {
					reportRecords = stored
				}
			}
		}
	}

	insightSvc := services.NewInsightService(logger)
	insightSvc.Print(insightSvc.Generate(reportRecords))

	logger.Info("=== Harvest complete ===")
}
