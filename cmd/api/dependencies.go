package api

import (
	"log/slog"

	reporthandler "github.com/chaotic-justice/payrecon/internal/domain/report/handler"
	reportservice "github.com/chaotic-justice/payrecon/internal/domain/report/service"
	saleshandler "github.com/chaotic-justice/payrecon/internal/domain/sales/handler"
	salesservice "github.com/chaotic-justice/payrecon/internal/domain/sales/service"
	"github.com/chaotic-justice/payrecon/internal/results"
	"github.com/chaotic-justice/payrecon/pkg/config"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	// Shared state
	Results *results.Store

	// Services
	ReportService *reportservice.Service
	SalesService  *salesservice.Service

	// Handlers
	ReportHandler   *reporthandler.ReportHandler
	SalesHandler    *saleshandler.SalesHandler
	DownloadHandler *results.DownloadHandler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	deps.Results = results.NewStore(cfg.Limits.ResultTTL)

	deps.ReportService = reportservice.New(logger, deps.Results, cfg.Limits.MaxReportFiles)
	deps.SalesService = salesservice.New(logger, deps.Results)

	deps.ReportHandler = reporthandler.NewReportHandler(
		deps.ReportService, logger, cfg.Limits.MaxReportFiles, cfg.Limits.MaxUploadBytes)
	deps.SalesHandler = saleshandler.NewSalesHandler(
		deps.SalesService, logger, cfg.Limits.MaxUploadBytes)
	deps.DownloadHandler = results.NewDownloadHandler(deps.Results, logger)

	logger.Info("all dependencies initialized successfully")

	return deps, nil
}

// Cleanup closes all resources
func (d *Dependencies) Cleanup() {
	d.Logger.Info("cleanup completed")
}
