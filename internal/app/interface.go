package app

import (
	"context"

	"creditreportanalyser/internal/pkg/models"
	storemodels "creditreportanalyser/internal/pkg/store/models"
)

type ReportService interface {
	IngestReport(ctx context.Context, payload []byte) (*models.UploadResult, error)
	GetReport(ctx context.Context, id string) (*storemodels.CreditReport, error)
	ListReports(ctx context.Context, query models.ListReportsQuery) (*models.ReportList, error)
	DeleteReport(ctx context.Context, id string) error
}

type SummaryService interface {
	GetSummary(ctx context.Context) (*models.ReportsSummary, error)
}
