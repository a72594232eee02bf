package interfaces

import (
	"context"

	"creditreportanalyser/internal/pkg/models"
)

// SummaryCacheInterface is the read-through cache in front of the summary
// aggregation. A cache miss is reported as an error wrapping redis.Nil.
type SummaryCacheInterface interface {
	GetSummary(ctx context.Context) (*models.ReportsSummary, error)
	SaveSummary(ctx context.Context, summary *models.ReportsSummary) error
	InvalidateSummary(ctx context.Context) error
}
