package summary

import (
	"context"
	"fmt"
	"math"

	"creditreportanalyser/internal/pkg/consts"
	"creditreportanalyser/internal/pkg/log_messages"
	"creditreportanalyser/internal/pkg/logger"
	"creditreportanalyser/internal/pkg/models"
	"creditreportanalyser/internal/service/interfaces"
)

// SummaryService answers the cross-report summary. The Redis cache in front
// of the aggregation is optional; with a nil cache every call hits Mongo.
type SummaryService struct {
	reportRepo interfaces.CreditReportRepositoryInterface
	cache      interfaces.SummaryCacheInterface
}

func NewSummaryService(reportRepo interfaces.CreditReportRepositoryInterface, cache interfaces.SummaryCacheInterface) *SummaryService {
	return &SummaryService{
		reportRepo: reportRepo,
		cache:      cache,
	}
}

// GetSummary returns the aggregate over all stored reports, read through the
// cache when one is configured. A cache failure falls back to the
// aggregation; only the aggregation itself can fail the call.
func (s *SummaryService) GetSummary(ctx context.Context) (*models.ReportsSummary, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSummary(ctx); err == nil {
			logger.CtxDebug(ctx, "summary served from cache")
			return cached, nil
		}
	}

	aggregate, err := s.reportRepo.AggregateSummary(ctx)
	if err != nil {
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorAggregatingCreditReports, err), err)
		return nil, consts.ErrorInternal
	}

	summary := &models.ReportsSummary{
		TotalReports:            aggregate.TotalReports,
		TotalActiveAccounts:     aggregate.TotalActiveAccounts,
		TotalClosedAccounts:     aggregate.TotalClosedAccounts,
		TotalOutstandingBalance: aggregate.TotalOutstandingBalance,
	}
	// $avg skips documents without a creditScore and yields null when none
	// have one; the null survives to the response
	if aggregate.AverageCreditScore != nil {
		rounded := int(math.Round(*aggregate.AverageCreditScore))
		summary.AverageCreditScore = &rounded
	}

	if s.cache != nil {
		if err := s.cache.SaveSummary(ctx, summary); err != nil {
			logger.CtxWarn(ctx, fmt.Sprintf("failed to cache summary: %v", err))
		}
	}

	return summary, nil
}
