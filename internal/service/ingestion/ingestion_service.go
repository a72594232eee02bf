package ingestion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"creditreportanalyser/internal/pkg/consts"
	"creditreportanalyser/internal/pkg/log_messages"
	"creditreportanalyser/internal/pkg/logger"
	"creditreportanalyser/internal/pkg/models"
	storemodels "creditreportanalyser/internal/pkg/store/models"
	"creditreportanalyser/internal/service/experian"
	"creditreportanalyser/internal/service/interfaces"
)

// IngestionService owns the stored-report lifecycle: upload, lookup, listing
// and deletion. The cache and the publisher are optional collaborators; a nil
// value disables that side effect.
type IngestionService struct {
	reportRepo interfaces.CreditReportRepositoryInterface
	cache      interfaces.SummaryCacheInterface
	publisher  interfaces.PubSubPublisherInterface
}

func NewIngestionService(reportRepo interfaces.CreditReportRepositoryInterface, cache interfaces.SummaryCacheInterface, publisher interfaces.PubSubPublisherInterface) *IngestionService {
	return &IngestionService{
		reportRepo: reportRepo,
		cache:      cache,
		publisher:  publisher,
	}
}

// IngestReport runs the full pipeline on one uploaded payload:
// structural validation, XML-to-tree conversion, mapping, duplicate check,
// insert, then the post-insert side effects.
func (s *IngestionService) IngestReport(ctx context.Context, payload []byte) (*models.UploadResult, error) {
	// 1. Structural gate
	if !experian.IsExperianReport(string(payload)) {
		return nil, consts.ErrorInvalidReportFormat
	}

	// 2. XML to generic tree
	tree, err := experian.ParseDocument(payload)
	if err != nil {
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorConvertingXMLToTree, err), err)
		return nil, consts.ErrorReportParsingFailed.WithDetail(err.Error())
	}

	// 3. Tree to canonical record
	report, err := experian.MapReport(tree)
	if err != nil {
		logger.CtxError(ctx, "failed to map report tree", err)
		return nil, consts.ErrorReportParsingFailed.WithDetail(err.Error())
	}

	// 4. Duplicate pre-check by reportNumber
	if existing, err := s.reportRepo.FindByReportNumber(ctx, report.ReportNumber); err == nil {
		return nil, &models.ConflictError{
			ReportNumber: report.ReportNumber,
			ExistingID:   existing.ID.Hex(),
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorFetchingCreditReportDoc, err), err)
		return nil, consts.ErrorInternal
	}

	// 5. Insert; the unique index closes the pre-check race
	insertedID, err := s.reportRepo.Insert(ctx, report)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			conflict := &models.ConflictError{ReportNumber: report.ReportNumber}
			if existing, findErr := s.reportRepo.FindByReportNumber(ctx, report.ReportNumber); findErr == nil {
				conflict.ExistingID = existing.ID.Hex()
			} else {
				logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorFetchingCreditReportDoc, findErr), findErr)
			}
			return nil, conflict
		}
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorInsertingCreditReportDoc, err), err)
		return nil, consts.ErrorInternal
	}

	logger.CtxInfo(ctx, fmt.Sprintf("ingested credit report %s as %s", report.ReportNumber, insertedID.Hex()))

	// 6. Side effects: both best effort, neither fails the ingestion
	s.publishIngested(ctx, insertedID, report)
	s.dropCachedSummary(ctx)

	return &models.UploadResult{
		ID:            insertedID.Hex(),
		ReportNumber:  report.ReportNumber,
		Name:          strings.TrimSpace(report.BasicDetails.FirstName + " " + report.BasicDetails.LastName),
		PAN:           report.BasicDetails.PAN,
		CreditScore:   report.CreditScore,
		TotalAccounts: len(report.CreditAccounts),
	}, nil
}

// GetReport fetches one stored report by its hex object id.
func (s *IngestionService) GetReport(ctx context.Context, id string) (*storemodels.CreditReport, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrorInvalidReportID
	}

	report, err := s.reportRepo.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorReportNotFound
		}
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorFetchingCreditReportDoc, err), err)
		return nil, consts.ErrorInternal
	}

	return report, nil
}

// ListReports returns one page of stored reports, newest first.
func (s *IngestionService) ListReports(ctx context.Context, query models.ListReportsQuery) (*models.ReportList, error) {
	reports, total, err := s.reportRepo.FindPage(ctx, query.Page, query.Limit)
	if err != nil {
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorFetchingCreditReportDoc, err), err)
		return nil, consts.ErrorInternal
	}

	totalPages := total / int64(query.Limit)
	if total%int64(query.Limit) != 0 {
		totalPages++
	}

	return &models.ReportList{
		Reports: reports,
		Pagination: models.Pagination{
			Page:         query.Page,
			Limit:        query.Limit,
			TotalRecords: total,
			TotalPages:   totalPages,
		},
	}, nil
}

// DeleteReport removes one stored report and drops the cached summary.
func (s *IngestionService) DeleteReport(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrorInvalidReportID
	}

	if err := s.reportRepo.DeleteByID(ctx, objectID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return consts.ErrorReportNotFound
		}
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorDeletingCreditReportDoc, err), err)
		return consts.ErrorInternal
	}

	s.dropCachedSummary(ctx)

	return nil
}

func (s *IngestionService) publishIngested(ctx context.Context, id primitive.ObjectID, report *storemodels.CreditReport) {
	if s.publisher == nil {
		return
	}

	message := models.ReportIngestedMessage{
		ReportID:     id.Hex(),
		ReportNumber: report.ReportNumber,
		PAN:          report.BasicDetails.PAN,
		CreditScore:  report.CreditScore,
		IngestedAt:   time.Now().UTC(),
	}
	if msgID, err := s.publisher.PublishMessage(ctx, message); err != nil {
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorInMessagePublishing, err), err)
	} else {
		logger.CtxDebug(ctx, fmt.Sprintf("published report-ingested message %s", msgID))
	}
}

func (s *IngestionService) dropCachedSummary(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.InvalidateSummary(ctx); err != nil {
		logger.CtxWarn(ctx, fmt.Sprintf("failed to invalidate summary cache: %v", err))
	}
}
