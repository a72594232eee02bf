package credit_reports

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"creditreportanalyser/internal/pkg/consts"
	mongodb "creditreportanalyser/internal/pkg/db/mongo"
	"creditreportanalyser/internal/pkg/log_messages"
	"creditreportanalyser/internal/pkg/logger"
	"creditreportanalyser/internal/pkg/store/models"
	"creditreportanalyser/internal/pkg/store/repository"
	"creditreportanalyser/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreditReportRepository struct {
	repo    interfaces.CreditReportStoreInterface
	indexes interfaces.IndexCreator
}

func NewCreditReportRepository(client *mongodb.MongoClient) *CreditReportRepository {
	collection := client.Database.Collection(consts.CreditReportCollection)
	repo := repository.NewMongoRepository[models.CreditReport](collection)
	return &CreditReportRepository{repo: repo, indexes: collection.Indexes()}
}

func NewCreditReportRepositoryWithInterface(repo interfaces.CreditReportStoreInterface) *CreditReportRepository {
	return &CreditReportRepository{repo: repo}
}

// EnsureIndexes creates the unique index on reportNumber. The index is the
// enforcement of last resort for the at-most-once-per-reportNumber policy;
// the pre-insert lookup is only an early exit.
func (cr *CreditReportRepository) EnsureIndexes(ctx context.Context) error {
	if cr.indexes == nil {
		return nil
	}

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "reportNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := cr.indexes.CreateOne(ctx, model); err != nil {
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorEnsuringCreditReportIndexes, err), err)
		return err
	}

	logger.CtxDebug(ctx, "Ensured unique index on reportNumber")
	return nil
}

func (cr *CreditReportRepository) Insert(ctx context.Context, report *models.CreditReport) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	report.CreatedAt = now
	report.UpdatedAt = now

	result, err := cr.repo.Create(ctx, report)
	if err != nil {
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorInsertingCreditReportDoc, err), err,
			slog.String("report_number", report.ReportNumber))
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	logger.CtxInfo(ctx, "Inserted credit report",
		slog.String("report_number", report.ReportNumber),
		slog.String("report_id", id.Hex()),
	)

	return id, nil
}

func (cr *CreditReportRepository) FindByReportNumber(ctx context.Context, reportNumber string) (*models.CreditReport, error) {
	filter := bson.M{"reportNumber": reportNumber}

	report, err := cr.repo.FindOne(ctx, filter, options.FindOne())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxDebug(ctx, "No report found for reportNumber", slog.String("report_number", reportNumber))
			return nil, err
		}
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorFetchingCreditReportDoc, err), err,
			slog.String("report_number", reportNumber))
		return nil, err
	}

	return &report, nil
}

func (cr *CreditReportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CreditReport, error) {
	filter := bson.M{"_id": id}

	report, err := cr.repo.FindOne(ctx, filter, options.FindOne())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxWarn(ctx, "No report found for id", slog.String("report_id", id.Hex()))
			return nil, err
		}
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorFetchingCreditReportDoc, err), err,
			slog.String("report_id", id.Hex()))
		return nil, err
	}

	return &report, nil
}

func (cr *CreditReportRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id}

	deleted, err := cr.repo.Delete(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorDeletingCreditReportDoc, err), err,
			slog.String("report_id", id.Hex()))
		return err
	}
	if deleted == 0 {
		return mongo.ErrNoDocuments
	}

	logger.CtxInfo(ctx, "Deleted credit report", slog.String("report_id", id.Hex()))
	return nil
}

// FindPage returns one page of reports sorted by creation time descending,
// plus the total record count.
func (cr *CreditReportRepository) FindPage(ctx context.Context, page, limit int) ([]models.CreditReport, int64, error) {
	total, err := cr.repo.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorFetchingCreditReportDoc, err), err)
		return nil, 0, err
	}

	opt := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	reports, err := cr.repo.FindWithOptions(ctx, bson.M{}, opt)
	if err != nil {
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorFetchingCreditReportDoc, err), err)
		return nil, 0, err
	}

	logger.CtxDebug(ctx, "Fetched report page",
		slog.Int("page", page),
		slog.Int("limit", limit),
		slog.Int("count", len(reports)),
	)

	return reports, total, nil
}

// AggregateSummary groups the whole collection into cross-report statistics.
// $avg skips documents without a creditScore, so the average stays null when
// no stored report carries one.
func (cr *CreditReportRepository) AggregateSummary(ctx context.Context) (*models.SummaryAggregate, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalReports", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "averageCreditScore", Value: bson.D{{Key: "$avg", Value: "$creditScore"}}},
			{Key: "totalActiveAccounts", Value: bson.D{{Key: "$sum", Value: "$reportSummary.activeAccounts"}}},
			{Key: "totalClosedAccounts", Value: bson.D{{Key: "$sum", Value: "$reportSummary.closedAccounts"}}},
			{Key: "totalOutstandingBalance", Value: bson.D{{Key: "$sum", Value: "$reportSummary.outstandingBalanceAll"}}},
		}}},
	}

	var aggregate models.SummaryAggregate
	if err := cr.repo.Aggregate(ctx, pipeline, &aggregate); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// empty collection: zero counters, nil average
			return &models.SummaryAggregate{}, nil
		}
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorAggregatingCreditReports, err), err)
		return nil, err
	}

	return &aggregate, nil
}
