package interfaces

import (
	"context"

	"creditreportanalyser/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreditReportRepositoryInterface interface {
	Insert(ctx context.Context, report *models.CreditReport) (primitive.ObjectID, error)
	FindByReportNumber(ctx context.Context, reportNumber string) (*models.CreditReport, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CreditReport, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	FindPage(ctx context.Context, page, limit int) ([]models.CreditReport, int64, error)
	AggregateSummary(ctx context.Context) (*models.SummaryAggregate, error)
}

// CreditReportStoreInterface is the generic-repository surface the
// credit-report repository builds on.
type CreditReportStoreInterface interface {
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.CreditReport, error)
	FindWithOptions(ctx context.Context, filter interface{}, opt *options.FindOptions) ([]models.CreditReport, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Delete(ctx context.Context, filter interface{}) (int64, error)
	Aggregate(ctx context.Context, pipeline interface{}, result interface{}) error
}
