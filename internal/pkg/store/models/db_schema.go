package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BasicDetails holds applicant identity extracted from the source document.
type BasicDetails struct {
	FirstName   string `bson:"firstName" json:"firstName"`
	LastName    string `bson:"lastName" json:"lastName"`
	MobilePhone string `bson:"mobilePhone" json:"mobilePhone"`
	PAN         string `bson:"pan" json:"pan"`
	DateOfBirth string `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender      string `bson:"gender,omitempty" json:"gender,omitempty"`
}

// ReportSummary holds the account and balance counters from the CAIS summary
// section. All counters default to 0 when the source omits them.
type ReportSummary struct {
	TotalAccounts               int `bson:"totalAccounts" json:"totalAccounts"`
	ActiveAccounts              int `bson:"activeAccounts" json:"activeAccounts"`
	ClosedAccounts              int `bson:"closedAccounts" json:"closedAccounts"`
	DefaultAccounts             int `bson:"defaultAccounts" json:"defaultAccounts"`
	OutstandingBalanceSecured   int `bson:"outstandingBalanceSecured" json:"outstandingBalanceSecured"`
	OutstandingBalanceUnsecured int `bson:"outstandingBalanceUnsecured" json:"outstandingBalanceUnsecured"`
	OutstandingBalanceAll       int `bson:"outstandingBalanceAll" json:"outstandingBalanceAll"`
	EnquiriesLast7Days          int `bson:"enquiriesLast7Days" json:"enquiriesLast7Days"`
	EnquiriesLast30Days         int `bson:"enquiriesLast30Days" json:"enquiriesLast30Days"`
	EnquiriesLast90Days         int `bson:"enquiriesLast90Days" json:"enquiriesLast90Days"`
	EnquiriesLast180Days        int `bson:"enquiriesLast180Days" json:"enquiriesLast180Days"`
}

// Address is the holder address embedded in a credit account.
type Address struct {
	FirstLine  string `bson:"firstLine" json:"firstLine"`
	SecondLine string `bson:"secondLine,omitempty" json:"secondLine,omitempty"`
	ThirdLine  string `bson:"thirdLine,omitempty" json:"thirdLine,omitempty"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PinCode    string `bson:"pinCode" json:"pinCode"`
	Country    string `bson:"country" json:"country"`
}

// AccountHistory is one calendar month's delinquency snapshot. Duplicate
// months from the source pass through verbatim.
type AccountHistory struct {
	Year                int    `bson:"year" json:"year"`
	Month               int    `bson:"month" json:"month"`
	DaysPastDue         int    `bson:"daysPastDue" json:"daysPastDue"`
	AssetClassification string `bson:"assetClassification,omitempty" json:"assetClassification,omitempty"`
}

// CreditAccount is one credit facility inside a report. PortfolioType,
// AccountType, AccountStatus and PaymentRating stay raw coded strings;
// decoding to display labels happens only at the presentation boundary.
type CreditAccount struct {
	SubscriberName  string           `bson:"subscriberName" json:"subscriberName"`
	AccountNumber   string           `bson:"accountNumber" json:"accountNumber"`
	PortfolioType   string           `bson:"portfolioType" json:"portfolioType"`
	AccountType     string           `bson:"accountType" json:"accountType"`
	OpenDate        string           `bson:"openDate" json:"openDate"`
	DateReported    string           `bson:"dateReported" json:"dateReported"`
	DateClosed      string           `bson:"dateClosed,omitempty" json:"dateClosed,omitempty"`
	CreditLimit     *int             `bson:"creditLimit,omitempty" json:"creditLimit,omitempty"`
	HighestCredit   *int             `bson:"highestCredit,omitempty" json:"highestCredit,omitempty"`
	CurrentBalance  int              `bson:"currentBalance" json:"currentBalance"`
	AmountPastDue   int              `bson:"amountPastDue" json:"amountPastDue"`
	AccountStatus   string           `bson:"accountStatus" json:"accountStatus"`
	PaymentRating   string           `bson:"paymentRating" json:"paymentRating"`
	RepaymentTenure *int             `bson:"repaymentTenure,omitempty" json:"repaymentTenure,omitempty"`
	Address         Address          `bson:"address" json:"address"`
	History         []AccountHistory `bson:"history" json:"history"`
}

// CreditReport is the canonical record persisted per successfully parsed
// upload. ReportNumber is the natural key, enforced unique by the store.
// Reports are immutable after insertion; there is no update path.
type CreditReport struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReportNumber          string             `bson:"reportNumber" json:"reportNumber"`
	ReportDate            string             `bson:"reportDate" json:"reportDate"`
	ReportTime            string             `bson:"reportTime" json:"reportTime"`
	Version               string             `bson:"version" json:"version"`
	BasicDetails          BasicDetails       `bson:"basicDetails" json:"basicDetails"`
	ReportSummary         ReportSummary      `bson:"reportSummary" json:"reportSummary"`
	CreditAccounts        []CreditAccount    `bson:"creditAccounts" json:"creditAccounts"`
	CreditScore           *int               `bson:"creditScore,omitempty" json:"creditScore,omitempty"`
	CreditScoreConfidence string             `bson:"creditScoreConfidence,omitempty" json:"creditScoreConfidence,omitempty"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SummaryAggregate is the decoded result of the cross-report aggregation
// pipeline. AverageCreditScore stays nil when no stored report has a score.
type SummaryAggregate struct {
	TotalReports            int      `bson:"totalReports" json:"totalReports"`
	AverageCreditScore      *float64 `bson:"averageCreditScore" json:"-"`
	TotalActiveAccounts     int      `bson:"totalActiveAccounts" json:"totalActiveAccounts"`
	TotalClosedAccounts     int      `bson:"totalClosedAccounts" json:"totalClosedAccounts"`
	TotalOutstandingBalance int      `bson:"totalOutstandingBalance" json:"totalOutstandingBalance"`
}
