package experian

import (
	"fmt"
	"time"

	"creditreportanalyser/internal/pkg/store/models"
)

// MapReport assembles one canonical CreditReport from a parsed generic tree.
// A missing INProfileResponse root is the only hard failure; every
// field-level absence below it is recovered with defaults or omission.
func MapReport(tree map[string]interface{}) (*models.CreditReport, error) {
	root := mapAt(tree, "INProfileResponse")
	if root == nil {
		return nil, fmt.Errorf("document has no INProfileResponse root element")
	}

	header := mapAt(root, "CreditProfileHeader")
	fallbackHeader := mapAt(root, "Header")

	now := time.Now()

	// Identity fields are metadata, not business-critical: synthesize rather
	// than reject an otherwise-valid document.
	reportNumber := firstNonEmpty(
		stringAt(header, "ReportNumber"),
		stringAt(fallbackHeader, "ReportNumber"),
	)
	if reportNumber == "" {
		reportNumber = fmt.Sprintf("%d", now.UnixMilli())
	}

	reportDate := firstNonEmpty(
		stringAt(header, "ReportDate"),
		stringAt(fallbackHeader, "ReportDate"),
	)
	if reportDate == "" {
		reportDate = now.Format("20060102")
	}

	reportTime := firstNonEmpty(
		stringAt(header, "ReportTime"),
		stringAt(fallbackHeader, "ReportTime"),
	)
	if reportTime == "" {
		reportTime = now.Format("150405")
	}

	score, confidence := extractScore(root)

	report := &models.CreditReport{
		ReportNumber:          reportNumber,
		ReportDate:            NormalizeDate(reportDate),
		ReportTime:            reportTime,
		Version:               stringAt(header, "Version"),
		BasicDetails:          extractBasicDetails(root),
		ReportSummary:         extractReportSummary(root),
		CreditAccounts:        extractAccounts(root),
		CreditScore:           score,
		CreditScoreConfidence: confidence,
	}

	return report, nil
}
