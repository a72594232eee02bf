package models

// APIResponse is the envelope returned by every endpoint.
type APIResponse struct {
	Success          bool        `json:"success"`
	Error            string      `json:"error,omitempty"`
	Message          string      `json:"message,omitempty"`
	ValidationErrors []string    `json:"validationErrors,omitempty"`
	Data             interface{} `json:"data,omitempty"`
}

// UploadResult is the condensed projection returned after a successful
// ingestion instead of the full record.
type UploadResult struct {
	ID            string `json:"id"`
	ReportNumber  string `json:"reportNumber"`
	Name          string `json:"name"`
	PAN           string `json:"pan"`
	CreditScore   *int   `json:"creditScore,omitempty"`
	TotalAccounts int    `json:"totalAccounts"`
}

// ConflictResult points the caller at the record that already holds the
// uploaded reportNumber.
type ConflictResult struct {
	ReportNumber     string `json:"reportNumber"`
	ExistingReportID string `json:"existingReportId"`
}

// ListReportsQuery carries pagination parameters for report listing.
type ListReportsQuery struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int64 `json:"totalPages"`
}

// ReportList is the payload of the paginated listing endpoint.
type ReportList struct {
	Reports    interface{} `json:"reports"`
	Pagination Pagination  `json:"pagination"`
}

// ReportsSummary is the aggregator output surfaced to callers.
// AverageCreditScore is rounded to the nearest integer for display and is
// null when no stored report carries a score.
type ReportsSummary struct {
	TotalReports            int  `json:"totalReports"`
	AverageCreditScore      *int `json:"averageCreditScore"`
	TotalActiveAccounts     int  `json:"totalActiveAccounts"`
	TotalClosedAccounts     int  `json:"totalClosedAccounts"`
	TotalOutstandingBalance int  `json:"totalOutstandingBalance"`
}
