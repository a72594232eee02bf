package consts

import "creditreportanalyser/internal/pkg/models"

var (
	ErrorInvalidReportFormat = &models.CustomError{
		Code:    "CRED_ANALYSER_VALIDATION_INVALID_EXPERIAN_FORMAT",
		Message: "Uploaded file is not a valid Experian credit report",
	}
	ErrorReportParsingFailed = &models.CustomError{
		Code:    "CRED_ANALYSER_PARSING_EXTRACTION_FAILED",
		Message: "Failed to parse credit report",
	}
	ErrorDuplicateReport = &models.CustomError{
		Code:    "CRED_ANALYSER_VALIDATION_DUPLICATE_REPORT",
		Message: "A report with this report number already exists",
	}
	ErrorReportNotFound = &models.CustomError{
		Code:    "CRED_ANALYSER_REPORT_NOT_FOUND",
		Message: "Credit report not found",
	}
	ErrorInvalidQueryParams = &models.CustomError{
		Code:    "CRED_ANALYSER_VALIDATION_INVALID_QUERY_PARAMS",
		Message: "Invalid query parameters",
	}
	ErrorInvalidReportID = &models.CustomError{
		Code:    "CRED_ANALYSER_VALIDATION_INVALID_REPORT_ID",
		Message: "Report id is not a valid object id",
	}
	ErrorInternal = &models.CustomError{
		Code:    "CRED_ANALYSER_INTERNAL_ERROR",
		Message: "Internal server error",
	}
)
