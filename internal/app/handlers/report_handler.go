package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"creditreportanalyser/internal/app"
	"creditreportanalyser/internal/pkg/consts"
	"creditreportanalyser/internal/pkg/log_messages"
	"creditreportanalyser/internal/pkg/logger"
	"creditreportanalyser/internal/pkg/models"
)

const uploadFileField = "report"

type ReportHandler struct {
	reportService  app.ReportService
	summaryService app.SummaryService
}

func NewReportHandler(reportService app.ReportService, summaryService app.SummaryService) *ReportHandler {
	return &ReportHandler{
		reportService:  reportService,
		summaryService: summaryService,
	}
}

// UploadReport ingests one multipart-uploaded Experian XML file.
func (h *ReportHandler) UploadReport(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := c.FormFile(uploadFileField)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   consts.ErrorInvalidReportFormat.Code,
			Message: fmt.Sprintf("multipart file field %q is required", uploadFileField),
		})
		return
	}

	opened, err := file.Open()
	if err != nil {
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorReadingUploadedFile, err), err)
		respondError(c, consts.ErrorInternal)
		return
	}
	defer opened.Close()

	payload, err := io.ReadAll(opened)
	if err != nil {
		logger.CtxError(ctx, fmt.Sprintf(log_messages.ErrorReadingUploadedFile, err), err)
		respondError(c, consts.ErrorInternal)
		return
	}

	result, err := h.reportService.IngestReport(ctx, payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Message: "Credit report ingested",
		Data:    result,
	})
}

// ListReports returns one page of stored reports.
func (h *ReportHandler) ListReports(c *gin.Context) {
	var query models.ListReportsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success:          false,
			Error:            consts.ErrorInvalidQueryParams.Code,
			Message:          consts.ErrorInvalidQueryParams.Message,
			ValidationErrors: formatValidationErrors(err),
		})
		return
	}

	list, err := h.reportService.ListReports(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: list})
}

// GetReport returns the full canonical record for one id.
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.reportService.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: report})
}

// DeleteReport removes one stored report.
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	if err := h.reportService.DeleteReport(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{Success: true, Message: "Credit report deleted"})
}

// GetSummary returns the aggregate over all stored reports.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.summaryService.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: summary})
}

// respondError translates classified service errors into the response
// envelope and status code.
func respondError(c *gin.Context, err error) {
	var conflict *models.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, models.APIResponse{
			Success: false,
			Error:   consts.ErrorDuplicateReport.Code,
			Message: consts.ErrorDuplicateReport.Message,
			Data: models.ConflictResult{
				ReportNumber:     conflict.ReportNumber,
				ExistingReportID: conflict.ExistingID,
			},
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, consts.ErrorInvalidReportFormat), errors.Is(err, consts.ErrorInvalidReportID):
		status = http.StatusBadRequest
	case errors.Is(err, consts.ErrorReportParsingFailed):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, consts.ErrorReportNotFound):
		status = http.StatusNotFound
	}

	var coded *models.CustomError
	if !errors.As(err, &coded) {
		coded = consts.ErrorInternal
	}

	c.JSON(status, models.APIResponse{
		Success: false,
		Error:   coded.Code,
		Message: err.Error(),
	})
}

func formatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	formatted := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		formatted = append(formatted, fmt.Sprintf("%s failed validation on %s", fieldError.Field(), fieldError.Tag()))
	}
	return formatted
}
