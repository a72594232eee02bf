package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creditreportanalyser/internal/pkg/consts"
	"creditreportanalyser/internal/pkg/models"
	storemodels "creditreportanalyser/internal/pkg/store/models"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) IngestReport(ctx context.Context, payload []byte) (*models.UploadResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadResult), args.Error(1)
}

func (m *MockReportService) GetReport(ctx context.Context, id string) (*storemodels.CreditReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storemodels.CreditReport), args.Error(1)
}

func (m *MockReportService) ListReports(ctx context.Context, query models.ListReportsQuery) (*models.ReportList, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReportList), args.Error(1)
}

func (m *MockReportService) DeleteReport(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) GetSummary(ctx context.Context) (*models.ReportsSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReportsSummary), args.Error(1)
}

func setupReportRouter(reportService *MockReportService, summaryService *MockSummaryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(reportService, summaryService)

	router := gin.New()
	api := router.Group("/api/reports")
	api.POST("/upload", handler.UploadReport)
	api.GET("", handler.ListReports)
	api.GET("/summary", handler.GetSummary)
	api.GET("/:id", handler.GetReport)
	api.DELETE("/:id", handler.DeleteReport)
	return router
}

func multipartUpload(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var envelope models.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestUploadReport_Success(t *testing.T) {
	reportService := new(MockReportService)
	score := 719
	reportService.On("IngestReport", mock.Anything, []byte("<xml/>")).Return(&models.UploadResult{
		ID:            "66a0f1",
		ReportNumber:  "1595504758919",
		Name:          "Sagar Ugle",
		PAN:           "AOZPB0247S",
		CreditScore:   &score,
		TotalAccounts: 1,
	}, nil)

	router := setupReportRouter(reportService, new(MockSummaryService))
	body, contentType := multipartUpload(t, "report", "report.xml", "<xml/>")

	req, _ := http.NewRequest(http.MethodPost, "/api/reports/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.Success)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "1595504758919", data["reportNumber"])
	assert.Equal(t, "Sagar Ugle", data["name"])
	assert.Equal(t, float64(719), data["creditScore"])
}

func TestUploadReport_MissingFileField(t *testing.T) {
	router := setupReportRouter(new(MockReportService), new(MockSummaryService))
	body, contentType := multipartUpload(t, "wrongfield", "report.xml", "<xml/>")

	req, _ := http.NewRequest(http.MethodPost, "/api/reports/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.False(t, envelope.Success)
	assert.Equal(t, consts.ErrorInvalidReportFormat.Code, envelope.Error)
}

func TestUploadReport_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid format",
			serviceErr: consts.ErrorInvalidReportFormat,
			wantStatus: http.StatusBadRequest,
			wantCode:   consts.ErrorInvalidReportFormat.Code,
		},
		{
			name:       "parsing failure",
			serviceErr: consts.ErrorReportParsingFailed.WithDetail("bad xml"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   consts.ErrorReportParsingFailed.Code,
		},
		{
			name:       "internal",
			serviceErr: consts.ErrorInternal,
			wantStatus: http.StatusInternalServerError,
			wantCode:   consts.ErrorInternal.Code,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reportService := new(MockReportService)
			reportService.On("IngestReport", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)

			router := setupReportRouter(reportService, new(MockSummaryService))
			body, contentType := multipartUpload(t, "report", "report.xml", "<xml/>")

			req, _ := http.NewRequest(http.MethodPost, "/api/reports/upload", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			envelope := decodeEnvelope(t, w)
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.wantCode, envelope.Error)
		})
	}
}

func TestUploadReport_Conflict(t *testing.T) {
	reportService := new(MockReportService)
	reportService.On("IngestReport", mock.Anything, mock.Anything).Return(nil, &models.ConflictError{
		ReportNumber: "1595504758919",
		ExistingID:   "66a0f1",
	})

	router := setupReportRouter(reportService, new(MockSummaryService))
	body, contentType := multipartUpload(t, "report", "report.xml", "<xml/>")

	req, _ := http.NewRequest(http.MethodPost, "/api/reports/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, consts.ErrorDuplicateReport.Code, envelope.Error)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "1595504758919", data["reportNumber"])
	assert.Equal(t, "66a0f1", data["existingReportId"])
}

func TestListReports_DefaultsApplied(t *testing.T) {
	reportService := new(MockReportService)
	reportService.On("ListReports", mock.Anything, models.ListReportsQuery{Page: 1, Limit: 10}).
		Return(&models.ReportList{
			Reports:    []storemodels.CreditReport{},
			Pagination: models.Pagination{Page: 1, Limit: 10},
		}, nil)

	router := setupReportRouter(reportService, new(MockSummaryService))

	req, _ := http.NewRequest(http.MethodGet, "/api/reports", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	reportService.AssertExpectations(t)
}

func TestListReports_InvalidLimit(t *testing.T) {
	router := setupReportRouter(new(MockReportService), new(MockSummaryService))

	req, _ := http.NewRequest(http.MethodGet, "/api/reports?limit=1000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, consts.ErrorInvalidQueryParams.Code, envelope.Error)
	assert.NotEmpty(t, envelope.ValidationErrors)
}

func TestGetReport(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		reportService := new(MockReportService)
		reportService.On("GetReport", mock.Anything, "66a0f1").
			Return(&storemodels.CreditReport{ReportNumber: "123"}, nil)

		router := setupReportRouter(reportService, new(MockSummaryService))

		req, _ := http.NewRequest(http.MethodGet, "/api/reports/66a0f1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		reportService := new(MockReportService)
		reportService.On("GetReport", mock.Anything, "zz").Return(nil, consts.ErrorInvalidReportID)

		router := setupReportRouter(reportService, new(MockSummaryService))

		req, _ := http.NewRequest(http.MethodGet, "/api/reports/zz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		reportService := new(MockReportService)
		reportService.On("GetReport", mock.Anything, mock.Anything).Return(nil, consts.ErrorReportNotFound)

		router := setupReportRouter(reportService, new(MockSummaryService))

		req, _ := http.NewRequest(http.MethodGet, "/api/reports/66a0f1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, consts.ErrorReportNotFound.Code, envelope.Error)
	})
}

func TestDeleteReport(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		reportService := new(MockReportService)
		reportService.On("DeleteReport", mock.Anything, "66a0f1").Return(nil)

		router := setupReportRouter(reportService, new(MockSummaryService))

		req, _ := http.NewRequest(http.MethodDelete, "/api/reports/66a0f1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		reportService := new(MockReportService)
		reportService.On("DeleteReport", mock.Anything, mock.Anything).Return(consts.ErrorReportNotFound)

		router := setupReportRouter(reportService, new(MockSummaryService))

		req, _ := http.NewRequest(http.MethodDelete, "/api/reports/66a0f1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetSummary(t *testing.T) {
	summaryService := new(MockSummaryService)
	summaryService.On("GetSummary", mock.Anything).Return(&models.ReportsSummary{
		TotalReports: 2,
	}, nil)

	router := setupReportRouter(new(MockReportService), summaryService)

	req, _ := http.NewRequest(http.MethodGet, "/api/reports/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	data := raw["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["totalReports"])

	// null average survives serialization
	average, present := data["averageCreditScore"]
	assert.True(t, present)
	assert.Nil(t, average)
}
