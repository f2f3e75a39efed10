package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartjob-utils/internal/config"
	"smartjob-utils/internal/match/workers"
	"smartjob-utils/internal/search"
	"smartjob-utils/internal/storage"
	"smartjob-utils/pkg/models"
)

func newHandlerService(t *testing.T) *search.Service {
	t.Helper()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Workers.PoolSize = 2
	cfg.Workers.RateLimit = 600
	cfg.Matcher.MinResultCount = 1

	pool := workers.NewPoolManager(cfg)
	require.NoError(t, pool.Start())
	t.Cleanup(func() { pool.Stop() })

	return search.NewService(cfg, storage.NewMemoryRepository(), pool)
}

func postJSON(t *testing.T, handler echo.HandlerFunc, body string) (*httptest.ResponseRecorder, models.ErrorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))

	var errResp models.ErrorResponse
	if rec.Code >= http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	}
	return rec, errResp
}

func TestUploadResumeHandlerValidationFailure(t *testing.T) {
	handler := UploadResumeHandler(newHandlerService(t))

	rec, errResp := postJSON(t, handler, `{"user_id":"","format":"pdf","data":"aGk="}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_failed", errResp.Error)
	assert.Contains(t, errResp.Message, "Validation failed")
	assert.NotEmpty(t, errResp.RequestID)
}

func TestUploadResumeHandlerUnsupportedFormat(t *testing.T) {
	handler := UploadResumeHandler(newHandlerService(t))
	data := base64.StdEncoding.EncodeToString([]byte("plain resume text"))

	rec, errResp := postJSON(t, handler,
		fmt.Sprintf(`{"user_id":"user-1","format":"rtf","data":"%s"}`, data))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unsupported_format", errResp.Error)
}

func TestUploadResumeHandlerCorruptDocument(t *testing.T) {
	handler := UploadResumeHandler(newHandlerService(t))
	data := base64.StdEncoding.EncodeToString([]byte("not a zip archive"))

	rec, errResp := postJSON(t, handler,
		fmt.Sprintf(`{"user_id":"user-1","format":"docx","data":"%s"}`, data))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "corrupt_document", errResp.Error)
	assert.Contains(t, errResp.Message, "Resume extraction failed")
}

func TestUploadResumeHandlerInvalidBase64(t *testing.T) {
	handler := UploadResumeHandler(newHandlerService(t))

	rec, errResp := postJSON(t, handler, `{"user_id":"user-1","format":"plain-text","data":"%%%not-base64%%%"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_payload", errResp.Error)
}

func TestUploadResumeHandlerSuccess(t *testing.T) {
	handler := UploadResumeHandler(newHandlerService(t))
	data := base64.StdEncoding.EncodeToString([]byte("Frontend developer skilled in React"))

	rec, _ := postJSON(t, handler,
		fmt.Sprintf(`{"user_id":"user-1","format":"plain-text","data":"%s"}`, data))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UploadResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "plain-text", resp.Format)
	assert.NotEmpty(t, resp.Keywords)
}

func TestSearchJobsHandlerWithoutResume(t *testing.T) {
	handler := SearchJobsHandler(newHandlerService(t))

	rec, errResp := postJSON(t, handler, `{"user_id":"user-1","postings":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "resume_required", errResp.Error)
	assert.Equal(t, "Upload a resume before searching", errResp.Message)
}

func TestGetResultsHandlerNotFound(t *testing.T) {
	handler := GetResultsHandler(newHandlerService(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("user-1")

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "results_not_found", errResp.Error)
}
