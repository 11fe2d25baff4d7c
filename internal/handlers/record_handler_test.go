// internal/handlers/record_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_rel_diary/internal/handlers"
	"go_rel_diary/internal/model"
	"go_rel_diary/internal/service/mocks"
)

func recordRouter(mockService *mocks.RecordService) *chi.Mux {
	h := handlers.NewRecordHandler(mockService, testLogger)
	r := chi.NewRouter()
	r.Route("/api/v1/records", func(r chi.Router) {
		r.Get("/", h.GetRecords)
		r.Get("/{date}", h.GetRecord)
		r.Put("/{date}", h.PutRecord)
		r.Post("/{date}/lock", h.LockRecord)
		r.Delete("/{date}/lock", h.UnlockRecord)
		r.Post("/{date}/messages", h.ImportMessages)
	})
	return r
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeErrorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestRecordHandler_PutRecord(t *testing.T) {
	validBody := model.UpsertRecordRequest{
		MoodScore:     9,
		ActionsBySelf: []string{"flores"},
		GratitudeNote: "jantar surpresa",
	}
	savedRecord := &model.DailyRecord{Date: "2026-03-01", MoodScore: 9, GratitudeNote: "jantar surpresa"}

	tests := []struct {
		name           string
		target         string
		body           interface{}
		rawBody        string
		setupMock      func(s *mocks.RecordService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "success",
			target: "/api/v1/records/2026-03-01",
			body:   validBody,
			setupMock: func(s *mocks.RecordService) {
				s.On("UpsertDraft", mock.Anything, "2026-03-01", &validBody).
					Return(savedRecord, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "fail: malformed date in URL",
			target:         "/api/v1/records/01-03-2026",
			body:           validBody,
			setupMock:      func(s *mocks.RecordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_URL_PARAM",
		},
		{
			name:           "fail: body is not JSON",
			target:         "/api/v1/records/2026-03-01",
			rawBody:        "{not json",
			setupMock:      func(s *mocks.RecordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "fail: mood score missing",
			target:         "/api/v1/records/2026-03-01",
			body:           model.UpsertRecordRequest{ActionsBySelf: []string{"flores"}},
			setupMock:      func(s *mocks.RecordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:   "fail: record locked",
			target: "/api/v1/records/2026-03-01",
			body:   validBody,
			setupMock: func(s *mocks.RecordService) {
				s.On("UpsertDraft", mock.Anything, "2026-03-01", &validBody).
					Return(nil, model.NewAppError("RECORD_LOCKED", "O registro deste dia está travado.", "date", model.ErrLocked)).Once()
			},
			expectedStatus: http.StatusLocked,
			expectedCode:   "RECORD_LOCKED",
		},
		{
			name:   "fail: concurrent save conflict",
			target: "/api/v1/records/2026-03-01",
			body:   validBody,
			setupMock: func(s *mocks.RecordService) {
				s.On("UpsertDraft", mock.Anything, "2026-03-01", &validBody).
					Return(nil, model.ErrConflict).Once()
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewRecordService(t)
			tc.setupMock(mockService)
			router := recordRouter(mockService)

			var req *http.Request
			if tc.rawBody != "" {
				req = httptest.NewRequest(http.MethodPut, tc.target, bytes.NewBufferString(tc.rawBody))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = jsonRequest(t, http.MethodPut, tc.target, tc.body)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeErrorCode(t, rr))
			}
			if tc.expectedStatus == http.StatusOK {
				var got model.DailyRecord
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, "2026-03-01", got.Date)
			}
		})
	}
}

func TestRecordHandler_LockRecord(t *testing.T) {
	t.Run("success: returns the xp movement", func(t *testing.T) {
		result := &model.CommitResult{
			Record:        &model.DailyRecord{Date: "2026-03-01", MoodScore: 9, Locked: true, XPAwarded: true},
			XPDelta:       25,
			XPTotal:       110,
			PreviousLevel: 1,
			Level:         2,
			LeveledUp:     true,
		}
		mockService := mocks.NewRecordService(t)
		mockService.On("CommitAndLock", mock.Anything, "2026-03-01").Return(result, nil).Once()
		router := recordRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/records/2026-03-01/lock", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got model.CommitResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 25, got.XPDelta)
		assert.True(t, got.LeveledUp)
		assert.True(t, got.Record.Locked)
	})

	t.Run("fail: no record for the date", func(t *testing.T) {
		mockService := mocks.NewRecordService(t)
		mockService.On("CommitAndLock", mock.Anything, "2026-03-01").
			Return(nil, model.NewAppError("NOT_FOUND", "Nenhum registro para esta data.", "date", model.ErrNotFound)).Once()
		router := recordRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/records/2026-03-01/lock", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("fail: malformed date", func(t *testing.T) {
		mockService := mocks.NewRecordService(t)
		router := recordRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/records/hoje/lock", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRecordHandler_UnlockRecord(t *testing.T) {
	mockService := mocks.NewRecordService(t)
	mockService.On("Unlock", mock.Anything, "2026-03-01").
		Return(&model.DailyRecord{Date: "2026-03-01", MoodScore: 9, Locked: false, XPAwarded: true}, nil).Once()
	router := recordRouter(mockService)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/records/2026-03-01/lock", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got model.DailyRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.False(t, got.Locked)
	assert.True(t, got.XPAwarded)
}

func TestRecordHandler_ImportMessages(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		body := model.ImportMessagesRequest{Text: "2026-03-01 10:00 - Ana: bom dia"}
		mockService := mocks.NewRecordService(t)
		mockService.On("ImportMessages", mock.Anything, "2026-03-01", &body).
			Return(&model.DailyRecord{Date: "2026-03-01", MoodScore: 7, ImportedExcerpt: body.Text}, nil).Once()
		router := recordRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, jsonRequest(t, http.MethodPost, "/api/v1/records/2026-03-01/messages", body))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("fail: empty text rejected by validation", func(t *testing.T) {
		mockService := mocks.NewRecordService(t)
		router := recordRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, jsonRequest(t, http.MethodPost, "/api/v1/records/2026-03-01/messages", model.ImportMessagesRequest{}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeErrorCode(t, rr))
	})
}

func TestRecordHandler_GetRecord(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := mocks.NewRecordService(t)
		mockService.On("GetRecord", mock.Anything, "2026-03-01").
			Return(&model.DailyRecord{Date: "2026-03-01", MoodScore: 8}, nil).Once()
		router := recordRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/records/2026-03-01", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("fail: not found", func(t *testing.T) {
		mockService := mocks.NewRecordService(t)
		mockService.On("GetRecord", mock.Anything, "2026-03-01").
			Return(nil, model.NewAppError("NOT_FOUND", "Nenhum registro para esta data.", "date", model.ErrNotFound)).Once()
		router := recordRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/records/2026-03-01", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRecordHandler_GetRecords(t *testing.T) {
	mockService := mocks.NewRecordService(t)
	mockService.On("ListRecords", mock.Anything).
		Return([]*model.DailyRecord{
			{Date: "2026-03-01", MoodScore: 8},
			{Date: "2026-03-02", MoodScore: 5},
		}, nil).Once()
	router := recordRouter(mockService)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/records/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []model.DailyRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "2026-03-01", got[0].Date)
}
