// internal/handlers/agreement_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_rel_diary/internal/handlers"
	"go_rel_diary/internal/model"
	"go_rel_diary/internal/service/mocks"
)

func agreementRouter(mockService *mocks.AgreementService) *chi.Mux {
	h := handlers.NewAgreementHandler(mockService, testLogger)
	r := chi.NewRouter()
	r.Route("/api/v1/agreements", func(r chi.Router) {
		r.Post("/", h.PostAgreement)
		r.Get("/", h.GetAgreements)
		r.Delete("/{short_name}", h.DeleteAgreement)
		r.Get("/{short_name}/fulfillment", h.GetFulfillmentRate)
	})
	return r
}

func TestAgreementHandler_PostAgreement(t *testing.T) {
	validBody := model.CreateAgreementRequest{
		Title:        "Lavar a louça juntos",
		ShortName:    "loucas",
		MonitorDaily: true,
	}
	created := &model.Agreement{
		AgreementID:  uuid.New(),
		Title:        validBody.Title,
		ShortName:    validBody.ShortName,
		MonitorDaily: true,
		CreatedDate:  "2026-03-01",
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(s *mocks.AgreementService)
		expectedStatus int
	}{
		{
			name: "success",
			body: validBody,
			setupMock: func(s *mocks.AgreementService) {
				s.On("CreateAgreement", mock.Anything, &validBody).Return(created, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "fail: missing title",
			body:           model.CreateAgreementRequest{ShortName: "loucas"},
			setupMock:      func(s *mocks.AgreementService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "fail: duplicate short name",
			body: validBody,
			setupMock: func(s *mocks.AgreementService) {
				s.On("CreateAgreement", mock.Anything, &validBody).
					Return(nil, model.NewAppError("DUPLICATE_AGREEMENT", "Já existe um combinado com este nome curto.", "nome_curto", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewAgreementService(t)
			tc.setupMock(mockService)
			router := agreementRouter(mockService)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, jsonRequest(t, http.MethodPost, "/api/v1/agreements/", tc.body))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusCreated {
				var got model.Agreement
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, "loucas", got.ShortName)
				assert.NotEqual(t, uuid.Nil, got.AgreementID)
			}
		})
	}
}

func TestAgreementHandler_GetAgreements(t *testing.T) {
	t.Run("success: all agreements", func(t *testing.T) {
		mockService := mocks.NewAgreementService(t)
		mockService.On("ListActive", mock.Anything, false).
			Return([]model.Agreement{{ShortName: "loucas"}, {ShortName: "cinema"}}, nil).Once()
		router := agreementRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/agreements/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []model.Agreement
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("success: monitor_daily filter forwarded", func(t *testing.T) {
		mockService := mocks.NewAgreementService(t)
		mockService.On("ListActive", mock.Anything, true).
			Return([]model.Agreement{{ShortName: "loucas", MonitorDaily: true}}, nil).Once()
		router := agreementRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/agreements/?monitor_daily=true", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestAgreementHandler_DeleteAgreement(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := mocks.NewAgreementService(t)
		mockService.On("DeleteAgreement", mock.Anything, "loucas").Return(nil).Once()
		router := agreementRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/agreements/loucas", nil))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("fail: unknown short name", func(t *testing.T) {
		mockService := mocks.NewAgreementService(t)
		mockService.On("DeleteAgreement", mock.Anything, "inexistente").
			Return(model.NewAppError("NOT_FOUND", "Combinado não encontrado.", "nome_curto", model.ErrNotFound)).Once()
		router := agreementRouter(mockService)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/agreements/inexistente", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAgreementHandler_GetFulfillmentRate(t *testing.T) {
	mockService := mocks.NewAgreementService(t)
	mockService.On("FulfillmentRate", mock.Anything, "loucas").
		Return(&model.FulfillmentRateResponse{
			ShortName:         "loucas",
			FulfilledCount:    2,
			TotalRecordedDays: 4,
			Rate:              0.5,
		}, nil).Once()
	router := agreementRouter(mockService)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/agreements/loucas/fulfillment", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got model.FulfillmentRateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.InDelta(t, 0.5, got.Rate, 1e-9)
	assert.Equal(t, 4, got.TotalRecordedDays)
}
