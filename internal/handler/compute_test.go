package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"pulsovital-golang/internal/model/request"
	"pulsovital-golang/internal/model/response"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockComputeService is a mock implementation of the ComputeService interface
type MockComputeService struct {
	mock.Mock
}

func (m *MockComputeService) Compute(ctx context.Context, r request.ComputeRequest) (response.ComputeResponse, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(response.ComputeResponse), args.Error(1)
}

func TestNewComputeHandler(t *testing.T) {
	mockService := &MockComputeService{}
	handler := NewComputeHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestComputeHandler_Compute(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        string
		setupMock          func(*MockComputeService)
		expectedStatusCode int
		validateResponse   func(*testing.T, map[string]any)
	}{
		{
			name: "successful compute",
			requestBody: `{
				"datos_crudos": {
					"economico": {"ingresos_fijos": 50000}
				}
			}`,
			setupMock: func(mockService *MockComputeService) {
				expectedResponse := response.ComputeResponse{
					Raw:   response.RawResult{IngresosFijos: 50000, NivelRiesgoPatrimonial: "Alto"},
					Notes: []string{},
				}
				mockService.On("Compute",
					mock.Anything,
					mock.MatchedBy(func(req request.ComputeRequest) bool {
						economico, ok := req.DatosCrudos["economico"].(map[string]any)
						return ok && economico["ingresos_fijos"] == float64(50000)
					})).Return(expectedResponse, nil)
			},
			expectedStatusCode: http.StatusOK,
			validateResponse: func(t *testing.T, resp map[string]any) {
				raw := resp["raw"].(map[string]any)
				assert.Equal(t, float64(50000), raw["ingresos_fijos"])
				assert.Equal(t, "Alto", raw["nivel_riesgo_patrimonial"])
				notes, ok := resp["notes"].([]any)
				assert.True(t, ok)
				assert.Empty(t, notes)
			},
		},
		{
			name: "flags are forwarded to the service",
			requestBody: `{
				"datos_crudos": {},
				"flags": {"credito_incluido_en_egresos": true}
			}`,
			setupMock: func(mockService *MockComputeService) {
				mockService.On("Compute",
					mock.Anything,
					mock.MatchedBy(func(req request.ComputeRequest) bool {
						return req.Flags.CreditoIncluidoEnEgresos &&
							!req.Flags.FuturosCompromisosIncluidoEnEgresos
					})).Return(response.ComputeResponse{Notes: []string{}}, nil)
			},
			expectedStatusCode: http.StatusOK,
			validateResponse: func(t *testing.T, resp map[string]any) {
				assert.NotNil(t, resp["raw"])
				assert.NotNil(t, resp["formatted"])
			},
		},
		{
			name:        "invalid JSON format",
			requestBody: `{"invalid": json}`,
			setupMock: func(mockService *MockComputeService) {
				// JSON parsing fails before the service is reached
			},
			expectedStatusCode: http.StatusBadRequest,
			validateResponse: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, "Invalid JSON format", resp["detail"])
			},
		},
		{
			name:        "empty request body",
			requestBody: ``,
			setupMock: func(mockService *MockComputeService) {
				// JSON parsing fails before the service is reached
			},
			expectedStatusCode: http.StatusBadRequest,
			validateResponse: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, "Invalid JSON format", resp["detail"])
			},
		},
		{
			name:        "missing datos_crudos",
			requestBody: `{"flags": {}}`,
			setupMock: func(mockService *MockComputeService) {
				// validation fails before the service is reached
			},
			expectedStatusCode: http.StatusBadRequest,
			validateResponse: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, "datos_crudos is required", resp["detail"])
			},
		},
		{
			name:        "service returns error",
			requestBody: `{"datos_crudos": {}}`,
			setupMock: func(mockService *MockComputeService) {
				mockService.On("Compute", mock.Anything, mock.Anything).
					Return(response.ComputeResponse{}, errors.New("computation failed"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			validateResponse: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, "computation failed", resp["detail"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockComputeService{}
			tt.setupMock(mockService)

			handler := NewComputeHandler(mockService)

			req := httptest.NewRequest(http.MethodPost, "/compute", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()

			handler.Compute(w, req)

			assert.Equal(t, tt.expectedStatusCode, w.Code)

			var fromResponse map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &fromResponse)
			assert.NoError(t, err)

			tt.validateResponse(t, fromResponse)

			mockService.AssertExpectations(t)
		})
	}
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	Health(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]bool
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err)
	assert.True(t, body["ok"])
}
