package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IliaW/cloak-api/internal/cloak"
	cloakMock "github.com/IliaW/cloak-api/internal/cloak/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_Simulate_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testSet := []struct {
		name               string
		body               string
		expectedStatusCode int
		expectedFragment   string
	}{
		{
			name: "simulation with default filters",
			body: `{"user_agent":"Mozilla/5.0","ip_address":"198.51.100.10",` +
				`"country_code":"US","link_id":"campaign_default_filters"}`,
			expectedStatusCode: http.StatusOK,
			expectedFragment:   "\"applied_filters_summary\"",
		},
		{
			name:               "missing user agent",
			body:               `{"ip_address":"198.51.100.10"}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedFragment:   "'user_agent' and 'ip_address' fields are required",
		},
		{
			name:               "missing ip address",
			body:               `{"user_agent":"Mozilla/5.0"}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedFragment:   "'user_agent' and 'ip_address' fields are required",
		},
		{
			name:               "malformed body",
			body:               `{not json`,
			expectedStatusCode: http.StatusBadRequest,
			expectedFragment:   "invalid request body",
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			src := cloakMock.NewConfigSource(tt)
			src.On("LinkFilters", mock.Anything).Maybe().Return(nil, false)
			sim := cloak.NewSimulator(cloak.NewResolver(src, 0.7))

			h := NewSimulationHandler(sim, testMetrics())
			r := gin.New()
			r.POST("/simulate_request", h.Simulate)
			req, _ := http.NewRequest("POST", "/simulate_request", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			responseData, _ := io.ReadAll(w.Body)
			assert.Contains(tt, string(responseData), test.expectedFragment)
			assert.Equal(tt, test.expectedStatusCode, w.Code)
		})
	}
}

func Test_Simulate_Handler_TraceMatchesLivePath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	src := cloakMock.NewConfigSource(t)
	sim := cloak.NewSimulator(cloak.NewResolver(src, 0.7))

	h := NewSimulationHandler(sim, testMetrics())
	r := gin.New()
	r.POST("/simulate_request", h.Simulate)
	body := `{"user_agent":"Mozilla/5.0","ip_address":"198.51.100.10","country_code":"US"}`
	req, _ := http.NewRequest("POST", "/simulate_request", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	responseData, _ := io.ReadAll(w.Body)
	response := string(responseData)
	// a synthetic request with no fingerprint and no overrides stays black
	assert.Contains(t, response, "\"decision\":\"black\"")
	assert.Contains(t, response, "passed all checks")
}
