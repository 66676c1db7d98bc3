package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IliaW/cloak-api/internal/model"
	storageMock "github.com/IliaW/cloak-api/internal/persistence/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_UpsertDomain_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testSet := []struct {
		name               string
		body               string
		mockUpsertErr      error
		expectedStatusCode int
		expectedFragment   string
		expectedRefreshes  int
	}{
		{
			name: "domain config saved",
			body: `{"domain_name":"Example.COM","white_page_url":"https://white.example",` +
				`"black_page_url":"https://black.example","blocked_countries":["kp"," ir "]}`,
			expectedStatusCode: http.StatusOK,
			expectedFragment:   "\"domain_name\":\"example.com\"",
			expectedRefreshes:  1,
		},
		{
			name:               "missing urls",
			body:               `{"domain_name":"example.com"}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedFragment:   "required",
		},
		{
			name: "storage failure",
			body: `{"domain_name":"example.com","white_page_url":"https://w.example",` +
				`"black_page_url":"https://b.example"}`,
			mockUpsertErr:      errors.New("connection refused"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedFragment:   "failed to save domain config",
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			repo := storageMock.NewDomainStorage(tt)
			repo.On("Upsert", mock.MatchedBy(func(dc *model.DomainConfig) bool {
				return dc.Status == model.DomainStatusActive
			})).Maybe().Return(test.mockUpsertErr)
			refresher := &stubRefresher{}

			h := NewDomainHandler(repo, refresher, testMetrics())
			r := gin.New()
			r.POST("/update-domain-config", h.Upsert)
			req, _ := http.NewRequest("POST", "/update-domain-config", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			responseData, _ := io.ReadAll(w.Body)
			assert.Contains(tt, string(responseData), test.expectedFragment)
			assert.Equal(tt, test.expectedStatusCode, w.Code)
			assert.Equal(tt, test.expectedRefreshes, refresher.calls)
		})
	}
}

func Test_UpsertDomain_NormalizesBlockedCountries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := storageMock.NewDomainStorage(t)
	repo.On("Upsert", mock.MatchedBy(func(dc *model.DomainConfig) bool {
		return len(dc.BlockedCountries) == 2 &&
			dc.BlockedCountries[0] == "KP" && dc.BlockedCountries[1] == "IR"
	})).Return(nil)

	h := NewDomainHandler(repo, &stubRefresher{}, testMetrics())
	r := gin.New()
	r.POST("/update-domain-config", h.Upsert)
	body := `{"domain_name":"example.com","white_page_url":"https://w.example",` +
		`"black_page_url":"https://b.example","blocked_countries":[" kp ","ir",""]}`
	req, _ := http.NewRequest("POST", "/update-domain-config", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_GetDomainConfigs_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := storageMock.NewDomainStorage(t)
	repo.On("GetAll").Return([]*model.DomainConfig{
		{DomainName: "a.example", Status: model.DomainStatusActive},
		{DomainName: "b.example", Status: "paused"},
	}, nil)

	h := NewDomainHandler(repo, &stubRefresher{}, testMetrics())
	r := gin.New()
	r.GET("/get-domain-configs", h.GetAll)
	req, _ := http.NewRequest("GET", "/get-domain-configs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	responseData, _ := io.ReadAll(w.Body)
	assert.Contains(t, string(responseData), "\"a.example\"")
	assert.Contains(t, string(responseData), "\"b.example\"")
}

func Test_DeleteDomain_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testSet := []struct {
		name               string
		mockDeleteErr      error
		expectedStatusCode int
		expectedRefreshes  int
	}{
		{name: "deleted", expectedStatusCode: http.StatusOK, expectedRefreshes: 1},
		{
			name:               "not found",
			mockDeleteErr:      errors.New("domain config 'example.com' not found"),
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "storage failure",
			mockDeleteErr:      errors.New("connection refused"),
			expectedStatusCode: http.StatusInternalServerError,
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			repo := storageMock.NewDomainStorage(tt)
			repo.On("Delete", "example.com").Return(test.mockDeleteErr)
			refresher := &stubRefresher{}

			h := NewDomainHandler(repo, refresher, testMetrics())
			r := gin.New()
			r.DELETE("/delete-domain-config/:domain", h.Delete)
			req, _ := http.NewRequest("DELETE", "/delete-domain-config/example.com", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(tt, test.expectedStatusCode, w.Code)
			assert.Equal(tt, test.expectedRefreshes, refresher.calls)
		})
	}
}
