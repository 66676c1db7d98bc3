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

type stubRefresher struct {
	calls int
}

func (s *stubRefresher) Refresh() error {
	s.calls++
	return nil
}

func Test_CreateCampaign_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testSet := []struct {
		name               string
		body               string
		mockDomain         func() (*model.DomainConfig, error)
		mockExisting       func() (*model.Campaign, error)
		mockSaveErr        error
		expectedStatusCode int
		expectedFragment   string
		expectedRefreshes  int
	}{
		{
			name: "campaign created",
			body: `{"domain_name":"Example.com","path":"/promo","white_content":"<html>w</html>",` +
				`"black_content":"<html>b</html>"}`,
			mockDomain: func() (*model.DomainConfig, error) { return activeDomain(), nil },
			mockExisting: func() (*model.Campaign, error) {
				return nil, errors.New("campaign 'promo' not found for domain 'example.com'")
			},
			expectedStatusCode: http.StatusCreated,
			expectedFragment:   "\"domain_name\":\"example.com\"",
			expectedRefreshes:  1,
		},
		{
			name: "domain not configured",
			body: `{"domain_name":"ghost.example","path":"promo","white_content":"w","black_content":"b"}`,
			mockDomain: func() (*model.DomainConfig, error) {
				return nil, errors.New("domain config 'ghost.example' not found")
			},
			mockExisting:       func() (*model.Campaign, error) { return nil, errors.New("not found") },
			expectedStatusCode: http.StatusNotFound,
			expectedFragment:   "\"error\":\"domain 'ghost.example' is not configured\"",
		},
		{
			name:               "duplicate campaign",
			body:               `{"domain_name":"example.com","path":"promo","white_content":"w","black_content":"b"}`,
			mockDomain:         func() (*model.DomainConfig, error) { return activeDomain(), nil },
			mockExisting:       func() (*model.Campaign, error) { return &model.Campaign{}, nil },
			expectedStatusCode: http.StatusConflict,
			expectedFragment:   "already exists",
		},
		{
			name:               "missing required fields",
			body:               `{"domain_name":"example.com","path":"promo"}`,
			mockDomain:         func() (*model.DomainConfig, error) { return activeDomain(), nil },
			mockExisting:       func() (*model.Campaign, error) { return nil, errors.New("not found") },
			expectedStatusCode: http.StatusBadRequest,
			expectedFragment:   "required",
		},
		{
			name:               "multi-segment path rejected",
			body:               `{"domain_name":"example.com","path":"a/b","white_content":"w","black_content":"b"}`,
			mockDomain:         func() (*model.DomainConfig, error) { return activeDomain(), nil },
			mockExisting:       func() (*model.Campaign, error) { return nil, errors.New("not found") },
			expectedStatusCode: http.StatusBadRequest,
			expectedFragment:   "single segment",
		},
		{
			name:               "storage failure",
			body:               `{"domain_name":"example.com","path":"promo","white_content":"w","black_content":"b"}`,
			mockDomain:         func() (*model.DomainConfig, error) { return activeDomain(), nil },
			mockExisting:       func() (*model.Campaign, error) { return nil, errors.New("not found") },
			mockSaveErr:        errors.New("connection refused"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedFragment:   "failed to save campaign",
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			domainRepo := storageMock.NewDomainStorage(tt)
			domainRepo.On("Get", mock.Anything).Maybe().Return(test.mockDomain())
			campaignRepo := storageMock.NewCampaignStorage(tt)
			campaignRepo.On("Get", mock.Anything, mock.Anything).Maybe().Return(test.mockExisting())
			campaignRepo.On("Save", mock.Anything).Maybe().Return(test.mockSaveErr)
			refresher := &stubRefresher{}

			h := NewCampaignHandler(campaignRepo, domainRepo, refresher, testMetrics())
			r := gin.New()
			r.POST("/campaigns", h.Create)
			req, _ := http.NewRequest("POST", "/campaigns", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			responseData, _ := io.ReadAll(w.Body)
			assert.Contains(tt, string(responseData), test.expectedFragment)
			assert.Equal(tt, test.expectedStatusCode, w.Code)
			assert.Equal(tt, test.expectedRefreshes, refresher.calls)
		})
	}
}

func Test_UpdateCampaign_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	existing := func() *model.Campaign {
		return &model.Campaign{
			DomainName:   "example.com",
			Path:         "promo",
			WhiteContent: "old-white",
			BlackContent: "old-black",
		}
	}

	t.Run("partial update keeps unspecified fields", func(tt *testing.T) {
		campaignRepo := storageMock.NewCampaignStorage(tt)
		campaignRepo.On("Get", "example.com", "promo").Return(existing(), nil)
		campaignRepo.On("Update", mock.MatchedBy(func(c *model.Campaign) bool {
			return c.WhiteContent == "new-white" && c.BlackContent == "old-black"
		})).Return(existing(), nil)
		refresher := &stubRefresher{}

		h := NewCampaignHandler(campaignRepo, storageMock.NewDomainStorage(tt), refresher, testMetrics())
		r := gin.New()
		r.PUT("/campaigns/:domain/:path", h.Update)
		req, _ := http.NewRequest("PUT", "/campaigns/example.com/promo",
			strings.NewReader(`{"white_content":"new-white"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(tt, http.StatusOK, w.Code)
		assert.Equal(tt, 1, refresher.calls)
	})

	t.Run("unknown campaign", func(tt *testing.T) {
		campaignRepo := storageMock.NewCampaignStorage(tt)
		campaignRepo.On("Get", "example.com", "nope").
			Return(nil, errors.New("campaign 'nope' not found for domain 'example.com'"))
		refresher := &stubRefresher{}

		h := NewCampaignHandler(campaignRepo, storageMock.NewDomainStorage(tt), refresher, testMetrics())
		r := gin.New()
		r.PUT("/campaigns/:domain/:path", h.Update)
		req, _ := http.NewRequest("PUT", "/campaigns/example.com/nope", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(tt, http.StatusNotFound, w.Code)
		assert.Equal(tt, 0, refresher.calls)
	})
}

func Test_DeleteCampaign_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testSet := []struct {
		name               string
		mockDeleteErr      error
		expectedStatusCode int
		expectedRefreshes  int
	}{
		{name: "deleted", mockDeleteErr: nil, expectedStatusCode: http.StatusOK, expectedRefreshes: 1},
		{
			name:               "not found",
			mockDeleteErr:      errors.New("campaign 'promo' not found for domain 'example.com'"),
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
			campaignRepo := storageMock.NewCampaignStorage(tt)
			campaignRepo.On("Delete", "example.com", "promo").Return(test.mockDeleteErr)
			refresher := &stubRefresher{}

			h := NewCampaignHandler(campaignRepo, storageMock.NewDomainStorage(tt), refresher, testMetrics())
			r := gin.New()
			r.DELETE("/campaigns/:domain/:path", h.Delete)
			req, _ := http.NewRequest("DELETE", "/campaigns/example.com/promo", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(tt, test.expectedStatusCode, w.Code)
			assert.Equal(tt, test.expectedRefreshes, refresher.calls)
		})
	}
}

func Test_ListCampaigns_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	domainRepo := storageMock.NewDomainStorage(t)
	domainRepo.On("Get", "example.com").Return(activeDomain(), nil)
	campaignRepo := storageMock.NewCampaignStorage(t)
	campaignRepo.On("GetByDomain", "example.com").Return([]*model.Campaign{
		{DomainName: "example.com", Path: "promo"},
		{DomainName: "example.com", Path: "sale"},
	}, nil)

	h := NewCampaignHandler(campaignRepo, domainRepo, &stubRefresher{}, testMetrics())
	r := gin.New()
	r.GET("/campaigns/:domain", h.ListByDomain)
	req, _ := http.NewRequest("GET", "/campaigns/example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	responseData, _ := io.ReadAll(w.Body)
	assert.Contains(t, string(responseData), "\"path\":\"promo\"")
	assert.Contains(t, string(responseData), "\"path\":\"sale\"")
}
