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

func Test_CreateLink_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testSet := []struct {
		name               string
		body               string
		mockSave           func() (int64, error)
		expectedStatusCode int
		expectedFragment   string
		expectedRefreshes  int
	}{
		{
			name: "link created",
			body: `{"campaign_name":"spring","black_page_url_a":"https://black-a.example",` +
				`"black_page_url_b":"https://black-b.example","white_page_url":"https://white.example"}`,
			mockSave:           func() (int64, error) { return 42, nil },
			expectedStatusCode: http.StatusCreated,
			expectedFragment:   "\"id\":42",
			expectedRefreshes:  1,
		},
		{
			name:               "missing required fields",
			body:               `{"campaign_name":"spring"}`,
			mockSave:           func() (int64, error) { return 0, nil },
			expectedStatusCode: http.StatusBadRequest,
			expectedFragment:   "required",
		},
		{
			name: "storage failure",
			body: `{"campaign_name":"spring","black_page_url_a":"https://a.example",` +
				`"white_page_url":"https://w.example"}`,
			mockSave:           func() (int64, error) { return 0, errors.New("connection refused") },
			expectedStatusCode: http.StatusInternalServerError,
			expectedFragment:   "failed to save link",
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			repo := storageMock.NewLinkStorage(tt)
			repo.On("Save", mock.Anything).Maybe().Return(test.mockSave())
			refresher := &stubRefresher{}

			h := NewLinkHandler(repo, refresher, testMetrics())
			r := gin.New()
			r.POST("/links", h.Create)
			req, _ := http.NewRequest("POST", "/links", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			responseData, _ := io.ReadAll(w.Body)
			assert.Contains(tt, string(responseData), test.expectedFragment)
			assert.Equal(tt, test.expectedStatusCode, w.Code)
			assert.Equal(tt, test.expectedRefreshes, refresher.calls)
		})
	}
}

func Test_GetLinkFilters_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	enabled := false
	testSet := []struct {
		name               string
		linkID             string
		mockLink           func() (*model.CloakedLink, error)
		mockFilters        func() (*model.FilterSettings, error)
		expectedStatusCode int
		expectedFragment   string
	}{
		{
			name:     "stored filters returned",
			linkID:   "42",
			mockLink: func() (*model.CloakedLink, error) { return &model.CloakedLink{ID: 42}, nil },
			mockFilters: func() (*model.FilterSettings, error) {
				return &model.FilterSettings{Ml: &model.MlFilter{Enabled: &enabled}}, nil
			},
			expectedStatusCode: http.StatusOK,
			expectedFragment:   "\"ml\":{\"enabled\":false}",
		},
		{
			name:     "no stored filters yields empty object",
			linkID:   "42",
			mockLink: func() (*model.CloakedLink, error) { return &model.CloakedLink{ID: 42}, nil },
			mockFilters: func() (*model.FilterSettings, error) {
				return nil, errors.New("filters for link '42' not found")
			},
			expectedStatusCode: http.StatusOK,
			expectedFragment:   "{}",
		},
		{
			name:               "unknown link",
			linkID:             "99",
			mockLink:           func() (*model.CloakedLink, error) { return nil, errors.New("link with id '99' not found") },
			mockFilters:        func() (*model.FilterSettings, error) { return nil, nil },
			expectedStatusCode: http.StatusNotFound,
			expectedFragment:   "not found",
		},
		{
			name:               "non-numeric id",
			linkID:             "abc",
			mockLink:           func() (*model.CloakedLink, error) { return nil, nil },
			mockFilters:        func() (*model.FilterSettings, error) { return nil, nil },
			expectedStatusCode: http.StatusBadRequest,
			expectedFragment:   "must be an integer",
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			repo := storageMock.NewLinkStorage(tt)
			repo.On("Get", mock.Anything).Maybe().Return(test.mockLink())
			repo.On("GetFilters", mock.Anything).Maybe().Return(test.mockFilters())

			h := NewLinkHandler(repo, &stubRefresher{}, testMetrics())
			r := gin.New()
			r.GET("/links/:link_id/filters", h.GetFilters)
			req, _ := http.NewRequest("GET", "/links/"+test.linkID+"/filters", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			responseData, _ := io.ReadAll(w.Body)
			assert.Contains(tt, string(responseData), test.expectedFragment)
			assert.Equal(tt, test.expectedStatusCode, w.Code)
		})
	}
}

func Test_UpdateLinkFilters_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testSet := []struct {
		name               string
		linkID             string
		body               string
		mockLink           func() (*model.CloakedLink, error)
		mockSaveErr        error
		expectedStatusCode int
		expectedFragment   string
		expectedRefreshes  int
	}{
		{
			name:               "filters replaced",
			linkID:             "42",
			body:               `{"filters":{"ml":{"enabled":false}}}`,
			mockLink:           func() (*model.CloakedLink, error) { return &model.CloakedLink{ID: 42}, nil },
			expectedStatusCode: http.StatusOK,
			expectedFragment:   "\"link_id\":\"42\"",
			expectedRefreshes:  1,
		},
		{
			name:               "missing filters field",
			linkID:             "42",
			body:               `{}`,
			mockLink:           func() (*model.CloakedLink, error) { return &model.CloakedLink{ID: 42}, nil },
			expectedStatusCode: http.StatusBadRequest,
			expectedFragment:   "'filters' field is required",
		},
		{
			name:               "unknown link",
			linkID:             "99",
			body:               `{"filters":{}}`,
			mockLink:           func() (*model.CloakedLink, error) { return nil, errors.New("link with id '99' not found") },
			expectedStatusCode: http.StatusNotFound,
			expectedFragment:   "not found",
		},
		{
			name:               "storage failure",
			linkID:             "42",
			body:               `{"filters":{}}`,
			mockLink:           func() (*model.CloakedLink, error) { return &model.CloakedLink{ID: 42}, nil },
			mockSaveErr:        errors.New("connection refused"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedFragment:   "failed to save link filters",
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			repo := storageMock.NewLinkStorage(tt)
			repo.On("Get", mock.Anything).Maybe().Return(test.mockLink())
			repo.On("SaveFilters", mock.Anything, mock.Anything).Maybe().Return(test.mockSaveErr)
			refresher := &stubRefresher{}

			h := NewLinkHandler(repo, refresher, testMetrics())
			r := gin.New()
			r.PUT("/links/:link_id/filters", h.UpdateFilters)
			req, _ := http.NewRequest("PUT", "/links/"+test.linkID+"/filters", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			responseData, _ := io.ReadAll(w.Body)
			assert.Contains(tt, string(responseData), test.expectedFragment)
			assert.Equal(tt, test.expectedStatusCode, w.Code)
			assert.Equal(tt, test.expectedRefreshes, refresher.calls)
		})
	}
}
