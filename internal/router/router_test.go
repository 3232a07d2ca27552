package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/handler"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/router"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/mocks"
)

func newRouter(svc *mocks.MockExtractionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return router.Setup(
		handler.NewExtractionHandler(svc),
		handler.NewHealthHandler("openai"),
		[]string{"*"},
	)
}

func TestRouter_Health(t *testing.T) {
	r := newRouter(new(mocks.MockExtractionService))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/health", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"status":"healthy","service":"medical-ner-extraction","provider":"openai"}`, w.Body.String())
}

func TestRouter_Extract(t *testing.T) {
	svc := new(mocks.MockExtractionService)
	svc.On("Extract", mock.Anything, mock.Anything).
		Return(&domain.ExtractionResult{References: []domain.EntityReference{}}, nil)
	r := newRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{
		"transcript": []map[string]string{{"time": "00:00:01", "speaker": "Gydytojas", "text": "Labas"}},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/extract", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}

func TestRouter_ServesUIAndDocs(t *testing.T) {
	r := newRouter(new(mocks.MockExtractionService))

	for _, path := range []string{"/", "/docs/index.html", "/docs/doc.json"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := newRouter(new(mocks.MockExtractionService))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/nope", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
