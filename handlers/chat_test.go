package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salesbot/catalog"
	"salesbot/models"
	"salesbot/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubChatService struct {
	resp models.ChatResponse
}

func (s *stubChatService) Resolve(_ context.Context, _ models.ChatRequest) models.ChatResponse {
	return s.resp
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandleChatReturnsResolvedTurn(t *testing.T) {
	r := setupRouter()
	h := NewChatHandler(&stubChatService{resp: models.ChatResponse{
		Reply:        "Here are the services we currently offer.",
		QuickReplies: []models.QuickReply{{Label: "Car Wash", Value: "Car Wash"}},
		Actions:      map[string]any{"showTimes": true},
	}}, zap.NewNop())
	r.POST("/api/chat", h.HandleChat)

	body := `{"messages":[{"role":"user","content":"show services"}],"context":{}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Here are the services we currently offer.", resp.Reply)
	assert.Len(t, resp.QuickReplies, 1)
	assert.Equal(t, true, resp.Actions["showTimes"])
}

func TestHandleChatRejectsMalformedBody(t *testing.T) {
	r := setupRouter()
	h := NewChatHandler(&stubChatService{}, zap.NewNop())
	r.POST("/api/chat", h.HandleChat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleQuoteComputesPrice(t *testing.T) {
	r := setupRouter()
	h := NewQuoteHandler(&billing.DefaultBillingService{Catalog: catalog.Default()}, zap.NewNop())
	r.POST("/api/quote", h.HandleQuote)

	body := `{"serviceIds":["CAR-WASH"],"addOnIds":["AO-WAX"],"weekdayMorning":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2200, resp.Subtotal)
	assert.Equal(t, 220, resp.Discount)
	assert.Equal(t, 1980, resp.Total)
	assert.NotEmpty(t, resp.RuleNote)
}

func TestListServicesReturnsCatalog(t *testing.T) {
	r := setupRouter()
	h := NewCatalogHandler(catalog.Default())
	r.GET("/api/services", h.ListServices)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var services []models.ServiceItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &services))
	require.Len(t, services, 3)
	assert.Equal(t, "CAR-WASH", services[0].ID)
	assert.Len(t, services[0].AddOns, 4)
}
