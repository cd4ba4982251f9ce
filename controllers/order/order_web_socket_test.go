package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/luksiny/UrbanHarvestHub/models"
	"github.com/luksiny/UrbanHarvestHub/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedSecret = "feed-test-secret"

func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := gin.New()
	r.GET("/api/orders/ws", OrderFeedHandler(feedSecret))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server, token string) string {
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/orders/ws"
	if token != "" {
		u += "?token=" + token
	}
	return u
}

func TestOrderFeedRejectsBadToken(t *testing.T) {
	srv := newFeedServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "garbage"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOrderFeedDeliversNewOrders(t *testing.T) {
	srv := newFeedServer(t)

	token, err := utils.GenerateAdminToken(1, feedSecret, time.Hour)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, token), nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration happens on the server goroutine after the handshake.
	require.Eventually(t, func() bool {
		wsMu.Lock()
		defer wsMu.Unlock()
		return len(wsClients) > 0
	}, time.Second, 10*time.Millisecond)

	order := &models.Order{
		ID:          7,
		OrderNumber: "UH-TEST-4321",
		Total:       9.98,
		Status:      models.OrderStatusPending,
	}
	broadcastNewOrder(order)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "UH-TEST-4321", got["orderNumber"])
	assert.Equal(t, "pending", got["status"])
}
