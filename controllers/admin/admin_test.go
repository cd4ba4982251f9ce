package adminController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/middleware"
	"github.com/luksiny/UrbanHarvestHub/models"
	"github.com/luksiny/UrbanHarvestHub/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Workshop{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
	))
	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	admin := r.Group("/api/admin")
	admin.POST("/login", LoginHandler(db, testSecret, 2*time.Hour))

	protected := admin.Group("")
	protected.Use(middleware.ValidateToken(testSecret))
	{
		protected.GET("/stats", StatsHandler(db))
		protected.GET("/orders", GetAllOrdersHandler(db))
		protected.GET("/orders/export", ExportOrdersHandler(db))
		protected.PATCH("/orders/:id/status", UpdateOrderStatusHandler(db))
	}
	return r
}

func perform(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
	Errors  []string               `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func seedAdmin(t *testing.T, db *gorm.DB) models.Admin {
	t.Helper()
	admin := models.Admin{
		Email:    "admin@urbanharvesthub.com",
		Password: "Admin123!",
		Name:     "Admin",
	}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := perform(t, r, http.MethodPost, "/api/admin/login", "", map[string]string{
		"email":    "admin@urbanharvesthub.com",
		"password": "Admin123!",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, ok := decode(t, w).Data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	seedAdmin(t, db)

	w := perform(t, r, http.MethodPost, "/api/admin/login", "", map[string]string{
		"email":    "admin@urbanharvesthub.com",
		"password": "Admin123!",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	env := decode(t, w)
	assert.Equal(t, "Login successful", env.Message)
	assert.NotEmpty(t, env.Data["token"])
	assert.Equal(t, "2h0m0s", env.Data["expiresIn"])
	adminData := env.Data["admin"].(map[string]interface{})
	assert.Equal(t, "admin@urbanharvesthub.com", adminData["email"])
}

func TestLoginUniformFailureMessage(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	seedAdmin(t, db)

	// Wrong password and unknown email produce the same response.
	for _, creds := range []map[string]string{
		{"email": "admin@urbanharvesthub.com", "password": "wrong"},
		{"email": "nobody@urbanharvesthub.com", "password": "Admin123!"},
	} {
		w := perform(t, r, http.MethodPost, "/api/admin/login", "", creds)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid email or password.", decode(t, w).Message)
	}
}

func TestLoginValidation(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	w := perform(t, r, http.MethodPost, "/api/admin/login", "", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decode(t, w)
	assert.Contains(t, env.Errors, "Email is required")
	assert.Contains(t, env.Errors, "Password is required")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	w := perform(t, r, http.MethodGet, "/api/admin/stats", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access denied. No token provided.", decode(t, w).Message)

	w = perform(t, r, http.MethodGet, "/api/admin/stats", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token.", decode(t, w).Message)
}

func TestExpiredTokenGetsDedicatedMessage(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	admin := seedAdmin(t, db)

	expired, err := utils.GenerateAdminToken(admin.ID, testSecret, -time.Minute)
	require.NoError(t, err)

	w := perform(t, r, http.MethodGet, "/api/admin/stats", expired, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token expired. Please log in again.", decode(t, w).Message)
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	seedAdmin(t, db)

	orders := []models.Order{
		{OrderNumber: "UH-AAAA-1000", Items: []byte(`[]`), Shipping: []byte(`{}`), Total: 10.50, Status: models.OrderStatusPending},
		{OrderNumber: "UH-BBBB-2000", Items: []byte(`[]`), Shipping: []byte(`{}`), Total: 4.49, Status: models.OrderStatusShipped},
	}
	require.NoError(t, db.Create(&orders).Error)

	workshops := []models.Workshop{
		{Title: "Future", Description: "d", Instructor: "i", Date: time.Now().Add(48 * time.Hour), Duration: 1, Location: "l", Price: 1, Capacity: 5, Category: "Gardening"},
		{Title: "Past", Description: "d", Instructor: "i", Date: time.Now().Add(-48 * time.Hour), Duration: 1, Location: "l", Price: 1, Capacity: 5, Category: "Gardening"},
	}
	require.NoError(t, db.Create(&workshops).Error)

	token := login(t, r)
	w := perform(t, r, http.MethodGet, "/api/admin/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	env := decode(t, w)
	assert.EqualValues(t, 2, env.Data["totalOrders"])
	assert.InDelta(t, 14.99, env.Data["totalRevenue"].(float64), 0.001)
	assert.EqualValues(t, 1, env.Data["activeWorkshops"])
}

func TestUpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	seedAdmin(t, db)

	order := models.Order{OrderNumber: "UH-CCCC-3000", Items: []byte(`[]`), Shipping: []byte(`{}`), Total: 5, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)

	token := login(t, r)

	w := perform(t, r, http.MethodPatch, fmt.Sprintf("/api/admin/orders/%d/status", order.ID), token,
		map[string]string{"status": "shipped"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Order status updated.", decode(t, w).Message)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, reloaded.Status)

	// Unknown status is rejected before any lookup.
	w = perform(t, r, http.MethodPatch, fmt.Sprintf("/api/admin/orders/%d/status", order.ID), token,
		map[string]string{"status": "vanished"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Errors, "Invalid status")

	w = perform(t, r, http.MethodPatch, "/api/admin/orders/424242/status", token,
		map[string]string{"status": "shipped"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found.", decode(t, w).Message)
}

func TestGetAllOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	seedAdmin(t, db)

	older := models.Order{OrderNumber: "UH-DDDD-4000", Items: []byte(`[]`), Shipping: []byte(`{}`), Total: 1, Status: models.OrderStatusPending, CreatedAt: time.Now().Add(-time.Hour)}
	newer := models.Order{OrderNumber: "UH-EEEE-5000", Items: []byte(`[]`), Shipping: []byte(`{}`), Total: 2, Status: models.OrderStatusPending, CreatedAt: time.Now()}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	token := login(t, r)
	w := perform(t, r, http.MethodGet, "/api/admin/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "UH-EEEE-5000", resp.Data[0]["orderNumber"])
}

func TestExportOrdersReturnsSpreadsheet(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	seedAdmin(t, db)

	order := models.Order{
		OrderNumber: "UH-FFFF-6000",
		Items:       []byte(`[]`),
		Shipping:    []byte(`{"fullName":"Jane Doe","email":"jane@example.com","city":"Springfield"}`),
		Total:       12.34,
		Status:      models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)

	token := login(t, r)
	w := perform(t, r, http.MethodGet, "/api/admin/orders/export", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=orders-")
	assert.NotZero(t, w.Body.Len())
}
