package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	return db
}

func sampleOrder(productID string) *OrderRequest {
	return &OrderRequest{
		Items: []OrderItem{
			{ProductID: productID, Name: "Fresh Tomatoes", Price: 4.99, Quantity: 2, Unit: "lb"},
		},
		Shipping: Shipping{
			FullName: "Jane Doe", Address: "12 Harvest Lane", City: "Springfield",
			PostalCode: "12345", Email: "jane@example.com",
		},
		Total: 9.98,
	}
}

// -------- Cart --------

func TestCartAddMergesSameProduct(t *testing.T) {
	db := openTestDB(t)
	cart, err := NewCart(db)
	require.NoError(t, err)

	require.NoError(t, cart.Add(CartEntry{ProductID: "1", Name: "Fresh Tomatoes", Price: 4.99, Quantity: 1, Unit: "lb"}))
	require.NoError(t, cart.Add(CartEntry{ProductID: "1", Name: "Fresh Tomatoes", Price: 4.99, Quantity: 2, Unit: "lb"}))

	items, err := cart.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCartUpdateQuantityAndRemove(t *testing.T) {
	db := openTestDB(t)
	cart, err := NewCart(db)
	require.NoError(t, err)

	require.NoError(t, cart.Add(CartEntry{ProductID: "1", Name: "Tomatoes", Price: 4.99, Quantity: 2}))
	require.NoError(t, cart.Add(CartEntry{ProductID: "2", Name: "Basil", Price: 3.50, Quantity: 1}))

	require.NoError(t, cart.UpdateQuantity("1", 5))
	items, err := cart.Items()
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].Quantity)

	// Zero quantity drops the line.
	require.NoError(t, cart.UpdateQuantity("2", 0))
	items, err = cart.Items()
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, cart.Remove("1"))
	items, err = cart.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartSetReplacesAndTotals(t *testing.T) {
	db := openTestDB(t)
	cart, err := NewCart(db)
	require.NoError(t, err)

	require.NoError(t, cart.Add(CartEntry{ProductID: "9", Name: "Old", Price: 1, Quantity: 1}))
	require.NoError(t, cart.Set([]CartEntry{
		{ProductID: "1", Name: "Tomatoes", Price: 4.99, Quantity: 2},
		{ProductID: "2", Name: "Basil", Price: 3.50, Quantity: 1},
	}))

	items, err := cart.Items()
	require.NoError(t, err)
	assert.Len(t, items, 2)

	total, err := cart.Total()
	require.NoError(t, err)
	assert.InDelta(t, 13.48, total, 0.001)

	count, err := cart.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCartSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	cart, err := NewCart(db)
	require.NoError(t, err)
	require.NoError(t, cart.Add(CartEntry{ProductID: "1", Name: "Tomatoes", Price: 4.99, Quantity: 2}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db2, err := OpenDB(path)
	require.NoError(t, err)
	cart2, err := NewCart(db2)
	require.NoError(t, err)
	items, err := cart2.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tomatoes", items[0].Name)
}

// -------- Queue --------

func TestQueuePreservesInsertionOrder(t *testing.T) {
	db := openTestDB(t)
	queue, err := NewQueue(db)
	require.NoError(t, err)

	first, err := queue.Enqueue(sampleOrder("1"))
	require.NoError(t, err)
	second, err := queue.Enqueue(sampleOrder("2"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ClientID, second.ClientID)

	rows, err := queue.Pending()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, second.ID, rows[1].ID)

	req, err := queue.Request(&rows[0])
	require.NoError(t, err)
	assert.Equal(t, "1", req.Items[0].ProductID)
}

func TestQueueMarkSyncedHidesRow(t *testing.T) {
	db := openTestDB(t)
	queue, err := NewQueue(db)
	require.NoError(t, err)

	row, err := queue.Enqueue(sampleOrder("1"))
	require.NoError(t, err)
	require.NoError(t, queue.MarkSynced(row.ID))

	rows, err := queue.Pending()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// -------- Syncer --------

type fakeServer struct {
	calls    atomic.Int64
	failFor  func(req *OrderRequest) bool
	lastSeen []string
}

func newOrderServer(t *testing.T, fs *fakeServer) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)

		var req OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		fs.calls.Add(1)
		fs.lastSeen = append(fs.lastSeen, req.Items[0].ProductID)

		w.Header().Set("Content-Type", "application/json")
		if fs.failFor != nil && fs.failFor(&req) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "One or more product IDs do not exist. Use valid product ids from the products table.",
			})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Order placed successfully",
			"data": map[string]interface{}{
				"id":          1,
				"orderNumber": "UH-TEST-1234",
				"total":       req.Total,
				"status":      "pending",
			},
		})
	}))
}

func TestSyncerOfflineIsNoOp(t *testing.T) {
	db := openTestDB(t)
	queue, err := NewQueue(db)
	require.NoError(t, err)
	_, err = queue.Enqueue(sampleOrder("1"))
	require.NoError(t, err)

	fs := &fakeServer{}
	srv := newOrderServer(t, fs)
	defer srv.Close()

	syncer := NewSyncer(New(srv.URL), queue)
	// Never marked online: nothing goes out.
	assert.Equal(t, 0, syncer.Sync(context.Background()))
	assert.EqualValues(t, 0, fs.calls.Load())

	rows, err := queue.Pending()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSyncerReplaysInOrderAndNotifies(t *testing.T) {
	db := openTestDB(t)
	queue, err := NewQueue(db)
	require.NoError(t, err)
	_, err = queue.Enqueue(sampleOrder("1"))
	require.NoError(t, err)
	_, err = queue.Enqueue(sampleOrder("2"))
	require.NoError(t, err)

	fs := &fakeServer{}
	srv := newOrderServer(t, fs)
	defer srv.Close()

	syncer := NewSyncer(New(srv.URL), queue)
	var confirmed []string
	syncer.OnSynced = func(res SyncResult) {
		confirmed = append(confirmed, res.Confirmation.OrderNumber)
	}

	syncer.Start(context.Background())

	assert.EqualValues(t, 2, fs.calls.Load())
	assert.Equal(t, []string{"1", "2"}, fs.lastSeen)
	assert.Len(t, confirmed, 2)

	rows, err := queue.Pending()
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Acknowledged rows are deleted outright, not retained with a flag.
	var total int64
	require.NoError(t, db.Model(&PendingOrder{}).Count(&total).Error)
	assert.EqualValues(t, 0, total)
}

func TestSyncerFailedRowStaysQueued(t *testing.T) {
	db := openTestDB(t)
	queue, err := NewQueue(db)
	require.NoError(t, err)
	_, err = queue.Enqueue(sampleOrder("bad"))
	require.NoError(t, err)
	_, err = queue.Enqueue(sampleOrder("2"))
	require.NoError(t, err)

	fs := &fakeServer{failFor: func(req *OrderRequest) bool {
		return req.Items[0].ProductID == "bad"
	}}
	srv := newOrderServer(t, fs)
	defer srv.Close()

	syncer := NewSyncer(New(srv.URL), queue)
	syncer.Start(context.Background())

	// The failed row stays behind; the pass does not stop at it.
	assert.EqualValues(t, 2, fs.calls.Load())
	rows, err := queue.Pending()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// The accepted row is gone from the store, not just hidden.
	var total int64
	require.NoError(t, db.Model(&PendingOrder{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)

	req, err := queue.Request(&rows[0])
	require.NoError(t, err)
	assert.Equal(t, "bad", req.Items[0].ProductID)
}

func TestSyncerTransitionToOnlineTriggersSync(t *testing.T) {
	db := openTestDB(t)
	queue, err := NewQueue(db)
	require.NoError(t, err)
	_, err = queue.Enqueue(sampleOrder("1"))
	require.NoError(t, err)

	fs := &fakeServer{}
	srv := newOrderServer(t, fs)
	defer srv.Close()

	syncer := NewSyncer(New(srv.URL), queue)
	ctx := context.Background()

	syncer.SetOnline(ctx, false)
	assert.EqualValues(t, 0, fs.calls.Load())

	syncer.SetOnline(ctx, true)
	assert.EqualValues(t, 1, fs.calls.Load())

	// Going online while already online does not re-trigger.
	syncer.SetOnline(ctx, true)
	assert.EqualValues(t, 1, fs.calls.Load())
}

func TestSyncerConcurrentPassIsSkipped(t *testing.T) {
	db := openTestDB(t)
	queue, err := NewQueue(db)
	require.NoError(t, err)
	_, err = queue.Enqueue(sampleOrder("1"))
	require.NoError(t, err)

	fs := &fakeServer{}
	srv := newOrderServer(t, fs)
	defer srv.Close()

	syncer := NewSyncer(New(srv.URL), queue)
	syncer.online.Store(true)

	// A pass already holding the lock makes a second call a no-op.
	syncer.mu.Lock()
	assert.Equal(t, 0, syncer.Sync(context.Background()))
	syncer.mu.Unlock()

	assert.Equal(t, 1, syncer.Sync(context.Background()))
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	fs := &fakeServer{failFor: func(*OrderRequest) bool { return true }}
	srv := newOrderServer(t, fs)
	defer srv.Close()

	api := New(srv.URL)
	_, err := api.CreateOrder(context.Background(), sampleOrder("bad"))
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "product IDs do not exist")
}
