package client

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PendingOrder is an order captured while offline. Rows replay in
// insertion order; a row only leaves the table once the server has
// accepted it.
type PendingOrder struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID  string         `gorm:"size:36;uniqueIndex" json:"clientId"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `json:"createdAt"`
	Synced    bool           `gorm:"default:false" json:"synced"`
}

// Queue is the durable order outbox.
type Queue struct {
	db *gorm.DB
}

// OpenDB opens the client-local database used by the cart and queue.
func OpenDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func NewQueue(db *gorm.DB) (*Queue, error) {
	if err := db.AutoMigrate(&PendingOrder{}); err != nil {
		return nil, err
	}
	return &Queue{db: db}, nil
}

// Enqueue parks an order locally and returns the stored row. The
// client id lets the caller correlate the row with the confirmation
// that eventually comes back.
func (q *Queue) Enqueue(req *OrderRequest) (*PendingOrder, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	row := PendingOrder{
		ClientID: uuid.NewString(),
		Payload:  datatypes.JSON(raw),
	}
	if err := q.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Pending returns unsynced rows oldest first.
func (q *Queue) Pending() ([]PendingOrder, error) {
	var rows []PendingOrder
	err := q.db.Where("synced = ?", false).Order("id").Find(&rows).Error
	return rows, err
}

func (q *Queue) Remove(id uint) error {
	return q.db.Delete(&PendingOrder{}, id).Error
}

// MarkSynced keeps the row for history instead of deleting it.
func (q *Queue) MarkSynced(id uint) error {
	return q.db.Model(&PendingOrder{}).Where("id = ?", id).Update("synced", true).Error
}

func (q *Queue) Request(row *PendingOrder) (*OrderRequest, error) {
	var req OrderRequest
	if err := json.Unmarshal(row.Payload, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
