package client

import (
	"errors"
	"math"
	"sync"

	"gorm.io/gorm"
)

// CartEntry is a persisted cart line, keyed by product so adding the
// same product twice only bumps the quantity.
type CartEntry struct {
	ProductID string  `gorm:"primaryKey;size:64" json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
}

// Cart mirrors the storefront cart: every mutation is written through
// to the local database so the cart survives restarts.
type Cart struct {
	mu sync.Mutex
	db *gorm.DB
}

func NewCart(db *gorm.DB) (*Cart, error) {
	if err := db.AutoMigrate(&CartEntry{}); err != nil {
		return nil, err
	}
	return &Cart{db: db}, nil
}

func (c *Cart) Add(entry CartEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry.Quantity < 1 {
		entry.Quantity = 1
	}
	var existing CartEntry
	err := c.db.First(&existing, "product_id = ?", entry.ProductID).Error
	if err == nil {
		existing.Quantity += entry.Quantity
		return c.db.Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return c.db.Create(&entry).Error
}

func (c *Cart) Remove(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db.Delete(&CartEntry{}, "product_id = ?", productID).Error
}

// UpdateQuantity sets the line quantity; zero or below removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity < 1 {
		return c.db.Delete(&CartEntry{}, "product_id = ?", productID).Error
	}
	return c.db.Model(&CartEntry{}).
		Where("product_id = ?", productID).
		Update("quantity", quantity).Error
}

func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db.Where("1 = 1").Delete(&CartEntry{}).Error
}

// Set replaces the whole cart, used when restoring a saved session.
func (c *Cart) Set(entries []CartEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&CartEntry{}).Error; err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.Quantity < 1 {
				entry.Quantity = 1
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *Cart) Items() ([]CartEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var entries []CartEntry
	err := c.db.Order("product_id").Find(&entries).Error
	return entries, err
}

// Count returns the number of units across all lines.
func (c *Cart) Count() (int, error) {
	entries, err := c.Items()
	if err != nil {
		return 0, err
	}
	var count int
	for _, e := range entries {
		count += e.Quantity
	}
	return count, nil
}

// Total returns the cart value rounded to cents.
func (c *Cart) Total() (float64, error) {
	entries, err := c.Items()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range entries {
		total += e.Price * float64(e.Quantity)
	}
	return math.Round(total*100) / 100, nil
}
