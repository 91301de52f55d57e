package models

import (
	"time"
)

type ProductStatus string

const (
	ProductStatusAvailable  ProductStatus = "available"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

type Product struct {
	ID            ObjectID      `bson:"_id,omitempty" json:"id"`
	Name          string        `bson:"name,omitempty" json:"name"`
	Category      string        `bson:"category,omitempty" json:"category"`
	Price         Price         `bson:"price,omitempty" json:"price"`
	Description   string        `bson:"description,omitempty" json:"description"`
	ImageURL      string        `bson:"image_url,omitempty" json:"image_url"`
	Status        ProductStatus `bson:"status,omitempty" json:"status"`
	Featured      bool          `bson:"featured,omitempty" json:"featured"`
	StockQuantity int           `bson:"stock_quantity,omitempty" json:"stock_quantity"`
	CreatedAt     time.Time     `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at,omitempty" json:"updated_at"`
}

func (Product) CollectionName() string {
	return "products"
}

func (p Product) GetObjectID() ObjectID {
	return p.ID
}

func (p Product) GetUpdates() any {
	// update everything except ID and CreatedAt
	p.ID = ""
	p.CreatedAt = time.Time{}
	p.UpdatedAt = time.Now()
	return p
}

// ProductInput is the admin-facing write shape. Price arrives as a string so
// both "450" and legacy "KSH 450" submissions keep working.
type ProductInput struct {
	Name          string `json:"name" validate:"required"`
	Category      string `json:"category" validate:"required"`
	Price         string `json:"price" validate:"required"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url" validate:"omitempty,url"`
	Status        string `json:"status" validate:"omitempty,oneof=available out_of_stock"`
	Featured      bool   `json:"featured"`
	StockQuantity int    `json:"stock_quantity" validate:"gte=0"`
}

// StockSyncInput mirrors the inventory integration endpoint: the dashboard
// pushes quantities and the status is derived from them.
type StockSyncInput struct {
	StockQuantity int `json:"stock_quantity" validate:"gte=0"`
}
