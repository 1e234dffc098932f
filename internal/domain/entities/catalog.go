package entities

import "github.com/shopspring/decimal"

type Service struct {
	ID     int64           `json:"id" yaml:"id"`
	Name   string          `json:"name" yaml:"name"`
	Price  decimal.Decimal `json:"price" yaml:"price"`
	Active bool            `json:"active" yaml:"active"`
}

type DefectNode struct {
	ID    int64        `json:"id" yaml:"id"`
	Name  string       `json:"name" yaml:"name"`
	Types []DefectType `json:"types" yaml:"types"`
}

type DefectType struct {
	ID     int64  `json:"id" yaml:"id"`
	NodeID int64  `json:"node_id" yaml:"-"`
	Name   string `json:"name" yaml:"name"`
}

type WorkerStatus string

const (
	WorkerStatusActive   WorkerStatus = "Active"
	WorkerStatusInactive WorkerStatus = "Inactive"
)

type Worker struct {
	ID     int64        `json:"id" yaml:"id"`
	Name   string       `json:"name" yaml:"name"`
	Role   Role         `json:"role" yaml:"role"`
	Status WorkerStatus `json:"status" yaml:"status"`
}

// WarehouseItem exposes only what the stock quantity check needs.
type WarehouseItem struct {
	ID       int64           `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Brand    string          `json:"brand" yaml:"brand"`
	Price    decimal.Decimal `json:"price" yaml:"price"`
	Quantity int64           `json:"quantity" yaml:"quantity"`
}
