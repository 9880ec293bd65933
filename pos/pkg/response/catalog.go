package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/farmasystem/pos/inventory/pkg/status"
)

type Batch struct {
	ID             int64               `json:"id"`
	BatchCode      string              `json:"batchCode"`
	ExpirationDate time.Time           `json:"expirationDate"`
	Stock          int32               `json:"stock"`
	ExpiryStatus   status.ExpiryStatus `json:"expiryStatus"`
}

type Product struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Sku          string             `json:"sku"`
	Barcode      string             `json:"barcode,omitempty"`
	SalePrice    decimal.Decimal    `json:"salePrice"`
	MinStock     int32              `json:"minStock"`
	Provider     string             `json:"provider,omitempty"`
	TotalStock   int32              `json:"totalStock"`
	StockStatus  status.StockStatus `json:"stockStatus"`
	NearestBatch *Batch             `json:"nearestBatch,omitempty"`
	Batches      []Batch            `json:"batches,omitempty"`
}
