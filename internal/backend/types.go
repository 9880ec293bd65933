package backend

import (
	"github.com/shopspring/decimal"
)

// Wire types of the pharmacy backend. The backend owns persistence and
// authoritative pricing; these mirror its JSON contracts.

type Batch struct {
	ID             int64           `json:"id"`
	BatchCode      string          `json:"batchCode"`
	ExpirationDate string          `json:"expirationDate"`
	Stock          int32           `json:"stock"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
}

type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Sku       string          `json:"sku"`
	Barcode   string          `json:"barcode,omitempty"`
	SalePrice decimal.Decimal `json:"salePrice"`
	MinStock  int32           `json:"minStock"`
	Provider  string          `json:"provider,omitempty"`
	Batches   []Batch         `json:"batches,omitempty"`
}

type Customer struct {
	Name string `json:"nombre"`
}

type SaleItem struct {
	ProductId int64 `json:"productId"`
	Quantity  int32 `json:"quantity"`
}

type SalePayload struct {
	ClientDni  string     `json:"clientDni"`
	ClientName string     `json:"clientName"`
	SellerId   int64      `json:"sellerId"`
	Items      []SaleItem `json:"items"`
}

type SaleReceipt struct {
	ID int64 `json:"id"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// CreateUser carries the credential; the backend hashes it and never
// returns it back.
type CreateUser struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Kpi struct {
	TotalSalesToday decimal.Decimal `json:"totalSalesToday"`
	TotalSalesMonth decimal.Decimal `json:"totalSalesMonth"`
	SalesCountToday int64           `json:"salesCountToday"`
	LowStockCount   int64           `json:"lowStockCount"`
}

type ChartPoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

type TopProduct struct {
	ProductName  string          `json:"productName"`
	QuantitySold int64           `json:"quantitySold"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}
