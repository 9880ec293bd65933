// Package status classifies stock levels and batch expiry dates into the
// badges the terminal displays. Classification is advisory; the backend
// remains authoritative for stock enforcement.
package status

import "time"

type StockStatus string

const (
	StockOut StockStatus = "OUT_OF_STOCK"
	StockLow StockStatus = "LOW_STOCK"
	StockOk  StockStatus = "IN_STOCK"
)

type ExpiryStatus string

const (
	ExpiryExpired ExpiryStatus = "EXPIRED"
	ExpiryNear    ExpiryStatus = "NEAR_EXPIRY"
	ExpiryValid   ExpiryStatus = "VALID"
)

// NearExpiryWindow is the lead time under which a batch is flagged as
// close to its expiration date.
const NearExpiryWindow = 90 * 24 * time.Hour

func Stock(stock int32, minStock int32) StockStatus {
	if stock <= 0 {
		return StockOut
	}
	if stock < minStock {
		return StockLow
	}
	return StockOk
}

func Expiry(expiration time.Time, now time.Time) ExpiryStatus {
	remaining := expiration.Sub(now)
	if remaining < 0 {
		return ExpiryExpired
	}
	if remaining < NearExpiryWindow {
		return ExpiryNear
	}
	return ExpiryValid
}
