package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int32
		minStock int32
		expected StockStatus
	}{
		{name: "zero stock is out of stock", stock: 0, minStock: 50, expected: StockOut},
		{name: "negative stock is out of stock", stock: -3, minStock: 50, expected: StockOut},
		{name: "below minimum is low stock", stock: 32, minStock: 50, expected: StockLow},
		{name: "at minimum is in stock", stock: 50, minStock: 50, expected: StockOk},
		{name: "above minimum is in stock", stock: 145, minStock: 50, expected: StockOk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Stock(tt.stock, tt.minStock))
		})
	}
}

func TestExpiry(t *testing.T) {
	now := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiration time.Time
		expected   ExpiryStatus
	}{
		{
			name:       "past date is expired",
			expiration: now.AddDate(0, 0, -1),
			expected:   ExpiryExpired,
		},
		{
			name:       "within ninety days is near expiry",
			expiration: now.AddDate(0, 0, 89),
			expected:   ExpiryNear,
		},
		{
			name:       "at ninety days is valid",
			expiration: now.Add(NearExpiryWindow),
			expected:   ExpiryValid,
		},
		{
			name:       "far future is valid",
			expiration: now.AddDate(1, 0, 0),
			expected:   ExpiryValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expiry(tt.expiration, now))
		})
	}
}
