package domain

import "github.com/shopspring/decimal"

type OccupancyEntry struct {
	Status RoomStatus `json:"status"`
	Count  int        `json:"count"`
}

type RevenueEntry struct {
	Month string          `json:"month"` // YYYY-MM
	Total decimal.Decimal `json:"total"`
}
