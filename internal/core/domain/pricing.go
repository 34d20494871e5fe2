package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDateRange, s)
	}
	return t, nil
}

// DateOnly drops the clock part of t, keeping its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of whole calendar days between checkIn and checkOut.
func Nights(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}

// ComputeTotal prices a stay at rate per night, rounded half-up to cents.
func ComputeTotal(rate decimal.Decimal, checkIn, checkOut time.Time) (decimal.Decimal, error) {
	if !rate.IsPositive() {
		return decimal.Zero, ErrInvalidRate
	}

	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return decimal.Zero, ErrInvalidDateRange
	}

	return rate.Mul(decimal.NewFromInt(int64(nights))).Round(2), nil
}
