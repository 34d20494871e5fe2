package services

import (
	"context"
	"sort"
	"time"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
)

// ReportService answers read-only aggregate queries straight from the store.
type ReportService struct {
	rooms    ports.RoomRepository
	payments ports.PaymentRepository
	timeout  time.Duration
}

func NewReportService(repos ports.Repositories, timeout time.Duration) *ReportService {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &ReportService{
		rooms:    repos.Rooms(),
		payments: repos.Payments(),
		timeout:  timeout,
	}
}

// OccupancyReport counts rooms per status, in Available, Booked, Occupied,
// Maintenance order. Statuses without rooms are left out.
func (s *ReportService) OccupancyReport(ctx context.Context) ([]domain.OccupancyEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.rooms.ListRoomsGroupedByStatus(ctx)
	if err != nil {
		return nil, domain.StoreError("occupancy report", err)
	}

	counts := make(map[domain.RoomStatus]int, len(rows))
	for _, r := range rows {
		counts[r.Status] += r.Count
	}

	report := make([]domain.OccupancyEntry, 0, len(counts))
	for _, st := range domain.RoomStatuses {
		if n := counts[st]; n > 0 {
			report = append(report, domain.OccupancyEntry{Status: st, Count: n})
		}
	}

	return report, nil
}

// RevenueReport sums payments per calendar month, oldest month first.
func (s *ReportService) RevenueReport(ctx context.Context) ([]domain.RevenueEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.payments.ListPaymentsGroupedByMonth(ctx)
	if err != nil {
		return nil, domain.StoreError("revenue report", err)
	}

	report := make([]domain.RevenueEntry, len(rows))
	copy(report, rows)
	sort.Slice(report, func(i, j int) bool { return report[i].Month < report[j].Month })

	for i := range report {
		report[i].Total = report[i].Total.Round(2)
	}

	return report, nil
}
