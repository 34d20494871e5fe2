package postgres

import (
	"context"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type PaymentRepository struct {
	q querier
}

func (r *PaymentRepository) InsertPayment(ctx context.Context, payment *domain.Payment) error {
	query := `
	INSERT INTO payments (id, booking_id, amount, paid_at, payment_method)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query, payment.ID, payment.BookingID, payment.Amount, payment.PaidAt, payment.Method)

	return err
}

func (r *PaymentRepository) ListPaymentsGroupedByMonth(ctx context.Context) ([]domain.RevenueEntry, error) {
	query := `
	SELECT to_char(paid_at AT TIME ZONE 'UTC', 'YYYY-MM') AS month, SUM(amount)
	FROM payments
	GROUP BY month
	ORDER BY month
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var out []domain.RevenueEntry
	for rows.Next() {
		var e domain.RevenueEntry
		if err := rows.Scan(&e.Month, &e.Total); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}
